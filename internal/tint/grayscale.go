package tint

import "image"

const (
	grayscaleTolerance      = 20
	grayscaleAlphaTolerance = 50
	grayscaleSampleSize     = 64
)

// IsGrayscaleImage reports whether every visible pixel of img is achromatic
// within a small tolerance. Large images are sampled on a 64x64 grid.
func IsGrayscaleImage(img image.Image) bool {
	if img == nil {
		return false
	}
	b := img.Bounds()
	if b.Empty() {
		return true
	}

	stepX := max(1, b.Dx()/grayscaleSampleSize)
	stepY := max(1, b.Dy()/grayscaleSampleSize)
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		for x := b.Min.X; x < b.Max.X; x += stepX {
			if !isGrayscalePixel(img.At(x, y).RGBA()) {
				return false
			}
		}
	}
	return true
}

func isGrayscalePixel(r, g, b, a uint32) bool {
	if a>>8 < grayscaleAlphaTolerance {
		return true
	}
	// Undo alpha premultiplication and reduce to 8 bits per channel.
	r8 := int(r * 0xFF / a)
	g8 := int(g * 0xFF / a)
	b8 := int(b * 0xFF / a)
	return abs(r8-g8) < grayscaleTolerance &&
		abs(r8-b8) < grayscaleTolerance &&
		abs(g8-b8) < grayscaleTolerance
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
