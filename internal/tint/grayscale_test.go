package tint

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGrayscaleImage(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want bool
	}{
		{"nil", nil, false},
		{"empty", image.NewNRGBA(image.Rect(0, 0, 0, 0)), true},
		{"white", solid(color.NRGBA{R: 255, G: 255, B: 255, A: 255}), true},
		{"near gray", solid(color.NRGBA{R: 100, G: 110, B: 119, A: 255}), true},
		{"tinted", solid(color.NRGBA{R: 100, G: 120, B: 100, A: 255}), false},
		{"red", solid(color.NRGBA{R: 255, A: 255}), false},
		{"faint red", solid(color.NRGBA{R: 255, A: 40}), true},
		{"translucent red", solid(color.NRGBA{R: 255, A: 128}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGrayscaleImage(tt.img))
		})
	}
}

func TestIsGrayscaleImage_SamplesLargeImages(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 512, 512))
	assert.True(t, IsGrayscaleImage(img))

	colored := image.NewNRGBA(image.Rect(0, 0, 512, 512))
	for y := 0; y < 512; y++ {
		for x := 0; x < 512; x++ {
			colored.Set(x, y, color.NRGBA{G: 255, A: 255})
		}
	}
	assert.False(t, IsGrayscaleImage(colored))
}
