package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/bnema/statusbar/internal/domain/entity"
)

// Backgrounds the demo bar sits on.
const (
	LightAppBackground = "#F1F3F4"
	DarkAppBackground  = "#202124"
)

// Composite flattens c over the background hex color, since terminals have
// no alpha.
func Composite(c entity.ARGB, background string) lipgloss.Color {
	bg, err := colorful.Hex(background)
	if err != nil {
		bg = colorful.Color{}
	}
	fg := colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
	return lipgloss.Color(bg.BlendRgb(fg, float64(c.A())/255).Clamped().Hex())
}

// Paint renders text in c over background.
func Paint(text string, c entity.ARGB, background string) string {
	return lipgloss.NewStyle().
		Foreground(Composite(c, background)).
		Background(lipgloss.Color(background)).
		Render(text)
}

// Fade renders text with its color scaled by alpha towards the background.
func Fade(text string, c entity.ARGB, alpha float64, background string) string {
	a := float64(c.A()) * max(0, min(1, alpha))
	return Paint(text, entity.NewARGB(uint8(a+0.5), c.R(), c.G(), c.B()), background)
}

// Swatch renders a small block in the opaque part of c.
func Swatch(c entity.ARGB) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.RGBHex())).
		Render("██")
}
