package model

import (
	"image"
	"image/color"

	"github.com/bnema/statusbar/internal/application/port"
	"github.com/bnema/statusbar/internal/domain/entity"
)

// Terminal stand-ins for the bar's widgets. They only remember what the
// controller tells them; the view paints them with lipgloss.

type labelWidget struct {
	text  string
	color entity.ARGB
}

func (w *labelWidget) SetColor(c entity.ARGB) { w.color = c }

type clockWidget struct {
	labelWidget
	visible bool
}

func (w *clockWidget) SetClockVisible(v bool) { w.visible = v }

type batteryWidget struct {
	frame, fill, text entity.ARGB
	level             int
	shown, textShown  bool
	cutOut            bool
}

func (w *batteryWidget) SetFrameAndFillColor(frame, fill entity.ARGB) {
	w.frame, w.fill = frame, fill
}

func (w *batteryWidget) SetTextColor(c entity.ARGB) { w.text = c }
func (w *batteryWidget) SetVisible(v bool)          { w.shown = v }
func (w *batteryWidget) SetTextVisible(v bool)      { w.textShown = v }
func (w *batteryWidget) SetCutOutText(v bool)       { w.cutOut = v }

type trafficWidget struct {
	text, icon entity.ARGB
	rate       string
}

func (w *trafficWidget) SetTextColor(c entity.ARGB) { w.text = c }
func (w *trafficWidget) SetIconColor(c entity.ARGB) { w.icon = c }

type signalWidget struct {
	signal, noSim, airplane entity.ARGB
	noSimCard, airplaneMode bool
}

func (w *signalWidget) SetSignalColors(signal, noSim, airplane entity.ARGB) {
	w.signal, w.noSim, w.airplane = signal, noSim, airplane
}

type areaWidget struct {
	alpha   float64
	visible bool
}

func newAreaWidget() *areaWidget { return &areaWidget{alpha: 1, visible: true} }

func (w *areaWidget) SetAlpha(a float64) { w.alpha = a }
func (w *areaWidget) SetVisible(v bool)  { w.visible = v }

func (w *areaWidget) opacity() float64 {
	if !w.visible {
		return 0
	}
	return w.alpha
}

// notificationIcon is a posted notification's icon. Legacy icons carry their
// own colors and keep them unless their bitmap is grayscale.
type notificationIcon struct {
	key     string
	glyph   string
	preFlat bool
	own     entity.ARGB
	bitmap  image.Image
	color   entity.ARGB
	tinted  bool
}

func newNotificationIcon(key, glyph string, preFlat bool, own entity.ARGB) *notificationIcon {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	c := color.NRGBA{R: own.R(), G: own.G(), B: own.B(), A: own.A()}
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			img.Set(x, y, c)
		}
	}
	return &notificationIcon{key: key, glyph: glyph, preFlat: preFlat, own: own, bitmap: img}
}

func (n *notificationIcon) Key() string         { return n.key }
func (n *notificationIcon) PreFlat() bool       { return n.preFlat }
func (n *notificationIcon) Bitmap() image.Image { return n.bitmap }

func (n *notificationIcon) SetColor(c entity.ARGB) {
	n.color = c
	n.tinted = true
}

func (n *notificationIcon) shownColor() entity.ARGB {
	if n.tinted {
		return n.color
	}
	return n.own
}

var (
	_ port.ColorTarget          = (*labelWidget)(nil)
	_ port.ClockObserver        = (*clockWidget)(nil)
	_ port.BatteryTarget        = (*batteryWidget)(nil)
	_ port.BatteryView          = (*batteryWidget)(nil)
	_ port.TrafficTarget        = (*trafficWidget)(nil)
	_ port.SignalTarget         = (*signalWidget)(nil)
	_ port.AlphaTarget          = (*areaWidget)(nil)
	_ port.NotificationIconView = (*notificationIcon)(nil)
)
