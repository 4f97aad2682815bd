package statusbar_test

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/bnema/statusbar/internal/application/port"
	"github.com/bnema/statusbar/internal/domain/entity"
	"github.com/bnema/statusbar/internal/statusbar"
	"github.com/bnema/statusbar/internal/tint"
)

type fakeClock struct{ now time.Duration }

func (c *fakeClock) Now() time.Duration { return c.now }

type fakeSettings map[string]int

func (s fakeSettings) Int(key string, def int) int {
	if v, ok := s[key]; ok {
		return v
	}
	return def
}

func (s fakeSettings) Bool(key string, def bool) bool {
	if v, ok := s[key]; ok {
		return v != 0
	}
	return def
}

type alphaRecorder struct {
	alphas  []float64
	visible bool
}

func newAlphaRecorder() *alphaRecorder { return &alphaRecorder{visible: true} }

func (a *alphaRecorder) SetAlpha(v float64) { a.alphas = append(a.alphas, v) }
func (a *alphaRecorder) SetVisible(v bool)  { a.visible = v }
func (a *alphaRecorder) alpha() float64     { return a.alphas[len(a.alphas)-1] }

type clockRecorder struct{ visible *bool }

func (c *clockRecorder) SetClockVisible(v bool) { c.visible = &v }

type batteryView struct {
	shown, text, cutOut bool
}

func (b *batteryView) SetVisible(v bool)     { b.shown = v }
func (b *batteryView) SetTextVisible(v bool) { b.text = v }
func (b *batteryView) SetCutOutText(v bool)  { b.cutOut = v }

type notifIcon struct {
	key     string
	preFlat bool
	bitmap  image.Image
	color   entity.ARGB
	painted int
}

func (n *notifIcon) Key() string            { return n.key }
func (n *notifIcon) PreFlat() bool          { return n.preFlat }
func (n *notifIcon) Bitmap() image.Image    { return n.bitmap }
func (n *notifIcon) SetColor(c entity.ARGB) { n.color = c; n.painted++ }

func solidBitmap(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func entry(icon *notifIcon) statusbar.NotificationEntry {
	return statusbar.NotificationEntry{Key: icon.key, Icon: icon, TopLevel: true}
}

const (
	lightIcon entity.ARGB = 0xFFEEEEEE
	darkIcon  entity.ARGB = 0xFF111111
)

func testSource() port.ColorSource {
	return port.ColorSourceFunc(func(role entity.Role, mode entity.Mode) entity.ARGB {
		if mode == entity.ModeDark {
			return darkIcon
		}
		return lightIcon
	})
}

type fixture struct {
	clock *fakeClock
	c     *statusbar.Controller
}

func newFixture(mutate ...func(*statusbar.Options)) *fixture {
	f := &fixture{clock: &fakeClock{}}
	opts := statusbar.Options{
		Engine: tint.Options{
			Source: testSource(),
			Clock:  f.clock,
		},
	}
	for _, fn := range mutate {
		fn(&opts)
	}
	f.c = statusbar.New(context.Background(), opts)
	return f
}

func (f *fixture) advance(d time.Duration) {
	end := f.clock.now + d
	for f.clock.now < end {
		f.clock.now = min(f.clock.now+10*time.Millisecond, end)
		f.c.Tick()
	}
}

func iconFor(name string) entity.StatusBarIcon {
	return entity.StatusBarIcon{Package: "android", IconName: name, Visible: true}
}
