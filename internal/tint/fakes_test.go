package tint

import (
	"context"
	"image"
	"time"

	"github.com/bnema/statusbar/internal/application/port"
	"github.com/bnema/statusbar/internal/domain/entity"
)

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration { return c.now }

// palette is a mutable color source; unset roles are white on light and
// black on dark.
type palette struct {
	light map[entity.Role]entity.ARGB
	dark  map[entity.Role]entity.ARGB
}

func newPalette() *palette {
	return &palette{
		light: make(map[entity.Role]entity.ARGB),
		dark:  make(map[entity.Role]entity.ARGB),
	}
}

func (p *palette) ColorOf(role entity.Role, mode entity.Mode) entity.ARGB {
	if mode == entity.ModeDark {
		if c, ok := p.dark[role]; ok {
			return c
		}
		return entity.Black
	}
	if c, ok := p.light[role]; ok {
		return c
	}
	return entity.White
}

type colorRecorder struct {
	colors []entity.ARGB
}

func (r *colorRecorder) SetColor(c entity.ARGB) { r.colors = append(r.colors, c) }

func (r *colorRecorder) last() entity.ARGB {
	if len(r.colors) == 0 {
		return 0
	}
	return r.colors[len(r.colors)-1]
}

type batteryRecorder struct {
	frames, fills, texts []entity.ARGB
}

func (b *batteryRecorder) SetFrameAndFillColor(frame, fill entity.ARGB) {
	b.frames = append(b.frames, frame)
	b.fills = append(b.fills, fill)
}

func (b *batteryRecorder) SetTextColor(text entity.ARGB) { b.texts = append(b.texts, text) }

type trafficRecorder struct {
	text, icon entity.ARGB
}

func (t *trafficRecorder) SetTextColor(c entity.ARGB) { t.text = c }
func (t *trafficRecorder) SetIconColor(c entity.ARGB) { t.icon = c }

type signalRecorder struct {
	calls                   int
	signal, noSim, airplane entity.ARGB
}

func (s *signalRecorder) SetSignalColors(signal, noSim, airplane entity.ARGB) {
	s.calls++
	s.signal, s.noSim, s.airplane = signal, noSim, airplane
}

type notificationIcon struct {
	colorRecorder
	key     string
	preFlat bool
	bitmap  image.Image
}

func (n *notificationIcon) Key() string         { return n.key }
func (n *notificationIcon) PreFlat() bool       { return n.preFlat }
func (n *notificationIcon) Bitmap() image.Image { return n.bitmap }

type notificationRow []*notificationIcon

func (r notificationRow) Len() int { return len(r) }

func (r notificationRow) At(i int) port.NotificationIconView { return r[i] }

// harness wires an engine to recording widgets on the status bar surface.
type harness struct {
	clock   *fakeClock
	palette *palette
	engine  *Engine

	carrier *colorRecorder
	battery *batteryRecorder
	traffic *trafficRecorder
	signal  *signalRecorder
	single  *colorRecorder
}

func newHarness(opts ...func(*Options)) *harness {
	h := &harness{
		clock:   &fakeClock{},
		palette: newPalette(),
		carrier: &colorRecorder{},
		battery: &batteryRecorder{},
		traffic: &trafficRecorder{},
		signal:  &signalRecorder{},
		single:  &colorRecorder{},
	}
	o := Options{
		Source:          h.palette,
		Clock:           h.clock,
		LightSingleTone: entity.White,
		DarkSingleTone:  entity.Black,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.Registry == nil {
		profile := o.Profile
		if profile.roles == nil {
			profile = PhoneProfile()
		}
		o.Registry = NewRegistry(profile)
	}
	o.Registry.BindCarrierLabel(SurfaceStatusBar, h.carrier)
	o.Registry.BindBattery(SurfaceStatusBar, h.battery)
	o.Registry.BindTraffic(SurfaceStatusBar, h.traffic)
	o.Registry.BindSignalCluster(SurfaceStatusBar, h.signal)
	o.Registry.BindSingleTone(SurfaceStatusBar, h.single)

	h.engine = New(context.Background(), o)
	return h
}

// advance moves the clock to now+d in steps and ticks the engine each step.
func (h *harness) advance(d, step time.Duration) {
	end := h.clock.now + d
	for h.clock.now < end {
		h.clock.now = min(h.clock.now+step, end)
		h.engine.Tick()
	}
}

// settle ticks until nothing is animating and no timer is queued.
func (h *harness) settle() {
	for i := 0; i < 1000; i++ {
		if !h.engine.Animating() && h.engine.Timers().Len() == 0 {
			return
		}
		h.advance(10*time.Millisecond, 10*time.Millisecond)
	}
}
