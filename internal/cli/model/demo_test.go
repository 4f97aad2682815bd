package model

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/statusbar/internal/application/port"
	"github.com/bnema/statusbar/internal/cli/styles"
	"github.com/bnema/statusbar/internal/domain/entity"
	"github.com/bnema/statusbar/internal/infrastructure/colorsource"
	"github.com/bnema/statusbar/internal/statusbar"
	"github.com/bnema/statusbar/internal/tint"
)

type demoHarness struct {
	now   time.Duration
	model *DemoModel
}

func newDemoHarness(t *testing.T) *demoHarness {
	t.Helper()
	h := &demoHarness{}
	overrides := make(colorsource.MapStore)
	source := colorsource.NewSource(context.Background(), colorsource.DefaultPalette(), overrides)
	h.model = NewDemoModel(context.Background(), styles.NewTheme(), DemoModelConfig{
		Options: statusbar.Options{
			Engine: tint.Options{
				Source: source,
				Clock:  port.ClockFunc(func() time.Duration { return h.now }),
			},
		},
		Overrides:     overrides,
		FrameInterval: 10 * time.Millisecond,
	})
	return h
}

func (h *demoHarness) press(k string) tea.Cmd {
	_, cmd := h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	return cmd
}

func (h *demoHarness) advance(d time.Duration) {
	for end := h.now + d; h.now < end; {
		h.now += 10 * time.Millisecond
		h.model.Update(frameMsg(time.Now()))
	}
}

func TestDemoModel_Bootstrap(t *testing.T) {
	h := newDemoHarness(t)
	c := h.model.Controller()

	assert.Equal(t, []string{"wifi", "bluetooth", "alarm", "volume"}, c.StatusIcons().Slots())
	assert.Equal(t, 2, c.NotificationIcons().Len())
	assert.Equal(t, colorsource.DefaultPalette().ColorOf(entity.RoleCarrierLabel, entity.ModeLight), h.model.carrier.color)
	assert.True(t, h.model.battery.shown)
	assert.True(t, h.model.clocks[entity.ClockRight].visible)
	assert.Contains(t, h.model.View(), "status bar demo")
}

func TestDemoModel_CycleCarrierCrossfades(t *testing.T) {
	h := newDemoHarness(t)

	h.press("1")
	assert.True(t, h.model.Controller().ColorChangeAnimating())

	h.advance(600 * time.Millisecond)
	assert.False(t, h.model.Controller().ColorChangeAnimating())
	assert.Equal(t, colorPresets[0], h.model.carrier.color)
	assert.Equal(t, colorPresets[0], h.model.keyguardCarrier.color)

	h.press("0")
	assert.Empty(t, h.model.overrides)
}

func TestDemoModel_DarkToggle(t *testing.T) {
	h := newDemoHarness(t)
	c := h.model.Controller()

	h.press("D")
	assert.Equal(t, 1.0, c.DarkIntensity())
	assert.True(t, h.model.lightApp)

	h.press("d")
	assert.True(t, c.TintAnimating())
	h.advance(200 * time.Millisecond)
	assert.Equal(t, 0.0, c.DarkIntensity())
}

func TestDemoModel_TransitionDefersTint(t *testing.T) {
	h := newDemoHarness(t)
	c := h.model.Controller()

	h.press("p")
	h.press("d")
	assert.Equal(t, tint.PhasePending, c.Transition().Phase())
	assert.False(t, c.TintAnimating())

	h.press("s")
	require.True(t, c.TintAnimating())
	h.advance(transitionLead)
	assert.Less(t, c.DarkIntensity(), 0.5)

	h.advance(transitionDuration + 20*time.Millisecond)
	assert.Equal(t, 1.0, c.DarkIntensity())
}

func TestDemoModel_Notifications(t *testing.T) {
	h := newDemoHarness(t)
	c := h.model.Controller()

	h.press("n")
	assert.Equal(t, 3, c.NotificationIcons().Len())
	assert.Equal(t, h.model.notifications[0].Key, c.NotificationIcons().Keys()[0])

	h.press("N")
	h.press("N")
	h.press("N")
	h.press("N")
	assert.Equal(t, 0, c.NotificationIcons().Len())
}

func TestDemoModel_Indicators(t *testing.T) {
	h := newDemoHarness(t)
	c := h.model.Controller()

	h.press("i")
	assert.Equal(t, 5, c.StatusIcons().Len())
	assert.Equal(t, "location", c.StatusIcons().At(4).Slot())

	h.press("I")
	h.press("I")
	assert.Equal(t, []string{"wifi", "bluetooth", "alarm"}, c.StatusIcons().Slots())

	h.press("b")
	view := c.StatusIcons().At(0).(*statusbar.IconView)
	assert.False(t, view.Shown(), "wifi is blacklisted")
}

func TestDemoModel_AreasAndDemoMode(t *testing.T) {
	h := newDemoHarness(t)
	c := h.model.Controller()

	h.press("h")
	h.advance(200 * time.Millisecond)
	assert.Equal(t, 0.0, h.model.systemArea.opacity())
	assert.Equal(t, 0.0, h.model.notificationArea.opacity())

	h.press("h")
	h.advance(400 * time.Millisecond)
	assert.Equal(t, 1.0, h.model.systemArea.opacity())

	h.press("m")
	assert.True(t, c.Demo().Active())
	assert.Positive(t, c.Demo().Row().Len())
	h.press("m")
	assert.False(t, c.Demo().Active())
}

func TestDemoModel_DumpAndQuit(t *testing.T) {
	h := newDemoHarness(t)

	h.press("u")
	assert.Contains(t, h.model.dump, "system icons: 4")

	ran := false
	h.model.Update(PostedMsg(func() { ran = true }))
	assert.True(t, ran)

	cmd := h.press("q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDemoModel_StartsOverLightApp(t *testing.T) {
	var now time.Duration
	m := NewDemoModel(context.Background(), styles.NewTheme(), DemoModelConfig{
		Options: statusbar.Options{
			Engine: tint.Options{
				Source: colorsource.NewSource(context.Background(), colorsource.DefaultPalette()),
				Clock:  port.ClockFunc(func() time.Duration { return now }),
			},
		},
		LightApp: true,
	})

	assert.Equal(t, 1.0, m.Controller().DarkIntensity())
	assert.Equal(t, m.Controller().DarkVariant(entity.RoleCarrierLabel), m.carrier.color)
}
