package statusbar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/statusbar/internal/statusbar"
)

func withAreas(system, clock, notif *alphaRecorder) func(*statusbar.Options) {
	return func(o *statusbar.Options) {
		o.Areas = statusbar.Areas{SystemIcons: system, CenterClock: clock, NotificationIcons: notif}
	}
}

func TestAreas_HideWithoutAnimation(t *testing.T) {
	system, clock := newAlphaRecorder(), newAlphaRecorder()
	f := newFixture(withAreas(system, clock, nil))

	f.c.HideSystemIconArea(false)

	for _, a := range []*alphaRecorder{system, clock} {
		assert.Equal(t, 0.0, a.alpha())
		assert.False(t, a.visible)
	}
	assert.False(t, f.c.Animating())
}

func TestAreas_AnimatedHideThenShow(t *testing.T) {
	notif := newAlphaRecorder()
	f := newFixture(withAreas(nil, nil, notif))

	f.c.HideNotificationIconArea(true)
	assert.True(t, f.c.Animating())
	f.advance(statusbar.DefaultHideDuration / 2)
	assert.True(t, notif.visible, "still visible while fading")
	assert.Less(t, notif.alpha(), 1.0)

	f.advance(statusbar.DefaultHideDuration)
	assert.Equal(t, 0.0, notif.alpha())
	assert.False(t, notif.visible)

	f.c.ShowNotificationIconArea(true)
	assert.True(t, notif.visible, "shown before fading in")
	painted := len(notif.alphas)
	f.advance(statusbar.DefaultShowDelay - 10*time.Millisecond)
	assert.Len(t, notif.alphas, painted, "no alpha change during the start delay")

	f.advance(statusbar.DefaultShowDuration + 20*time.Millisecond)
	assert.Equal(t, 1.0, notif.alpha())
	assert.False(t, f.c.Animating())
}

func TestAreas_ShowCancelsPendingHide(t *testing.T) {
	system := newAlphaRecorder()
	f := newFixture(withAreas(system, nil, nil))

	f.c.HideSystemIconArea(true)
	f.advance(40 * time.Millisecond)
	f.c.ShowSystemIconArea(false)
	f.advance(time.Second)

	assert.True(t, system.visible, "cancelled hide never hides the area")
	assert.Equal(t, 1.0, system.alpha())
}

func TestAreas_KeyguardFadingTiming(t *testing.T) {
	system := newAlphaRecorder()
	f := newFixture(withAreas(system, nil, nil))
	f.c.HideSystemIconArea(false)

	f.c.SetKeyguardFadingAway(100*time.Millisecond, 200*time.Millisecond)
	f.c.ShowSystemIconArea(true)

	f.advance(90 * time.Millisecond)
	assert.Equal(t, 0.0, system.alpha())
	f.advance(220 * time.Millisecond)
	assert.Equal(t, 1.0, system.alpha())

	f.c.KeyguardFadingDone()
	f.c.HideSystemIconArea(false)
	f.c.ShowSystemIconArea(true)
	f.advance(statusbar.DefaultShowDelay + statusbar.DefaultShowDuration/2)
	require.NotEmpty(t, system.alphas)
	assert.Less(t, system.alpha(), 1.0, "default timing is longer than the keyguard one")
}

func TestAreas_NilTargetsAreIgnored(t *testing.T) {
	f := newFixture()
	assert.NotPanics(t, func() {
		f.c.HideSystemIconArea(true)
		f.c.ShowNotificationIconArea(true)
		f.advance(time.Second)
	})
}
