package tint

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/statusbar/internal/animation"
	"github.com/bnema/statusbar/internal/application/port/mocks"
	"github.com/bnema/statusbar/internal/domain/entity"
)

const ms = time.Millisecond

func TestEngine_NewStartsLight(t *testing.T) {
	h := newHarness()

	for _, role := range entity.AllRoles() {
		c := h.engine.Colors(role)
		assert.Equal(t, entity.White, c.Current, role.String())
		assert.Equal(t, c.Current, c.Previous, role.String())
		assert.Equal(t, c.Current, c.Effective, role.String())
	}
	assert.Zero(t, h.engine.DarkIntensity())
	assert.Empty(t, h.carrier.colors, "construction does not paint")
}

func TestEngine_SetDarkImmediate(t *testing.T) {
	src := mocks.NewMockColorSource(t)
	src.EXPECT().ColorOf(mock.Anything, entity.ModeLight).Return(entity.White)
	src.EXPECT().ColorOf(mock.Anything, entity.ModeDark).Return(entity.Black)

	battery := mocks.NewMockBatteryTarget(t)
	battery.EXPECT().SetFrameAndFillColor(entity.Black, entity.Black).Once()
	battery.EXPECT().SetTextColor(entity.Black).Once()

	registry := NewRegistry(PhoneProfile())
	require.True(t, registry.BindBattery(SurfaceStatusBar, battery))

	e := New(context.Background(), Options{
		Source:          src,
		Registry:        registry,
		Clock:           &fakeClock{},
		LightSingleTone: entity.White,
		DarkSingleTone:  entity.Black,
	})

	e.SetDark(true, false)

	assert.Equal(t, 1.0, e.DarkIntensity())
	for _, role := range entity.AllRoles() {
		assert.Equal(t, entity.Black, e.Colors(role).Effective, role.String())
	}
}

func TestEngine_SetDarkImmediateIsIdempotent(t *testing.T) {
	h := newHarness()

	h.engine.SetDark(true, false)
	painted := len(h.carrier.colors)
	effective := h.engine.Colors(entity.RoleCarrierLabel)

	h.engine.SetDark(true, false)

	assert.Len(t, h.carrier.colors, painted)
	assert.Equal(t, effective, h.engine.Colors(entity.RoleCarrierLabel))
}

func TestEngine_SetDarkImmediateCancelsAnimation(t *testing.T) {
	h := newHarness()

	h.engine.SetDark(true, true)
	h.advance(60*ms, 60*ms)
	require.True(t, h.engine.TintAnimating())

	h.engine.SetDark(true, false)

	assert.False(t, h.engine.TintAnimating())
	assert.Equal(t, 1.0, h.engine.DarkIntensity())
	assert.Equal(t, entity.Black, h.carrier.last())
}

func TestEngine_SetDarkAnimated(t *testing.T) {
	h := newHarness()

	h.engine.SetDark(true, true)

	spec := h.engine.TintAnimation()
	assert.Equal(t, DefaultTintDuration, spec.Duration)
	assert.Zero(t, spec.Delay)
	assert.Zero(t, h.engine.DarkIntensity(), "nothing changes before the first tick")

	h.advance(120*ms, 10*ms)

	assert.False(t, h.engine.TintAnimating())
	assert.Equal(t, 1.0, h.engine.DarkIntensity())
	assert.Equal(t, entity.Black, h.engine.Colors(entity.RoleStatusIcon).Effective)
}

func TestEngine_SetDarkAnimatedToCurrentIntensityIsNoop(t *testing.T) {
	h := newHarness()

	h.engine.SetDark(false, true)

	assert.False(t, h.engine.TintAnimating())
	assert.Empty(t, h.carrier.colors)
}

func TestEngine_RetargetStartsFromCurrentIntensity(t *testing.T) {
	h := newHarness()

	h.engine.SetDark(true, true)
	h.advance(60*ms, 60*ms)
	mid := h.engine.DarkIntensity()
	require.InDelta(t, animation.FastOutSlowIn(0.5), mid, 1e-9)

	h.engine.SetDark(false, true)

	spec := h.engine.TintAnimation()
	assert.Equal(t, mid, spec.From)
	assert.Equal(t, 0.0, spec.To)

	h.advance(120*ms, 10*ms)
	assert.Equal(t, 0.0, h.engine.DarkIntensity())
	assert.Equal(t, entity.White, h.carrier.last())
}

func TestEngine_TintAnimationIsMonotone(t *testing.T) {
	h := newHarness()
	h.palette.light[entity.RoleCarrierLabel] = entity.MustParseARGB("#FFE0C080")
	h.palette.dark[entity.RoleCarrierLabel] = entity.MustParseARGB("#FF102030")
	h.engine.UpdateCarrierLabelColor(false)
	h.carrier.colors = nil

	h.engine.SetDark(true, true)
	h.advance(120*ms, 5*ms)

	require.NotEmpty(t, h.carrier.colors)
	prev := h.carrier.colors[0]
	for _, c := range h.carrier.colors[1:] {
		assert.LessOrEqual(t, c.R(), prev.R())
		assert.LessOrEqual(t, c.G(), prev.G())
		assert.LessOrEqual(t, c.B(), prev.B())
		assert.Equal(t, prev.A(), c.A())
		prev = c
	}
	assert.Equal(t, entity.MustParseARGB("#FF102030"), h.carrier.last())
}

func TestEngine_PreferenceChangeDuringTint(t *testing.T) {
	h := newHarness()
	dark := entity.MustParseARGB("#FF102030")
	h.palette.dark[entity.RoleCarrierLabel] = dark

	h.engine.SetDark(true, true)
	h.advance(40*ms, 10*ms)

	red := entity.MustParseARGB("#FFFF0000")
	h.palette.light[entity.RoleCarrierLabel] = red
	h.engine.UpdateCarrierLabelColor(true)

	assert.True(t, h.engine.TintAnimating())
	assert.True(t, h.engine.ColorChangeAnimating())

	h.settle()

	got := h.engine.Colors(entity.RoleCarrierLabel)
	assert.Equal(t, 1.0, h.engine.DarkIntensity())
	assert.Equal(t, red, got.Current)
	assert.Equal(t, entity.LerpARGB(red, h.engine.DarkVariant(entity.RoleCarrierLabel), 1), got.Effective)
	assert.Equal(t, dark, h.carrier.last())
}

func TestEngine_PreferenceChangeCommits(t *testing.T) {
	h := newHarness()
	green := entity.MustParseARGB("#FF00FF00")
	for _, role := range entity.GroupBattery.Roles() {
		h.palette.light[role] = green
	}

	h.engine.UpdateBatteryColors(true)
	h.advance(250*ms, 10*ms)

	mid := h.engine.Colors(entity.RoleBatteryFill)
	assert.Equal(t, entity.White, mid.Previous)
	assert.Equal(t, green, mid.Current)
	assert.NotEqual(t, green, mid.Effective)

	h.settle()

	fill := h.engine.Colors(entity.RoleBatteryFill)
	assert.Equal(t, fill.Current, fill.Previous)
	assert.Equal(t, green, fill.Effective)
	assert.Equal(t, green, h.battery.fills[len(h.battery.fills)-1])
	assert.Equal(t, green, h.battery.texts[len(h.battery.texts)-1])
}

func TestEngine_PreferenceChangeImmediate(t *testing.T) {
	h := newHarness()
	blue := entity.MustParseARGB("#FF0000FF")
	h.palette.light[entity.RoleTrafficIcon] = blue

	h.engine.UpdateNetworkTrafficColors(false)

	assert.False(t, h.engine.ColorChangeAnimating())
	assert.Equal(t, blue, h.traffic.icon)
	assert.Equal(t, entity.White, h.traffic.text)
}

func TestEngine_PreferenceChangeSnapsReplacedGroup(t *testing.T) {
	h := newHarness()
	green := entity.MustParseARGB("#FF00FF00")
	for _, role := range entity.GroupBattery.Roles() {
		h.palette.light[role] = green
	}
	h.engine.UpdateBatteryColors(true)
	h.advance(100*ms, 10*ms)

	h.palette.light[entity.RoleCarrierLabel] = entity.MustParseARGB("#FFFF0000")
	h.engine.UpdateCarrierLabelColor(true)

	fill := h.engine.Colors(entity.RoleBatteryFill)
	assert.Equal(t, green, fill.Effective, "replaced crossfade jumps to its end")
	assert.Equal(t, green, fill.Previous)
	assert.True(t, h.engine.ColorChangeAnimating())
	assert.Equal(t, entity.White, h.engine.Colors(entity.RoleCarrierLabel).Previous)
}

func TestEngine_PreferenceChangeRestartsFromShownColor(t *testing.T) {
	h := newHarness()
	h.palette.light[entity.RoleCarrierLabel] = entity.MustParseARGB("#FFFF0000")
	h.engine.UpdateCarrierLabelColor(true)
	h.advance(250*ms, 250*ms)

	shown := h.engine.Colors(entity.RoleCarrierLabel).Effective
	f := animation.AccelerateDecelerate(0.5)
	require.Equal(t, entity.LerpARGB(entity.White, entity.MustParseARGB("#FFFF0000"), f), shown)

	blue := entity.MustParseARGB("#FF0000FF")
	h.palette.light[entity.RoleCarrierLabel] = blue
	h.engine.UpdateCarrierLabelColor(true)

	c := h.engine.Colors(entity.RoleCarrierLabel)
	assert.Equal(t, shown, c.Previous)
	assert.Equal(t, blue, c.Current)

	h.settle()
	assert.Equal(t, blue, h.carrier.last())
}

func TestEngine_NotificationIconColorIsNeverAnimated(t *testing.T) {
	h := newHarness()
	icon := &notificationIcon{key: "n1"}
	h.engine.Registry().BindNotificationIcons(notificationRow{icon})
	h.palette.light[entity.RoleNotificationIcon] = entity.MustParseARGB("#FFAABBCC")

	h.engine.UpdateNotificationIconColor()

	assert.False(t, h.engine.ColorChangeAnimating())
	assert.Equal(t, entity.MustParseARGB("#FFAABBCC"), icon.last())
}

func TestEngine_SingleToneUsesConfiguredPair(t *testing.T) {
	h := newHarness(func(o *Options) {
		o.LightSingleTone = 0
		o.DarkSingleTone = 0
	})

	h.engine.SetDark(true, false)

	assert.Equal(t, DefaultDarkSingleTone, h.single.last())
	assert.Equal(t, DefaultDarkSingleTone, h.engine.DarkVariant(entity.RoleSingleToneIcon))
}

func TestEngine_ApplyIconTintRepaints(t *testing.T) {
	h := newHarness()

	h.engine.ApplyIconTint()

	assert.Equal(t, []entity.ARGB{entity.White}, h.carrier.colors)
	assert.Equal(t, 1, h.signal.calls)
	assert.Len(t, h.battery.fills, 1)
}

func TestEngine_SteadyStateAfterRandomOperations(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		h := newHarness()
		r := rand.New(rand.NewSource(seed))

		for i := 0; i < 200; i++ {
			switch r.Intn(7) {
			case 0:
				h.engine.SetDark(r.Intn(2) == 0, r.Intn(2) == 0)
			case 1:
				h.engine.AppTransitionPending()
			case 2:
				h.engine.AppTransitionCancelled()
			case 3:
				now := h.clock.Now()
				h.engine.AppTransitionStarting(now+time.Duration(r.Intn(300))*ms, time.Duration(r.Intn(400))*ms)
			case 4:
				groups := entity.AllGroups()
				group := groups[r.Intn(len(groups))]
				for _, role := range group.Roles() {
					h.palette.light[role] = entity.ARGB(r.Uint32())
					h.palette.dark[role] = entity.ARGB(r.Uint32())
				}
				h.engine.UpdateGroupColors(group, r.Intn(2) == 0)
			default:
				h.advance(time.Duration(r.Intn(200))*ms, 10*ms)
			}
		}
		h.settle()

		require.False(t, h.engine.Animating(), "seed %d", seed)
		d := h.engine.DarkIntensity()
		for _, role := range entity.AllRoles() {
			c := h.engine.Colors(role)
			assert.Equal(t, c.Current, c.Previous, "seed %d role %s", seed, role)
			assert.Equal(t, entity.LerpARGB(c.Current, h.engine.DarkVariant(role), d), c.Effective,
				"seed %d role %s", seed, role)
		}
	}
}
