package tint

import (
	"github.com/bnema/statusbar/internal/animation"
	"github.com/bnema/statusbar/internal/domain/entity"
)

// UpdateCarrierLabelColor re-reads the carrier label color.
func (e *Engine) UpdateCarrierLabelColor(animate bool) {
	e.UpdateGroupColors(entity.GroupCarrierLabel, animate)
}

// UpdateBatteryColors re-reads the battery frame, fill and text colors.
func (e *Engine) UpdateBatteryColors(animate bool) {
	e.UpdateGroupColors(entity.GroupBattery, animate)
}

// UpdateNetworkTrafficColors re-reads the traffic text and icon colors.
func (e *Engine) UpdateNetworkTrafficColors(animate bool) {
	e.UpdateGroupColors(entity.GroupNetworkTraffic, animate)
}

// UpdateStatusNetworkIconColors re-reads the indicator and signal colors.
func (e *Engine) UpdateStatusNetworkIconColors(animate bool) {
	e.UpdateGroupColors(entity.GroupStatusNetworkIcons, animate)
}

// UpdateNotificationIconColor re-reads the notification icon color. It is
// never animated.
func (e *Engine) UpdateNotificationIconColor() {
	e.UpdateGroupColors(entity.GroupNotificationIcons, false)
}

// UpdateGroupColors applies a user preference change to every role of group.
// With animate the shown colors crossfade to the new ones; any crossfade in
// progress is cancelled first, snapping its roles to where they are.
func (e *Engine) UpdateGroupColors(group entity.RoleGroup, animate bool) {
	roles := group.Roles()

	for _, role := range roles {
		st := e.states[role]
		st.Previous = st.base
	}

	if e.colorAnimator.Running() {
		replaced := e.changingGroup
		e.colorAnimator.Cancel()

		var snapped []entity.Role
		for _, role := range replaced.Roles() {
			if group.Contains(role) {
				continue
			}
			e.states[role].commit()
			e.blend(role)
			snapped = append(snapped, role)
		}
		if len(snapped) > 0 {
			e.paint(snapped)
		}
		e.log.Debug().
			Str("replaced", replaced.String()).
			Str("group", group.String()).
			Msg("color change animation cancelled")
	}

	for _, role := range roles {
		e.states[role].Current = e.lightColor(role)
	}

	if !animate {
		for _, role := range roles {
			e.states[role].commit()
			e.blend(role)
		}
		e.paint(roles)
		e.log.Debug().Str("group", group.String()).Msg("colors updated")
		return
	}

	e.changingGroup = group
	e.colorAnimator.Start(e.clock.Now(), animation.Spec{
		From:         0,
		To:           1,
		Duration:     e.colorChangeDuration,
		Interpolator: animation.AccelerateDecelerate,
	})
	e.log.Debug().Str("group", group.String()).Msg("color change animation started")
}

func (e *Engine) onColorChangeUpdate(t float64) {
	roles := e.changingGroup.Roles()
	for _, role := range roles {
		st := e.states[role]
		st.base = entity.LerpARGB(st.Previous, st.Current, t)
		e.blend(role)
	}
	e.paint(roles)
}

func (e *Engine) onColorChangeEnd() {
	roles := e.changingGroup.Roles()
	for _, role := range roles {
		e.states[role].commit()
		e.blend(role)
	}
	e.paint(roles)
}
