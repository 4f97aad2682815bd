package tint

import "github.com/bnema/statusbar/internal/domain/entity"

// RoleColors is the color triple the engine keeps per role.
type RoleColors struct {
	// Current is what the user configured.
	Current entity.ARGB
	// Previous is what was shown before the last preference change.
	Previous entity.ARGB
	// Effective is what is painted right now.
	Effective entity.ARGB
}

type roleState struct {
	RoleColors
	// base is the light-side color currently shown. It equals Current except
	// while a preference crossfade is running.
	base entity.ARGB
}

func newRoleState(c entity.ARGB) *roleState {
	return &roleState{
		RoleColors: RoleColors{Current: c, Previous: c, Effective: c},
		base:       c,
	}
}

// commit ends a preference change: the configured color is fully shown.
func (s *roleState) commit() {
	s.Previous = s.Current
	s.base = s.Current
}
