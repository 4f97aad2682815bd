package tint

import (
	"fmt"
	"strings"

	"github.com/bnema/statusbar/internal/domain/entity"
)

// Profile selects the tintable roles a device variant has and whether the
// lock-screen surface mirrors the status bar.
type Profile struct {
	Name           string
	KeyguardMirror bool
	roles          map[entity.Role]bool
}

// Profile names accepted by ProfileByName.
const (
	ProfilePhone    = "phone"
	ProfileWifiOnly = "wifi-only"
)

// NewProfile builds a profile from an explicit role list.
func NewProfile(name string, keyguardMirror bool, roles ...entity.Role) Profile {
	set := make(map[entity.Role]bool, len(roles))
	for _, r := range roles {
		set[r] = true
	}
	return Profile{Name: name, KeyguardMirror: keyguardMirror, roles: set}
}

// PhoneProfile has every role and a keyguard mirror.
func PhoneProfile() Profile {
	return NewProfile(ProfilePhone, true, entity.AllRoles()...)
}

// WifiOnlyProfile drops the mobile-only roles and has no keyguard mirror.
func WifiOnlyProfile() Profile {
	roles := make([]entity.Role, 0, len(entity.AllRoles()))
	for _, r := range entity.AllRoles() {
		if r == entity.RoleCarrierLabel || r == entity.RoleNoSim {
			continue
		}
		roles = append(roles, r)
	}
	return NewProfile(ProfileWifiOnly, false, roles...)
}

// ProfileByName resolves a profile name from configuration.
func ProfileByName(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ProfilePhone:
		return PhoneProfile(), nil
	case ProfileWifiOnly, "wifi_only", "tablet":
		return WifiOnlyProfile(), nil
	default:
		return Profile{}, fmt.Errorf("unknown status bar profile %q", name)
	}
}

// Has reports whether the profile tints role.
func (p Profile) Has(role entity.Role) bool {
	return p.roles[role]
}

// Roles returns the profile's roles in declaration order.
func (p Profile) Roles() []entity.Role {
	out := make([]entity.Role, 0, len(p.roles))
	for _, r := range entity.AllRoles() {
		if p.roles[r] {
			out = append(out, r)
		}
	}
	return out
}

func (p Profile) filter(roles []entity.Role) []entity.Role {
	out := make([]entity.Role, 0, len(roles))
	for _, r := range roles {
		if p.roles[r] {
			out = append(out, r)
		}
	}
	return out
}
