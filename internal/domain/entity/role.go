// Package entity holds the status bar domain types: colors, roles, icons
// and host settings.
package entity

import "fmt"

// Role names a semantically coherent color slot of the status bar.
type Role int

const (
	RoleCarrierLabel Role = iota
	RoleBatteryFrame
	RoleBatteryFill
	RoleBatteryText
	RoleTrafficText
	RoleTrafficIcon
	RoleNetworkSignal
	RoleNoSim
	RoleAirplaneMode
	RoleStatusIcon
	RoleNotificationIcon
	RoleSingleToneIcon

	roleCount
)

var roleKeys = [roleCount]string{
	RoleCarrierLabel:     "carrier_label",
	RoleBatteryFrame:     "battery_frame",
	RoleBatteryFill:      "battery_fill",
	RoleBatteryText:      "battery_text",
	RoleTrafficText:      "traffic_text",
	RoleTrafficIcon:      "traffic_icon",
	RoleNetworkSignal:    "network_signal",
	RoleNoSim:            "no_sim",
	RoleAirplaneMode:     "airplane_mode",
	RoleStatusIcon:       "status_icon",
	RoleNotificationIcon: "notification_icon",
	RoleSingleToneIcon:   "single_tone_icon",
}

// AllRoles returns every role in declaration order.
func AllRoles() []Role {
	roles := make([]Role, 0, roleCount)
	for r := Role(0); r < roleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r >= 0 && r < roleCount
}

// String returns the snake_case key of the role.
func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleKeys[r]
}

// ParseRole resolves a snake_case role key.
func ParseRole(key string) (Role, error) {
	for r, k := range roleKeys {
		if k == key {
			return Role(r), nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", key)
}

// Group returns the role group r animates with.
func (r Role) Group() RoleGroup {
	for _, g := range AllGroups() {
		if g.Contains(r) {
			return g
		}
	}
	return GroupSingleTone
}

// Mode selects the light or dark variant of a role color.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// RoleGroup is a set of roles that animate together on one preference change.
type RoleGroup int

const (
	GroupCarrierLabel RoleGroup = iota
	GroupBattery
	GroupNetworkTraffic
	GroupStatusNetworkIcons
	GroupNotificationIcons
	GroupSingleTone
)

var groupRoles = map[RoleGroup][]Role{
	GroupCarrierLabel:       {RoleCarrierLabel},
	GroupBattery:            {RoleBatteryFrame, RoleBatteryFill, RoleBatteryText},
	GroupNetworkTraffic:     {RoleTrafficText, RoleTrafficIcon},
	GroupStatusNetworkIcons: {RoleStatusIcon, RoleNetworkSignal, RoleNoSim, RoleAirplaneMode},
	GroupNotificationIcons:  {RoleNotificationIcon},
	GroupSingleTone:         {RoleSingleToneIcon},
}

var groupNames = map[RoleGroup]string{
	GroupCarrierLabel:       "carrier_label",
	GroupBattery:            "battery",
	GroupNetworkTraffic:     "network_traffic",
	GroupStatusNetworkIcons: "status_network_icons",
	GroupNotificationIcons:  "notification_icons",
	GroupSingleTone:         "single_tone",
}

// AllGroups returns every role group in declaration order.
func AllGroups() []RoleGroup {
	return []RoleGroup{
		GroupCarrierLabel,
		GroupBattery,
		GroupNetworkTraffic,
		GroupStatusNetworkIcons,
		GroupNotificationIcons,
		GroupSingleTone,
	}
}

// Roles returns the members of the group. The slice must not be modified.
func (g RoleGroup) Roles() []Role {
	return groupRoles[g]
}

// Contains reports whether r belongs to the group.
func (g RoleGroup) Contains(r Role) bool {
	for _, member := range groupRoles[g] {
		if member == r {
			return true
		}
	}
	return false
}

func (g RoleGroup) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("group(%d)", int(g))
}

// ParseRoleGroup resolves a group name as returned by String.
func ParseRoleGroup(name string) (RoleGroup, error) {
	for g, n := range groupNames {
		if n == name {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown role group %q", name)
}
