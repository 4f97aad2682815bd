package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleKeysRoundTrip(t *testing.T) {
	for _, r := range AllRoles() {
		got, err := ParseRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	_, err := ParseRole("clock")
	assert.Error(t, err)
}

func TestEveryRoleBelongsToExactlyOneGroup(t *testing.T) {
	for _, r := range AllRoles() {
		count := 0
		for _, g := range AllGroups() {
			if g.Contains(r) {
				count++
				assert.Equal(t, g, r.Group())
			}
		}
		assert.Equal(t, 1, count, "role %s", r)
	}
}

func TestGroupMembers(t *testing.T) {
	assert.Equal(t, []Role{RoleBatteryFrame, RoleBatteryFill, RoleBatteryText}, GroupBattery.Roles())
	assert.Equal(t,
		[]Role{RoleStatusIcon, RoleNetworkSignal, RoleNoSim, RoleAirplaneMode},
		GroupStatusNetworkIcons.Roles())

	g, err := ParseRoleGroup("network_traffic")
	require.NoError(t, err)
	assert.Equal(t, GroupNetworkTraffic, g)
}
