package tint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/statusbar/internal/domain/entity"
)

func TestProfileByName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", ProfilePhone, false},
		{"phone", ProfilePhone, false},
		{" Phone ", ProfilePhone, false},
		{"wifi-only", ProfileWifiOnly, false},
		{"wifi_only", ProfileWifiOnly, false},
		{"tablet", ProfileWifiOnly, false},
		{"watch", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ProfileByName(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Name)
		})
	}
}

func TestProfileRoles(t *testing.T) {
	phone := PhoneProfile()
	assert.Equal(t, entity.AllRoles(), phone.Roles())
	assert.True(t, phone.KeyguardMirror)

	wifi := WifiOnlyProfile()
	assert.False(t, wifi.KeyguardMirror)
	assert.False(t, wifi.Has(entity.RoleCarrierLabel))
	assert.False(t, wifi.Has(entity.RoleNoSim))
	assert.True(t, wifi.Has(entity.RoleNetworkSignal))
	assert.Len(t, wifi.Roles(), len(entity.AllRoles())-2)
}
