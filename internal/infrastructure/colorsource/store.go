package colorsource

import (
	"os"
	"strings"
)

// MapStore is an in-memory preference store.
type MapStore map[string]string

// Lookup implements port.PreferenceStore.
func (m MapStore) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

const envPrefix = "STATUSBAR_SETTING_"

// EnvStore reads settings from the environment, so a single value can be
// overridden for one run: STATUSBAR_SETTING_STATUS_BAR_CLOCK=0.
type EnvStore struct{}

// EnvName returns the variable consulted for key.
func EnvName(key string) string {
	return envPrefix + strings.ToUpper(key)
}

// Lookup implements port.PreferenceStore.
func (EnvStore) Lookup(key string) (string, bool) {
	return os.LookupEnv(EnvName(key))
}
