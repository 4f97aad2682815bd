package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseColorSetting decodes a stored color. Settings providers store colors as
// signed 32-bit integers; hex strings are accepted as well.
func ParseColorSetting(raw string) (ARGB, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "#") {
		return ParseARGB(raw)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid color value %q", raw)
	}
	if v < -1<<31 || v > 1<<32-1 {
		return 0, fmt.Errorf("color value %q out of range", raw)
	}
	return ARGB(uint32(v)), nil
}

// FormatColorSetting encodes a color the way settings providers store it.
func FormatColorSetting(c ARGB) string {
	return strconv.FormatInt(int64(int32(c)), 10)
}
