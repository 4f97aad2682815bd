package entity

import (
	"sort"
	"strings"
)

// IconBlacklistKey is the tunable key that carries the icon blacklist.
const IconBlacklistKey = "icon_blacklist"

// Blacklist is the set of indicator slots that must not be shown.
type Blacklist map[string]struct{}

// ParseBlacklist splits a comma-separated slot list. Tokens that are empty
// or blank are dropped; surrounding blanks never belong to a slot name.
func ParseBlacklist(value string) Blacklist {
	b := make(Blacklist)
	for _, slot := range strings.Split(value, ",") {
		slot = strings.TrimSpace(slot)
		if slot == "" {
			continue
		}
		b[slot] = struct{}{}
	}
	return b
}

// Contains reports whether slot is blacklisted.
func (b Blacklist) Contains(slot string) bool {
	_, ok := b[slot]
	return ok
}

// Slots returns the blacklisted slots in sorted order.
func (b Blacklist) Slots() []string {
	slots := make([]string, 0, len(b))
	for slot := range b {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots
}

// String serializes the blacklist into its wire format. ParseBlacklist
// restores the set when no slot has surrounding blanks or a comma.
func (b Blacklist) String() string {
	return strings.Join(b.Slots(), ",")
}
