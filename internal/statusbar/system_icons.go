package statusbar

import (
	"github.com/bnema/statusbar/internal/domain/entity"
)

// AddSystemIcon creates a view for slot at viewIndex, mirrored onto the lock
// screen row, and re-applies the tint. Blacklisted slots get a blocked view.
func (c *Controller) AddSystemIcon(slot string, index, viewIndex int, icon entity.StatusBarIcon) {
	blocked := c.blacklist.Contains(slot)
	c.statusIcons.Insert(viewIndex, c.factory.NewIconView(slot, blocked, icon))
	if c.keyguardIcons != nil {
		c.keyguardIcons.Insert(viewIndex, c.factory.NewIconView(slot, blocked, icon))
	}
	c.log.Trace().
		Str("slot", slot).
		Int("index", index).
		Int("view_index", viewIndex).
		Bool("blocked", blocked).
		Msg("system icon added")
	c.ApplyIconTint()
}

// UpdateSystemIcon replaces the icon shown at viewIndex and re-applies the
// tint.
func (c *Controller) UpdateSystemIcon(slot string, index, viewIndex int, old, icon entity.StatusBarIcon) {
	if viewIndex < 0 || viewIndex >= c.statusIcons.Len() {
		c.log.Warn().Str("slot", slot).Int("view_index", viewIndex).Msg("update for unknown system icon")
		return
	}
	c.statusIcons.At(viewIndex).SetIcon(icon)
	if c.keyguardIcons != nil && viewIndex < c.keyguardIcons.Len() {
		c.keyguardIcons.At(viewIndex).SetIcon(icon)
	}
	c.log.Trace().
		Str("slot", slot).
		Int("index", index).
		Stringer("old", old).
		Stringer("new", icon).
		Msg("system icon updated")
	c.ApplyIconTint()
}

// RemoveSystemIcon drops the view at viewIndex from both rows.
func (c *Controller) RemoveSystemIcon(slot string, index, viewIndex int) {
	c.statusIcons.RemoveAt(viewIndex)
	if c.keyguardIcons != nil {
		c.keyguardIcons.RemoveAt(viewIndex)
	}
	c.log.Trace().Str("slot", slot).Int("index", index).Msg("system icon removed")
}

// OnTuningChanged handles a tunable change; only the icon blacklist is
// consumed.
func (c *Controller) OnTuningChanged(key, value string) {
	if key != entity.IconBlacklistKey {
		return
	}
	c.OnBlacklistChanged(value)
}

// OnBlacklistChanged installs a new blacklist and recreates every indicator
// so each view picks up its blocked state, then re-applies the tint.
func (c *Controller) OnBlacklistChanged(value string) {
	c.blacklist = entity.ParseBlacklist(value)

	views := c.statusIcons.Views()
	for i := len(views) - 1; i >= 0; i-- {
		c.RemoveSystemIcon(views[i].Slot(), i, i)
	}
	for i, v := range views {
		c.AddSystemIcon(v.Slot(), i, i, v.Icon())
	}
	c.ApplyIconTint()

	c.log.Debug().
		Strs("blacklist", c.blacklist.Slots()).
		Int("icons", len(views)).
		Msg("icon blacklist changed")
}

// UpdateNotificationIcons reconciles the notification row with entries and
// re-tints it. Grayscale verdicts of removed icons are forgotten.
func (c *Controller) UpdateNotificationIcons(entries []NotificationEntry) []Mutation {
	muts := c.notifications.Reconcile(entries)
	for _, m := range muts {
		if m.Op == MutationRemove {
			c.Registry().Forget(m.Key)
		}
	}
	c.ApplyNotificationIconsTint()

	if len(muts) > 0 {
		c.log.Trace().
			Int("mutations", len(muts)).
			Int("icons", c.notifications.Len()).
			Msg("notification icons reconciled")
	}
	return muts
}
