package statusbar

import "github.com/bnema/statusbar/internal/domain/entity"

// BatterySettings are the battery meter display preferences.
type BatterySettings struct {
	Show       bool
	ShowText   bool
	CutOutText bool
}

// BatterySettings reads the battery display preferences.
func (c *Controller) BatterySettings() BatterySettings {
	return BatterySettings{
		Show:       c.settings.Int(entity.SettingBatteryShow, 1) == 1,
		ShowText:   c.settings.Int(entity.SettingBatteryShowText, 0) == 1,
		CutOutText: c.settings.Int(entity.SettingBatteryCutOutText, 1) == 1,
	}
}

// UpdateBatterySettings re-reads the battery preferences, applies them to the
// meter, and snaps the battery colors to the configured ones.
func (c *Controller) UpdateBatterySettings() {
	s := c.BatterySettings()
	if c.battery != nil {
		c.battery.SetVisible(s.Show)
		c.battery.SetTextVisible(s.ShowText)
		c.battery.SetCutOutText(s.CutOutText)
	}
	c.UpdateBatteryColors(false)
}
