package statusbar

import (
	"github.com/bnema/statusbar/internal/application/port"
	"github.com/bnema/statusbar/internal/domain/entity"
)

// RegisterClock adds a clock widget at position. Clocks only hear about
// visibility; their color comes from the single-tone binding.
func (c *Controller) RegisterClock(position entity.ClockPosition, obs port.ClockObserver) {
	c.clocks[position] = append(c.clocks[position], obs)
}

// ClockSettings reads whether the clock is enabled and where it sits.
func (c *Controller) ClockSettings() (enabled bool, position entity.ClockPosition) {
	enabled = c.settings.Int(entity.SettingClock, 1) == 1
	position = entity.ClockPosition(c.settings.Int(entity.SettingClockStyle, int(entity.ClockRight)))
	return enabled, position
}

// SetClockVisibility shows or hides the clock at the configured position.
// Clocks at other positions are left alone.
func (c *Controller) SetClockVisibility(visible bool) {
	enabled, position := c.ClockSettings()
	shown := visible && enabled
	for _, obs := range c.clocks[position] {
		obs.SetClockVisible(shown)
	}
	c.log.Trace().
		Stringer("position", position).
		Bool("visible", shown).
		Msg("clock visibility set")
}
