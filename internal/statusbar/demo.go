package statusbar

import (
	"github.com/bnema/statusbar/internal/domain/entity"
)

// Demo mode commands.
const (
	DemoCommandEnter  = "enter"
	DemoCommandExit   = "exit"
	DemoCommandStatus = "status"
)

const demoPackage = "statusbar.demo"

type demoSlot struct {
	slot  string
	icons map[string]string
}

// demoSlots maps status command arguments to icon names, in display order.
var demoSlots = []demoSlot{
	{"volume", map[string]string{"silent": "stat_sys_ringer_silent", "vibrate": "stat_sys_ringer_vibrate"}},
	{"bluetooth", map[string]string{"disconnected": "stat_sys_data_bluetooth", "connected": "stat_sys_data_bluetooth_connected"}},
	{"location", map[string]string{"show": "stat_sys_location"}},
	{"alarm", map[string]string{"show": "stat_sys_alarm"}},
	{"zen", map[string]string{"important": "stat_sys_zen_important", "none": "stat_sys_zen_none"}},
	{"tty", map[string]string{"show": "stat_sys_tty_mode"}},
	{"mute", map[string]string{"show": "stat_notify_call_mute"}},
	{"speakerphone", map[string]string{"show": "stat_sys_speakerphone"}},
	{"cast", map[string]string{"show": "stat_sys_cast"}},
	{"hotspot", map[string]string{"show": "stat_sys_hotspot"}},
}

// DemoSlots returns the slots a status command can set.
func DemoSlots() []string {
	out := make([]string, len(demoSlots))
	for i, s := range demoSlots {
		out[i] = s.slot
	}
	return out
}

// DemoIcons is the fake indicator row shown instead of the real one while
// demo mode is active.
type DemoIcons struct {
	c      *Controller
	row    *IconRow
	active bool
}

func newDemoIcons(c *Controller) *DemoIcons {
	return &DemoIcons{c: c, row: NewIconRow()}
}

// Active reports whether demo mode is on.
func (d *DemoIcons) Active() bool { return d.active }

// Row returns the demo indicator row.
func (d *DemoIcons) Row() *IconRow { return d.row }

// Dispatch runs a demo command. Status commands are ignored outside demo
// mode; unknown argument values clear the slot.
func (d *DemoIcons) Dispatch(command string, args map[string]string) {
	switch command {
	case DemoCommandEnter:
		d.active = true
	case DemoCommandExit:
		d.active = false
		for d.row.Len() > 0 {
			d.row.RemoveAt(d.row.Len() - 1)
		}
	case DemoCommandStatus:
		if !d.active {
			return
		}
		for _, s := range demoSlots {
			value, ok := args[s.slot]
			if !ok {
				continue
			}
			d.updateSlot(s.slot, s.icons[value])
		}
		d.c.ApplyIconTint()
	default:
		d.c.log.Debug().Str("command", command).Msg("unknown demo command")
		return
	}
	d.c.log.Debug().Str("command", command).Bool("active", d.active).Msg("demo command dispatched")
}

func (d *DemoIcons) updateSlot(slot, iconName string) {
	idx := d.row.IndexOf(slot)
	if idx >= 0 {
		if d.row.At(idx).Icon().IconName == iconName && iconName != "" {
			return
		}
		d.row.RemoveAt(idx)
	}
	if iconName == "" {
		return
	}
	icon := entity.StatusBarIcon{Package: demoPackage, IconName: iconName, Visible: true}
	d.row.Insert(0, d.c.factory.NewIconView(slot, false, icon))
}

// Demo returns the demo mode icons.
func (c *Controller) Demo() *DemoIcons { return c.demo }

// DispatchDemoCommand forwards a demo command to the demo icons.
func (c *Controller) DispatchDemoCommand(command string, args map[string]string) {
	c.demo.Dispatch(command, args)
}
