package port

import (
	"image"

	"github.com/bnema/statusbar/internal/domain/entity"
)

// ColorTarget is any widget that takes a single tint color: carrier labels,
// clocks, the overflow indicator, indicator icons.
type ColorTarget interface {
	SetColor(c entity.ARGB)
}

// BatteryTarget is a battery meter.
type BatteryTarget interface {
	SetFrameAndFillColor(frame, fill entity.ARGB)
	SetTextColor(text entity.ARGB)
}

// TrafficTarget is a network traffic readout.
type TrafficTarget interface {
	SetTextColor(c entity.ARGB)
	SetIconColor(c entity.ARGB)
}

// SignalTarget is the mobile/Wi-Fi signal cluster.
type SignalTarget interface {
	SetSignalColors(signal, noSim, airplane entity.ARGB)
}

// IconView is one indicator icon in a system icon row.
type IconView interface {
	ColorTarget
	Slot() string
	Blocked() bool
	Icon() entity.StatusBarIcon
	SetIcon(icon entity.StatusBarIcon)
}

// IconViewFactory creates indicator icon views for a row.
type IconViewFactory interface {
	NewIconView(slot string, blocked bool, icon entity.StatusBarIcon) IconView
}

// NotificationIconView is one icon in the notification icon row.
type NotificationIconView interface {
	ColorTarget
	// Key identifies the notification the icon belongs to.
	Key() string
	// PreFlat reports whether the icon was designed for the pre-flat era,
	// in which case it is only tinted when grayscale.
	PreFlat() bool
	// Bitmap returns the icon pixels, used for the grayscale check.
	Bitmap() image.Image
}

// AlphaTarget is an area of the status bar that can fade in and out.
type AlphaTarget interface {
	SetAlpha(alpha float64)
	SetVisible(visible bool)
}

// ClockObserver is notified when the clock it renders must change visibility.
type ClockObserver interface {
	SetClockVisible(visible bool)
}

// IconContainer is an ordered row of indicator icon views.
type IconContainer interface {
	Len() int
	At(i int) IconView
	Insert(i int, v IconView)
	RemoveAt(i int)
}

// NotificationIconContainer is the ordered notification icon row as seen by
// the tint engine.
type NotificationIconContainer interface {
	Len() int
	At(i int) NotificationIconView
}

// BatteryView is the visibility side of a battery meter.
type BatteryView interface {
	SetVisible(visible bool)
	SetTextVisible(visible bool)
	SetCutOutText(cutOut bool)
}
