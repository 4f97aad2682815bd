package entity

import "fmt"

// StatusBarIcon describes what an indicator slot currently shows.
type StatusBarIcon struct {
	Package            string
	IconName           string
	Level              int
	Number             int
	Visible            bool
	ContentDescription string
}

func (i StatusBarIcon) String() string {
	return fmt.Sprintf("StatusBarIcon(icon=%s/%s visible=%t level=%d number=%d)",
		i.Package, i.IconName, i.Visible, i.Level, i.Number)
}

// ClockPosition selects which of the clock widgets is in use.
type ClockPosition int

const (
	ClockRight ClockPosition = iota
	ClockCenter
	ClockLeft
)

func (p ClockPosition) String() string {
	switch p {
	case ClockCenter:
		return "center"
	case ClockLeft:
		return "left"
	default:
		return "right"
	}
}
