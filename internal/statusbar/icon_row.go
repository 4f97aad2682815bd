package statusbar

import (
	"fmt"

	"github.com/bnema/statusbar/internal/application/port"
	"github.com/bnema/statusbar/internal/domain/entity"
)

// IconView is the stock indicator view. Hosts that render icons themselves
// supply their own port.IconViewFactory.
type IconView struct {
	slot    string
	blocked bool
	icon    entity.StatusBarIcon
	color   entity.ARGB
}

// NewIconView creates an indicator view for slot.
func NewIconView(slot string, blocked bool, icon entity.StatusBarIcon) *IconView {
	return &IconView{slot: slot, blocked: blocked, icon: icon}
}

// Slot returns the slot the view was created for.
func (v *IconView) Slot() string { return v.slot }

// Blocked reports whether the slot was blacklisted when the view was created.
func (v *IconView) Blocked() bool { return v.blocked }

// Icon returns the current icon payload.
func (v *IconView) Icon() entity.StatusBarIcon { return v.icon }

// SetIcon replaces the icon payload.
func (v *IconView) SetIcon(icon entity.StatusBarIcon) { v.icon = icon }

// SetColor records the tint written by the engine.
func (v *IconView) SetColor(c entity.ARGB) { v.color = c }

// Color returns the last tint written to the view.
func (v *IconView) Color() entity.ARGB { return v.color }

// Shown reports whether the view takes space in its row.
func (v *IconView) Shown() bool { return v.icon.Visible && !v.blocked }

func (v *IconView) String() string {
	return fmt.Sprintf("StatusBarIconView(slot=%s blocked=%t icon=%s)", v.slot, v.blocked, v.icon)
}

// ViewFactoryFunc adapts a function to port.IconViewFactory.
type ViewFactoryFunc func(slot string, blocked bool, icon entity.StatusBarIcon) port.IconView

// NewIconView implements port.IconViewFactory.
func (f ViewFactoryFunc) NewIconView(slot string, blocked bool, icon entity.StatusBarIcon) port.IconView {
	return f(slot, blocked, icon)
}

// DefaultViewFactory creates stock IconViews.
var DefaultViewFactory = ViewFactoryFunc(func(slot string, blocked bool, icon entity.StatusBarIcon) port.IconView {
	return NewIconView(slot, blocked, icon)
})

// IconRow is an ordered row of indicator views.
type IconRow struct {
	views []port.IconView
}

// NewIconRow creates an empty row.
func NewIconRow() *IconRow {
	return &IconRow{}
}

// Len returns the number of views in the row.
func (r *IconRow) Len() int { return len(r.views) }

// At returns the view at index i.
func (r *IconRow) At(i int) port.IconView { return r.views[i] }

// Insert places v at i, clamped to the row bounds.
func (r *IconRow) Insert(i int, v port.IconView) {
	i = max(0, min(i, len(r.views)))
	r.views = append(r.views, nil)
	copy(r.views[i+1:], r.views[i:])
	r.views[i] = v
}

// RemoveAt drops the view at i. Out of range indexes are ignored.
func (r *IconRow) RemoveAt(i int) {
	if i < 0 || i >= len(r.views) {
		return
	}
	r.views = append(r.views[:i], r.views[i+1:]...)
}

// IndexOf returns the position of the first view for slot, or -1.
func (r *IconRow) IndexOf(slot string) int {
	for i, v := range r.views {
		if v.Slot() == slot {
			return i
		}
	}
	return -1
}

// Views returns a copy of the row.
func (r *IconRow) Views() []port.IconView {
	out := make([]port.IconView, len(r.views))
	copy(out, r.views)
	return out
}

// Slots returns the slot of every view in order.
func (r *IconRow) Slots() []string {
	out := make([]string, len(r.views))
	for i, v := range r.views {
		out[i] = v.Slot()
	}
	return out
}
