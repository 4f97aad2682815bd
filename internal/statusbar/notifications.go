package statusbar

import (
	"github.com/bnema/statusbar/internal/application/port"
)

// NotificationEntry is an active notification as seen by the icon row.
type NotificationEntry struct {
	Key  string
	Icon port.NotificationIconView
	// Ambient notifications are hidden from the status bar unless ForceShow
	// is set.
	Ambient   bool
	ForceShow bool
	// TopLevel is false for children of a bundled group.
	TopLevel bool
}

func (e NotificationEntry) shown() bool {
	if e.Ambient && !e.ForceShow {
		return false
	}
	return e.TopLevel
}

// MutationOp is the kind of row change made by a reconcile.
type MutationOp int

const (
	MutationRemove MutationOp = iota
	MutationInsert
	MutationMove
)

func (op MutationOp) String() string {
	switch op {
	case MutationInsert:
		return "insert"
	case MutationMove:
		return "move"
	default:
		return "remove"
	}
}

// Mutation is one change applied to the notification row.
type Mutation struct {
	Op    MutationOp
	Key   string
	Index int
}

// NotificationRow is the ordered notification icon row. It implements
// port.NotificationIconContainer.
type NotificationRow struct {
	icons []port.NotificationIconView
}

// NewNotificationRow creates an empty row.
func NewNotificationRow() *NotificationRow {
	return &NotificationRow{}
}

// Len returns the number of icons in the row.
func (r *NotificationRow) Len() int { return len(r.icons) }

// At returns the icon at index i.
func (r *NotificationRow) At(i int) port.NotificationIconView { return r.icons[i] }

// Keys returns the notification key of every icon in order.
func (r *NotificationRow) Keys() []string {
	out := make([]string, len(r.icons))
	for i, icon := range r.icons {
		out[i] = icon.Key()
	}
	return out
}

// Visible returns the icons shown when at most limit fit, and whether the
// overflow indicator is needed. A limit of zero or less shows every icon.
func (r *NotificationRow) Visible(limit int) ([]port.NotificationIconView, bool) {
	n := len(r.icons)
	if limit > 0 && n > limit {
		n = limit
	}
	out := make([]port.NotificationIconView, n)
	copy(out, r.icons[:n])
	return out, n < len(r.icons)
}

// Reconcile makes the row equal to the icons of the entries that belong in
// the status bar, in entry order. Ambient entries that are not force-shown
// and non top-level entries are filtered out. An entry carrying a new view
// under a key already in the row replaces the old view with a remove and an
// insert. The applied changes are returned in order.
func (r *NotificationRow) Reconcile(entries []NotificationEntry) []Mutation {
	toShow := make([]port.NotificationIconView, 0, len(entries))
	wanted := make(map[string]port.NotificationIconView, len(entries))
	for _, e := range entries {
		if !e.shown() || e.Icon == nil {
			continue
		}
		if _, dup := wanted[e.Icon.Key()]; dup {
			continue
		}
		toShow = append(toShow, e.Icon)
		wanted[e.Icon.Key()] = e.Icon
	}

	var muts []Mutation

	kept := r.icons[:0]
	for i, icon := range r.icons {
		if fresh, ok := wanted[icon.Key()]; ok && fresh == icon {
			kept = append(kept, icon)
			continue
		}
		muts = append(muts, Mutation{Op: MutationRemove, Key: icon.Key(), Index: i - len(muts)})
	}
	r.icons = kept

	for i, icon := range toShow {
		if r.indexOf(icon.Key()) >= 0 {
			continue
		}
		r.insert(i, icon)
		muts = append(muts, Mutation{Op: MutationInsert, Key: icon.Key(), Index: i})
	}

	for i, expected := range toShow {
		if r.icons[i].Key() == expected.Key() {
			continue
		}
		r.remove(r.indexOf(expected.Key()))
		r.insert(i, expected)
		muts = append(muts, Mutation{Op: MutationMove, Key: expected.Key(), Index: i})
	}

	return muts
}

func (r *NotificationRow) indexOf(key string) int {
	for i, icon := range r.icons {
		if icon.Key() == key {
			return i
		}
	}
	return -1
}

func (r *NotificationRow) insert(i int, icon port.NotificationIconView) {
	r.icons = append(r.icons, nil)
	copy(r.icons[i+1:], r.icons[i:])
	r.icons[i] = icon
}

func (r *NotificationRow) remove(i int) {
	r.icons = append(r.icons[:i], r.icons[i+1:]...)
}
