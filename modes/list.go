package modes

import (
	"cmp"
	"log/slog"
	"slices"
)

// List is an ordered collection of modes. Earlier modes win ties. A mode
// belongs to at most one list; moving it between lists hands it over.
type List []*Mode

// Add appends modes to l.
func (l *List) Add(m ...*Mode) { *l = append(*l, m...) }

// Append moves all modes of other to the end of l.
func (l *List) Append(other *List) {
	*l = append(*l, *other...)
	*other = nil
}

// grab removes the modes matching pred from l and returns them. Both lists
// keep their relative order.
func (l *List) grab(pred func(m *Mode) bool) List {
	var matched, rest List
	for _, m := range *l {
		if pred(m) {
			matched = append(matched, m)
		} else {
			rest = append(rest, m)
		}
	}
	*l = rest
	return matched
}

// GrabOnName removes and returns all modes called name.
func (l *List) GrabOnName(name string) List {
	return l.grab(func(m *Mode) bool { return m.Name == name })
}

// GrabOnType removes and returns all modes whose type matches t in the bits
// of mask.
func (l *List) GrabOnType(t, mask Type) List {
	return l.grab(func(m *Mode) bool { return m.Type&mask == t&mask })
}

// GrabOnHighestType removes and returns the user defined modes, if there
// are none the driver provided ones, and otherwise all modes.
func (l *List) GrabOnHighestType() List {
	if user := l.GrabOnType(TypeUserDef, TypeMask); len(user) > 0 {
		return user
	}
	if driver := l.GrabOnType(TypeDriver, TypeMask); len(driver) > 0 {
		return driver
	}
	all := *l
	*l = nil
	return all
}

// better reports whether a is preferable to b: a higher refresh, then a
// larger display, then a lower clock.
func better(a, b *Mode) bool {
	if a.VRefresh != b.VRefresh {
		return a.VRefresh > b.VRefresh
	}
	areaA, areaB := a.HDisplay*a.VDisplay, b.HDisplay*b.VDisplay
	if areaA != areaB {
		return areaA > areaB
	}
	return a.Clock < b.Clock
}

// GrabBestRefresh removes and returns the mode with the highest refresh
// rate. Ties go to the larger display area, then to the lower clock, then
// to the earlier mode. It returns nil for an empty list.
func (l *List) GrabBestRefresh() *Mode {
	if len(*l) == 0 {
		return nil
	}
	best := 0
	for i, m := range *l {
		if better(m, (*l)[best]) {
			best = i
		}
	}
	m := (*l)[best]
	*l = slices.Delete(*l, best, best+1)
	return m
}

// SortOnSize sorts l by descending Crtc display area, equal areas by
// descending refresh. Modes equal in both keep their order.
func (l List) SortOnSize() {
	slices.SortStableFunc(l, func(a, b *Mode) int {
		if c := cmp.Compare(b.CrtcHDisplay*b.CrtcVDisplay, a.CrtcHDisplay*a.CrtcVDisplay); c != 0 {
			return c
		}
		return cmp.Compare(b.VRefresh, a.VRefresh)
	})
}

// Delete removes m from l. It reports whether m was found.
func (l *List) Delete(m *Mode) bool {
	i := slices.Index(*l, m)
	if i < 0 {
		return false
	}
	*l = slices.Delete(*l, i, i+1)
	return true
}

// Log prints a modeline per mode at debug level.
func (l List) Log(log *slog.Logger) {
	for _, m := range l {
		log.Debug(m.Modeline())
	}
}
