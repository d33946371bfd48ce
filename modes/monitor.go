package modes

// SyncTolerance widens the monitor's sync ranges on both ends.
const SyncTolerance = 0.01

// Range is a closed interval of sync rates.
type Range struct{ Lo, Hi float64 }

func (r Range) contains(v float64) bool {
	return v >= r.Lo*(1-SyncTolerance) && v <= r.Hi*(1+SyncTolerance)
}

// Monitor describes what a display device accepts. Empty ranges accept
// everything.
type Monitor struct {
	ID       string
	HSync    []Range // kHz
	VRefresh []Range // Hz

	// ReducedBlanking allows modes with CVT reduced blanking.
	ReducedBlanking bool

	// Modes the monitor offers.
	Modes List
}

func inRanges(ranges []Range, v float64) bool {
	if len(ranges) == 0 {
		return true
	}
	for _, r := range ranges {
		if r.contains(v) {
			return true
		}
	}
	return false
}

// Validate checks the sync rates of m against the monitor's ranges and
// rejects horizontal blanking that is too short, unless it is reduced
// blanking and the monitor supports it. A nil monitor accepts every mode.
func (mon *Monitor) Validate(m *Mode) Status {
	if mon == nil {
		return StatusOK
	}
	if !inRanges(mon.HSync, m.HSync) {
		return StatusHSync
	}
	if !inRanges(mon.VRefresh, m.VRefresh) {
		return StatusVSync
	}

	if m.CrtcHDisplay*5/4 > m.CrtcHTotal {
		if m.reducedBlanking() {
			if !mon.ReducedBlanking {
				return StatusNoReduced
			}
		} else if float64(m.CrtcHDisplay)*1.10 > float64(m.CrtcHTotal) {
			return StatusHSyncNarrow
		}
	}
	return StatusOK
}
