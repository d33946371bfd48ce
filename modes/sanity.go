package modes

// Sanity checks the requested timing of m on its own. A mode already marked
// bad keeps its status.
func Sanity(m *Mode) Status {
	if m.Status != StatusOK {
		return m.Status
	}
	if m.Name == "" {
		return StatusError
	}
	if m.Clock <= 0 {
		return StatusNoClock
	}

	if m.HDisplay <= 0 || m.HSyncStart <= 0 || m.HSyncEnd <= 0 || m.HTotal <= 0 {
		return StatusHIllegal
	}
	if m.HTotal <= m.HSyncEnd || m.HSyncEnd <= m.HSyncStart || m.HSyncStart < m.HDisplay {
		return StatusHIllegal
	}

	if m.VDisplay <= 0 || m.VSyncStart <= 0 || m.VSyncEnd <= 0 || m.VTotal <= 0 {
		return StatusVIllegal
	}
	if m.VTotal <= m.VSyncEnd || m.VSyncEnd <= m.VSyncStart || m.VSyncStart < m.VDisplay {
		return StatusVIllegal
	}

	if m.VScan != 0 && m.VScan != 1 {
		return StatusNoVScan
	}
	if m.Flags&FlagInterlace != 0 {
		return StatusNoInterlace
	}
	if m.Flags&FlagDblScan != 0 {
		return StatusNoDblescan
	}
	return StatusOK
}

func fill(dst *int, v int) {
	if *dst == 0 {
		*dst = v
	}
}

// FillOut initializes the unset Crtc values of m from its requested timing.
// Values a hardware check has set before are kept. The sync rates are
// always recomputed from the Crtc timing and the adjusted flags cleared.
func FillOut(m *Mode) {
	if m.Status != StatusOK {
		return
	}

	fill(&m.SynthClock, m.Clock)

	fill(&m.CrtcHDisplay, m.HDisplay)
	fill(&m.CrtcHBlankStart, m.HDisplay)
	fill(&m.CrtcHSyncStart, m.HSyncStart)
	fill(&m.CrtcHSyncEnd, m.HSyncEnd)
	fill(&m.CrtcHBlankEnd, m.HTotal)
	fill(&m.CrtcHTotal, m.HTotal)
	fill(&m.CrtcHSkew, m.HSkew)

	fill(&m.CrtcVDisplay, m.VDisplay)
	fill(&m.CrtcVBlankStart, m.VDisplay)
	fill(&m.CrtcVSyncStart, m.VSyncStart)
	fill(&m.CrtcVSyncEnd, m.VSyncEnd)
	fill(&m.CrtcVBlankEnd, m.VTotal)
	fill(&m.CrtcVTotal, m.VTotal)

	if m.CrtcHTotal > 0 && m.CrtcVTotal > 0 {
		m.HSync = float64(m.SynthClock) / float64(m.CrtcHTotal)
		m.VRefresh = float64(m.SynthClock) * 1000 / float64(m.CrtcHTotal*m.CrtcVTotal)
	}

	m.CrtcHAdjusted = false
	m.CrtcVAdjusted = false
}

// CrtcSanity checks the Crtc timing of m:
//
//	Total >= BlankEnd > SyncEnd > SyncStart >= BlankStart >= Display
//
// for both directions.
func CrtcSanity(m *Mode) Status {
	if m.SynthClock <= 0 {
		return StatusNoClock
	}

	if !chain(m.CrtcHDisplay, m.CrtcHBlankStart, m.CrtcHSyncStart,
		m.CrtcHSyncEnd, m.CrtcHBlankEnd, m.CrtcHTotal) {
		return StatusHIllegal
	}
	if !chain(m.CrtcVDisplay, m.CrtcVBlankStart, m.CrtcVSyncStart,
		m.CrtcVSyncEnd, m.CrtcVBlankEnd, m.CrtcVTotal) {
		return StatusVIllegal
	}
	return StatusOK
}

func chain(display, blankStart, syncStart, syncEnd, blankEnd, total int) bool {
	if display <= 0 || blankStart <= 0 || syncStart <= 0 || syncEnd <= 0 ||
		blankEnd <= 0 || total <= 0 {
		return false
	}
	return total >= blankEnd && blankEnd > syncEnd && syncEnd > syncStart &&
		syncStart >= blankStart && blankStart >= display
}
