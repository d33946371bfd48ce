package modes

import "fmt"

// CVT defaults.
const (
	cvtHGranularity = 1   // character cell width
	cvtMinVPorch    = 3   // lines
	cvtMinVBPorch   = 6   // lines
	cvtClockStep    = 250 // kHz

	cvtMinVSyncBP      = 550.0 // µs
	cvtHSyncPercentage = 8
	cvtMPrime          = 600 * 128 / 256 // gradient M*K/256
	cvtCPrime          = (40-20)*128/256 + 20

	cvtRBMinVBlank = 460.0 // µs
	cvtRBHSync     = 32
	cvtRBHBlank    = 160
	cvtRBVFPorch   = 3
)

// cvtVSync returns the vertical sync width the aspect ratio calls for.
func cvtVSync(hdisplay, vdisplay int) int {
	switch {
	case vdisplay%3 == 0 && vdisplay*4/3 == hdisplay:
		return 4
	case vdisplay%9 == 0 && vdisplay*16/9 == hdisplay:
		return 5
	case vdisplay%10 == 0 && vdisplay*16/10 == hdisplay:
		return 6
	case vdisplay%4 == 0 && vdisplay*5/4 == hdisplay:
		return 7
	case vdisplay%9 == 0 && vdisplay*15/9 == hdisplay:
		return 7
	}
	return 10
}

// CVT computes a VESA Coordinated Video Timing for the given resolution. A
// refresh of 0 means 60 Hz. Margins are never added. The result is not
// validated; nonsensical input yields a nonsensical mode.
func CVT(hdisplay, vdisplay int, vrefresh float64, reduced, interlaced bool) *Mode {
	if vrefresh == 0 {
		vrefresh = 60
	}

	fieldRate := vrefresh
	vdisplayRnd := vdisplay
	interlace := 0.0
	if interlaced {
		fieldRate *= 2
		vdisplayRnd /= 2
		interlace = 0.5
	}

	m := &Mode{
		HDisplay: hdisplay - hdisplay%cvtHGranularity,
		VDisplay: vdisplay,
	}
	vsync := cvtVSync(hdisplay, vdisplay)

	var hperiod float64 // µs
	if !reduced {
		hperiod = (1e6/fieldRate - cvtMinVSyncBP) /
			(float64(vdisplayRnd+cvtMinVPorch) + interlace)

		vsyncBP := int(cvtMinVSyncBP/hperiod) + 1
		vsyncBP = max(vsyncBP, vsync+cvtMinVPorch)
		m.VTotal = int(float64(vdisplayRnd+vsyncBP+cvtMinVPorch) + interlace)

		blankPct := max(cvtCPrime-cvtMPrime*hperiod/1000, 20)
		hblank := int(float64(m.HDisplay) * blankPct / (100 - blankPct))
		hblank -= hblank % (2 * cvtHGranularity)

		m.HTotal = m.HDisplay + hblank
		m.HSyncEnd = m.HDisplay + hblank/2
		m.HSyncStart = m.HSyncEnd - m.HTotal*cvtHSyncPercentage/100
		m.HSyncStart += cvtHGranularity - m.HSyncStart%cvtHGranularity

		m.VSyncStart = m.VDisplay + cvtMinVPorch
		m.VSyncEnd = m.VSyncStart + vsync
		m.Flags = FlagNHSync | FlagPVSync
	} else {
		hperiod = (1e6/fieldRate - cvtRBMinVBlank) / float64(vdisplayRnd)

		vbiLines := int(cvtRBMinVBlank/hperiod + 1)
		vbiLines = max(vbiLines, cvtRBVFPorch+vsync+cvtMinVBPorch)
		m.VTotal = int(float64(vdisplayRnd+vbiLines) + interlace)

		m.HTotal = m.HDisplay + cvtRBHBlank
		m.HSyncEnd = m.HDisplay + cvtRBHBlank/2
		m.HSyncStart = m.HSyncEnd - cvtRBHSync

		m.VSyncStart = m.VDisplay + cvtRBVFPorch
		m.VSyncEnd = m.VSyncStart + vsync
		m.Flags = FlagPHSync | FlagNVSync
	}

	m.Clock = int(float64(m.HTotal) * 1000 / hperiod)
	m.Clock -= m.Clock % cvtClockStep
	m.HSync = float64(m.Clock) / float64(m.HTotal)
	m.VRefresh = 1000 * float64(m.Clock) / float64(m.HTotal*m.VTotal)

	if interlaced {
		m.VTotal *= 2
		m.Flags |= FlagInterlace
	}
	m.Name = fmt.Sprintf("%dx%d", hdisplay, vdisplay)
	return m
}
