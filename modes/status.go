package modes

import "fmt"

// Status is the result of validating a mode. Any status but StatusOK names
// the check the mode failed and can be used as an error.
type Status int

const (
	StatusOK Status = iota
	StatusHSync
	StatusVSync
	StatusHIllegal
	StatusVIllegal
	StatusBadWidth
	StatusNoMode
	StatusNoInterlace
	StatusNoDblescan
	StatusNoVScan
	StatusMem
	StatusVirtualX
	StatusVirtualY
	StatusMemVirt
	StatusNoClock
	StatusClockHigh
	StatusClockLow
	StatusClockRange
	StatusBadHValue
	StatusBadVValue
	StatusBadVScan
	StatusHSyncNarrow
	StatusHSyncWide
	StatusHBlankNarrow
	StatusHBlankWide
	StatusVSyncNarrow
	StatusVSyncWide
	StatusVBlankNarrow
	StatusVBlankWide
	StatusPanel
	StatusInterlaceWidth
	StatusOneWidth
	StatusOneHeight
	StatusOneSize
	StatusNoReduced

	StatusBad   Status = -2
	StatusError Status = -1
)

// Driver specific statuses.
const (
	StatusMemBW Status = 0x51b01 + iota
	StatusOutputUndef
	StatusNotPAL
	StatusNotNTSC
	StatusHTotalWide
	StatusHDisplayWide
	StatusHSyncRange
	StatusHBlankRange
	StatusVTotalWide
	StatusVDisplayWide
	StatusVSyncRange
	StatusVBlankRange
	StatusPitch
	StatusOffset
	StatusMinHeight
	StatusFixed
	StatusRetriesExceeded
)

var statusText = map[Status]string{
	StatusOK:             "Mode OK",
	StatusHSync:          "hsync out of range",
	StatusVSync:          "vrefresh out of range",
	StatusHIllegal:       "illegal horizontal timings",
	StatusVIllegal:       "illegal vertical timings",
	StatusBadWidth:       "width requires unsupported line pitch",
	StatusNoMode:         "no mode of this name",
	StatusNoInterlace:    "interlace mode not supported",
	StatusNoDblescan:     "doublescan mode not supported",
	StatusNoVScan:        "multiscan mode not supported",
	StatusMem:            "insufficient memory for mode",
	StatusVirtualX:       "width too large for virtual size",
	StatusVirtualY:       "height too large for virtual size",
	StatusMemVirt:        "insufficient memory given virtual size",
	StatusNoClock:        "no clock available for mode",
	StatusClockHigh:      "mode clock too high",
	StatusClockLow:       "mode clock too low",
	StatusClockRange:     "bad mode clock/interlace/doublescan",
	StatusBadHValue:      "horizontal timing out of range",
	StatusBadVValue:      "vertical timing out of range",
	StatusBadVScan:       "VScan value out of range",
	StatusHSyncNarrow:    "horizontal sync too narrow",
	StatusHSyncWide:      "horizontal sync too wide",
	StatusHBlankNarrow:   "horizontal blanking too narrow",
	StatusHBlankWide:     "horizontal blanking too wide",
	StatusVSyncNarrow:    "vertical sync too narrow",
	StatusVSyncWide:      "vertical sync too wide",
	StatusVBlankNarrow:   "vertical blanking too narrow",
	StatusVBlankWide:     "vertical blanking too wide",
	StatusPanel:          "exceeds panel dimensions",
	StatusInterlaceWidth: "width too large for interlaced mode",
	StatusOneWidth:       "all modes must have the same width",
	StatusOneHeight:      "all modes must have the same height",
	StatusOneSize:        "all modes must have the same resolution",
	StatusNoReduced:      "monitor doesn't support reduced blanking",
	StatusBad:            "unknown reason",
	StatusError:          "internal error",

	StatusMemBW:           "Memory bandwidth exceeded.",
	StatusOutputUndef:     "Mode not defined by output device.",
	StatusNotPAL:          "This is not a PAL TV mode.",
	StatusNotNTSC:         "This is not an NTSC TV mode.",
	StatusHTotalWide:      "Horizontal Total is out of range.",
	StatusHDisplayWide:    "Mode is too wide.",
	StatusHSyncRange:      "Horizontal Sync Start is out of range.",
	StatusHBlankRange:     "Horizontal Blanking Start is out of range.",
	StatusVTotalWide:      "Vertical Total is out of range.",
	StatusVDisplayWide:    "Mode is too high.",
	StatusVSyncRange:      "Vertical Sync Start is out of range.",
	StatusVBlankRange:     "Vertical Blanking Start is out of range.",
	StatusPitch:           "Scanout buffer Pitch too wide.",
	StatusOffset:          "Scanout buffer offset too high in FB.",
	StatusMinHeight:       "Height too low.",
	StatusFixed:           "Mode not compatible with fixed mode.",
	StatusRetriesExceeded: "Mode adjustments did not settle.",
}

func (s Status) String() string {
	if t, ok := statusText[s]; ok {
		return t
	}
	return fmt.Sprintf("unknown status 0x%x", int(s))
}

func (s Status) Error() string { return s.String() }

// Err returns s as an error, nil for StatusOK.
func (s Status) Err() error {
	if s == StatusOK {
		return nil
	}
	return s
}
