// Package modes generates, collects and validates display timings.
//
// A Mode starts out with the timing a monitor or the user asked for. The
// validator then fills in the Crtc* copy of that timing, which the hardware
// checks may adjust, and accepts or rejects the mode with a Status.
package modes

import (
	"fmt"
	"strings"
)

// Flag holds sync polarity and scan flags of a mode.
type Flag uint32

const (
	FlagPHSync Flag = 1 << iota
	FlagNHSync
	FlagPVSync
	FlagNVSync
	FlagInterlace
	FlagDblScan
	FlagCSync
	FlagPCSync
	FlagNCSync
	FlagHSkew
	FlagBCast
)

// Type tags where a mode came from.
type Type uint8

const (
	TypeBuiltin   Type = 0x01
	TypeClockC    Type = 0x02
	TypeCrtcC     Type = 0x04
	TypePreferred Type = 0x08
	TypeDefault   Type = 0x10
	TypeUserDef   Type = 0x20
	TypeDriver    Type = 0x40

	// TypeMask selects the source bits, leaving out builtin and preferred.
	TypeMask Type = 0xf0
)

// Mode is one display timing. Horizontal values count pixels, vertical
// values lines, clocks are in kHz.
type Mode struct {
	Name   string
	Status Status
	Type   Type

	Clock                                  int
	HDisplay, HSyncStart, HSyncEnd, HTotal int
	HSkew                                  int
	VDisplay, VSyncStart, VSyncEnd, VTotal int
	VScan                                  int
	Flags                                  Flag

	// Timing as programmed into the CRTC. Zero fields are filled in from the
	// timing above; hardware checks may adjust them and then set the
	// matching Adjusted flag.
	SynthClock                                    int
	CrtcHDisplay, CrtcHBlankStart, CrtcHSyncStart int
	CrtcHSyncEnd, CrtcHBlankEnd, CrtcHTotal       int
	CrtcHSkew                                     int
	CrtcVDisplay, CrtcVBlankStart, CrtcVSyncStart int
	CrtcVSyncEnd, CrtcVBlankEnd, CrtcVTotal       int
	CrtcHAdjusted, CrtcVAdjusted                  bool

	HSync    float64 // kHz
	VRefresh float64 // Hz

	// Private is opaque data of the mode's source. Copies share it.
	Private any
}

// Copy returns a copy of m that shares Private with it.
func (m *Mode) Copy() *Mode {
	c := *m
	return &c
}

func (m *Mode) adjusted() bool { return m.CrtcHAdjusted || m.CrtcVAdjusted }

// reducedBlanking reports whether the Crtc timing matches the horizontal and
// vertical blanking of a reduced blanking CVT mode.
func (m *Mode) reducedBlanking() bool {
	return m.CrtcHTotal-m.CrtcHDisplay == 160 &&
		m.CrtcHSyncEnd-m.CrtcHDisplay == 80 &&
		m.CrtcHSyncEnd-m.CrtcHSyncStart == 32 &&
		m.CrtcVSyncStart-m.CrtcVDisplay == 3
}

var flagNames = []struct {
	flag Flag
	name string
}{
	{FlagInterlace, "interlace"},
	{FlagCSync, "composite"},
	{FlagDblScan, "doublescan"},
	{FlagBCast, "bcast"},
	{FlagPHSync, "+hsync"},
	{FlagNHSync, "-hsync"},
	{FlagPVSync, "+vsync"},
	{FlagNVSync, "-vsync"},
	{FlagPCSync, "+csync"},
	{FlagNCSync, "-csync"},
}

// Modeline formats m the way an X config file describes it.
func (m *Mode) Modeline() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Modeline %q  %6.2f  %d %d %d %d  %d %d %d %d", m.Name,
		float64(m.Clock)/1000, m.HDisplay, m.HSyncStart, m.HSyncEnd, m.HTotal,
		m.VDisplay, m.VSyncStart, m.VSyncEnd, m.VTotal)
	if m.HSkew != 0 {
		fmt.Fprintf(&b, " hskew %d", m.HSkew)
	}
	if m.VScan != 0 {
		fmt.Fprintf(&b, " vscan %d", m.VScan)
	}
	for _, f := range flagNames {
		if m.Flags&f.flag != 0 {
			b.WriteString(" " + f.name)
		}
	}
	return b.String()
}

func (m *Mode) String() string {
	return fmt.Sprintf("%q (%dx%d:%3.1fMHz)", m.Name, m.HDisplay, m.VDisplay,
		float64(m.Clock)/1000)
}
