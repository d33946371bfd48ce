// Package crtc drives the two display controllers and their pixel PLLs.
//
// Both types answer the capability questions of the mode validator and
// program the scanout timing once a mode has been chosen.
package crtc

import (
	"log/slog"

	"github.com/clktmr/radeonhd/hw"
	"github.com/clktmr/radeonhd/hw/r5xx"
	"github.com/clktmr/radeonhd/modes"
)

// Scanout limits.
const (
	PitchAlign = 256 // bytes
	MaxWidth   = 8192
	MaxHeight  = 8192
)

// timing is the register block Save and Restore cover.
var timing = []hw.Reg{
	RegHTotal, RegHBlankStartEnd, RegHSyncA, RegHSyncACntl,
	RegVTotal, RegVBlankStartEnd, RegVSyncA, RegVSyncACntl,
	RegInterlaceControl, RegGrphControl, RegGrphPrimarySurface, RegGrphPitch,
	RegGrphXEnd, RegGrphYEnd, RegViewportSize, RegGrphEnable, RegControl,
}

// CRTC is one of the display controllers D1 and D2.
type CRTC struct {
	id   int
	regs hw.Registers
	off  hw.Reg
	pll  *PLL
	log  *slog.Logger

	// Enabled marks the controller as driving an output. Only enabled
	// controllers take part in mode validation.
	Enabled bool

	// FBOffset is where scanout buffers start in video RAM. Memory below it
	// isn't available to the framebuffer.
	FBOffset int

	saved []uint32
}

var _ modes.CRTC = (*CRTC)(nil)

// New returns controller id, 0 for D1 and 1 for D2, clocked by pll.
func New(id int, regs hw.Registers, pll *PLL, log *slog.Logger) *CRTC {
	if log == nil {
		log = slog.Default()
	}
	return &CRTC{id: id, regs: regs, off: hw.Reg(id) * d2Offset, pll: pll, log: log}
}

func (c *CRTC) ID() int             { return c.id }
func (c *CRTC) Active() bool        { return c.Enabled }
func (c *CRTC) PLL() modes.PLL      { return c.pll }
func (c *CRTC) PixelPLL() *PLL      { return c.pll }
func (c *CRTC) reg(r hw.Reg) hw.Reg { return r + c.off }

// FBValid aligns the pitch of a width x height framebuffer to 256 bytes and
// checks that it fits into mem and that the 2D engine can render to it.
func (c *CRTC) FBValid(width, height, bpp, mem int) (pitch int, s modes.Status) {
	if width <= 0 || width > MaxWidth {
		return 0, modes.StatusHDisplayWide
	}
	if height <= 0 || height > MaxHeight {
		return 0, modes.StatusVDisplayWide
	}

	cpp := r5xx.BytesPerPixel(bpp)
	bytes := (width*cpp + PitchAlign - 1) &^ (PitchAlign - 1)
	pitch = bytes / cpp

	if c.FBOffset+bytes*height > mem {
		return 0, modes.StatusMem
	}
	if !r5xx.FBValid(pitch, bpp, height) {
		return 0, modes.StatusPitch
	}
	return pitch, modes.StatusOK
}

// ModeValid checks that the Crtc timing of m fits the timing registers.
// Interlaced modes need an even VTotal, an odd one is rounded up.
func (c *CRTC) ModeValid(m *modes.Mode) modes.Status {
	if m.CrtcHDisplay > MaxWidth {
		return modes.StatusHDisplayWide
	}
	if m.CrtcHTotal >= timingLimit {
		return modes.StatusHTotalWide
	}
	if m.CrtcHSyncEnd-m.CrtcHSyncStart >= timingLimit {
		return modes.StatusHSyncRange
	}
	if m.CrtcHTotal+m.CrtcHBlankStart-m.CrtcHSyncStart >= timingLimit {
		return modes.StatusHBlankRange
	}

	if m.CrtcVDisplay > MaxHeight {
		return modes.StatusVDisplayWide
	}
	if m.CrtcVTotal >= timingLimit {
		return modes.StatusVTotalWide
	}
	if m.CrtcVSyncEnd-m.CrtcVSyncStart >= timingLimit {
		return modes.StatusVSyncRange
	}
	if m.CrtcVTotal+m.CrtcVBlankStart-m.CrtcVSyncStart >= timingLimit {
		return modes.StatusVBlankRange
	}

	if m.Flags&modes.FlagInterlace != 0 && m.CrtcVTotal&1 != 0 {
		m.CrtcVTotal++
		m.CrtcVAdjusted = true
	}
	return modes.StatusOK
}

// SetMode programs the timing of m. Sync and blanking positions are
// relative to the start of the sync pulse.
func (c *CRTC) SetMode(m *modes.Mode) {
	w := func(r hw.Reg, v int) { c.regs.Write(c.reg(r), uint32(v)) }

	w(RegHTotal, m.CrtcHTotal-1)
	w(RegHBlankStartEnd, (m.CrtcHTotal+m.CrtcHBlankStart-m.CrtcHSyncStart)|
		(m.CrtcHBlankEnd-m.CrtcHSyncStart)<<16)
	w(RegHSyncA, (m.CrtcHSyncEnd-m.CrtcHSyncStart)<<16)
	w(RegHSyncACntl, b2i(m.Flags&modes.FlagNHSync != 0))

	w(RegVTotal, m.CrtcVTotal-1)
	w(RegVBlankStartEnd, (m.CrtcVTotal+m.CrtcVBlankStart-m.CrtcVSyncStart)|
		(m.CrtcVBlankEnd-m.CrtcVSyncStart)<<16)
	w(RegVSyncA, (m.CrtcVSyncEnd-m.CrtcVSyncStart)<<16)
	w(RegVSyncACntl, b2i(m.Flags&modes.FlagNVSync != 0))

	w(RegInterlaceControl, b2i(m.Flags&modes.FlagInterlace != 0))
	w(RegViewportSize, m.CrtcHDisplay<<16|m.CrtcVDisplay)

	c.log.Debug("crtc: set mode", "crtc", c.id, "mode", m.Name)
}

// Scanout points the controller at a framebuffer at offset in video RAM.
func (c *CRTC) Scanout(offset uint32, width, height, pitch, bpp int) {
	var ctl uint32
	switch bpp {
	case 8:
		ctl = grphDepth8
	case 15:
		ctl = grphDepth16
	case 16:
		ctl = grphDepth16 | grphFormat565
	default:
		ctl = grphDepth32
	}

	c.regs.Write(c.reg(RegGrphEnable), 1)
	c.regs.Write(c.reg(RegGrphControl), ctl)
	c.regs.Write(c.reg(RegGrphPrimarySurface), offset)
	c.regs.Write(c.reg(RegGrphPitch), uint32(pitch))
	c.regs.Write(c.reg(RegGrphXEnd), uint32(width))
	c.regs.Write(c.reg(RegGrphYEnd), uint32(height))
}

// Power enables or disables scanout.
func (c *CRTC) Power(on bool) {
	if on {
		hw.Mask(c.regs, c.reg(RegControl), ControlMasterEn, ControlMasterEn|ControlDispRead)
	} else {
		hw.Mask(c.regs, c.reg(RegControl), ControlDispRead, ControlMasterEn|ControlDispRead)
	}
}

// Save stores the controller and PLL state for Restore.
func (c *CRTC) Save() {
	c.saved = c.saved[:0]
	for _, r := range timing {
		c.saved = append(c.saved, c.regs.Read(c.reg(r)))
	}
	c.pll.Save()
}

// Restore writes back the state stored by Save.
func (c *CRTC) Restore() {
	if len(c.saved) == 0 {
		c.log.Error("crtc: no registers stored", "crtc", c.id)
		return
	}
	c.pll.Restore()
	for i, r := range timing {
		c.regs.Write(c.reg(r), c.saved[i])
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
