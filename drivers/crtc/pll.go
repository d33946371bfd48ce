package crtc

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/clktmr/radeonhd/hw"
	"github.com/clktmr/radeonhd/modes"
)

// Pixel clock defaults in kHz, used when the board doesn't provide limits.
const (
	DefaultRefClock = 27000
	DefaultMinClock = 16000
	DefaultMaxClock = 400000

	minVCO = 600000
	maxVCO = 1100000

	maxRefDiv  = 0x3ff
	maxFBDiv   = 0x7ff
	maxPostDiv = 0x7f
)

var ErrNoDividers = errors.New("crtc: no PLL dividers for clock")

// PLL is a pixel clock synthesizer.
type PLL struct {
	id   int
	regs hw.Registers
	off  hw.Reg
	log  *slog.Logger

	RefClock           int // kHz
	MinClock, MaxClock int // kHz
	Poll               hw.Poller

	saved []uint32
}

var _ modes.PLL = (*PLL)(nil)

// NewPLL returns pixel PLL id, 0 for P1 and 1 for P2, with the default
// limits.
func NewPLL(id int, regs hw.Registers, log *slog.Logger) *PLL {
	if log == nil {
		log = slog.Default()
	}
	return &PLL{
		id: id, regs: regs, off: hw.Reg(id) * p2Offset, log: log,
		RefClock: DefaultRefClock,
		MinClock: DefaultMinClock,
		MaxClock: DefaultMaxClock,
		Poll:     hw.Poller{Limit: 1000},
	}
}

func (p *PLL) reg(r hw.Reg) hw.Reg { return r + p.off }

// Valid checks clock in kHz against the range of the PLL.
func (p *PLL) Valid(clock int) modes.Status {
	if clock < p.MinClock {
		return modes.StatusClockLow
	}
	if clock > p.MaxClock {
		return modes.StatusClockHigh
	}
	return modes.StatusOK
}

// Dividers of a PLL setting: clock = RefClock * FB / (Ref * Post).
type Dividers struct {
	Ref, FB, Post int
}

func (d Dividers) clock(ref int) int { return ref * d.FB / (d.Ref * d.Post) }

// Calc returns the dividers that come closest to clock while keeping the VCO
// in range. Ties go to the lower reference divider.
func (p *PLL) Calc(clock int) (Dividers, error) {
	var best Dividers
	bestDiff := -1
	for post := 2; post <= maxPostDiv; post++ {
		vco := clock * post
		if vco < minVCO {
			continue
		}
		if vco > maxVCO {
			break
		}
		for ref := 2; ref <= maxRefDiv; ref++ {
			fb := (vco*ref + p.RefClock/2) / p.RefClock
			if fb > maxFBDiv {
				break
			}
			d := Dividers{ref, fb, post}
			diff := d.clock(p.RefClock) - clock
			if diff < 0 {
				diff = -diff
			}
			if bestDiff < 0 || diff < bestDiff {
				best, bestDiff = d, diff
			}
			if diff == 0 {
				return best, nil
			}
		}
	}
	if bestDiff < 0 {
		return Dividers{}, fmt.Errorf("%w: %d kHz", ErrNoDividers, clock)
	}
	return best, nil
}

// Set programs the PLL for clock and waits for it to lock. A PLL that
// doesn't lock is logged, the clock stays programmed.
func (p *PLL) Set(clock int) error {
	d, err := p.Calc(clock)
	if err != nil {
		return err
	}

	hw.Mask(p.regs, p.reg(RegPLLCntl), pllResetAll, pllResetAll)
	p.regs.Write(p.reg(RegPLLRefDiv), uint32(d.Ref))
	p.regs.Write(p.reg(RegPLLFBDiv), uint32(d.FB)<<16)
	p.regs.Write(p.reg(RegPLLPostDiv), uint32(d.Post))
	hw.Mask(p.regs, p.reg(RegPLLCntl), 0, pllResetAll)

	if !p.Poll.Until(func() bool { return p.regs.Read(p.reg(RegPLLCntl))&PLLLocked != 0 }) {
		p.log.Error("crtc: PLL lock timeout", "pll", p.id, "clock", clock)
	}
	p.log.Debug("crtc: PLL set", "pll", p.id, "clock", clock,
		"actual", d.clock(p.RefClock), "ref", d.Ref, "fb", d.FB, "post", d.Post)
	return nil
}

// Power puts the PLL to sleep or wakes it.
func (p *PLL) Power(on bool) {
	if on {
		hw.Mask(p.regs, p.reg(RegPLLCntl), 0, PLLSleep)
	} else {
		hw.Mask(p.regs, p.reg(RegPLLCntl), PLLSleep, PLLSleep)
	}
}

var pllRegs = []hw.Reg{RegPLLRefDiv, RegPLLFBDiv, RegPLLPostDiv, RegPLLCntl}

func (p *PLL) Save() {
	p.saved = p.saved[:0]
	for _, r := range pllRegs {
		p.saved = append(p.saved, p.regs.Read(p.reg(r)))
	}
}

func (p *PLL) Restore() {
	if len(p.saved) == 0 {
		p.log.Error("crtc: no PLL registers stored", "pll", p.id)
		return
	}
	for i, r := range pllRegs {
		p.regs.Write(p.reg(r), p.saved[i])
	}
}
