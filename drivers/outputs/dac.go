package outputs

import (
	"log/slog"

	"github.com/clktmr/radeonhd/hw"
	"github.com/clktmr/radeonhd/modes"
)

// RAMDAC clock limits in kHz.
const (
	DACMinClock = 20000
	DACMaxClock = 400000
)

// DAC is one of the analog outputs.
type DAC struct {
	base
	off   hw.Reg
	saved bank
}

var _ Output = (*DAC)(nil)

// NewDAC returns DAC A for id 0 and DAC B for id 1.
func NewDAC(id int, regs hw.Registers, log *slog.Logger) *DAC {
	name := "DAC A"
	if id != 0 {
		name = "DAC B"
	}
	d := &DAC{base: newBase(name, regs, log), off: hw.Reg(id) * dacBOffset}
	d.saved.regs = []hw.Reg{
		d.reg(RegDACSourceSelect), d.reg(RegDACForceOutput),
		d.reg(RegDACPowerdown), d.reg(RegDACEnable),
	}
	return d
}

func (d *DAC) reg(r hw.Reg) hw.Reg { return r + d.off }

func (d *DAC) ModeValid(m *modes.Mode) modes.Status {
	if m.Clock < DACMinClock {
		return modes.StatusClockLow
	}
	if m.Clock > DACMaxClock {
		return modes.StatusClockHigh
	}
	return modes.StatusOK
}

// SetMode selects the attached CRTC as source.
func (d *DAC) SetMode(m *modes.Mode) {
	d.regs.Write(d.reg(RegDACSourceSelect), uint32(d.crtc)&0x3)
	d.regs.Write(d.reg(RegDACForceOutput), 0)
}

func (d *DAC) Power(p Power) {
	switch p {
	case PowerOn:
		d.regs.Write(d.reg(RegDACEnable), 1)
		d.regs.Write(d.reg(RegDACPowerdown), 0)
	case PowerReset:
		d.regs.Write(d.reg(RegDACEnable), 1)
		d.regs.Write(d.reg(RegDACPowerdown), DACPowerdownAll)
	default:
		d.regs.Write(d.reg(RegDACPowerdown), DACPowerdownAll)
		d.regs.Write(d.reg(RegDACEnable), 0)
	}
}

func (d *DAC) Save()    { d.saved.save(d.regs) }
func (d *DAC) Restore() { d.restore(&d.saved) }
