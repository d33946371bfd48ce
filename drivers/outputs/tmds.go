package outputs

import (
	"log/slog"
	"time"

	"github.com/clktmr/radeonhd/hw"
	"github.com/clktmr/radeonhd/modes"
)

// TMDS is the integrated single link TMDS transmitter.
type TMDS struct {
	base
	saved bank
}

var _ Output = (*TMDS)(nil)

func NewTMDS(regs hw.Registers, log *slog.Logger) *TMDS {
	t := &TMDS{base: newBase("TMDS A", regs, log)}
	t.saved.regs = []hw.Reg{
		RegTMDSCntl, RegTMDSSourceSelect, RegTMDSColorFormat,
		RegTMDSTransmitterControl, RegTMDSTransmitterAdjust, RegTMDSMacroControl,
		RegTMDSDataSynchronization, RegTMDSTransmitterEnable,
	}
	return t
}

func (t *TMDS) ModeValid(m *modes.Mode) modes.Status {
	if m.Flags&modes.FlagInterlace != 0 {
		return modes.StatusNoInterlace
	}
	if m.SynthClock > SingleLinkMaxClock {
		return modes.StatusClockHigh
	}
	return modes.StatusOK
}

func (t *TMDS) SetMode(m *modes.Mode) {
	t.regs.Write(RegTMDSSourceSelect, uint32(t.crtc)&0x1)
	t.regs.Write(RegTMDSColorFormat, 0)
	t.mask(RegTMDSCntl, 0, TMDSDualLink)
	t.mask(RegTMDSCntl, TMDSEnable, TMDSEnable)
}

func (t *TMDS) Power(p Power) {
	switch p {
	case PowerOn:
		t.mask(RegTMDSTransmitterControl, TMDSPLLEnable, TMDSPLLEnable)
		t.sleep(14 * time.Microsecond)
		t.mask(RegTMDSTransmitterControl, TMDSPLLReset, TMDSPLLReset)
		t.sleep(10 * time.Microsecond)
		t.mask(RegTMDSTransmitterControl, 0, TMDSPLLReset)
		t.sleep(time.Millisecond)
		t.mask(RegTMDSDataSynchronization, TMDSFreqChange, TMDSFreqChange)
		t.sleep(time.Microsecond)
		t.mask(RegTMDSDataSynchronization, TMDSDataSynch, TMDSDataSynch)
		t.mask(RegTMDSTransmitterEnable, TMDSLinkLower, TMDSLinkAll)
	case PowerReset:
		t.mask(RegTMDSTransmitterEnable, 0, TMDSLinkAll)
	default:
		t.mask(RegTMDSTransmitterEnable, 0, TMDSLinkAll)
		t.mask(RegTMDSTransmitterControl, TMDSPLLReset, TMDSPLLReset)
		t.sleep(10 * time.Microsecond)
		t.mask(RegTMDSTransmitterControl, 0, TMDSPLLReset|TMDSPLLEnable)
		t.mask(RegTMDSDataSynchronization, 0, TMDSDataSynch)
		t.regs.Write(RegTMDSTransmitterAdjust, 0)
		t.mask(RegTMDSCntl, 0, TMDSEnable)
	}
}

func (t *TMDS) Save()    { t.saved.save(t.regs) }
func (t *TMDS) Restore() { t.restore(&t.saved) }
