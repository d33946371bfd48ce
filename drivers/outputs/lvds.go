package outputs

import (
	"log/slog"
	"time"

	"github.com/clktmr/radeonhd/hw"
	"github.com/clktmr/radeonhd/modes"
)

// Panel describes an LVDS panel. The power sequencing delays are taken
// unscaled from the BIOS panel table.
type Panel struct {
	DualLink bool
	Bit24    bool
	FPDI     bool

	PowerDigToDE int
	PowerDEToBL  int
	OffDelay     int
}

// LVDS drives a panel through DIG1 and the LVTMA transmitter with its power
// sequencer.
type LVDS struct {
	dig
	Panel Panel

	// Poll waits on the power sequencer state.
	Poll hw.Poller

	backlight  int
	transSaved bank
}

var _ Output = (*LVDS)(nil)

func NewLVDS(panel Panel, regs hw.Registers, log *slog.Logger) *LVDS {
	l := &LVDS{
		dig:       newDIG("LVDS", 0, encoderLVDS, regs, log),
		Panel:     panel,
		Poll:      hw.Poller{Limit: 500, Backoff: time.Millisecond},
		backlight: -1,
	}
	l.transSaved.regs = []hw.Reg{
		RegLVTMATransmitterControl, RegLVTMATransmitterAdjust,
		RegLVTMAPreemphasisControl, RegLVTMAMacroControl,
		RegLVTMADataSynchronization, RegLVTMATransmitterEnable,
		RegLVTMAPwrSeqRefDiv, RegLVTMAPwrSeqDelay1, RegLVTMAPwrSeqDelay2,
		RegLVTMABlModCntl, RegLVTMAPwrSeqCntl,
	}
	return l
}

// ModeValid rejects interlaced modes. The panel's fixed timing is enforced
// by the monitor description, not here.
func (l *LVDS) ModeValid(m *modes.Mode) modes.Status {
	if m.Flags&modes.FlagInterlace != 0 {
		return modes.StatusNoInterlace
	}
	return modes.StatusOK
}

func (l *LVDS) SetMode(m *modes.Mode) {
	l.dualLink = l.Panel.DualLink
	l.lvds24Bit = l.Panel.Bit24
	l.fpdi = l.Panel.FPDI

	l.mask(RegLVTMATransmitterControl, 0, LVTMAUseClkData)
	l.mask(RegLVTMATransmitterControl, LVTMAIDSCKSel, LVTMAIDSCKSel)
	seq := uint32(PwrSeqEnable | PwrSeqPLLEnableMask | PwrSeqPLLResetMask)
	l.mask(RegLVTMAPwrSeqCntl, seq, seq)
	l.encoderSet()
}

func (l *LVDS) Power(p Power) { l.power(p, l.transmitterPower) }

func (l *LVDS) transmitterPower(p Power) {
	switch p {
	case PowerOn:
		l.powerUp()
	case PowerReset:
		l.powerDown()
	default:
		l.powerDown()
		l.regs.Write(RegLVTMATransmitterAdjust, lvtmaShutdownAdjust)
		l.regs.Write(RegLVTMAMacroControl, lvtmaShutdownMacroCtl)
	}
}

func (l *LVDS) state() uint32 {
	return l.regs.Read(RegLVTMAPwrSeqState) >> PwrSeqStateShift & 0xff
}

func (l *LVDS) powerUp() {
	l.mask(RegLVTMATransmitterControl, LVTMAPLLEnable, LVTMAPLLEnable)
	l.sleep(14 * time.Microsecond)
	l.mask(RegLVTMATransmitterControl, LVTMAPLLReset, LVTMAPLLReset)
	l.sleep(10 * time.Microsecond)
	l.mask(RegLVTMATransmitterControl, 0, LVTMAPLLReset)
	l.sleep(time.Millisecond)

	l.mask(RegLVTMADataSynchronization, LVTMAPFreqChange, LVTMAPFreqChange)
	l.sleep(time.Microsecond)
	l.mask(RegLVTMADataSynchronization, LVTMADSynSel, LVTMADSynSel)

	l.mask(RegLVTMAPwrSeqCntl, PwrSeqDisableSyncEn, PwrSeqDisableSyncEn)
	l.mask(RegLVTMATransmitterControl, 0, LVTMAModeTMDS)

	var links uint32
	switch {
	case l.Panel.DualLink && l.Panel.Bit24:
		links = 0x3ff
	case l.Panel.DualLink:
		links = 0x1ef
	case l.Panel.Bit24:
		links = 0x1f
	default:
		links = 0x0f
	}
	l.mask(RegLVTMATransmitterEnable, links, LVTMALinkAll)

	l.mask(RegLVTMAPwrSeqCntl, 0, PwrSeqDisableSyncEn|PwrSeqSyncEnOverride)
	l.mask(RegLVTMAPwrSeqRefDiv, pwrSeqRefDiv, 0xffff)

	de2bl := uint32(l.Panel.PowerDEToBL*10/4) & 0xff
	dig2de := uint32(l.Panel.PowerDigToDE*10/4) & 0xff
	l.regs.Write(RegLVTMAPwrSeqDelay1, dig2de<<24|de2bl<<16|de2bl<<8|dig2de)
	l.regs.Write(RegLVTMAPwrSeqDelay2, uint32(l.Panel.OffDelay/4))

	l.mask(RegLVTMAPwrSeqCntl, 0, PwrSeqDisableSyncEn)

	ok := l.Poll.Until(func() bool {
		s := l.state()
		return s <= PwrSeqPowerUpDone || s >= PwrSeqPowerDownDone
	})
	if !ok {
		l.log.Warn("outputs: power sequencer did not settle", "output", l.name, "state", l.state())
	}
	l.mask(RegLVTMAPwrSeqCntl, PwrSeqTargetState, PwrSeqTargetState)
}

func (l *LVDS) powerDown() {
	l.mask(RegLVTMAPwrSeqCntl, 0, PwrSeqTargetState|PwrSeqDigOnOverride|PwrSeqBlOnOverride)
	ok := l.Poll.Until(func() bool { return l.state() >= PwrSeqPowerDownDone })
	if !ok {
		l.log.Warn("outputs: panel did not power down", "output", l.name, "state", l.state())
	}
}

// SetBacklight sets the backlight level, 0 to 255.
func (l *LVDS) SetBacklight(level int) {
	level = min(max(level, 0), 0xff)
	l.mask(RegLVTMAPwrSeqRefDiv, 0x144<<blModResolutionShift, 0x7ff<<blModResolutionShift)
	l.regs.Write(RegLVTMABlModCntl,
		0xff<<blModResolutionShift|uint32(level)<<blModLevelShift|blModEnable)
	l.backlight = level
}

// Backlight returns the level last set, or -1.
func (l *LVDS) Backlight() int { return l.backlight }

func (l *LVDS) Save() {
	l.encSaved.save(l.regs)
	l.transSaved.save(l.regs)
}

// Restore writes back the saved registers, pulsing the transmitter PLL reset
// before the rest of the block.
func (l *LVDS) Restore() {
	if !l.transSaved.stored() || !l.encSaved.stored() {
		l.log.Error("outputs: no registers stored", "output", l.name)
		return
	}
	ctl := l.transSaved.vals[0]
	l.regs.Write(RegLVTMATransmitterControl, ctl)
	l.sleep(14 * time.Microsecond)
	l.regs.Write(RegLVTMATransmitterControl, ctl|LVTMAPLLReset)
	l.sleep(10 * time.Microsecond)
	l.regs.Write(RegLVTMATransmitterControl, ctl)
	l.sleep(time.Millisecond)

	l.transSaved.restore(l.regs)
	l.encSaved.restore(l.regs)
}
