package outputs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/clktmr/radeonhd/hw"
	"github.com/clktmr/radeonhd/modes"
)

// UniphyMinClock is the lowest TMDS clock the UNIPHY links lock to.
const UniphyMinClock = 25000

// Uniphy is a TMDS output through a DIG encoder and one of the UNIPHY
// transmitters. Either encoder can feed either transmitter.
type Uniphy struct {
	dig
	link      int
	Connector Connector

	transSaved bank
}

var _ Output = (*Uniphy)(nil)

// NewUniphy returns UNIPHY A (link 0) or B (link 1) fed by DIG encoder
// encoder.
func NewUniphy(link, encoder int, conn Connector, regs hw.Registers, log *slog.Logger) *Uniphy {
	name := fmt.Sprintf("UNIPHY %c", 'A'+link)
	u := &Uniphy{
		dig:       newDIG(name, encoder, encoderTMDSDVI, regs, log),
		link:      link,
		Connector: conn,
	}
	u.transSaved.regs = []hw.Reg{
		u.reg(RegUniphyPLLControl), u.reg(RegUniphyTransmitterControl),
		u.reg(RegUniphyTransmitterEnable),
	}
	return u
}

func (u *Uniphy) reg(r hw.Reg) hw.Reg { return r + hw.Reg(u.link)*uniphyBOffset }

func (u *Uniphy) ModeValid(m *modes.Mode) modes.Status {
	if m.Flags&modes.FlagInterlace != 0 {
		return modes.StatusNoInterlace
	}
	if m.Clock < UniphyMinClock {
		return modes.StatusClockLow
	}
	switch u.Connector {
	case ConnectorDVI:
		if m.SynthClock > DualLinkMaxClock {
			return modes.StatusClockHigh
		}
	default:
		if m.SynthClock > SingleLinkMaxClock {
			return modes.StatusClockHigh
		}
	}
	return modes.StatusOK
}

// DualLink reports whether the last mode set needed both links.
func (u *Uniphy) DualLink() bool { return u.dualLink }

func (u *Uniphy) SetMode(m *modes.Mode) {
	u.dualLink = u.Connector == ConnectorDVI && m.SynthClock > SingleLinkMaxClock

	var steer uint32
	if u.link == 1 && u.encoder == 0 {
		steer = LinkSteerSwap
	}
	u.mask(RegDCIOLinkSteer, steer, LinkSteerSwap)

	var swap uint32
	if u.dualLink && u.encoder == 1 {
		swap = DIGSwap
	}
	u.mask(u.off()+RegDIGCntl, swap, DIGSwap)
	u.encoderSet()
}

func (u *Uniphy) Power(p Power) { u.power(p, u.transmitterPower) }

func (u *Uniphy) transmitterPower(p Power) {
	switch p {
	case PowerOn:
		u.mask(u.reg(RegUniphyPLLControl), UniphyPLLEnable, UniphyPLLEnable)
		u.sleep(14 * time.Microsecond)
		u.mask(u.reg(RegUniphyPLLControl), UniphyPLLReset, UniphyPLLReset)
		u.sleep(10 * time.Microsecond)
		u.mask(u.reg(RegUniphyPLLControl), 0, UniphyPLLReset)
		u.sleep(time.Millisecond)
		links := uint32(UniphyLinkLower)
		if u.dualLink {
			links = UniphyLinkAll
		}
		u.mask(u.reg(RegUniphyTransmitterEnable), links, UniphyLinkAll)
	case PowerReset:
		u.mask(u.reg(RegUniphyTransmitterEnable), 0, UniphyLinkAll)
	default:
		u.mask(u.reg(RegUniphyTransmitterEnable), 0, UniphyLinkAll)
		u.mask(u.reg(RegUniphyPLLControl), 0, UniphyPLLEnable|UniphyPLLReset)
	}
}

func (u *Uniphy) Save() {
	u.encSaved.save(u.regs)
	u.transSaved.save(u.regs)
}

func (u *Uniphy) Restore() {
	if !u.transSaved.stored() || !u.encSaved.stored() {
		u.log.Error("outputs: no registers stored", "output", u.name)
		return
	}
	u.transSaved.restore(u.regs)
	u.encSaved.restore(u.regs)
}
