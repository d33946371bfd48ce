// Package outputs implements the encoders and transmitters that turn a
// CRTC's pixel stream into a signal on a connector.
//
// Every output answers ModeValid for the validator and can program, power,
// save and restore its register block.
package outputs

import (
	"log/slog"
	"time"

	"github.com/clktmr/radeonhd/hw"
	"github.com/clktmr/radeonhd/modes"
)

// Power is a power state of an output.
type Power int

const (
	PowerOn       Power = iota
	PowerReset          // outputs off, clocks and configuration kept
	PowerShutdown       // everything off
)

func (p Power) String() string {
	switch p {
	case PowerOn:
		return "on"
	case PowerReset:
		return "reset"
	case PowerShutdown:
		return "shutdown"
	}
	return "unknown"
}

// Output is an output that can be programmed.
type Output interface {
	modes.Output
	Attach(crtc int)
	Detach()
	SetMode(m *modes.Mode)
	Power(p Power)
	Save()
	Restore()
}

// Connector is the kind of connector an output drives.
type Connector int

const (
	ConnectorVGA Connector = iota
	ConnectorDVISingle
	ConnectorDVI // dual link capable
	ConnectorPanel
)

// Link clock limits in kHz.
const (
	SingleLinkMaxClock = 165000
	DualLinkMaxClock   = 330000
)

// base holds what all outputs share.
type base struct {
	name string
	regs hw.Registers
	log  *slog.Logger

	active bool
	crtc   int

	sleep func(time.Duration)
}

func newBase(name string, regs hw.Registers, log *slog.Logger) base {
	if log == nil {
		log = slog.Default()
	}
	return base{name: name, regs: regs, log: log, sleep: time.Sleep}
}

func (b *base) Name() string { return b.name }
func (b *base) Active() bool { return b.active }
func (b *base) CRTC() int    { return b.crtc }

// Attach routes the output to CRTC id and marks it active.
func (b *base) Attach(id int) {
	b.crtc = id
	b.active = true
}

// Detach marks the output inactive.
func (b *base) Detach() { b.active = false }

func (b *base) mask(r hw.Reg, v, mask uint32) { hw.Mask(b.regs, r, v, mask) }

// bank is a set of registers saved and restored together, in order.
type bank struct {
	regs []hw.Reg
	vals []uint32
}

func (k *bank) save(regs hw.Registers) {
	k.vals = k.vals[:0]
	for _, r := range k.regs {
		k.vals = append(k.vals, regs.Read(r))
	}
}

func (k *bank) stored() bool { return len(k.vals) == len(k.regs) && len(k.regs) > 0 }

func (k *bank) restore(regs hw.Registers) {
	for i, r := range k.regs {
		regs.Write(r, k.vals[i])
	}
}

func (b *base) restore(k *bank) bool {
	if !k.stored() {
		b.log.Error("outputs: no registers stored", "output", b.name)
		return false
	}
	k.restore(b.regs)
	return true
}
