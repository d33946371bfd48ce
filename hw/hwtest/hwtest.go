// Package hwtest provides a simulated register file that can stand in for
// the GPU in tests and dry runs.
package hwtest

import (
	"fmt"
	"strings"

	"github.com/clktmr/radeonhd/hw"
)

// Access is one recorded register access.
type Access struct {
	Write bool
	Reg   hw.Reg
	Value uint32
}

func (a Access) String() string {
	if a.Write {
		return fmt.Sprintf("W %v <- 0x%08X", a.Reg, a.Value)
	}
	return fmt.Sprintf("R %v -> 0x%08X", a.Reg, a.Value)
}

// Regs is a register file backed by a map. Reads of registers that were never
// written return zero unless a read hook is installed.
type Regs struct {
	vals   map[hw.Reg]uint32
	reads  map[hw.Reg]func(v uint32) uint32
	writes map[hw.Reg]func(v uint32) uint32

	Trace []Access
}

var _ hw.Registers = (*Regs)(nil)

func New() *Regs {
	return &Regs{
		vals:   make(map[hw.Reg]uint32),
		reads:  make(map[hw.Reg]func(uint32) uint32),
		writes: make(map[hw.Reg]func(uint32) uint32),
	}
}

func (r *Regs) Read(reg hw.Reg) uint32 {
	v := r.vals[reg]
	if fn := r.reads[reg]; fn != nil {
		v = fn(v)
		r.vals[reg] = v
	}
	r.Trace = append(r.Trace, Access{false, reg, v})
	return v
}

func (r *Regs) Write(reg hw.Reg, v uint32) {
	r.Trace = append(r.Trace, Access{true, reg, v})
	if fn := r.writes[reg]; fn != nil {
		v = fn(v)
	}
	r.vals[reg] = v
}

// Set stores v without recording an access.
func (r *Regs) Set(reg hw.Reg, v uint32) { r.vals[reg] = v }

// Get returns the current value without recording an access.
func (r *Regs) Get(reg hw.Reg) uint32 { return r.vals[reg] }

// OnRead installs a hook that computes the value returned by the next reads
// from the stored value. The result is stored back.
func (r *Regs) OnRead(reg hw.Reg, fn func(v uint32) uint32) { r.reads[reg] = fn }

// OnWrite installs a hook that transforms written values before they are
// stored, e.g. to model self-clearing bits.
func (r *Regs) OnWrite(reg hw.Reg, fn func(v uint32) uint32) { r.writes[reg] = fn }

// Writes returns all values written to reg in order.
func (r *Regs) Writes(reg hw.Reg) (vals []uint32) {
	for _, a := range r.Trace {
		if a.Write && a.Reg == reg {
			vals = append(vals, a.Value)
		}
	}
	return
}

// Reads returns the number of reads of reg.
func (r *Regs) Reads(reg hw.Reg) (n int) {
	for _, a := range r.Trace {
		if !a.Write && a.Reg == reg {
			n++
		}
	}
	return
}

// ClearTrace forgets all recorded accesses.
func (r *Regs) ClearTrace() { r.Trace = r.Trace[:0] }

func (r *Regs) String() string {
	var b strings.Builder
	for _, a := range r.Trace {
		fmt.Fprintln(&b, a)
	}
	return b.String()
}
