package hw

import (
	"sync/atomic"
	"unsafe"
)

// MMIO implements Registers on a mapped register aperture.
type MMIO struct {
	mem []byte
}

// NewMMIO wraps an already mapped aperture.
func NewMMIO(mem []byte) *MMIO {
	return &MMIO{mem: mem}
}

func (m *MMIO) ptr(r Reg) *uint32 {
	if int(r)+4 > len(m.mem) || r&0x3 != 0 {
		panic("register out of aperture: " + r.String())
	}
	return (*uint32)(unsafe.Pointer(&m.mem[r]))
}

func (m *MMIO) Read(r Reg) uint32     { return atomic.LoadUint32(m.ptr(r)) }
func (m *MMIO) Write(r Reg, v uint32) { atomic.StoreUint32(m.ptr(r), v) }

// Size returns the size of the aperture in bytes.
func (m *MMIO) Size() int { return len(m.mem) }

// Bytes returns the aperture itself, for apertures that map memory rather
// than registers.
func (m *MMIO) Bytes() []byte { return m.mem }
