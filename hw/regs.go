package hw

import "fmt"

// Reg is a byte offset into the register aperture.
type Reg uint32

func (r Reg) String() string { return fmt.Sprintf("0x%04X", uint32(r)) }

// Registers is the register access collaborator. Accesses aren't atomic
// across multiple calls.
type Registers interface {
	Read(r Reg) uint32
	Write(r Reg, v uint32)
}

// Mask sets the bits of v selected by mask in register r, leaving all other
// bits untouched.
func Mask(regs Registers, r Reg, v, mask uint32) {
	tmp := regs.Read(r)
	tmp &^= mask
	tmp |= v & mask
	regs.Write(r, tmp)
}
