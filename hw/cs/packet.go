package cs

import (
	"fmt"

	"github.com/clktmr/radeonhd/debug"
	"github.com/clktmr/radeonhd/hw"
)

// Packet types of the command processor.
const (
	packetType0 = 0 << 30
	packetType2 = 2 << 30
	packetType3 = 3 << 30

	packetTypeMask  = 3 << 30
	packetCountMask = 0x3fff << 16
)

// Packet0OneReg makes all values of a type-0 packet go to the same register
// instead of consecutive ones.
const Packet0OneReg = 1 << 15

// Packet2 is a filler word.
const Packet2 uint32 = packetType2

// Packet0 returns the header of a type-0 packet writing n consecutive
// registers starting at reg.
func Packet0(reg hw.Reg, n int) uint32 {
	debug.Assertf(n >= 1, "cs: type-0 packet with %d values", n)
	return packetType0 | uint32(n-1)<<16&packetCountMask | uint32(reg)>>2
}

// Packet3 returns the header of a type-3 packet with opcode op and n body
// words.
func Packet3(op Opcode, n int) uint32 {
	debug.Assertf(n >= 1, "cs: type-3 packet with %d body words", n)
	return packetType3 | uint32(n-1)<<16&packetCountMask | uint32(op)<<8
}

// Opcode is a type-3 packet operation.
type Opcode uint8

// Header is a decoded packet header.
type Header uint32

func (h Header) Type() int      { return int(uint32(h) & packetTypeMask >> 30) }
func (h Header) Count() int     { return int(uint32(h)&packetCountMask>>16) + 1 }
func (h Header) Reg() hw.Reg    { return hw.Reg(uint32(h)&0x1fff) << 2 }
func (h Header) OneReg() bool   { return uint32(h)&Packet0OneReg != 0 }
func (h Header) Opcode() Opcode { return Opcode(uint32(h) >> 8) }

var opcodeNames = map[Opcode]string{
	0x10: "NOP",
	0x24: "START_3D_CMDBUF",
	0x28: "CONTEXT_CONTROL",
	0x2a: "INDEX_TYPE",
	0x2d: "DRAW_INDEX_AUTO",
	0x2f: "NUM_INSTANCES",
	0x43: "SURFACE_SYNC",
	0x46: "EVENT_WRITE",
	0x68: "SET_CONFIG_REG",
	0x69: "SET_CONTEXT_REG",
	0x6d: "SET_RESOURCE",
	0x6e: "SET_SAMPLER",
}

func (op Opcode) String() string {
	if n, ok := opcodeNames[op]; ok {
		return n
	}
	return fmt.Sprintf("OP_%02X", uint8(op))
}

// Walk calls fn for every packet in words with its byte offset. The body of
// a packet running past the end of words is cut short. Type-2 packets have
// no body.
func Walk(words []uint32, fn func(off int, h Header, body []uint32)) {
	for i := 0; i < len(words); {
		h := Header(words[i])
		n := 0
		if h.Type() != 2 {
			n = h.Count()
		}
		end := min(i+1+n, len(words))
		fn(i*4, h, words[i+1:end])
		i += 1 + n
	}
}
