package cs

import (
	"log/slog"

	"github.com/clktmr/radeonhd/hw"
)

// Direct executes command buffers on the CPU by decoding type-0 packets into
// register writes. It serves engines without a running command processor.
type Direct struct {
	regs hw.Registers
	buf  Buffer
	log  *slog.Logger
}

// NewDirect returns a backend with a single buffer of size bytes.
func NewDirect(regs hw.Registers, size int, log *slog.Logger) *Direct {
	if log == nil {
		log = slog.Default()
	}
	return &Direct{
		regs: regs,
		buf:  Buffer{Data: make([]byte, size)},
		log:  log,
	}
}

func (d *Direct) GetBuffer() *Buffer {
	d.buf.Used = 0
	return &d.buf
}

func (d *Direct) Flush(buf *Buffer, wait bool) {
	Walk(buf.Words(), func(off int, h Header, body []uint32) {
		switch h.Type() {
		case 0:
			reg := h.Reg()
			for _, v := range body {
				d.regs.Write(reg, v)
				if !h.OneReg() {
					reg += 4
				}
			}
		case 2:
		default:
			d.log.Error("cs: direct backend can't execute packet",
				"header", uint32(h), "opcode", h.Opcode(), "offset", off)
		}
	})
	buf.Used = 0
}

func (d *Direct) Idle()            {}
func (d *Direct) Reset()           { d.buf.Used = 0 }
func (d *Direct) GARTBase() uint64 { return 0 }
