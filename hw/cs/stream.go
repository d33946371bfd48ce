// Package cs builds command streams for the GPU command processor.
//
// A Stream appends register writes and packets to the active Buffer of a
// Backend. When a request doesn't fit, the buffer is flushed and replaced
// implicitly. Buffers handed to the backend must not be referenced anymore.
package cs

import (
	"math"

	"github.com/clktmr/radeonhd/debug"
	"github.com/clktmr/radeonhd/hw"
)

// Backend executes command buffers.
type Backend interface {
	// GetBuffer returns an empty buffer owned by the caller until flushed.
	GetBuffer() *Buffer
	// Flush submits the used region of buf. If wait is set, it returns
	// after the GPU consumed it.
	Flush(buf *Buffer, wait bool)
	// Idle waits until all submitted buffers have been consumed.
	Idle()
	// Reset drops all submissions and reinitializes the backend.
	Reset()
	// GARTBase returns the GPU address of the first buffer.
	GARTBase() uint64
}

type Stream struct {
	backend Backend
	buf     *Buffer

	// Limit restricts the command region of each buffer to its first Limit
	// bytes, leaving the tail for inline data. Zero means the whole buffer.
	Limit int
}

func NewStream(b Backend) *Stream {
	return &Stream{backend: b}
}

// Buffer returns the active buffer, acquiring one if necessary.
func (s *Stream) Buffer() *Buffer {
	if s.buf == nil {
		s.buf = s.backend.GetBuffer()
	}
	return s.buf
}

func (s *Stream) limit() int {
	if s.Limit > 0 {
		return min(s.Limit, s.Buffer().Total())
	}
	return s.Buffer().Total()
}

// Grab ensures n words fit into the active buffer, flushing it otherwise.
func (s *Stream) Grab(n int) {
	buf := s.Buffer()
	if buf.Used+n*4 > s.limit() {
		s.Flush()
		buf = s.Buffer()
	}
	debug.Assertf(buf.Used+n*4 <= s.limit(), "cs: %d words exceed buffer", n)
}

// Write appends one word. The caller must have grabbed enough space.
func (s *Stream) Write(w uint32) {
	buf := s.Buffer()
	debug.Assert(buf.Used+4 <= s.limit(), "cs: write beyond grabbed space")
	buf.put(w)
}

func (s *Stream) WriteFloat(f float32) { s.Write(math.Float32bits(f)) }

// RegWrite appends a single register write.
func (s *Stream) RegWrite(reg hw.Reg, v uint32) {
	s.Write(Packet0(reg, 1))
	s.Write(v)
}

// Packet0 grabs space for and appends a write of vals to consecutive registers
// starting at reg.
func (s *Stream) Packet0(reg hw.Reg, vals ...uint32) {
	if len(vals) == 0 {
		return
	}
	s.Grab(len(vals) + 1)
	s.Write(Packet0(reg, len(vals)))
	for _, v := range vals {
		s.Write(v)
	}
}

// Packet3 grabs space for and appends a type-3 packet. A packet needs at
// least one body word, an empty body appends nothing.
func (s *Stream) Packet3(op Opcode, body ...uint32) {
	if len(body) == 0 {
		return
	}
	s.Grab(len(body) + 1)
	s.Write(Packet3(op, len(body)))
	for _, v := range body {
		s.Write(v)
	}
}

// GPUAddr translates a byte offset inside the active buffer into the address
// the GPU sees it at.
func (s *Stream) GPUAddr(off int) uint64 {
	buf := s.Buffer()
	return s.backend.GARTBase() + uint64(buf.Idx*buf.Total()+off)
}

// Flush submits the active buffer without waiting. The next write acquires a
// new one. Empty buffers are submitted as well, since the backend owns them.
func (s *Stream) Flush() {
	if s.buf == nil {
		return
	}
	s.backend.Flush(s.buf, false)
	s.buf = nil
}

// Idle submits the active buffer and waits for the GPU to consume all
// submissions.
func (s *Stream) Idle() {
	if s.buf != nil {
		s.backend.Flush(s.buf, true)
		s.buf = nil
	}
	s.backend.Idle()
}

// Reset drops the active buffer and resets the backend.
func (s *Stream) Reset() {
	s.buf = nil
	s.backend.Reset()
}
