package cs

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rs/xid"
	"github.com/sigurn/crc8"

	"github.com/clktmr/radeonhd/debug"
)

var ibCRC8 = crc8.MakeTable(crc8.CRC8)

// Checksum returns the CRC recorded for a submission of payload.
func Checksum(payload []byte) uint8 { return crc8.Checksum(payload, ibCRC8) }

// Submission records one flushed indirect buffer.
type Submission struct {
	Seq  uint64
	Idx  int
	Size int
	CRC  uint8
	Wait bool
}

func (s Submission) String() string {
	return fmt.Sprintf("#%d ib%d %d bytes crc 0x%02x", s.Seq, s.Idx, s.Size, s.CRC)
}

// SubmitFunc hands an indirect buffer to the kernel. It must not retain buf.
type SubmitFunc func(buf *Buffer, wait bool) error

// Ring is a pool of indirect buffers in GART memory, used round robin.
type Ring struct {
	ID string

	bufs []*Buffer
	next int
	base uint64
	seq  uint64

	submit SubmitFunc
	dump   io.Writer
	log    *slog.Logger

	// History keeps the most recent submissions, oldest first.
	History    []Submission
	MaxHistory int
}

// NewRing allocates count buffers of size bytes mapped at GPU address base.
// submit may be nil to only record submissions.
func NewRing(count, size int, base uint64, submit SubmitFunc, log *slog.Logger) *Ring {
	if log == nil {
		log = slog.Default()
	}
	r := &Ring{
		ID:         xid.New().String(),
		base:       base,
		submit:     submit,
		log:        log,
		MaxHistory: 64,
	}
	for i := range count {
		r.bufs = append(r.bufs, &Buffer{Idx: i, Data: make([]byte, size)})
	}
	return r
}

// SetDump makes every submission be written to w as a hex dump.
func (r *Ring) SetDump(w io.Writer) { r.dump = w }

func (r *Ring) GetBuffer() *Buffer {
	buf := r.bufs[r.next]
	r.next = (r.next + 1) % len(r.bufs)
	buf.Used = 0
	clear(buf.Data)
	return buf
}

func (r *Ring) Flush(buf *Buffer, wait bool) {
	debug.Assert(buf.Used <= buf.Total(), "cs: buffer overrun")

	r.seq++
	payload := buf.Data[:buf.Used]
	sub := Submission{
		Seq:  r.seq,
		Idx:  buf.Idx,
		Size: buf.Used,
		CRC:  Checksum(payload),
		Wait: wait,
	}
	r.History = append(r.History, sub)
	if over := len(r.History) - r.MaxHistory; r.MaxHistory > 0 && over > 0 {
		r.History = r.History[over:]
	}

	if r.dump != nil {
		addr := r.base + uint64(buf.Idx*buf.Total())
		fmt.Fprintf(r.dump, "# ring %s %v\n", r.ID, sub)
		if err := debug.DumpWords(r.dump, addr, payload); err != nil {
			r.log.Warn("cs: dump failed", "ring", r.ID, "err", err)
			r.dump = nil
		}
	}

	if r.submit != nil {
		if err := r.submit(buf, wait); err != nil {
			r.log.Error("cs: submission dropped", "ring", r.ID, "submission", sub, "err", err)
		}
	}
	buf.Used = 0
}

func (r *Ring) Idle() {
	if r.submit != nil {
		// An empty waiting submission drains the queue.
		idle := &Buffer{Idx: -1}
		if err := r.submit(idle, true); err != nil {
			r.log.Error("cs: idle failed", "ring", r.ID, "err", err)
		}
	}
}

func (r *Ring) Reset() {
	r.next = 0
	for _, buf := range r.bufs {
		buf.Used = 0
	}
	r.log.Info("cs: ring reset", "ring", r.ID, "submissions", r.seq)
}

func (r *Ring) GARTBase() uint64 { return r.base }
