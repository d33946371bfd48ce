package cs

import (
	"encoding/binary"
	"math"
)

// Buffer is one submittable unit of command words. Used counts bytes and never
// exceeds len(Data).
type Buffer struct {
	Idx  int
	Data []byte
	Used int
}

// Total returns the capacity in bytes.
func (b *Buffer) Total() int { return len(b.Data) }

// Free returns the number of bytes left behind the write cursor.
func (b *Buffer) Free() int { return len(b.Data) - b.Used }

// Words returns the used region as 32-bit words.
func (b *Buffer) Words() []uint32 {
	w := make([]uint32, b.Used/4)
	for i := range w {
		w[i] = binary.LittleEndian.Uint32(b.Data[i*4:])
	}
	return w
}

func (b *Buffer) put(w uint32) {
	binary.LittleEndian.PutUint32(b.Data[b.Used:], w)
	b.Used += 4
}

// PutUint32 stores w at byte offset off without touching the write cursor.
func (b *Buffer) PutUint32(off int, w uint32) {
	binary.LittleEndian.PutUint32(b.Data[off:], w)
}

// PutFloat32 stores f at byte offset off without touching the write cursor.
func (b *Buffer) PutFloat32(off int, f float32) {
	b.PutUint32(off, math.Float32bits(f))
}

// PutWords copies words to byte offset off without touching the write cursor.
func (b *Buffer) PutWords(off int, words []uint32) {
	for i, w := range words {
		b.PutUint32(off+i*4, w)
	}
}
