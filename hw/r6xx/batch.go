package r6xx

// batch accumulates vertices of one operation in the vertex half of the
// active command buffer.
type batch struct {
	st   *State
	size int    // bytes per vertex
	emit func() // emits the prepared state into a fresh buffer
	n    int    // vertices so far
}

// next reserves count vertices and returns the byte offset of the first.
// If they don't fit anymore, the pending vertices are drawn and the state is
// emitted again into a new buffer.
func (b *batch) next(count int) int {
	buf := b.st.e.cs.Buffer()
	if (b.n+count)*b.size > buf.Total()/2 {
		b.draw()
		b.emit()
		buf = b.st.e.cs.Buffer()
	}
	off := buf.Total()/2 + b.n*b.size
	b.n += count
	return off
}

// draw submits the pending vertices as a rectangle list and flushes the
// buffer. Without vertices the buffer is only flushed.
func (b *batch) draw() {
	e := &b.st.e
	if b.n == 0 {
		e.cs.Flush()
		return
	}
	mid := e.cs.Buffer().Total() / 2
	e.vtxResource(vtxResource{
		ID:         resourceVS,
		SizeDW:     b.size / 4,
		NumEntries: b.n * b.size / 4,
		Addr:       e.cs.GPUAddr(mid),
	})
	e.draw(b.n)
	e.wait3DIdleClean()
	e.cs.Flush()
	b.n = 0
}

// putRect stores the three corners of a rectangle, each followed by its
// attributes.
func (b *batch) putRect(corners [3][]float32) {
	off := b.next(3)
	buf := b.st.e.cs.Buffer()
	for _, c := range corners {
		for _, f := range c {
			buf.PutFloat32(off, f)
			off += 4
		}
	}
}
