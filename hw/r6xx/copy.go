package r6xx

import (
	"github.com/clktmr/radeonhd/hw/r5xx"
)

// CopyOp copies rectangles between two pixmaps or within one.
type CopyOp struct {
	batch
	src, dst  *Pixmap
	alu       r5xx.Alu
	planemask uint32

	// same is set for copies within one pixmap. Those are drawn immediately
	// per rectangle, decomposed if the rectangles overlap.
	same bool
}

// PrepareCopy sets up copying from src to dst, combined by alu and
// restricted to the bits in planemask.
func (s *State) PrepareCopy(src, dst *Pixmap, alu r5xx.Alu, planemask uint32) (*CopyOp, error) {
	if err := s.checkPixmap(src, "src"); err != nil {
		return nil, s.reject(err)
	}
	if err := s.checkPixmap(dst, "dst"); err != nil {
		return nil, s.reject(err)
	}
	if int(alu) >= len(r5xx.Rops) {
		return nil, s.reject(fallbackf("invalid alu %d", alu))
	}

	op := &CopyOp{
		batch:     batch{st: s, size: copyVertexSize},
		src:       src,
		dst:       dst,
		alu:       alu,
		planemask: planemask,
		same:      src.Offset == dst.Offset,
	}
	op.emit = func() { s.emitCopy(op.src, op.dst, alu, planemask) }
	if op.same {
		op.src = dst
	} else {
		op.emit()
	}
	return op, nil
}

func (s *State) emitCopy(src, dst *Pixmap, alu r5xx.Alu, planemask uint32) {
	s.begin()
	e := &s.e
	e.begin3D()
	e.noClip()

	vsAddr, psAddr := s.upload(texturedVS(), texturedPS(swizzleXYZW, false))
	e.vsSetup(shaderConfig{Addr: vsAddr, GPRs: 2})
	e.psSetup(shaderConfig{Addr: psAddr, GPRs: 1, UncachedFirstInst: true, ExportMode: 2})

	tex := texResource{
		ID:      resourcePS,
		Width:   src.Width,
		Height:  src.Height,
		Pitch:   src.pitch(),
		Base:    s.gpuAddr(src),
		Swizzle: swizzleXYZW,
	}
	switch src.Bpp {
	case 8:
		tex.Format = fmt8
		tex.Swizzle = [4]Sel{SelX, Sel0, Sel0, Sel0}
	case 16:
		tex.Format = fmt565
	default:
		tex.Format = fmt8888
	}
	e.texResource(tex)
	e.texSampler(texSampler{ID: 0})

	e.reg(RegCBShaderMask, planeMask(planemask)<<output0EnableShift)
	e.reg(RegCBShaderControl, rt0Enable)
	e.reg(RegCBColorControl, r5xx.Rops[alu].Rop)
	e.renderTarget(renderTarget{
		Pitch:  dst.pitch(),
		Height: dst.Height,
		Base:   s.gpuAddr(dst),
		Format: colorFormat(dst.Bpp),
	})
	e.rasterizer()
	e.interpolators(0x01, 1)
}

// copyRect is one rectangle to copy.
type copyRect struct {
	SrcX, SrcY int
	DstX, DstY int
	W, H       int
}

// corners returns the vertices (x, y, s, t) of the rectangle.
func (r copyRect) corners() [3][]float32 {
	return [3][]float32{
		{float32(r.DstX), float32(r.DstY), float32(r.SrcX), float32(r.SrcY)},
		{float32(r.DstX), float32(r.DstY + r.H), float32(r.SrcX), float32(r.SrcY + r.H)},
		{float32(r.DstX + r.W), float32(r.DstY + r.H), float32(r.SrcX + r.W), float32(r.SrcY + r.H)},
	}
}

// Copy copies a w×h rectangle from (srcX, srcY) to (dstX, dstY).
func (op *CopyOp) Copy(srcX, srcY, dstX, dstY, w, h int) {
	r := copyRect{srcX, srcY, dstX, dstY, w, h}
	if !op.same {
		op.putRect(r.corners())
		return
	}
	for _, step := range overlapSteps(r) {
		op.emit()
		op.putRect(step.corners())
		op.draw()
	}
}

// Done draws all rectangles appended since the last Done. Copies within one
// pixmap have been drawn already.
func (op *CopyOp) Done() {
	if op.same {
		return
	}
	op.draw()
}

// overlaps reports whether a corner of the source rectangle lies within the
// destination rectangle, both including their far edges.
func overlaps(r copyRect) bool {
	inside := func(x, y int) bool {
		return x >= r.DstX && x <= r.DstX+r.W && y >= r.DstY && y <= r.DstY+r.H
	}
	sx1, sy1, sx2, sy2 := r.SrcX, r.SrcY, r.SrcX+r.W, r.SrcY+r.H
	return inside(sx1, sy1) || inside(sx2, sy1) || inside(sx1, sy2) || inside(sx2, sy2)
}

// overlapSteps splits a copy within one surface into steps that never read
// pixels written by an earlier step. Overlapping copies along a row are split
// into columns, all others into rows, ordered away from the direction of
// movement.
func overlapSteps(r copyRect) []copyRect {
	if !overlaps(r) {
		return []copyRect{r}
	}

	var steps []copyRect
	if r.SrcY == r.DstY {
		col := func(i int) copyRect {
			return copyRect{r.SrcX + i, r.SrcY, r.DstX + i, r.DstY, 1, r.H}
		}
		if r.SrcX < r.DstX {
			for i := r.W - 1; i >= 0; i-- {
				steps = append(steps, col(i))
			}
		} else {
			for i := range r.W {
				steps = append(steps, col(i))
			}
		}
		return steps
	}

	row := func(i int) copyRect {
		return copyRect{r.SrcX, r.SrcY + i, r.DstX, r.DstY + i, r.W, 1}
	}
	if r.SrcY > r.DstY {
		for i := range r.H {
			steps = append(steps, row(i))
		}
	} else {
		for i := r.H - 1; i >= 0; i-- {
			steps = append(steps, row(i))
		}
	}
	return steps
}
