package r6xx

import (
	"github.com/clktmr/radeonhd/hw/r5xx"
)

// SolidOp fills rectangles with a constant color.
type SolidOp struct {
	batch
	fg uint32
}

// PrepareSolid sets up filling dst with fg, combined by alu and restricted
// to the bits in planemask.
func (s *State) PrepareSolid(dst *Pixmap, alu r5xx.Alu, planemask, fg uint32) (*SolidOp, error) {
	if err := s.checkPixmap(dst, "dst"); err != nil {
		return nil, s.reject(err)
	}
	if dst.Bpp == 8 {
		return nil, s.reject(fallbackf("dst: 8bpp solid fill"))
	}
	if int(alu) >= len(r5xx.Rops) {
		return nil, s.reject(fallbackf("invalid alu %d", alu))
	}

	op := &SolidOp{batch: batch{st: s, size: solidVertexSize}, fg: fg}
	op.emit = func() { s.emitSolid(dst, alu, planemask) }
	op.emit()
	return op, nil
}

func (s *State) emitSolid(dst *Pixmap, alu r5xx.Alu, planemask uint32) {
	s.begin()
	e := &s.e
	e.begin3D()
	e.noClip()

	vsAddr, psAddr := s.upload(solidVS(dst.Bpp), solidPS())
	e.vsSetup(shaderConfig{Addr: vsAddr, GPRs: 3})
	e.psSetup(shaderConfig{Addr: psAddr, GPRs: 1, UncachedFirstInst: true, ExportMode: 2})

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
	e.interpolators(0x03, 1)
}

// Solid fills the rectangle spanned by (x1, y1) and (x2, y2), exclusive of
// the second corner.
func (op *SolidOp) Solid(x1, y1, x2, y2 int) {
	off := op.next(3)
	buf := op.st.e.cs.Buffer()
	for _, v := range [3][2]int{{x1, y1}, {x1, y2}, {x2, y2}} {
		buf.PutFloat32(off, float32(v[0]))
		buf.PutFloat32(off+4, float32(v[1]))
		buf.PutUint32(off+8, op.fg)
		off += solidVertexSize
	}
}

// Done draws all rectangles appended since the last Done.
func (op *SolidOp) Done() { op.draw() }
