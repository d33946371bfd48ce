package r6xx

import (
	"github.com/clktmr/radeonhd/fixed"
	"github.com/clktmr/radeonhd/hw/r5xx"
)

type Filter uint8

const (
	FilterNearest Filter = iota
	FilterBilinear
	FilterConvolution
)

// Picture is a pixmap as source or destination of a composite.
type Picture struct {
	Pixmap         *Pixmap
	Format         PictFormat
	Filter         Filter
	Repeat         bool
	ComponentAlpha bool
	Transform      *fixed.Transform // nil for identity
}

// CheckComposite reports whether op can be accelerated for the given
// pictures, before any pixmap is placed in video memory. mask may be nil.
func (s *State) CheckComposite(op Op, src, mask, dst *Picture) error {
	if err := checkComposite(op, src, mask, dst); err != nil {
		return s.reject(err)
	}
	return nil
}

func checkComposite(op Op, src, mask, dst *Picture) error {
	if int(op) >= len(blendOps) {
		return fallbackf("unsupported composite op %d", op)
	}
	if p := src.Pixmap; p.Width >= MaxX || p.Height >= MaxY {
		return fallbackf("source too large (%d,%d)", p.Width, p.Height)
	}
	if p := dst.Pixmap; p.Width >= MaxX || p.Height >= MaxY {
		return fallbackf("dest too large (%d,%d)", p.Width, p.Height)
	}
	if mask != nil {
		if p := mask.Pixmap; p.Width >= MaxX || p.Height >= MaxY {
			return fallbackf("mask too large (%d,%d)", p.Width, p.Height)
		}
		b := blendOps[op]
		if mask.ComponentAlpha && b.srcAlpha && b.cntl&colorSrcBlendMask != blendZero<<colorSrcBlendShift {
			return fallbackf("component alpha with source alpha and source value blending")
		}
		if err := checkTexture(op, mask, dst); err != nil {
			return err
		}
	}
	if err := checkTexture(op, src, dst); err != nil {
		return err
	}
	if _, ok := destFormat(dst.Format); !ok {
		return fallbackf("unsupported dest format %v", dst.Format)
	}
	return nil
}

func checkTexture(op Op, p, dst *Picture) error {
	if w, h := p.Pixmap.Width, p.Pixmap.Height; w > MaxX || h > MaxY {
		return fallbackf("picture too large (%dx%d)", w, h)
	}
	if _, ok := texFormats[p.Format]; !ok {
		return fallbackf("unsupported picture format %v", p.Format)
	}
	if p.Filter != FilterNearest && p.Filter != FilterBilinear {
		return fallbackf("unsupported filter %d", p.Filter)
	}
	// Sampling outside a non-repeating picture must yield transparent
	// pixels, which needs an alpha channel.
	if p.Transform != nil && !p.Repeat && p.Format.A() == 0 {
		if !((op == OpSrc || op == OpClear) && dst.Format.A() == 0) {
			return fallbackf("REPEAT_NONE unsupported for transformed xRGB source")
		}
	}
	return nil
}

// CompositeOp blends rectangles of a source picture onto the destination.
type CompositeOp struct {
	batch
	texW, texH float32
	transform  *fixed.Transform
}

// PrepareComposite sets up blending src onto dst with op. Masks aren't
// accelerated.
func (s *State) PrepareComposite(op Op, src, mask, dst *Picture) (*CompositeOp, error) {
	if err := s.CheckComposite(op, src, mask, dst); err != nil {
		return nil, err
	}
	if mask != nil {
		return nil, s.reject(fallbackf("mask unsupported"))
	}
	if err := s.checkPixmap(dst.Pixmap, "dst"); err != nil {
		return nil, s.reject(err)
	}
	if err := s.checkPixmap(src.Pixmap, "src"); err != nil {
		return nil, s.reject(err)
	}

	c := &CompositeOp{
		batch:     batch{st: s, size: compositeVertexSize},
		texW:      float32(src.Pixmap.Width),
		texH:      float32(src.Pixmap.Height),
		transform: src.Transform,
	}
	c.emit = func() { s.emitComposite(op, src, dst) }
	c.emit()
	return c, nil
}

func (s *State) emitComposite(op Op, src, dst *Picture) {
	s.begin()
	e := &s.e
	e.begin3D()

	tf := texFormats[src.Format]
	e.texResource(texResource{
		ID:      resourcePS,
		Width:   src.Pixmap.Width,
		Height:  src.Pixmap.Height,
		Pitch:   src.Pixmap.pitch(),
		Base:    s.gpuAddr(src.Pixmap),
		Format:  tf.Format,
		Swizzle: tf.Swizzle,
	})
	e.texSampler(texSampler{ID: 0, Bilinear: src.Filter == FilterBilinear})

	vsAddr, psAddr := s.upload(texturedVS(), texturedPS(sampleSwizzle(src.Format), true))
	e.vsSetup(shaderConfig{Addr: vsAddr, GPRs: 3})
	e.psSetup(shaderConfig{Addr: psAddr, GPRs: 3, UncachedFirstInst: true, ExportMode: 2})

	e.reg(RegCBShaderMask, 0xf<<output0EnableShift)
	e.reg(RegCBShaderControl, rt0Enable)
	cntl := blendCntl(op, nil, dst.Format)
	if e.chip == R600 {
		// no per-MRT blend
		e.reg(RegCBColorControl, r5xx.Rops[r5xx.GXcopy].Rop|1<<targetBlendEnableShift)
		e.reg(RegCBBlendControl, cntl)
	} else {
		e.reg(RegCBColorControl, r5xx.Rops[r5xx.GXcopy].Rop|1<<targetBlendEnableShift|perMRTBlend)
		e.reg(RegCBBlend0Control, cntl)
	}

	format, _ := destFormat(dst.Format)
	e.renderTarget(renderTarget{
		Pitch:  dst.Pixmap.pitch(),
		Height: dst.Pixmap.Height,
		Base:   s.gpuAddr(dst.Pixmap),
		Format: format,
	})
	e.rasterizer()
	e.interpolators(0x01, 2)
}

// Composite blends the w×h rectangle at (srcX, srcY) onto (dstX, dstY). The
// mask coordinates are ignored.
func (c *CompositeOp) Composite(srcX, srcY, maskX, maskY, dstX, dstY, w, h int) {
	src := [3][2]int{{srcX, srcY}, {srcX, srcY + h}, {srcX + w, srcY + h}}
	dst := [3][2]int{{dstX, dstY}, {dstX, dstY + h}, {dstX + w, dstY + h}}

	var corners [3][]float32
	for i := range corners {
		x, y := fixed.FromInt(src[i][0]), fixed.FromInt(src[i][1])
		if c.transform != nil {
			if tx, ty, ok := c.transform.Point(x, y); ok {
				x, y = tx, ty
			}
		}
		corners[i] = []float32{
			float32(dst[i][0]), float32(dst[i][1]),
			x.Float() / c.texW, y.Float() / c.texH,
			0, 0,
		}
	}
	c.putRect(corners)
}

// Done draws all rectangles appended since the last Done.
func (c *CompositeOp) Done() { c.draw() }
