// Package accel draws on a screen in video memory, using the 3D engine where
// it can and the CPU through the framebuffer aperture where it can't.
//
// Driver implements pix.Driver, so everything in the pix package (areas, text
// writers, images) renders through it:
//
//	d, _ := accel.New(state, 1024, 768, 32, nil)
//	disp := pix.NewDisplay(d)
//	a := disp.NewArea(disp.Bounds())
//	a.SetColor(color.White)
//	a.Fill(a.Bounds())
package accel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"log/slog"

	"github.com/embeddedgo/display/pix"
	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/clktmr/radeonhd/fixed"
	"github.com/clktmr/radeonhd/hw/r5xx"
	"github.com/clktmr/radeonhd/hw/r6xx"
)

// ErrUnsupported is recorded for draws neither path can do.
var ErrUnsupported = errors.New("accel: unsupported operation")

const planeMaskAll = 0xffffffff

// Stats counts operations per path.
type Stats struct {
	Hardware int
	Software int
}

// Driver draws on the visible screen surface at the start of video memory.
type Driver struct {
	st     *r6xx.State
	mem    allocator
	screen *Surface
	pal    color.Palette

	surfaces []*Surface
	fill     image.Uniform
	busy     bool // the GPU may still write to video memory
	err      error
	log      *slog.Logger

	// NoAccel sends every operation down the software path.
	NoAccel bool

	Stats Stats
}

var _ pix.Driver = (*Driver)(nil)

// New places a width×height screen of depth bpp at the start of the
// framebuffer st was configured with. 8bpp screens start out with the Plan 9
// palette.
func New(st *r6xx.State, width, height, bpp int, log *slog.Logger) (*Driver, error) {
	if log == nil {
		log = slog.Default()
	}
	f, err := screenFormat(bpp)
	if err != nil {
		return nil, err
	}
	d := &Driver{
		st:   st,
		mem:  allocator{mem: st.Framebuffer()},
		pal:  palette.Plan9,
		fill: image.Uniform{C: color.Black},
		log:  log,
	}
	d.screen, err = d.newSurface(width, height, f, bpp)
	if err != nil {
		return nil, fmt.Errorf("accel: screen: %w", err)
	}
	return d, nil
}

// Screen returns the visible surface.
func (d *Driver) Screen() *Surface { return d.screen }

func (d *Driver) newSurface(w, h int, f r6xx.PictFormat, bpp int) (*Surface, error) {
	off, pitch, err := d.mem.alloc(w, h, bpp)
	if err != nil {
		return nil, err
	}
	s := newSurface(d.mem.mem, off, pitch, w, h, f, bpp, d.pal)
	d.surfaces = append(d.surfaces, s)
	return s, nil
}

// NewSurface allocates an offscreen surface in the screen's format.
func (d *Driver) NewSurface(w, h int) (*Surface, error) {
	return d.newSurface(w, h, d.screen.Format, d.screen.Pixmap.Bpp)
}

// Upload copies img into a new offscreen surface. On 32bpp screens the
// surface keeps img's RGBA layout so it can be copied row by row, on 8bpp
// screens img is dithered to the palette.
func (d *Driver) Upload(img image.Image) (*Surface, error) {
	b := img.Bounds()
	f, bpp := d.screen.Format, d.screen.Pixmap.Bpp
	if bpp == 32 {
		f = r6xx.A8B8G8R8
	}
	s, err := d.newSurface(b.Dx(), b.Dy(), f, bpp)
	if err != nil {
		return nil, err
	}
	d.sync()
	if rgba, ok := img.(*image.RGBA); ok && f == r6xx.A8B8G8R8 {
		err = d.st.UploadToScreen(&s.Pixmap, 0, 0, b.Dx(), b.Dy(), rgba.Pix, rgba.Stride)
		if err == nil {
			return s, nil
		}
	}
	if bpp == 8 {
		draw.FloydSteinberg.Draw(s.Image, s.Bounds(), img, b.Min)
	} else {
		draw.Draw(s.Image, s.Bounds(), img, b.Min, draw.Src)
	}
	return s, nil
}

// Release frees all offscreen surfaces. They must not be used afterwards.
func (d *Driver) Release() {
	d.sync()
	d.mem.next = int(d.screen.Pixmap.Offset) + d.screen.Pixmap.Pitch*d.screen.Pixmap.Height
	d.surfaces = d.surfaces[:1]
}

// SetPalette replaces the palette of 8bpp surfaces.
func (d *Driver) SetPalette(p color.Palette) {
	d.pal = p
	for _, s := range d.surfaces {
		if img, ok := s.Image.(*image.Paletted); ok {
			img.Palette = p
		}
	}
}

// Quantize computes a palette of at most n colors for img.
func Quantize(img image.Image, n int) color.Palette {
	q := quantize.MedianCutQuantizer{}
	return q.Quantize(make(color.Palette, 0, n), img)
}

func (d *Driver) Draw(r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op draw.Op) {
	r, sp, mp = d.clip(r, sp, mp)
	if r.Empty() {
		return
	}
	if mask == nil && !d.NoAccel && d.hwDraw(r, src, sp, op) {
		d.Stats.Hardware++
		return
	}

	d.Stats.Software++
	d.sync()
	if s, ok := src.(*Surface); ok {
		src = s.Image
	}
	if _, ok := d.screen.Image.(*image.Paletted); ok && mask == nil && op == draw.Src {
		if _, uniform := src.(*image.Uniform); !uniform {
			draw.FloydSteinberg.Draw(d.screen.Image, r, src, sp)
			return
		}
	}
	draw.DrawMask(d.screen.Image, r, src, sp, mask, mp, op)
}

func (d *Driver) Fill(r image.Rectangle) {
	d.Draw(r, &d.fill, image.Point{}, nil, image.Point{}, draw.Over)
}

func (d *Driver) SetColor(c color.Color) { d.fill.C = c }

// SetDir doesn't rotate, the screen is always scanned out in its natural
// orientation.
func (d *Driver) SetDir(dir int) image.Rectangle { return d.screen.Bounds() }

// Flush waits until all accelerated operations reached video memory.
func (d *Driver) Flush() { d.sync() }

func (d *Driver) Err(clear bool) error {
	err := d.err
	if clear {
		d.err = nil
	}
	return err
}

func (d *Driver) setErr(err error) {
	if d.err == nil {
		d.err = err
	}
	d.log.Error("accel: draw failed", "err", err)
}

func (d *Driver) sync() {
	if !d.busy {
		return
	}
	d.st.WaitMarker(d.st.MarkSync())
	d.busy = false
}

// clip restricts r to the screen and moves the source and mask points along.
func (d *Driver) clip(r image.Rectangle, sp, mp image.Point) (image.Rectangle, image.Point, image.Point) {
	orig := r.Min
	r = r.Intersect(d.screen.Bounds())
	delta := r.Min.Sub(orig)
	return r, sp.Add(delta), mp.Add(delta)
}

// accelerated reports whether a Prepare succeeded. Anything but a fallback
// is recorded as error.
func (d *Driver) accelerated(err error) bool {
	if err == nil {
		return true
	}
	if !errors.Is(err, r6xx.ErrFallback) {
		d.setErr(err)
	}
	return false
}

func (d *Driver) hwDraw(r image.Rectangle, src image.Image, sp image.Point, op draw.Op) bool {
	switch s := src.(type) {
	case *image.Uniform:
		if _, _, _, a := s.C.RGBA(); op == draw.Src || a == 0xffff {
			return d.solid(r, s.C)
		}
	case *Surface:
		if s.Format == d.screen.Format && (op == draw.Src || s.Format.A() == 0) {
			return d.copy(r, s, sp)
		}
		return d.composite(r, s, sp, compositeOp(op), nil, r6xx.FilterNearest)
	}
	return false
}

func compositeOp(op draw.Op) r6xx.Op {
	if op == draw.Src {
		return r6xx.OpSrc
	}
	return r6xx.OpOver
}

func (d *Driver) solid(r image.Rectangle, c color.Color) bool {
	fg := pixel(d.screen.Pixmap.Bpp, c)
	op, err := d.st.PrepareSolid(&d.screen.Pixmap, r5xx.GXcopy, planeMaskAll, fg)
	if !d.accelerated(err) {
		return false
	}
	op.Solid(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	op.Done()
	d.busy = true
	return true
}

func (d *Driver) copy(r image.Rectangle, s *Surface, sp image.Point) bool {
	op, err := d.st.PrepareCopy(&s.Pixmap, &d.screen.Pixmap, r5xx.GXcopy, planeMaskAll)
	if !d.accelerated(err) {
		return false
	}
	op.Copy(sp.X, sp.Y, r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	op.Done()
	d.busy = true
	return true
}

func (d *Driver) composite(r image.Rectangle, s *Surface, sp image.Point, op r6xx.Op, t *fixed.Transform, filter r6xx.Filter) bool {
	src := s.picture()
	src.Transform = t
	src.Filter = filter
	c, err := d.st.PrepareComposite(op, src, nil, d.screen.picture())
	if !d.accelerated(err) {
		return false
	}
	c.Composite(sp.X, sp.Y, 0, 0, r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	c.Done()
	d.busy = true
	return true
}

// ScaleTransform returns the transform sampling sr when drawing into a
// rectangle of the given size.
func ScaleTransform(sr image.Rectangle, size image.Point) fixed.Transform {
	sx := fixed.Int16_16F(float32(sr.Dx()) / float32(size.X))
	sy := fixed.Int16_16F(float32(sr.Dy()) / float32(size.Y))
	t := fixed.Scale(sx, sy)
	t[0][2], t[1][2] = fixed.FromInt(sr.Min.X), fixed.FromInt(sr.Min.Y)
	return t
}

// DrawScaled draws sr of src scaled to fill r.
func (d *Driver) DrawScaled(r image.Rectangle, src image.Image, sr image.Rectangle, filter r6xx.Filter, op draw.Op) {
	if r.Empty() || sr.Empty() {
		return
	}
	d.Transform(r, src, ScaleTransform(sr, r.Size()), filter, op)
}

// Transform draws src into r. Each pixel of r samples src at t applied to
// the pixel's position relative to r.Min.
func (d *Driver) Transform(r image.Rectangle, src image.Image, t fixed.Transform, filter r6xx.Filter, op draw.Op) {
	clipped, delta, _ := d.clip(r, image.Point{}, image.Point{})
	if clipped.Empty() {
		return
	}
	if s, ok := src.(*Surface); ok && !d.NoAccel && d.composite(clipped, s, delta, compositeOp(op), &t, filter) {
		d.Stats.Hardware++
		return
	}

	d.Stats.Software++
	s2d, ok := inverse(t, r.Min)
	if !ok {
		d.setErr(fmt.Errorf("projective or singular transform: %w", ErrUnsupported))
		return
	}
	d.sync()
	var interp draw.Transformer = draw.NearestNeighbor
	if filter == r6xx.FilterBilinear {
		interp = draw.ApproxBiLinear
	}
	if s, ok := src.(*Surface); ok {
		src = s.Image
	}
	dst := d.screen.Image.(subImager).SubImage(clipped).(draw.Image)
	interp.Transform(dst, s2d, src, src.Bounds(), op, nil)
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// inverse turns t, mapping destination offsets from origin to source
// positions, into the source to destination matrix. Only affine transforms
// can be inverted.
func inverse(t fixed.Transform, origin image.Point) (f64.Aff3, bool) {
	one := fixed.Int16_16U(1)
	if t[2][0] != 0 || t[2][1] != 0 || t[2][2] != one {
		return f64.Aff3{}, false
	}
	a, b := float64(t[0][0].Float()), float64(t[0][1].Float())
	c, e := float64(t[1][0].Float()), float64(t[1][1].Float())
	ox, oy := float64(origin.X), float64(origin.Y)
	tx := float64(t[0][2].Float()) - a*ox - b*oy
	ty := float64(t[1][2].Float()) - c*ox - e*oy

	det := a*e - b*c
	if det == 0 {
		return f64.Aff3{}, false
	}
	ia, ib := e/det, -b/det
	ic, ie := -c/det, a/det
	return f64.Aff3{
		ia, ib, -(ia*tx + ib*ty),
		ic, ie, -(ic*tx + ie*ty),
	}, true
}
