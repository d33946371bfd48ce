package accel

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/clktmr/radeonhd/hw/r6xx"
)

// ErrNoMemory is returned when a surface doesn't fit into video memory.
var ErrNoMemory = errors.New("accel: out of video memory")

// Surface is an image in video memory. It can be drawn on by the CPU through
// the framebuffer aperture and used as source of accelerated operations.
type Surface struct {
	draw.Image
	Pixmap r6xx.Pixmap
	Format r6xx.PictFormat // zero for paletted surfaces
}

func (s *Surface) picture() *r6xx.Picture {
	return &r6xx.Picture{Pixmap: &s.Pixmap, Format: s.Format}
}

// screenFormat returns the picture format used for surfaces of depth bpp.
func screenFormat(bpp int) (r6xx.PictFormat, error) {
	switch bpp {
	case 8:
		return 0, nil
	case 16:
		return r6xx.R5G6B5, nil
	case 32:
		return r6xx.A8R8G8B8, nil
	}
	return 0, fmt.Errorf("accel: unsupported depth %d", bpp)
}

func alignUp(v, a int) int { return (v + a - 1) / a * a }

// allocator hands out video memory for surfaces.
type allocator struct {
	mem  []byte
	next int
}

func (a *allocator) alloc(w, h, bpp int) (off, pitch int, err error) {
	pitch = alignUp(w, r6xx.PixmapPitchAlign) * bpp / 8
	off = alignUp(a.next, r6xx.PixmapOffsetAlign)
	if w <= 0 || h <= 0 || off+pitch*h > len(a.mem) {
		return 0, 0, fmt.Errorf("%dx%d at %d bpp: %w", w, h, bpp, ErrNoMemory)
	}
	a.next = off + pitch*h
	return off, pitch, nil
}

// newSurface places a surface of format f at off. Paletted surfaces use pal.
func newSurface(mem []byte, off, pitch, w, h int, f r6xx.PictFormat, bpp int, pal color.Palette) *Surface {
	rect := image.Rect(0, 0, w, h)
	pix := mem[off : off+pitch*h]

	var img draw.Image
	switch {
	case bpp == 8:
		img = &image.Paletted{Pix: pix, Stride: pitch, Rect: rect, Palette: pal}
	case f == r6xx.R5G6B5:
		img = &RGB565{Pix: pix, Stride: pitch, Rect: rect}
	case f == r6xx.A8B8G8R8:
		img = &image.RGBA{Pix: pix, Stride: pitch, Rect: rect}
	default:
		img = &BGRA{Pix: pix, Stride: pitch, Rect: rect}
	}
	return &Surface{
		Image: img,
		Pixmap: r6xx.Pixmap{
			Offset: uint32(off),
			Pitch:  pitch,
			Width:  w,
			Height: h,
			Bpp:    bpp,
		},
		Format: f,
	}
}
