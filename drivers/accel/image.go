package accel

import (
	"image"
	"image/color"
)

// BGRA is an in-memory image whose pixels are stored as B, G, R, A bytes,
// the little endian layout of a8r8g8b8. Like image.RGBA it holds
// premultiplied colors.
type BGRA struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

func (p *BGRA) ColorModel() color.Model { return color.RGBAModel }
func (p *BGRA) Bounds() image.Rectangle { return p.Rect }

func (p *BGRA) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+4 : i+4]
	return color.RGBA{s[2], s[1], s[0], s[3]}
}

func (p *BGRA) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	c1 := color.RGBAModel.Convert(c).(color.RGBA)
	s := p.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = c1.B, c1.G, c1.R, c1.A
}

func (p *BGRA) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

func (p *BGRA) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &BGRA{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &BGRA{Pix: p.Pix[i:], Stride: p.Stride, Rect: r}
}

// RGB565 stores pixels as little endian r5g6b5 words.
type RGB565 struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

type color565 uint16

func (c color565) RGBA() (r, g, b, a uint32) {
	r = uint32(c>>11) & 0x1f
	g = uint32(c>>5) & 0x3f
	b = uint32(c) & 0x1f
	return r<<11 | r<<6 | r<<1 | r>>4, g<<10 | g<<4 | g>>2, b<<11 | b<<6 | b<<1 | b>>4, 0xffff
}

// RGB565Model converts colors to r5g6b5, dropping alpha.
var RGB565Model color.Model = color.ModelFunc(rgb565Model)

func rgb565Model(c color.Color) color.Color {
	if _, ok := c.(color565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return color565(r>>11<<11 | g>>10<<5 | b>>11)
}

func (p *RGB565) ColorModel() color.Model { return RGB565Model }
func (p *RGB565) Bounds() image.Rectangle { return p.Rect }

func (p *RGB565) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color565(0)
	}
	i := p.PixOffset(x, y)
	return color565(uint16(p.Pix[i]) | uint16(p.Pix[i+1])<<8)
}

func (p *RGB565) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	v := rgb565Model(c).(color565)
	p.Pix[i] = uint8(v)
	p.Pix[i+1] = uint8(v >> 8)
}

func (p *RGB565) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

func (p *RGB565) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &RGB565{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &RGB565{Pix: p.Pix[i:], Stride: p.Stride, Rect: r}
}

// pixel packs c into the pixel value a surface of this depth stores.
func pixel(bpp int, c color.Color) uint32 {
	switch bpp {
	case 16:
		return uint32(rgb565Model(c).(color565))
	case 32:
		c1 := color.RGBAModel.Convert(c).(color.RGBA)
		return uint32(c1.A)<<24 | uint32(c1.R)<<16 | uint32(c1.G)<<8 | uint32(c1.B)
	}
	return 0
}
