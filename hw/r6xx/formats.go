package r6xx

import "fmt"

// PictFormat is a render picture format: bits per pixel, channel layout and
// the width of each channel.
type PictFormat uint32

const (
	pictTypeA    = 1
	pictTypeARGB = 2
	pictTypeABGR = 3
)

// Supported formats, encoded as bpp<<24 | type<<16 | a<<12 | r<<8 | g<<4 | b.
const (
	A8R8G8B8 PictFormat = 32<<24 | pictTypeARGB<<16 | 0x8888
	X8R8G8B8 PictFormat = 32<<24 | pictTypeARGB<<16 | 0x0888
	A8B8G8R8 PictFormat = 32<<24 | pictTypeABGR<<16 | 0x8888
	X8B8G8R8 PictFormat = 32<<24 | pictTypeABGR<<16 | 0x0888
	R5G6B5   PictFormat = 16<<24 | pictTypeARGB<<16 | 0x0565
	A1R5G5B5 PictFormat = 16<<24 | pictTypeARGB<<16 | 0x1555
	X1R5G5B5 PictFormat = 16<<24 | pictTypeARGB<<16 | 0x0555
	A8       PictFormat = 8<<24 | pictTypeA<<16 | 0x8000
)

func (f PictFormat) Bpp() int { return int(f >> 24) }

// A returns the width of the alpha channel.
func (f PictFormat) A() int { return int(f>>12) & 0xf }

// RGB returns the widths of the color channels, zero if there is no color.
func (f PictFormat) RGB() int { return int(f) & 0xfff }

func (f PictFormat) String() string {
	switch f {
	case A8R8G8B8:
		return "a8r8g8b8"
	case X8R8G8B8:
		return "x8r8g8b8"
	case A8B8G8R8:
		return "a8b8g8r8"
	case X8B8G8R8:
		return "x8b8g8r8"
	case R5G6B5:
		return "r5g6b5"
	case A1R5G5B5:
		return "a1r5g5b5"
	case X1R5G5B5:
		return "x1r5g5b5"
	case A8:
		return "a8"
	}
	return fmt.Sprintf("PictFormat(0x%08x)", uint32(f))
}

// texFormat is the texture format and the component swizzle sampling a
// picture format.
type texFormat struct {
	Format  uint32
	Swizzle [4]Sel
}

var texFormats = map[PictFormat]texFormat{
	A8R8G8B8: {fmt8888, [4]Sel{SelX, SelY, SelZ, SelW}},
	X8R8G8B8: {fmt8888, [4]Sel{Sel1, SelY, SelZ, SelW}},
	A8B8G8R8: {fmt8888, [4]Sel{SelX, SelW, SelZ, SelY}},
	X8B8G8R8: {fmt8888, [4]Sel{Sel1, SelW, SelZ, SelY}},
	R5G6B5:   {fmt565, [4]Sel{Sel1, SelX, SelY, SelZ}},
	A1R5G5B5: {fmt1555, [4]Sel{SelX, SelY, SelZ, SelW}},
	X1R5G5B5: {fmt1555, [4]Sel{Sel1, SelY, SelZ, SelW}},
	A8:       {fmt8, [4]Sel{SelX, Sel0, Sel0, Sel0}},
}

// destFormat returns the color buffer format rendering to f.
func destFormat(f PictFormat) (uint32, bool) {
	switch f {
	case A8R8G8B8, X8R8G8B8:
		return color8888, true
	case R5G6B5:
		return color565, true
	case A1R5G5B5, X1R5G5B5:
		return color1555, true
	case A8:
		return color8, true
	}
	return colorInvalid, false
}

// sampleSwizzle returns how the pixel shader arranges a sample of format f
// for export: alpha first, then the colors.
func sampleSwizzle(f PictFormat) [4]Sel {
	sel := [4]Sel{SelX, SelY, SelZ, SelW}
	if f.RGB() == 0 {
		sel[1], sel[2], sel[3] = Sel0, Sel0, Sel0
	}
	if f.A() == 0 {
		sel[0] = Sel1
	}
	return sel
}
