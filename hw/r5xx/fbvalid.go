package r5xx

import "log/slog"

// Engine limits on framebuffers.
const (
	MaxPitchBytes = 0x4000
	MaxHeight     = 0x2000
	PitchAlign    = 0x40
)

// BytesPerPixel returns the storage size of a pixel for bpp, which may also be
// a depth. Unknown values are logged and treated as 32 bit.
func BytesPerPixel(bpp int) int {
	switch bpp {
	case 8:
		return 1
	case 15, 16:
		return 2
	case 24, 32:
		return 4
	}
	slog.Error("r5xx: unhandled bpp", "bpp", bpp)
	return 4
}

// FBValid reports whether the 2D engine can render into a framebuffer with
// the given pitch (in pixels), depth and height.
func FBValid(pitch, bpp, height int) bool {
	bytes := pitch * BytesPerPixel(bpp)
	if bytes&(PitchAlign-1) != 0 { // low bits are ignored by the engine
		return false
	}
	if bytes >= MaxPitchBytes {
		return false
	}
	return height < MaxHeight
}
