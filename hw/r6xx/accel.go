// Package r6xx accelerates 2D operations on R6xx and R7xx GPUs through the
// 3D engine.
//
// Every operation follows the same sequence: a Prepare method validates the
// operands and emits the pipeline state into a fresh command buffer, the
// returned operation appends geometry, and Done submits it as one draw. A
// Prepare error wrapping ErrFallback means the operation must be done in
// software; nothing has been emitted in that case.
//
// Each command buffer is split in halves. Commands occupy the first half up
// to the shader programs, which are placed right below the middle. Vertices
// fill the second half.
package r6xx

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/clktmr/radeonhd/hw/cs"
)

// ErrFallback reports that an operation can't be accelerated.
var ErrFallback = errors.New("unaccelerated")

func fallbackf(format string, args ...any) error {
	return fmt.Errorf("r6xx: "+format+": %w", append(args, ErrFallback)...)
}

// Surface limits announced to the host framework.
const (
	PixmapOffsetAlign = 0x1000
	PixmapPitchAlign  = 64
	MaxPitchBytes     = 16320
	MaxX              = 8192
	MaxY              = 8192
)

// Offsets of the shader programs relative to the middle of a buffer.
const (
	vsOffset = -512
	psOffset = -256
)

type Chip int

const (
	R600 Chip = iota
	RV610
	RV630
	RV670
	RV620
	RV635
	RS780
	RV770
	RV730
	RV710
)

var chipNames = [...]string{
	R600: "r600", RV610: "rv610", RV630: "rv630", RV670: "rv670",
	RV620: "rv620", RV635: "rv635", RS780: "rs780", RV770: "rv770",
	RV730: "rv730", RV710: "rv710",
}

func (c Chip) String() string {
	if c < 0 || int(c) >= len(chipNames) {
		return fmt.Sprintf("Chip(%d)", int(c))
	}
	return chipNames[c]
}

// ParseChip returns the chip named name, e.g. "rv770".
func ParseChip(name string) (Chip, error) {
	for c, n := range chipNames {
		if strings.EqualFold(n, name) {
			return Chip(c), nil
		}
	}
	return 0, fmt.Errorf("r6xx: unknown chip %q", name)
}

// Pixmap is a surface in video memory.
type Pixmap struct {
	Offset uint32 // from the start of the framebuffer aperture
	Pitch  int    // bytes per row
	Width  int
	Height int
	Bpp    int
}

// pitch returns the pitch in pixels.
func (p *Pixmap) pitch() int { return p.Pitch / max(p.Bpp/8, 1) }

type Config struct {
	Chip Chip

	// FBBase is the GPU address of the framebuffer aperture, FB its CPU
	// mapping. FB may be nil if no uploads or downloads are done.
	FBBase uint32
	FB     []byte
}

// State is the acceleration context of one screen. Operations must not
// interleave: an operation's Done must be called before the next Prepare.
type State struct {
	e   emitter
	cfg Config
	log *slog.Logger

	marker int
	synced int
}

func New(stream *cs.Stream, cfg Config, log *slog.Logger) *State {
	if log == nil {
		log = slog.Default()
	}
	return &State{e: emitter{cs: stream, chip: cfg.Chip}, cfg: cfg, log: log}
}

// Framebuffer returns the CPU mapping of the framebuffer aperture.
func (s *State) Framebuffer() []byte { return s.cfg.FB }

// gpuAddr returns the address the GPU sees p at.
func (s *State) gpuAddr(p *Pixmap) uint32 { return s.cfg.FBBase + p.Offset }

// checkPixmap rejects surfaces the render backend can't address.
func (s *State) checkPixmap(p *Pixmap, role string) error {
	switch {
	case p.Bpp != 8 && p.Bpp != 16 && p.Bpp != 32:
		return fallbackf("%s: unsupported depth %d", role, p.Bpp)
	case p.Pitch%(p.Bpp/8) != 0 || p.pitch()&63 != 0:
		return fallbackf("%s: bad pitch 0x%x", role, p.Pitch)
	case s.gpuAddr(p)&0xff != 0:
		return fallbackf("%s: bad offset 0x%x", role, s.gpuAddr(p))
	}
	return nil
}

func (s *State) reject(err error) error {
	s.log.Debug("r6xx: fallback", "err", err)
	return err
}

// begin starts a new command buffer for an operation.
func (s *State) begin() {
	stream := s.e.cs
	if stream.Buffer().Used > 0 {
		stream.Flush()
	}
	stream.Limit = stream.Buffer().Total()/2 + vsOffset
}

// upload copies the shader programs into the active buffer and returns their
// GPU addresses.
func (s *State) upload(vs, ps []uint32) (vsAddr, psAddr uint64) {
	buf := s.e.cs.Buffer()
	mid := buf.Total() / 2
	buf.PutWords(mid+vsOffset, vs)
	buf.PutWords(mid+psOffset, ps)
	return s.e.cs.GPUAddr(mid + vsOffset), s.e.cs.GPUAddr(mid + psOffset)
}

// MarkSync returns a new marker for the work submitted so far.
func (s *State) MarkSync() int {
	s.marker++
	return s.marker
}

// WaitMarker blocks until the work up to marker m has completed.
func (s *State) WaitMarker(m int) {
	if s.synced >= m {
		return
	}
	s.e.cs.Flush()
	s.e.cs.Idle()
	s.synced = s.marker
}

// UploadToScreen copies h rows of w pixels from src into dst at (x, y).
func (s *State) UploadToScreen(dst *Pixmap, x, y, w, h int, src []byte, srcPitch int) error {
	fb, err := s.rows(dst, x, y, w, h)
	if err != nil {
		return err
	}
	n := w * dst.Bpp / 8
	for i := range h {
		copy(fb[i*dst.Pitch:i*dst.Pitch+n], src[i*srcPitch:])
	}
	return nil
}

// DownloadFromScreen copies h rows of w pixels at (x, y) of src into dst.
func (s *State) DownloadFromScreen(src *Pixmap, x, y, w, h int, dst []byte, dstPitch int) error {
	fb, err := s.rows(src, x, y, w, h)
	if err != nil {
		return err
	}
	n := w * src.Bpp / 8
	for i := range h {
		copy(dst[i*dstPitch:i*dstPitch+n], fb[i*src.Pitch:])
	}
	return nil
}

// rows returns the framebuffer region starting at pixel (x, y) of p.
func (s *State) rows(p *Pixmap, x, y, w, h int) ([]byte, error) {
	start := int(p.Offset) + x*p.Bpp/8 + y*p.Pitch
	end := start + (h-1)*p.Pitch + w*p.Bpp/8
	if h <= 0 || w <= 0 {
		return nil, nil
	}
	if s.cfg.FB == nil || start < 0 || end > len(s.cfg.FB) {
		return nil, s.reject(fallbackf("transfer outside of framebuffer"))
	}
	return s.cfg.FB[start:end], nil
}
