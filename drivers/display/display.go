// Package display assembles the hardware of one screen from its
// configuration and drives it through mode setting and rendering.
//
// A screen without a PCI slot is simulated: registers live in memory and
// answer like an idle card, video memory is an ordinary byte slice. Command
// buffers go to a ring whose submissions are handed to a SubmitFunc; without
// one they are only recorded and, if configured, dumped.
package display

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/clktmr/radeonhd/config"
	"github.com/clktmr/radeonhd/drivers/accel"
	"github.com/clktmr/radeonhd/drivers/crtc"
	"github.com/clktmr/radeonhd/drivers/outputs"
	"github.com/clktmr/radeonhd/hw"
	"github.com/clktmr/radeonhd/hw/cs"
	"github.com/clktmr/radeonhd/hw/hwtest"
	"github.com/clktmr/radeonhd/hw/r5xx"
	"github.com/clktmr/radeonhd/hw/r6xx"
	"github.com/clktmr/radeonhd/modes"
)

// PCI resources of the card.
const (
	fbBAR    = 0
	regsBAR  = 2
	regsSize = 64 << 10
)

// Screen is one configured card with its controllers and outputs.
type Screen struct {
	Config config.Config

	Regs      hw.Registers
	FB        []byte
	CRTCs     [2]*crtc.CRTC
	Outputs   []outputs.Output
	Validator *modes.Validator

	Ring   *cs.Ring
	Stream *cs.Stream
	Accel  *r6xx.State

	// Set up by Probe.
	Engine *r5xx.Engine
	Draw   *accel.Driver

	log     *slog.Logger
	closers []func() error
	saved   bool
}

// Simulator returns registers that behave like an idle card: the PLLs lock
// and the engine reports an empty FIFO.
func Simulator() *hwtest.Regs {
	regs := hwtest.New()
	locked := func(v uint32) uint32 { return v | crtc.PLLLocked }
	regs.OnRead(crtc.RegPLLCntl, locked)
	regs.OnRead(crtc.RegPLLCntl+0x20, locked) // P2
	regs.Set(r5xx.RegRBBMStatus, r5xx.RBBMFIFOEmpty)
	return regs
}

// Open sets up the card at cfg.Slot, or a simulated one. Indirect buffers
// are handed to submit, which may be nil.
func Open(cfg config.Config, submit cs.SubmitFunc, log *slog.Logger) (s *Screen, err error) {
	if log == nil {
		log = slog.Default()
	}
	s = &Screen{Config: cfg, log: log}
	defer func() {
		if err != nil {
			s.Close()
		}
	}()

	if cfg.Slot == "" {
		s.Regs = Simulator()
		s.FB = make([]byte, cfg.VideoRAM)
		log.Info("display: simulating card", "chip", cfg.Chip, "videoram", cfg.VideoRAM>>10)
	} else {
		regs, unmap, err := hw.MapBAR(cfg.Slot, regsBAR, regsSize)
		if err != nil {
			return s, fmt.Errorf("display: registers: %w", err)
		}
		s.closers = append(s.closers, unmap)
		fb, unmap, err := hw.MapBAR(cfg.Slot, fbBAR, cfg.VideoRAM)
		if err != nil {
			return s, fmt.Errorf("display: framebuffer: %w", err)
		}
		s.closers = append(s.closers, unmap)
		s.Regs, s.FB = regs, fb.Bytes()
		log.Info("display: mapped card", "slot", cfg.Slot, "chip", cfg.Chip)
	}

	poll := cfg.Poller()
	for i := range s.CRTCs {
		pll := crtc.NewPLL(i, s.Regs, log)
		pll.Poll = poll
		s.CRTCs[i] = crtc.New(i, s.Regs, pll, log)
	}
	s.CRTCs[0].Enabled = true

	dac, tmds := outputs.NewDAC(0, s.Regs, log), outputs.NewTMDS(s.Regs, log)
	dac.Attach(0)
	tmds.Attach(0)
	s.Outputs = []outputs.Output{dac, tmds, outputs.NewDAC(1, s.Regs, log)}

	s.Validator = &modes.Validator{
		Monitor:      cfg.Monitor(),
		BitsPerPixel: cfg.BitsPerPixel,
		VideoRAM:     cfg.VideoRAM,
		Log:          log,
	}
	for _, c := range s.CRTCs {
		s.Validator.CRTCs = append(s.Validator.CRTCs, c)
	}
	for _, o := range s.Outputs {
		s.Validator.Outputs = append(s.Validator.Outputs, o)
	}

	s.Ring = cs.NewRing(cfg.RingBuffers, cfg.RingBufferSize, 0, submit, log)
	if cfg.DumpDir != "" {
		if err := s.dumpTo(cfg.DumpDir); err != nil {
			return s, err
		}
	}
	s.Stream = cs.NewStream(s.Ring)
	s.Accel = r6xx.New(s.Stream, r6xx.Config{Chip: cfg.Chip, FB: s.FB}, log)

	s.save()
	return s, nil
}

// dumpTo writes the command stream to a file named after the ring in dir.
func (s *Screen) dumpTo(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	name := filepath.Join(dir, s.Ring.ID+".cs")
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	w := bufio.NewWriter(f)
	s.Ring.SetDump(w)
	s.closers = append(s.closers, func() error {
		return errors.Join(w.Flush(), f.Close())
	})
	s.log.Info("display: dumping command stream", "file", name)
	return nil
}

// DumpFile returns the name of the command stream dump, if any.
func (s *Screen) DumpFile() string {
	if s.Config.DumpDir == "" || s.Ring == nil {
		return ""
	}
	return filepath.Join(s.Config.DumpDir, s.Ring.ID+".cs")
}

func (s *Screen) save() {
	for _, c := range s.CRTCs {
		c.Save()
	}
	for _, o := range s.Outputs {
		o.Save()
	}
	s.saved = true
}

func (s *Screen) restore() {
	for _, o := range s.Outputs {
		o.Restore()
	}
	for _, c := range s.CRTCs {
		c.Restore()
	}
}

// Close waits for the engine, restores the state found by Open and releases
// the card.
func (s *Screen) Close() error {
	if s.Engine != nil {
		s.Engine.Idle()
	}
	if s.saved {
		s.restore()
		s.saved = false
	}
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	s.closers = nil
	return errors.Join(errs...)
}
