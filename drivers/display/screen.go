package display

import (
	"errors"
	"fmt"
	"slices"

	"github.com/clktmr/radeonhd/drivers/accel"
	"github.com/clktmr/radeonhd/drivers/outputs"
	"github.com/clktmr/radeonhd/hw/r5xx"
	"github.com/clktmr/radeonhd/modes"
)

// ErrNoModes is returned by Probe if no configured mode survives validation.
var ErrNoModes = errors.New("display: no usable modes")

// Probe validates the configured modes, decides the virtual screen size and
// sets up the engines for it. It returns the modes the screen switches
// between, the first one being active.
func (s *Screen) Probe() (modes.List, error) {
	v := s.Validator
	pool := v.Pool(s.Config.Modes)

	if s.Config.VirtualX > 0 && s.Config.VirtualY > 0 {
		if !v.VirtualFromConfig(s.Config.VirtualX, s.Config.VirtualY) {
			return nil, fmt.Errorf("display: virtual size %dx%d doesn't fit",
				s.Config.VirtualX, s.Config.VirtualY)
		}
		for _, m := range slices.Clone(pool) {
			if m.CrtcHDisplay > v.VirtualX || m.CrtcVDisplay > v.VirtualY {
				s.log.Info("display: mode exceeds virtual size", "mode", m.Name)
				pool.Delete(m)
			}
		}
	} else {
		v.VirtualFromModes(&pool)
	}
	if len(pool) == 0 {
		return nil, ErrNoModes
	}
	v.Attach(pool)
	pool.Log(s.log)

	d, err := accel.New(s.Accel, v.VirtualX, v.VirtualY, s.Config.BitsPerPixel, s.log)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	d.NoAccel = s.Config.NoAccel
	s.Draw = d

	pm := d.Screen().Pixmap
	s.Engine = r5xx.New(s.Regs, s.Stream, r5xx.Config{
		DisplayWidth: pm.Pitch / r5xx.BytesPerPixel(pm.Bpp),
		Depth:        min(pm.Bpp, 24),
		BitsPerPixel: pm.Bpp,
		FBOffset:     pm.Offset,
		Poll:         s.Config.Poller(),
	}, s.log)
	s.log.Info("display: virtual screen", "width", v.VirtualX, "height", v.VirtualY,
		"pitch", pm.Pitch)
	return pool, nil
}

// SetMode programs every enabled CRTC and the outputs it drives for m and
// points them at the screen. Probe must have been called.
func (s *Screen) SetMode(m *modes.Mode) error {
	if s.Draw == nil {
		return errors.New("display: screen not probed")
	}
	pm := s.Draw.Screen().Pixmap
	cpp := r5xx.BytesPerPixel(pm.Bpp)

	for _, c := range s.CRTCs {
		if !c.Active() {
			continue
		}
		c.Power(false)
		if err := c.PixelPLL().Set(m.SynthClock); err != nil {
			return fmt.Errorf("display: %s: %w", m.Name, err)
		}
		c.SetMode(m)
		c.Scanout(pm.Offset, s.Validator.VirtualX, s.Validator.VirtualY, pm.Pitch/cpp, pm.Bpp)
		for _, o := range s.Outputs {
			if o.Active() && o.CRTC() == c.ID() {
				o.SetMode(m)
				o.Power(outputs.PowerOn)
			}
		}
		c.Power(true)
	}
	s.log.Info("display: mode set", "mode", m.Name, "clock", m.SynthClock)
	return nil
}

// Switch moves delta modes through the probed modes and sets the new one.
func (s *Screen) Switch(delta int) (*modes.Mode, error) {
	m := s.Validator.Switch(delta)
	if m == nil {
		return nil, ErrNoModes
	}
	return m, s.SetMode(m)
}
