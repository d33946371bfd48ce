package modes

import (
	"log/slog"
)

// CRTC is a display controller the validator checks modes against.
type CRTC interface {
	ID() int
	Active() bool
	// FBValid checks whether the controller can scan out a framebuffer of
	// the given size and depth from mem bytes. It returns the pitch in
	// pixels.
	FBValid(width, height, bpp, mem int) (pitch int, s Status)
	// ModeValid checks the controller's timing limits. It may adjust the
	// Crtc timing and flag that.
	ModeValid(m *Mode) Status
	PLL() PLL
}

// PLL is the pixel clock synthesizer of a CRTC.
type PLL interface {
	Valid(clock int) Status
}

// Output is an encoder that may be driven by a CRTC.
type Output interface {
	Name() string
	Active() bool
	CRTC() int // ID of the driving CRTC
	ModeValid(m *Mode) Status
}

// DefaultRetries bounds the adjustment rounds of ValidateCrtc.
const DefaultRetries = 10

// Validator checks modes against the hardware of one screen.
type Validator struct {
	CRTCs   []CRTC
	Outputs []Output
	Monitor *Monitor

	BitsPerPixel int
	VideoRAM     int // bytes

	// Virtual screen size, zero until decided. DisplayWidth is the pitch
	// in pixels that goes with it.
	VirtualX, VirtualY int
	DisplayWidth       int

	Retries int // adjustment rounds, DefaultRetries if zero
	Log     *slog.Logger

	modes   List
	current int
}

func (v *Validator) log() *slog.Logger {
	if v.Log == nil {
		return slog.Default()
	}
	return v.Log
}

func (v *Validator) retries() int {
	if v.Retries <= 0 {
		return DefaultRetries
	}
	return v.Retries
}

// ValidateCrtc checks m against crtc, its PLL and all active outputs it
// drives. Whenever a check adjusts the Crtc timing, the checks start over.
func (v *Validator) ValidateCrtc(crtc CRTC, m *Mode) Status {
	if s := Sanity(m); s != StatusOK {
		return s
	}
	FillOut(m)

retry:
	for range v.retries() {
		m.CrtcHAdjusted = false
		m.CrtcVAdjusted = false

		if s := CrtcSanity(m); s != StatusOK {
			return s
		}

		if _, s := crtc.FBValid(m.CrtcHDisplay, m.CrtcVDisplay, v.BitsPerPixel, v.VideoRAM); s != StatusOK {
			return s
		}

		if s := crtc.ModeValid(m); s != StatusOK {
			return s
		}
		if m.adjusted() {
			continue
		}

		if s := crtc.PLL().Valid(m.Clock); s != StatusOK {
			return s
		}
		if m.adjusted() {
			continue
		}

		for _, o := range v.Outputs {
			if !o.Active() || o.CRTC() != crtc.ID() {
				continue
			}
			if s := o.ModeValid(m); s != StatusOK {
				return s
			}
			if m.adjusted() {
				continue retry
			}
		}
		return StatusOK
	}

	v.log().Error("modes: mode was thrown around for too long",
		"mode", m.Name, "width", m.HDisplay, "height", m.VDisplay,
		"clock", float64(m.Clock)/1000)
	return StatusRetriesExceeded
}

// Validate runs m through all checks: on its own, against every active
// CRTC, against the monitor and against the virtual size.
func (v *Validator) Validate(m *Mode) Status {
	if s := Sanity(m); s != StatusOK {
		return s
	}
	FillOut(m)

	for _, crtc := range v.CRTCs {
		if !crtc.Active() {
			continue
		}
		if s := v.ValidateCrtc(crtc, m); s != StatusOK {
			return s
		}
	}

	if s := v.Monitor.Validate(m); s != StatusOK {
		return s
	}

	if v.VirtualX > 0 && v.VirtualY > 0 {
		if v.VirtualX < m.CrtcHDisplay {
			return StatusVirtualX
		}
		if v.VirtualY < m.CrtcVDisplay {
			return StatusVirtualY
		}
	}
	return StatusOK
}

func (v *Validator) reject(m *Mode, s Status) {
	v.log().Info("modes: rejected mode", "mode", m.Name, "width", m.HDisplay,
		"height", m.VDisplay, "clock", float64(m.Clock)/1000, "reason", s)
}

// ListValidateAndCopy validates copies of the modes in l and returns the
// copies that passed. l is left untouched.
func (v *Validator) ListValidateAndCopy(l List) List {
	var keep List
	for _, m := range l {
		c := m.Copy()
		if s := v.Validate(c); s != StatusOK {
			v.reject(c, s)
			continue
		}
		keep.Add(c)
	}
	return keep
}

// CreateFromName synthesizes a CVT mode for a name like "1920x1080@60" and
// validates it. It returns nil if the name can't be parsed or the mode is
// rejected.
func (v *Validator) CreateFromName(name string) *Mode {
	m, err := ModeFromName(name)
	if err != nil {
		v.log().Info("modes: unable to generate modeline", "mode", name, "err", err)
		return nil
	}
	v.log().Info("modes: generating modeline", "mode", name)
	if s := v.Validate(m); s != StatusOK {
		v.reject(m, s)
		return nil
	}
	return m
}
