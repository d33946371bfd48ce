package modes

// fbValid asks every CRTC for a framebuffer of the given size. It returns
// the common pitch, or the first failure. StatusOK with ok unset means the
// CRTCs disagree on the pitch.
func (v *Validator) fbValid(width, height int) (pitch int, s Status, ok bool) {
	for i, crtc := range v.CRTCs {
		p, st := crtc.FBValid(width, height, v.BitsPerPixel, v.VideoRAM)
		if st != StatusOK {
			return 0, st, false
		}
		if i > 0 && p != pitch {
			return 0, StatusOK, false
		}
		pitch = p
	}
	return pitch, StatusOK, len(v.CRTCs) > 0
}

// VirtualFromConfig sets the virtual size to the configured one, or the
// largest smaller size of the same aspect ratio that every CRTC can scan
// out with the same pitch. It reports whether such a size was found.
func (v *Validator) VirtualFromConfig(x, y int) bool {
	if x <= 0 || y <= 0 {
		return false
	}
	ratio := float64(y) / float64(x)
	for x > 0 && y > 0 {
		if pitch, _, ok := v.fbValid(x, y); ok {
			v.VirtualX, v.VirtualY = x, y
			v.DisplayWidth = pitch
			return true
		}
		x--
		y = int(ratio * float64(x))
	}
	return false
}

// VirtualFromModes grows the virtual size until every mode of l fits. Modes
// that would need a framebuffer the CRTCs can't agree on are dropped from l.
func (v *Validator) VirtualFromModes(l *List) {
	for i := 0; i < len(*l); {
		m := (*l)[i]
		if m.CrtcHDisplay <= v.VirtualX && m.CrtcVDisplay <= v.VirtualY {
			i++
			continue
		}

		x, y := max(m.CrtcHDisplay, v.VirtualX), max(m.CrtcVDisplay, v.VirtualY)
		pitch, s, ok := v.fbValid(x, y)
		if ok {
			v.VirtualX, v.VirtualY = x, y
			v.DisplayWidth = pitch
			i++
			continue
		}

		reason := s.String()
		if s == StatusOK {
			reason = "CRTC pitches do not match"
		}
		v.log().Info("modes: rejected mode", "mode", m.Name, "width", m.HDisplay,
			"height", m.VDisplay, "reason", reason)
		l.Delete(m)
	}
}
