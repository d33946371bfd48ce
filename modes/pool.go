package modes

// Pool builds the list of modes the screen offers from the monitor's modes.
//
// With names, each name picks its best match: user defined modes before
// driver provided ones, preferred ones among them, then the best refresh.
// Names matching no mode are synthesized with CVT. Without names, the best
// mode of every name is kept, and the preferred modes go first. Both groups
// are sorted by size.
func (v *Validator) Pool(names []string) List {
	var source List
	if v.Monitor != nil {
		if len(v.Monitor.Modes) > 0 {
			v.log().Info("modes: validating modes of the configured monitor", "monitor", v.Monitor.ID)
		}
		source = v.ListValidateAndCopy(v.Monitor.Modes)
	}

	var pool List
	if len(names) > 0 {
		for _, name := range names {
			var m *Mode
			if matched := source.GrabOnName(name); len(matched) > 0 {
				m = bestOf(matched.GrabOnHighestType())
			} else {
				m = v.CreateFromName(name)
			}
			if m != nil {
				pool.Add(m)
			}
		}
		return pool
	}

	source = source.GrabOnHighestType()
	for len(source) > 0 {
		pool.Add(bestOf(source.GrabOnName(source[0].Name)))
	}

	preferred := pool.GrabOnType(TypePreferred, TypePreferred)
	preferred.SortOnSize()
	pool.SortOnSize()
	preferred.Append(&pool)
	return preferred
}

// bestOf picks the mode with the best refresh, preferring preferred modes.
func bestOf(l List) *Mode {
	if p := l.GrabOnType(TypePreferred, TypePreferred); len(p) > 0 {
		l = p
	}
	return l.GrabBestRefresh()
}

// Attach makes l the modes the screen switches between, starting with the
// first one. All of them count as user defined from now on.
func (v *Validator) Attach(l List) {
	for _, m := range l {
		m.Type = TypeUserDef
	}
	v.modes = l
	v.current = 0
}

// Modes returns the attached modes.
func (v *Validator) Modes() List { return v.modes }

// Current returns the active mode, nil if none are attached.
func (v *Validator) Current() *Mode {
	if len(v.modes) == 0 {
		return nil
	}
	return v.modes[v.current]
}

// Switch moves delta modes forward in the attached modes, wrapping around at
// both ends, and returns the new active mode.
func (v *Validator) Switch(delta int) *Mode {
	n := len(v.modes)
	if n == 0 {
		return nil
	}
	v.current = ((v.current+delta)%n + n) % n
	return v.modes[v.current]
}
