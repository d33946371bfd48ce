package modes

import (
	"errors"
	"fmt"
	"strings"
)

var errModeName = errors.New("modes: expected WIDTHxHEIGHT[@REFRESH][r]")

// ModeFromName builds a CVT mode from a name like "1920x1080@60". A trailing
// 'r' or 'R' selects reduced blanking, a missing refresh means 60 Hz. The
// mode keeps the full name and is marked user defined.
func ModeFromName(name string) (*Mode, error) {
	var w, h int
	var refresh float64
	// Sscanf stops at the first mismatch, so "1024x768" and "1024x768@60r"
	// both parse.
	n, _ := fmt.Sscanf(name, "%dx%d@%f", &w, &h, &refresh)
	if n < 2 || w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %q", errModeName, name)
	}
	reduced := strings.HasSuffix(name, "r") || strings.HasSuffix(name, "R")

	m := CVT(w, h, refresh, reduced, false)
	m.Name = name
	m.Type = TypeUserDef
	return m, nil
}
