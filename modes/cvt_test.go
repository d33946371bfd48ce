package modes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clktmr/radeonhd/modes"
)

func assertReducedSignature(t *testing.T, m *modes.Mode) {
	t.Helper()
	assert.Equal(t, 160, m.HTotal-m.HDisplay)
	assert.Equal(t, 80, m.HSyncEnd-m.HDisplay)
	assert.Equal(t, 32, m.HSyncEnd-m.HSyncStart)
	assert.Equal(t, 3, m.VSyncStart-m.VDisplay)
}

func TestCVT(t *testing.T) {
	tests := []struct {
		w, h         int
		refresh      float64
		reduced      bool
		interlaced   bool
		hss, hse, ht int
		vss, vse, vt int
		clock        int
		flags        modes.Flag
	}{
		{1600, 1200, 75, false, false, 1720, 1893, 2186, 1203, 1207, 1255, 205500,
			modes.FlagNHSync | modes.FlagPVSync},
		{1024, 768, 60, true, false, 1072, 1104, 1184, 771, 775, 790, 56000,
			modes.FlagPHSync | modes.FlagNVSync},
		{1920, 1200, 60, true, false, 1968, 2000, 2080, 1203, 1209, 1235, 154000,
			modes.FlagPHSync | modes.FlagNVSync},
		{640, 480, 60, false, false, 657, 720, 800, 483, 487, 500, 23750,
			modes.FlagNHSync | modes.FlagPVSync},
		{1920, 1080, 60, false, true, 2047, 2252, 2584, 1083, 1088, 1164, 180250,
			modes.FlagNHSync | modes.FlagPVSync | modes.FlagInterlace},
	}
	for _, tc := range tests {
		m := modes.CVT(tc.w, tc.h, tc.refresh, tc.reduced, tc.interlaced)
		assert.Equal(t, tc.w, m.HDisplay)
		assert.Equal(t, tc.h, m.VDisplay)
		assert.Equal(t, []int{tc.hss, tc.hse, tc.ht}, []int{m.HSyncStart, m.HSyncEnd, m.HTotal}, m.Name)
		assert.Equal(t, []int{tc.vss, tc.vse, tc.vt}, []int{m.VSyncStart, m.VSyncEnd, m.VTotal}, m.Name)
		assert.Equal(t, tc.clock, m.Clock, m.Name)
		assert.Equal(t, tc.flags, m.Flags, m.Name)
		assert.Zero(t, m.Clock%250)
		assert.Equal(t, float64(m.Clock)/float64(m.HTotal), m.HSync)
	}
}

func TestCVTDeterministic(t *testing.T) {
	a := modes.CVT(1280, 1024, 85, false, false)
	b := modes.CVT(1280, 1024, 85, false, false)
	assert.Equal(t, a, b)
	assert.NotSame(t, a, b)

	assert.Equal(t, modes.CVT(1024, 768, 60, false, false), modes.CVT(1024, 768, 0, false, false),
		"zero refresh means 60 Hz")
}

func TestCVTReducedSignature(t *testing.T) {
	for _, size := range [][2]int{{1024, 768}, {1280, 800}, {1920, 1080}, {2560, 1600}, {1000, 1000}} {
		m := modes.CVT(size[0], size[1], 60, true, false)
		assertReducedSignature(t, m)
		assert.InDelta(t, 60, m.VRefresh, 1)
	}
	m := modes.CVT(1600, 1200, 75, false, false)
	assert.InDelta(t, 74.906, m.VRefresh, 0.001)
	assert.Equal(t, "1600x1200", m.Name)
}

func TestModeFromName(t *testing.T) {
	m, err := modes.ModeFromName("1600x1200@75")
	require.NoError(t, err)
	assert.Equal(t, "1600x1200@75", m.Name)
	assert.Equal(t, modes.TypeUserDef, m.Type)
	assert.Equal(t, 1600, m.HDisplay)
	assert.Equal(t, 1200, m.VDisplay)
	assert.Positive(t, m.HTotal)
	assert.Positive(t, m.VTotal)
	assert.Zero(t, m.Clock%250)
	assert.Equal(t, modes.CVT(1600, 1200, 75, false, false).Clock, m.Clock)

	m, err = modes.ModeFromName("1024x768@60r")
	require.NoError(t, err)
	assertReducedSignature(t, m)
	assert.Equal(t, modes.FlagPHSync|modes.FlagNVSync, m.Flags)

	m, err = modes.ModeFromName("800x600")
	require.NoError(t, err)
	assert.InDelta(t, 60, m.VRefresh, 1)

	for _, name := range []string{"", "foo", "x768", "1024x", "0x0@60"} {
		_, err = modes.ModeFromName(name)
		assert.Error(t, err, name)
	}
}

func TestModeline(t *testing.T) {
	m := modes.CVT(640, 480, 60, false, false)
	assert.Equal(t, `Modeline "640x480"   23.75  640 657 720 800  480 483 487 500 -hsync +vsync`,
		m.Modeline())

	m.VScan = 2
	m.Flags |= modes.FlagDblScan
	assert.Contains(t, m.Modeline(), "500 vscan 2 doublescan -hsync")
	assert.Equal(t, `"640x480" (640x480:23.8MHz)`, m.String())
}
