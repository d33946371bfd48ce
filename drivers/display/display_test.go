package display_test

import (
	"image"
	"image/color"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clktmr/radeonhd/config"
	"github.com/clktmr/radeonhd/drivers/crtc"
	"github.com/clktmr/radeonhd/drivers/display"
	"github.com/clktmr/radeonhd/hw/cs"
	"github.com/clktmr/radeonhd/hw/hwtest"
)

func open(t *testing.T, names ...string) (*display.Screen, config.Config) {
	cfg := config.Default()
	cfg.Modes = names
	s, err := display.Open(cfg, nil, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, cfg
}

func TestProbe(t *testing.T) {
	s, _ := open(t, "1280x1024", "1024x768", "bogus", "640x480")

	l, err := s.Probe()
	require.NoError(t, err)
	require.Len(t, l, 3)
	assert.Equal(t, "1280x1024", l[0].Name)
	assert.Same(t, l[0], s.Validator.Current())

	assert.Equal(t, 1280, s.Validator.VirtualX)
	assert.Equal(t, 1024, s.Validator.VirtualY)
	assert.Equal(t, 1280, s.Validator.DisplayWidth)
	assert.Equal(t, 1280*4, s.Draw.Screen().Pixmap.Pitch)
	assert.NotNil(t, s.Engine)
}

func TestProbeVirtual(t *testing.T) {
	cfg := config.Default()
	cfg.Modes = []string{"1024x768", "640x480"}
	cfg.VirtualX, cfg.VirtualY = 800, 600
	s, err := display.Open(cfg, nil, nil)
	require.NoError(t, err)
	defer s.Close()

	l, err := s.Probe()
	require.NoError(t, err)
	require.Len(t, l, 1)
	assert.Equal(t, "640x480", l[0].Name)
	assert.Equal(t, image.Rect(0, 0, 800, 600), s.Draw.Screen().Bounds())
}

func TestProbeNoModes(t *testing.T) {
	s, _ := open(t)
	_, err := s.Probe()
	assert.ErrorIs(t, err, display.ErrNoModes)

	_, err = s.Switch(1)
	assert.ErrorIs(t, err, display.ErrNoModes)
	assert.Error(t, s.SetMode(nil))
}

func TestSetModeAndSwitch(t *testing.T) {
	s, _ := open(t, "1024x768", "640x480")
	l, err := s.Probe()
	require.NoError(t, err)

	regs := s.Regs.(*hwtest.Regs)
	require.NoError(t, s.SetMode(l[0]))
	assert.Equal(t, []uint32{1342 - 1}, regs.Writes(crtc.RegHTotal))
	assert.Equal(t, []uint32{1024}, regs.Writes(crtc.RegGrphPitch))
	assert.Empty(t, regs.Writes(crtc.RegHTotal+0x800), "D2 is disabled")
	assert.NotZero(t, regs.Get(crtc.RegControl)&crtc.ControlMasterEn)

	m, err := s.Switch(1)
	require.NoError(t, err)
	assert.Equal(t, "640x480", m.Name)
	m, err = s.Switch(1)
	require.NoError(t, err)
	assert.Equal(t, "1024x768", m.Name)
}

func TestCloseRestores(t *testing.T) {
	cfg := config.Default()
	cfg.Modes = []string{"800x600"}
	s, err := display.Open(cfg, nil, nil)
	require.NoError(t, err)
	regs := s.Regs.(*hwtest.Regs)

	l, err := s.Probe()
	require.NoError(t, err)
	require.NoError(t, s.SetMode(l[0]))
	require.NotZero(t, regs.Get(crtc.RegHTotal))

	require.NoError(t, s.Close())
	assert.Zero(t, regs.Get(crtc.RegHTotal))
	assert.Zero(t, regs.Get(crtc.RegControl))
}

func TestDump(t *testing.T) {
	cfg := config.Default()
	cfg.Modes = []string{"640x480"}
	cfg.DumpDir = t.TempDir()

	var submitted int
	s, err := display.Open(cfg, func(buf *cs.Buffer, wait bool) error {
		submitted++
		return nil
	}, nil)
	require.NoError(t, err)
	_, err = s.Probe()
	require.NoError(t, err)

	s.Draw.SetColor(color.White)
	s.Draw.Fill(image.Rect(0, 0, 64, 64))
	s.Draw.Flush()
	require.NoError(t, s.Draw.Err(true))
	require.NoError(t, s.Close())

	assert.Positive(t, submitted)
	require.NotEmpty(t, s.DumpFile())
	data, err := os.ReadFile(s.DumpFile())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# ring "+s.Ring.ID))
}
