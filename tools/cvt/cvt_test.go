package cvt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clktmr/radeonhd/tools/cvt"
)

func run(args ...string) (string, error) {
	cmd := cvt.Command()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCVT(t *testing.T) {
	out, err := run("1920", "1200")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "# 1920x1200 59.88 Hz (CVT) hsync: 74.56 kHz; pclk: 193.25 MHz", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `Modeline "1920x1200"  193.25  1920 `), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], " 1245 -hsync +vsync"), lines[1])
}

func TestCVTReduced(t *testing.T) {
	out, err := run("-r", "1920", "1200", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "(CVT-RB)")
	assert.Contains(t, out, "pclk: 154.00 MHz")
	assert.Contains(t, out, "+hsync -vsync")

	_, err = run("--reduced", "1920", "1200", "75")
	assert.Error(t, err)
}

func TestCVTLanguage(t *testing.T) {
	out, err := run("--lang", "de", "1024", "768")
	require.NoError(t, err)
	assert.Contains(t, out, "pclk: 64,00 MHz")
	assert.Contains(t, out, `Modeline "1024x768"   64.00`, "modelines aren't localized")
}

func TestCVTErrors(t *testing.T) {
	for _, args := range [][]string{
		{"1024"},
		{"wide", "768"},
		{"1024", "tall"},
		{"1024", "768", "fast"},
		{"0", "768"},
		{"--lang", "?!", "1024", "768"},
	} {
		_, err := run(args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestCVTInterlaced(t *testing.T) {
	out, err := run("-i", "1920", "1080")
	require.NoError(t, err)
	assert.Contains(t, out, "pclk: 180.25 MHz")
	assert.Contains(t, out, " interlace -hsync +vsync")
}
