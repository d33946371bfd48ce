// Package config reads the settings of a screen from the environment.
//
// Every setting is an RHD_ variable. Load reads an optional .env file first;
// variables already set in the environment take precedence over it.
//
//	RHD_SLOT          PCI slot of the card, e.g. 0000:01:00.0; empty simulates
//	RHD_CHIP          GPU family, e.g. rv770
//	RHD_VIDEORAM      video memory in KiB
//	RHD_BPP           bits per pixel: 8, 16 or 32
//	RHD_MODES         requested modes, e.g. `1280x1024 "1024x768@75"`
//	RHD_VIRTUAL       virtual screen size, e.g. 1600x1200
//	RHD_HSYNC         monitor horizontal sync ranges in kHz, e.g. 30-81
//	RHD_VREFRESH      monitor vertical refresh ranges in Hz, e.g. 56-76,85
//	RHD_REDUCED       monitor accepts reduced blanking: true or false
//	RHD_NOACCEL       draw in software only: true or false
//	RHD_POLL_LIMIT    iterations of register polls before giving up
//	RHD_POLL_BACKOFF  sleep between poll iterations, e.g. 10us
//	RHD_RING_BUFFERS  number of indirect buffers
//	RHD_RING_SIZE     size of each indirect buffer in bytes
//	RHD_DUMP_DIR      directory command stream dumps are written to
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/buildkite/shellwords"
	"github.com/joho/godotenv"

	"github.com/clktmr/radeonhd/hw"
	"github.com/clktmr/radeonhd/hw/r6xx"
	"github.com/clktmr/radeonhd/modes"
)

type Config struct {
	Slot string
	Chip r6xx.Chip

	VideoRAM     int // bytes
	BitsPerPixel int
	Modes        []string

	VirtualX, VirtualY int

	HSync           []modes.Range
	VRefresh        []modes.Range
	ReducedBlanking bool

	NoAccel bool

	PollLimit   int
	PollBackoff time.Duration

	RingBuffers    int
	RingBufferSize int

	DumpDir string
}

// Default returns the settings used for variables that aren't set.
func Default() Config {
	return Config{
		Chip:           r6xx.RV770,
		VideoRAM:       64 << 20,
		BitsPerPixel:   32,
		PollLimit:      hw.DefaultPoller.Limit,
		RingBuffers:    16,
		RingBufferSize: 64 << 10,
	}
}

// Load reads envFile, if it exists, into the environment and returns the
// configuration found there.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds the configuration from the variables lookup finds.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	p := parser{lookup: lookup}

	p.str("RHD_SLOT", &c.Slot)
	p.chip("RHD_CHIP", &c.Chip)
	if kib := -1; p.num("RHD_VIDEORAM", &kib) && kib >= 0 {
		c.VideoRAM = kib << 10
	}
	p.num("RHD_BPP", &c.BitsPerPixel)
	p.words("RHD_MODES", &c.Modes)
	p.size("RHD_VIRTUAL", &c.VirtualX, &c.VirtualY)
	p.ranges("RHD_HSYNC", &c.HSync)
	p.ranges("RHD_VREFRESH", &c.VRefresh)
	p.flag("RHD_REDUCED", &c.ReducedBlanking)
	p.flag("RHD_NOACCEL", &c.NoAccel)
	p.num("RHD_POLL_LIMIT", &c.PollLimit)
	p.duration("RHD_POLL_BACKOFF", &c.PollBackoff)
	p.num("RHD_RING_BUFFERS", &c.RingBuffers)
	p.num("RHD_RING_SIZE", &c.RingBufferSize)
	p.str("RHD_DUMP_DIR", &c.DumpDir)

	if p.err != nil {
		return Config{}, p.err
	}
	return c, c.check()
}

func (c Config) check() error {
	switch c.BitsPerPixel {
	case 8, 16, 32:
	default:
		return fmt.Errorf("config: RHD_BPP: unsupported depth %d", c.BitsPerPixel)
	}
	if c.RingBuffers <= 0 || c.RingBufferSize <= 0 || c.RingBufferSize%4 != 0 {
		return fmt.Errorf("config: bad ring %d×%d", c.RingBuffers, c.RingBufferSize)
	}
	return nil
}

// Poller returns how register polls wait.
func (c Config) Poller() hw.Poller {
	return hw.Poller{Limit: c.PollLimit, Backoff: c.PollBackoff}
}

// Monitor returns the monitor described by the sync ranges, or nil if no
// range is configured.
func (c Config) Monitor() *modes.Monitor {
	if len(c.HSync) == 0 && len(c.VRefresh) == 0 {
		return nil
	}
	return &modes.Monitor{
		ID:              "config",
		HSync:           c.HSync,
		VRefresh:        c.VRefresh,
		ReducedBlanking: c.ReducedBlanking,
	}
}

// parser records the first malformed variable.
type parser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *parser) get(key string) (string, bool) {
	v, ok := p.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != "" && p.err == nil
}

func (p *parser) fail(key string, err error) {
	p.err = fmt.Errorf("config: %s: %w", key, err)
}

func (p *parser) str(key string, dst *string) {
	if v, ok := p.get(key); ok {
		*dst = v
	}
}

func (p *parser) chip(key string, dst *r6xx.Chip) {
	if v, ok := p.get(key); ok {
		c, err := r6xx.ParseChip(v)
		if err != nil {
			p.fail(key, err)
			return
		}
		*dst = c
	}
}

func (p *parser) num(key string, dst *int) bool {
	v, ok := p.get(key)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, err)
		return false
	}
	*dst = n
	return true
}

func (p *parser) flag(key string, dst *bool) {
	if v, ok := p.get(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			p.fail(key, err)
			return
		}
		*dst = b
	}
}

func (p *parser) duration(key string, dst *time.Duration) {
	if v, ok := p.get(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			p.fail(key, err)
			return
		}
		*dst = d
	}
}

func (p *parser) words(key string, dst *[]string) {
	if v, ok := p.get(key); ok {
		w, err := shellwords.Split(v)
		if err != nil {
			p.fail(key, err)
			return
		}
		*dst = w
	}
}

func (p *parser) size(key string, w, h *int) {
	if v, ok := p.get(key); ok {
		if _, err := fmt.Sscanf(v, "%dx%d", w, h); err != nil {
			p.fail(key, err)
		}
	}
}

// ranges parses comma separated values or lo-hi pairs.
func (p *parser) ranges(key string, dst *[]modes.Range) {
	v, ok := p.get(key)
	if !ok {
		return
	}
	var rs []modes.Range
	for _, f := range strings.Split(v, ",") {
		lo, hi, isRange := strings.Cut(strings.TrimSpace(f), "-")
		var r modes.Range
		var err error
		if r.Lo, err = strconv.ParseFloat(strings.TrimSpace(lo), 64); err != nil {
			p.fail(key, err)
			return
		}
		r.Hi = r.Lo
		if isRange {
			if r.Hi, err = strconv.ParseFloat(strings.TrimSpace(hi), 64); err != nil {
				p.fail(key, err)
				return
			}
		}
		if r.Hi < r.Lo {
			p.fail(key, fmt.Errorf("empty range %q", f))
			return
		}
		rs = append(rs, r)
	}
	*dst = rs
}
