package outputs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clktmr/radeonhd/drivers/crtc"
	"github.com/clktmr/radeonhd/drivers/outputs"
	"github.com/clktmr/radeonhd/hw"
	"github.com/clktmr/radeonhd/hw/hwtest"
	"github.com/clktmr/radeonhd/modes"
)

func cvt(w, h int, refresh float64, reduced, interlaced bool) *modes.Mode {
	m := modes.CVT(w, h, refresh, reduced, interlaced)
	modes.FillOut(m)
	return m
}

func TestModeValid(t *testing.T) {
	regs := hwtest.New()
	dac := outputs.NewDAC(0, regs, nil)
	tmds := outputs.NewTMDS(regs, nil)
	lvds := outputs.NewLVDS(outputs.Panel{}, regs, nil)
	single := outputs.NewUniphy(0, 0, outputs.ConnectorDVISingle, regs, nil)
	dual := outputs.NewUniphy(1, 1, outputs.ConnectorDVI, regs, nil)

	low := &modes.Mode{Clock: 18000, SynthClock: 18000}
	vga := cvt(640, 480, 60, false, false)         // 23.75MHz
	xga := cvt(1024, 768, 60, false, false)        // 63.5MHz
	wuxga := cvt(1920, 1200, 60, false, false)     // 193.25MHz
	wuxgaRB := cvt(1920, 1200, 60, true, false)    // 154MHz
	qxga := cvt(2560, 1600, 60, false, false)      // 348.5MHz
	interlaced := cvt(1920, 1080, 60, false, true) // 180.25MHz
	huge := &modes.Mode{Clock: 410000, SynthClock: 410000}

	tests := []struct {
		out    outputs.Output
		m      *modes.Mode
		status modes.Status
	}{
		{dac, low, modes.StatusClockLow},
		{dac, vga, modes.StatusOK},
		{dac, interlaced, modes.StatusOK},
		{dac, huge, modes.StatusClockHigh},

		{tmds, xga, modes.StatusOK},
		{tmds, wuxgaRB, modes.StatusOK},
		{tmds, wuxga, modes.StatusClockHigh},
		{tmds, interlaced, modes.StatusNoInterlace},

		{lvds, wuxga, modes.StatusOK},
		{lvds, interlaced, modes.StatusNoInterlace},

		{single, vga, modes.StatusClockLow},
		{single, xga, modes.StatusOK},
		{single, wuxga, modes.StatusClockHigh},
		{single, interlaced, modes.StatusNoInterlace},
		{dual, wuxga, modes.StatusOK},
		{dual, qxga, modes.StatusClockHigh},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.status, tc.out.ModeValid(tc.m), "%s %dkHz", tc.out.Name(), tc.m.Clock)
	}
}

func TestNames(t *testing.T) {
	regs := hwtest.New()
	assert.Equal(t, "DAC A", outputs.NewDAC(0, regs, nil).Name())
	assert.Equal(t, "DAC B", outputs.NewDAC(1, regs, nil).Name())
	assert.Equal(t, "TMDS A", outputs.NewTMDS(regs, nil).Name())
	assert.Equal(t, "UNIPHY B", outputs.NewUniphy(1, 0, outputs.ConnectorDVI, regs, nil).Name())
	assert.Equal(t, "on", outputs.PowerOn.String())
	assert.Equal(t, "shutdown", outputs.PowerShutdown.String())
}

func TestAttach(t *testing.T) {
	d := outputs.NewDAC(1, hwtest.New(), nil)
	assert.False(t, d.Active())
	d.Attach(1)
	assert.True(t, d.Active())
	assert.Equal(t, 1, d.CRTC())
	d.Detach()
	assert.False(t, d.Active())
}

func TestDAC(t *testing.T) {
	regs := hwtest.New()
	d := outputs.NewDAC(1, regs, nil)
	d.Attach(1)
	d.SetMode(cvt(1024, 768, 60, false, false))

	const off = 0x200
	assert.Equal(t, uint32(1), regs.Get(outputs.RegDACSourceSelect+off))
	assert.Zero(t, regs.Get(outputs.RegDACSourceSelect), "DAC A untouched")

	d.Power(outputs.PowerOn)
	assert.Equal(t, uint32(1), regs.Get(outputs.RegDACEnable+off))
	assert.Zero(t, regs.Get(outputs.RegDACPowerdown+off))

	d.Power(outputs.PowerReset)
	assert.Equal(t, uint32(1), regs.Get(outputs.RegDACEnable+off))
	assert.Equal(t, uint32(outputs.DACPowerdownAll), regs.Get(outputs.RegDACPowerdown+off))

	d.Power(outputs.PowerShutdown)
	assert.Zero(t, regs.Get(outputs.RegDACEnable+off))
}

func TestSaveRestore(t *testing.T) {
	regs := hwtest.New()
	d := outputs.NewDAC(0, regs, nil)

	regs.ClearTrace()
	d.Restore()
	assert.Empty(t, regs.Trace, "restore before save writes nothing")

	regs.Set(outputs.RegDACSourceSelect, 1)
	regs.Set(outputs.RegDACPowerdown, outputs.DACPowerdownAll)
	d.Save()
	d.Attach(0)
	d.SetMode(cvt(800, 600, 60, false, false))
	d.Power(outputs.PowerOn)
	require.Zero(t, regs.Get(outputs.RegDACSourceSelect))

	d.Restore()
	assert.Equal(t, uint32(1), regs.Get(outputs.RegDACSourceSelect))
	assert.Equal(t, uint32(outputs.DACPowerdownAll), regs.Get(outputs.RegDACPowerdown))
	assert.Zero(t, regs.Get(outputs.RegDACEnable))
}

func TestTMDSPower(t *testing.T) {
	regs := hwtest.New()
	tm := outputs.NewTMDS(regs, nil)
	tm.Attach(1)
	tm.SetMode(cvt(1280, 1024, 60, false, false))
	assert.Equal(t, uint32(1), regs.Get(outputs.RegTMDSSourceSelect))
	assert.Equal(t, uint32(outputs.TMDSEnable), regs.Get(outputs.RegTMDSCntl))

	tm.Power(outputs.PowerOn)
	assert.Equal(t, []uint32{
		outputs.TMDSPLLEnable,
		outputs.TMDSPLLEnable | outputs.TMDSPLLReset,
		outputs.TMDSPLLEnable,
	}, regs.Writes(outputs.RegTMDSTransmitterControl))
	assert.Equal(t, uint32(outputs.TMDSLinkLower), regs.Get(outputs.RegTMDSTransmitterEnable))

	tm.Power(outputs.PowerShutdown)
	assert.Zero(t, regs.Get(outputs.RegTMDSTransmitterEnable))
	assert.Zero(t, regs.Get(outputs.RegTMDSTransmitterControl))
	assert.Zero(t, regs.Get(outputs.RegTMDSCntl)&outputs.TMDSEnable)
}

func newLVDS(p outputs.Panel) (*outputs.LVDS, *hwtest.Regs) {
	regs := hwtest.New()
	l := outputs.NewLVDS(p, regs, nil)
	l.Attach(0)
	return l, regs
}

// sequencer models the panel power sequencer: it reaches the target state
// within a few reads.
func sequencer(regs *hwtest.Regs, reads int) {
	n := 0
	regs.OnRead(outputs.RegLVTMAPwrSeqState, func(uint32) uint32 {
		n++
		if n < reads {
			return 6 << outputs.PwrSeqStateShift // in transition
		}
		if regs.Get(outputs.RegLVTMAPwrSeqCntl)&outputs.PwrSeqTargetState != 0 {
			return outputs.PwrSeqPowerUpDone << outputs.PwrSeqStateShift
		}
		return outputs.PwrSeqPowerDownDone << outputs.PwrSeqStateShift
	})
}

func TestLVDSSetMode(t *testing.T) {
	l, regs := newLVDS(outputs.Panel{DualLink: true, Bit24: true, FPDI: true})
	regs.Set(outputs.RegLVTMATransmitterControl, outputs.LVTMAUseClkData)
	l.SetMode(cvt(1280, 800, 60, true, false))

	ctl := regs.Get(outputs.RegLVTMATransmitterControl)
	assert.Zero(t, ctl&outputs.LVTMAUseClkData)
	assert.NotZero(t, ctl&outputs.LVTMAIDSCKSel)
	assert.Equal(t, uint32(outputs.PwrSeqEnable|outputs.PwrSeqPLLEnableMask|outputs.PwrSeqPLLResetMask),
		regs.Get(outputs.RegLVTMAPwrSeqCntl))

	assert.Equal(t, uint32(0x0063), regs.Get(outputs.RegDIGClockPattern))
	assert.Equal(t, uint32(outputs.LVDS24BitEnable|outputs.LVDS24BitFormat), regs.Get(outputs.RegLVDSDataCntl))
	assert.Equal(t, uint32(1<<outputs.DIGModeShift|outputs.DIGStart|outputs.DIGDualLinkEnable),
		regs.Get(outputs.RegDIGCntl))
}

func TestLVDSPowerOn(t *testing.T) {
	tests := []struct {
		panel outputs.Panel
		links uint32
	}{
		{outputs.Panel{DualLink: true, Bit24: true}, 0x3ff},
		{outputs.Panel{DualLink: true}, 0x1ef},
		{outputs.Panel{Bit24: true}, 0x1f},
		{outputs.Panel{}, 0x0f},
	}
	for _, tc := range tests {
		l, regs := newLVDS(tc.panel)
		sequencer(regs, 1)
		l.Power(outputs.PowerOn)
		assert.Equal(t, tc.links, regs.Get(outputs.RegLVTMATransmitterEnable), "%+v", tc.panel)
	}

	l, regs := newLVDS(outputs.Panel{PowerDigToDE: 20, PowerDEToBL: 40, OffDelay: 100})
	sequencer(regs, 3)
	l.Power(outputs.PowerOn)

	assert.Equal(t, uint32(50<<24|100<<16|100<<8|50), regs.Get(outputs.RegLVTMAPwrSeqDelay1))
	assert.Equal(t, uint32(25), regs.Get(outputs.RegLVTMAPwrSeqDelay2))
	assert.Equal(t, uint32(3999), regs.Get(outputs.RegLVTMAPwrSeqRefDiv)&0xffff)
	assert.Equal(t, 3, regs.Reads(outputs.RegLVTMAPwrSeqState))

	cntl := regs.Get(outputs.RegLVTMAPwrSeqCntl)
	assert.NotZero(t, cntl&outputs.PwrSeqTargetState)
	assert.Zero(t, cntl&(outputs.PwrSeqDisableSyncEn|outputs.PwrSeqSyncEnOverride))
	assert.Zero(t, regs.Get(outputs.RegLVTMATransmitterControl)&outputs.LVTMAModeTMDS)

	assert.NotZero(t, regs.Get(outputs.RegDIGCntl)&outputs.DIGEnable)
	assert.Equal(t, uint32(outputs.PclkDigOn), regs.Get(outputs.RegDCCGPclkDigACntl))
}

func TestLVDSPowerDown(t *testing.T) {
	l, regs := newLVDS(outputs.Panel{})
	sequencer(regs, 1)
	l.Power(outputs.PowerOn)
	regs.Set(outputs.RegLVTMAPwrSeqCntl, regs.Get(outputs.RegLVTMAPwrSeqCntl)|
		outputs.PwrSeqDigOnOverride|outputs.PwrSeqBlOnOverride)

	l.Power(outputs.PowerReset)
	cntl := regs.Get(outputs.RegLVTMAPwrSeqCntl)
	assert.Zero(t, cntl&(outputs.PwrSeqTargetState|outputs.PwrSeqDigOnOverride|outputs.PwrSeqBlOnOverride))
	assert.Zero(t, regs.Get(outputs.RegDIGCntl)&(outputs.DIGEnable|outputs.DIGStart))
	assert.Zero(t, regs.Get(outputs.RegDCCGPclkDigACntl))

	l.Power(outputs.PowerShutdown)
	assert.Equal(t, uint32(0x00e00000), regs.Get(outputs.RegLVTMATransmitterAdjust))
	assert.Equal(t, uint32(0x07430408), regs.Get(outputs.RegLVTMAMacroControl))
}

func TestLVDSSequencerTimeout(t *testing.T) {
	l, regs := newLVDS(outputs.Panel{})
	l.Poll = hw.Poller{Limit: 5}
	regs.Set(outputs.RegLVTMAPwrSeqState, 6<<outputs.PwrSeqStateShift)

	l.Power(outputs.PowerOn)
	assert.GreaterOrEqual(t, regs.Reads(outputs.RegLVTMAPwrSeqState), 5)
	assert.NotZero(t, regs.Get(outputs.RegLVTMAPwrSeqCntl)&outputs.PwrSeqTargetState,
		"target state is set even when the sequencer hangs")
}

func TestLVDSBacklight(t *testing.T) {
	l, regs := newLVDS(outputs.Panel{})
	assert.Equal(t, -1, l.Backlight())

	l.SetBacklight(0x80)
	assert.Equal(t, 0x80, l.Backlight())
	assert.Equal(t, uint32(0xff<<16|0x80<<8|1), regs.Get(outputs.RegLVTMABlModCntl))
	assert.Equal(t, uint32(0x144<<16), regs.Get(outputs.RegLVTMAPwrSeqRefDiv))

	l.SetBacklight(300)
	assert.Equal(t, 0xff, l.Backlight())
}

func TestLVDSSaveRestore(t *testing.T) {
	l, regs := newLVDS(outputs.Panel{})
	regs.Set(outputs.RegLVTMATransmitterControl, 0x10000001)
	regs.Set(outputs.RegLVTMAPwrSeqDelay1, 0x12345678)
	regs.Set(outputs.RegDIGCntl, 0x1011)
	l.Save()

	sequencer(regs, 1)
	l.Power(outputs.PowerShutdown)
	regs.Set(outputs.RegLVTMAPwrSeqDelay1, 0)
	regs.Set(outputs.RegDIGCntl, 0)

	regs.ClearTrace()
	l.Restore()
	ctl := regs.Writes(outputs.RegLVTMATransmitterControl)
	require.GreaterOrEqual(t, len(ctl), 3)
	assert.Equal(t, []uint32{0x10000001, 0x10000001 | outputs.LVTMAPLLReset, 0x10000001}, ctl[:3])
	assert.Equal(t, uint32(0x12345678), regs.Get(outputs.RegLVTMAPwrSeqDelay1))
	assert.Equal(t, uint32(0x1011), regs.Get(outputs.RegDIGCntl))
}

func TestUniphySetMode(t *testing.T) {
	regs := hwtest.New()
	u := outputs.NewUniphy(1, 1, outputs.ConnectorDVI, regs, nil)
	u.Attach(1)

	u.SetMode(cvt(1920, 1200, 60, false, false))
	assert.True(t, u.DualLink())
	cntl := regs.Get(outputs.RegDIGCntl + 0x400)
	assert.Equal(t, uint32(2<<outputs.DIGModeShift|outputs.DIGStart|outputs.DIGDualLinkEnable|outputs.DIGSwap|1), cntl)
	assert.Equal(t, uint32(0x001f), regs.Get(outputs.RegDIGClockPattern+0x400))
	assert.Zero(t, regs.Get(outputs.RegDCIOLinkSteer))

	u.SetMode(cvt(1280, 1024, 60, false, false))
	assert.False(t, u.DualLink())
	assert.Zero(t, regs.Get(outputs.RegDIGCntl+0x400)&(outputs.DIGDualLinkEnable|outputs.DIGSwap))

	u = outputs.NewUniphy(1, 0, outputs.ConnectorDVISingle, regs, nil)
	u.SetMode(cvt(1280, 1024, 60, false, false))
	assert.Equal(t, uint32(outputs.LinkSteerSwap), regs.Get(outputs.RegDCIOLinkSteer))
}

func TestUniphyPower(t *testing.T) {
	regs := hwtest.New()
	u := outputs.NewUniphy(0, 0, outputs.ConnectorDVI, regs, nil)
	u.Attach(0)
	u.SetMode(cvt(1920, 1200, 60, false, false))

	u.Power(outputs.PowerOn)
	assert.Equal(t, uint32(outputs.UniphyLinkAll), regs.Get(outputs.RegUniphyTransmitterEnable))
	assert.Equal(t, []uint32{
		outputs.UniphyPLLEnable,
		outputs.UniphyPLLEnable | outputs.UniphyPLLReset,
		outputs.UniphyPLLEnable,
	}, regs.Writes(outputs.RegUniphyPLLControl))
	assert.NotZero(t, regs.Get(outputs.RegDIGCntl)&outputs.DIGEnable)

	u.Power(outputs.PowerReset)
	assert.Zero(t, regs.Get(outputs.RegUniphyTransmitterEnable))
	assert.Equal(t, uint32(outputs.UniphyPLLEnable), regs.Get(outputs.RegUniphyPLLControl))

	u.Power(outputs.PowerShutdown)
	assert.Zero(t, regs.Get(outputs.RegUniphyPLLControl))
	assert.Zero(t, regs.Get(outputs.RegDCCGPclkDigACntl))
}

func TestUniphySaveRestore(t *testing.T) {
	regs := hwtest.New()
	u := outputs.NewUniphy(0, 1, outputs.ConnectorDVI, regs, nil)
	u.Restore() // nothing stored, logged only

	regs.Set(outputs.RegUniphyTransmitterEnable, 0x0f)
	regs.Set(outputs.RegDIGCntl+0x400, 0x1210)
	u.Save()
	u.Power(outputs.PowerShutdown)
	require.Zero(t, regs.Get(outputs.RegUniphyTransmitterEnable))

	u.Restore()
	assert.Equal(t, uint32(0x0f), regs.Get(outputs.RegUniphyTransmitterEnable))
	assert.Equal(t, uint32(0x1210), regs.Get(outputs.RegDIGCntl+0x400))
}

func TestValidatorIntegration(t *testing.T) {
	regs := hwtest.New()
	d1 := crtc.New(0, regs, crtc.NewPLL(0, regs, nil), nil)
	d1.Enabled = true

	tmds := outputs.NewTMDS(regs, nil)
	tmds.Attach(0)
	dac := outputs.NewDAC(0, regs, nil)
	dac.Attach(0)

	v := &modes.Validator{
		CRTCs:        []modes.CRTC{d1},
		Outputs:      []modes.Output{dac, tmds},
		BitsPerPixel: 32,
		VideoRAM:     64 << 20,
	}
	assert.Equal(t, modes.StatusOK, v.Validate(modes.CVT(1280, 1024, 60, false, false)))
	assert.Equal(t, modes.StatusClockHigh, v.Validate(modes.CVT(1920, 1200, 60, false, false)))
	assert.Equal(t, modes.StatusOK, v.Validate(modes.CVT(1920, 1200, 60, true, false)))

	tmds.Detach()
	assert.Equal(t, modes.StatusOK, v.Validate(modes.CVT(1920, 1200, 60, false, false)))
}
