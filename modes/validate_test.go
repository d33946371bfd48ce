package modes_test

//go:generate mockgen -destination mock_collaborators_test.go -package modes_test -write_package_comment=false github.com/clktmr/radeonhd/modes CRTC,PLL,Output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clktmr/radeonhd/modes"
)

type crtcBehavior struct {
	id        int
	inactive  bool
	fbValid   func(w, h, bpp, mem int) (int, modes.Status)
	modeValid func(m *modes.Mode) modes.Status
	pllValid  func(clock int) modes.Status
}

func alignedPitch(w, h, bpp, mem int) (int, modes.Status) {
	pitch := (w + 63) &^ 63
	if pitch*h*bpp/8 > mem {
		return 0, modes.StatusMemBW
	}
	return pitch, modes.StatusOK
}

// newCRTC returns a CRTC mock that accepts everything unless b says
// otherwise.
func newCRTC(ctrl *gomock.Controller, b crtcBehavior) *MockCRTC {
	if b.fbValid == nil {
		b.fbValid = alignedPitch
	}
	if b.modeValid == nil {
		b.modeValid = func(*modes.Mode) modes.Status { return modes.StatusOK }
	}
	if b.pllValid == nil {
		b.pllValid = func(int) modes.Status { return modes.StatusOK }
	}
	pll := NewMockPLL(ctrl)
	pll.EXPECT().Valid(gomock.Any()).DoAndReturn(b.pllValid).AnyTimes()

	crtc := NewMockCRTC(ctrl)
	crtc.EXPECT().ID().Return(b.id).AnyTimes()
	crtc.EXPECT().Active().Return(!b.inactive).AnyTimes()
	crtc.EXPECT().PLL().Return(pll).AnyTimes()
	crtc.EXPECT().FBValid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(b.fbValid).AnyTimes()
	crtc.EXPECT().ModeValid(gomock.Any()).DoAndReturn(b.modeValid).AnyTimes()
	return crtc
}

func newOutput(ctrl *gomock.Controller, crtc int, active bool) *MockOutput {
	o := NewMockOutput(ctrl)
	o.EXPECT().Name().Return("DVI-0").AnyTimes()
	o.EXPECT().Active().Return(active).AnyTimes()
	o.EXPECT().CRTC().Return(crtc).AnyTimes()
	return o
}

func newValidator(crtcs ...modes.CRTC) *modes.Validator {
	return &modes.Validator{
		CRTCs:        crtcs,
		BitsPerPixel: 32,
		VideoRAM:     64 << 20,
	}
}

func TestSanity(t *testing.T) {
	good := func() *modes.Mode { return modes.CVT(1024, 768, 60, false, false) }
	tests := []struct {
		name   string
		modify func(m *modes.Mode)
		want   modes.Status
	}{
		{"ok", func(m *modes.Mode) {}, modes.StatusOK},
		{"marked bad", func(m *modes.Mode) { m.Status = modes.StatusBad }, modes.StatusBad},
		{"no name", func(m *modes.Mode) { m.Name = "" }, modes.StatusError},
		{"no clock", func(m *modes.Mode) { m.Clock = 0 }, modes.StatusNoClock},
		{"hsync before display", func(m *modes.Mode) { m.HSyncStart = m.HDisplay - 1 }, modes.StatusHIllegal},
		{"hsync inverted", func(m *modes.Mode) { m.HSyncEnd = m.HSyncStart }, modes.StatusHIllegal},
		{"htotal short", func(m *modes.Mode) { m.HTotal = m.HSyncEnd }, modes.StatusHIllegal},
		{"no vdisplay", func(m *modes.Mode) { m.VDisplay = 0 }, modes.StatusVIllegal},
		{"vtotal short", func(m *modes.Mode) { m.VTotal = m.VSyncEnd }, modes.StatusVIllegal},
		{"vscan", func(m *modes.Mode) { m.VScan = 2 }, modes.StatusNoVScan},
		{"interlace", func(m *modes.Mode) { m.Flags |= modes.FlagInterlace }, modes.StatusNoInterlace},
		{"doublescan", func(m *modes.Mode) { m.Flags |= modes.FlagDblScan }, modes.StatusNoDblescan},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := good()
			tc.modify(m)
			assert.Equal(t, tc.want, modes.Sanity(m))
		})
	}
}

func TestFillOut(t *testing.T) {
	m := modes.CVT(1024, 768, 60, false, false)
	m.CrtcHTotal = m.HTotal + 16
	m.CrtcHAdjusted = true

	modes.FillOut(m)
	assert.Equal(t, m.HTotal+16, m.CrtcHTotal, "adjusted values are kept")
	assert.Equal(t, m.HDisplay, m.CrtcHDisplay)
	assert.Equal(t, m.HDisplay, m.CrtcHBlankStart)
	assert.Equal(t, m.HTotal, m.CrtcHBlankEnd)
	assert.Equal(t, m.VTotal, m.CrtcVTotal)
	assert.Equal(t, m.Clock, m.SynthClock)
	assert.Equal(t, float64(m.Clock)/float64(m.CrtcHTotal), m.HSync)
	assert.False(t, m.CrtcHAdjusted)

	assert.Equal(t, modes.StatusOK, modes.CrtcSanity(m))
	m.CrtcHBlankEnd = m.CrtcHTotal + 1
	assert.Equal(t, modes.StatusHIllegal, modes.CrtcSanity(m))
	m.CrtcHBlankEnd = m.CrtcHTotal
	m.CrtcVSyncStart = m.CrtcVDisplay - 1
	assert.Equal(t, modes.StatusVIllegal, modes.CrtcSanity(m))
	m.SynthClock = 0
	assert.Equal(t, modes.StatusNoClock, modes.CrtcSanity(m))

	bad := modes.CVT(1024, 768, 60, false, false)
	bad.Status = modes.StatusBad
	modes.FillOut(bad)
	assert.Zero(t, bad.CrtcHTotal)
}

func TestValidateIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := newValidator(newCRTC(ctrl, crtcBehavior{}))

	m := modes.CVT(1280, 1024, 60, false, false)
	require.Equal(t, modes.StatusOK, v.Validate(m))
	first := m.Copy()
	require.Equal(t, modes.StatusOK, v.Validate(m))
	assert.Equal(t, first, m)
}

func TestValidateCrtcAdjustRestarts(t *testing.T) {
	ctrl := gomock.NewController(t)
	pll := NewMockPLL(ctrl)
	crtc := NewMockCRTC(ctrl)
	crtc.EXPECT().ID().Return(0).AnyTimes()
	crtc.EXPECT().PLL().Return(pll).AnyTimes()
	crtc.EXPECT().FBValid(1024, 768, 32, 64<<20).Return(1024, modes.StatusOK).Times(2)
	gomock.InOrder(
		crtc.EXPECT().ModeValid(gomock.Any()).DoAndReturn(func(m *modes.Mode) modes.Status {
			m.CrtcHTotal += 8
			m.CrtcHBlankEnd += 8
			m.CrtcHAdjusted = true
			return modes.StatusOK
		}),
		crtc.EXPECT().ModeValid(gomock.Any()).Return(modes.StatusOK),
	)
	pll.EXPECT().Valid(gomock.Any()).Return(modes.StatusOK)

	v := newValidator(crtc)
	m := modes.CVT(1024, 768, 60, false, false)
	assert.Equal(t, modes.StatusOK, v.ValidateCrtc(crtc, m))
	assert.Equal(t, m.HTotal+8, m.CrtcHTotal)
	assert.False(t, m.CrtcHAdjusted)
}

func TestValidateCrtcRetriesExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	crtc := NewMockCRTC(ctrl)
	crtc.EXPECT().ID().Return(0).AnyTimes()
	crtc.EXPECT().FBValid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(1024, modes.StatusOK).Times(modes.DefaultRetries)
	crtc.EXPECT().ModeValid(gomock.Any()).DoAndReturn(func(m *modes.Mode) modes.Status {
		m.CrtcVAdjusted = true
		return modes.StatusOK
	}).Times(modes.DefaultRetries)

	v := newValidator(crtc)
	assert.Equal(t, modes.StatusRetriesExceeded, v.ValidateCrtc(crtc, modes.CVT(1024, 768, 60, false, false)))

	ctrl = gomock.NewController(t)
	crtc = NewMockCRTC(ctrl)
	crtc.EXPECT().FBValid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(1024, modes.StatusOK).Times(3)
	crtc.EXPECT().ModeValid(gomock.Any()).DoAndReturn(func(m *modes.Mode) modes.Status {
		m.CrtcHAdjusted = true
		return modes.StatusOK
	}).Times(3)

	v.Retries = 3
	assert.Equal(t, modes.StatusRetriesExceeded, v.ValidateCrtc(crtc, modes.CVT(1024, 768, 60, false, false)))
}

func TestValidateCrtcStopsAtFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	crtc := newCRTC(ctrl, crtcBehavior{
		pllValid: func(clock int) modes.Status {
			if clock > 100000 {
				return modes.StatusClockHigh
			}
			return modes.StatusOK
		},
	})
	v := newValidator(crtc)

	assert.Equal(t, modes.StatusClockHigh, v.ValidateCrtc(crtc, modes.CVT(1600, 1200, 75, false, false)))
	assert.Equal(t, modes.StatusOK, v.ValidateCrtc(crtc, modes.CVT(1024, 768, 60, false, false)))

	bad := modes.CVT(1024, 768, 60, false, false)
	bad.Clock = 0
	assert.Equal(t, modes.StatusNoClock, v.ValidateCrtc(crtc, bad))

	small := newValidator(crtc)
	small.VideoRAM = 1 << 20
	assert.Equal(t, modes.StatusMemBW, small.ValidateCrtc(crtc, modes.CVT(1024, 768, 60, false, false)))
}

func TestValidateCrtcOutputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	crtc := newCRTC(ctrl, crtcBehavior{id: 1})

	// An inactive output and one on the other CRTC are never asked.
	inactive := newOutput(ctrl, 1, false)
	other := newOutput(ctrl, 0, true)

	first := newOutput(ctrl, 1, true)
	second := newOutput(ctrl, 1, true)
	adjusted := false
	first.EXPECT().ModeValid(gomock.Any()).Return(modes.StatusOK).Times(2)
	second.EXPECT().ModeValid(gomock.Any()).DoAndReturn(func(m *modes.Mode) modes.Status {
		if !adjusted {
			adjusted = true
			m.CrtcVSyncStart++
			m.CrtcVSyncEnd++
			m.CrtcVAdjusted = true
		}
		return modes.StatusOK
	}).Times(2)

	v := newValidator(crtc)
	v.Outputs = []modes.Output{inactive, other, first, second}
	m := modes.CVT(1024, 768, 60, false, false)
	assert.Equal(t, modes.StatusOK, v.ValidateCrtc(crtc, m))
	assert.Equal(t, m.VSyncStart+1, m.CrtcVSyncStart)

	ctrl = gomock.NewController(t)
	crtc = newCRTC(ctrl, crtcBehavior{id: 1})
	tmds := newOutput(ctrl, 1, true)
	tmds.EXPECT().ModeValid(gomock.Any()).Return(modes.StatusClockHigh)
	v.Outputs = []modes.Output{tmds}
	assert.Equal(t, modes.StatusClockHigh, v.ValidateCrtc(crtc, modes.CVT(1024, 768, 60, false, false)))
}

func TestValidateSkipsInactiveCRTC(t *testing.T) {
	ctrl := gomock.NewController(t)
	crtc := NewMockCRTC(ctrl)
	crtc.EXPECT().Active().Return(false)

	v := newValidator(crtc)
	assert.Equal(t, modes.StatusOK, v.Validate(modes.CVT(1024, 768, 60, false, false)))
}

func TestValidateMonitor(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := newValidator(newCRTC(ctrl, crtcBehavior{}))
	v.Monitor = &modes.Monitor{
		HSync:    []modes.Range{{Lo: 30, Hi: 60}},
		VRefresh: []modes.Range{{Lo: 50, Hi: 75}},
	}

	// 1600x1200@75 runs at 94 kHz.
	assert.Equal(t, modes.StatusHSync, v.Validate(modes.CVT(1600, 1200, 75, false, false)))
	assert.Equal(t, modes.StatusVSync, v.Validate(modes.CVT(640, 480, 85, false, false)))
	assert.Equal(t, modes.StatusOK, v.Validate(modes.CVT(1024, 768, 60, false, false)))

	// 1280x1024@75 lands at about 80.3 kHz.
	v.Monitor.HSync = []modes.Range{{Lo: 30, Hi: 79.8}}
	m := modes.CVT(1280, 1024, 75, false, false)
	require.InDelta(t, 80.3, m.HSync, 0.1)
	assert.Equal(t, modes.StatusOK, v.Validate(m), "ranges are widened by the tolerance")
}

func TestValidateMonitorBlanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := newValidator(newCRTC(ctrl, crtcBehavior{}))
	v.Monitor = &modes.Monitor{}

	assert.Equal(t, modes.StatusNoReduced, v.Validate(modes.CVT(1024, 768, 60, true, false)))
	v.Monitor.ReducedBlanking = true
	assert.Equal(t, modes.StatusOK, v.Validate(modes.CVT(1024, 768, 60, true, false)))

	narrow := &modes.Mode{
		Name: "narrow", Clock: 65000,
		HDisplay: 1000, HSyncStart: 1010, HSyncEnd: 1030, HTotal: 1050,
		VDisplay: 768, VSyncStart: 771, VSyncEnd: 777, VTotal: 800,
	}
	assert.Equal(t, modes.StatusHSyncNarrow, v.Validate(narrow))
}

func TestValidateVirtualSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := newValidator(newCRTC(ctrl, crtcBehavior{}))
	v.VirtualX, v.VirtualY = 1024, 768

	assert.Equal(t, modes.StatusOK, v.Validate(modes.CVT(1024, 768, 60, false, false)))
	assert.Equal(t, modes.StatusVirtualX, v.Validate(modes.CVT(1280, 720, 60, false, false)))
	assert.Equal(t, modes.StatusVirtualY, v.Validate(modes.CVT(960, 1024, 60, false, false)))
}

func TestListValidateAndCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := newValidator(newCRTC(ctrl, crtcBehavior{
		modeValid: func(m *modes.Mode) modes.Status {
			if m.CrtcHDisplay > 1600 {
				return modes.StatusHDisplayWide
			}
			return modes.StatusOK
		},
	}))

	small := mode("small", 1024, 768, 60, modes.TypeDriver)
	wide := mode("wide", 1920, 1080, 60, modes.TypeDriver)
	l := modes.List{small, wide}

	keep := v.ListValidateAndCopy(l)
	require.Len(t, keep, 1)
	assert.NotSame(t, small, keep[0])
	assert.Equal(t, "small", keep[0].Name)
	assert.Equal(t, modes.List{small, wide}, l)
}

func TestCreateFromName(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := newValidator(newCRTC(ctrl, crtcBehavior{}))

	m := v.CreateFromName("1600x1200@75")
	require.NotNil(t, m)
	assert.Equal(t, "1600x1200@75", m.Name)
	assert.Equal(t, modes.TypeUserDef, m.Type)
	assert.Equal(t, m.HTotal, m.CrtcHTotal)

	assert.Nil(t, v.CreateFromName("bogus"))

	v.Monitor = &modes.Monitor{}
	assert.Nil(t, v.CreateFromName("1024x768@60r"), "monitor without reduced blanking")
}

func TestStatus(t *testing.T) {
	assert.NoError(t, modes.StatusOK.Err())
	assert.ErrorIs(t, modes.StatusClockHigh.Err(), modes.StatusClockHigh)
	assert.NotEmpty(t, modes.StatusRetriesExceeded.String())
	assert.NotEqual(t, modes.StatusHSync.String(), modes.StatusVSync.String())
	assert.Equal(t, modes.StatusPitch.String(), modes.StatusPitch.Error())
}
