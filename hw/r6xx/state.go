package r6xx

import (
	"github.com/clktmr/radeonhd/debug"
	"github.com/clktmr/radeonhd/hw"
	"github.com/clktmr/radeonhd/hw/cs"
)

// emitter appends PM4 state packets to a command stream.
type emitter struct {
	cs   *cs.Stream
	chip Chip
}

// reg writes v to a config or context register, picking the packet by the
// register window.
func (e *emitter) reg(r hw.Reg, vals ...uint32) {
	switch {
	case r >= contextRegStart && r < contextRegEnd:
		e.cs.Packet3(opSetContextReg, append([]uint32{uint32(r-contextRegStart) >> 2}, vals...)...)
	case r >= configRegStart && r < configRegEnd:
		e.cs.Packet3(opSetConfigReg, append([]uint32{uint32(r-configRegStart) >> 2}, vals...)...)
	default:
		debug.Assertf(false, "r6xx: register %v outside SET_* windows", r)
	}
}

func (e *emitter) start3D() {
	if e.chip < RV770 {
		e.cs.Packet3(opStart3DCmdbuf, 0)
	}
	e.cs.Packet3(opContextControl, 0x80000000, 0x80000000)
	e.wait3DIdle()
}

func (e *emitter) wait3DIdle() {
	e.reg(RegWaitUntil, wait3DIdle)
}

func (e *emitter) wait3DIdleClean() {
	e.cs.Packet3(opEventWrite, eventCacheFlushAndInv)
	e.reg(RegWaitUntil, wait3DIdle|wait3DIdleClean)
}

// surfaceSync invalidates the caches covering size bytes at base.
func (e *emitter) surfaceSync(actions, size uint32, base uint64) {
	e.cs.Packet3(opSurfaceSync, actions, size, uint32(base>>8), 10)
}

type regVal struct {
	reg hw.Reg
	val uint32
}

// defaultState resets the pipeline stages the 2D paths don't program
// explicitly.
var defaultState = []regVal{
	{RegSQConfig, 0x1b000000},
	{RegSQGPRResourceMgmt1, 0x1000 << 16},
	{RegSQGPRResourceMgmt2, 0x1000 << 16},
	{RegSQThreadResourceMgt, 0x88 << 24},
	{RegSQStackResourceMgt1, 0x10 << 16},
	{RegSQStackResourceMgt2, 0x10 << 16},
	{RegTACntlAux, 0},
	{RegDBDebug, 0},
	{RegDBWatermarks, 4<<0 | 4<<5 | 4<<15 | 4<<20},
	{RegVGTCacheInvalidate, 0},
	{RegVGTGSMode, 0},
	{RegSXAlphaTestControl, 0},
	{RegDBDepthControl, 0},
	{RegDBRenderControl, 0},
	{RegDBRenderOverride, 0},
	{RegCBTargetMask, 0xf},
	{RegCBClrCmpControl, 0x01000000},
	{RegCBClrCmpMsk, 0xffffffff},
	{RegPASCScreenScissorTL, 0},
	{RegPASCScreenScissorBR, 8192<<16 | 8192},
	{RegPASCWindowOffset, 0},
	{RegPASCWindowScissorTL, 1 << 31},
	{RegPASCWindowScissorBR, 8192<<16 | 8192},
	{RegPASCClipRectRule, 0xffff},
	{RegPASCGenericScissorTL, 1 << 31},
	{RegPASCGenericScissorBR, 8192<<16 | 8192},
	{RegPASCVportScissorTL, 1 << 31},
	{RegPASCVportScissorBR, 8192<<16 | 8192},
	{RegPASCVportZMin, 0},
	{RegPASCVportZMax, 0x3f800000},
	{RegPASCModeCntl, 0},
	{RegPASCLineCntl, 0},
	{RegPASCAAConfig, 0},
	{RegPASCAAMask, 0xffffffff},
	{RegPASUVtxCntl, 1},
	{RegSPIInputZ, 0},
}

func (e *emitter) defaultState() {
	for _, rv := range defaultState {
		e.reg(rv.reg, rv.val)
	}
}

// renderTarget describes color buffer 0.
type renderTarget struct {
	Pitch  int // pixels
	Height int
	Base   uint32
	Format uint32
}

func (e *emitter) renderTarget(rt renderTarget) {
	slice := rt.Pitch*rt.Height/64 - 1
	e.reg(RegCBColor0Base, rt.Base>>8)
	e.reg(RegCBColor0Size, uint32(rt.Pitch/8-1)<<cbPitchTileMaxShift|
		uint32(slice)<<cbSliceTileMaxShift)
	e.reg(RegCBColor0View, 0)
	e.reg(RegCBColor0Info, rt.Format<<cbFormatShift|cbBlendClamp|cbSourceFormat)
	e.reg(RegCBColor0Tile, 0)
	e.reg(RegCBColor0Frag, 0)
	e.reg(RegCBColor0Mask, 0)
}

type shaderConfig struct {
	Addr              uint64
	GPRs              int
	StackSize         int
	UncachedFirstInst bool
	ClampConsts       bool
	ExportMode        uint32
}

func (sc shaderConfig) resources() uint32 {
	r := uint32(sc.GPRs)<<pgmNumGPRsShift | uint32(sc.StackSize)<<pgmStackSizeShift
	if sc.UncachedFirstInst {
		r |= pgmUncachedFirstInst
	}
	if sc.ClampConsts {
		r |= pgmClampConsts
	}
	return r
}

func (e *emitter) vsSetup(sc shaderConfig) {
	e.surfaceSync(shActionEna, 512, sc.Addr)
	e.reg(RegSQPgmStartVS, uint32(sc.Addr>>8))
	e.reg(RegSQPgmResourcesVS, sc.resources())
	e.reg(RegSQPgmCFOffsetVS, 0)
}

func (e *emitter) psSetup(sc shaderConfig) {
	e.surfaceSync(shActionEna, 512, sc.Addr)
	e.reg(RegSQPgmStartPS, uint32(sc.Addr>>8))
	e.reg(RegSQPgmResourcesPS, sc.resources())
	e.reg(RegSQPgmExportsPS, sc.ExportMode)
	e.reg(RegSQPgmCFOffsetPS, 0)
}

type vtxResource struct {
	ID         uint32
	SizeDW     int
	NumEntries int
	Addr       uint64
}

func (e *emitter) vtxResource(vr vtxResource) {
	e.surfaceSync(vcActionEna, uint32(vr.NumEntries*4), vr.Addr)
	e.cs.Packet3(opSetResource, vr.ID*7,
		uint32(vr.Addr),
		uint32(vr.NumEntries*4-1),
		uint32(vr.Addr>>32)&0xff|uint32(vr.SizeDW*4)<<vtxStrideShift|
			fmt32_32Float<<vtxDataFormatShift,
		1<<vtxMemRequestShift,
		0,
		0,
		texVtxValidBuffer<<texTypeShift,
	)
}

type texResource struct {
	ID            uint32
	Width, Height int
	Pitch         int // pixels
	Base          uint32
	Format        uint32
	Swizzle       [4]Sel
}

func (e *emitter) texResource(tr texResource) {
	e.cs.Packet3(opSetResource, tr.ID*7,
		texDim2D<<texDimShift|uint32(tr.Pitch/8-1)<<texPitchShift|
			uint32(tr.Width-1)<<texWidthShift,
		uint32(tr.Height-1)<<texHeightShift|tr.Format<<texDataFormatShift,
		tr.Base>>8,
		tr.Base>>8,
		uint32(tr.Swizzle[0])<<texDstSelXShift|uint32(tr.Swizzle[1])<<texDstSelYShift|
			uint32(tr.Swizzle[2])<<texDstSelZShift|uint32(tr.Swizzle[3])<<texDstSelWShift|
			1<<texRequestSizeShift,
		0,
		texVtxValidTexture<<texTypeShift,
	)
}

type texSampler struct {
	ID       uint32
	Bilinear bool
}

func (e *emitter) texSampler(ts texSampler) {
	filter := uint32(texFilterPoint)
	if ts.Bilinear {
		filter = texFilterBilinear
	}
	e.cs.Packet3(opSetSampler, ts.ID*3,
		texClampLastTexel<<samplerClampXShift|texClampLastTexel<<samplerClampYShift|
			texWrap<<samplerClampZShift|filter<<samplerMagShift|filter<<samplerMinShift|
			texZFilterNone<<samplerZFilterShift,
		0,
		0,
	)
}

// draw submits numIndices auto-indexed vertices as a rectangle list.
func (e *emitter) draw(numIndices int) {
	e.reg(RegVGTInstanceStepRate0, 0)
	e.reg(RegVGTInstanceStepRate1, 0)
	e.reg(RegVGTMaxVtxIndx, uint32(numIndices))
	e.reg(RegVGTMinVtxIndx, 0)
	e.reg(RegVGTIndxOffset, 0)
	e.reg(RegVGTPrimitiveType, diPTRectList)
	e.cs.Packet3(opIndexType, diIndexSize16Bit)
	e.cs.Packet3(opNumInstances, 1)
	e.cs.Packet3(opDrawIndexAuto, uint32(numIndices), diSrcSelAutoIdx)
}

// begin3D opens the pipeline and resets its state.
func (e *emitter) begin3D() {
	e.start3D()
	e.surfaceSync(cbActionEna|dbActionEna|tcActionEna|vcActionEna|shActionEna, 0xffffffff, 0)
	e.defaultState()
}

// noClip passes screen coordinates through unclipped.
func (e *emitter) noClip() {
	e.reg(RegPACLVTECntl, vtxXYFmt)
	e.reg(RegPACLClipCntl, clipDisable)
}

func (e *emitter) rasterizer() {
	e.reg(RegPASUSCModeCntl, faceBit|
		polyModePTypeTriangles<<polyModeFrontPTypeShift|
		polyModePTypeTriangles<<polyModeBackPTypeShift)
	e.reg(RegDBShaderControl, 1<<zOrderShift|dualExportEnable)
}

// interpolators routes parameter 0 of the vertex shader to the first inputs
// pixel shader GPRs.
func (e *emitter) interpolators(defaultVal uint32, inputs int) {
	e.reg(RegSPIVSOutConfig, 0<<vsExportCountShift)
	e.reg(RegSPIVSOutID0, 0<<semantic0Shift)
	e.reg(RegSPIPSInControl0, 1<<numInterpShift)
	e.reg(RegSPIPSInControl1, 0)
	for i := range inputs {
		e.reg(RegSPIPSInputCntl0+hw.Reg(i*4),
			uint32(i)<<semanticShift|defaultVal<<defaultValShift|selCentroid)
	}
	e.reg(RegSPIInterpControl0, 0)
}

// planeMask converts a bit plane mask into per-channel write enables.
func planeMask(pm uint32) uint32 {
	var mask uint32
	for i := range 4 {
		if pm&(0xff<<(i*8)) != 0 {
			mask |= 1 << i
		}
	}
	return mask
}

// colorFormat returns the color buffer format used for a depth.
func colorFormat(bpp int) uint32 {
	switch bpp {
	case 8:
		return color8
	case 16:
		return color565
	}
	return color8888
}
