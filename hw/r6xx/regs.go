package r6xx

import (
	"github.com/clktmr/radeonhd/hw"
	"github.com/clktmr/radeonhd/hw/cs"
)

// PM4 type-3 opcodes.
const (
	opStart3DCmdbuf  cs.Opcode = 0x24
	opContextControl cs.Opcode = 0x28
	opIndexType      cs.Opcode = 0x2a
	opDrawIndexAuto  cs.Opcode = 0x2d
	opNumInstances   cs.Opcode = 0x2f
	opSurfaceSync    cs.Opcode = 0x43
	opEventWrite     cs.Opcode = 0x46
	opSetConfigReg   cs.Opcode = 0x68
	opSetContextReg  cs.Opcode = 0x69
	opSetResource    cs.Opcode = 0x6d
	opSetSampler     cs.Opcode = 0x6e
)

// Register windows addressed by the SET_* packets.
const (
	configRegStart  hw.Reg = 0x08000
	configRegEnd    hw.Reg = 0x0ac00
	contextRegStart hw.Reg = 0x28000
	contextRegEnd   hw.Reg = 0x29000
	resourceStart   hw.Reg = 0x38000
	samplerStart    hw.Reg = 0x3c000
)

// Config registers.
const (
	RegWaitUntil           hw.Reg = 0x8040
	RegVGTCacheInvalidate  hw.Reg = 0x88c4
	RegVGTPrimitiveType    hw.Reg = 0x8958
	RegSQConfig            hw.Reg = 0x8c00
	RegSQGPRResourceMgmt1  hw.Reg = 0x8c04
	RegSQGPRResourceMgmt2  hw.Reg = 0x8c08
	RegSQThreadResourceMgt hw.Reg = 0x8c0c
	RegSQStackResourceMgt1 hw.Reg = 0x8c10
	RegSQStackResourceMgt2 hw.Reg = 0x8c14
	RegTACntlAux           hw.Reg = 0x9508
	RegDBDebug             hw.Reg = 0x9830
	RegDBWatermarks        hw.Reg = 0x9838
)

// Context registers.
const (
	RegPASCScreenScissorTL  hw.Reg = 0x28030
	RegPASCScreenScissorBR  hw.Reg = 0x28034
	RegCBColor0Base         hw.Reg = 0x28040
	RegCBColor0Size         hw.Reg = 0x28060
	RegCBColor0View         hw.Reg = 0x28080
	RegCBColor0Info         hw.Reg = 0x280a0
	RegCBColor0Tile         hw.Reg = 0x280c0
	RegCBColor0Frag         hw.Reg = 0x280e0
	RegCBColor0Mask         hw.Reg = 0x28100
	RegPASCWindowOffset     hw.Reg = 0x28200
	RegPASCWindowScissorTL  hw.Reg = 0x28204
	RegPASCWindowScissorBR  hw.Reg = 0x28208
	RegPASCClipRectRule     hw.Reg = 0x2820c
	RegCBTargetMask         hw.Reg = 0x28238
	RegCBShaderMask         hw.Reg = 0x2823c
	RegPASCGenericScissorTL hw.Reg = 0x28240
	RegPASCGenericScissorBR hw.Reg = 0x28244
	RegPASCVportScissorTL   hw.Reg = 0x28250
	RegPASCVportScissorBR   hw.Reg = 0x28254
	RegPASCVportZMin        hw.Reg = 0x282d0
	RegPASCVportZMax        hw.Reg = 0x282d4
	RegVGTMaxVtxIndx        hw.Reg = 0x28400
	RegVGTMinVtxIndx        hw.Reg = 0x28404
	RegVGTIndxOffset        hw.Reg = 0x28408
	RegSXAlphaTestControl   hw.Reg = 0x28410
	RegSPIVSOutID0          hw.Reg = 0x28614
	RegSPIPSInputCntl0      hw.Reg = 0x28644
	RegSPIVSOutConfig       hw.Reg = 0x286c4
	RegSPIPSInControl0      hw.Reg = 0x286cc
	RegSPIPSInControl1      hw.Reg = 0x286d0
	RegSPIInterpControl0    hw.Reg = 0x286d4
	RegSPIInputZ            hw.Reg = 0x286d8
	RegCBBlend0Control      hw.Reg = 0x28780
	RegCBShaderControl      hw.Reg = 0x287a0
	RegDBDepthControl       hw.Reg = 0x28800
	RegCBBlendControl       hw.Reg = 0x28804
	RegCBColorControl       hw.Reg = 0x28808
	RegDBShaderControl      hw.Reg = 0x2880c
	RegPACLClipCntl         hw.Reg = 0x28810
	RegPASUSCModeCntl       hw.Reg = 0x28814
	RegPACLVTECntl          hw.Reg = 0x28818
	RegSQPgmStartPS         hw.Reg = 0x28840
	RegSQPgmResourcesPS     hw.Reg = 0x28850
	RegSQPgmExportsPS       hw.Reg = 0x28854
	RegSQPgmStartVS         hw.Reg = 0x28858
	RegSQPgmResourcesVS     hw.Reg = 0x28868
	RegSQPgmCFOffsetPS      hw.Reg = 0x288cc
	RegSQPgmCFOffsetVS      hw.Reg = 0x288d0
	RegVGTGSMode            hw.Reg = 0x28a40
	RegPASCModeCntl         hw.Reg = 0x28a4c
	RegVGTInstanceStepRate0 hw.Reg = 0x28aa0
	RegVGTInstanceStepRate1 hw.Reg = 0x28aa4
	RegPASCLineCntl         hw.Reg = 0x28c00
	RegPASCAAConfig         hw.Reg = 0x28c04
	RegPASUVtxCntl          hw.Reg = 0x28c08
	RegCBClrCmpControl      hw.Reg = 0x28c30
	RegCBClrCmpMsk          hw.Reg = 0x28c3c
	RegPASCAAMask           hw.Reg = 0x28c48
	RegDBRenderControl      hw.Reg = 0x28d0c
	RegDBRenderOverride     hw.Reg = 0x28d10
)

// WAIT_UNTIL
const (
	wait3DIdle      = 1 << 15
	wait3DIdleClean = 1 << 17
)

// SURFACE_SYNC actions.
const (
	shActionEna = 1 << 27
	tcActionEna = 1 << 23
	vcActionEna = 1 << 24
	cbActionEna = 1 << 25
	dbActionEna = 1 << 26
)

// EVENT_WRITE event types.
const eventCacheFlushAndInv = 0x16

// Draw initiator and primitive types.
const (
	diPTRectList     = 0x11
	diSrcSelAutoIdx  = 2
	diIndexSize16Bit = 0
)

// PA_CL_VTE_CNTL, PA_CL_CLIP_CNTL, PA_SU_SC_MODE_CNTL
const (
	vtxXYFmt                = 1 << 8
	clipDisable             = 1 << 16
	faceBit                 = 1 << 2
	polyModeFrontPTypeShift = 5
	polyModeBackPTypeShift  = 8
	polyModePTypeTriangles  = 2
)

// DB_SHADER_CONTROL
const (
	zOrderShift      = 4
	dualExportEnable = 1 << 9
)

// CB_SHADER_MASK, CB_SHADER_CONTROL, CB_COLOR_CONTROL
const (
	output0EnableShift     = 0
	rt0Enable              = 1 << 0
	perMRTBlend            = 1 << 7
	targetBlendEnableShift = 8
)

// CB_BLEND_CONTROL
const (
	colorSrcBlendShift  = 0
	colorSrcBlendMask   = 0x1f << colorSrcBlendShift
	colorDestBlendShift = 8
	colorDestBlendMask  = 0x1f << colorDestBlendShift
)

// Blend factors.
const (
	blendZero             = 0
	blendOne              = 1
	blendSrcColor         = 2
	blendOneMinusSrcColor = 3
	blendSrcAlpha         = 4
	blendOneMinusSrcAlpha = 5
	blendDstAlpha         = 6
	blendOneMinusDstAlpha = 7
)

// SPI interpolator setup.
const (
	vsExportCountShift = 1
	semantic0Shift     = 0
	numInterpShift     = 0
	semanticShift      = 0
	defaultValShift    = 8
	selCentroid        = 1 << 11
)

// CB_COLOR0_INFO / SIZE / VIEW
const (
	cbFormatShift       = 2
	cbArrayModeShift    = 8
	cbCompSwapShift     = 16
	cbBlendClamp        = 1 << 20
	cbSourceFormat      = 1 << 27
	cbPitchTileMaxShift = 0
	cbSliceTileMaxShift = 10
	cbSliceMaxShift     = 13
)

// SQ_PGM_RESOURCES_*
const (
	pgmNumGPRsShift         = 0
	pgmStackSizeShift       = 8
	pgmDX10Clamp            = 1 << 21
	pgmUncachedFirstInst    = 1 << 28
	pgmClampConsts          = 1 << 26
	pgmFetchCacheLinesShift = 24
)

// Resource slots.
const (
	resourcePS = 0
	resourceVS = 160
	resourceFS = 320
)

// Texture resource and sampler fields.
const (
	texDim2D = 1

	texDimShift        = 0
	texPitchShift      = 8
	texWidthShift      = 19
	texHeightShift     = 0
	texDepthShift      = 13
	texDataFormatShift = 26

	texDstSelXShift     = 16
	texDstSelYShift     = 19
	texDstSelZShift     = 22
	texDstSelWShift     = 25
	texBaseLevelShift   = 28
	texRequestSizeShift = 23
	texLastLevelShift   = 0
	texPerfModShift     = 5
	texTypeShift        = 30

	texVtxValidTexture = 2
	texVtxValidBuffer  = 3

	vtxStrideShift     = 8
	vtxDataFormatShift = 20
	vtxMemRequestShift = 0

	samplerClampXShift  = 0
	samplerClampYShift  = 3
	samplerClampZShift  = 6
	samplerMagShift     = 9
	samplerMinShift     = 12
	samplerZFilterShift = 15
	samplerMipShift     = 17
)

// Sampler clamp and filter modes.
const (
	texWrap           = 0
	texClampLastTexel = 2

	texFilterPoint    = 0
	texFilterBilinear = 1
	texZFilterNone    = 0
)

// Color buffer formats.
const (
	colorInvalid = 0x00
	color8       = 0x01
	color565     = 0x08
	color1555    = 0x0a
	color8888    = 0x1a
)

// Texture and vertex data formats.
const (
	fmt8          = 0x01
	fmt565        = 0x08
	fmt1555       = 0x0a
	fmt8888       = 0x1a
	fmt32_32Float = 0x1e
)
