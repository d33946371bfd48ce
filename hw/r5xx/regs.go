package r5xx

import "github.com/clktmr/radeonhd/hw"

const (
	RegRBBMSoftReset        hw.Reg = 0x00f0
	RegHostPathCntl         hw.Reg = 0x0130
	RegSurfaceCntl          hw.Reg = 0x0b00
	RegRBBMStatus           hw.Reg = 0x0e40
	RegSrcPitchOffset       hw.Reg = 0x1428
	RegDstPitchOffset       hw.Reg = 0x142c
	RegDPGUIMasterCntl      hw.Reg = 0x146c
	RegDPBrushBkgdClr       hw.Reg = 0x1478
	RegDPBrushFrgdClr       hw.Reg = 0x147c
	RegDPSrcFrgdClr         hw.Reg = 0x15d8
	RegDPSrcBkgdClr         hw.Reg = 0x15dc
	RegDPDatatype           hw.Reg = 0x16c4
	RegDPWriteMask          hw.Reg = 0x16cc
	RegDefaultScBottomRight hw.Reg = 0x16e8
	RegDstPipeConfig        hw.Reg = 0x170c
	RegWaitUntil            hw.Reg = 0x1720
	RegRB2DDstCacheMode     hw.Reg = 0x3428
	RegRB2DDstCacheCtlStat  hw.Reg = 0x342c
	RegGBTileConfig         hw.Reg = 0x4018
	RegRB3DDstCacheCtlStat  hw.Reg = 0x4e4c
	RegRB3DZCacheCtlStat    hw.Reg = 0x4f18
)

// RBBM_STATUS
const (
	RBBMFIFOCntMask = 0x7f
	RBBMFIFOEmpty   = 0x40
	RBBMActive      = 1 << 31
)

// RBBM_SOFT_RESET
type SoftReset uint32

const (
	SoftResetCP SoftReset = 1 << iota
	SoftResetHI
	SoftResetSE
	SoftResetRE
	SoftResetPP
	SoftResetE2
	SoftResetRB

	softResetAll = SoftResetCP | SoftResetHI | SoftResetSE | SoftResetRE |
		SoftResetPP | SoftResetE2 | SoftResetRB
	softResetHostPath = SoftResetCP | SoftResetHI | SoftResetE2
)

// HOST_PATH_CNTL
const HDPSoftReset = 1 << 26

// RB2D_DSTCACHE_CTLSTAT
const (
	DstCacheFlushAll = 0xf
	DstCacheBusy     = 1 << 31
)

// RB2D_DSTCACHE_MODE
const (
	RB2DAutoflushEnable   = 1 << 8
	RB2DDisableIgnorePE   = 1 << 17
	rb2dDstCacheModeFlags = RB2DAutoflushEnable | RB2DDisableIgnorePE
)

// RB3D_DSTCACHE_CTLSTAT, RB3D_ZCACHE_CTLSTAT
const (
	RB3DDCFlushAll = 0xa
	RB3DZCFlushAll = 0x3
)

// WAIT_UNTIL
const (
	Wait2DIdleClean   = 1 << 16
	Wait3DIdleClean   = 1 << 17
	WaitHostIdleClean = 1 << 18
)

// GB_TILE_CONFIG, DST_PIPE_CONFIG
const (
	EnableTiling   = 1 << 0
	PipeAutoConfig = 1 << 31
)

// DP_DATATYPE
const HostBigEndianEn = 1 << 29

// SURFACE_CNTL
const (
	NonsurfAP0Swp16BPP = 1 << 20
	NonsurfAP0Swp32BPP = 1 << 21
	NonsurfAP1Swp16BPP = 1 << 22
	NonsurfAP1Swp32BPP = 1 << 23
)

// DEFAULT_SC_BOTTOM_RIGHT
const (
	DefaultScRightMax  = 0x1fff << 0
	DefaultScBottomMax = 0x1fff << 16
)

// DP_GUI_MASTER_CNTL
const (
	GMCDstPitchOffsetCntl = 1 << 1
	GMCBrushSolidColor    = 13 << 4
	GMCDstDatatypeShift   = 8
	GMCSrcDatatypeColor   = 3 << 12
	GMCROP3Shift          = 16
	GMCClrCmpCntlDis      = 1 << 28
)

// Datatype is the pixel format code of the 2D engine.
type Datatype uint8

const (
	DatatypeCI8      Datatype = 2
	DatatypeARGB1555 Datatype = 3
	DatatypeRGB565   Datatype = 4
	DatatypeARGB8888 Datatype = 6
)
