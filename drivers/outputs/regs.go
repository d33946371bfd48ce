package outputs

import "github.com/clktmr/radeonhd/hw"

// DAC A. DAC B is at DAC A + dacBOffset.
const (
	RegDACEnable       hw.Reg = 0x7800
	RegDACSourceSelect hw.Reg = 0x7804
	RegDACForceOutput  hw.Reg = 0x783c
	RegDACPowerdown    hw.Reg = 0x7850

	dacBOffset hw.Reg = 0x200
)

// DACx_POWERDOWN
const (
	DACPowerdownAll = 0x01010101
)

// TMDSA
const (
	RegTMDSCntl                hw.Reg = 0x7880
	RegTMDSSourceSelect        hw.Reg = 0x7884
	RegTMDSColorFormat         hw.Reg = 0x7888
	RegTMDSTransmitterEnable   hw.Reg = 0x7904
	RegTMDSTransmitterControl  hw.Reg = 0x7910
	RegTMDSTransmitterAdjust   hw.Reg = 0x7914
	RegTMDSMacroControl        hw.Reg = 0x7918
	RegTMDSDataSynchronization hw.Reg = 0x7920
)

// TMDSA_CNTL, TMDSA_TRANSMITTER_ENABLE, TMDSA_TRANSMITTER_CONTROL
const (
	TMDSEnable     = 1 << 0
	TMDSLinkLower  = 0x1f
	TMDSLinkUpper  = 0x3e0
	TMDSLinkAll    = TMDSLinkLower | TMDSLinkUpper
	TMDSPLLEnable  = 1 << 0
	TMDSPLLReset   = 1 << 1
	TMDSDualLink   = 1 << 24
	TMDSDataSynch  = 1 << 0
	TMDSFreqChange = 1 << 8
)

// LVTMA transmitter
const (
	RegLVTMATransmitterControl  hw.Reg = 0x7f00
	RegLVTMATransmitterEnable   hw.Reg = 0x7f04
	RegLVTMAMacroControl        hw.Reg = 0x7f0c
	RegLVTMATransmitterAdjust   hw.Reg = 0x7f18
	RegLVTMAPreemphasisControl  hw.Reg = 0x7f1c
	RegLVTMAPwrSeqCntl          hw.Reg = 0x7f80
	RegLVTMAPwrSeqState         hw.Reg = 0x7f84
	RegLVTMAPwrSeqRefDiv        hw.Reg = 0x7f88
	RegLVTMAPwrSeqDelay1        hw.Reg = 0x7f8c
	RegLVTMAPwrSeqDelay2        hw.Reg = 0x7f90
	RegLVTMABlModCntl           hw.Reg = 0x7f94
	RegLVTMADataSynchronization hw.Reg = 0x7f98
)

// LVTMA_TRANSMITTER_CONTROL
const (
	LVTMAPLLEnable   = 1 << 0
	LVTMAPLLReset    = 1 << 1
	LVTMAIDSCKSel    = 1 << 4
	LVTMABypassPLL   = 1 << 28
	LVTMAUseClkData  = 1 << 29
	LVTMAModeTMDS    = 1 << 30
	LVTMALinkAll     = 0x3ff
	LVTMADSynSel     = 1 << 0
	LVTMAPFreqChange = 1 << 8
)

// LVTMA_PWRSEQ_CNTL, LVTMA_PWRSEQ_STATE
const (
	PwrSeqEnable          = 1 << 0
	PwrSeqDisableSyncEn   = 1 << 1
	PwrSeqPLLEnableMask   = 1 << 2
	PwrSeqPLLResetMask    = 1 << 3
	PwrSeqTargetState     = 1 << 4
	PwrSeqSyncEnOverride  = 1 << 9
	PwrSeqDigOnOverride   = 1 << 17
	PwrSeqBlOnOverride    = 1 << 25
	PwrSeqStateShift      = 8
	PwrSeqPowerUpDone     = 4
	PwrSeqPowerDownDone   = 9
	pwrSeqRefDiv          = 3999 // 4000 - 1
	blModLevelShift       = 8
	blModResolutionShift  = 16
	blModEnable           = 1 << 0
	lvtmaShutdownAdjust   = 0x00e00000
	lvtmaShutdownMacroCtl = 0x07430408
)

// DIG encoders. DIG2 is at DIG1 + dig2Offset.
const (
	RegDIGCntl          hw.Reg = 0x75a0
	RegDIGClockPattern  hw.Reg = 0x75ac
	RegLVDSDataCntl     hw.Reg = 0x75bc
	RegDIGTMDSCntl      hw.Reg = 0x75c0
	RegDCCGPclkDigACntl hw.Reg = 0x04b0
	RegDCCGPclkDigBCntl hw.Reg = 0x04b4
	RegDCCGSymclkCntl   hw.Reg = 0x0490
	RegDCIOLinkSteer    hw.Reg = 0x7fa4

	dig2Offset hw.Reg = 0x400
)

// DIG_CNTL
const (
	DIGSourceSelect   = 1 << 0
	DIGEnable         = 1 << 4
	DIGModeShift      = 8
	DIGModeMask       = 0x7 << DIGModeShift
	DIGStart          = 1 << 12
	DIGDualLinkEnable = 1 << 16
	DIGSwap           = 1 << 24

	LVDS24BitEnable = 1 << 0
	LVDS24BitFormat = 1 << 4
	LinkSteerSwap   = 1 << 0
	PclkDigOn       = 1 << 0
)

// UNIPHY A. UNIPHY B is at UNIPHY A + uniphyBOffset.
const (
	RegUniphyTransmitterEnable  hw.Reg = 0x7600
	RegUniphyTransmitterControl hw.Reg = 0x7604
	RegUniphyPLLControl         hw.Reg = 0x7608

	uniphyBOffset hw.Reg = 0x400
)

// UNIPHY_TRANSMITTER_ENABLE, UNIPHY_PLL_CONTROL
const (
	UniphyLinkLower = 0x0f
	UniphyLinkUpper = 0xf0
	UniphyLinkAll   = UniphyLinkLower | UniphyLinkUpper
	UniphyPLLEnable = 1 << 0
	UniphyPLLReset  = 1 << 1
)
