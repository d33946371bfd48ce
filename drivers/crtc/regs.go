package crtc

import "github.com/clktmr/radeonhd/hw"

// Display controller registers of D1. D2 is at D1 + d2Offset.
const (
	RegHTotal           hw.Reg = 0x6000
	RegHBlankStartEnd   hw.Reg = 0x6004
	RegHSyncA           hw.Reg = 0x6008
	RegHSyncACntl       hw.Reg = 0x600c
	RegVTotal           hw.Reg = 0x6020
	RegVBlankStartEnd   hw.Reg = 0x6024
	RegVSyncA           hw.Reg = 0x6028
	RegVSyncACntl       hw.Reg = 0x602c
	RegControl          hw.Reg = 0x6080
	RegInterlaceControl hw.Reg = 0x60e4

	RegGrphEnable         hw.Reg = 0x6100
	RegGrphControl        hw.Reg = 0x6104
	RegGrphPrimarySurface hw.Reg = 0x6110
	RegGrphPitch          hw.Reg = 0x6120
	RegGrphXEnd           hw.Reg = 0x6134
	RegGrphYEnd           hw.Reg = 0x6138
	RegViewportSize       hw.Reg = 0x6584

	d2Offset hw.Reg = 0x800
)

// Pixel PLL registers of P1. P2 is at P1 + p2Offset.
const (
	RegPLLRefDiv  hw.Reg = 0x0430
	RegPLLFBDiv   hw.Reg = 0x0434
	RegPLLPostDiv hw.Reg = 0x0438
	RegPLLCntl    hw.Reg = 0x0440

	p2Offset hw.Reg = 0x20
)

// CRTC_CONTROL
const (
	ControlMasterEn = 1 << 0
	ControlDispRead = 1 << 24 // display read request disable
)

// GRPH_CONTROL depth field
const (
	grphDepth8  = 0
	grphDepth16 = 1
	grphDepth32 = 2

	grphFormat565 = 1 << 8
)

// PLL_CNTL
const (
	PLLReset    = 1 << 0
	PLLSleep    = 1 << 1
	PLLLocked   = 1 << 20
	pllResetAll = PLLReset | PLLSleep
)

// Timing register fields are 13 bits wide.
const timingLimit = 0x2000
