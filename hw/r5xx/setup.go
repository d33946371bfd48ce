package r5xx

import "github.com/clktmr/radeonhd/hw"

// Reset soft resets all blocks of the 2D engine. The host data path is reset
// through HOST_PATH_CNTL, since resetting it through RBBM_SOFT_RESET is
// unreliable on some boards.
func (e *Engine) Reset() {
	save := e.regs.Read(RegRBBMSoftReset)
	tmp := save | uint32(softResetAll)
	e.regs.Write(RegRBBMSoftReset, tmp)
	e.regs.Read(RegRBBMSoftReset)
	tmp &^= uint32(softResetAll)
	e.regs.Write(RegRBBMSoftReset, tmp)
	e.regs.Read(RegRBBMSoftReset)
	e.regs.Write(RegRBBMSoftReset, save)
	e.regs.Read(RegRBBMSoftReset)

	e.Flush2D()

	save = e.regs.Read(RegHostPathCntl)
	hw.Mask(e.regs, RegRBBMSoftReset, uint32(softResetHostPath), uint32(softResetHostPath))
	e.regs.Read(RegRBBMSoftReset)
	e.regs.Write(RegRBBMSoftReset, 0)

	hw.Mask(e.regs, RegRB2DDstCacheMode, rb2dDstCacheModeFlags, rb2dDstCacheModeFlags)

	e.regs.Write(RegHostPathCntl, save|HDPSoftReset)
	e.regs.Read(RegHostPathCntl)
	e.regs.Write(RegHostPathCntl, save)
}

// Datatype returns the engine's pixel format for the configured depth.
func (e *Engine) Datatype() Datatype {
	switch e.cfg.Depth {
	case 8:
		return DatatypeCI8
	case 15:
		return DatatypeARGB1555
	case 16:
		return DatatypeRGB565
	case 24, 32:
		return DatatypeARGB8888
	}
	e.log.Error("r5xx: unhandled pixel depth", "depth", e.cfg.Depth)
	return DatatypeARGB8888
}

// Setup programs the engine defaults: scanout pitch and offset, host byte
// swapping, scissor, datatype and default colors. It never resets the
// engine, a stuck FIFO is only logged.
func (e *Engine) Setup() {
	pitchOffset := uint32(e.cfg.DisplayWidth*(e.cfg.BitsPerPixel/8)/64)<<22 |
		e.cfg.FBOffset>>10

	e.fifoWait(2)
	e.regs.Write(RegDstPitchOffset, pitchOffset)
	e.regs.Write(RegSrcPitchOffset, pitchOffset)

	e.fifoWait(2)
	if e.cfg.BigEndian {
		hw.Mask(e.regs, RegDPDatatype, HostBigEndianEn, HostBigEndianEn)
		switch e.cfg.BitsPerPixel {
		case 8:
			e.regs.Write(RegSurfaceCntl, 0)
		case 16:
			e.regs.Write(RegSurfaceCntl, NonsurfAP0Swp16BPP|NonsurfAP1Swp16BPP)
		case 32:
			e.regs.Write(RegSurfaceCntl, NonsurfAP0Swp32BPP|NonsurfAP1Swp32BPP)
		}
	} else {
		hw.Mask(e.regs, RegDPDatatype, 0, HostBigEndianEn)
		e.regs.Write(RegSurfaceCntl, 0)
	}

	e.fifoWait(1)
	e.regs.Write(RegDefaultScBottomRight, DefaultScRightMax|DefaultScBottomMax)

	e.fifoWait(1)
	e.regs.Write(RegDPGUIMasterCntl, uint32(e.Datatype())<<GMCDstDatatypeShift|
		GMCClrCmpCntlDis|GMCDstPitchOffsetCntl|GMCBrushSolidColor|GMCSrcDatatypeColor)

	e.fifoWait(5)
	e.regs.Write(RegDPBrushFrgdClr, 0xffffffff)
	e.regs.Write(RegDPBrushBkgdClr, 0x00000000)
	e.regs.Write(RegDPSrcFrgdClr, 0xffffffff)
	e.regs.Write(RegDPSrcBkgdClr, 0x00000000)
	e.regs.Write(RegDPWriteMask, 0xffffffff)

	e.idle()
}

// ResetFull is the recovery path after a timeout: reset the engine, restore
// its defaults and drop everything queued on the command stream.
func (e *Engine) ResetFull() {
	e.resets++
	e.log.Error("r5xx: full engine reset", "count", e.resets)

	e.Reset()
	e.Setup()
	e.cs.Reset()
}

// Start brings up the 2D engine.
func (e *Engine) Start() {
	hw.Mask(e.regs, RegGBTileConfig, 0, EnableTiling)
	e.regs.Write(RegWaitUntil, Wait2DIdleClean|Wait3DIdleClean)
	hw.Mask(e.regs, RegDstPipeConfig, PipeAutoConfig, PipeAutoConfig)
	hw.Mask(e.regs, RegRB2DDstCacheMode, rb2dDstCacheModeFlags, rb2dDstCacheModeFlags)

	e.Reset()
	e.Setup()
}
