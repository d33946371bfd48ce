package outputs

import (
	"log/slog"

	"github.com/clktmr/radeonhd/hw"
)

type encoderMode uint32

const (
	encoderDisplayPort encoderMode = iota
	encoderLVDS
	encoderTMDSDVI
	encoderTMDSHDMI
)

// dig is a DIG encoder feeding a transmitter. Outputs built on it embed it
// and drive their transmitter themselves.
type dig struct {
	base
	encoder  int // 0 for DIG1, 1 for DIG2
	mode     encoderMode
	dualLink bool

	// LVDS panel format
	lvds24Bit bool
	fpdi      bool

	encSaved bank
}

func newDIG(name string, encoder int, mode encoderMode, regs hw.Registers, log *slog.Logger) dig {
	d := dig{base: newBase(name, regs, log), encoder: encoder, mode: mode}
	off := d.off()
	d.encSaved.regs = []hw.Reg{
		off + RegDIGClockPattern, off + RegLVDSDataCntl, off + RegDIGTMDSCntl,
		RegDCIOLinkSteer, d.pclkReg(), RegDCCGSymclkCntl, off + RegDIGCntl,
	}
	return d
}

func (d *dig) off() hw.Reg { return hw.Reg(d.encoder) * dig2Offset }

func (d *dig) pclkReg() hw.Reg {
	if d.encoder != 0 {
		return RegDCCGPclkDigBCntl
	}
	return RegDCCGPclkDigACntl
}

// encoderSet programs the encoder for the current mode and starts it on the
// attached CRTC.
func (d *dig) encoderSet() {
	off := d.off()
	if d.mode == encoderLVDS {
		d.mask(off+RegDIGClockPattern, 0x0063, 0xffff)
		var v uint32
		if d.lvds24Bit {
			v |= LVDS24BitEnable
		}
		if d.fpdi {
			v |= LVDS24BitFormat
		}
		d.mask(off+RegLVDSDataCntl, v, LVDS24BitEnable|LVDS24BitFormat)
	} else {
		d.mask(off+RegDIGClockPattern, 0x001f, 0xffff)
		d.mask(off+RegDIGTMDSCntl, 0, 0x11) // RGB, 24bpp
	}

	v := uint32(d.mode)<<DIGModeShift | DIGStart | uint32(d.crtc)&DIGSourceSelect
	if d.dualLink {
		v |= DIGDualLinkEnable
	}
	d.mask(off+RegDIGCntl, v, DIGModeMask|DIGStart|DIGDualLinkEnable|DIGSourceSelect)
}

func (d *dig) encoderPower(p Power) {
	off := d.off()
	symclkShift := 8 * d.encoder
	d.mask(RegDCCGSymclkCntl, 0, 0x3<<symclkShift) // clock from pixel PLL

	if p == PowerOn {
		d.mask(off+RegDIGCntl, DIGEnable, DIGEnable)
		d.mask(d.pclkReg(), PclkDigOn, PclkDigOn)
		return
	}
	d.mask(off+RegDIGCntl, 0, DIGEnable|DIGStart)
	d.mask(d.pclkReg(), 0, PclkDigOn)
}

// power sequences encoder and transmitter: the encoder comes up first and
// goes down last.
func (d *dig) power(p Power, transmitter func(Power)) {
	d.log.Debug("outputs: power", "output", d.name, "state", p)
	if p == PowerOn {
		d.encoderPower(p)
		transmitter(p)
		return
	}
	transmitter(p)
	d.encoderPower(p)
}
