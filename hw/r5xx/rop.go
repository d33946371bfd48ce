package r5xx

// ROP3 codes of the 2D engine, shifted into the GMC_ROP3 field.
const (
	rop3Zero = 0x00 << GMCROP3Shift
	rop3DSa  = 0x88 << GMCROP3Shift
	rop3SDna = 0x44 << GMCROP3Shift
	rop3S    = 0xcc << GMCROP3Shift
	rop3DSna = 0x22 << GMCROP3Shift
	rop3D    = 0xaa << GMCROP3Shift
	rop3DSx  = 0x66 << GMCROP3Shift
	rop3DSo  = 0xee << GMCROP3Shift
	rop3DSon = 0x11 << GMCROP3Shift
	rop3DSxn = 0x99 << GMCROP3Shift
	rop3Dn   = 0x55 << GMCROP3Shift
	rop3SDno = 0xdd << GMCROP3Shift
	rop3Sn   = 0x33 << GMCROP3Shift
	rop3DSno = 0xbb << GMCROP3Shift
	rop3DSan = 0x77 << GMCROP3Shift
	rop3One  = 0xff << GMCROP3Shift

	rop3DPa  = 0xa0 << GMCROP3Shift
	rop3PDna = 0x50 << GMCROP3Shift
	rop3P    = 0xf0 << GMCROP3Shift
	rop3DPna = 0x0a << GMCROP3Shift
	rop3DPx  = 0x5a << GMCROP3Shift
	rop3DPo  = 0xfa << GMCROP3Shift
	rop3DPon = 0x05 << GMCROP3Shift
	rop3PDxn = 0xa5 << GMCROP3Shift
	rop3PDno = 0xf5 << GMCROP3Shift
	rop3Pn   = 0x0f << GMCROP3Shift
	rop3DPno = 0xaf << GMCROP3Shift
	rop3DPan = 0x5f << GMCROP3Shift
)

// Alu is one of the 16 bitwise raster operations of the X protocol.
type Alu uint8

const (
	GXclear Alu = iota
	GXand
	GXandReverse
	GXcopy
	GXandInverted
	GXnoop
	GXxor
	GXor
	GXnor
	GXequiv
	GXinvert
	GXorReverse
	GXcopyInverted
	GXorInverted
	GXnand
	GXset
)

var aluNames = [...]string{
	"clear", "and", "andReverse", "copy", "andInverted", "noop", "xor", "or",
	"nor", "equiv", "invert", "orReverse", "copyInverted", "orInverted",
	"nand", "set",
}

func (a Alu) String() string {
	if int(a) < len(aluNames) {
		return aluNames[a]
	}
	return "invalid"
}

// Rop holds the ROP3 encodings for an Alu, once with the source operand and
// once with the pattern (brush) operand.
type Rop struct {
	Rop     uint32 // source operand, used for copies
	Pattern uint32 // pattern operand, used for solid fills
}

// Rops maps every Alu to its ROP3 encodings. The R6xx color control register
// uses the same codes in its low byte.
var Rops = [16]Rop{
	GXclear:        {rop3Zero, rop3Zero},
	GXand:          {rop3DSa, rop3DPa},
	GXandReverse:   {rop3SDna, rop3PDna},
	GXcopy:         {rop3S, rop3P},
	GXandInverted:  {rop3DSna, rop3DPna},
	GXnoop:         {rop3D, rop3D},
	GXxor:          {rop3DSx, rop3DPx},
	GXor:           {rop3DSo, rop3DPo},
	GXnor:          {rop3DSon, rop3DPon},
	GXequiv:        {rop3DSxn, rop3PDxn},
	GXinvert:       {rop3Dn, rop3Dn},
	GXorReverse:    {rop3SDno, rop3PDno},
	GXcopyInverted: {rop3Sn, rop3Pn},
	GXorInverted:   {rop3DSno, rop3DPno},
	GXnand:         {rop3DSan, rop3DPan},
	GXset:          {rop3One, rop3One},
}
