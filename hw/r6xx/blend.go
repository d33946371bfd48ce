package r6xx

// Op is a Porter-Duff compositing operator.
type Op uint8

const (
	OpClear Op = iota
	OpSrc
	OpDst
	OpOver
	OpOverReverse
	OpIn
	OpInReverse
	OpOut
	OpOutReverse
	OpAtop
	OpAtopReverse
	OpXor
	OpAdd
)

var opNames = [...]string{
	"Clear", "Src", "Dst", "Over", "OverReverse", "In", "InReverse", "Out",
	"OutReverse", "Atop", "AtopReverse", "Xor", "Add",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "invalid"
}

type blendOp struct {
	dstAlpha bool // depends on the destination alpha
	srcAlpha bool // depends on the source alpha
	cntl     uint32
}

func blend(src, dst uint32) uint32 {
	return src<<colorSrcBlendShift | dst<<colorDestBlendShift
}

var blendOps = [...]blendOp{
	OpClear:       {false, false, blend(blendZero, blendZero)},
	OpSrc:         {false, false, blend(blendOne, blendZero)},
	OpDst:         {false, false, blend(blendZero, blendOne)},
	OpOver:        {false, true, blend(blendOne, blendOneMinusSrcAlpha)},
	OpOverReverse: {true, false, blend(blendOneMinusDstAlpha, blendOne)},
	OpIn:          {true, false, blend(blendDstAlpha, blendZero)},
	OpInReverse:   {false, true, blend(blendZero, blendSrcAlpha)},
	OpOut:         {true, false, blend(blendOneMinusDstAlpha, blendZero)},
	OpOutReverse:  {false, true, blend(blendZero, blendOneMinusSrcAlpha)},
	OpAtop:        {true, true, blend(blendDstAlpha, blendOneMinusSrcAlpha)},
	OpAtopReverse: {true, true, blend(blendOneMinusDstAlpha, blendSrcAlpha)},
	OpXor:         {true, true, blend(blendOneMinusDstAlpha, blendOneMinusSrcAlpha)},
	OpAdd:         {false, false, blend(blendOne, blendOne)},
}

// blendCntl returns the blend control for op. A destination without alpha
// is treated as opaque. With a component alpha mask the source alpha factors
// become source color factors, since the mask has been multiplied into the
// source color per channel.
func blendCntl(op Op, mask *Picture, dst PictFormat) uint32 {
	b := blendOps[op]
	sblend := b.cntl & colorSrcBlendMask
	dblend := b.cntl & colorDestBlendMask

	if dst.A() == 0 && b.dstAlpha {
		switch sblend {
		case blendDstAlpha << colorSrcBlendShift:
			sblend = blendOne << colorSrcBlendShift
		case blendOneMinusDstAlpha << colorSrcBlendShift:
			sblend = blendZero << colorSrcBlendShift
		}
	}

	if mask != nil && mask.ComponentAlpha && b.srcAlpha {
		switch dblend {
		case blendSrcAlpha << colorDestBlendShift:
			dblend = blendSrcColor << colorDestBlendShift
		case blendOneMinusSrcAlpha << colorDestBlendShift:
			dblend = blendOneMinusSrcColor << colorDestBlendShift
		}
	}
	return sblend | dblend
}
