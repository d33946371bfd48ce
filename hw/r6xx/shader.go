package r6xx

// Shader microcode words. Control flow instructions are 64 bits wide, fetch
// instructions 128 bits. Clause addresses count 64-bit slots.

// Sel selects a vector component or a constant.
type Sel uint32

const (
	SelX Sel = iota
	SelY
	SelZ
	SelW
	Sel0
	Sel1
	_
	SelMask
)

var swizzleXYZW = [4]Sel{SelX, SelY, SelZ, SelW}

type cfInst uint32

const (
	cfInstTex        cfInst = 1
	cfInstVtx        cfInst = 2
	cfInstExport     cfInst = 39
	cfInstExportDone cfInst = 40
)

type exportType uint32

const (
	exportPixel exportType = iota
	exportPos
	exportParam
)

// Export array bases.
const (
	cfPixelMRT0 = 0
	cfPos0      = 60
)

func count(n int, mask uint32) uint32 {
	if n <= 0 {
		return 0
	}
	return uint32(n-1) & mask
}

func bit(b bool, shift uint) uint32 {
	if b {
		return 1 << shift
	}
	return 0
}

// cfWord is a control flow instruction executing a fetch clause.
type cfWord struct {
	Addr    uint32 // clause start, in 64-bit slots
	Count   int    // instructions in the clause
	Inst    cfInst
	EOP     bool
	Barrier bool
}

func (c cfWord) words() []uint32 {
	return []uint32{
		c.Addr,
		count(c.Count, 7)<<10 | bit(c.EOP, 21) | uint32(c.Inst)<<23 | bit(c.Barrier, 31),
	}
}

// exportWord is a swizzled export of a GPR.
type exportWord struct {
	ArrayBase uint32
	Type      exportType
	GPR       uint8
	ElemSize  uint8
	Swizzle   [4]Sel
	Burst     int
	EOP       bool
	Inst      cfInst
	Barrier   bool
}

func (e exportWord) words() []uint32 {
	return []uint32{
		e.ArrayBase&0x1fff | uint32(e.Type)<<13 | uint32(e.GPR&0x7f)<<15 |
			uint32(e.ElemSize&3)<<30,
		uint32(e.Swizzle[0]) | uint32(e.Swizzle[1])<<3 |
			uint32(e.Swizzle[2])<<6 | uint32(e.Swizzle[3])<<9 |
			count(e.Burst, 0xf)<<17 | bit(e.EOP, 21) | uint32(e.Inst)<<23 |
			bit(e.Barrier, 31),
	}
}

type numFormat uint32

const (
	numFormatNorm numFormat = iota
	numFormatInt
	numFormatScaled
)

// vtxFetch reads vertex data from a buffer resource into a GPR.
type vtxFetch struct {
	Buffer    uint8
	SrcGPR    uint8
	SrcSelX   Sel
	MegaCount int
	DstGPR    uint8
	DstSel    [4]Sel
	Format    uint32
	NumFormat numFormat
	Signed    bool
	Offset    uint16
	Mega      bool
}

func (v vtxFetch) words() []uint32 {
	return []uint32{
		uint32(v.Buffer)<<8 | uint32(v.SrcGPR&0x7f)<<16 |
			uint32(v.SrcSelX&3)<<24 | count(v.MegaCount, 0x3f)<<26,
		uint32(v.DstGPR&0x7f) | uint32(v.DstSel[0])<<9 | uint32(v.DstSel[1])<<12 |
			uint32(v.DstSel[2])<<15 | uint32(v.DstSel[3])<<18 |
			(v.Format&0x3f)<<22 | uint32(v.NumFormat&3)<<28 | bit(v.Signed, 30),
		uint32(v.Offset) | bit(v.Mega, 19),
		0, // pad
	}
}

const texInstSample = 0x10

// texSample samples a texture resource at the coordinates held in a GPR.
type texSample struct {
	Resource   uint8
	Sampler    uint8
	SrcGPR     uint8
	DstGPR     uint8
	DstSel     [4]Sel
	SrcSel     [4]Sel
	Normalized bool
}

func (t texSample) words() []uint32 {
	var coord uint32
	if t.Normalized {
		coord = 0xf << 28
	}
	return []uint32{
		texInstSample | uint32(t.Resource)<<8 | uint32(t.SrcGPR&0x7f)<<16,
		uint32(t.DstGPR&0x7f) | uint32(t.DstSel[0])<<9 | uint32(t.DstSel[1])<<12 |
			uint32(t.DstSel[2])<<15 | uint32(t.DstSel[3])<<18 | coord,
		uint32(t.Sampler&0x1f)<<15 | uint32(t.SrcSel[0])<<20 | uint32(t.SrcSel[1])<<23 |
			uint32(t.SrcSel[2])<<26 | uint32(t.SrcSel[3])<<29,
		0, // pad
	}
}

type encoder interface{ words() []uint32 }

// assemble concatenates the encoded instructions.
func assemble(insts ...encoder) []uint32 {
	var prog []uint32
	for _, i := range insts {
		prog = append(prog, i.words()...)
	}
	return prog
}

// nop fills unused control flow slots.
type nop struct{}

func (nop) words() []uint32 { return []uint32{0, 0} }
