package r6xx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShaderWords(t *testing.T) {
	cf := cfWord{Addr: 4, Count: 2, Inst: cfInstVtx, Barrier: true}
	assert.Equal(t, []uint32{4, 1<<10 | 2<<23 | 1<<31}, cf.words())

	exp := pixelExport()
	w := exp.words()
	assert.Equal(t, uint32(1<<30), w[0], "mrt0, pixel, gpr 0, elem size 1")
	assert.Equal(t, uint32(0|1<<3|2<<6|3<<9|1<<21|40<<23|1<<31), w[1])

	pos := posFetch
	pos.MegaCount = 16
	w = pos.words()
	assert.Len(t, w, 4)
	assert.Equal(t, uint32(15<<26), w[0])
	assert.Equal(t, uint32(1|0<<9|1<<12|4<<15|5<<18|fmt32_32Float<<22|1<<30), w[1])
	assert.Equal(t, uint32(1<<19), w[2])

	tex := texSample{DstSel: swizzleXYZW, SrcSel: [4]Sel{SelX, SelY, Sel0, Sel1}, Normalized: true}
	w = tex.words()
	assert.Equal(t, uint32(texInstSample), w[0])
	assert.Equal(t, uint32(0xf<<28), w[1]&0xf0000000)
	assert.Equal(t, uint32(1<<23|4<<26|5<<29), w[2])
}

func TestShaderPrograms(t *testing.T) {
	for _, bpp := range []int{8, 16, 32} {
		vs := solidVS(bpp)
		// header, position and parameter export, nop, two fetches
		assert.Len(t, vs, 2+2+2+2+4+4, "bpp %d", bpp)
		assert.Less(t, len(vs)*4, psOffset-vsOffset, "vertex shader overlaps pixel shader")
	}
	assert.Len(t, texturedPS(swizzleXYZW, false), 2+2+4)

	// the clause address is in 64-bit slots
	ps := texturedPS(swizzleXYZW, true)
	assert.Equal(t, uint32(2), ps[0])
	assert.Equal(t, texSample{DstSel: swizzleXYZW, SrcSel: [4]Sel{SelX, SelY, Sel0, Sel1},
		Normalized: true}.words(), ps[4:8])
}

func TestSampleSwizzle(t *testing.T) {
	assert.Equal(t, [4]Sel{SelX, SelY, SelZ, SelW}, sampleSwizzle(A8R8G8B8))
	assert.Equal(t, [4]Sel{Sel1, SelY, SelZ, SelW}, sampleSwizzle(X8R8G8B8))
	assert.Equal(t, [4]Sel{SelX, Sel0, Sel0, Sel0}, sampleSwizzle(A8))

	f, ok := destFormat(R5G6B5)
	assert.True(t, ok)
	assert.Equal(t, uint32(color565), f)
	_, ok = destFormat(A8B8G8R8)
	assert.False(t, ok)
	assert.Equal(t, "x1r5g5b5", X1R5G5B5.String())
}
