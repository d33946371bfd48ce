package r6xx

// Vertex layouts, in bytes.
const (
	solidVertexSize     = 12 // x, y, packed color
	copyVertexSize      = 16 // x, y, s, t
	compositeVertexSize = 24 // x, y, src s, t, mask s, t
)

// posFetch reads x and y of a vertex. MegaCount is set per layout.
var posFetch = vtxFetch{
	DstGPR:    1,
	DstSel:    [4]Sel{SelX, SelY, Sel0, Sel1},
	Format:    fmt32_32Float,
	NumFormat: numFormatNorm,
	Signed:    true,
	Offset:    0,
	Mega:      true,
}

// vsHeader fetches two attributes, exports GPR 1 as position and paramGPR
// as parameter 0.
func vsHeader(paramGPR uint8) []encoder {
	return []encoder{
		cfWord{Addr: 4, Count: 2, Inst: cfInstVtx, Barrier: true},
		exportWord{ArrayBase: cfPos0, Type: exportPos, GPR: 1,
			Swizzle: swizzleXYZW, Inst: cfInstExportDone, Barrier: true},
		exportWord{ArrayBase: 0, Type: exportParam, GPR: paramGPR,
			Swizzle: swizzleXYZW, EOP: true, Inst: cfInstExportDone},
		nop{},
	}
}

// solidVS passes the position and the packed color of each vertex. The
// color fetch picks the bytes matching the render target depth.
func solidVS(bpp int) []uint32 {
	pos := posFetch
	pos.MegaCount = solidVertexSize

	color := vtxFetch{DstGPR: 2, NumFormat: numFormatNorm}
	switch bpp {
	case 8:
		color.MegaCount = 1
		color.DstSel = [4]Sel{SelX, Sel0, Sel0, Sel0}
		color.Format = fmt8
		color.Offset = 11
	case 16:
		color.MegaCount = 2
		color.DstSel = [4]Sel{SelX, SelY, SelZ, Sel0}
		color.Format = fmt565
		color.Offset = 10
	default:
		color.MegaCount = 4
		color.DstSel = swizzleXYZW
		color.Format = fmt8888
		color.Offset = 8
	}
	return assemble(append(vsHeader(2), pos, color)...)
}

// solidPS exports the interpolated color.
func solidPS() []uint32 {
	return assemble(pixelExport())
}

func pixelExport() exportWord {
	return exportWord{ArrayBase: cfPixelMRT0, Type: exportPixel, GPR: 0,
		ElemSize: 1, Swizzle: swizzleXYZW, Burst: 1, EOP: true,
		Inst: cfInstExportDone, Barrier: true}
}

// texturedVS passes the position and one texture coordinate pair located
// behind it.
func texturedVS() []uint32 {
	pos := posFetch
	pos.MegaCount = 16
	tex := vtxFetch{
		MegaCount: 8,
		DstGPR:    0,
		DstSel:    [4]Sel{SelX, SelY, Sel0, Sel1},
		Format:    fmt32_32Float,
		NumFormat: numFormatNorm,
		Signed:    true,
		Offset:    8,
	}
	return assemble(append(vsHeader(0), pos, tex)...)
}

// texturedPS samples texture unit 0 and exports the result. Copies address
// texels directly, composites with normalized coordinates.
func texturedPS(dst [4]Sel, normalized bool) []uint32 {
	return assemble(
		cfWord{Addr: 2, Count: 1, Inst: cfInstTex, Barrier: true},
		pixelExport(),
		texSample{DstSel: dst, SrcSel: [4]Sel{SelX, SelY, Sel0, Sel1},
			Normalized: normalized},
	)
}
