package fixed

// Transform is a projective 3x3 matrix in 16.16, applied to column vectors
// (x, y, 1).
type Transform [3][3]Int16_16

// Identity returns the identity transform.
func Identity() Transform {
	one := Int16_16U(1)
	return Transform{{one, 0, 0}, {0, one, 0}, {0, 0, one}}
}

// Translate returns a transform moving points by (dx, dy).
func Translate(dx, dy Int16_16) Transform {
	t := Identity()
	t[0][2], t[1][2] = dx, dy
	return t
}

// Scale returns a transform scaling around the origin.
func Scale(sx, sy Int16_16) Transform {
	t := Identity()
	t[0][0], t[1][1] = sx, sy
	return t
}

// Point applies t to (x, y). The result is divided by the homogeneous
// coordinate. It reports false if that coordinate is zero or the result
// doesn't fit.
func (t *Transform) Point(x, y Int16_16) (Int16_16, Int16_16, bool) {
	var v [3]int64
	for j := range v {
		v[j] = (int64(t[j][0])*int64(x) + int64(t[j][1])*int64(y) + int64(t[j][2])<<16) >> 16
	}
	if v[2] == 0 {
		return 0, 0, false
	}
	rx := v[0] << 16 / v[2]
	ry := v[1] << 16 / v[2]
	if rx != int64(int32(rx)) || ry != int64(int32(ry)) {
		return 0, 0, false
	}
	return Int16_16(rx), Int16_16(ry), true
}

// Float64 returns t as a row-major 2x3 affine matrix, dropping the
// projective row.
func (t *Transform) Float64() [6]float64 {
	var m [6]float64
	for j := range 2 {
		for i := range 3 {
			m[j*3+i] = float64(t[j][i]) / (1 << 16)
		}
	}
	return m
}
