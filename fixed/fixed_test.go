package fixed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clktmr/radeonhd/fixed"
)

func TestInt16_16(t *testing.T) {
	x := fixed.Int16_16F(2.5)
	assert.Equal(t, fixed.Int16_16(0x28000), x)
	assert.Equal(t, 2, x.Floor())
	assert.Equal(t, 3, x.Ceil())
	assert.Equal(t, 2, fixed.Int16_16U(2).Ceil())
	assert.Equal(t, fixed.Int16_16F(6.25), x.Mul(fixed.Int16_16F(2.5)))
	assert.Equal(t, fixed.Int16_16F(1.25), x.Div(fixed.Int16_16U(2)))
	assert.Equal(t, float32(2.5), x.Float())
	assert.Equal(t, "2:32768", x.String())
}

func TestFromIntSaturates(t *testing.T) {
	assert.Equal(t, fixed.Int16_16U(100), fixed.FromInt(100))
	assert.Equal(t, fixed.Int16_16U(32767), fixed.FromInt(uint32(1<<20)))
	assert.Equal(t, fixed.Int16_16U(-32768), fixed.FromInt(int64(-1<<40)))
	assert.Equal(t, 3, fixed.Clamp(7, 0, 3))
}

func TestTransformPoint(t *testing.T) {
	id := fixed.Identity()
	x, y, ok := id.Point(fixed.Int16_16U(10), fixed.Int16_16U(20))
	assert.True(t, ok)
	assert.Equal(t, fixed.Int16_16U(10), x)
	assert.Equal(t, fixed.Int16_16U(20), y)

	tr := fixed.Translate(fixed.Int16_16U(5), fixed.Int16_16U(-5))
	x, y, ok = tr.Point(fixed.Int16_16U(10), fixed.Int16_16U(20))
	assert.True(t, ok)
	assert.Equal(t, fixed.Int16_16U(15), x)
	assert.Equal(t, fixed.Int16_16U(15), y)

	sc := fixed.Scale(fixed.Int16_16F(0.5), fixed.Int16_16U(2))
	x, y, ok = sc.Point(fixed.Int16_16U(10), fixed.Int16_16U(20))
	assert.True(t, ok)
	assert.Equal(t, fixed.Int16_16U(5), x)
	assert.Equal(t, fixed.Int16_16U(40), y)

	var zero fixed.Transform
	_, _, ok = zero.Point(fixed.Int16_16U(1), fixed.Int16_16U(1))
	assert.False(t, ok)

	assert.Equal(t, [6]float64{0.5, 0, 0, 0, 2, 0}, sc.Float64())
}
