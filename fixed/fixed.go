// Package fixed provides the 16.16 fixed-point type used by render
// transforms and helpers to convert into it.
package fixed

import "golang.org/x/exp/constraints"

//go:generate go run mkfixed.go Int16_16 int32
type Int16_16 int32

const (
	maxInt16_16 = 1<<15 - 1
	minInt16_16 = -1 << 15
)

// FromInt converts i to 16.16, saturating at the representable range.
func FromInt[T constraints.Integer](i T) Int16_16 {
	return Int16_16U(int(Clamp(int64(i), minInt16_16, maxInt16_16)))
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
