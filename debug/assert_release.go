//go:build !debug

// Package debug provides assertions that can be enabled with the debug build
// tag or will otherwise compile to no-ops, and helpers to inspect command
// buffers.
//
// Assertions guard call-sequence contracts of the acceleration code, e.g. that
// geometry is only appended to a prepared operation.
package debug

// Guard more complex assertions (i.e. anything that could panic) with `if
// debug.Enabled{...}`, otherwise they can't be removed in release builds.
const Enabled = false

// Assert panics if b is false.
func Assert(b bool, message string) {}

// Assertf panics with a formatted message if b is false.
func Assertf(b bool, format string, args ...any) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
