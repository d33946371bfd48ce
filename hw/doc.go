// Package hw provides a hardware abstraction layer for the register aperture
// of RadeonHD R5xx/R6xx GPUs.
//
// It only implements raw register access and bounded polling. The engine and
// command stream packages build on top of it and should be used instead.
package hw

// Register Reference Guides
// https://www.x.org/docs/AMD/old/
