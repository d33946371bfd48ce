// Package r5xx drives the 2D engine of R5xx GPUs and provides the engine
// synchronization and recovery primitives shared with newer generations.
//
// All waits are bounded polls. A poll running into its limit is logged with
// the last observed register value. The exported waits then recover with a
// full engine reset; there is no other recovery path.
package r5xx

import (
	"fmt"
	"log/slog"

	"github.com/clktmr/radeonhd/hw"
	"github.com/clktmr/radeonhd/hw/cs"
)

// Config describes the scanout buffer the engine is set up for.
type Config struct {
	DisplayWidth int    // pitch in pixels
	Depth        int    // 8, 15, 16 or 24
	BitsPerPixel int    // 8, 16 or 32
	FBOffset     uint32 // internal address of the scanout buffer
	BigEndian    bool   // host byte order

	Poll hw.Poller
}

type Engine struct {
	regs hw.Registers
	cs   *cs.Stream
	cfg  Config
	log  *slog.Logger

	resets int
}

func New(regs hw.Registers, stream *cs.Stream, cfg Config, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Poll.Limit == 0 {
		cfg.Poll = hw.DefaultPoller
	}
	return &Engine{regs: regs, cs: stream, cfg: cfg, log: log}
}

// Resets returns the number of full resets performed so far.
func (e *Engine) Resets() int { return e.resets }

// Stream returns the command stream the engine synchronizes with.
func (e *Engine) Stream() *cs.Stream { return e.cs }

func (e *Engine) fifoWait(required uint32) bool {
	ok := e.cfg.Poll.Until(func() bool {
		return required <= e.regs.Read(RegRBBMStatus)&RBBMFIFOCntMask
	})
	if !ok {
		e.log.Error("r5xx: FIFO wait timeout",
			"status", hexWord(e.regs.Read(RegRBBMStatus)), "required", required)
	}
	return ok
}

// FIFOWait waits until at least required FIFO slots are free. On timeout the
// engine is reset.
func (e *Engine) FIFOWait(required uint32) {
	if !e.fifoWait(required) {
		e.ResetFull()
	}
}

// Flush2D writes back all dirty data in the pixel cache and waits until the
// cache isn't busy anymore.
func (e *Engine) Flush2D() bool {
	hw.Mask(e.regs, RegRB2DDstCacheCtlStat, DstCacheFlushAll, DstCacheFlushAll)

	ok := e.cfg.Poll.Until(func() bool {
		return e.regs.Read(RegRB2DDstCacheCtlStat)&DstCacheBusy == 0
	})
	if !ok {
		e.log.Error("r5xx: 2D flush timeout",
			"ctlstat", hexWord(e.regs.Read(RegRB2DDstCacheCtlStat)))
	}
	return ok
}

// Sync queues a wait for host, 2D and 3D idle on the command stream.
func (e *Engine) Sync() {
	e.cs.Grab(2)
	e.cs.RegWrite(RegWaitUntil, WaitHostIdleClean|Wait2DIdleClean|Wait3DIdleClean)
}

// DstCacheFlush queues a flush of the 3D destination cache.
func (e *Engine) DstCacheFlush() {
	e.cs.Grab(2)
	e.cs.RegWrite(RegRB3DDstCacheCtlStat, RB3DDCFlushAll)
}

// ZCacheFlush queues a flush of the 3D depth cache.
func (e *Engine) ZCacheFlush() {
	e.cs.Grab(2)
	e.cs.RegWrite(RegRB3DZCacheCtlStat, RB3DZCFlushAll)
}

// idle waits for the command stream to be consumed, the FIFO to drain and
// the engine to go idle, then flushes the pixel cache.
func (e *Engine) idle() bool {
	e.cs.Flush()
	e.cs.Idle()

	ok := e.cfg.Poll.Until(func() bool {
		return e.regs.Read(RegRBBMStatus)&RBBMFIFOCntMask == RBBMFIFOEmpty
	})
	if !ok {
		e.log.Error("r5xx: idle FIFO timeout", "status", hexWord(e.regs.Read(RegRBBMStatus)))
		return false
	}

	ok = e.cfg.Poll.Until(func() bool {
		return e.regs.Read(RegRBBMStatus)&RBBMActive == 0
	})
	if !ok {
		e.log.Error("r5xx: idle timeout", "status", hexWord(e.regs.Read(RegRBBMStatus)))
		return false
	}

	e.Flush2D()
	return true
}

// Idle makes the engine quiescent. On timeout the engine is reset.
func (e *Engine) Idle() {
	if !e.idle() {
		e.ResetFull()
	}
}

// hexWord logs register contents the way the register guides print them.
type hexWord uint32

func (h hexWord) LogValue() slog.Value {
	return slog.StringValue(fmt.Sprintf("0x%08X", uint32(h)))
}
