package hw

import "time"

// Poller bounds a busy-wait on a hardware condition.
type Poller struct {
	Limit   int           // iterations before giving up
	Backoff time.Duration // sleep between iterations, zero busy-waits
}

// DefaultPoller matches the loop count used by the 2D engine.
var DefaultPoller = Poller{Limit: 2000000}

// Until calls cond until it returns true or the iteration limit is reached.
// It reports whether cond was satisfied.
func (p Poller) Until(cond func() bool) bool {
	for range max(p.Limit, 1) {
		if cond() {
			return true
		}
		if p.Backoff > 0 {
			time.Sleep(p.Backoff)
		}
	}
	return false
}
