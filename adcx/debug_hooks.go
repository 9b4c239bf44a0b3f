//go:build adcxdebug

package adcx

import "sync/atomic"

// Counters since the last DebugReset. Updated from the conversion interrupt
// with single-word atomics; reading a snapshot from foreground is safe.
type Counters struct {
	Signals  uint32 // completion signals handled
	Stored   uint32 // results stored into the sample buffer
	Discards uint32 // results discarded after the buffer filled
	Restarts uint32 // batch (re)starts
}

type dbgCounters struct{ c Counters }

func (d *dbgCounters) signal() { atomic.AddUint32(&d.c.Signals, 1) }
func (d *dbgCounters) stored() { atomic.AddUint32(&d.c.Stored, 1) }
func (d *dbgCounters) discarded(n int) {
	if n > 0 {
		atomic.AddUint32(&d.c.Discards, uint32(n))
	}
}
func (d *dbgCounters) restart() { atomic.AddUint32(&d.c.Restarts, 1) }

// DebugCounters returns a snapshot copy.
func (b *SampleBuffer) DebugCounters() Counters {
	return Counters{
		Signals:  atomic.LoadUint32(&b.dbg.c.Signals),
		Stored:   atomic.LoadUint32(&b.dbg.c.Stored),
		Discards: atomic.LoadUint32(&b.dbg.c.Discards),
		Restarts: atomic.LoadUint32(&b.dbg.c.Restarts),
	}
}

// DebugReset zeroes the counters.
func (b *SampleBuffer) DebugReset() { b.dbg.c = Counters{} }
