// adcx/buffer.go

package adcx

import "sync/atomic"

const (
	// BatchSize is the number of samples in one completed batch. A power of
	// two keeps FFT windows simple, and a multiple of samplesPerSignal means
	// a nominal fill ends exactly on a completion signal with nothing to
	// discard.
	BatchSize = 256

	// samplesPerSignal is how many conversion results one batch-completion
	// signal delivers: the peripheral fills two banks of this many result
	// slots alternately and signals as each bank completes.
	samplesPerSignal = 8

	// sampleMask truncates a raw conversion result to the 10-bit sample range.
	sampleMask = 0x03ff
)

// SampleBuffer accumulates one batch of samples between the conversion
// interrupt (the only writer) and foreground code (the only reader). The
// cursor and the full flag are single-word atomics, so neither side can see
// a torn update; the multi-field reset in Start is the one place that needs
// the interrupt held off, and the owning ADC arranges that.
type SampleBuffer struct {
	samples []uint16
	index   uint32 // next write position
	full    uint32 // 0 or 1; latches when index reaches capacity
	dbg     dbgCounters
}

// Full reports whether the batch has completed since the last Start.
func (b *SampleBuffer) Full() bool { return atomic.LoadUint32(&b.full) != 0 }

// Buffered returns the number of samples stored since the last Start.
func (b *SampleBuffer) Buffered() int { return int(atomic.LoadUint32(&b.index)) }

// Cap returns the batch capacity.
func (b *SampleBuffer) Cap() int { return len(b.samples) }

// Samples returns the stored samples in conversion order. The view is only
// stable once Full reports true; a later Start invalidates it.
func (b *SampleBuffer) Samples() []uint16 {
	return b.samples[:atomic.LoadUint32(&b.index)]
}

// reset clears the cursor and the full flag. Callers must hold off the
// conversion interrupt for the duration, or the handler could pair a fresh
// cursor with a stale flag.
func (b *SampleBuffer) reset() {
	atomic.StoreUint32(&b.index, 0)
	atomic.StoreUint32(&b.full, 0)
	b.dbg.restart()
}

// insert appends one result, masked to the 10-bit sample range. It reports
// false once the buffer is full, in which case nothing was stored. The full
// flag latches on the insert that stores the final sample. Interrupt
// context: never blocks, never allocates.
func (b *SampleBuffer) insert(v uint16) bool {
	if atomic.LoadUint32(&b.full) != 0 {
		return false
	}
	i := atomic.LoadUint32(&b.index)
	b.samples[i] = v & sampleMask     // 1) store
	atomic.StoreUint32(&b.index, i+1) // 2) publish
	if int(i+1) == len(b.samples) {
		atomic.StoreUint32(&b.full, 1)
	}
	return true
}

// drain appends one completed bank of results in slot order, which is strict
// conversion order. Results left over once the buffer fills belong to a batch
// that is already complete: they are discarded, and disarm (idempotent) stops
// the trigger so no further signals arrive.
func (b *SampleBuffer) drain(bank []uint16, disarm func()) {
	b.dbg.signal()
	for i, v := range bank {
		if !b.insert(v) {
			disarm()
			b.dbg.discarded(len(bank) - i)
			return
		}
		b.dbg.stored()
		if b.Full() {
			disarm()
			b.dbg.discarded(len(bank) - i - 1)
			return
		}
	}
}
