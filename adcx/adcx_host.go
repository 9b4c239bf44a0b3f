//go:build !rp2040 && !rp2350

package adcx

// Host shim: a simulated conversion peripheral so the acquisition engine
// runs under go test without hardware. The simulation keeps the full
// peripheral model: a timer-paced trigger that only produces conversions
// while armed, two alternating banks of eight result slots, and a completion
// signal per filled bank that runs the handler against the bank that just
// finished. The mutex stands in for masking the conversion interrupt.

import (
	"context"
	"sync"
)

// Config configures the sampler. The zero value selects channel 0.
type Config struct {
	// Channel selects the simulated input, 0-3.
	Channel uint8
}

// ADC is a fixed-rate batch sampler over the simulated peripheral.
type ADC struct {
	buf    SampleBuffer
	notify chan struct{} // coalesced completion wake-up

	mu        sync.Mutex // plays the role of the interrupt mask
	armed     bool
	channel   uint8
	banks     [2][samplesPerSignal]uint16
	active    int // bank currently being filled
	fillCount int
}

var (
	ADC0  = &_ADC0
	_ADC0 = ADC{
		buf:    SampleBuffer{samples: hostStore[:]},
		notify: make(chan struct{}, 1),
	}

	hostStore [BatchSize]uint16
)

// Configure records the input selection; the simulated peripheral needs no
// other setup. It leaves the trigger disarmed.
func (a *ADC) Configure(cfg Config) error {
	if cfg.Channel >= 4 {
		return ErrBadChannel
	}
	a.mu.Lock()
	a.channel = cfg.Channel
	a.mu.Unlock()
	return nil
}

// Start begins filling the sample buffer from the top and returns
// immediately. Calling Start while a batch is still filling restarts the
// batch from empty. The reset and the arm are one atomic step with respect
// to the simulated interrupt.
func (a *ADC) Start() {
	a.mu.Lock()
	a.buf.reset()
	a.active = 0
	a.fillCount = 0
	a.armed = true
	a.mu.Unlock()
}

// Full reports whether the batch has completed since the last Start.
func (a *ADC) Full() bool { return a.buf.Full() }

// Samples returns the batch contents in conversion order. Only valid once
// Full reports true; the next Start invalidates the view.
func (a *ADC) Samples() []uint16 { return a.buf.Samples() }

// Buffered returns the number of samples collected since the last Start.
func (a *ADC) Buffered() int { return a.buf.Buffered() }

// Armed reports whether the trigger is currently running conversions.
func (a *ADC) Armed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.armed
}

// Completed exposes a coalesced batch-completion signal suitable for select.
func (a *ADC) Completed() <-chan struct{} { return a.notify }

// WaitFull blocks until the current batch completes or ctx is done.
func (a *ADC) WaitFull(ctx context.Context) error {
	for {
		if a.Full() {
			return nil
		}
		select {
		case <-a.notify:
			// Re-check; the notify channel is level-coalesced.
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// FeedConversion simulates one timer-paced conversion. While the trigger is
// disarmed no conversions occur and the value is dropped, exactly as a
// stopped timer produces no results. On the eighth result the banks flip and
// the completion signal runs the handler against the bank that just filled.
func (a *ADC) FeedConversion(v uint16) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.armed {
		return
	}
	a.banks[a.active][a.fillCount] = v
	a.fillCount++
	if a.fillCount == samplesPerSignal {
		completed := a.active
		a.active ^= 1
		a.fillCount = 0
		a.handleSignal(completed)
	}
}

// CompleteBatch feeds one full bank of conversions.
func (a *ADC) CompleteBatch(vals [samplesPerSignal]uint16) {
	for _, v := range vals {
		a.FeedConversion(v)
	}
}

// handleSignal is the simulated interrupt handler: drain the completed bank
// in slot order. The completion flag clears implicitly when the drain
// returns. Called with mu held.
func (a *ADC) handleSignal(completed int) {
	a.buf.drain(a.banks[completed][:], a.disarmLocked)

	if a.buf.Full() {
		select {
		case a.notify <- struct{}{}:
		default:
		}
	}
}

// disarmLocked stops the simulated trigger; mu is already held on every path
// that reaches it.
func (a *ADC) disarmLocked() { a.armed = false }
