//go:build rp2040 || rp2350

// RP2040/RP2350 backend. Conversions are paced entirely in hardware: the
// ADC runs free with its fractional pacing divider set for SampleRate, and
// completed results land in the peripheral's result FIFO. The FIFO interrupt
// drains results into the sample buffer; foreground code only ever calls
// Configure, Start and the observers.
package adcx

import (
	"context"
	"device/rp"
	"runtime/interrupt"

	"machine"
)

const (
	// The ADC clock is the 48 MHz USB PLL tap on both supported parts.
	adcClockHz = 48_000_000

	// pacingDivider is the 8.8 fixed-point conversion period: 48 MHz /
	// 22050 Hz is about 2176.87 cycles per conversion, and the hardware adds
	// one cycle to the integer part.
	pacingDivider = adcClockHz*256/SampleRate - 256

	// The result FIFO is four entries deep. Unlike the two 8-slot banks of
	// larger converters there is only the one FIFO, so the handler drains
	// whatever it holds; the interrupt threshold is set to the full depth so
	// results arrive in the largest batches the hardware can produce.
	fifoDepth = 4

	numChannels = 4
)

// Config configures the sampler. The zero value selects channel 0 (GP26).
type Config struct {
	// Channel selects the ADC input, 0-3 for GP26-GP29.
	Channel uint8
}

// ADC is a fixed-rate batch sampler over the chip's ADC block.
type ADC struct {
	Bus       *rp.ADC_Type
	Interrupt interrupt.Interrupt

	buf    SampleBuffer
	notify chan struct{} // coalesced completion wake-up
}

// Configure performs the one-time peripheral setup: pin mux, input select,
// pacing divider, result FIFO and the FIFO interrupt. It leaves the trigger
// disarmed and must be called once before the first Start. Not safe to call
// while a batch is filling.
func (a *ADC) Configure(cfg Config) error {
	if cfg.Channel >= numChannels {
		return ErrBadChannel
	}

	machine.InitADC()
	if err := a.muxChannel(cfg.Channel); err != nil {
		return err
	}

	// Free-running conversions stay on the selected input.
	a.Bus.CS.ReplaceBits(uint32(cfg.Channel)<<rp.ADC_CS_AINSEL_Pos, rp.ADC_CS_AINSEL_Msk, 0)

	// Fixed cadence. Do not touch after bring-up: every downstream FFT
	// assumes this exact spacing.
	a.Bus.DIV.Set(uint32(pacingDivider))

	// Batch results in the FIFO and interrupt at the threshold so the
	// handler runs once per burst rather than once per conversion.
	a.Bus.FCS.Set(rp.ADC_FCS_EN | fifoDepth<<rp.ADC_FCS_THRESH_Pos)

	// Lazily install the IRQ handler here (no package-level init()).
	if a.Interrupt == (interrupt.Interrupt{}) {
		a.Interrupt = interrupt.New(rp.IRQ_ADC_IRQ_FIFO, a.handleInterrupt)
		// Above the default priority: the drain must not be held up by
		// bulk traffic such as USB, though it stays below the system's
		// hard-real-time sources.
		a.Interrupt.SetPriority(0x40)
		a.Interrupt.Enable()
	}
	a.Bus.INTE.SetBits(rp.ADC_INTE_FIFO)

	return nil
}

// muxChannel puts the channel's pin into analog mode through machine, so pin
// bookkeeping stays consistent with the rest of the program.
func (a *ADC) muxChannel(ch uint8) error {
	var pin machine.Pin
	switch ch {
	case 0:
		pin = machine.ADC0
	case 1:
		pin = machine.ADC1
	case 2:
		pin = machine.ADC2
	case 3:
		pin = machine.ADC3
	default:
		return ErrBadChannel
	}
	return (machine.ADC{Pin: pin}).Configure(machine.ADCConfig{})
}

// Start begins filling the sample buffer from the top and returns before any
// samples have been collected; poll Full or use WaitFull. Calling Start while
// a batch is still filling is allowed and restarts the batch from empty.
func (a *ADC) Start() {
	// Mask the FIFO interrupt - the one source that feeds the handler, not
	// global interrupt state - so the handler cannot observe the reset half
	// done while unrelated time-critical interrupts keep running.
	a.Bus.INTE.ClearBits(rp.ADC_INTE_FIFO)
	a.disarm()
	a.flushFIFO() // anything still queued belongs to the previous batch
	a.buf.reset()
	a.Bus.INTE.SetBits(rp.ADC_INTE_FIFO)
	a.arm()
}

// Full reports whether the batch has completed since the last Start.
func (a *ADC) Full() bool { return a.buf.Full() }

// Samples returns the batch contents in conversion order. Only valid once
// Full reports true; the next Start invalidates the view.
func (a *ADC) Samples() []uint16 { return a.buf.Samples() }

// Buffered returns the number of samples collected since the last Start.
func (a *ADC) Buffered() int { return a.buf.Buffered() }

// Armed reports whether the trigger is currently running conversions.
func (a *ADC) Armed() bool { return a.Bus.CS.HasBits(rp.ADC_CS_START_MANY) }

// arm starts free-running conversions; disarm stops them. Both are idempotent
// plain register writes, safe from either context.
func (a *ADC) arm()    { a.Bus.CS.SetBits(rp.ADC_CS_START_MANY) }
func (a *ADC) disarm() { a.Bus.CS.ClearBits(rp.ADC_CS_START_MANY) }

func (a *ADC) flushFIFO() {
	for !a.Bus.FCS.HasBits(rp.ADC_FCS_EMPTY) {
		_ = a.Bus.FIFO.Get()
	}
}

// handleInterrupt drains every result the FIFO holds into the sample buffer.
// Consuming the FIFO below the threshold is what clears the interrupt
// condition, so the drain must come before returning; there is no flag to
// write. Runs at elevated priority: bounded work, no blocking, no allocation.
func (a *ADC) handleInterrupt(interrupt.Interrupt) {
	var bank [fifoDepth]uint16
	n := 0
	for !a.Bus.FCS.HasBits(rp.ADC_FCS_EMPTY) && n < len(bank) {
		r := a.Bus.FIFO.Get()
		// 12-bit result scaled onto the 10-bit sample range.
		bank[n] = uint16(r&rp.ADC_FIFO_VAL_Msk) >> 2
		n++
	}

	a.buf.drain(bank[:n], a.disarm)

	if a.buf.Full() {
		// Coalesce a completion notification.
		select {
		case a.notify <- struct{}{}:
		default:
		}
	}
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
