// adcx/adcx.go

// Package adcx provides a timer-paced, interrupt-driven analog sampler that
// delivers fixed-size batches of evenly spaced samples. A hardware trigger
// paces conversions with no software involvement per sample; the conversion
// interrupt drains completed results into the sample buffer; foreground code
// starts a batch with Start and polls Full (or uses WaitFull). Start returns
// immediately, so one batch can be processed while the next is collected.
package adcx

import "errors"

// SampleRate is the conversion rate in hertz. It is a fixed contract with
// downstream frequency-domain consumers: an FFT of a batch is only meaningful
// because conversions are exactly 1/SampleRate apart. 22050 Hz is a standard
// audio rate, so PCM tooling accepts captured batches directly, and it is
// slow enough for real-time spectral work on small cores.
const SampleRate = 22050

// ErrBadChannel is returned by Configure when the selected input channel does
// not exist on the target.
var ErrBadChannel = errors.New("adcx: no such ADC channel")
