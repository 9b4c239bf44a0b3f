// adcx/rp2.go

//go:build rp2040 || rp2350

package adcx

import "device/rp"

// The RP2040/RP2350 has a single ADC block; its batch is backed by a static
// array so nothing is allocated after startup.
var (
	ADC0  = &_ADC0
	_ADC0 = ADC{
		Bus:    rp.ADC,
		buf:    SampleBuffer{samples: batchStore[:]},
		notify: make(chan struct{}, 1),
	}

	batchStore [BatchSize]uint16
)
