// adcx/stats.go

package adcx

import "math"

// millivoltsPerCode converts a raw 10-bit code to millivolts against the
// 3300 mV reference (3300 / 1023).
const millivoltsPerCode = 3300.0 / 1023.0

// BatchStats summarises one completed batch in millivolts.
type BatchStats struct {
	MeanMillivolts float64
	// NoiseMillivolts is the population standard deviation: the RMS swing
	// about the mean, which is the figure a noise source is judged by.
	NoiseMillivolts float64
	Min, Max        uint16
}

// Analyze computes batch statistics after applying the raw-code to millivolt
// scale. It exercises the whole acquisition contract and doubles as a
// bring-up self-test for the hardware noise source.
func Analyze(samples []uint16) BatchStats {
	var s BatchStats
	if len(samples) == 0 {
		return s
	}
	s.Min, s.Max = samples[0], samples[0]
	mean := 0.0
	for _, v := range samples {
		mean += float64(v) * millivoltsPerCode
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	mean /= float64(len(samples))

	variance := 0.0
	for _, v := range samples {
		d := float64(v)*millivoltsPerCode - mean
		variance += d * d
	}
	variance /= float64(len(samples))

	s.MeanMillivolts = mean
	s.NoiseMillivolts = math.Sqrt(variance)
	return s
}
