// Package batch parses and aggregates the sample-batch frames streamed by
// cmd/adcx_stream.
package batch

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxCode is the largest sample value a frame may carry (10-bit converter).
const maxCode = 1023

var (
	ErrBadFrame = errors.New("batch: malformed frame")
	ErrChecksum = errors.New("batch: checksum mismatch")
)

// Frame is one decoded batch.
type Frame struct {
	Seq     uint32
	Samples []uint16
}

// Checksum is the low 16 bits of the sum of all sample codes.
func Checksum(samples []uint16) uint16 {
	var sum uint32
	for _, v := range samples {
		sum += uint32(v)
	}
	return uint16(sum)
}

// ParseFrame decodes one "B,<seq>,<v0>,...,<vN-1>,C,<sum16>" line.
func ParseFrame(line string) (Frame, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) < 5 || fields[0] != "B" || fields[len(fields)-2] != "C" {
		return Frame{}, ErrBadFrame
	}

	seq, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: seq %q", ErrBadFrame, fields[1])
	}
	sum, err := strconv.ParseUint(fields[len(fields)-1], 10, 16)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: checksum %q", ErrBadFrame, fields[len(fields)-1])
	}

	raw := fields[2 : len(fields)-2]
	f := Frame{Seq: uint32(seq), Samples: make([]uint16, 0, len(raw))}
	for _, s := range raw {
		v, err := strconv.ParseUint(s, 10, 16)
		if err != nil || v > maxCode {
			return Frame{}, fmt.Errorf("%w: sample %q", ErrBadFrame, s)
		}
		f.Samples = append(f.Samples, uint16(v))
	}

	if Checksum(f.Samples) != uint16(sum) {
		return Frame{}, ErrChecksum
	}
	return f, nil
}

// Accumulator aggregates statistics across frames.
type Accumulator struct {
	hist   [maxCode + 1]uint64
	n      uint64
	sum    float64
	sumSq  float64
	min    uint16
	max    uint16
	frames int
}

// Add folds one frame into the accumulator.
func (a *Accumulator) Add(f Frame) {
	for _, v := range f.Samples {
		if a.n == 0 {
			a.min, a.max = v, v
		}
		if v < a.min {
			a.min = v
		}
		if v > a.max {
			a.max = v
		}
		a.hist[v]++
		a.n++
		a.sum += float64(v)
		a.sumSq += float64(v) * float64(v)
	}
	a.frames++
}

// Summary reports the aggregate figures, scaled against the device's
// reference voltage.
type Summary struct {
	Frames         int
	Samples        uint64
	MeanMillivolts float64
	RMSMillivolts  float64 // population standard deviation about the mean
	Min, Max       uint16
	// EntropyBits is the Shannon entropy of the sample-code distribution in
	// bits per sample: a rough ceiling on what an entropy extractor can pull
	// out of this source.
	EntropyBits float64
}

// Summary computes the aggregate over everything added so far.
func (a *Accumulator) Summary(referenceMillivolts int) Summary {
	s := Summary{Frames: a.frames, Samples: a.n, Min: a.min, Max: a.max}
	if a.n == 0 {
		return s
	}

	scale := float64(referenceMillivolts) / float64(maxCode)
	n := float64(a.n)
	meanCode := a.sum / n
	variance := a.sumSq/n - meanCode*meanCode
	if variance < 0 {
		variance = 0 // rounding
	}
	s.MeanMillivolts = meanCode * scale
	s.RMSMillivolts = math.Sqrt(variance) * scale

	for _, count := range a.hist {
		if count == 0 {
			continue
		}
		p := float64(count) / n
		s.EntropyBits -= p * math.Log2(p)
	}
	return s
}
