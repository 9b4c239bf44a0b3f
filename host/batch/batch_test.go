package batch

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frameLine(seq uint32, samples []uint16) string {
	var b strings.Builder
	fmt.Fprintf(&b, "B,%d", seq)
	for _, v := range samples {
		fmt.Fprintf(&b, ",%d", v)
	}
	fmt.Fprintf(&b, ",C,%d", Checksum(samples))
	return b.String()
}

func TestParseFrame(t *testing.T) {
	samples := []uint16{0, 1, 512, 1023, 7, 7, 7, 7}
	f, err := ParseFrame(frameLine(42, samples) + "\r\n")
	require.NoError(t, err)
	assert.Equal(t, uint32(42), f.Seq)
	assert.Equal(t, samples, f.Samples)
}

func TestParseFrameRejectsBadChecksum(t *testing.T) {
	line := frameLine(1, []uint16{1, 2, 3, 4})
	line = line[:len(line)-1] + "9" // corrupt the sum digit
	_, err := ParseFrame(line)
	require.ErrorIs(t, err, ErrChecksum)
}

func TestParseFrameRejectsGarbage(t *testing.T) {
	for _, line := range []string{
		"",
		"B,1,C,0",                  // no samples
		"X,1,2,3,C,5",              // wrong lead
		"B,1,2,3,5",                // no checksum marker
		"B,notanumber,2,C,2",       // bad seq
		"B,1,4096,C,4096",          // sample out of range
		"B,1,12,thirteen,C,25",     // bad sample
		frameLine(1, nil) + ",junk", // trailing field
	} {
		_, err := ParseFrame(line)
		require.ErrorIs(t, err, ErrBadFrame, "line %q", line)
	}
}

func TestAccumulatorConstantInput(t *testing.T) {
	var acc Accumulator
	acc.Add(Frame{Seq: 0, Samples: []uint16{512, 512, 512, 512}})
	acc.Add(Frame{Seq: 1, Samples: []uint16{512, 512, 512, 512}})

	s := acc.Summary(3300)
	assert.Equal(t, 2, s.Frames)
	assert.Equal(t, uint64(8), s.Samples)
	assert.InDelta(t, 512*3300.0/1023.0, s.MeanMillivolts, 1e-9)
	assert.Zero(t, s.RMSMillivolts)
	assert.Zero(t, s.EntropyBits, "a constant source carries no entropy")
	assert.Equal(t, uint16(512), s.Min)
	assert.Equal(t, uint16(512), s.Max)
}

func TestAccumulatorTwoLevelInput(t *testing.T) {
	var acc Accumulator
	acc.Add(Frame{Samples: []uint16{0, 1023, 0, 1023, 0, 1023, 0, 1023}})

	s := acc.Summary(3300)
	assert.InDelta(t, 1650.0, s.MeanMillivolts, 1e-9)
	assert.InDelta(t, 1650.0, s.RMSMillivolts, 1e-9)
	assert.InDelta(t, 1.0, s.EntropyBits, 1e-9, "a fair two-level source is one bit per sample")
}

func TestEmptySummary(t *testing.T) {
	var acc Accumulator
	s := acc.Summary(3300)
	assert.Zero(t, s.Samples)
	assert.Zero(t, s.MeanMillivolts)
}
