// cmd/adcx_stream/main.go
// Streams sample batches over USB serial as one framed ASCII line per batch,
// for host-side analysis with host/cmd/noisestat:
//
//   B,<seq>,<v0>,...,<vN-1>,C,<sum16>\r\n
//
// where sum16 is the low 16 bits of the sum of all sample codes. The batch
// is copied out and the next one started before the line is written, so
// collection and transmission overlap.

//go:build rp2040 || rp2350

package main

import (
	"time"

	"machine"

	"github.com/jangala-dev/tinygo-adcx/adcx"
)

const noiseChannel = 2 // noise source input, GP28

func main() {
	// Give the monitor time to attach.
	time.Sleep(3 * time.Second)

	adc := adcx.ADC0
	if err := adc.Configure(adcx.Config{Channel: noiseChannel}); err != nil {
		println("adc configure error:", err.Error())
		halt()
	}

	var scratch [adcx.BatchSize]uint16
	seq := uint32(0)

	adc.Start()
	for {
		for !adc.Full() {
			time.Sleep(100 * time.Microsecond)
		}
		copy(scratch[:], adc.Samples())
		adc.Start() // collect the next batch while this one is sent
		writeFrame(seq, scratch[:])
		seq++
	}
}

func writeFrame(seq uint32, samples []uint16) {
	writeString("B,")
	writeUint(uint64(seq))
	var sum uint32
	for _, v := range samples {
		writeString(",")
		writeUint(uint64(v))
		sum += uint32(v)
	}
	writeString(",C,")
	writeUint(uint64(uint16(sum)))
	writeString("\r\n")
}

// --- serial helpers (no fmt) ---

func writeString(s string) {
	_, _ = machine.Serial.Write([]byte(s))
}

func writeUint(n uint64) {
	if n == 0 {
		writeString("0")
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	_, _ = machine.Serial.Write(buf[i:])
}

func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
