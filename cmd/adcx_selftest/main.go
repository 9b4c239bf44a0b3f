// cmd/adcx_selftest/main.go
// Bring-up test for the sampler and, implicitly, the hardware noise source:
// collect batches forever, print mean and RMS noise over USB serial, and
// draw each batch's waveform on an SSD1306 (128x64, I2C).
// Wiring:
//   noise source -> GP28 (ADC channel 2)
//   SSD1306 SDA/SCL -> I2C0 default pins

//go:build rp2040 || rp2350

package main

import (
	"image/color"
	"time"

	"machine"

	"tinygo.org/x/drivers/ssd1306"

	"github.com/jangala-dev/tinygo-adcx/adcx"
)

const noiseChannel = 2 // noise source input, GP28

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func main() {
	// Give the monitor time to attach.
	time.Sleep(3 * time.Second)

	println("adcx self-test starting")

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	machine.I2C0.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})
	display := ssd1306.NewI2C(machine.I2C0)
	display.Configure(ssd1306.Config{
		Width:    128,
		Height:   64,
		Address:  0x3C,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	display.ClearDisplay()

	adc := adcx.ADC0
	if err := adc.Configure(adcx.Config{Channel: noiseChannel}); err != nil {
		println("adc configure error:", err.Error())
		halt()
	}

	for batchNo := 0; ; batchNo++ {
		adc.Start()
		// Busy-poll: a batch takes ~12 ms at 22.05 kHz. If this never
		// completes the trigger or the ADC clock is dead; hanging here is
		// the diagnostic.
		for !adc.Full() {
		}

		samples := adc.Samples()
		stats := adcx.Analyze(samples)

		print("batch ")
		printUint(uint64(batchNo))
		println()
		printMillivolts("noise mean:", stats.MeanMillivolts)
		printMillivolts("noise rms: ", stats.NoiseMillivolts)

		drawWaveform(&display, samples)

		led.Set(!led.Get())
		time.Sleep(2 * time.Second)
	}
}

// drawWaveform plots one column per displayed sample, newest batch only.
func drawWaveform(d *ssd1306.Device, samples []uint16) {
	d.ClearBuffer()
	step := len(samples) / 128
	if step == 0 {
		step = 1
	}
	for x := 0; x < 128 && x*step < len(samples); x++ {
		v := samples[x*step]
		y := 63 - int16(uint32(v)*64/1024)
		d.SetPixel(int16(x), y, white)
	}
	d.Display()
}

// --- helpers (no fmt) ---

func printMillivolts(label string, mv float64) {
	c := int64(mv*100 + 0.5)
	print(label, " ")
	printUint(uint64(c / 100))
	print(".")
	frac := c % 100
	if frac < 10 {
		print("0")
	}
	printUint(uint64(frac))
	println(" mV")
}

func printUint(n uint64) {
	if n == 0 {
		print("0")
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	print(string(buf[i:]))
}

func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
