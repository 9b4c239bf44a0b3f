// Package serial opens the serial link to a device running one of the adcx
// streaming firmwares.
package serial

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// Config describes the link.
type Config struct {
	Device      string // e.g. /dev/ttyACM0
	Baud        int
	ReadTimeout time.Duration
}

// Port wraps the tarm/serial implementation.
type Port struct {
	port *serial.Port
}

// Open opens the serial port.
func Open(cfg Config) (*Port, error) {
	if cfg.Device == "" {
		return nil, fmt.Errorf("serial: device cannot be empty")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", cfg.Device, err)
	}

	return &Port{port: port}, nil
}

// Read reads data from the serial port.
func (p *Port) Read(b []byte) (int, error) {
	return p.port.Read(b)
}

// Write writes data to the serial port.
func (p *Port) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Close closes the serial port.
func (p *Port) Close() error {
	if p.port != nil {
		return p.port.Close()
	}
	return nil
}

// Flush discards unread input, so a session starts on a frame boundary
// rather than mid-line.
func (p *Port) Flush() error {
	return p.port.Flush()
}
