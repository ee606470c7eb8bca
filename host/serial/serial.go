// Package serial opens the UART a board reports on.
package serial

import (
	"io"
	"time"
)

// Port is an open serial port.
type Port interface {
	io.ReadWriteCloser

	// Flush discards data received but not yet read.
	Flush() error
}

// Config holds serial port settings.
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	Baud int

	// ReadTimeout bounds a single Read. Zero blocks.
	ReadTimeout time.Duration
}

// DefaultBaud is the UART0 rate of the board firmware.
const DefaultBaud = 115200

// DefaultConfig returns the settings the board firmware uses.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        DefaultBaud,
		ReadTimeout: 100 * time.Millisecond,
	}
}
