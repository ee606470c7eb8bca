//go:build !wasm

package serial

import (
	"errors"
	"fmt"
	"io"

	"github.com/tarm/serial"
)

// ErrNoConfig is returned by Open for a nil config.
var ErrNoConfig = errors.New("serial: config cannot be nil")

type nativePort struct {
	*serial.Port
}

// Read returns no data and no error when the read timeout expires. The
// tty reports a timed out read as end of file.
func (p nativePort) Read(b []byte) (int, error) {
	return readTimeout(p.Port, b)
}

func readTimeout(r io.Reader, b []byte) (int, error) {
	n, err := r.Read(b)
	if n == 0 && errors.Is(err, io.EOF) {
		return 0, nil
	}
	return n, err
}

// Open opens a serial port with tarm/serial.
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Device, err)
	}
	return nativePort{port}, nil
}
