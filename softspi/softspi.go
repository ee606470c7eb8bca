// Package softspi is a bit-banged SPI master on GPIO pins.
package softspi

import (
	"errors"
	"time"

	"github.com/JackieYan/cox/xgpio"
	"tinygo.org/x/drivers"
)

var (
	ErrInvalidMode    = errors.New("invalid SPI mode")
	ErrLengthMismatch = errors.New("tx and rx buffer lengths must match")
	ErrNoSCK          = errors.New("SCK pin required")
)

// Config selects the pins and timing of a bus. SDO and SDI are optional.
type Config struct {
	SCK xgpio.Pin
	SDO xgpio.Pin
	SDI xgpio.Pin

	// Mode is the SPI mode, 0 to 3.
	Mode uint8
	// Frequency is the clock rate in Hz. Zero clocks as fast as the pins
	// toggle.
	Frequency uint32
	LSBFirst  bool
}

// SPI is a configured bus.
type SPI struct {
	sck, sdo, sdi xgpio.Pin
	cpol, cpha    bool
	lsbFirst      bool
	halfPeriod    time.Duration
}

// New configures the pins through the registered xgpio driver and returns
// the bus with its clock idle.
func New(cfg Config) (*SPI, error) {
	if !cfg.SCK.IsValid() {
		return nil, ErrNoSCK
	}
	if cfg.Mode > 3 {
		return nil, ErrInvalidMode
	}
	s := &SPI{
		sck:      cfg.SCK,
		sdo:      cfg.SDO,
		sdi:      cfg.SDI,
		cpol:     cfg.Mode&2 != 0,
		cpha:     cfg.Mode&1 != 0,
		lsbFirst: cfg.LSBFirst,
	}
	if cfg.Frequency > 0 {
		s.halfPeriod = time.Duration(500000000/cfg.Frequency) * time.Nanosecond
	}

	if err := xgpio.SPinTypeGPIOOutput(s.sck); err != nil {
		return nil, err
	}
	if err := xgpio.SPinWrite(s.sck, s.cpol); err != nil {
		return nil, err
	}
	if s.sdo.IsValid() {
		if err := xgpio.SPinTypeGPIOOutput(s.sdo); err != nil {
			return nil, err
		}
		if err := xgpio.SPinWrite(s.sdo, false); err != nil {
			return nil, err
		}
	}
	if s.sdi.IsValid() {
		if err := xgpio.SPinTypeGPIOInput(s.sdi); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *SPI) wait() {
	if s.halfPeriod > 0 {
		time.Sleep(s.halfPeriod)
	}
}

func (s *SPI) out(bit bool) {
	if s.sdo.IsValid() {
		xgpio.SPinWrite(s.sdo, bit)
	}
}

func (s *SPI) in() bool {
	if !s.sdi.IsValid() {
		return false
	}
	v, _ := xgpio.SPinRead(s.sdi)
	return v
}

// Transfer shifts b out and returns the byte shifted in.
func (s *SPI) Transfer(b byte) (byte, error) {
	var rx byte
	for i := 0; i < 8; i++ {
		shift := 7 - i
		if s.lsbFirst {
			shift = i
		}
		bit := b&(1<<shift) != 0

		var sample bool
		if s.cpha {
			// Data changes on the leading edge, sampled on the trailing one.
			xgpio.SPinWrite(s.sck, !s.cpol)
			s.out(bit)
			s.wait()
			xgpio.SPinWrite(s.sck, s.cpol)
			sample = s.in()
			s.wait()
		} else {
			s.out(bit)
			s.wait()
			xgpio.SPinWrite(s.sck, !s.cpol)
			sample = s.in()
			s.wait()
			xgpio.SPinWrite(s.sck, s.cpol)
		}
		if sample {
			rx |= 1 << shift
		}
	}
	return rx, nil
}

// Tx writes w and reads into r. Either may be nil: a nil w sends zeros,
// a nil r discards what is read.
func (s *SPI) Tx(w, r []byte) error {
	n := len(w)
	switch {
	case w == nil:
		n = len(r)
	case r != nil && len(r) != len(w):
		return ErrLengthMismatch
	}
	for i := 0; i < n; i++ {
		var b byte
		if w != nil {
			b = w[i]
		}
		v, err := s.Transfer(b)
		if err != nil {
			return err
		}
		if r != nil {
			r[i] = v
		}
	}
	return nil
}

var _ drivers.SPI = (*SPI)(nil)
