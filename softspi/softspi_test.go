package softspi_test

import (
	"bytes"
	"testing"

	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/nuc122/sim"
	"github.com/JackieYan/cox/softspi"
	"github.com/JackieYan/cox/xgpio"
)

// newBus wires SDO back to SDI and mirrors SCK onto PD0, where rising
// edges are counted.
func newBus(t *testing.T, mode uint8, lsb bool) (*softspi.SPI, *int) {
	t.Helper()
	chip := sim.New(sim.Options{})
	g := nuc122.NewGPIO(chip, nuc122.NewNVIC(chip))
	chip.AttachGPIO(g)
	xgpio.SetDriver(g)
	t.Cleanup(func() { xgpio.SetDriver(nil) })

	chip.Link(nuc122.PC3, nuc122.PC2)
	chip.Link(nuc122.PC1, nuc122.PD0)

	s, err := softspi.New(softspi.Config{
		SCK:      nuc122.PC1,
		SDO:      nuc122.PC3,
		SDI:      nuc122.PC2,
		Mode:     mode,
		LSBFirst: lsb,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	edges := new(int)
	xgpio.SPinTypeGPIOInput(nuc122.PD0)
	xgpio.PinIntCallbackInit(nuc122.PortD, xgpio.Pin0, func(cbData any, event uint32, param uint32, msgData any) uint32 {
		*edges++
		return 0
	})
	if err := xgpio.SPinIntEnable(nuc122.PD0, xgpio.RisingEdge); err != nil {
		t.Fatalf("SPinIntEnable: %v", err)
	}
	return s, edges
}

func TestLoopbackModes(t *testing.T) {
	for mode := uint8(0); mode < 4; mode++ {
		s, edges := newBus(t, mode, false)
		for _, b := range []byte{0x00, 0xA5, 0x3C, 0xFF} {
			got, err := s.Transfer(b)
			if err != nil {
				t.Fatalf("mode %d: Transfer: %v", mode, err)
			}
			if got != b {
				t.Errorf("mode %d: Transfer(0x%02X) = 0x%02X", mode, b, got)
			}
		}
		if *edges != 32 {
			t.Errorf("mode %d: %d rising SCK edges, want 32", mode, *edges)
		}
	}
}

func TestClockIdleLevel(t *testing.T) {
	for _, tc := range []struct {
		mode uint8
		idle bool
	}{{0, false}, {1, false}, {2, true}, {3, true}} {
		s, _ := newBus(t, tc.mode, false)
		s.Transfer(0x81)
		if got, _ := xgpio.SPinRead(nuc122.PC1); got != tc.idle {
			t.Errorf("mode %d: SCK idles %v, want %v", tc.mode, got, tc.idle)
		}
	}
}

func TestTx(t *testing.T) {
	s, _ := newBus(t, 0, true)

	w := []byte{0x01, 0x80, 0x5A}
	r := make([]byte, len(w))
	if err := s.Tx(w, r); err != nil {
		t.Fatalf("Tx: %v", err)
	}
	if !bytes.Equal(r, w) {
		t.Errorf("read % X, want % X", r, w)
	}

	r = make([]byte, 2)
	if err := s.Tx(nil, r); err != nil {
		t.Fatalf("Tx(nil, r): %v", err)
	}
	if !bytes.Equal(r, []byte{0, 0}) {
		t.Errorf("read % X, want 00 00", r)
	}

	if err := s.Tx(w, make([]byte, 1)); err != softspi.ErrLengthMismatch {
		t.Errorf("Tx mismatched = %v, want ErrLengthMismatch", err)
	}
}

func TestNewRejects(t *testing.T) {
	chip := sim.New(sim.Options{})
	xgpio.SetDriver(nuc122.NewGPIO(chip, nil))
	defer xgpio.SetDriver(nil)

	if _, err := softspi.New(softspi.Config{Mode: 0}); err != softspi.ErrNoSCK {
		t.Errorf("no SCK: err = %v", err)
	}
	if _, err := softspi.New(softspi.Config{SCK: nuc122.PC1, Mode: 4}); err != softspi.ErrInvalidMode {
		t.Errorf("mode 4: err = %v", err)
	}
	bad := xgpio.MakePin(nuc122.PortA, 0)
	if _, err := softspi.New(softspi.Config{SCK: bad}); err != nuc122.ErrInvalidPin {
		t.Errorf("unbonded SCK: err = %v", err)
	}
}
