package nuc122_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/xgpio"
)

func TestDirModeSetIsOneModify(t *testing.T) {
	chip, _ := newBoard(t, 0)
	before := chip.Cycle()

	if err := xgpio.DirModeSet(nuc122.PortA, xgpio.Pin10|xgpio.Pin11, xgpio.DirModeOut); err != nil {
		t.Fatalf("DirModeSet: %v", err)
	}
	if got := chip.Peek(nuc122.GPIOABase + nuc122.GPIOPMD); got != 0xFF5FFFFF {
		t.Errorf("PMD = 0x%08X, want 0xFF5FFFFF", got)
	}
	if d := chip.Cycle() - before; d != 2 {
		t.Errorf("DirModeSet spent %d cycles, want 2", d)
	}
}

func TestDirModeRoundTrip(t *testing.T) {
	newBoard(t, 0)

	modes := []xgpio.DirMode{
		xgpio.DirModeIn,
		xgpio.DirModeOut,
		xgpio.DirModeOD,
		xgpio.DirModeQB,
		xgpio.DirModeHW,
	}
	for _, m := range modes {
		if err := xgpio.SPinDirModeSet(nuc122.PC9, m); err != nil {
			t.Fatalf("set %v: %v", m, err)
		}
		got, err := xgpio.SPinDirModeGet(nuc122.PC9)
		if err != nil || got != m {
			t.Errorf("set %v: read back %v, %v", m, got, err)
		}
	}
	if xgpio.DirModeHW != xgpio.DirModeQB {
		t.Error("DirModeHW and DirModeQB differ")
	}
}

func TestDirModeSetLeavesOtherPins(t *testing.T) {
	chip, _ := newBoard(t, 0)
	rng := rand.New(rand.NewSource(1))

	codes := []struct {
		mode xgpio.DirMode
		code uint32
	}{
		{xgpio.DirModeIn, nuc122.PMDInput},
		{xgpio.DirModeOut, nuc122.PMDOutput},
		{xgpio.DirModeOD, nuc122.PMDOpenDrain},
		{xgpio.DirModeQB, nuc122.PMDQuasi},
	}
	ports := []xgpio.Port{nuc122.PortA, nuc122.PortB, nuc122.PortC, nuc122.PortD}
	for _, port := range ports {
		bonded, err := nuc122.BondedPins(port)
		if err != nil {
			t.Fatalf("BondedPins: %v", err)
		}
		addr := uint32(port) + nuc122.GPIOPMD
		for i := 0; i < 256; i++ {
			pins := bonded & xgpio.PinSet(rng.Uint32())
			if pins == 0 {
				continue
			}
			c := codes[rng.Intn(len(codes))]
			seed := rng.Uint32()
			chip.Poke(addr, seed)

			if err := xgpio.DirModeSet(port, pins, c.mode); err != nil {
				t.Fatalf("DirModeSet(%s, 0x%04X, %v): %v", nuc122.PortName(port), uint16(pins), c.mode, err)
			}
			got := chip.Peek(addr)
			for p := uint8(0); p < 16; p++ {
				field := got >> (2 * p) & 0x3
				want := seed >> (2 * p) & 0x3
				if pins.Has(p) {
					want = c.code
				}
				if field != want {
					t.Errorf("%s pins 0x%04X mode %v seed 0x%08X: pin %d field = %d, want %d",
						nuc122.PortName(port), uint16(pins), c.mode, seed, p, field, want)
				}
			}
		}
	}
}

func TestDirModeGetMixed(t *testing.T) {
	newBoard(t, 0)
	xgpio.SPinDirModeSet(nuc122.PA10, xgpio.DirModeOut)
	xgpio.SPinDirModeSet(nuc122.PA11, xgpio.DirModeIn)

	if _, err := xgpio.DirModeGet(nuc122.PortA, xgpio.Pin10|xgpio.Pin11); !errors.Is(err, nuc122.ErrMixedModes) {
		t.Errorf("DirModeGet error = %v, want ErrMixedModes", err)
	}
	xgpio.SPinDirModeSet(nuc122.PA11, xgpio.DirModeOut)
	if mode, err := xgpio.DirModeGet(nuc122.PortA, xgpio.Pin10|xgpio.Pin11); err != nil || mode != xgpio.DirModeOut {
		t.Errorf("DirModeGet = %v, %v; want out", mode, err)
	}
}

func TestInvalidPinsFailFast(t *testing.T) {
	chip, _ := newBoard(t, 0)
	pmd := chip.Peek(nuc122.GPIOABase + nuc122.GPIOPMD)
	before := chip.Cycle()

	testCases := []struct {
		name string
		err  error
		call func() error
	}{
		{"unbonded pin", nuc122.ErrInvalidPin, func() error {
			return xgpio.DirModeSet(nuc122.PortA, xgpio.Pin0|xgpio.Pin10, xgpio.DirModeOut)
		}},
		{"empty set", nuc122.ErrInvalidPin, func() error {
			return xgpio.PinWrite(nuc122.PortB, 0, true)
		}},
		{"misaligned port", nuc122.ErrInvalidPort, func() error {
			return xgpio.DirModeSet(xgpio.Port(0x50004010), xgpio.Pin0, xgpio.DirModeOut)
		}},
		{"port E", nuc122.ErrInvalidPort, func() error {
			return xgpio.PinIntEnable(xgpio.Port(0x50004100), xgpio.Pin0, xgpio.RisingEdge)
		}},
		{"bad mode", nuc122.ErrInvalidMode, func() error {
			return xgpio.DirModeSet(nuc122.PortA, xgpio.Pin10, xgpio.DirMode(9))
		}},
		{"bad trigger", nuc122.ErrInvalidTrigger, func() error {
			return xgpio.PinIntEnable(nuc122.PortA, xgpio.Pin10, xgpio.IntType(9))
		}},
	}
	for _, tc := range testCases {
		if err := tc.call(); !errors.Is(err, tc.err) {
			t.Errorf("%s: error = %v, want %v", tc.name, err, tc.err)
		}
	}
	if chip.Cycle() != before {
		t.Errorf("rejected calls spent %d bus cycles", chip.Cycle()-before)
	}
	if chip.Peek(nuc122.GPIOABase+nuc122.GPIOPMD) != pmd {
		t.Error("PMD changed")
	}
}

func TestPinWriteRead(t *testing.T) {
	chip, _ := newBoard(t, 0)
	xgpio.SPinTypeGPIOOutput(nuc122.PA10)

	xgpio.SPinWrite(nuc122.PA10, false)
	if got := chip.Peek(nuc122.GPIOABase + nuc122.GPIODOUT); got != 0xFBFF {
		t.Errorf("DOUT = 0x%04X, want 0xFBFF", got)
	}
	if high, _ := xgpio.SPinRead(nuc122.PA10); high {
		t.Error("PA10 reads high after writing low")
	}
	xgpio.SPinWrite(nuc122.PA10, true)
	if high, _ := xgpio.SPinRead(nuc122.PA10); !high {
		t.Error("PA10 reads low after writing high")
	}
}

func TestPinMask(t *testing.T) {
	_, g := newBoard(t, 0)

	if err := g.PinMaskSet(nuc122.PortA, xgpio.Pin11); err != nil {
		t.Fatalf("PinMaskSet: %v", err)
	}
	xgpio.PinWrite(nuc122.PortA, xgpio.Pin10|xgpio.Pin11, false)

	dout, _ := g.PortDoutGet(nuc122.PortA)
	if dout != 0xFBFF {
		t.Errorf("DOUT = 0x%04X, want 0xFBFF", uint16(dout))
	}
	mask, _ := g.PortMaskGet(nuc122.PortA)
	if mask != xgpio.Pin11 {
		t.Errorf("DMASK = 0x%04X, want 0x0800", uint16(mask))
	}
}

func TestDebounce(t *testing.T) {
	chip, g := newBoard(t, 0)

	if err := g.DebounceTimeSet(nuc122.Debounce10K, 5); err != nil {
		t.Fatalf("DebounceTimeSet: %v", err)
	}
	if got := chip.Peek(nuc122.GPIODBNCECON); got != 0x35 {
		t.Errorf("DBNCECON = 0x%02X, want 0x35", got)
	}
	src, sel := g.DebounceTimeGet()
	if src != nuc122.Debounce10K || sel != 5 {
		t.Errorf("DebounceTimeGet = %d, %d", src, sel)
	}
	if err := g.DebounceTimeSet(nuc122.DebounceHCLK, 16); !errors.Is(err, nuc122.ErrInvalidDebounce) {
		t.Errorf("DebounceTimeSet(16) error = %v", err)
	}

	g.DebounceEnable(nuc122.PortB, xgpio.Pin3|xgpio.Pin4)
	g.DebounceDisable(nuc122.PortB, xgpio.Pin4)
	if got := chip.Peek(nuc122.GPIOBBase + nuc122.GPIODBEN); got != 0x08 {
		t.Errorf("DBEN = 0x%02X, want 0x08", got)
	}
}

func TestPinToPeripheralID(t *testing.T) {
	newBoard(t, 0)
	id, err := xgpio.SPinToPeripheralID(nuc122.PC3)
	if err != nil || id != nuc122.PeripheralGPIOC {
		t.Errorf("SPinToPeripheralID(PC3) = %d, %v", id, err)
	}
	port, err := xgpio.SPinToPort(nuc122.PD1)
	if err != nil || port != nuc122.PortD {
		t.Errorf("SPinToPort(PD1) = 0x%08X, %v", uint32(port), err)
	}
	if _, err := xgpio.SPinToPin(xgpio.MakePin(nuc122.PortA, 2)); !errors.Is(err, nuc122.ErrInvalidPin) {
		t.Errorf("SPinToPin(PA2) error = %v", err)
	}
}
