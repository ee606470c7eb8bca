package board

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/nuc122/sim"
	"github.com/JackieYan/cox/suites"
	"github.com/JackieYan/cox/xgpio"
)

func TestDefaultBoard(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if c.Board != "nu-lb-nuc122" {
		t.Errorf("Board = %q", c.Board)
	}
	if *c.Timer.Prescale != 11 || c.Timer.Compare != 1000 || c.Budget != DefaultBudget {
		t.Errorf("timer/budget = %d/%d/%d", *c.Timer.Prescale, c.Timer.Compare, c.Budget)
	}
}

func TestApplyDefaults(t *testing.T) {
	c, err := Parse([]byte("board: x\nloopback: {out: PA10, in: PB3}\ntimer: {prescale: 0}\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *c.Timer.Prescale != 0 {
		t.Errorf("explicit prescale 0 replaced by %d", *c.Timer.Prescale)
	}
	if c.Timer.Compare != DefaultCompare {
		t.Errorf("Compare = %d, want %d", c.Timer.Compare, DefaultCompare)
	}
	if c.Pins == nil {
		t.Error("Pins left nil")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateReportsEverything(t *testing.T) {
	c, err := Parse([]byte(`
reserved: [PB0, PB3]
loopback: {out: PA10, in: PB3}
timer: {compare: 1}
pins:
  PA0: in
  PA11: UART0RX
  pa10: i2c0sda
  PB10: SPI0CS
  PC0: SPI0CS
  PC1: bogus
debounce: {source: lse, select: 16}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	err = c.Validate()
	if err == nil {
		t.Fatal("Validate accepted a broken board")
	}
	for _, want := range []error{
		ErrEmptyBoard,
		nuc122.ErrInvalidPin,
		nuc122.ErrUnsupportedPairing,
		ErrUnknownAssignment,
		ErrDuplicateSignal,
		ErrLoopbackReserved,
		ErrLoopbackAssigned,
		nuc122.ErrCompareRange,
		ErrDebounceSource,
		nuc122.ErrInvalidDebounce,
	} {
		if !errors.Is(err, want) {
			t.Errorf("missing %v in:\n%v", want, err)
		}
	}
	if !strings.Contains(err.Error(), "SPI0CS on PB10 and PC0") {
		t.Errorf("duplicate not named in order:\n%v", err)
	}
}

func TestLoopbackDistinct(t *testing.T) {
	c, _ := Parse([]byte("board: x\nloopback: {out: PB3, in: pb3}\n"))
	if err := c.Validate(); !errors.Is(err, ErrLoopback) {
		t.Errorf("Validate = %v, want ErrLoopback", err)
	}
}

func TestApply(t *testing.T) {
	chip := sim.New(sim.Options{})
	g := nuc122.NewGPIO(chip, nuc122.NewNVIC(chip))

	c, err := Parse([]byte(`
board: test
loopback: {out: PA10, in: PB3}
pins:
  PA10: out
  PB4: SPI1CS
  PB9: spi1cs
debounce: {source: 10k, select: 4, pins: [PB14]}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	err = c.Apply(g)
	if !errors.Is(err, ErrDuplicateSignal) {
		t.Fatalf("Apply = %v, want ErrDuplicateSignal", err)
	}
	if got := chip.Peek(nuc122.MFPAddr(1)); got != 0 {
		t.Errorf("GPB_MFP = 0x%08X after a rejected Apply, want 0", got)
	}

	delete(c.Pins, "PB9")
	if err := c.Apply(g); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if mode, _ := g.DirModeGet(nuc122.PortA, xgpio.Pin10); mode != xgpio.DirModeOut {
		t.Errorf("PA10 mode = %v, want output", mode)
	}
	if chip.Peek(nuc122.MFPAddr(1))&(1<<4) == 0 {
		t.Error("PB4 MFP bit not set")
	}
	src, sel := g.DebounceTimeGet()
	if src != nuc122.Debounce10K || sel != 4 {
		t.Errorf("debounce = %d/%d, want 10K/4", src, sel)
	}
	if chip.Peek(nuc122.PortBase(1)+nuc122.GPIODBEN)&(1<<14) == 0 {
		t.Error("PB14 debounce not enabled")
	}
}

func TestLoadAndConfigure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	data := "board: jig\nreserved: [PB0]\nloopback: {out: PC3, in: PC2}\ntimer: {prescale: 0, compare: 50}\nbudget: 500\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	chip := sim.New(sim.Options{})
	b := suites.NewBoard(chip)
	defer xgpio.SetDriver(nil)
	if err := c.Configure(b); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if b.LoopOut != nuc122.PC3 || b.LoopIn != nuc122.PC2 {
		t.Errorf("loopback = %s/%s", nuc122.PinName(b.LoopOut), nuc122.PinName(b.LoopIn))
	}
	if len(b.Reserved) != 1 || b.Reserved[0] != nuc122.PB0 {
		t.Errorf("Reserved = %v", b.Reserved)
	}
	if b.TimerPrescale != 0 || b.TimerCompare != 50 || b.Budget != 500 {
		t.Errorf("timing = %d/%d/%d", b.TimerPrescale, b.TimerCompare, b.Budget)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
