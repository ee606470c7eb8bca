package nuc122_test

import (
	"errors"
	"testing"

	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/nuc122/sim"
)

func newTimer(t *testing.T, n int) (*sim.Chip, *nuc122.Timer) {
	t.Helper()
	chip := sim.New(sim.Options{})
	tm, err := nuc122.NewTimer(chip, n)
	if err != nil {
		t.Fatalf("NewTimer(%d): %v", n, err)
	}
	chip.AttachTimer(tm)
	return chip, tm
}

func TestTimerConfigure(t *testing.T) {
	chip, tm := newTimer(t, 2)

	if err := tm.Configure(nuc122.TimerPeriodic, 11, 1000); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	tcsr := chip.Peek(nuc122.TIMER2Base + nuc122.TimerTCSR)
	if tcsr != nuc122.TCSRModePer|nuc122.TCSRCTDREN|11 {
		t.Errorf("TCSR = 0x%08X", tcsr)
	}
	if got := chip.Peek(nuc122.TIMER2Base + nuc122.TimerTCMPR); got != 1000 {
		t.Errorf("TCMPR = %d, want 1000", got)
	}
	if tm.Mode() != nuc122.TimerPeriodic {
		t.Errorf("Mode() = %v", tm.Mode())
	}
	if tm.IRQ() != nuc122.IRQTMR2 || tm.PeripheralID() != nuc122.PeripheralTMR2 {
		t.Errorf("IRQ/ID = %d/%d", tm.IRQ(), tm.PeripheralID())
	}
}

func TestTimerRejects(t *testing.T) {
	if _, err := nuc122.NewTimer(sim.New(sim.Options{}), 4); !errors.Is(err, nuc122.ErrInvalidTimer) {
		t.Errorf("NewTimer(4) error = %v", err)
	}
	_, tm := newTimer(t, 0)
	if err := tm.Configure(nuc122.TimerOneShot, 0, 0x01000000); !errors.Is(err, nuc122.ErrCompareRange) {
		t.Errorf("Configure(0x01000000) error = %v", err)
	}
	if err := tm.Configure(nuc122.TimerMode(4), 0, 100); !errors.Is(err, nuc122.ErrInvalidTimer) {
		t.Errorf("Configure(mode 4) error = %v", err)
	}
}

func TestTimerPeriodicInterrupt(t *testing.T) {
	chip, tm := newTimer(t, 0)
	nvic := nuc122.NewNVIC(chip)
	var events []uint32
	tm.IntCallbackInit(func(cbData any, event uint32, param uint32, msgData any) uint32 {
		events = append(events, event)
		return 0
	})
	tm.Configure(nuc122.TimerPeriodic, 0, 5)
	tm.IntEnable()
	nvic.Enable(tm.IRQ())
	tm.Start()

	chip.Advance(3)
	if c := tm.Counter(); c != 3 {
		t.Errorf("Counter() = %d, want 3", c)
	}
	chip.Advance(2)
	if len(events) != 1 || events[0] != nuc122.TISRTIF {
		t.Fatalf("events = %v, want [1]", events)
	}
	if tm.IntStatus() {
		t.Error("TIF still set after dispatch")
	}
	chip.Advance(5)
	if len(events) != 2 {
		t.Errorf("events after second period = %d, want 2", len(events))
	}
	if !tm.Running() {
		t.Error("periodic timer stopped")
	}
}

func TestTimerPrescale(t *testing.T) {
	chip, tm := newTimer(t, 1)
	tm.Configure(nuc122.TimerPeriodic, 1, 2)
	tm.Start()

	chip.Advance(3)
	if tm.IntStatus() {
		t.Fatal("match after 3 clocks with prescale 1 and compare 2")
	}
	chip.Advance(1)
	if !tm.IntStatus() {
		t.Fatal("no match after 4 clocks")
	}
	tm.IntClear()
	if tm.IntStatus() {
		t.Error("IntClear left TIF set")
	}
}

func TestTimerOneShotAndReset(t *testing.T) {
	chip, tm := newTimer(t, 3)
	tm.Configure(nuc122.TimerOneShot, 0, 4)
	tm.Start()
	if !tm.Running() {
		t.Fatal("timer not running after Start")
	}
	chip.Advance(4)
	if tm.Running() {
		t.Error("one-shot timer still running after match")
	}

	tm.Configure(nuc122.TimerContinuous, 0, 100)
	tm.Start()
	chip.Advance(10)
	tm.Reset()
	if tm.Running() || tm.Counter() != 0 {
		t.Errorf("after Reset: running=%v counter=%d", tm.Running(), tm.Counter())
	}
}

func TestTimerIntDisable(t *testing.T) {
	chip, tm := newTimer(t, 0)
	nuc122.NewNVIC(chip).Enable(tm.IRQ())
	calls := 0
	tm.IntCallbackInit(func(cbData any, event uint32, param uint32, msgData any) uint32 {
		calls++
		return 0
	})
	tm.Configure(nuc122.TimerPeriodic, 0, 2)
	tm.IntEnable()
	tm.IntDisable()
	tm.Start()
	chip.Advance(2)

	if calls != 0 {
		t.Errorf("callback ran %d times with the interrupt disabled", calls)
	}
	if !tm.IntStatus() {
		t.Error("TIF not latched")
	}
}

func TestNVIC(t *testing.T) {
	chip := sim.New(sim.Options{})
	n := nuc122.NewNVIC(chip)

	n.Enable(nuc122.IRQGPAB)
	n.Enable(nuc122.IRQTMR1)
	if !n.Enabled(nuc122.IRQGPAB) || !n.Enabled(nuc122.IRQTMR1) {
		t.Fatal("lines not enabled")
	}
	n.Disable(nuc122.IRQGPAB)
	if n.Enabled(nuc122.IRQGPAB) || !n.Enabled(nuc122.IRQTMR1) {
		t.Errorf("ISER = 0x%08X", chip.Peek(nuc122.NVICISER))
	}
}

func TestSysCtl(t *testing.T) {
	chip := sim.New(sim.Options{})
	s := nuc122.NewSysCtl(chip)

	if err := s.PeripheralEnable(nuc122.PeripheralTMR0); err != nil {
		t.Fatalf("enable TMR0: %v", err)
	}
	s.PeripheralEnable(nuc122.PeripheralPWM01)
	if got := chip.Peek(nuc122.CLKBase + nuc122.CLKAPBCLK); got != 0x00100004 {
		t.Errorf("APBCLK = 0x%08X, want 0x00100004", got)
	}
	s.PeripheralDisable(nuc122.PeripheralTMR0)
	if s.PeripheralEnabled(nuc122.PeripheralTMR0) || !s.PeripheralEnabled(nuc122.PeripheralPWM01) {
		t.Error("wrong gate state after disable")
	}

	if err := s.PeripheralEnable(nuc122.PeripheralGPIOB); err != nil {
		t.Errorf("enable GPIOB: %v", err)
	}
	if !s.PeripheralEnabled(nuc122.PeripheralGPIOB) {
		t.Error("GPIO reported gated")
	}
	if err := s.PeripheralEnable(6); !errors.Is(err, nuc122.ErrInvalidPeripheral) {
		t.Errorf("enable 6 error = %v", err)
	}
}
