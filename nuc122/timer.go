package nuc122

import (
	"github.com/JackieYan/cox/reg"
	"github.com/JackieYan/cox/xcore"
)

// TimerMode is the counting mode of a timer.
type TimerMode uint32

const (
	TimerOneShot    TimerMode = 0
	TimerPeriodic   TimerMode = 1
	TimerToggle     TimerMode = 2
	TimerContinuous TimerMode = 3
)

func (m TimerMode) String() string {
	switch m {
	case TimerOneShot:
		return "one-shot"
	case TimerPeriodic:
		return "periodic"
	case TimerToggle:
		return "toggle"
	case TimerContinuous:
		return "continuous"
	}
	return "unknown"
}

// Timer drives one of the four 24-bit timers.
type Timer struct {
	bus      reg.Bus
	n        int
	base     uint32
	callback xcore.EventCallback
}

// NewTimer returns the driver of timer n (0..3).
func NewTimer(bus reg.Bus, n int) (*Timer, error) {
	base := TimerBase(n)
	if base == 0 {
		return nil, ErrInvalidTimer
	}
	return &Timer{bus: bus, n: n, base: base}, nil
}

// Index returns the timer number.
func (t *Timer) Index() int {
	return t.n
}

// IRQ returns the timer's interrupt line.
func (t *Timer) IRQ() xcore.IRQ {
	return IRQTMR0 + xcore.IRQ(t.n)
}

// PeripheralID returns the timer's clock gate.
func (t *Timer) PeripheralID() xcore.PeripheralID {
	return PeripheralTMR0 + xcore.PeripheralID(t.n)
}

// Configure stops the timer and sets mode, prescaler and compare value.
// The counter ticks once every prescale+1 timer clocks and matches when it
// reaches compare.
func (t *Timer) Configure(mode TimerMode, prescale uint8, compare uint32) error {
	if mode > TimerContinuous {
		return ErrInvalidTimer
	}
	if compare > TCMPRTCMP.Mask || compare < 2 {
		return ErrCompareRange
	}
	v := TCSRMode.Put(0, uint32(mode))
	v = TCSRPrescale.Put(v, uint32(prescale))
	v |= TCSRCTDREN
	t.bus.Write32(t.base+TimerTCSR, v)
	t.bus.Write32(t.base+TimerTCMPR, TCMPRTCMP.Put(0, compare))
	return nil
}

// Mode returns the configured counting mode.
func (t *Timer) Mode() TimerMode {
	return TimerMode(TCSRMode.Read(t.bus, t.base+TimerTCSR))
}

// Start enables counting.
func (t *Timer) Start() {
	reg.SetBits(t.bus, t.base+TimerTCSR, TCSRCEN)
}

// Stop disables counting. The counter keeps its value.
func (t *Timer) Stop() {
	reg.ClearBits(t.bus, t.base+TimerTCSR, TCSRCEN)
}

// Reset stops the timer and clears the counter and prescaler.
func (t *Timer) Reset() {
	reg.Modify(t.bus, t.base+TimerTCSR, TCSRCEN, TCSRCRST)
}

// Running reports whether the counter is active.
func (t *Timer) Running() bool {
	return reg.HasBits(t.bus, t.base+TimerTCSR, TCSRCACT)
}

// Counter returns the current counter value.
func (t *Timer) Counter() uint32 {
	return TDRData.Read(t.bus, t.base+TimerTDR)
}

// IntEnable enables the compare-match interrupt.
func (t *Timer) IntEnable() {
	reg.SetBits(t.bus, t.base+TimerTCSR, TCSRIE)
}

// IntDisable disables the compare-match interrupt.
func (t *Timer) IntDisable() {
	reg.ClearBits(t.bus, t.base+TimerTCSR, TCSRIE)
}

// IntStatus reports whether a compare match is pending.
func (t *Timer) IntStatus() bool {
	return reg.HasBits(t.bus, t.base+TimerTISR, TISRTIF)
}

// IntClear clears a pending compare match. TISR is write-one-to-clear.
func (t *Timer) IntClear() {
	t.bus.Write32(t.base+TimerTISR, TISRTIF)
}

// IntCallbackInit registers the interrupt callback. It receives the TISR
// status bits in event.
func (t *Timer) IntCallbackInit(cb xcore.EventCallback) {
	reg.Critical(func() {
		t.callback = cb
	})
}

// HandleIRQ services the timer's interrupt line.
func (t *Timer) HandleIRQ() {
	status := t.bus.Read32(t.base+TimerTISR) & TISRTIF
	if status == 0 {
		return
	}
	xcore.RecordDispatch(t.IRQ(), t.base, status)
	if t.callback != nil {
		t.callback(nil, status, 0, nil)
	}
	t.bus.Write32(t.base+TimerTISR, status)
}
