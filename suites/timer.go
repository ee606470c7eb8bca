package suites

import (
	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/testkit"
	"github.com/JackieYan/cox/xgpio"
)

func timerCallback(cbData any, event uint32, param uint32, msgData any) uint32 {
	testkit.EmitToken('a')
	return 0
}

// TimerInterrupt checks that each timer's compare match reaches its
// callback.
type TimerInterrupt struct {
	b *Board
}

func (c TimerInterrupt) Name() string {
	return "xtimer, 001, timer interrupt test"
}

func (c TimerInterrupt) Setup(t *testkit.T) {
	for _, tm := range c.b.Timers {
		if !t.AssertNoError(c.b.SysCtl.PeripheralEnable(tm.PeripheralID()), "timer clock") {
			return
		}
	}
	// Timer capture pins are muxed for the whole suite, as a PWM test
	// would route its outputs.
	t.AssertNoError(xgpio.SPinTypeTimer(xgpio.TIMCCP0, nuc122.PB8), "TIMCCP0 pin")
}

func (c TimerInterrupt) Execute(t *testkit.T) {
	for _, tm := range c.b.Timers {
		err := tm.Configure(nuc122.TimerPeriodic, c.b.TimerPrescale, c.b.TimerCompare)
		if !t.AssertNoError(err, "timer configure") {
			return
		}
		tm.IntCallbackInit(timerCallback)
		tm.IntEnable()
		c.b.NVIC.Enable(tm.IRQ())
		tm.Start()

		ok := t.AssertQBreak("a", " timer interrupt test error!", c.b.Budget)
		tm.Stop()
		tm.IntDisable()
		c.b.NVIC.Disable(tm.IRQ())
		if !ok {
			return
		}
	}
}

func (c TimerInterrupt) TearDown(t *testkit.T) {
	for _, tm := range c.b.Timers {
		tm.Reset()
		c.b.SysCtl.PeripheralDisable(tm.PeripheralID())
	}
	xgpio.SPinTypeGPIOInput(nuc122.PB8)
}
