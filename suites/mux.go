package suites

import (
	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/testkit"
	"github.com/JackieYan/cox/xgpio"
)

// PinMux routes every peripheral signal to each of its pins and checks the
// multiplexer registers.
type PinMux struct {
	b *Board
}

func (c PinMux) Name() string {
	return "xgpio, 002, pin multiplexer test"
}

func (c PinMux) Setup(t *testkit.T) {}

func spinType(fn xgpio.Function) func(xgpio.Signal, xgpio.Pin) error {
	switch fn {
	case xgpio.FunctionI2C:
		return xgpio.SPinTypeI2C
	case xgpio.FunctionPWM:
		return xgpio.SPinTypePWM
	case xgpio.FunctionSPI:
		return xgpio.SPinTypeSPI
	case xgpio.FunctionTimer:
		return xgpio.SPinTypeTimer
	case xgpio.FunctionUART:
		return xgpio.SPinTypeUART
	case xgpio.FunctionExtInt:
		return xgpio.SPinTypeEXTINT
	}
	return nil
}

func (c PinMux) Execute(t *testkit.T) {
	bus := c.b.Bus
	for _, e := range nuc122.MuxTable() {
		if c.b.reserved(e.Pin) {
			continue
		}
		fn, _ := e.Signal.Function()
		name := nuc122.PinName(e.Pin) + " " + string(e.Signal)
		if !t.AssertNoError(spinType(fn)(e.Signal, e.Pin), name) {
			return
		}
		mfp := bus.Read32(nuc122.MFPAddr(e.Config.PortIndex()))
		if !t.Assert(mfp&uint32(e.Pin.Mask()) != 0, name+" MFP bit not set") {
			return
		}
		if e.Config.HasAlt() {
			alt := bus.Read32(nuc122.GCRBase + nuc122.GCRALTMFP)
			got := alt >> e.Config.AltShift() & 1
			if !t.Assert(got == e.Config.AltValue(), name+" ALT_MFP bit wrong") {
				return
			}
		}
	}

	err := xgpio.SPinTypeUART(xgpio.UART0RX, nuc122.PB8)
	t.Assert(err != nil, " unsupported pairing accepted!")
}

func (c PinMux) TearDown(t *testkit.T) {
	for _, e := range nuc122.MuxTable() {
		if !c.b.reserved(e.Pin) {
			xgpio.SPinTypeGPIOInput(e.Pin)
		}
	}
}

// All returns the board suites in run order.
func All(b *Board) []testkit.Case {
	return []testkit.Case{
		TimerInterrupt{b},
		GPIOEdge{b},
		PinMux{b},
	}
}
