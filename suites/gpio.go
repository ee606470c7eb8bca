package suites

import (
	"github.com/JackieYan/cox/testkit"
	"github.com/JackieYan/cox/xcore"
	"github.com/JackieYan/cox/xgpio"
)

// GPIOEdge drives LoopOut and checks that the edges seen on LoopIn reach
// the port callback, once per edge.
type GPIOEdge struct {
	b *Board
}

func (c GPIOEdge) Name() string {
	return "xgpio, 001, gpio edge interrupt test"
}

func (c GPIOEdge) callback() xcore.EventCallback {
	port := c.b.LoopIn.Port()
	return func(cbData any, event uint32, param uint32, msgData any) uint32 {
		// Clear first: the write takes a few cycles to land.
		xgpio.PinIntClear(port, xgpio.PinSetOf(param))
		testkit.EmitToken('b')
		return 0
	}
}

func (c GPIOEdge) Setup(t *testkit.T) {
	out, in := c.b.LoopOut, c.b.LoopIn
	if !t.AssertNoError(xgpio.SPinTypeGPIOOutput(out), "output pin") {
		return
	}
	xgpio.SPinWrite(out, false)
	if !t.AssertNoError(xgpio.SPinTypeGPIOInput(in), "input pin") {
		return
	}
	t.AssertNoError(xgpio.PinIntCallbackInit(in.Port(), in.Mask(), c.callback()), "callback")
}

func (c GPIOEdge) Execute(t *testkit.T) {
	out, in := c.b.LoopOut, c.b.LoopIn
	budget := c.b.Budget

	if !t.AssertNoError(xgpio.SPinIntEnable(in, xgpio.RisingEdge), "rising edge enable") {
		return
	}
	xgpio.SPinWrite(out, true)
	if !t.AssertQBreak("b", " rising edge interrupt error!", budget) {
		return
	}
	// Falling edge must not trigger
	xgpio.SPinWrite(out, false)
	xgpio.SPinWrite(out, true)
	if !t.AssertQBreak("b", " rising edge re-arm error!", budget) {
		return
	}
	if !t.Assert(t.Tokens() == "", " falling edge triggered a rising edge interrupt!") {
		return
	}

	xgpio.SPinIntEnable(in, xgpio.BothEdges)
	xgpio.SPinWrite(out, false)
	xgpio.SPinWrite(out, true)
	if !t.AssertQBreak("bb", " both edges interrupt error!", budget) {
		return
	}

	xgpio.SPinIntDisable(in)
	xgpio.SPinWrite(out, false)
	t.Assert(t.Tokens() == "", " interrupt after disable!")
}

func (c GPIOEdge) TearDown(t *testkit.T) {
	xgpio.SPinIntDisable(c.b.LoopIn)
	xgpio.SPinTypeGPIOInput(c.b.LoopOut)
}
