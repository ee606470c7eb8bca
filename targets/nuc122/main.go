//go:build tinygo && nuc122

// Firmware running the board suites on an NU-LB-NUC122 and reporting over
// UART0 at 115200 baud. Follow it with coxmon monitor.
package main

import (
	"runtime/interrupt"

	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/protocol"
	"github.com/JackieYan/cox/reg"
	"github.com/JackieYan/cox/suites"
	"github.com/JackieYan/cox/testkit"
	"github.com/JackieYan/cox/xcore"
	"github.com/JackieYan/cox/xgpio"
)

const boardName = "nu-lb-nuc122"

var board *suites.Board

func main() {
	bus := reg.MMIO{}
	board = suites.NewBoard(bus)

	board.SysCtl.PeripheralEnable(nuc122.PeripheralUART0)
	xgpio.SPinTypeUART(xgpio.UART0RX, nuc122.PB0)
	xgpio.SPinTypeUART(xgpio.UART0TX, nuc122.PB1)
	uart := newReportUART(bus, 115200)
	enc := protocol.NewEncoder(uart)

	xcore.SetDebugWriter(func(s string) { enc.Log(s) })
	installHandlers()

	enc.Hello(boardName)
	runner := testkit.NewRunner(enc, nil)
	runner.OnFinish(func(res testkit.Result) {
		// Dispatch trace goes out ahead of the summary
		if res.OK() {
			return
		}
		for _, ev := range xcore.TraceEvents() {
			enc.Trace(uint32(ev.IRQ), ev.Source, ev.Status)
		}
	})
	res := runner.Run(suites.All(board)...)
	if res.ReportErr != nil {
		enc.Log("report stream: " + res.ReportErr.Error())
	}
	uart.drain()

	for {
		// Done; wait for a reset.
	}
}

// installHandlers registers the vector table entries. The drivers enable
// the lines in the NVIC themselves.
func installHandlers() {
	interrupt.New(int(nuc122.IRQEINT0), func(interrupt.Interrupt) { board.GPIO.HandleIRQ(nuc122.IRQEINT0) })
	interrupt.New(int(nuc122.IRQEINT1), func(interrupt.Interrupt) { board.GPIO.HandleIRQ(nuc122.IRQEINT1) })
	interrupt.New(int(nuc122.IRQGPAB), func(interrupt.Interrupt) { board.GPIO.HandleIRQ(nuc122.IRQGPAB) })
	interrupt.New(int(nuc122.IRQGPCD), func(interrupt.Interrupt) { board.GPIO.HandleIRQ(nuc122.IRQGPCD) })
	interrupt.New(int(nuc122.IRQTMR0), func(interrupt.Interrupt) { board.Timers[0].HandleIRQ() })
	interrupt.New(int(nuc122.IRQTMR1), func(interrupt.Interrupt) { board.Timers[1].HandleIRQ() })
	interrupt.New(int(nuc122.IRQTMR2), func(interrupt.Interrupt) { board.Timers[2].HandleIRQ() })
	interrupt.New(int(nuc122.IRQTMR3), func(interrupt.Interrupt) { board.Timers[3].HandleIRQ() })
}
