//go:build tinygo && nuc122

package main

import (
	"github.com/JackieYan/cox/reg"
)

// UART0 registers, transmit only
const (
	uart0Base uint32 = 0x40050000

	uartTHR  uint32 = 0x00
	uartLCR  uint32 = 0x0C
	uartFSR  uint32 = 0x18
	uartBAUD uint32 = 0x24

	lcr8N1       uint32 = 0x03
	fsrTXFull    uint32 = 1 << 23
	fsrTEFlag    uint32 = 1 << 28
	baudDivXEN   uint32 = 1 << 29
	baudDivXOne  uint32 = 1 << 28
	uartClockHXT uint32 = 12000000
)

// reportUART writes the report stream to UART0.
type reportUART struct {
	bus reg.Bus
}

func newReportUART(bus reg.Bus, baud uint32) *reportUART {
	bus.Write32(uart0Base+uartBAUD, baudDivXEN|baudDivXOne|(uartClockHXT/baud-2))
	bus.Write32(uart0Base+uartLCR, lcr8N1)
	return &reportUART{bus: bus}
}

func (u *reportUART) Write(p []byte) (int, error) {
	for _, b := range p {
		for reg.HasBits(u.bus, uart0Base+uartFSR, fsrTXFull) {
		}
		u.bus.Write32(uart0Base+uartTHR, uint32(b))
	}
	return len(p), nil
}

// drain waits until the last byte has left the shift register.
func (u *reportUART) drain() {
	for !reg.HasBits(u.bus, uart0Base+uartFSR, fsrTEFlag) {
	}
}
