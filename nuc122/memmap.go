// Package nuc122 is the Nuvoton NUC122 back-end of the CoX portable API.
//
// It owns the chip's register maps, short pin names, the pin multiplexer
// table, GPIO interrupt dispatch and a small timer driver. All register
// traffic goes through a reg.Bus, so the same code runs on hardware
// (reg.MMIO) and against the host chip model in nuc122/sim.
package nuc122

import "github.com/JackieYan/cox/xcore"

// Peripheral base addresses
const (
	GCRBase      uint32 = 0x50000000
	CLKBase      uint32 = 0x50000200
	GPIOABase    uint32 = 0x50004000
	GPIOBBase    uint32 = 0x50004040
	GPIOCBase    uint32 = 0x50004080
	GPIODBase    uint32 = 0x500040C0
	GPIODBNCECON uint32 = 0x50004180

	TIMER0Base uint32 = 0x40010000
	TIMER1Base uint32 = 0x40010020
	TIMER2Base uint32 = 0x40110000
	TIMER3Base uint32 = 0x40110020

	PWMABase uint32 = 0x40040000

	NVICISER uint32 = 0xE000E100
	NVICICER uint32 = 0xE000E180
)

// Interrupt lines
const (
	IRQEINT0 xcore.IRQ = 2
	IRQEINT1 xcore.IRQ = 3
	IRQGPAB  xcore.IRQ = 4
	IRQGPCD  xcore.IRQ = 5
	IRQPWMA  xcore.IRQ = 6
	IRQTMR0  xcore.IRQ = 8
	IRQTMR1  xcore.IRQ = 9
	IRQTMR2  xcore.IRQ = 10
	IRQTMR3  xcore.IRQ = 11
	IRQUART0 xcore.IRQ = 12
	IRQUART1 xcore.IRQ = 13
	IRQSPI0  xcore.IRQ = 14
	IRQSPI1  xcore.IRQ = 15
	IRQI2C0  xcore.IRQ = 18
)

// NumPorts is the number of GPIO ports (A to D).
const NumPorts = 4

// portStride is the distance between two GPIO port register blocks.
const portStride = 0x40
