package nuc122

import (
	"github.com/JackieYan/cox/reg"
	"github.com/JackieYan/cox/xcore"
)

// Peripheral IDs with a clock gate in APBCLK. The ID is the bit position.
const (
	PeripheralWDT   xcore.PeripheralID = 0
	PeripheralRTC   xcore.PeripheralID = 1
	PeripheralTMR0  xcore.PeripheralID = 2
	PeripheralTMR1  xcore.PeripheralID = 3
	PeripheralTMR2  xcore.PeripheralID = 4
	PeripheralTMR3  xcore.PeripheralID = 5
	PeripheralI2C0  xcore.PeripheralID = 8
	PeripheralSPI0  xcore.PeripheralID = 12
	PeripheralSPI1  xcore.PeripheralID = 13
	PeripheralUART0 xcore.PeripheralID = 16
	PeripheralUART1 xcore.PeripheralID = 17
	PeripheralPWM01 xcore.PeripheralID = 20
	PeripheralPWM23 xcore.PeripheralID = 21
	PeripheralUSBD  xcore.PeripheralID = 27
)

const gatedPeripherals uint32 = APBCLKWDT | APBCLKRTC | APBCLKTMR0 | APBCLKTMR1 |
	APBCLKTMR2 | APBCLKTMR3 | APBCLKI2C0 | APBCLKSPI0 | APBCLKSPI1 |
	APBCLKUART0 | APBCLKUART1 | APBCLKPWM01 | APBCLKPWM23 | APBCLKUSBD

// SysCtl gates peripheral clocks. It implements xcore.PeripheralClock.
type SysCtl struct {
	bus reg.Bus
}

// NewSysCtl creates a clock controller on bus.
func NewSysCtl(bus reg.Bus) *SysCtl {
	return &SysCtl{bus: bus}
}

func gateBit(id xcore.PeripheralID) (uint32, bool, error) {
	if id >= PeripheralGPIOA && id <= PeripheralGPIOD {
		return 0, false, nil
	}
	if id > 31 || gatedPeripherals&(1<<id) == 0 {
		return 0, false, ErrInvalidPeripheral
	}
	return 1 << id, true, nil
}

// PeripheralEnable implements xcore.PeripheralClock.
func (s *SysCtl) PeripheralEnable(id xcore.PeripheralID) error {
	bit, gated, err := gateBit(id)
	if err != nil || !gated {
		return err
	}
	reg.SetBits(s.bus, CLKBase+CLKAPBCLK, bit)
	return nil
}

// PeripheralDisable implements xcore.PeripheralClock.
func (s *SysCtl) PeripheralDisable(id xcore.PeripheralID) error {
	bit, gated, err := gateBit(id)
	if err != nil || !gated {
		return err
	}
	reg.ClearBits(s.bus, CLKBase+CLKAPBCLK, bit)
	return nil
}

// PeripheralEnabled reports whether the peripheral's clock is running.
// Peripherals without a gate are always running.
func (s *SysCtl) PeripheralEnabled(id xcore.PeripheralID) bool {
	bit, gated, err := gateBit(id)
	if err != nil {
		return false
	}
	return !gated || reg.HasBits(s.bus, CLKBase+CLKAPBCLK, bit)
}

var _ xcore.PeripheralClock = (*SysCtl)(nil)
