// Package suites holds the board test suites run by the firmware and by
// coxmon selftest against the simulated chip.
package suites

import (
	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/reg"
	"github.com/JackieYan/cox/xgpio"
)

// DefaultBudget is the number of polls an assertion waits for its tokens.
const DefaultBudget = 1 << 20

// Board is the hardware the suites run on.
type Board struct {
	Bus    reg.Bus
	GPIO   *nuc122.GPIO
	NVIC   *nuc122.NVIC
	SysCtl *nuc122.SysCtl
	Timers [4]*nuc122.Timer

	// LoopOut is wired to LoopIn on the board.
	LoopOut xgpio.Pin
	LoopIn  xgpio.Pin
	// Reserved pins are left alone, such as the UART carrying reports.
	Reserved []xgpio.Pin

	TimerPrescale uint8
	TimerCompare  uint32
	Budget        uint32
}

// NewBoard builds the controllers on bus and registers the GPIO
// controller as the portable driver.
func NewBoard(bus reg.Bus) *Board {
	nvic := nuc122.NewNVIC(bus)
	b := &Board{
		Bus:           bus,
		GPIO:          nuc122.NewGPIO(bus, nvic),
		NVIC:          nvic,
		SysCtl:        nuc122.NewSysCtl(bus),
		LoopOut:       nuc122.PA10,
		LoopIn:        nuc122.PB3,
		Reserved:      []xgpio.Pin{nuc122.PB0, nuc122.PB1},
		TimerPrescale: 11,
		TimerCompare:  1000,
		Budget:        DefaultBudget,
	}
	for i := range b.Timers {
		b.Timers[i], _ = nuc122.NewTimer(bus, i)
	}
	xgpio.SetDriver(b.GPIO)
	return b
}

func (b *Board) reserved(pin xgpio.Pin) bool {
	for _, p := range b.Reserved {
		if p == pin {
			return true
		}
	}
	return false
}
