package nuc122

import (
	"github.com/JackieYan/cox/reg"
	"github.com/JackieYan/cox/xcore"
)

// NVIC enables interrupt lines through the Cortex-M0 set/clear-enable
// registers. It implements xcore.IntController.
type NVIC struct {
	bus reg.Bus
}

// NewNVIC creates an NVIC on bus.
func NewNVIC(bus reg.Bus) *NVIC {
	return &NVIC{bus: bus}
}

// Enable implements xcore.IntController.
func (n *NVIC) Enable(irq xcore.IRQ) {
	if irq < 32 {
		n.bus.Write32(NVICISER, 1<<irq)
	}
}

// Disable implements xcore.IntController.
func (n *NVIC) Disable(irq xcore.IRQ) {
	if irq < 32 {
		n.bus.Write32(NVICICER, 1<<irq)
	}
}

// Enabled implements xcore.IntController.
func (n *NVIC) Enabled(irq xcore.IRQ) bool {
	return irq < 32 && n.bus.Read32(NVICISER)&(1<<irq) != 0
}

var _ xcore.IntController = (*NVIC)(nil)
