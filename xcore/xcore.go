// Package xcore holds the vocabulary shared by every CoX peripheral driver:
// the event callback signature, interrupt line and peripheral identifiers,
// and the collaborator interfaces drivers consume.
package xcore

// EventCallback is the callback signature shared by all peripheral drivers.
//
// GPIO interrupts pass the triggered pin mask in param and zero/nil in the
// other arguments; timers pass the status bits in event. cbData and msgData
// are kept for compatibility with drivers that carry context pointers.
type EventCallback func(cbData any, event uint32, param uint32, msgData any) uint32

// IRQ is an interrupt controller line number.
type IRQ uint8

// IntController enables and disables interrupt lines.
type IntController interface {
	Enable(irq IRQ)
	Disable(irq IRQ)
	Enabled(irq IRQ) bool
}

// PeripheralID identifies a peripheral to the clock/power controller.
type PeripheralID uint32

// PeripheralClock gates peripheral clocks.
type PeripheralClock interface {
	PeripheralEnable(id PeripheralID) error
	PeripheralDisable(id PeripheralID) error
}
