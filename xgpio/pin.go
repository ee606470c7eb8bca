package xgpio

import "math/bits"

// Port is the base address of a GPIO port's register block.
type Port uint32

// PinSet is a bit-packed set of pins on one port: bit n selects pin n.
// It is the "general pin ID" taken by every bulk operation.
type PinSet uint16

// General pin IDs
const (
	Pin0 PinSet = 1 << iota
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9
	Pin10
	Pin11
	Pin12
	Pin13
	Pin14
	Pin15

	AllPins PinSet = 0xFFFF
)

// PinSetOf converts a register value to a PinSet. Bits 31:16 are reserved
// and dropped.
func PinSetOf(v uint32) PinSet {
	return PinSet(v & 0xFFFF)
}

// Has reports whether pin index is in the set.
func (s PinSet) Has(index uint8) bool {
	return index < 16 && s&(1<<index) != 0
}

// Len returns the number of pins in the set.
func (s PinSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Indexes returns the pin indexes in the set in ascending order.
func (s PinSet) Indexes() []uint8 {
	out := make([]uint8, 0, s.Len())
	for v := uint16(s); v != 0; v &= v - 1 {
		out = append(out, uint8(bits.TrailingZeros16(v)))
	}
	return out
}

// Single returns the index of the only pin in the set.
func (s PinSet) Single() (uint8, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))), true
}

// Pin is a short pin: exactly one pin, identified by port and bit index.
type Pin struct {
	port  Port
	index uint8
}

// MakePin returns the pin index of port. It panics if index is not 0..15.
func MakePin(port Port, index uint8) Pin {
	if index > 15 {
		panic("xgpio: pin index out of range")
	}
	return Pin{port: port, index: index}
}

// Port returns the pin's port.
func (p Pin) Port() Port {
	return p.port
}

// Index returns the pin's bit index within its port.
func (p Pin) Index() uint8 {
	return p.index
}

// Mask returns the single-pin set for p.
func (p Pin) Mask() PinSet {
	return 1 << p.index
}

// IsValid reports whether p was built by MakePin.
func (p Pin) IsValid() bool {
	return p.port != 0
}
