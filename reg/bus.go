// Package reg provides 32-bit register access for memory-mapped peripherals.
//
// Drivers address a register as base+offset through a Bus. On hardware the
// bus is MMIO (TinyGo builds only); on the host it is a Sim, which lets the
// same driver code run under go test.
package reg

// Bus reads and writes 32-bit registers by absolute address.
type Bus interface {
	Read32(addr uint32) uint32
	Write32(addr uint32, value uint32)
}

// Modifier is implemented by buses that can perform a read-modify-write as
// one indivisible step.
type Modifier interface {
	Modify32(addr uint32, clear, set uint32)
}

// Modify clears then sets bits of the register at addr. The read and the
// write happen with interrupts masked, so an interrupt handler touching the
// same register cannot interleave with it.
func Modify(b Bus, addr uint32, clear, set uint32) {
	if m, ok := b.(Modifier); ok {
		m.Modify32(addr, clear, set)
		return
	}
	state := DisableInterrupts()
	v := b.Read32(addr)
	b.Write32(addr, v&^clear|set)
	RestoreInterrupts(state)
}

// SetBits sets bits in the register at addr.
func SetBits(b Bus, addr uint32, bits uint32) {
	Modify(b, addr, 0, bits)
}

// ClearBits clears bits in the register at addr.
func ClearBits(b Bus, addr uint32, bits uint32) {
	Modify(b, addr, bits, 0)
}

// HasBits reports whether all of bits are set in the register at addr.
func HasBits(b Bus, addr uint32, bits uint32) bool {
	return b.Read32(addr)&bits == bits
}

// Critical runs fn with interrupts masked.
func Critical(fn func()) {
	state := DisableInterrupts()
	fn()
	RestoreInterrupts(state)
}
