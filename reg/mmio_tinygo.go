//go:build tinygo

package reg

import (
	"runtime/volatile"
	"unsafe"
)

// MMIO is the hardware bus: every access is a volatile load or store at the
// physical address.
type MMIO struct{}

func (MMIO) Read32(addr uint32) uint32 {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(addr))).Get()
}

func (MMIO) Write32(addr uint32, value uint32) {
	(*volatile.Register32)(unsafe.Pointer(uintptr(addr))).Set(value)
}
