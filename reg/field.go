package reg

// Field is a bit-field inside a 32-bit register.
type Field struct {
	Mask  uint32
	Shift uint8
}

// Get extracts the field from a register value.
func (f Field) Get(v uint32) uint32 {
	return (v & f.Mask) >> f.Shift
}

// Put returns v with the field replaced by x. Bits of x that do not fit the
// field are dropped.
func (f Field) Put(v uint32, x uint32) uint32 {
	return v&^f.Mask | (x<<f.Shift)&f.Mask
}

// Read reads the field from the register at addr.
func (f Field) Read(b Bus, addr uint32) uint32 {
	return f.Get(b.Read32(addr))
}

// Write replaces the field in the register at addr, leaving other bits alone.
func (f Field) Write(b Bus, addr uint32, x uint32) {
	Modify(b, addr, f.Mask, (x<<f.Shift)&f.Mask)
}
