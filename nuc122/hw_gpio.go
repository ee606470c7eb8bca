package nuc122

import "github.com/JackieYan/cox/reg"

// GPIO register offsets from the port base
const (
	GPIOPMD   uint32 = 0x00 // Pin mode, 2 bits per pin
	GPIOOFFD  uint32 = 0x04 // Digital input path disable
	GPIODOUT  uint32 = 0x08 // Data output value
	GPIODMASK uint32 = 0x0C // Data output write mask
	GPIOPIN   uint32 = 0x10 // Pin value
	GPIODBEN  uint32 = 0x14 // De-bounce enable
	GPIOIMD   uint32 = 0x18 // Interrupt mode, 1 = level
	GPIOIEN   uint32 = 0x1C // Interrupt enable
	GPIOISRC  uint32 = 0x20 // Interrupt source, write 1 to clear
)

// PMD encodings
const (
	PMDInput     uint32 = 0x0
	PMDOutput    uint32 = 0x1
	PMDOpenDrain uint32 = 0x2
	PMDQuasi     uint32 = 0x3
)

// IEN halves: [15:0] enable falling edge / low level,
// [31:16] enable rising edge / high level.
const (
	IENFallingShift = 0
	IENRisingShift  = 16
)

// DBNCECON fields
var (
	DBNCECONDBCLKSEL = reg.Field{Mask: 0x0000000F, Shift: 0}
	DBNCECONDBCLKSRC = reg.Field{Mask: 0x00000010, Shift: 4}
)

const DBNCECONICLKON uint32 = 0x00000020

// Trigger codes programmed by IntEnable. Bit 4 selects level mode,
// bit 0 the falling/low half of IEN and bit 1 the rising/high half.
const (
	TriggerFallingEdge uint32 = 0x01
	TriggerRisingEdge  uint32 = 0x02
	TriggerBothEdges   uint32 = 0x03
	TriggerLowLevel    uint32 = 0x11
	TriggerHighLevel   uint32 = 0x12
	TriggerBothLevel   uint32 = 0x13

	triggerLevelBit   uint32 = 0x10
	triggerFallingBit uint32 = 0x01
	triggerRisingBit  uint32 = 0x02
)

// PortBase returns the register block of GPIO port n (0 = A).
func PortBase(n int) uint32 {
	return GPIOABase + uint32(n)*portStride
}
