package nuc122

import (
	"github.com/JackieYan/cox/xcore"
	"github.com/JackieYan/cox/xgpio"
)

// GPIO ports
const (
	PortA = xgpio.Port(GPIOABase)
	PortB = xgpio.Port(GPIOBBase)
	PortC = xgpio.Port(GPIOCBase)
	PortD = xgpio.Port(GPIODBase)
)

// bondedPins lists the pins brought out on the package, per port.
var bondedPins = [NumPorts]xgpio.PinSet{
	0xFC00, // PA10..PA15
	0xC7FF, // PB0..PB10, PB14, PB15
	0x3F3F, // PC0..PC5, PC8..PC13
	0x0F3F, // PD0..PD5, PD8..PD11
}

// Short pins
var (
	PA10 = xgpio.MakePin(PortA, 10)
	PA11 = xgpio.MakePin(PortA, 11)
	PA12 = xgpio.MakePin(PortA, 12)
	PA13 = xgpio.MakePin(PortA, 13)
	PA14 = xgpio.MakePin(PortA, 14)
	PA15 = xgpio.MakePin(PortA, 15)

	PB0  = xgpio.MakePin(PortB, 0)
	PB1  = xgpio.MakePin(PortB, 1)
	PB2  = xgpio.MakePin(PortB, 2)
	PB3  = xgpio.MakePin(PortB, 3)
	PB4  = xgpio.MakePin(PortB, 4)
	PB5  = xgpio.MakePin(PortB, 5)
	PB6  = xgpio.MakePin(PortB, 6)
	PB7  = xgpio.MakePin(PortB, 7)
	PB8  = xgpio.MakePin(PortB, 8)
	PB9  = xgpio.MakePin(PortB, 9)
	PB10 = xgpio.MakePin(PortB, 10)
	PB14 = xgpio.MakePin(PortB, 14)
	PB15 = xgpio.MakePin(PortB, 15)

	PC0  = xgpio.MakePin(PortC, 0)
	PC1  = xgpio.MakePin(PortC, 1)
	PC2  = xgpio.MakePin(PortC, 2)
	PC3  = xgpio.MakePin(PortC, 3)
	PC4  = xgpio.MakePin(PortC, 4)
	PC5  = xgpio.MakePin(PortC, 5)
	PC8  = xgpio.MakePin(PortC, 8)
	PC9  = xgpio.MakePin(PortC, 9)
	PC10 = xgpio.MakePin(PortC, 10)
	PC11 = xgpio.MakePin(PortC, 11)
	PC12 = xgpio.MakePin(PortC, 12)
	PC13 = xgpio.MakePin(PortC, 13)

	PD0  = xgpio.MakePin(PortD, 0)
	PD1  = xgpio.MakePin(PortD, 1)
	PD2  = xgpio.MakePin(PortD, 2)
	PD3  = xgpio.MakePin(PortD, 3)
	PD4  = xgpio.MakePin(PortD, 4)
	PD5  = xgpio.MakePin(PortD, 5)
	PD8  = xgpio.MakePin(PortD, 8)
	PD9  = xgpio.MakePin(PortD, 9)
	PD10 = xgpio.MakePin(PortD, 10)
	PD11 = xgpio.MakePin(PortD, 11)
)

// Peripheral IDs of the GPIO ports. GPIO has no clock gate on NUC122;
// SysCtl accepts these and does nothing.
const (
	PeripheralGPIOA xcore.PeripheralID = 0x100 + iota
	PeripheralGPIOB
	PeripheralGPIOC
	PeripheralGPIOD
)

// portIndex maps a port base address to 0..3.
func portIndex(port xgpio.Port) (int, bool) {
	p := uint32(port)
	if p < GPIOABase || p > GPIODBase || (p-GPIOABase)%portStride != 0 {
		return 0, false
	}
	return int((p - GPIOABase) / portStride), true
}

// checkPins validates port and a non-empty set of bonded pins on it.
func checkPins(port xgpio.Port, pins xgpio.PinSet) (int, error) {
	n, ok := portIndex(port)
	if !ok {
		return 0, ErrInvalidPort
	}
	if pins == 0 || pins&^bondedPins[n] != 0 {
		return n, ErrInvalidPin
	}
	return n, nil
}

// checkPin validates a short pin.
func checkPin(pin xgpio.Pin) (int, error) {
	return checkPins(pin.Port(), pin.Mask())
}

// BondedPins returns the bonded pins of port.
func BondedPins(port xgpio.Port) (xgpio.PinSet, error) {
	n, ok := portIndex(port)
	if !ok {
		return 0, ErrInvalidPort
	}
	return bondedPins[n], nil
}

// PortName returns "A".."D" for a port, or "?".
func PortName(port xgpio.Port) string {
	n, ok := portIndex(port)
	if !ok {
		return "?"
	}
	return string(rune('A' + n))
}

// PinName returns the short name of pin, such as "PB14".
func PinName(pin xgpio.Pin) string {
	return "P" + PortName(pin.Port()) + xcore.Utoa(uint32(pin.Index()))
}

// Pins returns every bonded short pin, port by port in ascending order.
func Pins() []xgpio.Pin {
	var out []xgpio.Pin
	for n := 0; n < NumPorts; n++ {
		port := xgpio.Port(PortBase(n))
		for _, i := range bondedPins[n].Indexes() {
			out = append(out, xgpio.MakePin(port, i))
		}
	}
	return out
}

// PinByName parses a short pin name such as "PA10" or "pc3".
func PinByName(name string) (xgpio.Pin, error) {
	if len(name) < 3 || len(name) > 4 || (name[0] != 'P' && name[0] != 'p') {
		return xgpio.Pin{}, ErrUnknownPin
	}
	letter := name[1] &^ 0x20 // upper case
	if letter < 'A' || letter >= 'A'+NumPorts {
		return xgpio.Pin{}, ErrUnknownPin
	}
	index := 0
	for _, c := range name[2:] {
		if c < '0' || c > '9' {
			return xgpio.Pin{}, ErrUnknownPin
		}
		index = index*10 + int(c-'0')
	}
	if index > 15 || (len(name) == 4 && name[2] == '0') {
		return xgpio.Pin{}, ErrUnknownPin
	}
	n := int(letter - 'A')
	if !bondedPins[n].Has(uint8(index)) {
		return xgpio.Pin{}, ErrInvalidPin
	}
	return xgpio.MakePin(xgpio.Port(PortBase(n)), uint8(index)), nil
}
