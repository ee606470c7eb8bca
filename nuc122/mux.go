package nuc122

import (
	"github.com/JackieYan/cox/xgpio"
)

// PinConfig is a pin multiplexer code: [15:12] port, [11:8] pin,
// [16] ALT_MFP value, [31:24] ALT_MFP bit position.
type PinConfig uint32

// Pin multiplexer codes
const (
	GPIO_PA10_I2C0SDA  PinConfig = 0x00000A00
	GPIO_PA11_I2C0SCK  PinConfig = 0x00000B00
	GPIO_PA12_PWM0     PinConfig = 0x00000C00
	GPIO_PA13_PWM1     PinConfig = 0x00000D00
	GPIO_PA14_PWM2     PinConfig = 0x00000E00
	GPIO_PA15_PWM3     PinConfig = 0x00000F00
	GPIO_PB0_UART0RX   PinConfig = 0x00001000
	GPIO_PB1_UART0TX   PinConfig = 0x00001100
	GPIO_PB2_UART0RTS  PinConfig = 0x00001200
	GPIO_PB3_UART0CTS  PinConfig = 0x00001300
	GPIO_PB4_UART1RX   PinConfig = 0x0E001400
	GPIO_PB4_SPI1CS    PinConfig = 0x0E011400
	GPIO_PB5_UART1TX   PinConfig = 0x00001500
	GPIO_PB6_UART1RTS  PinConfig = 0x00001600
	GPIO_PB7_UART1CTS  PinConfig = 0x00001700
	GPIO_PB8_TIMCCP0   PinConfig = 0x00001800
	GPIO_PB9_TIMCCP1   PinConfig = 0x01001900
	GPIO_PB9_SPI1CS    PinConfig = 0x01011900
	GPIO_PB10_TIMCCP2  PinConfig = 0x00001A00
	GPIO_PB10_SPI0CS   PinConfig = 0x00011A00
	GPIO_PB14_INT0     PinConfig = 0x00001E00
	GPIO_PB15_INT1     PinConfig = 0x00001F00
	GPIO_PC0_SPI0CS    PinConfig = 0x00002000
	GPIO_PC1_SPI0CLK   PinConfig = 0x00002100
	GPIO_PC2_SPI0MISO  PinConfig = 0x00002200
	GPIO_PC3_SPI0MOSI  PinConfig = 0x00002300
	GPIO_PC8_SPI1CS    PinConfig = 0x00002800
	GPIO_PC9_SPI1CLK   PinConfig = 0x00002900
	GPIO_PC10_SPI1MISO PinConfig = 0x00002A00
	GPIO_PC11_SPI1MOSI PinConfig = 0x00002B00
	GPIO_PD1_SPI0CS    PinConfig = 0x00003100
)

// MuxEntry is one row of the multiplexer table.
type MuxEntry struct {
	Pin    xgpio.Pin
	Signal xgpio.Signal
	Config PinConfig
}

var muxTable = []MuxEntry{
	{PA10, xgpio.I2C0SDA, GPIO_PA10_I2C0SDA},
	{PA11, xgpio.I2C0SCK, GPIO_PA11_I2C0SCK},
	{PA12, xgpio.PWM0, GPIO_PA12_PWM0},
	{PA13, xgpio.PWM1, GPIO_PA13_PWM1},
	{PA14, xgpio.PWM2, GPIO_PA14_PWM2},
	{PA15, xgpio.PWM3, GPIO_PA15_PWM3},
	{PB0, xgpio.UART0RX, GPIO_PB0_UART0RX},
	{PB1, xgpio.UART0TX, GPIO_PB1_UART0TX},
	{PB2, xgpio.UART0RTS, GPIO_PB2_UART0RTS},
	{PB3, xgpio.UART0CTS, GPIO_PB3_UART0CTS},
	{PB4, xgpio.UART1RX, GPIO_PB4_UART1RX},
	{PB4, xgpio.SPI1CS, GPIO_PB4_SPI1CS},
	{PB5, xgpio.UART1TX, GPIO_PB5_UART1TX},
	{PB6, xgpio.UART1RTS, GPIO_PB6_UART1RTS},
	{PB7, xgpio.UART1CTS, GPIO_PB7_UART1CTS},
	{PB8, xgpio.TIMCCP0, GPIO_PB8_TIMCCP0},
	{PB9, xgpio.TIMCCP1, GPIO_PB9_TIMCCP1},
	{PB9, xgpio.SPI1CS, GPIO_PB9_SPI1CS},
	{PB10, xgpio.TIMCCP2, GPIO_PB10_TIMCCP2},
	{PB10, xgpio.SPI0CS, GPIO_PB10_SPI0CS},
	{PB14, xgpio.INT0, GPIO_PB14_INT0},
	{PB15, xgpio.INT1, GPIO_PB15_INT1},
	{PC0, xgpio.SPI0CS, GPIO_PC0_SPI0CS},
	{PC1, xgpio.SPI0CLK, GPIO_PC1_SPI0CLK},
	{PC2, xgpio.SPI0MISO, GPIO_PC2_SPI0MISO},
	{PC3, xgpio.SPI0MOSI, GPIO_PC3_SPI0MOSI},
	{PC8, xgpio.SPI1CS, GPIO_PC8_SPI1CS},
	{PC9, xgpio.SPI1CLK, GPIO_PC9_SPI1CLK},
	{PC10, xgpio.SPI1MISO, GPIO_PC10_SPI1MISO},
	{PC11, xgpio.SPI1MOSI, GPIO_PC11_SPI1MOSI},
	{PD1, xgpio.SPI0CS, GPIO_PD1_SPI0CS},
}

// sharedPins holds, per port, the pins with more than one table entry.
// Only those pins are steered by ALT_MFP.
var sharedPins [NumPorts]xgpio.PinSet

func init() {
	var seen [NumPorts]xgpio.PinSet
	for _, e := range muxTable {
		n := e.Config.PortIndex()
		m := xgpio.PinSet(1) << e.Config.PinIndex()
		if seen[n]&m != 0 {
			sharedPins[n] |= m
		}
		seen[n] |= m
	}
}

// PortIndex returns the port encoded in c (0 = A).
func (c PinConfig) PortIndex() int {
	return int(c>>12) & 0xF
}

// PinIndex returns the pin encoded in c.
func (c PinConfig) PinIndex() uint8 {
	return uint8(c>>8) & 0xF
}

// Pin returns the short pin encoded in c.
func (c PinConfig) Pin() xgpio.Pin {
	return xgpio.MakePin(xgpio.Port(PortBase(c.PortIndex())), c.PinIndex())
}

// AltShift returns the ALT_MFP bit position encoded in c.
func (c PinConfig) AltShift() uint8 {
	return uint8(c >> 24)
}

// AltValue returns the ALT_MFP bit value encoded in c.
func (c PinConfig) AltValue() uint32 {
	return uint32(c>>16) & 1
}

// HasAlt reports whether configuring c touches ALT_MFP.
func (c PinConfig) HasAlt() bool {
	n := c.PortIndex()
	return n < NumPorts && sharedPins[n].Has(c.PinIndex())
}

// LookupPinConfig returns the multiplexer code routing sig to pin.
func LookupPinConfig(pin xgpio.Pin, sig xgpio.Signal) (PinConfig, error) {
	if _, err := checkPin(pin); err != nil {
		return 0, err
	}
	for _, e := range muxTable {
		if e.Pin == pin && e.Signal == sig {
			return e.Config, nil
		}
	}
	return 0, ErrUnsupportedPairing
}

// MustPinConfig is like LookupPinConfig but panics on an unsupported pair.
func MustPinConfig(pin xgpio.Pin, sig xgpio.Signal) PinConfig {
	c, err := LookupPinConfig(pin, sig)
	if err != nil {
		panic("nuc122: " + PinName(pin) + " " + string(sig) + ": " + err.Error())
	}
	return c
}

// MuxTable returns a copy of the multiplexer table in pin order.
func MuxTable() []MuxEntry {
	out := make([]MuxEntry, len(muxTable))
	copy(out, muxTable)
	return out
}

// SignalsFor returns the signals that can be routed to pin.
func SignalsFor(pin xgpio.Pin) []xgpio.Signal {
	var out []xgpio.Signal
	for _, e := range muxTable {
		if e.Pin == pin {
			out = append(out, e.Signal)
		}
	}
	return out
}

// functionCode maps a portable function to the NUC122 GPIO_FUNCTION value.
func functionCode(fn xgpio.Function) (uint32, bool) {
	switch fn {
	case xgpio.FunctionGPIO:
		return 0x0, true
	case xgpio.FunctionSPI:
		return 0x1, true
	case xgpio.FunctionI2C:
		return 0x4, true
	case xgpio.FunctionPWM:
		return 0x6, true
	case xgpio.FunctionTimer:
		return 0x7, true
	case xgpio.FunctionUART:
		return 0x8, true
	case xgpio.FunctionExtInt:
		return 0xB, true
	}
	return 0, false
}
