package nuc122

import (
	"github.com/JackieYan/cox/reg"
	"github.com/JackieYan/cox/xcore"
	"github.com/JackieYan/cox/xgpio"
)

// GPIO is the NUC122 GPIO controller. It implements xgpio.Driver and owns
// the per-port interrupt callback registry.
type GPIO struct {
	bus       reg.Bus
	nvic      xcore.IntController
	callbacks Registry
}

// NewGPIO creates the GPIO controller. nvic may be nil, in which case
// interrupt lines are left for the caller to enable.
func NewGPIO(bus reg.Bus, nvic xcore.IntController) *GPIO {
	return &GPIO{bus: bus, nvic: nvic}
}

// DebounceSource selects the de-bounce sampling clock.
type DebounceSource uint32

const (
	DebounceHCLK DebounceSource = 0 // GPIO_DBCLKSRC_HCLK
	Debounce10K  DebounceSource = 1 // GPIO_DBCLKSRC_10K
)

// PinName implements xgpio.Driver.
func (g *GPIO) PinName(pin xgpio.Pin) string {
	return PinName(pin)
}

// PinToPort implements xgpio.Driver.
func (g *GPIO) PinToPort(pin xgpio.Pin) (xgpio.Port, error) {
	if _, err := checkPin(pin); err != nil {
		return 0, err
	}
	return pin.Port(), nil
}

// PinToPin implements xgpio.Driver.
func (g *GPIO) PinToPin(pin xgpio.Pin) (xgpio.PinSet, error) {
	if _, err := checkPin(pin); err != nil {
		return 0, err
	}
	return pin.Mask(), nil
}

// PinToPeripheralID implements xgpio.Driver.
func (g *GPIO) PinToPeripheralID(pin xgpio.Pin) (xcore.PeripheralID, error) {
	n, err := checkPin(pin)
	if err != nil {
		return 0, err
	}
	return PeripheralGPIOA + xcore.PeripheralID(n), nil
}

func pmdCode(mode xgpio.DirMode) (uint32, bool) {
	switch mode {
	case xgpio.DirModeIn:
		return PMDInput, true
	case xgpio.DirModeOut:
		return PMDOutput, true
	case xgpio.DirModeOD:
		return PMDOpenDrain, true
	case xgpio.DirModeQB:
		return PMDQuasi, true
	}
	return 0, false
}

// DirModeSet implements xgpio.Driver. All pins change in one masked
// read-modify-write of PMD.
func (g *GPIO) DirModeSet(port xgpio.Port, pins xgpio.PinSet, mode xgpio.DirMode) error {
	if _, err := checkPins(port, pins); err != nil {
		return err
	}
	code, ok := pmdCode(mode)
	if !ok {
		return ErrInvalidMode
	}
	var clear, set uint32
	for _, i := range pins.Indexes() {
		clear |= 0x3 << (2 * i)
		set |= code << (2 * i)
	}
	reg.Modify(g.bus, uint32(port)+GPIOPMD, clear, set)
	return nil
}

// DirModeGet implements xgpio.Driver.
func (g *GPIO) DirModeGet(port xgpio.Port, pins xgpio.PinSet) (xgpio.DirMode, error) {
	if _, err := checkPins(port, pins); err != nil {
		return 0, err
	}
	pmd := g.bus.Read32(uint32(port) + GPIOPMD)
	first := true
	var code uint32
	for _, i := range pins.Indexes() {
		c := (pmd >> (2 * i)) & 0x3
		if !first && c != code {
			return 0, ErrMixedModes
		}
		code, first = c, false
	}
	switch code {
	case PMDOutput:
		return xgpio.DirModeOut, nil
	case PMDOpenDrain:
		return xgpio.DirModeOD, nil
	case PMDQuasi:
		return xgpio.DirModeQB, nil
	}
	return xgpio.DirModeIn, nil
}

// PinRead implements xgpio.Driver.
func (g *GPIO) PinRead(port xgpio.Port, pins xgpio.PinSet) (xgpio.PinSet, error) {
	if _, err := checkPins(port, pins); err != nil {
		return 0, err
	}
	return xgpio.PinSetOf(g.bus.Read32(uint32(port)+GPIOPIN)) & pins, nil
}

// PinWrite implements xgpio.Driver.
func (g *GPIO) PinWrite(port xgpio.Port, pins xgpio.PinSet, high bool) error {
	if _, err := checkPins(port, pins); err != nil {
		return err
	}
	var set uint32
	if high {
		set = uint32(pins)
	}
	reg.Modify(g.bus, uint32(port)+GPIODOUT, uint32(pins), set)
	return nil
}

// PinMaskSet protects pins from DOUT writes.
func (g *GPIO) PinMaskSet(port xgpio.Port, pins xgpio.PinSet) error {
	if _, err := checkPins(port, pins); err != nil {
		return err
	}
	reg.SetBits(g.bus, uint32(port)+GPIODMASK, uint32(pins))
	return nil
}

// PortMaskGet returns the write-protected pins of port.
func (g *GPIO) PortMaskGet(port xgpio.Port) (xgpio.PinSet, error) {
	if _, ok := portIndex(port); !ok {
		return 0, ErrInvalidPort
	}
	return xgpio.PinSetOf(g.bus.Read32(uint32(port) + GPIODMASK)), nil
}

// PortDoutGet returns the output latch of port.
func (g *GPIO) PortDoutGet(port xgpio.Port) (xgpio.PinSet, error) {
	if _, ok := portIndex(port); !ok {
		return 0, ErrInvalidPort
	}
	return xgpio.PinSetOf(g.bus.Read32(uint32(port) + GPIODOUT)), nil
}

// DebounceEnable turns on input de-bounce for pins.
func (g *GPIO) DebounceEnable(port xgpio.Port, pins xgpio.PinSet) error {
	if _, err := checkPins(port, pins); err != nil {
		return err
	}
	reg.SetBits(g.bus, uint32(port)+GPIODBEN, uint32(pins))
	return nil
}

// DebounceDisable turns off input de-bounce for pins.
func (g *GPIO) DebounceDisable(port xgpio.Port, pins xgpio.PinSet) error {
	if _, err := checkPins(port, pins); err != nil {
		return err
	}
	reg.ClearBits(g.bus, uint32(port)+GPIODBEN, uint32(pins))
	return nil
}

// DebounceTimeSet selects the de-bounce clock: src divided by 2^sel,
// sel 0..15. The setting is shared by all ports.
func (g *GPIO) DebounceTimeSet(src DebounceSource, sel uint8) error {
	if src > Debounce10K || sel > 15 {
		return ErrInvalidDebounce
	}
	v := DBNCECONDBCLKSRC.Put(0, uint32(src))
	v = DBNCECONDBCLKSEL.Put(v, uint32(sel))
	reg.Modify(g.bus, GPIODBNCECON, DBNCECONDBCLKSRC.Mask|DBNCECONDBCLKSEL.Mask, v)
	return nil
}

// DebounceTimeGet returns the de-bounce clock source and divider.
func (g *GPIO) DebounceTimeGet() (DebounceSource, uint8) {
	v := g.bus.Read32(GPIODBNCECON)
	return DebounceSource(DBNCECONDBCLKSRC.Get(v)), uint8(DBNCECONDBCLKSEL.Get(v))
}

// ConfigureCode applies a multiplexer code: it sets the pin's MFP bit
// and, for pins shared through ALT_MFP, the ALT_MFP bit. No other bits
// change, and applying the same code twice leaves the registers as once.
func (g *GPIO) ConfigureCode(c PinConfig) error {
	n := c.PortIndex()
	if n >= NumPorts || !bondedPins[n].Has(c.PinIndex()) {
		return ErrUnsupportedPairing
	}
	reg.SetBits(g.bus, MFPAddr(n), 1<<c.PinIndex())
	if c.HasAlt() {
		bit := uint32(1) << c.AltShift()
		reg.Modify(g.bus, GCRBase+GCRALTMFP, bit, c.AltValue()<<c.AltShift())
	}
	return nil
}

// PinConfigure implements xgpio.Driver.
func (g *GPIO) PinConfigure(sig xgpio.Signal, pin xgpio.Pin) error {
	c, err := LookupPinConfig(pin, sig)
	if err != nil {
		return err
	}
	return g.ConfigureCode(c)
}

// PinFunctionSet implements xgpio.Driver. FunctionGPIO releases the pins
// from their peripheral; any other function hands them to it.
func (g *GPIO) PinFunctionSet(fn xgpio.Function, port xgpio.Port, pins xgpio.PinSet) error {
	n, err := checkPins(port, pins)
	if err != nil {
		return err
	}
	if _, ok := functionCode(fn); !ok {
		return ErrInvalidFunction
	}
	if fn == xgpio.FunctionGPIO {
		reg.ClearBits(g.bus, MFPAddr(n), uint32(pins))
	} else {
		reg.SetBits(g.bus, MFPAddr(n), uint32(pins))
	}
	return nil
}

// PinTypeSet implements xgpio.Driver.
func (g *GPIO) PinTypeSet(fn xgpio.Function, sig xgpio.Signal, pin xgpio.Pin) error {
	if sf, ok := sig.Function(); !ok || sf != fn {
		return ErrSignalMismatch
	}
	c, err := LookupPinConfig(pin, sig)
	if err != nil {
		return err
	}
	if err := g.ConfigureCode(c); err != nil {
		return err
	}
	return g.PinFunctionSet(fn, pin.Port(), pin.Mask())
}

var _ xgpio.Driver = (*GPIO)(nil)
