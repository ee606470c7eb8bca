package xgpio

import "github.com/JackieYan/cox/xcore"

// DirModeSet sets the direction and mode of pins on port.
func DirModeSet(port Port, pins PinSet, mode DirMode) error {
	return MustDriver().DirModeSet(port, pins, mode)
}

// DirModeGet returns the direction and mode of pins on port.
func DirModeGet(port Port, pins PinSet) (DirMode, error) {
	return MustDriver().DirModeGet(port, pins)
}

// SPinDirModeSet sets the direction and mode of one pin.
func SPinDirModeSet(pin Pin, mode DirMode) error {
	return MustDriver().DirModeSet(pin.Port(), pin.Mask(), mode)
}

// SPinDirModeGet returns the direction and mode of one pin.
func SPinDirModeGet(pin Pin) (DirMode, error) {
	return MustDriver().DirModeGet(pin.Port(), pin.Mask())
}

// SPinToPeripheralID returns the clock-gate ID of the pin's port.
func SPinToPeripheralID(pin Pin) (xcore.PeripheralID, error) {
	return MustDriver().PinToPeripheralID(pin)
}

// SPinToPort returns the base address of the pin's port.
func SPinToPort(pin Pin) (Port, error) {
	return MustDriver().PinToPort(pin)
}

// SPinToPortPin expands a short pin into its port and general pin ID.
func SPinToPortPin(pin Pin) (Port, PinSet) {
	return pin.Port(), pin.Mask()
}

// SPinToPin returns the general pin ID of a short pin.
func SPinToPin(pin Pin) (PinSet, error) {
	return MustDriver().PinToPin(pin)
}

// PinIntCallbackInit registers the interrupt callback for port.
// The callback runs in interrupt context with the triggered pins in param.
// It should clear the status bits it handles first, with PinIntClear:
// the clear takes a few cycles to land, and a late clear re-enters the
// handler.
func PinIntCallbackInit(port Port, pins PinSet, cb xcore.EventCallback) error {
	return MustDriver().PinIntCallbackInit(port, pins, cb)
}

// PinIntEnable enables interrupts on pins with the given trigger.
func PinIntEnable(port Port, pins PinSet, trigger IntType) error {
	return MustDriver().PinIntEnable(port, pins, trigger)
}

// SPinIntEnable enables the interrupt of one pin.
func SPinIntEnable(pin Pin, trigger IntType) error {
	return MustDriver().PinIntEnable(pin.Port(), pin.Mask(), trigger)
}

// PinIntDisable masks interrupts on pins. The callback stays registered.
func PinIntDisable(port Port, pins PinSet) error {
	return MustDriver().PinIntDisable(port, pins)
}

// SPinIntDisable masks the interrupt of one pin.
func SPinIntDisable(pin Pin) error {
	return MustDriver().PinIntDisable(pin.Port(), pin.Mask())
}

// PinIntStatus returns the pins of port with a pending interrupt.
func PinIntStatus(port Port) (PinSet, error) {
	return MustDriver().PinIntStatus(port)
}

// PinIntClear clears pending interrupts on pins.
func PinIntClear(port Port, pins PinSet) error {
	return MustDriver().PinIntClear(port, pins)
}

// SPinIntClear clears the pending interrupt of one pin.
func SPinIntClear(pin Pin) error {
	return MustDriver().PinIntClear(pin.Port(), pin.Mask())
}

// PinRead returns which of pins read high.
func PinRead(port Port, pins PinSet) (PinSet, error) {
	return MustDriver().PinRead(port, pins)
}

// SPinRead returns the level of one pin.
func SPinRead(pin Pin) (bool, error) {
	v, err := MustDriver().PinRead(pin.Port(), pin.Mask())
	return v != 0, err
}

// PinWrite drives pins high or low. Pins configured as inputs are unaffected.
func PinWrite(port Port, pins PinSet, high bool) error {
	return MustDriver().PinWrite(port, pins, high)
}

// SPinWrite drives one pin high or low.
func SPinWrite(pin Pin, high bool) error {
	return MustDriver().PinWrite(pin.Port(), pin.Mask(), high)
}

// PinConfigure routes sig to pin through the multiplexer.
func PinConfigure(sig Signal, pin Pin) error {
	return MustDriver().PinConfigure(sig, pin)
}

func spinTypeGPIO(pin Pin, mode DirMode) error {
	d := MustDriver()
	if err := d.DirModeSet(pin.Port(), pin.Mask(), mode); err != nil {
		return err
	}
	return d.PinFunctionSet(FunctionGPIO, pin.Port(), pin.Mask())
}

// SPinTypeGPIOInput turns pin into a GPIO input.
func SPinTypeGPIOInput(pin Pin) error {
	return spinTypeGPIO(pin, DirModeIn)
}

// SPinTypeGPIOOutput turns pin into a push-pull GPIO output.
func SPinTypeGPIOOutput(pin Pin) error {
	return spinTypeGPIO(pin, DirModeOut)
}

// SPinTypeGPIOOutputOD turns pin into an open-drain GPIO output.
func SPinTypeGPIOOutputOD(pin Pin) error {
	return spinTypeGPIO(pin, DirModeOD)
}

// SPinTypeGPIOOutputQB turns pin into a quasi-bidirectional GPIO pin.
func SPinTypeGPIOOutputQB(pin Pin) error {
	return spinTypeGPIO(pin, DirModeQB)
}

// SPinTypeI2C routes an I2C signal, such as I2C0SDA, to pin.
func SPinTypeI2C(sig Signal, pin Pin) error {
	return MustDriver().PinTypeSet(FunctionI2C, sig, pin)
}

// SPinTypePWM routes a PWM output, such as PWM0, to pin.
func SPinTypePWM(sig Signal, pin Pin) error {
	return MustDriver().PinTypeSet(FunctionPWM, sig, pin)
}

// SPinTypeSPI routes an SPI signal, such as SPI0CLK, to pin.
func SPinTypeSPI(sig Signal, pin Pin) error {
	return MustDriver().PinTypeSet(FunctionSPI, sig, pin)
}

// SPinTypeTimer routes a timer capture signal, such as TIMCCP0, to pin.
func SPinTypeTimer(sig Signal, pin Pin) error {
	return MustDriver().PinTypeSet(FunctionTimer, sig, pin)
}

// SPinTypeUART routes a UART signal, such as UART0RX, to pin.
func SPinTypeUART(sig Signal, pin Pin) error {
	return MustDriver().PinTypeSet(FunctionUART, sig, pin)
}

// SPinTypeEXTINT routes an external interrupt input, such as INT0, to pin.
func SPinTypeEXTINT(sig Signal, pin Pin) error {
	return MustDriver().PinTypeSet(FunctionExtInt, sig, pin)
}
