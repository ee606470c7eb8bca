// Package xgpio is the portable CoX GPIO API.
//
// Application code calls the functions in this package; a vendor back-end
// registered with SetDriver does the work. Call sites stay the same when the
// back-end changes.
package xgpio

import "github.com/JackieYan/cox/xcore"

// IntNumber is the number of GPIO interrupt slots (xGPIO_INT_NUMBER).
const IntNumber = 8

// Driver is the vendor back-end behind the portable API.
// Every method validates its port and pins and returns an error rather than
// touching registers it was not asked to.
type Driver interface {
	// PinName returns the short pin name, such as "PA10".
	PinName(pin Pin) string

	PinToPort(pin Pin) (Port, error)
	PinToPin(pin Pin) (PinSet, error)
	PinToPeripheralID(pin Pin) (xcore.PeripheralID, error)

	// DirModeSet programs mode for every pin in pins at once.
	DirModeSet(port Port, pins PinSet, mode DirMode) error
	// DirModeGet returns the mode shared by all pins in pins.
	DirModeGet(port Port, pins PinSet) (DirMode, error)

	PinIntCallbackInit(port Port, pins PinSet, cb xcore.EventCallback) error
	PinIntEnable(port Port, pins PinSet, trigger IntType) error
	PinIntDisable(port Port, pins PinSet) error
	PinIntStatus(port Port) (PinSet, error)
	PinIntClear(port Port, pins PinSet) error

	// PinRead returns the subset of pins that read high.
	PinRead(port Port, pins PinSet) (PinSet, error)
	PinWrite(port Port, pins PinSet, high bool) error

	// PinConfigure routes sig to pin through the multiplexer.
	PinConfigure(sig Signal, pin Pin) error
	PinFunctionSet(fn Function, port Port, pins PinSet) error
	// PinTypeSet checks that sig belongs to fn and is wired to pin, then
	// configures the multiplexer and selects fn.
	PinTypeSet(fn Function, sig Signal, pin Pin) error
}

// Global singleton used by the portable API.
var driver Driver

// SetDriver is called by target-specific code to register its back-end.
func SetDriver(d Driver) {
	driver = d
}

// MustDriver returns the configured back-end or panics if missing.
func MustDriver() Driver {
	if driver == nil {
		panic("GPIO driver not configured")
	}
	return driver
}
