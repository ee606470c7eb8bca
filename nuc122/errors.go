package nuc122

import "errors"

var (
	ErrInvalidPort        = errors.New("invalid GPIO port")
	ErrInvalidPin         = errors.New("pin not bonded on port")
	ErrMixedModes         = errors.New("pins have different modes")
	ErrInvalidMode        = errors.New("invalid pin mode")
	ErrInvalidTrigger     = errors.New("invalid interrupt trigger")
	ErrInvalidFunction    = errors.New("invalid pin function")
	ErrUnsupportedPairing = errors.New("signal not available on pin")
	ErrSignalMismatch     = errors.New("signal does not belong to function")
	ErrUnknownPin         = errors.New("unknown pin name")
	ErrInvalidDebounce    = errors.New("invalid debounce clock")
	ErrInvalidTimer       = errors.New("invalid timer")
	ErrCompareRange       = errors.New("timer compare value out of range")
	ErrInvalidPeripheral  = errors.New("invalid peripheral")
)
