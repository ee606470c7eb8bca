package xgpio

// DirMode is the direction and control mode of a pin.
type DirMode uint8

const (
	DirModeIn  DirMode = iota // Input
	DirModeOut                // Push-pull output
	DirModeOD                 // Open-drain output
	DirModeQB                 // Quasi-bidirectional

	// DirModeHW hands the pin to its peripheral. The NUC122 encodes it as
	// quasi-bidirectional, so it is the same value.
	DirModeHW = DirModeQB
)

func (m DirMode) String() string {
	switch m {
	case DirModeIn:
		return "in"
	case DirModeOut:
		return "out"
	case DirModeOD:
		return "od"
	case DirModeQB:
		return "qb"
	}
	return "unknown"
}

// IntType selects the interrupt trigger of a pin.
type IntType uint8

const (
	FallingEdge IntType = iota
	RisingEdge
	BothEdges
	LowLevel
	HighLevel
	BothLevel
)

func (t IntType) String() string {
	switch t {
	case FallingEdge:
		return "falling"
	case RisingEdge:
		return "rising"
	case BothEdges:
		return "both-edges"
	case LowLevel:
		return "low"
	case HighLevel:
		return "high"
	case BothLevel:
		return "both-levels"
	}
	return "unknown"
}

// IsLevel reports whether t is level sensitive.
func (t IntType) IsLevel() bool {
	return t == LowLevel || t == HighLevel || t == BothLevel
}

// Function is the peripheral a pin is connected to through the multiplexer.
// At most one function is selected per pin; setting another replaces it.
type Function uint8

const (
	FunctionGPIO Function = iota
	FunctionSPI
	FunctionI2C
	FunctionPWM
	FunctionTimer
	FunctionUART
	FunctionExtInt
)

func (f Function) String() string {
	switch f {
	case FunctionGPIO:
		return "GPIO"
	case FunctionSPI:
		return "SPI"
	case FunctionI2C:
		return "I2C"
	case FunctionPWM:
		return "PWM"
	case FunctionTimer:
		return "TIMER"
	case FunctionUART:
		return "UART"
	case FunctionExtInt:
		return "EXTINT"
	}
	return "unknown"
}
