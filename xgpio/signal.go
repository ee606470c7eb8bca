package xgpio

import "strings"

// Signal names a peripheral pin function, such as SPI0CLK or UART0RX.
type Signal string

// Peripheral signals
const (
	I2C0SCK Signal = "I2C0SCK"
	I2C0SDA Signal = "I2C0SDA"

	SPI0CLK  Signal = "SPI0CLK"
	SPI0MOSI Signal = "SPI0MOSI"
	SPI0MISO Signal = "SPI0MISO"
	SPI0CS   Signal = "SPI0CS"
	SPI1CLK  Signal = "SPI1CLK"
	SPI1MOSI Signal = "SPI1MOSI"
	SPI1MISO Signal = "SPI1MISO"
	SPI1CS   Signal = "SPI1CS"

	UART0RX  Signal = "UART0RX"
	UART0TX  Signal = "UART0TX"
	UART0RTS Signal = "UART0RTS"
	UART0CTS Signal = "UART0CTS"
	UART1RX  Signal = "UART1RX"
	UART1TX  Signal = "UART1TX"
	UART1RTS Signal = "UART1RTS"
	UART1CTS Signal = "UART1CTS"

	PWM0 Signal = "PWM0"
	PWM1 Signal = "PWM1"
	PWM2 Signal = "PWM2"
	PWM3 Signal = "PWM3"

	TIMCCP0 Signal = "TIMCCP0"
	TIMCCP1 Signal = "TIMCCP1"
	TIMCCP2 Signal = "TIMCCP2"
	TIMCCP3 Signal = "TIMCCP3"

	INT0 Signal = "INT0"
	INT1 Signal = "INT1"
)

// Function returns the peripheral function the signal belongs to, or
// FunctionGPIO and false for an unknown name.
func (s Signal) Function() (Function, bool) {
	name := string(s)
	switch {
	case strings.HasPrefix(name, "I2C"):
		return FunctionI2C, true
	case strings.HasPrefix(name, "SPI"):
		return FunctionSPI, true
	case strings.HasPrefix(name, "UART"):
		return FunctionUART, true
	case strings.HasPrefix(name, "PWM"):
		return FunctionPWM, true
	case strings.HasPrefix(name, "TIMCCP"):
		return FunctionTimer, true
	case strings.HasPrefix(name, "INT"):
		return FunctionExtInt, true
	}
	return FunctionGPIO, false
}
