package nuc122

import "github.com/JackieYan/cox/reg"

// TIMER register offsets
const (
	TimerTCSR  uint32 = 0x00 // Control and status
	TimerTCMPR uint32 = 0x04 // Compare
	TimerTISR  uint32 = 0x08 // Interrupt status
	TimerTDR   uint32 = 0x0C // Data (up counter)
)

// TCSR bits
const (
	TCSRDBGACK  uint32 = 0x80000000 // Ignore debug halt
	TCSRCEN     uint32 = 0x40000000 // Counter enable
	TCSRIE      uint32 = 0x20000000 // Interrupt enable
	TCSRCRST    uint32 = 0x04000000 // Counter reset
	TCSRCACT    uint32 = 0x02000000 // Counter active (read only)
	TCSRCTB     uint32 = 0x01000000 // Counter mode enable
	TCSRCTDREN  uint32 = 0x00010000 // Data register update enable
	TCSRModeOne uint32 = 0x00000000
	TCSRModePer uint32 = 0x08000000
	TCSRModeTog uint32 = 0x10000000
	TCSRModeCon uint32 = 0x18000000
)

// TIMER fields
var (
	TCSRMode     = reg.Field{Mask: 0x18000000, Shift: 27}
	TCSRPrescale = reg.Field{Mask: 0x000000FF, Shift: 0}
	TCMPRTCMP    = reg.Field{Mask: 0x00FFFFFF, Shift: 0}
	TDRData      = reg.Field{Mask: 0x00FFFFFF, Shift: 0}
)

// TISR bits
const TISRTIF uint32 = 0x00000001

// TimerBase returns the register block of timer n, or 0 if n is not 0..3.
func TimerBase(n int) uint32 {
	switch n {
	case 0:
		return TIMER0Base
	case 1:
		return TIMER1Base
	case 2:
		return TIMER2Base
	case 3:
		return TIMER3Base
	}
	return 0
}
