package nuc122

// GCR multi-function pin registers
const (
	GCRGPAMFP uint32 = 0x30
	GCRGPBMFP uint32 = 0x34
	GCRGPCMFP uint32 = 0x38
	GCRGPDMFP uint32 = 0x3C
	GCRALTMFP uint32 = 0x50
)

// MFPAddr returns the multi-function register of GPIO port n (0 = A).
func MFPAddr(n int) uint32 {
	return GCRBase + GCRGPAMFP + uint32(n)*4
}

// CLK registers
const CLKAPBCLK uint32 = 0x08

// APBCLK clock enable bits
const (
	APBCLKWDT   uint32 = 1 << 0
	APBCLKRTC   uint32 = 1 << 1
	APBCLKTMR0  uint32 = 1 << 2
	APBCLKTMR1  uint32 = 1 << 3
	APBCLKTMR2  uint32 = 1 << 4
	APBCLKTMR3  uint32 = 1 << 5
	APBCLKI2C0  uint32 = 1 << 8
	APBCLKSPI0  uint32 = 1 << 12
	APBCLKSPI1  uint32 = 1 << 13
	APBCLKUART0 uint32 = 1 << 16
	APBCLKUART1 uint32 = 1 << 17
	APBCLKPWM01 uint32 = 1 << 20
	APBCLKPWM23 uint32 = 1 << 21
	APBCLKUSBD  uint32 = 1 << 27
)
