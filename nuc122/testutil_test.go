package nuc122_test

import (
	"testing"

	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/nuc122/sim"
	"github.com/JackieYan/cox/xgpio"
)

// newBoard returns a simulated chip with the GPIO controller registered as
// the portable driver and its interrupt lines attached.
func newBoard(t *testing.T, latency uint64) (*sim.Chip, *nuc122.GPIO) {
	t.Helper()
	chip := sim.New(sim.Options{ClearLatency: latency})
	g := nuc122.NewGPIO(chip, nuc122.NewNVIC(chip))
	chip.AttachGPIO(g)
	xgpio.SetDriver(g)
	t.Cleanup(func() { xgpio.SetDriver(nil) })
	return chip, g
}

func mfp(chip *sim.Chip, n int) uint32 {
	return chip.Peek(nuc122.MFPAddr(n))
}

func altMFP(chip *sim.Chip) uint32 {
	return chip.Peek(nuc122.GCRBase + nuc122.GCRALTMFP)
}
