package board

import (
	"fmt"

	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/suites"
	"github.com/JackieYan/cox/xgpio"
)

// Apply validates the description and programs its pin assignments and
// debounce settings into g.
func (c *Config) Apply(g *nuc122.GPIO) error {
	if err := c.Validate(); err != nil {
		return err
	}
	assigned, _ := c.Assignments()
	for _, a := range assigned {
		if err := apply(g, a); err != nil {
			return fmt.Errorf("pin %s: %w", a.Name, err)
		}
	}

	d := c.Debounce
	if d == nil {
		return nil
	}
	src, _ := debounceSource(d.Source)
	if err := g.DebounceTimeSet(src, d.Select); err != nil {
		return err
	}
	pins, _ := parsePins(d.Pins)
	for _, p := range pins {
		if err := g.DebounceEnable(p.Port(), p.Mask()); err != nil {
			return fmt.Errorf("debounce %s: %w", nuc122.PinName(p), err)
		}
	}
	return nil
}

func apply(g *nuc122.GPIO, a Assignment) error {
	port, mask := a.Pin.Port(), a.Pin.Mask()
	if a.Signal != "" {
		fn, _ := a.Signal.Function()
		return g.PinTypeSet(fn, a.Signal, a.Pin)
	}
	if err := g.DirModeSet(port, mask, a.Mode); err != nil {
		return err
	}
	return g.PinFunctionSet(xgpio.FunctionGPIO, port, mask)
}

// Configure copies the loopback, reserved pins and timing into b.
func (c *Config) Configure(b *suites.Board) error {
	if err := c.Validate(); err != nil {
		return err
	}
	loop, _ := parsePins([]string{c.Loopback.Out, c.Loopback.In})
	b.LoopOut, b.LoopIn = loop[0], loop[1]
	b.Reserved, _ = parsePins(c.Reserved)
	b.TimerPrescale = *c.Timer.Prescale
	b.TimerCompare = c.Timer.Compare
	b.Budget = c.Budget
	return nil
}
