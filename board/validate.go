package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/xgpio"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	ErrUnknownAssignment = errors.New("unknown pin assignment")
	ErrDuplicateSignal   = errors.New("signal assigned to more than one pin")
	ErrLoopback          = errors.New("loopback needs two distinct pins")
	ErrLoopbackReserved  = errors.New("loopback pin is reserved")
	ErrLoopbackAssigned  = errors.New("loopback pin assigned to a peripheral")
	ErrDebounceSource    = errors.New("debounce source must be hclk or 10k")
)

var modes = map[string]xgpio.DirMode{
	"in":  xgpio.DirModeIn,
	"out": xgpio.DirModeOut,
	"od":  xgpio.DirModeOD,
	"qb":  xgpio.DirModeQB,
}

// Assignment is one validated entry of the pins section.
type Assignment struct {
	Pin  xgpio.Pin
	Name string

	// Signal is set for peripheral assignments, Mode otherwise.
	Signal xgpio.Signal
	Mode   xgpio.DirMode
}

func parseAssignment(name, value string) (Assignment, error) {
	pin, err := nuc122.PinByName(name)
	if err != nil {
		return Assignment{}, fmt.Errorf("pin %s: %w", name, err)
	}
	a := Assignment{Pin: pin, Name: nuc122.PinName(pin)}
	if mode, ok := modes[strings.ToLower(value)]; ok {
		a.Mode = mode
		return a, nil
	}
	sig := xgpio.Signal(strings.ToUpper(value))
	if _, ok := sig.Function(); !ok {
		return Assignment{}, fmt.Errorf("pin %s: %q: %w", a.Name, value, ErrUnknownAssignment)
	}
	if _, err := nuc122.LookupPinConfig(pin, sig); err != nil {
		return Assignment{}, fmt.Errorf("pin %s: %s: %w", a.Name, sig, err)
	}
	a.Signal = sig
	return a, nil
}

// Assignments returns the pins section ordered by pin name.
func (c *Config) Assignments() ([]Assignment, error) {
	names := maps.Keys(c.Pins)
	slices.Sort(names)

	var out []Assignment
	var errs []error
	for _, name := range names {
		a, err := parseAssignment(name, c.Pins[name])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, a)
	}
	return out, errors.Join(errs...)
}

func parsePins(names []string) ([]xgpio.Pin, error) {
	var out []xgpio.Pin
	var errs []error
	for _, name := range names {
		pin, err := nuc122.PinByName(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("pin %s: %w", name, err))
			continue
		}
		out = append(out, pin)
	}
	return out, errors.Join(errs...)
}

// Validate reports every problem of the description at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Board == "" {
		errs = append(errs, ErrEmptyBoard)
	}

	assigned, err := c.Assignments()
	if err != nil {
		errs = append(errs, err)
	}
	owner := map[xgpio.Signal]string{}
	for _, a := range assigned {
		if a.Signal == "" {
			continue
		}
		if prev, ok := owner[a.Signal]; ok {
			errs = append(errs, fmt.Errorf("%s on %s and %s: %w", a.Signal, prev, a.Name, ErrDuplicateSignal))
			continue
		}
		owner[a.Signal] = a.Name
	}

	reserved, err := parsePins(c.Reserved)
	if err != nil {
		errs = append(errs, err)
	}
	loop, err := parsePins([]string{c.Loopback.Out, c.Loopback.In})
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("loopback: %w", err))
	case loop[0] == loop[1]:
		errs = append(errs, ErrLoopback)
	default:
		for _, p := range loop {
			if slices.Contains(reserved, p) {
				errs = append(errs, fmt.Errorf("%s: %w", nuc122.PinName(p), ErrLoopbackReserved))
			}
			for _, a := range assigned {
				if a.Pin == p && a.Signal != "" {
					errs = append(errs, fmt.Errorf("%s: %w", a.Name, ErrLoopbackAssigned))
				}
			}
		}
	}

	if c.Timer.Compare < 2 || c.Timer.Compare > nuc122.TCMPRTCMP.Mask {
		errs = append(errs, fmt.Errorf("timer compare %d: %w", c.Timer.Compare, nuc122.ErrCompareRange))
	}

	if d := c.Debounce; d != nil {
		if _, ok := debounceSource(d.Source); !ok {
			errs = append(errs, fmt.Errorf("%q: %w", d.Source, ErrDebounceSource))
		}
		if d.Select > 15 {
			errs = append(errs, fmt.Errorf("debounce select %d: %w", d.Select, nuc122.ErrInvalidDebounce))
		}
		if _, err := parsePins(d.Pins); err != nil {
			errs = append(errs, fmt.Errorf("debounce: %w", err))
		}
	}
	return errors.Join(errs...)
}

func debounceSource(s string) (nuc122.DebounceSource, bool) {
	switch strings.ToLower(s) {
	case "hclk":
		return nuc122.DebounceHCLK, true
	case "10k":
		return nuc122.Debounce10K, true
	}
	return 0, false
}
