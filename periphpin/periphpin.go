// Package periphpin exposes NUC122 pins as periph.io GPIO pins.
//
// Pins read and write through the registered xgpio driver. Edge detection
// uses the pin interrupts: the port callback wakes WaitForEdge.
package periphpin

import (
	"errors"
	"sync"
	"time"

	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/xgpio"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

var (
	ErrPullDown       = errors.New("periphpin: pull-down not supported")
	ErrPWM            = errors.New("periphpin: PWM not supported")
	ErrUnsupportedFun = errors.New("periphpin: function not supported on pin")
)

// Pin is one NUC122 pin. It implements gpio.PinIO and pin.PinFunc.
type Pin struct {
	pin    xgpio.Pin
	name   string
	number int

	mu   sync.Mutex
	pull gpio.Pull
	edge gpio.Edge
	fn   pin.Func

	edges chan struct{}
}

// New returns the periph.io view of p.
func New(p xgpio.Pin) *Pin {
	return &Pin{
		pin:    p,
		name:   nuc122.PinName(p),
		number: number(p),
		pull:   gpio.PullUp,
		fn:     gpio.IN,
		edges:  make(chan struct{}, 1),
	}
}

// number returns the pin's position counting 16 pins per port from PA0.
func number(p xgpio.Pin) int {
	for n, port := range []xgpio.Port{nuc122.PortA, nuc122.PortB, nuc122.PortC, nuc122.PortD} {
		if p.Port() == port {
			return n*16 + int(p.Index())
		}
	}
	return -1
}

// Pins returns every bonded pin.
func Pins() []*Pin {
	var out []*Pin
	for _, p := range nuc122.Pins() {
		out = append(out, New(p))
	}
	return out
}

// Register adds every bonded pin to the periph.io registry.
func Register() error {
	for _, p := range Pins() {
		if err := gpioreg.Register(p); err != nil {
			return err
		}
	}
	return nil
}

// String implements conn.Resource.
func (p *Pin) String() string {
	return p.name
}

// Halt stops edge detection.
func (p *Pin) Halt() error {
	return p.watch(gpio.NoEdge)
}

// Name implements pin.Pin.
func (p *Pin) Name() string {
	return p.name
}

// Number implements pin.Pin.
func (p *Pin) Number() int {
	return p.number
}

// Function implements pin.Pin.
func (p *Pin) Function() string {
	return string(p.Func())
}

// Func implements pin.PinFunc.
func (p *Pin) Func() pin.Func {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fn
}

// SupportedFuncs implements pin.PinFunc.
func (p *Pin) SupportedFuncs() []pin.Func {
	out := []pin.Func{gpio.IN, gpio.OUT}
	for _, sig := range nuc122.SignalsFor(p.pin) {
		out = append(out, pin.Func(sig))
	}
	return out
}

// SetFunc implements pin.PinFunc.
func (p *Pin) SetFunc(f pin.Func) error {
	var err error
	switch f {
	case gpio.IN:
		err = xgpio.SPinTypeGPIOInput(p.pin)
	case gpio.OUT:
		err = xgpio.SPinTypeGPIOOutput(p.pin)
	default:
		err = p.setSignal(xgpio.Signal(f))
	}
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.fn = f
	p.mu.Unlock()
	return nil
}

func (p *Pin) setSignal(sig xgpio.Signal) error {
	for _, s := range nuc122.SignalsFor(p.pin) {
		if s == sig {
			fn, _ := sig.Function()
			return xgpio.MustDriver().PinTypeSet(fn, sig, p.pin)
		}
	}
	return ErrUnsupportedFun
}

// In configures the pin as an input. PullUp selects the quasi-bidirectional
// mode, whose weak pull-up is the only one the port has.
func (p *Pin) In(pull gpio.Pull, edge gpio.Edge) error {
	var err error
	switch pull {
	case gpio.Float:
		err = xgpio.SPinTypeGPIOInput(p.pin)
	case gpio.PullUp:
		if err = xgpio.SPinWrite(p.pin, true); err == nil {
			err = xgpio.SPinTypeGPIOOutputQB(p.pin)
		}
	case gpio.PullDown:
		return ErrPullDown
	case gpio.PullNoChange:
		err = xgpio.MustDriver().PinFunctionSet(xgpio.FunctionGPIO, p.pin.Port(), p.pin.Mask())
	}
	if err != nil {
		return err
	}
	p.mu.Lock()
	if pull != gpio.PullNoChange {
		p.pull = pull
	}
	p.fn = gpio.IN
	p.mu.Unlock()
	return p.watch(edge)
}

// Read implements gpio.PinIn.
func (p *Pin) Read() gpio.Level {
	v, _ := xgpio.SPinRead(p.pin)
	return gpio.Level(v)
}

// WaitForEdge waits for an edge selected by In. A negative timeout waits
// forever.
func (p *Pin) WaitForEdge(timeout time.Duration) bool {
	select {
	case <-p.edges:
		return true
	default:
	}
	if timeout == 0 {
		return false
	}
	if timeout < 0 {
		<-p.edges
		return true
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-p.edges:
		return true
	case <-t.C:
		return false
	}
}

// Pull implements gpio.PinIn.
func (p *Pin) Pull() gpio.Pull {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pull
}

// DefaultPull returns PullUp, the quasi-bidirectional reset mode.
func (p *Pin) DefaultPull() gpio.Pull {
	return gpio.PullUp
}

// Out drives the pin push-pull. The level is written before the mode so
// the pin does not glitch.
func (p *Pin) Out(l gpio.Level) error {
	if err := xgpio.SPinWrite(p.pin, bool(l)); err != nil {
		return err
	}
	p.mu.Lock()
	isOut := p.fn == gpio.OUT
	p.mu.Unlock()
	if isOut {
		return nil
	}
	if err := p.watch(gpio.NoEdge); err != nil {
		return err
	}
	if err := xgpio.SPinTypeGPIOOutput(p.pin); err != nil {
		return err
	}
	p.mu.Lock()
	p.fn = gpio.OUT
	p.mu.Unlock()
	return nil
}

// PWM is not available through this package.
func (p *Pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return ErrPWM
}

var (
	_ gpio.PinIO  = (*Pin)(nil)
	_ pin.PinFunc = (*Pin)(nil)
)
