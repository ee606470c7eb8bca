package periphpin

import (
	"errors"

	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/reg"
	"github.com/JackieYan/cox/xcore"
	"github.com/JackieYan/cox/xgpio"
	"periph.io/x/conn/v3/gpio"
)

var ErrInvalidEdge = errors.New("periphpin: invalid edge")

// The GPIO callback slot is per port, so one dispatcher per port fans the
// interrupt mask out to the watching pins. Watching a pin replaces any
// other callback installed on its port.
//
// The table is shared with interrupt context and only changes with
// interrupts masked.
var watches [nuc122.NumPorts][16]*Pin

func dispatcher(n int, port xgpio.Port) xcore.EventCallback {
	return func(cbData any, event uint32, param uint32, msgData any) uint32 {
		pending := xgpio.PinSetOf(param)
		xgpio.PinIntClear(port, pending)

		var woken [16]*Pin
		reg.Critical(func() { woken = watches[n] })
		for _, i := range pending.Indexes() {
			if p := woken[i]; p != nil {
				select {
				case p.edges <- struct{}{}:
				default:
				}
			}
		}
		return 0
	}
}

func trigger(edge gpio.Edge) (xgpio.IntType, bool) {
	switch edge {
	case gpio.RisingEdge:
		return xgpio.RisingEdge, true
	case gpio.FallingEdge:
		return xgpio.FallingEdge, true
	case gpio.BothEdges:
		return xgpio.BothEdges, true
	}
	return 0, false
}

// watch arms edge detection.
func (p *Pin) watch(edge gpio.Edge) error {
	port, i := p.pin.Port(), p.pin.Index()
	if p.number < 0 {
		return nuc122.ErrInvalidPort
	}
	n := p.number / 16
	if edge == gpio.NoEdge {
		reg.Critical(func() {
			if watches[n][i] == p {
				watches[n][i] = nil
			}
		})
		p.setEdge(gpio.NoEdge)
		return xgpio.SPinIntDisable(p.pin)
	}
	t, ok := trigger(edge)
	if !ok {
		return ErrInvalidEdge
	}

	reg.Critical(func() { watches[n][i] = p })
	if err := xgpio.PinIntCallbackInit(port, p.pin.Mask(), dispatcher(n, port)); err != nil {
		return err
	}
	select {
	case <-p.edges:
	default:
	}
	p.setEdge(edge)
	return xgpio.SPinIntEnable(p.pin, t)
}

func (p *Pin) setEdge(edge gpio.Edge) {
	p.mu.Lock()
	p.edge = edge
	p.mu.Unlock()
}
