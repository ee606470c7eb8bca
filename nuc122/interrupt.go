package nuc122

import (
	"github.com/JackieYan/cox/reg"
	"github.com/JackieYan/cox/xcore"
	"github.com/JackieYan/cox/xgpio"
)

// Registry holds one interrupt callback per GPIO port.
// A slot starts empty; registering again replaces the callback.
type Registry struct {
	slots [NumPorts]xcore.EventCallback
}

// Set stores cb for port n with interrupts masked.
func (r *Registry) Set(n int, cb xcore.EventCallback) {
	reg.Critical(func() {
		r.slots[n] = cb
	})
}

// Get returns the callback of port n, or nil.
func (r *Registry) Get(n int) xcore.EventCallback {
	return r.slots[n]
}

// Pins served by each GPIO interrupt line on port B
const (
	portBEINT0Pins = xgpio.Pin14
	portBEINT1Pins = xgpio.Pin15
	portBGPABPins  = xgpio.AllPins &^ (portBEINT0Pins | portBEINT1Pins)
)

// irqSource is one port's share of an interrupt line.
type irqSource struct {
	port int
	pins xgpio.PinSet
}

var (
	gpabSources  = []irqSource{{0, xgpio.AllPins}, {1, portBGPABPins}}
	gpcdSources  = []irqSource{{2, xgpio.AllPins}, {3, xgpio.AllPins}}
	eint0Sources = []irqSource{{1, portBEINT0Pins}}
	eint1Sources = []irqSource{{1, portBEINT1Pins}}
)

func sourcesOf(irq xcore.IRQ) []irqSource {
	switch irq {
	case IRQGPAB:
		return gpabSources
	case IRQGPCD:
		return gpcdSources
	case IRQEINT0:
		return eint0Sources
	case IRQEINT1:
		return eint1Sources
	}
	return nil
}

// pinIRQs returns the interrupt lines that serve pins of port n.
func pinIRQs(n int, pins xgpio.PinSet) []xcore.IRQ {
	var out []xcore.IRQ
	switch n {
	case 0:
		out = append(out, IRQGPAB)
	case 1:
		if pins&portBGPABPins != 0 {
			out = append(out, IRQGPAB)
		}
		if pins&portBEINT0Pins != 0 {
			out = append(out, IRQEINT0)
		}
		if pins&portBEINT1Pins != 0 {
			out = append(out, IRQEINT1)
		}
	default:
		out = append(out, IRQGPCD)
	}
	return out
}

// IRQs returns the interrupt lines that serve pins on port.
func IRQs(port xgpio.Port, pins xgpio.PinSet) ([]xcore.IRQ, error) {
	n, err := checkPins(port, pins)
	if err != nil {
		return nil, err
	}
	return pinIRQs(n, pins), nil
}

func triggerCode(t xgpio.IntType) (uint32, bool) {
	switch t {
	case xgpio.FallingEdge:
		return TriggerFallingEdge, true
	case xgpio.RisingEdge:
		return TriggerRisingEdge, true
	case xgpio.BothEdges:
		return TriggerBothEdges, true
	case xgpio.LowLevel:
		return TriggerLowLevel, true
	case xgpio.HighLevel:
		return TriggerHighLevel, true
	case xgpio.BothLevel:
		return TriggerBothLevel, true
	}
	return 0, false
}

// PinIntCallbackInit implements xgpio.Driver. The callback covers the
// whole port; pins only selects and validates the port.
func (g *GPIO) PinIntCallbackInit(port xgpio.Port, pins xgpio.PinSet, cb xcore.EventCallback) error {
	n, err := checkPins(port, pins)
	if err != nil {
		return err
	}
	g.callbacks.Set(n, cb)
	return nil
}

// PinIntEnable implements xgpio.Driver. It programs IMD and IEN for pins
// and enables the interrupt lines serving them.
func (g *GPIO) PinIntEnable(port xgpio.Port, pins xgpio.PinSet, trigger xgpio.IntType) error {
	n, err := checkPins(port, pins)
	if err != nil {
		return err
	}
	code, ok := triggerCode(trigger)
	if !ok {
		return ErrInvalidTrigger
	}
	return g.IntEnableCode(n, pins, code)
}

// IntEnableCode is PinIntEnable with a raw NUC122 trigger code.
func (g *GPIO) IntEnableCode(n int, pins xgpio.PinSet, code uint32) error {
	if n < 0 || n >= NumPorts {
		return ErrInvalidPort
	}
	if _, err := checkPins(xgpio.Port(PortBase(n)), pins); err != nil {
		return err
	}
	switch code {
	case TriggerFallingEdge, TriggerRisingEdge, TriggerBothEdges,
		TriggerLowLevel, TriggerHighLevel, TriggerBothLevel:
	default:
		return ErrInvalidTrigger
	}
	base := PortBase(n)
	p := uint32(pins)

	var imd uint32
	if code&triggerLevelBit != 0 {
		imd = p
	}
	reg.Modify(g.bus, base+GPIOIMD, p, imd)

	var ien uint32
	if code&triggerFallingBit != 0 {
		ien |= p << IENFallingShift
	}
	if code&triggerRisingBit != 0 {
		ien |= p << IENRisingShift
	}
	reg.Modify(g.bus, base+GPIOIEN, p<<IENFallingShift|p<<IENRisingShift, ien)

	if g.nvic != nil {
		for _, irq := range pinIRQs(n, pins) {
			g.nvic.Enable(irq)
		}
	}
	return nil
}

// PinIntDisable implements xgpio.Driver. Only IEN changes; the callback
// and the interrupt line stay as they are.
func (g *GPIO) PinIntDisable(port xgpio.Port, pins xgpio.PinSet) error {
	if _, err := checkPins(port, pins); err != nil {
		return err
	}
	p := uint32(pins)
	reg.ClearBits(g.bus, uint32(port)+GPIOIEN, p<<IENFallingShift|p<<IENRisingShift)
	return nil
}

// PinIntStatus implements xgpio.Driver. Safe from interrupt context.
func (g *GPIO) PinIntStatus(port xgpio.Port) (xgpio.PinSet, error) {
	if _, ok := portIndex(port); !ok {
		return 0, ErrInvalidPort
	}
	return xgpio.PinSetOf(g.bus.Read32(uint32(port) + GPIOISRC)), nil
}

// PinIntClear implements xgpio.Driver. ISRC is write-one-to-clear, so this
// is a single write. Safe from interrupt context.
func (g *GPIO) PinIntClear(port xgpio.Port, pins xgpio.PinSet) error {
	if _, err := checkPins(port, pins); err != nil {
		return err
	}
	g.bus.Write32(uint32(port)+GPIOISRC, uint32(pins))
	return nil
}

// HandleIRQ services a GPIO interrupt line. For each port it serves, it
// reads ISRC once, passes the pending pins to the port's callback as one
// mask, then clears those pins. A port without a callback is only cleared.
func (g *GPIO) HandleIRQ(irq xcore.IRQ) {
	for _, src := range sourcesOf(irq) {
		base := PortBase(src.port)
		status := g.bus.Read32(base+GPIOISRC) & uint32(src.pins)
		if status == 0 {
			continue
		}
		xcore.RecordDispatch(irq, base, status)
		if cb := g.callbacks.Get(src.port); cb != nil {
			cb(nil, 0, status, nil)
		} else if xcore.IsDebugEnabled() {
			xcore.DebugPrintln("[GPIO] unhandled interrupt on port " + PortName(xgpio.Port(base)) +
				" status=" + xcore.Hex32(status))
		}
		g.bus.Write32(base+GPIOISRC, status)
	}
}

// HasCallback reports whether port has a registered callback.
func (g *GPIO) HasCallback(port xgpio.Port) bool {
	n, ok := portIndex(port)
	return ok && g.callbacks.Get(n) != nil
}
