// Package sim is a host model of the NUC122 for running drivers under
// go test. It wires register behavior into a reg.Sim bus: write-one-to-clear
// interrupt status with a configurable clear latency, pin edge and level
// detection, pin loopback, the timers and the NVIC enable registers.
//
// Interrupt handlers attached to a line run synchronously between two bus
// accesses of the code under test, the way an exception preempts the
// instruction stream on the core. Handlers do not nest.
package sim

import (
	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/reg"
	"github.com/JackieYan/cox/xcore"
	"github.com/JackieYan/cox/xgpio"
)

// DefaultMaxReentry bounds back-to-back handler entries for one service
// pass, so a status that never clears cannot hang a test.
const DefaultMaxReentry = 64

// Options configures a Chip.
type Options struct {
	// ClearLatency is the number of bus cycles between an ISRC write and
	// the cleared bits reading as zero. Zero clears immediately.
	ClearLatency uint64
	// MaxReentry overrides DefaultMaxReentry when non-zero.
	MaxReentry int
}

type pendingClear struct {
	addr uint32
	bits uint32
	due  uint64
}

type link struct {
	from xgpio.Pin
	to   xgpio.Pin
}

// Chip is the simulated microcontroller. It is a reg.Bus.
type Chip struct {
	*reg.Sim

	latency    uint64
	maxReentry int

	// Guarded by the bus lock.
	cycle   uint64
	pending []pendingClear
	inputs  [nuc122.NumPorts]uint16
	links   []link
	timers  [4]timerState

	// Owned by the goroutine driving the bus.
	handlers  map[xcore.IRQ]func()
	entries   map[xcore.IRQ]int
	servicing bool
	overruns  int
}

// New creates a chip in its reset state.
func New(opts Options) *Chip {
	c := &Chip{
		Sim:        reg.NewSim(),
		latency:    opts.ClearLatency,
		maxReentry: opts.MaxReentry,
		handlers:   make(map[xcore.IRQ]func()),
		entries:    make(map[xcore.IRQ]int),
	}
	if c.maxReentry <= 0 {
		c.maxReentry = DefaultMaxReentry
	}
	c.resetState()
	c.installGPIO()
	c.installTimers()
	c.installNVIC()
	c.OnTick(c.tick)
	c.OnAccess(c.service)
	return c
}

func (c *Chip) resetState() {
	for n := 0; n < nuc122.NumPorts; n++ {
		base := nuc122.PortBase(n)
		c.Poke(base+nuc122.GPIOPMD, 0xFFFFFFFF)
		c.Poke(base+nuc122.GPIODOUT, 0x0000FFFF)
		c.inputs[n] = 0xFFFF // pulled up
	}
	c.Poke(nuc122.GPIODBNCECON, nuc122.DBNCECONICLKON)
}

func (c *Chip) tick(m reg.Mem, cycle uint64) {
	c.cycle = cycle
	if len(c.pending) > 0 {
		kept := c.pending[:0]
		for _, p := range c.pending {
			if p.due <= cycle {
				m.Poke(p.addr, m.Peek(p.addr)&^p.bits)
			} else {
				kept = append(kept, p)
			}
		}
		c.pending = kept
	}
	for n := 0; n < nuc122.NumPorts; n++ {
		c.updatePins(m, n)
		c.assertLevels(m, n)
	}
}

// Attach installs the handler run when irq is pending and enabled.
func (c *Chip) Attach(irq xcore.IRQ, handler func()) {
	c.handlers[irq] = handler
}

// AttachGPIO routes the four GPIO interrupt lines to g.
func (c *Chip) AttachGPIO(g *nuc122.GPIO) {
	for _, irq := range []xcore.IRQ{nuc122.IRQEINT0, nuc122.IRQEINT1, nuc122.IRQGPAB, nuc122.IRQGPCD} {
		irq := irq
		c.Attach(irq, func() { g.HandleIRQ(irq) })
	}
}

// AttachTimer routes t's interrupt line to t.
func (c *Chip) AttachTimer(t *nuc122.Timer) {
	c.Attach(t.IRQ(), t.HandleIRQ)
}

// Entries returns how many times the handler of irq has run.
func (c *Chip) Entries(irq xcore.IRQ) int {
	return c.entries[irq]
}

// Overruns returns how many service passes hit the re-entry bound.
func (c *Chip) Overruns() int {
	return c.overruns
}

// Pending reports whether irq is requesting service, ignoring the NVIC
// enable.
func (c *Chip) Pending(irq xcore.IRQ) bool {
	var p bool
	c.Do(func(m reg.Mem) { p = c.pendingLocked(m, irq) })
	return p
}

func (c *Chip) pendingLocked(m reg.Mem, irq xcore.IRQ) bool {
	isrc := func(n int) uint32 {
		return m.Peek(nuc122.PortBase(n)+nuc122.GPIOISRC) & 0xFFFF
	}
	switch irq {
	case nuc122.IRQGPAB:
		return isrc(0)|isrc(1)&0x3FFF != 0
	case nuc122.IRQGPCD:
		return isrc(2)|isrc(3) != 0
	case nuc122.IRQEINT0:
		return isrc(1)&uint32(xgpio.Pin14) != 0
	case nuc122.IRQEINT1:
		return isrc(1)&uint32(xgpio.Pin15) != 0
	}
	if irq >= nuc122.IRQTMR0 && irq <= nuc122.IRQTMR3 {
		base := nuc122.TimerBase(int(irq - nuc122.IRQTMR0))
		return m.Peek(base+nuc122.TimerTISR)&nuc122.TISRTIF != 0 &&
			m.Peek(base+nuc122.TimerTCSR)&nuc122.TCSRIE != 0
	}
	return false
}

// next returns the lowest numbered line that is pending, enabled and
// has a handler.
func (c *Chip) next() (xcore.IRQ, bool) {
	var irq xcore.IRQ
	found := false
	c.Do(func(m reg.Mem) {
		iser := m.Peek(nuc122.NVICISER)
		for i := xcore.IRQ(0); i < 32; i++ {
			if iser&(1<<i) == 0 || c.handlers[i] == nil {
				continue
			}
			if c.pendingLocked(m, i) {
				irq, found = i, true
				return
			}
		}
	})
	return irq, found
}

// service runs pending handlers until nothing is pending. A handler still
// pending when it returns is entered again.
func (c *Chip) service() {
	if c.servicing {
		return
	}
	c.servicing = true
	defer func() { c.servicing = false }()

	for rounds := 0; ; rounds++ {
		irq, ok := c.next()
		if !ok {
			return
		}
		if rounds >= c.maxReentry {
			c.overruns++
			return
		}
		c.entries[irq]++
		c.handlers[irq]()
	}
}

// Raise runs any pending handlers now. Tests call it after changing state
// with Poke.
func (c *Chip) Raise() {
	c.service()
}
