package sim

import (
	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/reg"
	"github.com/JackieYan/cox/xgpio"
)

func (c *Chip) installGPIO() {
	for n := 0; n < nuc122.NumPorts; n++ {
		n := n
		base := nuc122.PortBase(n)
		c.OnWrite(base+nuc122.GPIOISRC, func(m reg.Mem, old, value uint32) uint32 {
			value &= 0xFFFF
			if c.latency == 0 {
				return old &^ value
			}
			c.pending = append(c.pending, pendingClear{
				addr: base + nuc122.GPIOISRC,
				bits: value,
				due:  c.cycle + c.latency,
			})
			return old
		})
		c.OnWrite(base+nuc122.GPIODOUT, func(m reg.Mem, old, value uint32) uint32 {
			mask := m.Peek(base + nuc122.GPIODMASK)
			m.Poke(base+nuc122.GPIODOUT, (old&mask|value&^mask)&0xFFFF)
			c.propagate(m)
			return m.Peek(base + nuc122.GPIODOUT)
		})
		c.OnWrite(base+nuc122.GPIOPMD, func(m reg.Mem, old, value uint32) uint32 {
			m.Poke(base+nuc122.GPIOPMD, value)
			c.propagate(m)
			return value
		})
		c.OnWrite(base+nuc122.GPIOPIN, func(m reg.Mem, old, value uint32) uint32 {
			return old // read only
		})
	}
}

func pmdOf(m reg.Mem, n int, index uint8) uint32 {
	return (m.Peek(nuc122.PortBase(n)+nuc122.GPIOPMD) >> (2 * index)) & 0x3
}

// drive returns the level pin forces on the wire and whether it drives at
// all. Quasi-bidirectional and open-drain pins only pull low.
func (c *Chip) drive(m reg.Mem, n int, index uint8) (bool, bool) {
	dout := m.Peek(nuc122.PortBase(n)+nuc122.GPIODOUT)&(1<<index) != 0
	switch pmdOf(m, n, index) {
	case nuc122.PMDOutput:
		return dout, true
	case nuc122.PMDOpenDrain, nuc122.PMDQuasi:
		if !dout {
			return false, true
		}
	}
	return false, false
}

// updatePins recomputes the PIN register of port n.
func (c *Chip) updatePins(m reg.Mem, n int) {
	var v uint32
	for i := uint8(0); i < 16; i++ {
		level := c.inputs[n]&(1<<i) != 0
		if d, ok := c.drive(m, n, i); ok {
			level = d
		}
		if level {
			v |= 1 << i
		}
	}
	m.Poke(nuc122.PortBase(n)+nuc122.GPIOPIN, v)
}

func (c *Chip) propagate(m reg.Mem) {
	for _, l := range c.links {
		n, _ := portOf(l.from)
		d, ok := c.drive(m, n, l.from.Index())
		if !ok {
			d = true // released, pulled up
		}
		c.setLevel(m, l.to, d)
	}
}

func portOf(pin xgpio.Pin) (int, bool) {
	for n := 0; n < nuc122.NumPorts; n++ {
		if uint32(pin.Port()) == nuc122.PortBase(n) {
			return n, true
		}
	}
	return 0, false
}

// setLevel changes the external level seen by pin and latches any edge
// interrupt it causes. Caller holds the bus lock.
func (c *Chip) setLevel(m reg.Mem, pin xgpio.Pin, high bool) {
	n, ok := portOf(pin)
	if !ok {
		panic("sim: pin on unknown port")
	}
	bit := uint16(pin.Mask())
	old := c.inputs[n]&bit != 0
	if high {
		c.inputs[n] |= bit
	} else {
		c.inputs[n] &^= bit
	}
	c.updatePins(m, n)
	if old == high {
		c.assertLevels(m, n)
		return
	}

	base := nuc122.PortBase(n)
	b := uint32(bit)
	if m.Peek(base+nuc122.GPIOIMD)&b == 0 {
		ien := m.Peek(base + nuc122.GPIOIEN)
		rising := high && ien&(b<<nuc122.IENRisingShift) != 0
		falling := !high && ien&(b<<nuc122.IENFallingShift) != 0
		if rising || falling {
			m.Poke(base+nuc122.GPIOISRC, m.Peek(base+nuc122.GPIOISRC)|b)
		}
	}
	c.assertLevels(m, n)
}

// assertLevels latches level interrupts of port n whose level is present.
func (c *Chip) assertLevels(m reg.Mem, n int) {
	base := nuc122.PortBase(n)
	imd := m.Peek(base+nuc122.GPIOIMD) & 0xFFFF
	if imd == 0 {
		return
	}
	ien := m.Peek(base + nuc122.GPIOIEN)
	pin := m.Peek(base+nuc122.GPIOPIN) & 0xFFFF
	low := ien >> nuc122.IENFallingShift & 0xFFFF
	high := ien >> nuc122.IENRisingShift & 0xFFFF
	set := imd & (high&pin | low&^pin)
	if set != 0 {
		m.Poke(base+nuc122.GPIOISRC, m.Peek(base+nuc122.GPIOISRC)|set)
	}
}

// SetInput drives pin from outside the chip, then runs any handler the
// change makes pending.
func (c *Chip) SetInput(pin xgpio.Pin, high bool) {
	c.Do(func(m reg.Mem) { c.setLevel(m, pin, high) })
	c.service()
}

// Pulse drives pin to the opposite level and back.
func (c *Chip) Pulse(pin xgpio.Pin, high bool) {
	c.SetInput(pin, high)
	c.SetInput(pin, !high)
}

// Link connects output pin from to input pin to, as a jumper wire on the
// board would. to follows from's driven level; a released line reads high.
func (c *Chip) Link(from, to xgpio.Pin) {
	c.Do(func(m reg.Mem) {
		c.links = append(c.links, link{from: from, to: to})
		c.propagate(m)
	})
	c.service()
}

// ClearLatency returns the configured ISRC clear latency in bus cycles.
func (c *Chip) ClearLatency() uint64 {
	return c.latency
}
