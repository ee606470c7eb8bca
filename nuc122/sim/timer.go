package sim

import (
	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/reg"
)

type timerState struct {
	prescale uint32
	counter  uint32
	toggle   bool
}

func (c *Chip) installTimers() {
	for i := 0; i < 4; i++ {
		i := i
		base := nuc122.TimerBase(i)
		c.OnWrite(base+nuc122.TimerTCSR, func(m reg.Mem, old, value uint32) uint32 {
			if value&nuc122.TCSRCRST != 0 {
				c.timers[i] = timerState{}
				m.Poke(base+nuc122.TimerTDR, 0)
				value &^= nuc122.TCSRCRST | nuc122.TCSRCEN
			}
			value &^= nuc122.TCSRCACT
			if value&nuc122.TCSRCEN != 0 {
				value |= nuc122.TCSRCACT
			}
			return value
		})
		c.OnWrite(base+nuc122.TimerTISR, func(m reg.Mem, old, value uint32) uint32 {
			return old &^ (value & nuc122.TISRTIF)
		})
		c.OnWrite(base+nuc122.TimerTDR, func(m reg.Mem, old, value uint32) uint32 {
			return old // read only
		})
	}
}

// Advance runs the timers for ticks timer clocks, then services any
// interrupt that became pending.
func (c *Chip) Advance(ticks int) {
	for ; ticks > 0; ticks-- {
		c.Do(c.timerTick)
		c.service()
	}
}

func (c *Chip) timerTick(m reg.Mem) {
	for i := range c.timers {
		base := nuc122.TimerBase(i)
		tcsr := m.Peek(base + nuc122.TimerTCSR)
		if tcsr&nuc122.TCSRCEN == 0 {
			continue
		}
		t := &c.timers[i]
		t.prescale++
		if t.prescale <= nuc122.TCSRPrescale.Get(tcsr) {
			continue
		}
		t.prescale = 0
		t.counter = (t.counter + 1) & nuc122.TDRData.Mask

		compare := nuc122.TCMPRTCMP.Get(m.Peek(base + nuc122.TimerTCMPR))
		if t.counter == compare {
			m.Poke(base+nuc122.TimerTISR, m.Peek(base+nuc122.TimerTISR)|nuc122.TISRTIF)
			switch nuc122.TimerMode(nuc122.TCSRMode.Get(tcsr)) {
			case nuc122.TimerOneShot:
				t.counter = 0
				m.Poke(base+nuc122.TimerTCSR, tcsr&^(nuc122.TCSRCEN|nuc122.TCSRCACT))
			case nuc122.TimerPeriodic:
				t.counter = 0
			case nuc122.TimerToggle:
				t.counter = 0
				t.toggle = !t.toggle
			}
		}
		if tcsr&nuc122.TCSRCTDREN != 0 {
			m.Poke(base+nuc122.TimerTDR, t.counter)
		}
	}
}

// TimerOutput returns the toggle-mode output level of timer i.
func (c *Chip) TimerOutput(i int) bool {
	var v bool
	c.Do(func(m reg.Mem) { v = c.timers[i].toggle })
	return v
}
