package sim

import (
	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/reg"
)

func (c *Chip) installNVIC() {
	c.OnWrite(nuc122.NVICISER, func(m reg.Mem, old, value uint32) uint32 {
		return old | value
	})
	c.OnWrite(nuc122.NVICICER, func(m reg.Mem, old, value uint32) uint32 {
		m.Poke(nuc122.NVICISER, m.Peek(nuc122.NVICISER)&^value)
		return 0
	})
}
