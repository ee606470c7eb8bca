package reg

import (
	"sync"
)

// Mem is raw register storage. Hooks receive a Mem so they can update
// related registers without re-entering the bus.
type Mem interface {
	Peek(addr uint32) uint32
	Poke(addr uint32, value uint32)
}

// WriteHook intercepts a bus write. It receives the stored value and the
// value being written and returns what the register will hold afterwards.
type WriteHook func(m Mem, old, value uint32) uint32

// TickHook runs before every bus access with the new cycle count.
type TickHook func(m Mem, cycle uint64)

// Sim is an in-memory Bus for running drivers on the host.
//
// Every Read32, Write32 and Modify32 counts as bus cycles. Hooks run with the
// bus locked; the access hook runs after the lock is released and is where a
// chip model delivers interrupts, between two accesses of the code under test.
type Sim struct {
	mu     sync.Mutex
	mem    map[uint32]uint32
	writes map[uint32]WriteHook
	tick   TickHook
	after  func()
	cycle  uint64
}

// NewSim creates an empty simulated bus. Unwritten registers read as zero.
func NewSim() *Sim {
	return &Sim{
		mem:    make(map[uint32]uint32),
		writes: make(map[uint32]WriteHook),
	}
}

type simMem struct{ s *Sim }

func (m simMem) Peek(addr uint32) uint32 {
	return m.s.mem[addr]
}

func (m simMem) Poke(addr uint32, value uint32) {
	m.s.mem[addr] = value
}

func checkAligned(addr uint32) {
	if addr&3 != 0 {
		panic("reg: unaligned register address")
	}
}

// step advances the cycle counter. Caller holds s.mu.
func (s *Sim) step() {
	s.cycle++
	if s.tick != nil {
		s.tick(simMem{s}, s.cycle)
	}
}

func (s *Sim) store(addr uint32, value uint32) {
	if hook, ok := s.writes[addr]; ok {
		value = hook(simMem{s}, s.mem[addr], value)
	}
	s.mem[addr] = value
}

func (s *Sim) afterAccess() {
	s.mu.Lock()
	after := s.after
	s.mu.Unlock()
	if after != nil {
		after()
	}
}

// Read32 implements Bus.
func (s *Sim) Read32(addr uint32) uint32 {
	checkAligned(addr)
	s.mu.Lock()
	s.step()
	v := s.mem[addr]
	s.mu.Unlock()
	s.afterAccess()
	return v
}

// Write32 implements Bus.
func (s *Sim) Write32(addr uint32, value uint32) {
	checkAligned(addr)
	s.mu.Lock()
	s.step()
	s.store(addr, value)
	s.mu.Unlock()
	s.afterAccess()
}

// Modify32 implements Modifier. It costs two cycles, a read and a write,
// with nothing able to run in between.
func (s *Sim) Modify32(addr uint32, clear, set uint32) {
	checkAligned(addr)
	s.mu.Lock()
	s.step()
	v := s.mem[addr]
	s.step()
	s.store(addr, v&^clear|set)
	s.mu.Unlock()
	s.afterAccess()
}

// Peek reads a register without spending a cycle or running hooks.
func (s *Sim) Peek(addr uint32) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem[addr]
}

// Poke stores a register value without spending a cycle or running hooks.
func (s *Sim) Poke(addr uint32, value uint32) {
	s.mu.Lock()
	s.mem[addr] = value
	s.mu.Unlock()
}

// Do runs fn with the bus locked.
func (s *Sim) Do(fn func(m Mem)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(simMem{s})
}

// Cycle returns the number of bus cycles spent so far.
func (s *Sim) Cycle() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cycle
}

// OnWrite installs a write hook for addr, replacing any previous one.
func (s *Sim) OnWrite(addr uint32, hook WriteHook) {
	checkAligned(addr)
	s.mu.Lock()
	s.writes[addr] = hook
	s.mu.Unlock()
}

// OnTick installs the per-cycle hook.
func (s *Sim) OnTick(hook TickHook) {
	s.mu.Lock()
	s.tick = hook
	s.mu.Unlock()
}

// OnAccess installs a function run after every bus access, outside the lock.
func (s *Sim) OnAccess(fn func()) {
	s.mu.Lock()
	s.after = fn
	s.mu.Unlock()
}
