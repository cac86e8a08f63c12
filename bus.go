// bus.go - central message dispatcher for the IBM-XT core
//
// Grounded on original_source/src/main.rs + motherboards/ibm_xt.rs's single
// `match rx.recv().unwrap() { ... }` dispatch loop, and on the teacher's
// coprocessor_manager.go dispatch-by-tag convention and machine_bus.go's
// port/region registration idea for how peripherals plug in. Lifecycle is
// coordinated with golang.org/x/sync/errgroup, promoting the teacher's own
// declared-but-unused x/sync dependency to direct use - see DESIGN.md.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// IOPort is implemented by anything that owns one or more I/O ports (PIC,
// PIT, DMA, Faraday, CRTC...). Word-width access defaults to two
// consecutive byte accesses unless the port handler is also an ioWordPort.
type IOPort interface {
	InByte(port uint16) byte
	OutByte(port uint16, value byte)
}

// ioWordPort is an optional refinement of IOPort for peripherals that need
// genuine word-width register semantics instead of two byte accesses.
type ioWordPort interface {
	InWord(port uint16) uint16
	OutWord(port uint16, value uint16)
}

// Bus multiplexes CPU memory/IO traffic and PIT->PIC->CPU interrupt
// delivery through a single goroutine, per spec.md §5's "Bus dispatcher
// thread - receives messages and routes to Memory, PIC, peripherals."
type Bus struct {
	mem   *Memory
	pic   *PIC
	ports map[uint16]IOPort

	msgCh chan Msg
	log   Logger

	cpuInterrupt func(vector byte)
}

// NewBus creates a Bus wired to the given Memory and PIC. Additional I/O
// port owners are registered with RegisterPort before Run starts.
func NewBus(mem *Memory, pic *PIC, log Logger) *Bus {
	if log == nil {
		log = nopLogger{}
	}
	return &Bus{
		mem:   mem,
		pic:   pic,
		ports: make(map[uint16]IOPort),
		msgCh: make(chan Msg, 64),
		log:   log,
	}
}

// RegisterPort maps a single port address to its owning peripheral. Ports
// not registered read as 0xFF and discard writes, per spec.md §6.
func (b *Bus) RegisterPort(port uint16, owner IOPort) {
	b.ports[port] = owner
}

// SetCPUInterruptSink wires the function the Bus calls to forward a
// CPU.Interrupt message (originating from the PIC) to the CPU's
// single-slot pending-interrupt register.
func (b *Bus) SetCPUInterruptSink(fn func(vector byte)) { b.cpuInterrupt = fn }

// Send enqueues a message for the dispatcher. Messages between any two
// actors are delivered FIFO (spec.md §5 "Ordering guarantees").
func (b *Bus) Send(msg Msg) { b.msgCh <- msg }

// Run drives the dispatch loop until ctx is cancelled.
func (b *Bus) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-b.msgCh:
			b.dispatch(msg)
		}
	}
}

func (b *Bus) dispatch(msg Msg) {
	switch m := msg.(type) {
	case MemSetByte:
		b.mem.SetByte(m.Addr, m.Value)
	case MemSetWord:
		b.mem.SetWord(m.Addr, m.Value)
	case MemGetByte:
		m.Reply <- b.mem.GetByte(m.Addr)
	case MemGetWord:
		m.Reply <- b.mem.GetWord(m.Addr)
	case MemGetBytes8:
		m.Reply <- b.mem.GetBytes8(m.Addr)
	case IOOutByte:
		b.outByte(m.Port, m.Value)
	case IOOutWord:
		b.outWord(m.Port, m.Value)
	case IOInByte:
		m.Reply <- b.inByte(m.Port)
	case IOInWord:
		m.Reply <- b.inWord(m.Port)
	case PICFire:
		b.pic.Fire(m.IRQLine)
	case CPUInterrupt:
		if b.cpuInterrupt != nil {
			b.cpuInterrupt(m.Vector)
		}
	default:
		panic(fmt.Sprintf("bus: unhandled message type %T", msg))
	}
}

func (b *Bus) outByte(port uint16, value byte) {
	owner, ok := b.ports[port]
	if !ok {
		b.log.Warnf("OUT to unmapped port %#04x <- %#02x", port, value)
		return
	}
	owner.OutByte(port, value)
}

func (b *Bus) inByte(port uint16) byte {
	owner, ok := b.ports[port]
	if !ok {
		b.log.Warnf("IN from unmapped port %#04x", port)
		return 0xFF
	}
	return owner.InByte(port)
}

func (b *Bus) outWord(port uint16, value uint16) {
	owner, ok := b.ports[port]
	if !ok {
		b.log.Warnf("OUT to unmapped port %#04x <- %#04x", port, value)
		return
	}
	if wp, ok := owner.(ioWordPort); ok {
		wp.OutWord(port, value)
		return
	}
	owner.OutByte(port, byte(value))
	if next, ok := b.ports[port+1]; ok {
		next.OutByte(port+1, byte(value>>8))
	}
}

func (b *Bus) inWord(port uint16) uint16 {
	owner, ok := b.ports[port]
	if !ok {
		b.log.Warnf("IN from unmapped port %#04x", port)
		return 0xFFFF
	}
	if wp, ok := owner.(ioWordPort); ok {
		return wp.InWord(port)
	}
	lo := owner.InByte(port)
	hi := byte(0xFF)
	if next, ok := b.ports[port+1]; ok {
		hi = next.InByte(port + 1)
	}
	return uint16(lo) | uint16(hi)<<8
}

// RunSystem starts the Bus, Clock, and CPU goroutines together under one
// errgroup, and the PIT counter goroutines on the group's context, so a
// single cancellation (or the first failure) tears all of them down. Grounded on the teacher's go.mod declaring golang.org/x/sync
// without ever importing it - this is where that dependency earns its
// keep (see DESIGN.md).
func RunSystem(ctx context.Context, clk *Clock, bus *Bus, pit *PIT, cpu *CPU8086) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return clk.Run(gctx) })
	g.Go(func() error { return bus.Run(gctx) })
	pit.Start(gctx, clk)
	g.Go(func() error { return cpu.Run(gctx) })
	return g.Wait()
}
