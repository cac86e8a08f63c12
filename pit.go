// pit.go - Intel 8253/8254 Programmable Interval Timer
//
// Grounded on original_source/src/chips/pit.rs's Counter/Mutexed shapes and
// mode/access decode tables. Per SPEC_FULL.md §4.5 SUPPLEMENT, each counter
// is driven by its own Clock subscription rather than the original's
// wall-clock-elapsed-nanoseconds free-run, matching spec.md §5's "per-PIT-
// counter threads" description. The latch/mutex convention mirrors the
// teacher's per-voice goroutine + mutex shape in sid_engine.go.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"context"
	"sync"
)

type pitAccess int

const (
	pitAccessLatch pitAccess = iota
	pitAccessLSB
	pitAccessMSB
	pitAccessLSBThenMSB
)

type pitMode int

const (
	pitModeInterrupt pitMode = iota
	pitModeOneShot
	pitModeRateGenerator
	pitModeSquareWave
	pitModeSoftwareStrobe
	pitModeHardwareStrobe
)

type pitFlipFlop int

const (
	pitFlipLow pitFlipFlop = iota
	pitFlipHigh
)

// pitLatched holds the fields a counter's background goroutine and the
// controller-facing Get/SetCount methods both touch.
type pitLatched struct {
	mu             sync.Mutex
	outputLatch    uint16
	isLatched      bool
	isInterruptMode bool
}

// pitCounter is one of the PIT's three independent channels.
type pitCounter struct {
	access   pitAccess
	mode     pitMode
	flipFlop pitFlipFlop
	lowCount uint16 // staged low byte while flipFlop == pitFlipHigh in LSBThenMSB mode

	latched pitLatched

	loadCount chan uint16 // controller -> counter goroutine: a freshly-assembled count register value
}

// PIT models an 8253/8254 with three counters. Counter 0 is wired to the
// PIC's IRQ0 (time-of-day clock); counter 1 would be the RAM refresher and
// counter 2 miscellaneous/sound on real hardware, but this system only
// drives counter 0's Fire message onward, per spec.md §4.4.
type PIT struct {
	counters [3]*pitCounter
	log      Logger
	// fire delivers PIC.Fire{IRQLine} for a counter transitioning to zero
	// in interrupt mode; wired by the Bus.
	fire func(irqLine byte)
}

// NewPIT creates a PIT with three idle counters. Start must be called once
// a Clock is available to subscribe each counter to its own tick stream.
func NewPIT(log Logger) *PIT {
	if log == nil {
		log = nopLogger{}
	}
	p := &PIT{log: log}
	for i := range p.counters {
		p.counters[i] = &pitCounter{loadCount: make(chan uint16, 1)}
	}
	return p
}

// SetInterruptSink wires the function the PIT calls when any counter
// transitions to zero in interrupt mode, with the counter index as irqLine.
func (p *PIT) SetInterruptSink(fire func(irqLine byte)) { p.fire = fire }

// Start spawns one goroutine per counter, each subscribed to clk at one
// tick per counter tick (the PIT's counters all share the same input
// frequency on real hardware). The goroutines run until ctx is cancelled.
func (p *PIT) Start(ctx context.Context, clk *Clock) {
	for i, c := range p.counters {
		idx := uint8(i)
		ticks := clk.Subscribe(1)
		go p.runCounter(ctx, idx, c, ticks)
	}
}

func (p *PIT) runCounter(ctx context.Context, index uint8, c *pitCounter, ticks <-chan struct{}) {
	var enabled bool
	var countingElement uint32
	var initialCount uint32

	reload := func(count uint16) uint32 {
		cb := uint32(count)
		if cb == 0 {
			cb = 0x10000
		}
		return cb
	}

	for {
		if !enabled {
			select {
			case <-ctx.Done():
				return
			case <-ticks:
				// an idle counter still drains its ticks so the shared
				// Clock loop is never held up on its channel
			case count := <-c.loadCount:
				initialCount = reload(count)
				countingElement = initialCount
				enabled = true
			}
			continue
		}

		select {
		case <-ctx.Done():
			return
		case count := <-c.loadCount:
			initialCount = reload(count)
			countingElement = initialCount
		case <-ticks:
			var fireInterrupt bool
			if countingElement == 0 {
				countingElement = initialCount
			} else {
				countingElement--
			}
			if countingElement == 0 {
				c.latched.mu.Lock()
				interruptMode := c.latched.isInterruptMode
				c.latched.mu.Unlock()
				if interruptMode {
					enabled = false
					fireInterrupt = true
				} else {
					countingElement = initialCount
				}
			}
			c.latched.mu.Lock()
			if !c.latched.isLatched {
				c.latched.outputLatch = uint16(countingElement)
			}
			c.latched.mu.Unlock()
			if fireInterrupt && p.fire != nil {
				p.fire(index)
			}
		}
	}
}

// OutByte/InByte implement the Bus's IOPort interface: ports 0x40-0x42 are
// the three counters' data ports, 0x43 the control-word port (write-only;
// reads of 0x43 are not architecturally defined and return 0xFF per
// spec.md §6's unmapped-port convention).
func (p *PIT) OutByte(port uint16, value byte) {
	if port == 0x43 {
		p.SetControlWord(value)
		return
	}
	p.SetCount(byte(port-0x40), value)
}

func (p *PIT) InByte(port uint16) byte {
	if port == 0x43 {
		return 0xFF
	}
	return p.GetCount(byte(port - 0x40))
}

func (p *PIT) counter(selectCounter byte) *pitCounter {
	if selectCounter > 2 {
		return p.counters[0]
	}
	return p.counters[selectCounter]
}

// SetControlWord handles a write to the control-word port (0x43): bits 7-6
// select the counter, bits 5-4 the access mode (00 = latch), bits 3-1 the
// operating mode, bit 0 the (unsupported) BCD flag.
func (p *PIT) SetControlWord(value byte) {
	selectCounter := (value & 0b1100_0000) >> 6
	c := p.counter(selectCounter)

	accessBits := (value & 0b11_0000) >> 4
	if accessBits == 0 {
		c.latched.mu.Lock()
		c.latched.isLatched = true
		c.latched.mu.Unlock()
		p.log.Debugf("PIT counter %d latched", selectCounter)
		return
	}

	switch (value & 0b1110) >> 1 {
	case 0:
		c.mode = pitModeInterrupt
	case 1:
		c.mode = pitModeOneShot
	case 2, 6:
		c.mode = pitModeRateGenerator
	case 3, 7:
		c.mode = pitModeSquareWave
	case 4:
		c.mode = pitModeSoftwareStrobe
	default:
		c.mode = pitModeHardwareStrobe
	}
	c.latched.mu.Lock()
	c.latched.isInterruptMode = c.mode == pitModeInterrupt
	c.latched.mu.Unlock()

	switch accessBits {
	case 1:
		c.access = pitAccessLSB
	case 2:
		c.access = pitAccessMSB
	case 3:
		c.access = pitAccessLSBThenMSB
		c.flipFlop = pitFlipLow
	}
	p.log.Debugf("PIT counter %d control word %#02x mode=%v access=%v", selectCounter, value, c.mode, c.access)
}

// SetCount handles a write to a counter's data port (0x40-0x42). A value
// is only forwarded to the running counter once a complete count has been
// assembled per the active access mode (spec.md §4.5 "Count loading").
func (p *PIT) SetCount(selectCounter byte, value byte) {
	c := p.counter(selectCounter)
	newByte := uint16(value)

	var assembled uint16
	var ready bool
	switch c.access {
	case pitAccessMSB:
		assembled = newByte << 8
		ready = true
	case pitAccessLSBThenMSB:
		if c.flipFlop == pitFlipLow {
			c.flipFlop = pitFlipHigh
			c.lowCount = newByte
			ready = false
		} else {
			c.flipFlop = pitFlipLow
			assembled = c.lowCount + (newByte << 8)
			ready = true
		}
	default: // LSB and the uninitialized/latch default both load as LSB
		assembled = newByte
		ready = true
	}

	if ready {
		select {
		case c.loadCount <- assembled:
		default:
			// Drain a stale pending load before pushing the new one so the
			// counter goroutine always sees the most recent write.
			select {
			case <-c.loadCount:
			default:
			}
			c.loadCount <- assembled
		}
		p.log.Debugf("PIT counter %d count register set to %#04x", selectCounter, assembled)
	}
}

// GetCount handles a read of a counter's data port, returning LSB, MSB, or
// LSB-then-MSB according to the active access mode and releasing any latch
// once all bytes for that mode have been read.
func (p *PIT) GetCount(selectCounter byte) byte {
	c := p.counter(selectCounter)

	c.latched.mu.Lock()
	defer c.latched.mu.Unlock()

	releaseLatch := true
	var result byte
	switch c.access {
	case pitAccessMSB:
		result = byte(c.latched.outputLatch >> 8)
	case pitAccessLSBThenMSB:
		if c.flipFlop == pitFlipLow {
			releaseLatch = false
			c.flipFlop = pitFlipHigh
			result = byte(c.latched.outputLatch)
		} else {
			c.flipFlop = pitFlipLow
			result = byte(c.latched.outputLatch >> 8)
		}
	default:
		result = byte(c.latched.outputLatch)
	}
	if releaseLatch {
		c.latched.isLatched = false
	}
	return result
}
