// bus_test.go - central message dispatcher
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePort struct {
	lastOut byte
	in      byte
}

func (f *fakePort) OutByte(port uint16, value byte) { f.lastOut = value }
func (f *fakePort) InByte(port uint16) byte          { return f.in }

func newRunningBus(t *testing.T) (*Bus, *Memory) {
	t.Helper()
	mem, err := NewMemory(make([]byte, 0x10000), nil)
	require.NoError(t, err)
	pic := NewPIC(nil)
	bus := NewBus(mem, pic, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go bus.Run(ctx)
	return bus, mem
}

func TestBusRegisteredPortRoundTrip(t *testing.T) {
	bus, _ := newRunningBus(t)
	port := &fakePort{in: 0x42}
	bus.RegisterPort(0x300, port)

	bus.Send(IOOutByte{Port: 0x300, Value: 0x55})
	reply := make(chan byte, 1)
	bus.Send(IOInByte{Port: 0x300, Reply: reply})
	assert.Equal(t, byte(0x42), <-reply)
	// OutByte is asynchronous with respect to the reply above only because
	// both messages are processed FIFO on the same dispatcher goroutine;
	// the InByte reply having arrived guarantees the OutByte already ran.
	assert.Equal(t, byte(0x55), port.lastOut)
}

// TestBusUnmappedPortReadsFF confirms spec.md §6's unmapped-port
// convention: reads return 0xFF, writes are silently discarded.
func TestBusUnmappedPortReadsFF(t *testing.T) {
	bus, _ := newRunningBus(t)
	reply := make(chan byte, 1)
	bus.Send(IOInByte{Port: 0x999, Reply: reply})
	assert.Equal(t, byte(0xFF), <-reply)
	bus.Send(IOOutByte{Port: 0x999, Value: 0x01}) // must not panic or block
}

func TestBusMemoryMessages(t *testing.T) {
	bus, mem := newRunningBus(t)
	bus.Send(MemSetByte{Addr: 0x10, Value: 0x9A})
	reply := make(chan byte, 1)
	bus.Send(MemGetByte{Addr: 0x10, Reply: reply})
	assert.Equal(t, byte(0x9A), <-reply)
	assert.Equal(t, byte(0x9A), mem.GetByte(0x10))
}

// TestBusPICFireDispatch confirms a PICFire message routed through the Bus
// reaches the PIC's Fire method, which in turn reaches the CPU interrupt
// sink wired with SetCPUInterruptSink (PIT -> PIC -> CPU, spec.md §4.6).
func TestBusPICFireDispatch(t *testing.T) {
	pic := NewPIC(nil)
	pic.setMask(0xFE) // unmask IRQ0
	bus := NewBus(NewMemoryMust(t), pic, nil)

	delivered := make(chan byte, 1)
	pic.SetInterruptSink(func(v byte) { bus.Send(CPUInterrupt{Vector: v}) })
	bus.SetCPUInterruptSink(func(v byte) { delivered <- v })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bus.Run(ctx)

	bus.Send(PICFire{IRQLine: 0})

	select {
	case v := <-delivered:
		assert.Equal(t, byte(0x08), v, "default PIC vector offset")
	case <-time.After(time.Second):
		t.Fatal("PICFire never reached the CPU interrupt sink")
	}
}

// NewMemoryMust is a small test convenience wrapping NewMemory for
// call sites that don't care about startup errors.
func NewMemoryMust(t *testing.T) *Memory {
	t.Helper()
	mem, err := NewMemory(make([]byte, 0x10000), nil)
	require.NoError(t, err)
	return mem
}
