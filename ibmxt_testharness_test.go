// ibmxt_testharness_test.go - shared test scaffolding for the core package
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestCPU wires a CPU8086 to a live Bus/Memory/PIC with no BIOS image
// (a zeroed 64K BIOS bank satisfies NewMemory's size check without giving
// tests any ROM content to trip over), and starts the Bus dispatcher so the
// CPU's synchronous memory/IO message round-trips complete. Callers should
// relocate CS:IP away from the power-on 0xF000:0xFFF0 vector before writing
// a test program, since that address lands inside the (empty) BIOS image.
func newTestCPU(t *testing.T) (*CPU8086, *Memory, *PIC) {
	t.Helper()
	mem, err := NewMemory(make([]byte, 0x10000), nil)
	require.NoError(t, err)
	pic := NewPIC(nil)
	bus := NewBus(mem, pic, nil)
	clk := NewClock(time.Millisecond)
	cpu := NewCPU8086(bus, clk, nil)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go bus.Run(ctx)

	return cpu, mem, pic
}

// loadCode writes bytes at physical address (seg<<4 + off) and points
// CS:IP at it.
func loadCode(cpu *CPU8086, mem *Memory, seg, off uint16, bytes ...byte) {
	cpu.SetCS(seg)
	cpu.SetIP(off)
	addr := uint32(seg)<<4 + uint32(off)
	for i, b := range bytes {
		mem.SetByte(addr+uint32(i), b)
	}
}
