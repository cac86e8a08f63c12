// memory.go - 1 MiB flat memory store for the IBM-XT core
//
// Grounded on original_source/src/chips/memory1mb.rs for ROM placement and
// message shapes, and on the teacher's memory_bus.go for the Go idiom of a
// dedicated struct with little-endian word helpers via encoding/binary.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"encoding/binary"
	"fmt"
)

const (
	// MemorySize is the 8086's full 1 MiB address space (2^20).
	MemorySize = 1 << 20
	// MemoryAddrMask confines any address to the 20-bit physical space;
	// wrap beyond 1 MiB is modulo 2^20 per spec.md §3/§4.1.
	MemoryAddrMask = MemorySize - 1

	biosROMBase = 0xF0000
	biosROMSize = 0x10000
	videoROMBase = 0xC0000
)

// Memory is the flat byte store behind the Bus. It has exactly one owner -
// the Bus dispatcher goroutine - so it needs no internal locking; per
// spec.md §5 "memory (single dispatcher owner - accessed only via
// messages)."
type Memory struct {
	ram [MemorySize]byte
}

// NewMemory allocates a zeroed 1 MiB store and maps the given BIOS ROM (and
// optional video ROM) into it. The BIOS ROM must be exactly 65,536 bytes;
// any other size is a startup-fatal ROM size mismatch (error kind 5, §7).
func NewMemory(biosROM, videoROM []byte) (*Memory, error) {
	if len(biosROM) != biosROMSize {
		return nil, fmt.Errorf("memory: BIOS ROM size is wrong: %#x, must be %#x", len(biosROM), biosROMSize)
	}
	m := &Memory{}
	copy(m.ram[biosROMBase:biosROMBase+biosROMSize], biosROM)
	if len(videoROM) > 0 {
		copy(m.ram[videoROMBase:], videoROM)
	}
	return m, nil
}

// GetByte returns the byte at addr, masked to the 20-bit address space.
func (m *Memory) GetByte(addr uint32) byte {
	return m.ram[addr&MemoryAddrMask]
}

// SetByte writes a byte at addr, masked to the 20-bit address space. ROM
// regions are not write-protected - period hardware did not fault on
// writes to them either.
func (m *Memory) SetByte(addr uint32, value byte) {
	m.ram[addr&MemoryAddrMask] = value
}

// GetWord reads a little-endian word: the byte at addr is the low half.
func (m *Memory) GetWord(addr uint32) uint16 {
	lo := addr & MemoryAddrMask
	hi := (addr + 1) & MemoryAddrMask
	if hi == lo+1 {
		return binary.LittleEndian.Uint16(m.ram[lo : lo+2])
	}
	return uint16(m.ram[lo]) | uint16(m.ram[hi])<<8
}

// SetWord writes a little-endian word as two consecutive byte writes.
func (m *Memory) SetWord(addr uint32, value uint16) {
	lo := addr & MemoryAddrMask
	hi := (addr + 1) & MemoryAddrMask
	m.ram[lo] = byte(value)
	m.ram[hi] = byte(value >> 8)
}

// GetBytes8 returns eight consecutive bytes starting at addr as a
// little-endian uint64, used solely to refill the CPU's prefetch buffer
// (spec.md §3 "Instruction buffer").
func (m *Memory) GetBytes8(addr uint32) uint64 {
	var buf [8]byte
	for i := range buf {
		buf[i] = m.ram[(addr+uint32(i))&MemoryAddrMask]
	}
	return binary.LittleEndian.Uint64(buf[:])
}
