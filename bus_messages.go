// bus_messages.go - typed message schema for the system bus
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

// Msg is the tagged union of everything that can travel across the Bus.
// Each variant below mirrors one row of the message table in spec.md §6 /
// SPEC_FULL.md §6; the shape follows original_source's Msg/MemoryMsg/
// PICMsg/CPUMsg enums (main.rs), translated into Go structs implementing a
// closed marker interface instead of a Rust enum.
type Msg interface{ isMsg() }

// MemSetByte - CPU -> Memory. Fire-and-forget.
type MemSetByte struct {
	Addr  uint32
	Value byte
}

// MemSetWord - CPU -> Memory. Fire-and-forget, little-endian.
type MemSetWord struct {
	Addr  uint32
	Value uint16
}

// MemGetByte - CPU -> Memory, blocking reply.
type MemGetByte struct {
	Addr  uint32
	Reply chan byte
}

// MemGetWord - CPU -> Memory, blocking reply.
type MemGetWord struct {
	Addr  uint32
	Reply chan uint16
}

// MemGetBytes8 - CPU -> Memory, blocking reply. Used solely to refill the
// CPU's 8-byte prefetch buffer.
type MemGetBytes8 struct {
	Addr  uint32
	Reply chan uint64
}

// IOOutByte - CPU -> port-owning peripheral.
type IOOutByte struct {
	Port  uint16
	Value byte
}

// IOOutWord - CPU -> port-owning peripheral.
type IOOutWord struct {
	Port  uint16
	Value uint16
}

// IOInByte - CPU -> port-owning peripheral, blocking reply.
type IOInByte struct {
	Port  uint16
	Reply chan byte
}

// IOInWord - CPU -> port-owning peripheral, blocking reply.
type IOInWord struct {
	Port  uint16
	Reply chan uint16
}

// PICFire - PIT -> PIC. Raises the named IRQ line (only line 0 is ever
// driven in this system, per spec.md §4.4).
type PICFire struct {
	IRQLine uint8
}

// CPUInterrupt - PIC -> CPU. Delivers a hardware interrupt vector into the
// CPU's single-slot pending-interrupt register.
type CPUInterrupt struct {
	Vector uint8
}

func (MemSetByte) isMsg()    {}
func (MemSetWord) isMsg()    {}
func (MemGetByte) isMsg()    {}
func (MemGetWord) isMsg()    {}
func (MemGetBytes8) isMsg()  {}
func (IOOutByte) isMsg()     {}
func (IOOutWord) isMsg()     {}
func (IOInByte) isMsg()      {}
func (IOInWord) isMsg()      {}
func (PICFire) isMsg()       {}
func (CPUInterrupt) isMsg()  {}
