// cpu8086_invariants_test.go - general testable properties of spec.md §8
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import "testing"

// TestFlagsWordRoundTrip exercises the flag-word round-trip property: the
// mutable subset survives a Get/Set cycle, and the fixed bits always read
// back as 1 regardless of what was written.
func TestFlagsWordRoundTrip(t *testing.T) {
	cpu, _, _ := newTestCPU(t)
	cpu.SetFlagsWord(0xFFFF &^ flagsFixedOnes) // every mutable bit set, fixed bits cleared
	w := cpu.GetFlagsWord()
	if w&flagsFixedOnes != flagsFixedOnes {
		t.Errorf("fixed bits = %#04x, want all 1 (%#04x)", w&flagsFixedOnes, flagsFixedOnes)
	}

	cpu.SetFlagsWord(w)
	if cpu.GetFlagsWord() != w {
		t.Errorf("round trip changed the flags word: %#04x != %#04x", cpu.GetFlagsWord(), w)
	}
}

// TestStackRoundTrip exercises PUSH V ; POP R leaving R == V and SP
// restored to its starting value.
func TestStackRoundTrip(t *testing.T) {
	cpu, mem, _ := newTestCPU(t)
	cpu.SetSS(0x2000)
	cpu.SetSP(0x0100)
	cpu.SetCX(0xBEEF)
	loadCode(cpu, mem, 0, 0x100,
		0x51,       // PUSH CX
		0x58,       // POP AX
	)
	spBefore := cpu.SP()
	stepN(t, cpu, 2)
	if cpu.AX() != 0xBEEF {
		t.Errorf("AX = %#04x, want 0xBEEF", cpu.AX())
	}
	if cpu.SP() != spBefore {
		t.Errorf("SP = %#04x, want %#04x (unchanged)", cpu.SP(), spBefore)
	}
}

// TestParityComputedOnLowByteOnly exercises spec.md §9's preserved original
// behavior: the parity flag for a 16-bit result is computed from the
// result's low byte only. 0x0100 has a zero (even-parity) low byte but an
// odd popcount over the full word, so the two rules disagree and the test
// can tell which one actually ran.
func TestParityComputedOnLowByteOnly(t *testing.T) {
	cpu, mem, _ := newTestCPU(t)
	cpu.SetAX(0x00FF)
	loadCode(cpu, mem, 0, 0x100, 0x05, 0x01, 0x00) // ADD AX,0x0001 -> AX=0x0100
	stepN(t, cpu, 1)
	if cpu.AX() != 0x0100 {
		t.Fatalf("AX = %#04x, want 0x0100", cpu.AX())
	}
	if !cpu.PF() {
		t.Errorf("PF = false, want true (low byte 0x00 has even parity)")
	}
}

// TestZeroFlagModuloOperandWidth exercises "computed zero flag equals
// (result mod 2^w == 0)" for the 8-bit width: an 8-bit add that wraps to
// zero sets ZF even though the pre-truncation sum is nonzero.
func TestZeroFlagModuloOperandWidth(t *testing.T) {
	cpu, mem, _ := newTestCPU(t)
	cpu.SetAX(0x00FF) // AL = 0xFF
	loadCode(cpu, mem, 0, 0x100, 0x04, 0x01) // ADD AL,0x01 -> AL wraps to 0x00
	stepN(t, cpu, 1)
	if byte(cpu.AX()) != 0x00 {
		t.Fatalf("AL = %#02x, want 0x00", byte(cpu.AX()))
	}
	if !cpu.ZF() {
		t.Errorf("ZF not set after AL wrapped to 0x00")
	}
}

// TestPhysAddrWithinOneMiB exercises the invariant that every physical
// address derived from segment:offset pairs, including the maximal
// 0xFFFF:0xFFFF case, stays below 2^20.
func TestPhysAddrWithinOneMiB(t *testing.T) {
	cpu, _, _ := newTestCPU(t)
	addr := cpu.physAddr(0xFFFF, 0xFFFF)
	if addr >= MemorySize {
		t.Errorf("physAddr(0xFFFF, 0xFFFF) = %#06x, want < %#06x", addr, MemorySize)
	}
}
