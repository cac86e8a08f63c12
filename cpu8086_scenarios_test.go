// cpu8086_scenarios_test.go - the worked scenarios of spec.md §8
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import "testing"

func stepN(t *testing.T, cpu *CPU8086, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := cpuStep(cpu); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

// cpuStep exposes the unexported step() method to test files in this
// package without widening its exported surface.
func cpuStep(c *CPU8086) (int, error) { return c.step() }

func TestScenarioMovAdd(t *testing.T) {
	cpu, mem, _ := newTestCPU(t)
	cpu.SetAX(0x0001)
	cpu.SetBX(0x0002)
	loadCode(cpu, mem, 0, 0x100, 0xB8, 0x34, 0x12, 0x01, 0xD8)
	stepN(t, cpu, 2)

	if cpu.AX() != 0x1236 {
		t.Errorf("AX = %#04x, want 0x1236", cpu.AX())
	}
	if cpu.BX() != 0x0002 {
		t.Errorf("BX = %#04x, want 0x0002", cpu.BX())
	}
	if cpu.ZF() || cpu.SF() || cpu.CF() || cpu.OF() || !cpu.PF() {
		t.Errorf("flags Z=%v S=%v C=%v O=%v P=%v, want Z=0 S=0 C=0 O=0 P=1",
			cpu.ZF(), cpu.SF(), cpu.CF(), cpu.OF(), cpu.PF())
	}
}

func TestScenarioFlagEdge(t *testing.T) {
	cpu, mem, _ := newTestCPU(t)
	cpu.SetAX(0x7FFF)
	loadCode(cpu, mem, 0, 0x100, 0x05, 0x01, 0x00) // ADD AX,0x0001
	stepN(t, cpu, 1)

	if cpu.AX() != 0x8000 {
		t.Errorf("AX = %#04x, want 0x8000", cpu.AX())
	}
	if !cpu.SF() || cpu.ZF() || !cpu.OF() || cpu.CF() || !cpu.AF() || !cpu.PF() {
		t.Errorf("flags S=%v Z=%v O=%v C=%v A=%v P=%v, want S=1 Z=0 O=1 C=0 A=1 P=1",
			cpu.SF(), cpu.ZF(), cpu.OF(), cpu.CF(), cpu.AF(), cpu.PF())
	}
}

func TestScenarioSegmentedWrite(t *testing.T) {
	cpu, mem, _ := newTestCPU(t)
	cpu.SetDS(0x1000)
	cpu.SetBX(0x0004)
	loadCode(cpu, mem, 0, 0x100, 0xC6, 0x07, 0xAB) // MOV [BX],0xAB
	stepN(t, cpu, 1)

	if got := mem.GetByte(0x10004); got != 0xAB {
		t.Errorf("byte at 0x10004 = %#02x, want 0xAB", got)
	}
}

func TestScenarioStringCopy(t *testing.T) {
	cpu, mem, _ := newTestCPU(t)
	cpu.SetDS(0)
	cpu.SetES(0)
	cpu.SetSI(0x0100)
	cpu.SetDI(0x0200)
	cpu.SetCX(4)
	loadCode(cpu, mem, 0, 0x300, 0xF3, 0xA4) // REP MOVSB
	mem.SetByte(0x0100, 0x11)
	mem.SetByte(0x0101, 0x22)
	mem.SetByte(0x0102, 0x33)
	mem.SetByte(0x0103, 0x44)
	stepN(t, cpu, 1)

	want := []byte{0x11, 0x22, 0x33, 0x44}
	for i, b := range want {
		if got := mem.GetByte(0x0200 + uint32(i)); got != b {
			t.Errorf("ES:0200+%d = %#02x, want %#02x", i, got, b)
		}
	}
	if cpu.CX() != 0 {
		t.Errorf("CX = %#04x, want 0", cpu.CX())
	}
	if cpu.SI() != 0x0104 {
		t.Errorf("SI = %#04x, want 0x0104", cpu.SI())
	}
	if cpu.DI() != 0x0204 {
		t.Errorf("DI = %#04x, want 0x0204", cpu.DI())
	}
}

func TestScenarioDivByZero(t *testing.T) {
	cpu, mem, _ := newTestCPU(t)
	cpu.SetAX(0x1234)
	cpu.SetBX(0x0000) // BL=0
	loadCode(cpu, mem, 0, 0x100, 0xF6, 0xF3) // DIV BL
	// Interrupt vector 0 points at a known return address so the test can
	// confirm CS:IP was actually loaded from it.
	mem.SetWord(0x00000, 0x9000) // IP
	mem.SetWord(0x00002, 0x0000) // CS
	sp := cpu.SP()

	stepN(t, cpu, 1)

	if cpu.IF() {
		t.Errorf("IF set after INT 0 entry, want cleared")
	}
	if cpu.IP() != 0x9000 || cpu.CS() != 0x0000 {
		t.Errorf("CS:IP = %04X:%04X, want 0000:9000", cpu.CS(), cpu.IP())
	}
	if cpu.SP() != sp-6 {
		t.Errorf("SP = %#04x, want %#04x (3 words pushed)", cpu.SP(), sp-6)
	}
}
