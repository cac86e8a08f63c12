// memory_test.go - 1 MiB flat memory store
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import "testing"

func TestNewMemoryRejectsWrongSizedBIOS(t *testing.T) {
	if _, err := NewMemory(make([]byte, 0x100), nil); err == nil {
		t.Fatal("expected an error for an undersized BIOS image")
	}
}

func TestNewMemoryMapsBIOSAndVideoROM(t *testing.T) {
	bios := make([]byte, 0x10000)
	bios[0] = 0xEA // a recognizable marker byte
	video := []byte{0xDE, 0xAD}

	mem, err := NewMemory(bios, video)
	if err != nil {
		t.Fatalf("NewMemory: %v", err)
	}
	if got := mem.GetByte(0xF0000); got != 0xEA {
		t.Errorf("BIOS base byte = %#02x, want 0xEA", got)
	}
	if got := mem.GetByte(0xC0000); got != 0xDE {
		t.Errorf("video ROM base byte = %#02x, want 0xDE", got)
	}
}

func TestMemoryWordByteConsistency(t *testing.T) {
	mem, _ := NewMemory(make([]byte, 0x10000), nil)
	mem.SetWord(0x1000, 0xBEEF)
	if got := mem.GetByte(0x1000); got != 0xEF {
		t.Errorf("low byte = %#02x, want 0xEF", got)
	}
	if got := mem.GetByte(0x1001); got != 0xBE {
		t.Errorf("high byte = %#02x, want 0xBE", got)
	}
	if got := mem.GetWord(0x1000); got != 0xBEEF {
		t.Errorf("GetWord = %#04x, want 0xBEEF", got)
	}
}

// TestMemoryWrapsAt1MiB confirms addresses beyond the 20-bit space wrap
// modulo 2^20 (spec.md §3/§4.1) rather than panicking or growing.
func TestMemoryWrapsAt1MiB(t *testing.T) {
	mem, _ := NewMemory(make([]byte, 0x10000), nil)
	mem.SetByte(MemorySize, 0x77) // one past the top, wraps to address 0
	if got := mem.GetByte(0); got != 0x77 {
		t.Errorf("byte at wrapped address 0 = %#02x, want 0x77", got)
	}
}

// TestMemoryGetBytes8StraddlesTopOfAddressSpace confirms the prefetch
// helper wraps per-byte rather than reading past the backing array.
func TestMemoryGetBytes8StraddlesTopOfAddressSpace(t *testing.T) {
	mem, _ := NewMemory(make([]byte, 0x10000), nil)
	mem.SetByte(MemoryAddrMask, 0x11)
	mem.SetByte(0, 0x22)
	got := mem.GetBytes8(MemoryAddrMask)
	if byte(got) != 0x11 {
		t.Errorf("first byte = %#02x, want 0x11", byte(got))
	}
	if byte(got>>8) != 0x22 {
		t.Errorf("second byte (wrapped) = %#02x, want 0x22", byte(got>>8))
	}
}
