// crtc6845_test.go - 6845 indexed register file contract
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRTC6845IndexedRegisterRoundTrip(t *testing.T) {
	v := NewCRTC6845(nil)
	v.OutByte(0x3D4, 0x09) // select register 9 (max scan line)
	v.OutByte(0x3D5, 0x0F)
	assert.Equal(t, byte(0x0F), v.regs[9])

	v.OutByte(0x3D4, 0x09)
	assert.Equal(t, byte(0x0F), v.InByte(0x3D5))
}

// TestCRTC6845MDAAndCGAPortsShareOneRegisterFile confirms a single
// CRTC6845 instance serves both its MDA and CGA port-pair aliases from one
// register file (the motherboard wires each pair to its own instance).
func TestCRTC6845MDAAndCGAPortsShareOneRegisterFile(t *testing.T) {
	v := NewCRTC6845(nil)
	v.OutByte(0x3B4, 0x01)
	v.OutByte(0x3B5, 0x50)
	v.OutByte(0x3D4, 0x01)
	assert.Equal(t, byte(0x50), v.InByte(0x3D5), "same register file as 0x3B5")
}

func TestCRTC6845ModeBytePort(t *testing.T) {
	v := NewCRTC6845(nil)
	v.OutByte(0x3B8, 0x29)
	assert.Equal(t, byte(0x29), v.InByte(0x3B8))
}

func TestCRTC6845SelectOutOfRangeIsIgnored(t *testing.T) {
	v := NewCRTC6845(nil)
	v.OutByte(0x3D4, 0x1F) // selects index 31, beyond the 18-register file
	v.OutByte(0x3D5, 0xAA) // must not panic
	assert.Equal(t, byte(0xFF), v.InByte(0x3D5), "out-of-range selected register")
}
