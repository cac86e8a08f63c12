// dma8237_test.go - 8237A register bank contract
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDMA8237AddressFlipFlop(t *testing.T) {
	d := NewDMA8237(nil)
	d.OutByte(0x00, 0x34) // channel 0 address, low byte
	d.OutByte(0x00, 0x12) // channel 0 address, high byte
	a := assert.New(t)
	a.Equal(uint16(0x1234), d.channels[0].address)

	// Reading back cycles the same flip-flop independently of writes.
	lo := d.InByte(0x00)
	hi := d.InByte(0x00)
	a.Equal(byte(0x34), lo)
	a.Equal(byte(0x12), hi)
}

func TestDMA8237MasterResetMasksAllChannels(t *testing.T) {
	d := NewDMA8237(nil)
	for i := range d.channels {
		d.channels[i].mask = false
	}
	d.OutByte(0x0D, 0x00) // master reset
	for i, c := range d.channels {
		assert.True(t, c.mask, "channel %d should be masked after master reset", i)
	}
}

func TestDMA8237SetMasksBitmask(t *testing.T) {
	d := NewDMA8237(nil)
	d.OutByte(0x0F, 0b0101) // mask channels 0 and 2, unmask 1 and 3
	want := []bool{true, false, true, false}
	for i, w := range want {
		assert.Equal(t, w, d.channels[i].mask, "channel %d mask", i)
	}
}

func TestDMA8237UnmappedPortReadsFF(t *testing.T) {
	d := NewDMA8237(nil)
	assert.Equal(t, byte(0xFF), d.InByte(0x09))
}
