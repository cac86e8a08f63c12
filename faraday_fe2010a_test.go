// faraday_fe2010a_test.go - FE2010A PPI-equivalent register contract
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFaradayPortBRoundTrip(t *testing.T) {
	f := NewFaraday(nil)
	f.OutByte(0x61, 0b0000_0011) // timer2 + speaker enabled
	got := f.InByte(0x61)
	assert.Equal(t, byte(0b11), got&0b11, "timer2+speaker bits should be set")
	assert.True(t, f.timer2Enabled)
	assert.True(t, f.speakerEnabled)
}

func TestFaradayKeyboardCharRoundTrip(t *testing.T) {
	f := NewFaraday(nil)
	f.SetKeyboardChar(0x1E) // scan code for 'A'
	assert.Equal(t, byte(0x1E), f.InByte(0x60))
}

func TestFaradayKeyboardClearBitResetsChar(t *testing.T) {
	f := NewFaraday(nil)
	f.SetKeyboardChar(0x99)
	f.OutByte(0x61, 0b1000_0000) // set the keyboard-clear bit
	assert.Equal(t, byte(0), f.keyboardChar)
}

func TestFaradayUnmappedPortWarnsAndReturnsFF(t *testing.T) {
	f := NewFaraday(nil)
	assert.Equal(t, byte(0xFF), f.InByte(0x64))
}
