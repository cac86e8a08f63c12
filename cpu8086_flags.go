// cpu8086_flags.go - flag computation for arithmetic/logic results
//
// Grounded on original_source/src/chips/cpu8086/definitions/flag.rs's
// set_flags_* helpers, with the half-carry proxy named in SPEC_FULL.md §9
// replaced: AF is the carry out of bit 3 (not bit 4). PF is always
// computed over the low byte of the result regardless of operand width,
// the rule §9 keeps from the original.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

// parity8 reports the 8086's PF: set when the low byte of the result has
// an even number of 1-bits. Always computed over the low byte, even for
// 16-bit results (spec.md §9: preserved from the original).
func parity8(v byte) bool {
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v&1 == 0
}

// setFlagsArith8 sets CF/PF/AF/ZF/SF/OF for an 8-bit addition-family
// result. carryOut is supplied by the caller; isSub selects the add or
// subtract form for AF and OF, which are computed here.
func (c *CPU8086) setFlagsArith8(result uint16, a, b byte, cin byte, carryOut, isSub bool) {
	c.cf = carryOut
	c.pf = parity8(byte(result))
	c.af = halfCarry8(a, b, cin, isSub)
	c.zf = byte(result) == 0
	c.sf = byte(result)&0x80 != 0
	c.of = overflow8(a, b, byte(result), isSub)
}

func (c *CPU8086) setFlagsArith16(result uint32, a, b uint16, cin uint16, carryOut, isSub bool) {
	c.cf = carryOut
	c.pf = parity8(byte(result))
	c.af = halfCarry16(a, b, cin, isSub)
	c.zf = uint16(result) == 0
	c.sf = uint16(result)&0x8000 != 0
	c.of = overflow16(a, b, uint16(result), isSub)
}

// halfCarry8/16 report AF: a carry (or borrow) out of bit 3, computed
// directly on the low nibble (SPEC_FULL.md §9: this replaces the
// original's "(set & 0xF) > (result & 0xF)" proxy). cin is ADC/SBB's incoming carry/borrow (0 or 1) and
// must be added into the nibble sum directly rather than folded into b
// beforehand, since b+cin can itself overflow the low nibble and lose the
// carry it was supposed to contribute.
func halfCarry8(a, b, cin byte, isSub bool) bool {
	if isSub {
		return a&0xF < b&0xF+cin
	}
	return a&0xF+b&0xF+cin > 0xF
}

func halfCarry16(a, b, cin uint16, isSub bool) bool {
	if isSub {
		return a&0xF < b&0xF+cin
	}
	return a&0xF+b&0xF+cin > 0xF
}

// overflow8/16 implement the standard signed-overflow test: for addition,
// overflow occurs when both operands share a sign and the result's sign
// differs from them; for subtraction, when the operands' signs differ and
// the result's sign differs from the minuend's.
func overflow8(a, b, result byte, isSub bool) bool {
	if isSub {
		return (a^b)&0x80 != 0 && (a^result)&0x80 != 0
	}
	return (a^b)&0x80 == 0 && (a^result)&0x80 != 0
}

func overflow16(a, b, result uint16, isSub bool) bool {
	if isSub {
		return (a^b)&0x8000 != 0 && (a^result)&0x8000 != 0
	}
	return (a^b)&0x8000 == 0 && (a^result)&0x8000 != 0
}

// setFlagsLogic8/16 set the flags for AND/OR/XOR/TEST/NOT-adjacent ops:
// CF and OF are always cleared, AF is left undefined by the datasheet (this
// implementation clears it, matching original_source), ZF/SF/PF follow the
// result.
func (c *CPU8086) setFlagsLogic8(result byte) {
	c.cf = false
	c.of = false
	c.af = false
	c.pf = parity8(result)
	c.zf = result == 0
	c.sf = result&0x80 != 0
}

func (c *CPU8086) setFlagsLogic16(result uint16) {
	c.cf = false
	c.of = false
	c.af = false
	c.pf = parity8(byte(result))
	c.zf = result == 0
	c.sf = result&0x8000 != 0
}

// setFlagsIncDec8/16 are for INC/DEC: like arith, but CF is left untouched
// since INC/DEC never carry per the 8086 datasheet.
func (c *CPU8086) setFlagsIncDec8(result uint16, a byte, isSub bool) {
	c.pf = parity8(byte(result))
	if isSub {
		c.af = a&0xF == 0
	} else {
		c.af = a&0xF == 0xF
	}
	c.zf = byte(result) == 0
	c.sf = byte(result)&0x80 != 0
	if isSub {
		c.of = a == 0x80
	} else {
		c.of = a == 0x7F
	}
}

func (c *CPU8086) setFlagsIncDec16(result uint32, a uint16, isSub bool) {
	c.pf = parity8(byte(result))
	if isSub {
		c.af = a&0xF == 0
	} else {
		c.af = a&0xF == 0xF
	}
	c.zf = uint16(result) == 0
	c.sf = uint16(result)&0x8000 != 0
	if isSub {
		c.of = a == 0x8000
	} else {
		c.of = a == 0x7FFF
	}
}
