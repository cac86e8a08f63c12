// cpu8086_muldiv.go - MUL/IMUL/DIV/IDIV, sign/zero extension, and BCD adjust
//
// Grounded on original_source/src/chips/cpu8086/instructions/{math,bcd}.rs.
// Per SPEC_FULL.md §9, MUL/IMUL's carry/overflow test here is "upper half
// nonzero" (MUL) / "upper half is not the sign extension of the lower half"
// (IMUL), not the single-bit proxy the original used, and CWD sign-extends
// DX to 0xFFFF rather than zero-extending to 0x00FF.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

// mul8 computes AX = AL * v (unsigned) and sets CF/OF when the high half
// (AH) is nonzero.
func (c *CPU8086) mul8(v byte) {
	r := uint16(byte(c.AX())) * uint16(v)
	c.SetAX(r)
	hi := byte(r >> 8)
	c.cf = hi != 0
	c.of = hi != 0
}

// imul8 computes AX = AL * v as a signed multiply and sets CF/OF unless AH
// is exactly the sign extension of AL.
func (c *CPU8086) imul8(v byte) {
	r := int16(int8(byte(c.AX()))) * int16(int8(v))
	c.SetAX(uint16(r))
	signExt := int16(int8(byte(r)))
	overflow := r != signExt
	c.cf = overflow
	c.of = overflow
}

// div8 computes AL,AH = AX/v, AX%v (unsigned). Division by zero or a
// quotient that overflows AL delivers INT 0 (spec.md §7 error kind 3) and
// leaves AX untouched.
func (c *CPU8086) div8(v byte) {
	if v == 0 {
		c.enterInterrupt(0)
		return
	}
	dividend := c.AX()
	q := dividend / uint16(v)
	if q > 0xFF {
		c.enterInterrupt(0)
		return
	}
	r := dividend % uint16(v)
	c.SetAX(uint16(byte(q)) | uint16(byte(r))<<8)
}

// idiv8 computes AL,AH = AX/v, AX%v (signed).
func (c *CPU8086) idiv8(v byte) {
	if v == 0 {
		c.enterInterrupt(0)
		return
	}
	dividend := int16(c.AX())
	divisor := int16(int8(v))
	q := dividend / divisor
	r := dividend % divisor
	if q > 127 || q < -128 {
		c.enterInterrupt(0)
		return
	}
	c.SetAX(uint16(byte(q)) | uint16(byte(r))<<8)
}

// mul16 computes DX:AX = AX * v (unsigned) and sets CF/OF when DX is
// nonzero.
func (c *CPU8086) mul16(v uint16) {
	r := uint32(c.AX()) * uint32(v)
	c.SetAX(uint16(r))
	c.SetDX(uint16(r >> 16))
	nonzero := uint16(r>>16) != 0
	c.cf = nonzero
	c.of = nonzero
}

// imul16 computes DX:AX = AX * v as a signed multiply and sets CF/OF unless
// DX is exactly the sign extension of AX.
func (c *CPU8086) imul16(v uint16) {
	r := int32(int16(c.AX())) * int32(int16(v))
	c.SetAX(uint16(r))
	c.SetDX(uint16(r >> 16))
	signExt := int32(int16(uint16(r)))
	overflow := r != signExt
	c.cf = overflow
	c.of = overflow
}

// div16 computes AX,DX = (DX:AX)/v, (DX:AX)%v (unsigned).
func (c *CPU8086) div16(v uint16) {
	if v == 0 {
		c.enterInterrupt(0)
		return
	}
	dividend := uint32(c.DX())<<16 | uint32(c.AX())
	q := dividend / uint32(v)
	if q > 0xFFFF {
		c.enterInterrupt(0)
		return
	}
	r := dividend % uint32(v)
	c.SetAX(uint16(q))
	c.SetDX(uint16(r))
}

// idiv16 computes AX,DX = (DX:AX)/v, (DX:AX)%v (signed).
func (c *CPU8086) idiv16(v uint16) {
	if v == 0 {
		c.enterInterrupt(0)
		return
	}
	dividend := int32(uint32(c.DX())<<16 | uint32(c.AX()))
	divisor := int32(int16(v))
	q := dividend / divisor
	r := dividend % divisor
	if q > 32767 || q < -32768 {
		c.enterInterrupt(0)
		return
	}
	c.SetAX(uint16(int16(q)))
	c.SetDX(uint16(int16(r)))
}

// opCBW sign-extends AL into AH (byte-to-word).
func opCBW(c *CPU8086) bool {
	al := int8(byte(c.AX()))
	c.SetAX(uint16(int16(al)))
	c.lastCycles = 2
	return true
}

// opCWD sign-extends AX into DX:AX (word-to-doubleword). Per SPEC_FULL.md
// §9, DX becomes 0xFFFF (not 0x00FF) when AX is negative.
func opCWD(c *CPU8086) bool {
	if c.AX()&0x8000 != 0 {
		c.SetDX(0xFFFF)
	} else {
		c.SetDX(0)
	}
	c.lastCycles = 5
	return true
}

// opAAA is ASCII-adjust-after-addition.
func opAAA(c *CPU8086) bool {
	al := byte(c.AX())
	if al&0x0F > 9 || c.af {
		c.SetAX(c.AX() + 0x106)
		c.af = true
		c.cf = true
	} else {
		c.af = false
		c.cf = false
	}
	c.SetAX(c.AX() & 0xFF0F)
	c.lastCycles = 8
	return true
}

// opAAS is ASCII-adjust-after-subtraction.
func opAAS(c *CPU8086) bool {
	al := byte(c.AX())
	if al&0x0F > 9 || c.af {
		c.SetAX(c.AX() - 6)
		c.SetAX(c.AX() - 0x100)
		c.af = true
		c.cf = true
	} else {
		c.af = false
		c.cf = false
	}
	c.SetAX(c.AX() & 0xFF0F)
	c.lastCycles = 8
	return true
}

// opAAM is ASCII-adjust-after-multiplication; the following immediate byte
// is the divisor (10 in every BIOS/DOS use, but the encoding carries an
// explicit operand).
func opAAM(c *CPU8086) bool {
	base := c.fetch8()
	if base == 0 {
		c.enterInterrupt(0)
		c.lastCycles = 52
		return true
	}
	al := byte(c.AX())
	ah := al / base
	al = al % base
	c.SetAX(uint16(al) | uint16(ah)<<8)
	c.pf = parity8(al)
	c.zf = al == 0
	c.sf = al&0x80 != 0
	c.lastCycles = 83
	return true
}

// opAAD is ASCII-adjust-before-division; the following immediate byte is
// the base (10 in every BIOS/DOS use).
func opAAD(c *CPU8086) bool {
	base := c.fetch8()
	al := byte(c.AX())
	ah := byte(c.AX() >> 8)
	result := al + ah*base
	c.SetAX(uint16(result))
	c.pf = parity8(result)
	c.zf = result == 0
	c.sf = result&0x80 != 0
	c.lastCycles = 60
	return true
}

// opDAA is decimal-adjust-after-addition, operating on AL as two packed BCD
// digits.
func opDAA(c *CPU8086) bool {
	al := byte(c.AX())
	oldAL := al
	oldCF := c.cf
	c.cf = false
	if al&0x0F > 9 || c.af {
		carry := al > 0xFF-6
		al += 6
		c.af = true
		c.cf = oldCF || carry
	} else {
		c.af = false
	}
	if oldAL > 0x99 || oldCF {
		al += 0x60
		c.cf = true
	}
	c.SetAX(c.AX()&0xFF00 | uint16(al))
	c.pf = parity8(al)
	c.zf = al == 0
	c.sf = al&0x80 != 0
	c.lastCycles = 4
	return true
}

// opDAS is decimal-adjust-after-subtraction, operating on AL as two packed
// BCD digits.
func opDAS(c *CPU8086) bool {
	al := byte(c.AX())
	oldAL := al
	oldCF := c.cf
	c.cf = false
	if al&0x0F > 9 || c.af {
		borrow := al < 6
		al -= 6
		c.af = true
		c.cf = oldCF || borrow
	} else {
		c.af = false
	}
	if oldAL > 0x99 || oldCF {
		al -= 0x60
		c.cf = true
	}
	c.SetAX(c.AX()&0xFF00 | uint16(al))
	c.pf = parity8(al)
	c.zf = al == 0
	c.sf = al&0x80 != 0
	c.lastCycles = 4
	return true
}
