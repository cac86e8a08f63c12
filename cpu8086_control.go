// cpu8086_control.go - jumps, calls, returns, and the LOOP family
//
// Grounded on original_source/src/chips/cpu8086/instructions/jump.rs.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

// condJump builds a short-jump handler (opcodes 0x70-0x7F) that takes the
// jump when test(c) is true.
func condJump(test func(*CPU8086) bool) func(*CPU8086) bool {
	return func(c *CPU8086) bool {
		disp := int8(c.fetch8())
		if test(c) {
			c.ip = uint16(int16(c.ip) + int16(disp))
			c.lastCycles = 16
		} else {
			c.lastCycles = 4
		}
		return true
	}
}

func testO(c *CPU8086) bool   { return c.of }
func testNO(c *CPU8086) bool  { return !c.of }
func testB(c *CPU8086) bool   { return c.cf }
func testNB(c *CPU8086) bool  { return !c.cf }
func testZ(c *CPU8086) bool   { return c.zf }
func testNZ(c *CPU8086) bool  { return !c.zf }
func testBE(c *CPU8086) bool  { return c.cf || c.zf }
func testA(c *CPU8086) bool   { return !c.cf && !c.zf }
func testS(c *CPU8086) bool   { return c.sf }
func testNS(c *CPU8086) bool  { return !c.sf }
func testP(c *CPU8086) bool   { return c.pf }
func testNP(c *CPU8086) bool  { return !c.pf }
func testL(c *CPU8086) bool   { return c.sf != c.of }
func testGE(c *CPU8086) bool  { return c.sf == c.of }
func testLE(c *CPU8086) bool  { return c.zf || c.sf != c.of }
func testG(c *CPU8086) bool   { return !c.zf && c.sf == c.of }

// opJMPShort and opJMPNear are unconditional relative jumps, 8- and
// 16-bit displacement respectively.
func opJMPShort(c *CPU8086) bool {
	disp := int8(c.fetch8())
	c.ip = uint16(int16(c.ip) + int16(disp))
	c.lastCycles = 15
	return true
}

func opJMPNear(c *CPU8086) bool {
	disp := int16(c.fetch16())
	c.ip = uint16(int16(c.ip) + disp)
	c.lastCycles = 15
	return true
}

// opJMPFar loads CS:IP directly from the two immediate words that follow.
func opJMPFar(c *CPU8086) bool {
	newIP := c.fetch16()
	newCS := c.fetch16()
	c.ip = newIP
	c.segs[seg8086CS] = newCS
	c.lastCycles = 15
	return true
}

// opCALLNear pushes the return IP then jumps by a 16-bit relative
// displacement.
func opCALLNear(c *CPU8086) bool {
	disp := int16(c.fetch16())
	ret := c.ip
	c.ip = uint16(int16(c.ip) + disp)
	c.push16(ret)
	c.lastCycles = 19
	return true
}

// opCALLFar pushes CS then IP, then loads CS:IP from the two immediate
// words that follow.
func opCALLFar(c *CPU8086) bool {
	newIP := c.fetch16()
	newCS := c.fetch16()
	c.push16(c.segs[seg8086CS])
	c.push16(c.ip)
	c.ip = newIP
	c.segs[seg8086CS] = newCS
	c.lastCycles = 28
	return true
}

// opRETNear pops IP. The optional imm16 form additionally discards that
// many bytes of stack arguments.
func opRETNear(c *CPU8086) bool {
	c.ip = c.pop16()
	c.lastCycles = 8
	return true
}

func opRETNearImm(c *CPU8086) bool {
	imm := c.fetch16()
	c.ip = c.pop16()
	c.SetSP(c.SP() + imm)
	c.lastCycles = 12
	return true
}

// opRETFar pops IP then CS.
func opRETFar(c *CPU8086) bool {
	c.ip = c.pop16()
	c.segs[seg8086CS] = c.pop16()
	c.lastCycles = 18
	return true
}

func opRETFarImm(c *CPU8086) bool {
	imm := c.fetch16()
	c.ip = c.pop16()
	c.segs[seg8086CS] = c.pop16()
	c.SetSP(c.SP() + imm)
	c.lastCycles = 17
	return true
}

// opLOOP decrements CX and jumps while CX != 0.
func opLOOP(c *CPU8086) bool {
	disp := int8(c.fetch8())
	c.SetCX(c.CX() - 1)
	if c.CX() != 0 {
		c.ip = uint16(int16(c.ip) + int16(disp))
		c.lastCycles = 17
	} else {
		c.lastCycles = 5
	}
	return true
}

// opLOOPE/opLOOPNE decrement CX and jump while CX != 0 and ZF matches
// (LOOPE: ZF=1, LOOPNE: ZF=0).
func opLOOPE(c *CPU8086) bool {
	disp := int8(c.fetch8())
	c.SetCX(c.CX() - 1)
	if c.CX() != 0 && c.zf {
		c.ip = uint16(int16(c.ip) + int16(disp))
		c.lastCycles = 18
	} else {
		c.lastCycles = 5
	}
	return true
}

func opLOOPNE(c *CPU8086) bool {
	disp := int8(c.fetch8())
	c.SetCX(c.CX() - 1)
	if c.CX() != 0 && !c.zf {
		c.ip = uint16(int16(c.ip) + int16(disp))
		c.lastCycles = 19
	} else {
		c.lastCycles = 5
	}
	return true
}

// opJCXZ jumps if CX == 0, without touching CX.
func opJCXZ(c *CPU8086) bool {
	disp := int8(c.fetch8())
	if c.CX() == 0 {
		c.ip = uint16(int16(c.ip) + int16(disp))
		c.lastCycles = 18
	} else {
		c.lastCycles = 6
	}
	return true
}
