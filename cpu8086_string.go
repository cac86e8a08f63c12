// cpu8086_string.go - string instructions and the REP prefix state machine
//
// Grounded on original_source/src/chips/cpu8086/instructions/string.rs. A
// REP-prefixed string instruction runs its whole repetition here in one
// step() call rather than yielding between iterations, so (unlike real
// hardware) a pending hardware interrupt is not taken between iterations:
// it is accepted only after the whole repetition has finished, and CX's
// value is observable only before/after the whole repetition.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

func (c *CPU8086) strideFor(width int) uint16 {
	if c.df {
		return ^uint16(width - 1) // two's-complement -width
	}
	return uint16(width)
}

func opMOVSB(c *CPU8086) bool { c.doMOVS(1); return true }
func opMOVSW(c *CPU8086) bool { c.doMOVS(2); return true }

func (c *CPU8086) doMOVS(width int) {
	stride := c.strideFor(width)
	n := c.repCount()
	for i := 0; i < n; i++ {
		src := c.physAddr(c.effectiveSeg(seg8086DS), c.SI())
		dst := c.physAddr(c.segs[seg8086ES], c.DI())
		if width == 1 {
			c.writeByte(dst, c.readByte(src))
		} else {
			c.writeWord(dst, c.readWord(src))
		}
		c.SetSI(c.SI() + stride)
		c.SetDI(c.DI() + stride)
		if c.repPrefix != 0 {
			c.SetCX(c.CX() - 1)
		}
	}
	c.forceZFOnRepExit()
	c.lastCycles = 18 + 4*n
}

func opCMPSB(c *CPU8086) bool { c.doCMPS(1); return true }
func opCMPSW(c *CPU8086) bool { c.doCMPS(2); return true }

func (c *CPU8086) doCMPS(width int) {
	stride := c.strideFor(width)
	for {
		src := c.physAddr(c.effectiveSeg(seg8086DS), c.SI())
		dst := c.physAddr(c.segs[seg8086ES], c.DI())
		if width == 1 {
			c.alu8(aluCMP, c.readByte(src), c.readByte(dst))
		} else {
			c.alu16(aluCMP, c.readWord(src), c.readWord(dst))
		}
		c.SetSI(c.SI() + stride)
		c.SetDI(c.DI() + stride)
		if c.repPrefix == 0 {
			break
		}
		c.SetCX(c.CX() - 1)
		if c.CX() == 0 {
			c.forceZFOnRepExit()
			break
		}
		if c.repPrefix == 0xF3 && !c.zf { // REPE: stop on ZF=0
			break
		}
		if c.repPrefix == 0xF2 && c.zf { // REPNE: stop on ZF=1
			break
		}
	}
	c.lastCycles = 22
}

func opSTOSB(c *CPU8086) bool { c.doSTOS(1); return true }
func opSTOSW(c *CPU8086) bool { c.doSTOS(2); return true }

func (c *CPU8086) doSTOS(width int) {
	stride := c.strideFor(width)
	n := c.repCount()
	for i := 0; i < n; i++ {
		dst := c.physAddr(c.segs[seg8086ES], c.DI())
		if width == 1 {
			c.writeByte(dst, byte(c.AX()))
		} else {
			c.writeWord(dst, c.AX())
		}
		c.SetDI(c.DI() + stride)
		if c.repPrefix != 0 {
			c.SetCX(c.CX() - 1)
		}
	}
	c.forceZFOnRepExit()
	c.lastCycles = 11 + 4*n
}

func opLODSB(c *CPU8086) bool { c.doLODS(1); return true }
func opLODSW(c *CPU8086) bool { c.doLODS(2); return true }

func (c *CPU8086) doLODS(width int) {
	stride := c.strideFor(width)
	n := c.repCount()
	for i := 0; i < n; i++ {
		src := c.physAddr(c.effectiveSeg(seg8086DS), c.SI())
		if width == 1 {
			c.SetAX(c.AX()&0xFF00 | uint16(c.readByte(src)))
		} else {
			c.SetAX(c.readWord(src))
		}
		c.SetSI(c.SI() + stride)
		if c.repPrefix != 0 {
			c.SetCX(c.CX() - 1)
		}
	}
	c.forceZFOnRepExit()
	c.lastCycles = 12 + 4*n
}

func opSCASB(c *CPU8086) bool { c.doSCAS(1); return true }
func opSCASW(c *CPU8086) bool { c.doSCAS(2); return true }

func (c *CPU8086) doSCAS(width int) {
	stride := c.strideFor(width)
	for {
		dst := c.physAddr(c.segs[seg8086ES], c.DI())
		if width == 1 {
			c.alu8(aluCMP, byte(c.AX()), c.readByte(dst))
		} else {
			c.alu16(aluCMP, c.AX(), c.readWord(dst))
		}
		c.SetDI(c.DI() + stride)
		if c.repPrefix == 0 {
			break
		}
		c.SetCX(c.CX() - 1)
		if c.CX() == 0 {
			c.forceZFOnRepExit()
			break
		}
		if c.repPrefix == 0xF3 && !c.zf {
			break
		}
		if c.repPrefix == 0xF2 && c.zf {
			break
		}
	}
	c.lastCycles = 15
}

// repCount returns how many times an unconditional-repeat string op
// (MOVS/STOS/LODS) should run: CX if REP-prefixed (and at least one pass
// even when CX starts at 0 is never taken, per the datasheet - REP with
// CX==0 does nothing), else exactly one pass.
func (c *CPU8086) repCount() int {
	if c.repPrefix == 0 {
		return 1
	}
	return int(c.CX())
}

// forceZFOnRepExit implements spec.md §4.2.6's "when CX reaches 0 through
// REP, the zero flag is forced to true" unconditionally for every
// REP-prefixed string op, including CMPS/SCAS whose REPE/REPNE exit can
// otherwise leave ZF reflecting a mismatching final comparison.
func (c *CPU8086) forceZFOnRepExit() {
	if c.repPrefix != 0 {
		c.zf = true
	}
}
