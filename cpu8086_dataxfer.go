// cpu8086_dataxfer.go - data movement: MOV, XCHG, LEA, LES/LDS, XLAT, PUSH/POP
//
// Grounded on original_source/src/chips/cpu8086/instructions/ (the mov,
// stack, and segment-load forms), carrying the teacher's fetchModRM/rm8/
// rm16 accessors established in cpu8086_modrm.go.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

// MOV register/memory <-> register, 8-bit. Direction bit of the opcode
// picks which side of the ModR/M pair is the destination.
func opMOVEbGb(c *CPU8086) bool {
	m := c.fetchModRM()
	c.setRM8(m, c.getReg8(m.reg))
	c.lastCycles = 2 + m.memCycles()
	return true
}

func opMOVGbEb(c *CPU8086) bool {
	m := c.fetchModRM()
	c.setReg8(m.reg, c.rm8(m))
	c.lastCycles = 2 + m.memCycles()
	return true
}

func opMOVEvGv(c *CPU8086) bool {
	m := c.fetchModRM()
	c.setRM16(m, c.getReg16(m.reg))
	c.lastCycles = 2 + m.memCycles()
	return true
}

func opMOVGvEv(c *CPU8086) bool {
	m := c.fetchModRM()
	c.setReg16(m.reg, c.rm16(m))
	c.lastCycles = 2 + m.memCycles()
	return true
}

// MOV segment register <-> register/memory (0x8C/0x8E). The ModR/M reg
// field selects one of ES/CS/SS/DS instead of a general register.
func opMOVEvSw(c *CPU8086) bool {
	m := c.fetchModRM()
	c.setRM16(m, c.getSeg(m.reg))
	c.lastCycles = 2 + m.memCycles()
	return true
}

func opMOVSwEv(c *CPU8086) bool {
	m := c.fetchModRM()
	c.setSeg(m.reg, c.rm16(m))
	c.lastCycles = 2 + m.memCycles()
	return true
}

// MOV AL/AX, [imm16] and MOV [imm16], AL/AX - the memory-direct forms
// (0xA0-0xA3), addressed in the current segment (DS, subject to override).
func opMOVALMoffs(c *CPU8086) bool {
	off := c.fetch16()
	addr := c.physAddr(c.effectiveSeg(seg8086DS), off)
	c.SetAX(c.AX()&0xFF00 | uint16(c.readByte(addr)))
	c.lastCycles = 10
	return true
}

func opMOVAXMoffs(c *CPU8086) bool {
	off := c.fetch16()
	addr := c.physAddr(c.effectiveSeg(seg8086DS), off)
	c.SetAX(c.readWord(addr))
	c.lastCycles = 10
	return true
}

func opMOVMoffsAL(c *CPU8086) bool {
	off := c.fetch16()
	addr := c.physAddr(c.effectiveSeg(seg8086DS), off)
	c.writeByte(addr, byte(c.AX()))
	c.lastCycles = 10
	return true
}

func opMOVMoffsAX(c *CPU8086) bool {
	off := c.fetch16()
	addr := c.physAddr(c.effectiveSeg(seg8086DS), off)
	c.writeWord(addr, c.AX())
	c.lastCycles = 10
	return true
}

// MOV reg8, imm8 (0xB0-0xB7) and MOV reg16, imm16 (0xB8-0xBF): the opcode's
// low 3 bits select the register directly, no ModR/M byte.
func movRegImm8(idx byte) func(*CPU8086) bool {
	return func(c *CPU8086) bool {
		c.setReg8(idx, c.fetch8())
		c.lastCycles = 4
		return true
	}
}

func movRegImm16(idx byte) func(*CPU8086) bool {
	return func(c *CPU8086) bool {
		c.setReg16(idx, c.fetch16())
		c.lastCycles = 4
		return true
	}
}

// MOV r/m8, imm8 (0xC6) and MOV r/m16, imm16 (0xC7): the ModR/M reg field
// is always 0 here, undefined values elsewhere are not possible to encode.
func opMOVEbIb(c *CPU8086) bool {
	m := c.fetchModRM()
	c.setRM8(m, c.fetch8())
	c.lastCycles = 4 + m.memCycles()
	return true
}

func opMOVEvIv(c *CPU8086) bool {
	m := c.fetchModRM()
	c.setRM16(m, c.fetch16())
	c.lastCycles = 4 + m.memCycles()
	return true
}

// XCHG AX, reg16 (0x91-0x97, opcode low 3 bits select the register; 0x90
// is the AX,AX no-op form, i.e. NOP).
func xchgAXReg(idx byte) func(*CPU8086) bool {
	return func(c *CPU8086) bool {
		ax := c.AX()
		c.SetAX(c.getReg16(idx))
		c.setReg16(idx, ax)
		c.lastCycles = 3
		return true
	}
}

func opXCHGEbGb(c *CPU8086) bool {
	m := c.fetchModRM()
	a, b := c.rm8(m), c.getReg8(m.reg)
	c.setRM8(m, b)
	c.setReg8(m.reg, a)
	c.lastCycles = 4 + m.memCycles()
	return true
}

func opXCHGEvGv(c *CPU8086) bool {
	m := c.fetchModRM()
	a, b := c.rm16(m), c.getReg16(m.reg)
	c.setRM16(m, b)
	c.setReg16(m.reg, a)
	c.lastCycles = 4 + m.memCycles()
	return true
}

// LEA loads the computed effective address itself (not the value stored
// there) into the destination register; a register-operand encoding is not
// meaningful and is treated as the plain offset part of the (never-used)
// segment pairing.
func opLEA(c *CPU8086) bool {
	m := c.fetchModRM()
	var offset uint16
	if m.isMem {
		// m.addr is physical; take off the segment base fetchModRM applied.
		defSeg := byte(seg8086DS)
		if m.rm == 2 || m.rm == 3 || (m.rm == 6 && m.mod != 0) {
			defSeg = seg8086SS
		}
		offset = uint16(m.addr - uint32(c.effectiveSeg(defSeg))<<4)
	}
	c.setReg16(m.reg, offset)
	c.lastCycles = 2
	return true
}

// LDS/LES load a 32-bit far pointer from memory: the word at the effective
// address goes to the general register, the following word to DS/ES.
func opLDS(c *CPU8086) bool { return loadFarPtr(c, seg8086DS) }
func opLES(c *CPU8086) bool { return loadFarPtr(c, seg8086ES) }

func loadFarPtr(c *CPU8086, seg byte) bool {
	m := c.fetchModRM()
	if !m.isMem {
		return false
	}
	off := c.readWord(m.addr)
	segVal := c.readWord(m.addr + 2)
	c.setReg16(m.reg, off)
	c.setSeg(seg, segVal)
	c.lastCycles = 16 + m.memCycles()
	return true
}

// XLAT replaces AL with the byte at DS:(BX+AL), the classic translate-table
// lookup.
func opXLAT(c *CPU8086) bool {
	addr := c.physAddr(c.effectiveSeg(seg8086DS), c.BX()+uint16(byte(c.AX())))
	c.SetAX(c.AX()&0xFF00 | uint16(c.readByte(addr)))
	c.lastCycles = 11
	return true
}

// PUSH/POP of general registers (0x50-0x57/0x58-0x5F, low 3 bits select
// the register).
func pushReg(idx byte) func(*CPU8086) bool {
	return func(c *CPU8086) bool {
		c.push16(c.getReg16(idx))
		c.lastCycles = 11
		return true
	}
}

func popReg(idx byte) func(*CPU8086) bool {
	return func(c *CPU8086) bool {
		c.setReg16(idx, c.pop16())
		c.lastCycles = 8
		return true
	}
}

// PUSH/POP of segment registers (one opcode per register - no ModR/M).
func pushSeg(idx byte) func(*CPU8086) bool {
	return func(c *CPU8086) bool {
		c.push16(c.getSeg(idx))
		c.lastCycles = 10
		return true
	}
}

func popSeg(idx byte) func(*CPU8086) bool {
	return func(c *CPU8086) bool {
		c.setSeg(idx, c.pop16())
		c.lastCycles = 8
		return true
	}
}

// PUSH imm16 (0x68, undefined on plain 8086/8088 but harmless to support
// since nothing in the opcode map collides with it... actually 0x68/0x6A
// are 80186+; left unmapped here, see initOps).

// PUSH r/m16 / POP r/m16 are handled by group5 (0xFF) and the 0x8F opcode
// respectively.
func opPOPEv(c *CPU8086) bool {
	m := c.fetchModRM()
	c.setRM16(m, c.pop16())
	c.lastCycles = 8 + m.memCycles()
	return true
}
