// cpu8086_ops_group.go - the grouped opcode families
//
// The 8086 encodes several instruction families as "opcode + ModR/M reg
// field selects the operation" rather than one opcode per operation:
// ADD/OR/ADC/SBB/AND/SUB/XOR/CMP (0x00-0x3D), the immediate-group
// (0x80-0x83), shift/rotate (0xD0-0xD3), the unary group (0xF6/0xF7), and
// INC/DEC/CALL/JMP/PUSH group (0xFE/0xFF). Grounded on
// original_source/src/chips/cpu8086/instructions/math.rs and shift.rs.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

func aluEbGb(c *CPU8086, group byte) bool {
	m := c.fetchModRM()
	dst := c.rm8(m)
	src := c.getReg8(m.reg)
	r := c.alu8(group, dst, src)
	if group != aluCMP {
		c.setRM8(m, r)
	}
	c.lastCycles = 3 + m.memCycles()
	return true
}

func aluEvGv(c *CPU8086, group byte) bool {
	m := c.fetchModRM()
	dst := c.rm16(m)
	src := c.getReg16(m.reg)
	r := c.alu16(group, dst, src)
	if group != aluCMP {
		c.setRM16(m, r)
	}
	c.lastCycles = 3 + m.memCycles()
	return true
}

func aluGbEb(c *CPU8086, group byte) bool {
	m := c.fetchModRM()
	dst := c.getReg8(m.reg)
	src := c.rm8(m)
	r := c.alu8(group, dst, src)
	if group != aluCMP {
		c.setReg8(m.reg, r)
	}
	c.lastCycles = 3 + m.memCycles()
	return true
}

func aluGvEv(c *CPU8086, group byte) bool {
	m := c.fetchModRM()
	dst := c.getReg16(m.reg)
	src := c.rm16(m)
	r := c.alu16(group, dst, src)
	if group != aluCMP {
		c.setReg16(m.reg, r)
	}
	c.lastCycles = 3 + m.memCycles()
	return true
}

func aluALIb(c *CPU8086, group byte) bool {
	src := c.fetch8()
	r := c.alu8(group, byte(c.AX()), src)
	if group != aluCMP {
		c.SetAX(c.AX()&0xFF00 | uint16(r))
	}
	c.lastCycles = 4
	return true
}

func aluAXIv(c *CPU8086, group byte) bool {
	src := c.fetch16()
	r := c.alu16(group, c.AX(), src)
	if group != aluCMP {
		c.SetAX(r)
	}
	c.lastCycles = 4
	return true
}

// group1: 0x80-0x83, immediate-to-r/m ADD/OR/ADC/SBB/AND/SUB/XOR/CMP.
func group1(c *CPU8086, wide, signExtend bool) bool {
	m := c.fetchModRM()
	group := m.reg
	if !wide {
		src := c.fetch8()
		dst := c.rm8(m)
		r := c.alu8(group, dst, src)
		if group != aluCMP {
			c.setRM8(m, r)
		}
	} else {
		var src uint16
		if signExtend {
			src = uint16(int16(int8(c.fetch8())))
		} else {
			src = c.fetch16()
		}
		dst := c.rm16(m)
		r := c.alu16(group, dst, src)
		if group != aluCMP {
			c.setRM16(m, r)
		}
	}
	c.lastCycles = 4 + m.memCycles()
	return true
}

// group2: 0xD0-0xD3, shift/rotate by 1 or CL.
func group2(c *CPU8086, wide, byCL bool) bool {
	m := c.fetchModRM()
	op := m.reg
	count := byte(1)
	if byCL {
		count = byte(c.CX())
	}
	if !wide {
		v := c.rm8(m)
		v = c.shift8(op, v, count)
		c.setRM8(m, v)
	} else {
		v := c.rm16(m)
		v = c.shift16(op, v, count)
		c.setRM16(m, v)
	}
	c.lastCycles = 2 + int(count) + m.memCycles()
	return true
}

// group3: 0xF6/0xF7, TEST/NOT/NEG/MUL/IMUL/DIV/IDIV selected by reg field.
func group3(c *CPU8086, wide bool) bool {
	m := c.fetchModRM()
	op := m.reg
	if !wide {
		v := c.rm8(m)
		switch op {
		case 0, 1:
			imm := c.fetch8()
			c.alu8(aluAND, v, imm) // TEST: AND without writeback
		case 2:
			c.setRM8(m, ^v)
		case 3:
			r := c.alu8(aluSUB, 0, v)
			c.cf = v != 0
			c.setRM8(m, r)
		case 4:
			c.mul8(v)
		case 5:
			c.imul8(v)
		case 6:
			c.div8(v)
		case 7:
			c.idiv8(v)
		}
	} else {
		v := c.rm16(m)
		switch op {
		case 0, 1:
			imm := c.fetch16()
			c.alu16(aluAND, v, imm)
		case 2:
			c.setRM16(m, ^v)
		case 3:
			r := c.alu16(aluSUB, 0, v)
			c.cf = v != 0
			c.setRM16(m, r)
		case 4:
			c.mul16(v)
		case 5:
			c.imul16(v)
		case 6:
			c.div16(v)
		case 7:
			c.idiv16(v)
		}
	}
	c.lastCycles = 5 + m.memCycles()
	return true
}

// group4: 0xFE, INC/DEC Eb. Reg fields 2-7 are undefined on the 8086.
func group4(c *CPU8086) bool {
	m := c.fetchModRM()
	switch m.reg {
	case 0:
		c.setRM8(m, c.incDec8(c.rm8(m), false))
	case 1:
		c.setRM8(m, c.incDec8(c.rm8(m), true))
	default:
		return false
	}
	c.lastCycles = 3 + m.memCycles()
	return true
}

// group5: 0xFF, INC/DEC/CALL/JMP/PUSH Ev. Reg field 7 is undefined.
func group5(c *CPU8086) bool {
	m := c.fetchModRM()
	switch m.reg {
	case 0:
		c.setRM16(m, c.incDec16(c.rm16(m), false))
		c.lastCycles = 3 + m.memCycles()
	case 1:
		c.setRM16(m, c.incDec16(c.rm16(m), true))
		c.lastCycles = 3 + m.memCycles()
	case 2:
		target := c.rm16(m)
		c.push16(c.ip)
		c.ip = target
		c.lastCycles = 16 + m.memCycles()
	case 3:
		c.farCallIndirect(m)
	case 4:
		c.ip = c.rm16(m)
		c.lastCycles = 11 + m.memCycles()
	case 5:
		c.farJmpIndirect(m)
	case 6:
		c.push16(c.rm16(m))
		c.lastCycles = 11 + m.memCycles()
	default:
		return false
	}
	return true
}

// farCallIndirect and farJmpIndirect implement CALL/JMP FAR [mem]. When the
// operand is a register rather than memory there is no second 16-bit value
// to supply a new CS, so per SPEC_FULL.md §7 (error kind 4) this downgrades
// to a same-segment near call/jump using the register as the offset, and
// logs instead of faulting.
func (c *CPU8086) farCallIndirect(m modrm) {
	if !m.isMem {
		c.log.Warnf("far CALL with register operand downgraded to near call")
		target := c.rm16(m)
		c.push16(c.ip)
		c.ip = target
		c.lastCycles = 16
		return
	}
	newIP := c.readWord(m.addr)
	newCS := c.readWord(m.addr + 2)
	c.push16(c.segs[seg8086CS])
	c.push16(c.ip)
	c.ip = newIP
	c.segs[seg8086CS] = newCS
	c.lastCycles = 37
}

func (c *CPU8086) farJmpIndirect(m modrm) {
	if !m.isMem {
		c.log.Warnf("far JMP with register operand downgraded to near jump")
		c.ip = c.rm16(m)
		c.lastCycles = 11
		return
	}
	newIP := c.readWord(m.addr)
	newCS := c.readWord(m.addr + 2)
	c.ip = newIP
	c.segs[seg8086CS] = newCS
	c.lastCycles = 24
}
