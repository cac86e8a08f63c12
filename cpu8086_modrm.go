// cpu8086_modrm.go - ModR/M byte decoding and effective-address computation
//
// The 8086 has no SIB byte: 16-bit addressing picks from a fixed table of
// eight base/index combinations. Grounded on the teacher's
// fetchModRM/getModRMReg/RM/Mod naming and on
// original_source/src/chips/cpu8086/decode.rs's effective-address table.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

// modrm holds one decoded ModR/M byte plus, for memory operands, the
// resolved physical address.
type modrm struct {
	mod byte
	reg byte // register-field operand (3 bits)
	rm  byte // rm-field operand (3 bits)

	isMem bool
	addr  uint32 // valid only if isMem
	cyc   int    // addressing-mode cycle contribution, spec.md §4.2.2
}

// baseFormCycles is the spec.md §4.2.2 cycle cost of each of the eight rm
// base forms (mod != 3), before any displacement cost is added.
var baseFormCycles = [8]int{
	0: 7, // BX+SI
	1: 8, // BX+DI
	2: 8, // BP+SI
	3: 7, // BP+DI
	4: 5, // SI
	5: 5, // DI
	6: 5, // BP (mod!=0) / direct 16-bit address (mod==0)
	7: 5, // BX
}

// fetchModRM reads the ModR/M byte (and any displacement bytes) and
// resolves a memory operand's effective address, honoring any active
// segment-override prefix.
func (c *CPU8086) fetchModRM() modrm {
	b := c.fetch8()
	m := modrm{mod: b >> 6, reg: (b >> 3) & 7, rm: b & 7}
	if m.mod == 3 {
		return m
	}
	m.isMem = true
	m.cyc = baseFormCycles[m.rm]

	var base uint16
	defSeg := byte(seg8086DS)
	switch m.rm {
	case 0:
		base = c.BX() + c.SI()
	case 1:
		base = c.BX() + c.DI()
	case 2:
		base = c.BP() + c.SI()
		defSeg = seg8086SS
	case 3:
		base = c.BP() + c.DI()
		defSeg = seg8086SS
	case 4:
		base = c.SI()
	case 5:
		base = c.DI()
	case 6:
		if m.mod == 0 {
			base = c.fetch16() // direct address, no base register
			m.addr = c.physAddr(c.effectiveSeg(seg8086DS), base)
			return m
		}
		base = c.BP()
		defSeg = seg8086SS
	case 7:
		base = c.BX()
	}

	switch m.mod {
	case 1:
		disp := int8(c.fetch8())
		base += uint16(int16(disp))
		m.cyc += 6
	case 2:
		disp := int16(c.fetch16())
		base += uint16(disp)
		m.cyc += 6
	}
	m.addr = c.physAddr(c.effectiveSeg(defSeg), base)
	return m
}

// rm8/setRM8 read or write an operand already decoded by fetchModRM, as an
// 8-bit register or a memory byte.
func (c *CPU8086) rm8(m modrm) byte {
	if m.isMem {
		return c.readByte(m.addr)
	}
	return c.getReg8(m.rm)
}

func (c *CPU8086) setRM8(m modrm, v byte) {
	if m.isMem {
		c.writeByte(m.addr, v)
		return
	}
	c.setReg8(m.rm, v)
}

func (c *CPU8086) rm16(m modrm) uint16 {
	if m.isMem {
		return c.readWord(m.addr)
	}
	return c.getReg16(m.rm)
}

func (c *CPU8086) setRM16(m modrm, v uint16) {
	if m.isMem {
		c.writeWord(m.addr, v)
		return
	}
	c.setReg16(m.rm, v)
}

// memCycles is the addressing-mode cycle contribution of a memory operand,
// per the base-form and displacement table of spec.md §4.2.2. Zero for a
// register operand.
func (m modrm) memCycles() int {
	return m.cyc
}
