// cpu8086_interrupt.go - software and hardware interrupt delivery
//
// Grounded on original_source/src/chips/cpu8086/instructions/interrupt.rs.
// Per SPEC_FULL.md §9, this implementation deliberately diverges from the
// original in one place: TF is cleared on interrupt entry (software and
// hardware alike), matching spec.md §4.2.5's explicit requirement rather
// than the original source's omission.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

// enterInterrupt pushes FLAGS/CS/IP, clears IF and TF, and loads CS:IP from
// the interrupt vector table entry at vector*4. Used by INT n, INT3, INTO,
// and hardware interrupt acceptance.
func (c *CPU8086) enterInterrupt(vector byte) {
	c.push16(c.GetFlagsWord())
	c.push16(c.segs[seg8086CS])
	c.push16(c.ip)
	c.ifl = false
	c.tf = false

	addr := uint32(vector) * 4
	newIP := c.readWord(addr)
	newCS := c.readWord(addr + 2)
	c.ip = newIP
	c.segs[seg8086CS] = newCS
}

func opINT3(c *CPU8086) bool {
	c.enterInterrupt(3)
	c.lastCycles = 52
	return true
}

func opINTimm(c *CPU8086) bool {
	vector := c.fetch8()
	c.enterInterrupt(vector)
	c.lastCycles = 51
	return true
}

// opINTO fires only if OF is set, vectoring through interrupt 4 (spec.md
// §9 bug fix: the original's INTO called INT 3 instead; this
// implementation always uses 4).
func opINTO(c *CPU8086) bool {
	if c.of {
		c.enterInterrupt(4)
		c.lastCycles = 53
	} else {
		c.lastCycles = 4
	}
	return true
}

func opIRET(c *CPU8086) bool {
	c.ip = c.pop16()
	c.segs[seg8086CS] = c.pop16()
	c.SetFlagsWord(c.pop16())
	c.lastCycles = 24
	return true
}

func opHLT(c *CPU8086) bool {
	c.halted = true
	c.lastCycles = 2
	return true
}
