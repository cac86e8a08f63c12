// cpu8086_flagops.go - flag-manipulation instructions and port I/O
//
// Grounded on original_source/src/chips/cpu8086/instructions/flag.rs.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

func opCLC(c *CPU8086) bool { c.cf = false; c.lastCycles = 2; return true }
func opSTC(c *CPU8086) bool { c.cf = true; c.lastCycles = 2; return true }
func opCMC(c *CPU8086) bool { c.cf = !c.cf; c.lastCycles = 2; return true }
func opCLI(c *CPU8086) bool { c.ifl = false; c.lastCycles = 2; return true }
func opSTI(c *CPU8086) bool { c.ifl = true; c.lastCycles = 2; return true }
func opCLD(c *CPU8086) bool { c.df = false; c.lastCycles = 2; return true }
func opSTD(c *CPU8086) bool { c.df = true; c.lastCycles = 2; return true }

// opLAHF loads AH from the low byte of the flags word.
func opLAHF(c *CPU8086) bool {
	c.SetAX(c.AX()&0x00FF | uint16(byte(c.GetFlagsWord()))<<8)
	c.lastCycles = 4
	return true
}

// opSAHF loads the low byte of the flags (CF/PF/AF/ZF/SF) from AH, leaving
// the high byte (TF/IF/DF/OF and the fixed bits) untouched.
func opSAHF(c *CPU8086) bool {
	ah := byte(c.AX() >> 8)
	w := c.GetFlagsWord()&0xFF00 | uint16(ah)
	c.SetFlagsWord(w)
	c.lastCycles = 4
	return true
}

func opPUSHF(c *CPU8086) bool {
	c.push16(c.GetFlagsWord())
	c.lastCycles = 10
	return true
}

func opPOPF(c *CPU8086) bool {
	c.SetFlagsWord(c.pop16())
	c.lastCycles = 8
	return true
}

func opNOP(c *CPU8086) bool  { c.lastCycles = 3; return true }
func opWAIT(c *CPU8086) bool { c.lastCycles = 3; return true } // treated as NOP, spec.md §4.2.3

// IN/OUT, byte and word, immediate port or DX.
func opINALIb(c *CPU8086) bool {
	port := uint16(c.fetch8())
	c.SetAX(c.AX()&0xFF00 | uint16(c.inByte(port)))
	c.lastCycles = 10
	return true
}

func opINAXIb(c *CPU8086) bool {
	port := uint16(c.fetch8())
	c.SetAX(c.inWord(port))
	c.lastCycles = 10
	return true
}

func opOUTIbAL(c *CPU8086) bool {
	port := uint16(c.fetch8())
	c.outByte(port, byte(c.AX()))
	c.lastCycles = 10
	return true
}

func opOUTIbAX(c *CPU8086) bool {
	port := uint16(c.fetch8())
	c.outWord(port, c.AX())
	c.lastCycles = 10
	return true
}

func opINALDX(c *CPU8086) bool {
	c.SetAX(c.AX()&0xFF00 | uint16(c.inByte(c.DX())))
	c.lastCycles = 8
	return true
}

func opINAXDX(c *CPU8086) bool {
	c.SetAX(c.inWord(c.DX()))
	c.lastCycles = 8
	return true
}

func opOUTDXAL(c *CPU8086) bool {
	c.outByte(c.DX(), byte(c.AX()))
	c.lastCycles = 8
	return true
}

func opOUTDXAX(c *CPU8086) bool {
	c.outWord(c.DX(), c.AX())
	c.lastCycles = 8
	return true
}
