// faraday_fe2010a.go - Faraday FE2010A PC/XT glue chip (82C12x-style PPI)
//
// An external collaborator per spec.md §1: models the keyboard/speaker/
// configuration-switch PPI register surface BIOS POST reads, nothing more.
// Grounded on original_source/src/chips/faraday.rs's port A/B/C and
// configuration-register bit layout.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

// Faraday models enough of the FE2010A's PPI-equivalent ports for BIOS POST
// to read back memory size, floppy count, and the keyboard scan byte.
type Faraday struct {
	timer2Enabled  bool
	speakerEnabled bool
	switchSelectS1 bool
	parityEnabled  bool
	ioCheckEnabled bool
	kbClockEnabled bool
	nmiEnabled     bool

	keyboardChar byte
	log          Logger
}

func NewFaraday(log Logger) *Faraday {
	if log == nil {
		log = nopLogger{}
	}
	return &Faraday{parityEnabled: true, ioCheckEnabled: true, log: log}
}

// OutByte/InByte implement the Bus's IOPort interface for ports
// 0x60-0x63 and 0xA0.
func (f *Faraday) OutByte(port uint16, value byte) {
	switch port {
	case 0x60:
		f.log.Debugf("Faraday port A write %#02x", value)
	case 0x61:
		f.writePortB(value)
	case 0x63:
		f.setConfiguration(value)
	case 0xA0:
		f.nmiEnabled = value&0x80 != 0
	default:
		f.log.Warnf("Faraday: unmapped port %#02x <- %#02x", port, value)
	}
}

func (f *Faraday) InByte(port uint16) byte {
	switch port {
	case 0x60:
		return f.keyboardChar
	case 0x61:
		return f.readPortB()
	case 0x62:
		return f.readPortC()
	default:
		f.log.Warnf("Faraday: unmapped port %#02x read", port)
		return 0xFF
	}
}

func (f *Faraday) setConfiguration(value byte) {
	f.parityEnabled = value&1 == 0
}

func (f *Faraday) writePortB(value byte) {
	f.timer2Enabled = value&0b1 != 0
	f.speakerEnabled = value&0b10 != 0
	f.switchSelectS1 = value&0b100 != 0
	f.parityEnabled = value&0b1_0000 == 0
	f.ioCheckEnabled = value&0b10_0000 == 0
	f.kbClockEnabled = value&0b100_0000 != 0
	if value&0b1000_0000 != 0 {
		f.keyboardChar = 0
	}
}

func (f *Faraday) readPortB() byte {
	var r byte
	if f.timer2Enabled {
		r |= 0b1
	}
	if f.speakerEnabled {
		r |= 0b10
	}
	if f.switchSelectS1 {
		r |= 0b100
	}
	if !f.parityEnabled {
		r |= 0b1_0000
	}
	if !f.ioCheckEnabled {
		r |= 0b10_0000
	}
	if f.kbClockEnabled {
		r |= 0b100_0000
	}
	return r
}

// readPortC reports the switch block BIOS POST probes for memory size and
// floppy count; this emulator always reports the maximum (640K, no
// floppies) configuration.
func (f *Faraday) readPortC() byte {
	if f.switchSelectS1 {
		return 0 // 640K, no 8087
	}
	return 0 // 0 floppy drives
}

// SetKeyboardChar deposits the next scan code for a BIOS keyboard-interrupt
// handler to read via port A; wired externally by whatever feeds keyboard
// input into this system (out of this core's scope).
func (f *Faraday) SetKeyboardChar(b byte) { f.keyboardChar = b }
