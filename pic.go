// pic.go - Intel 8259 Programmable Interrupt Controller
//
// Grounded line-for-line on original_source/src/chips/pic.rs: the same
// ICW1-4 initialization state machine, OCW1-3 operational commands, and
// eight-line IRQ register bank, restructured into the teacher's
// register-bank-with-handler-methods shape (see sid_engine.go/psg_engine.go
// for the convention being followed).
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

// picVectorType and picTrigger mirror original_source's VectorType/Trigger
// enums; this system never consults them beyond storing what was written
// (the 8086 BIOS/DOS era programs the PIC the same way every time).
type picVectorType int

const (
	picVectorBytes8 picVectorType = iota
	picVectorBytes4
)

type picTrigger int

const (
	picTriggerEdge picTrigger = iota
	picTriggerLevel
)

// picNextRead selects whether a status-port read returns IRR or ISR.
type picNextRead int

const (
	picReadIRR picNextRead = iota
	picReadISR
)

// picIRQ is one of the eight interrupt lines.
type picIRQ struct {
	master             bool // true = wired to the master chip, false = slave/cascade
	enabled             bool
	interruptRequested bool
	inService          bool
}

// PIC models an 8259A. Only IRQ0 (the PIT, see spec.md §4.4) is ever
// actually fired by this system, but the full eight-line register contract
// is kept so ICW2/ICW3/OCW1/OCW3 behave exactly like real firmware expects.
type PIC struct {
	icw4Needed  bool
	single      bool
	vectorType  picVectorType
	trigger     picTrigger
	nextInitIdx int // which ICWn write is expected next (2..4, or 5 = none pending)
	nextRead    picNextRead
	vectorOffset byte
	irq         [8]picIRQ

	log Logger
	// fire delivers CPU.Interrupt vectors; set by the Bus at wiring time.
	fire func(vector byte)
}

// NewPIC creates a PIC in its power-on default configuration: vector
// offset 0x08 (interrupts 0x08-0x0F), all lines masked, init state machine
// idle.
func NewPIC(log Logger) *PIC {
	if log == nil {
		log = nopLogger{}
	}
	return &PIC{
		nextInitIdx:  5, // 5 = no ICW pending; OCW1 (mask register) writes instead
		vectorOffset: 0x08,
		log:          log,
	}
}

// SetInterruptSink wires the function the PIC calls to deliver
// CPU.Interrupt(vector) once an unmasked, not-in-service IRQ fires.
func (p *PIC) SetInterruptSink(fire func(vector byte)) { p.fire = fire }

// OutCommand handles a write to the command port (0x20 on the master).
func (p *PIC) OutCommand(value byte) {
	// bits 4..3: (0,0) = EOI, (0,1) = read-register select, else = ICW1.
	switch {
	case value&0b1_0000>>4 == 0 && value&0b1000>>3 == 0:
		p.endOfInterrupt(value)
	case value&0b1_0000>>4 == 0 && value&0b1000>>3 == 1:
		p.readRegisterSelect(value)
	default:
		p.initICW1(value)
	}
}

// OutData handles a write to the data port (0x21 on the master): either the
// next step of the initialization sequence, or (once operational) the
// interrupt mask register (OCW1).
func (p *PIC) OutData(value byte) {
	switch p.nextInitIdx {
	case 2:
		p.initICW2(value)
	case 3:
		p.initICW3(value)
	case 4:
		p.initICW4(value)
	default:
		p.setMask(value)
	}
}

func (p *PIC) initICW1(value byte) {
	p.icw4Needed = value&0b1 == 0b1
	p.single = value&0b10 == 0b10
	if value&0b100 == 0b100 {
		p.vectorType = picVectorBytes4
	} else {
		p.vectorType = picVectorBytes8
	}
	if value&0b1000 == 0b1000 {
		p.trigger = picTriggerLevel
	} else {
		p.trigger = picTriggerEdge
	}
	p.nextInitIdx = 2
	p.log.Debugf("PIC ICW1 %#02x icw4Needed=%v single=%v", value, p.icw4Needed, p.single)
}

func (p *PIC) initICW2(value byte) {
	p.vectorOffset = value
	p.nextInitIdx = 3
	p.log.Debugf("PIC ICW2 vectorOffset=%#02x", value)
}

func (p *PIC) initICW3(value byte) {
	for i := range p.irq {
		p.irq[i].master = value&(1<<uint(i)) == 0
	}
	if p.icw4Needed {
		p.nextInitIdx = 4
	} else {
		p.nextInitIdx = 5
	}
	p.log.Debugf("PIC ICW3 %#02x", value)
}

func (p *PIC) initICW4(byte) {
	// ICW4's 8086-mode/auto-EOI/buffered/SFNM bits aren't consulted by this
	// system (see original_source/src/chips/pic.rs's own comment to the
	// same effect) - BIOS/DOS-era code always wants 8086 mode.
	p.nextInitIdx = 5
	p.log.Debugf("PIC ICW4")
}

// setMask is OCW1: bit clear = enabled, bit set = masked.
func (p *PIC) setMask(value byte) {
	for i := range p.irq {
		p.irq[i].enabled = value&(1<<uint(i)) == 0
	}
}

// GetMask is OCW1 read-back (IN 0x21).
func (p *PIC) GetMask() byte {
	var result byte
	for i := range p.irq {
		if !p.irq[i].enabled {
			result |= 1 << uint(i)
		}
	}
	return result
}

// endOfInterrupt is OCW2 bits 4..3 = 00. This system implements the
// simplified non-specific EOI behavior noted in spec.md §4.4: it clears
// in-service and pending for every line rather than tracking priority.
func (p *PIC) endOfInterrupt(value byte) {
	p.log.Debugf("PIC EOI %#02x", value)
	for i := range p.irq {
		p.irq[i].inService = false
		p.irq[i].interruptRequested = false
	}
}

// readRegisterSelect is OCW3: bit 1 set selects which register IN 0x20
// returns next.
func (p *PIC) readRegisterSelect(value byte) {
	if value&0b10 == 0 {
		p.log.Debugf("PIC OCW3 NOP %#02x", value)
		return
	}
	if value&0b1 == 0 {
		p.nextRead = picReadIRR
	} else {
		p.nextRead = picReadISR
	}
}

// InStatus handles a read of the command port (IN 0x20 on the master),
// returning either IRR or ISR per the last OCW3 selection.
func (p *PIC) InStatus() byte {
	switch p.nextRead {
	case picReadISR:
		var result byte
		for i := range p.irq {
			if p.irq[i].inService {
				result |= 1 << uint(i)
			}
		}
		return result
	default:
		var result byte
		for i := range p.irq {
			if p.irq[i].interruptRequested {
				result |= 1 << uint(i)
			}
		}
		return result
	}
}

// OutByte/InByte implement the Bus's IOPort interface so a PIC can be
// registered directly against its two ports (0x20 command, 0x21 data).
func (p *PIC) OutByte(port uint16, value byte) {
	if port&1 == 0 {
		p.OutCommand(value)
	} else {
		p.OutData(value)
	}
}

func (p *PIC) InByte(port uint16) byte {
	if port&1 == 0 {
		return p.InStatus()
	}
	return p.GetMask()
}

// Fire is the PIC.Fire handler (spec.md §6): only IRQ0, driven by the PIT,
// is ever raised in this system.
func (p *PIC) Fire(irqLine byte) {
	if irqLine != 0 {
		return
	}
	line := &p.irq[0]
	if line.enabled && !line.inService {
		vector := p.vectorOffset + 0
		p.log.Debugf("PIC IRQ0 fired, vector %#02x", vector)
		line.inService = true
		line.interruptRequested = false
		if p.fire != nil {
			p.fire(vector)
		}
	} else {
		line.interruptRequested = true
	}
}
