// ibmxt_motherboard.go - boot wiring for the IBM-XT-class core
//
// Creates Memory, Clock, Bus, PIC, PIT, CPU, and the register-bank
// peripherals (DMA/Faraday/CRTC), wires their port and interrupt routing,
// and loads the BIOS/video ROM images. Grounded on
// original_source/src/motherboards/ibm_xt.rs's port dispatch table (the
// same 0x00-0x0F/0x20-0x21/0x40-0x43/0x60-0x63/0xA0/0x3B4-0x3D8 mapping)
// and on the teacher's cpu_x86_runner.go (X86BusAdapter/NewCPUX86Runner/
// LoadProgramFromFile) for the Go shape of "adapter wires CPU to the wider
// machine".
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"context"
	"os"
	"time"
)

// Machine bundles one IBM-XT-class core instance: the CPU interpreter, its
// Bus/Clock/Memory/PIC/PIT, and the register-bank peripherals wired to the
// ports the original BIOS expects to find them at.
type Machine struct {
	Clock   *Clock
	Bus     *Bus
	Memory  *Memory
	PIC     *PIC
	PIT     *PIT
	CPU     *CPU8086
	DMA     *DMA8237
	Faraday *Faraday
	MDA     *CRTC6845
	CGA     *CRTC6845
}

// MachineConfig controls the handful of boot-time parameters spec.md
// leaves open: ROM paths and the base clock period (which defaults to the
// spec's own value).
type MachineConfig struct {
	BIOSROMPath  string
	VideoROMPath string
	BasePeriod   time.Duration // 0 selects DefaultBasePeriod
	Log          Logger
}

// NewMachine loads the ROM images named in cfg and wires a complete
// machine: Bus routes Memory/IO traffic, the PIT's counter 0 drives the
// PIC's IRQ0, and the PIC's accepted interrupts reach the CPU's
// single-slot pending-interrupt register (spec.md §4.4/§4.6/§9).
func NewMachine(cfg MachineConfig) (*Machine, error) {
	log := cfg.Log
	if log == nil {
		log = nopLogger{}
	}

	biosROM, err := os.ReadFile(cfg.BIOSROMPath)
	if err != nil {
		return nil, err
	}
	var videoROM []byte
	if cfg.VideoROMPath != "" {
		videoROM, err = os.ReadFile(cfg.VideoROMPath)
		if err != nil {
			return nil, err
		}
	}

	mem, err := NewMemory(biosROM, videoROM)
	if err != nil {
		return nil, err
	}

	basePeriod := DefaultBasePeriod
	if cfg.BasePeriod > 0 {
		basePeriod = cfg.BasePeriod
	}
	clk := NewClock(basePeriod)
	pic := NewPIC(log)
	bus := NewBus(mem, pic, log)
	pit := NewPIT(log)
	cpu := NewCPU8086(bus, clk, log)
	dma := NewDMA8237(log)
	faraday := NewFaraday(log)
	mda := NewCRTC6845(log)
	cga := NewCRTC6845(log)

	pit.SetInterruptSink(func(irqLine byte) { bus.Send(PICFire{IRQLine: irqLine}) })
	pic.SetInterruptSink(func(vector byte) { bus.Send(CPUInterrupt{Vector: vector}) })
	bus.SetCPUInterruptSink(cpu.SetIRQ)

	for ch := byte(0); ch < 4; ch++ {
		bus.RegisterPort(uint16(ch)*2, dma)
		bus.RegisterPort(uint16(ch)*2+1, dma)
	}
	for _, p := range []uint16{0x08, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F} {
		bus.RegisterPort(p, dma)
	}
	bus.RegisterPort(0x20, pic)
	bus.RegisterPort(0x21, pic)
	for _, p := range []uint16{0x40, 0x41, 0x42, 0x43} {
		bus.RegisterPort(p, pit)
	}
	for _, p := range []uint16{0x60, 0x61, 0x62, 0x63, 0xA0} {
		bus.RegisterPort(p, faraday)
	}
	for _, p := range []uint16{0x3B4, 0x3B5, 0x3B8} {
		bus.RegisterPort(p, mda)
	}
	for _, p := range []uint16{0x3D4, 0x3D5, 0x3D8} {
		bus.RegisterPort(p, cga)
	}

	return &Machine{
		Clock: clk, Bus: bus, Memory: mem, PIC: pic, PIT: pit, CPU: cpu,
		DMA: dma, Faraday: faraday, MDA: mda, CGA: cga,
	}, nil
}

// Run starts the Bus, Clock, PIT counters, and CPU together and blocks
// until ctx is cancelled or the CPU hits a fatal fault.
func (m *Machine) Run(ctx context.Context) error {
	return RunSystem(ctx, m.Clock, m.Bus, m.PIT, m.CPU)
}
