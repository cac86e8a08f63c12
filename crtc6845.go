// crtc6845.go - Motorola 6845 CRT controller register bank
//
// An external collaborator per spec.md §1: no pixel output, only the
// index/data register-pair contract BIOS video-mode setup pokes at.
// Grounded on original_source/src/chips/graphics.rs's register table and
// choose_register/set_register_data split, narrowed to the 6845's
// eighteen index registers with the mode-control side ports folded in.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

// CRTC6845 models the 6845's indexed register file reachable through the
// MDA (0x3B4/0x3B5/0x3B8) and CGA (0x3D4/0x3D5/0x3D8) port pairs.
type CRTC6845 struct {
	regs       [18]byte
	selected   byte
	modeByte   byte
	log        Logger
}

func NewCRTC6845(log Logger) *CRTC6845 {
	if log == nil {
		log = nopLogger{}
	}
	return &CRTC6845{log: log}
}

// OutByte/InByte implement the Bus's IOPort interface. The same handler
// serves both the monochrome and color port pairs; the motherboard wires
// each pair to its own instance.
func (v *CRTC6845) OutByte(port uint16, value byte) {
	switch port {
	case 0x3B4, 0x3D4:
		v.selected = value & 0x1F
	case 0x3B5, 0x3D5:
		if int(v.selected) < len(v.regs) {
			v.regs[v.selected] = value
		}
	case 0x3B8, 0x3D8:
		v.modeByte = value
	default:
		v.log.Warnf("CRTC: unmapped port %#04x <- %#02x", port, value)
	}
}

func (v *CRTC6845) InByte(port uint16) byte {
	switch port {
	case 0x3B5, 0x3D5:
		if int(v.selected) < len(v.regs) {
			return v.regs[v.selected]
		}
		return 0xFF
	case 0x3B8, 0x3D8:
		return v.modeByte
	default:
		v.log.Warnf("CRTC: unmapped port %#04x read", port)
		return 0xFF
	}
}
