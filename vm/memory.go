package vm

const MemorySize = 1 << 16

// Memory map regions.
const (
	TrapVectorTableStart       = 0x0000
	InterruptVectorTableStart  = 0x0100
	SystemSpaceStart           = 0x0200
	UserSpaceStart             = 0x3000
	MemoryMappedRegistersStart = 0xFE00
)

// Memory-mapped keyboard registers.
const (
	KBSR = MemoryMappedRegistersStart          /* keyboard status register */
	KBDR = MemoryMappedRegistersStart + 0x0002 /* keyboard data register */
)

// Bit 15 of KBSR signals that KBDR holds an unread key.
const kbReady = 0x8000

// Memory is the machine's word-addressable store. A read of the keyboard
// status register polls the console and latches any pending key into KBDR,
// so programs that spin on KBSR work without going through the traps.
type Memory struct {
	cells   [MemorySize]uint16
	console Console
}

func (m *Memory) Read(addr uint16) uint16 {
	switch addr {
	case KBSR:
		if m.cells[KBSR]&kbReady == 0 && m.console != nil {
			if b, ok := m.console.Poll(); ok {
				m.cells[KBSR] |= kbReady
				m.cells[KBDR] = uint16(b)
			}
		}
	case KBDR:
		m.cells[KBSR] &^= kbReady
	}
	return m.cells[addr]
}

func (m *Memory) Write(addr, value uint16) {
	// The keyboard registers belong to the device, not the program.
	if addr == KBSR || addr == KBDR {
		return
	}
	m.cells[addr] = value
}
