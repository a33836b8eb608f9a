package vm

import "testing"

func TestKeyboardStatusRegisterLatchesInput(t *testing.T) {
	v, _ := newTestVM("k")

	if got := v.Mem.Read(KBSR); got&kbReady == 0 {
		t.Fatalf("KBSR = %#x, want ready bit set with pending input", got)
	}
	if got := v.Mem.Read(KBDR); got != 'k' {
		t.Errorf("KBDR = %#x, want 'k'", got)
	}
	// Reading the data register clears the ready bit, and with the input
	// drained it stays clear.
	if got := v.Mem.Read(KBSR); got&kbReady != 0 {
		t.Errorf("KBSR = %#x, want ready bit clear after KBDR read", got)
	}
}

func TestKeyboardStatusRegisterIdleWithoutInput(t *testing.T) {
	v, _ := newTestVM("")
	if got := v.Mem.Read(KBSR); got&kbReady != 0 {
		t.Errorf("KBSR = %#x, want ready bit clear", got)
	}
}

func TestKeyboardRegistersIgnoreProgramWrites(t *testing.T) {
	v, _ := newTestVM("")
	v.Mem.Write(KBSR, 0xFFFF)
	v.Mem.Write(KBDR, 0xFFFF)
	if got := v.Mem.cells[KBSR]; got != 0 {
		t.Errorf("KBSR cell = %#x, want 0", got)
	}
	if got := v.Mem.cells[KBDR]; got != 0 {
		t.Errorf("KBDR cell = %#x, want 0", got)
	}
}

func TestOrdinaryMemoryReadWrite(t *testing.T) {
	v, _ := newTestVM("")
	v.Mem.Write(0x0000, 0xAAAA)
	v.Mem.Write(0xFFFF, 0x5555)
	if got := v.Mem.Read(0x0000); got != 0xAAAA {
		t.Errorf("memory[0x0000] = %#x, want 0xAAAA", got)
	}
	if got := v.Mem.Read(0xFFFF); got != 0x5555 {
		t.Errorf("memory[0xFFFF] = %#x, want 0x5555", got)
	}
}
