package bus

import "testing"

func TestBus_ImageAndRAM(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0100] = 0x42
	b := New(rom)

	if got := b.Read(0x0100); got != 0x42 {
		t.Fatalf("image read got %02x, want 42", got)
	}

	b.Write(0xC000, 0x99)
	if got := b.Read(0xC000); got != 0x99 {
		t.Fatalf("RAM read got %02x, want 99", got)
	}

	// flat: the image region is writable too
	b.Write(0x0100, 0x24)
	if got := b.Read(0x0100); got != 0x24 {
		t.Fatalf("write to image region got %02x, want 24", got)
	}

	b.Write(0xFFFF, 0x1B)
	if got := b.Read(0xFFFF); got != 0x1B {
		t.Fatalf("top byte got %02x, want 1B", got)
	}
}

func TestBus_Word_LittleEndian(t *testing.T) {
	b := New(nil)
	b.Write16(0xC000, 0xBEEF)
	if lo, hi := b.Read(0xC000), b.Read(0xC001); lo != 0xEF || hi != 0xBE {
		t.Fatalf("Write16 bytes got lo=%02x hi=%02x, want lo=EF hi=BE", lo, hi)
	}
	if got := b.Read16(0xC000); got != 0xBEEF {
		t.Fatalf("Read16 got %04x, want BEEF", got)
	}
}

func TestBus_Word_WrapsAtTop(t *testing.T) {
	b := New(nil)
	b.Write16(0xFFFF, 0x1234)
	if got := b.Read(0xFFFF); got != 0x34 {
		t.Fatalf("low byte at FFFF got %02x, want 34", got)
	}
	if got := b.Read(0x0000); got != 0x12 {
		t.Fatalf("high byte wrapped to 0000 got %02x, want 12", got)
	}
	if got := b.Read16(0xFFFF); got != 0x1234 {
		t.Fatalf("Read16 across wrap got %04x, want 1234", got)
	}
}

func TestBus_LoadAtOffset(t *testing.T) {
	b := New(nil)
	b.Load(0xFFFE, []byte{0xAA, 0xBB, 0xCC})
	if b.Read(0xFFFE) != 0xAA || b.Read(0xFFFF) != 0xBB || b.Read(0x0000) != 0xCC {
		t.Fatalf("Load did not wrap: %02x %02x %02x", b.Read(0xFFFE), b.Read(0xFFFF), b.Read(0x0000))
	}
}
