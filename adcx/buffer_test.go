package adcx

import "testing"

func newTestBuffer(n int) *SampleBuffer {
	return &SampleBuffer{samples: make([]uint16, n)}
}

func TestInsertMasksToTenBits(t *testing.T) {
	b := newTestBuffer(4)
	for _, v := range []uint16{0xffff, 0x0400, 0x03ff, 0} {
		if !b.insert(v) {
			t.Fatalf("insert(%#x) refused with room left", v)
		}
	}
	want := []uint16{0x03ff, 0x0000, 0x03ff, 0x0000}
	for i, w := range want {
		if got := b.Samples()[i]; got != w {
			t.Errorf("samples[%d] = %#x; want %#x", i, got, w)
		}
	}
}

func TestFullLatchesOnFinalInsert(t *testing.T) {
	b := newTestBuffer(3)
	b.insert(1)
	b.insert(2)
	if b.Full() {
		t.Fatal("full before final insert")
	}
	if !b.insert(3) {
		t.Fatal("final insert refused")
	}
	if !b.Full() {
		t.Fatal("full did not latch on the insert that stored the final sample")
	}
	if b.Buffered() != 3 {
		t.Fatalf("buffered = %d; want 3", b.Buffered())
	}
}

func TestInsertAfterFullStoresNothing(t *testing.T) {
	b := newTestBuffer(2)
	b.insert(10)
	b.insert(20)
	if b.insert(30) {
		t.Fatal("insert accepted past capacity")
	}
	if got := b.Samples(); got[0] != 10 || got[1] != 20 {
		t.Fatalf("contents overwritten: %v", got)
	}
	if b.Buffered() != 2 {
		t.Fatalf("buffered = %d; want 2", b.Buffered())
	}
}

func TestDrainDisarmsWhenBufferFills(t *testing.T) {
	b := newTestBuffer(6)
	disarms := 0
	bank := []uint16{1, 2, 3, 4, 5, 6, 7, 8}

	b.drain(bank, func() { disarms++ })

	if !b.Full() {
		t.Fatal("buffer should be full")
	}
	if disarms != 1 {
		t.Fatalf("disarm called %d times; want 1", disarms)
	}
	if b.Buffered() != 6 {
		t.Fatalf("buffered = %d; want 6 (tail discarded, not stored)", b.Buffered())
	}
	for i, w := range []uint16{1, 2, 3, 4, 5, 6} {
		if b.Samples()[i] != w {
			t.Errorf("samples[%d] = %d; want %d", i, b.Samples()[i], w)
		}
	}
}

func TestDrainOnFullBufferOnlyDisarms(t *testing.T) {
	b := newTestBuffer(2)
	b.insert(1)
	b.insert(2)
	disarms := 0

	b.drain([]uint16{9, 9, 9, 9, 9, 9, 9, 9}, func() { disarms++ })

	if disarms != 1 {
		t.Fatalf("disarm called %d times; want 1", disarms)
	}
	if got := b.Samples(); got[0] != 1 || got[1] != 2 {
		t.Fatalf("contents overwritten: %v", got)
	}
}

func TestResetClearsCursorAndFlag(t *testing.T) {
	b := newTestBuffer(2)
	b.insert(1)
	b.insert(2)
	b.reset()
	if b.Full() || b.Buffered() != 0 {
		t.Fatalf("after reset: full=%v buffered=%d", b.Full(), b.Buffered())
	}
}
