package arithcoder

import "testing"

func TestByteCountModelInitialState(t *testing.T) {
	m := NewByteCountModel()
	if m.Total() != 256 {
		t.Fatalf("total = %d, want 256", m.Total())
	}
	lo, hi := m.Interval(0x41)
	if lo != 0x41 || hi != 0x42 {
		t.Fatalf("Interval(0x41) = [%d, %d), want [65, 66)", lo, hi)
	}
	if !m.Contains(0x00) || !m.Contains(0xFF) {
		t.Fatal("expected model to contain every byte value")
	}
}

func TestIntervalLookupDuality(t *testing.T) {
	m := NewByteCountModel()
	m.IncrCount(0x10)
	m.IncrCount(0x10)
	m.IncrCount(0xFE)

	for s := 0; s < 256; s++ {
		sym := byte(s)
		lo, hi := m.Interval(sym)
		for v := lo; v < hi; v++ {
			gotSym, gotLo, gotHi := m.Lookup(v)
			if gotSym != sym || gotLo != lo || gotHi != hi {
				t.Fatalf("Lookup(%d) = (%#x, %d, %d), want (%#x, %d, %d)", v, gotSym, gotLo, gotHi, sym, lo, hi)
			}
		}
	}
}

func TestIncrCountUpdatesTotal(t *testing.T) {
	m := NewByteCountModel()
	m.IncrCount(0x00)
	if m.Total() != 257 {
		t.Fatalf("total = %d, want 257", m.Total())
	}
	lo, hi := m.Interval(0x00)
	if lo != 0 || hi != 2 {
		t.Fatalf("Interval(0x00) = [%d, %d), want [0, 2)", lo, hi)
	}
}

func TestRenormalizationConvergesAndPreservesPartition(t *testing.T) {
	m := NewByteCountModel()
	for i := 0; i < 2_000_000; i++ {
		m.IncrCount(0x61)
		if m.Total() >= renormTotal {
			t.Fatalf("total reached %d at iteration %d, renormalization should have kept it below %d", m.Total(), i, renormTotal)
		}
	}

	// Every symbol should still have count >= 1 and the partition should
	// still be exact.
	var sum uint32
	for s := 0; s < 256; s++ {
		lo, hi := m.Interval(byte(s))
		if hi <= lo {
			t.Fatalf("symbol %d has empty interval [%d, %d)", s, lo, hi)
		}
		sum += hi - lo
	}
	if sum != m.Total() {
		t.Fatalf("sum of interval widths = %d, total = %d", sum, m.Total())
	}
}

func TestRenormalizationClampsSmallCounts(t *testing.T) {
	m := NewCountModel([]byte{0, 1, 2}, []uint32{999_997, 2, 1})
	// Force one more renormalization pass by incrementing to cross 1,000,000.
	m.IncrCount(0)
	if m.Total() >= renormTotal {
		t.Fatalf("total = %d, want < %d after renormalization", m.Total(), renormTotal)
	}
	_, hi := m.Interval(2)
	if hi == 0 {
		t.Fatal("symbol with count 1 should remain encodable")
	}
}

func TestEnglishByteCountModelSeeded(t *testing.T) {
	m := NewEnglishByteCountModel()
	loE, hiE := m.Interval('e')
	if hiE-loE != 127 {
		t.Fatalf("count('e') = %d, want 127", hiE-loE)
	}
	loUE, hiUE := m.Interval('E')
	if hiUE-loUE != 127 {
		t.Fatalf("count('E') = %d, want 127", hiUE-loUE)
	}
	loQ, hiQ := m.Interval('q')
	if hiQ-loQ != 1 {
		t.Fatalf("count('q') = %d, want 1", hiQ-loQ)
	}
	loOther, hiOther := m.Interval(0x00)
	if hiOther-loOther != 1 {
		t.Fatalf("count(0x00) = %d, want 1", hiOther-loOther)
	}
}

func TestSetCountNoOpForUnknownSymbol(t *testing.T) {
	m := NewCountModel([]byte{0, 1}, []uint32{1, 1})
	m.SetCount(5, 100)
	if m.Total() != 2 {
		t.Fatalf("total = %d, want 2 (unchanged)", m.Total())
	}
}
