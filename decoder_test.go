package arithcoder

import "testing"

// encodeAll encodes every symbol in input against a fresh model built by
// newModel, incrementing each symbol's count after encoding it, and returns the resulting
// bit buffer padded to a byte boundary.
func encodeAll(t *testing.T, input []byte, newModel func() *CountModel[byte]) *bitBuffer {
	t.Helper()
	m := newModel()
	e := NewEncoder[byte](32)
	buf := &bitBuffer{}

	for _, s := range input {
		if err := e.Encode(s, m, buf); err != nil {
			t.Fatalf("Encode(%#x): %v", s, err)
		}
		m.IncrCount(s)
	}
	if err := e.Finish(buf); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if err := buf.PadToByte(); err != nil {
		t.Fatalf("PadToByte: %v", err)
	}
	return buf
}

func decodeAll(t *testing.T, buf *bitBuffer, n int, newModel func() *CountModel[byte]) []byte {
	t.Helper()
	m := newModel()
	d := NewDecoder[byte](32)
	buf.pos = 0

	out := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		s, err := d.Decode(m, buf)
		if err != nil {
			t.Fatalf("Decode at index %d: %v", i, err)
		}
		out = append(out, s)
		m.IncrCount(s)
	}
	return out
}

func roundTrip(t *testing.T, input []byte) {
	t.Helper()
	newModel := func() *CountModel[byte] { return NewByteCountModel() }
	buf := encodeAll(t, input, newModel)
	got := decodeAll(t, buf, len(input), newModel)
	if string(got) != string(input) {
		t.Fatalf("round trip mismatch: got %q, want %q", got, input)
	}
}

func TestRoundTripEmpty(t *testing.T) {
	roundTrip(t, nil)
}

func TestRoundTripSingleByte(t *testing.T) {
	roundTrip(t, []byte{0x41})
}

func TestRoundTripTwoIdenticalBytes(t *testing.T) {
	roundTrip(t, []byte{0x00, 0x00})
}

func TestRoundTripAll256ByteValues(t *testing.T) {
	input := make([]byte, 256)
	for i := range input {
		input[i] = byte(i)
	}
	roundTrip(t, input)
}

func TestRoundTripEnglishProse(t *testing.T) {
	roundTrip(t, []byte("Hello, world!\n"))
}

func TestRoundTripRepetitionTriggersRenormalization(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large repetition round trip in short mode")
	}
	input := make([]byte, 1_000_000)
	for i := range input {
		input[i] = 'a'
	}
	roundTrip(t, input)
}

func TestDecodeBufferStaysWithinRange(t *testing.T) {
	input := []byte("arithmetic coding stress test with varied bytes \x00\xff\x10\x20")
	newModel := func() *CountModel[byte] { return NewByteCountModel() }
	buf := encodeAll(t, input, newModel)

	m := newModel()
	d := NewDecoder[byte](32)
	buf.pos = 0

	for i := 0; i < len(input); i++ {
		s, err := d.Decode(m, buf)
		if err != nil {
			t.Fatalf("Decode at %d: %v", i, err)
		}
		if d.buffer < d.rng.Low() || d.buffer > d.rng.High() {
			t.Fatalf("buffer %d out of range [%d, %d] after decoding index %d", d.buffer, d.rng.Low(), d.rng.High(), i)
		}
		m.IncrCount(s)
	}
}
