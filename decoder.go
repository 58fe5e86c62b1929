package arithcoder

import "github.com/kmayerpatel/arithcoder/bitio"

// Decoder mirrors Encoder: it narrows the same fixed-width Range by reading
// bits from a bitio.Reader, reconstructing the symbol whose sub-interval
// the current fractional position falls in. Decoder is generic over the
// symbol type S, matching Encoder[S].
//
// A Decoder loads its initial W-bit buffer on the first call to Decode;
// thereafter the invariant range.Low() <= buffer <= range.High() holds
// after every Decode.
type Decoder[S comparable] struct {
	rng         *Range
	buffer      uint64
	initialized bool
}

// NewDecoder creates a Decoder with a fresh Range of the given bit width.
func NewDecoder[S comparable](width uint) *Decoder[S] {
	return &Decoder[S]{rng: NewRange(width)}
}

// Decode reads as many bits as needed to identify the next symbol under
// model, narrows the range to that symbol's sub-interval, and returns the
// symbol. model is interrogated but not mutated by Decode; the caller is
// responsible for mutating it identically on the encode side, after each
// Decode call.
func (d *Decoder[S]) Decode(model SymbolModel[S], r bitio.Reader) (S, error) {
	var zero S

	if !d.initialized {
		buf, err := r.ReadBits(int(d.rng.width))
		if err != nil {
			return zero, fatalf("Decoder.Decode", ErrShortInput)
		}
		d.buffer = buf
		d.initialized = true
	}

	total := uint64(model.Total())
	width := d.rng.Width()
	offset := d.buffer - d.rng.low

	v := ((offset+1)*total - 1) / width
	if v >= total {
		return zero, fatalf("Decoder.Decode", ErrLookupOutOfRange)
	}

	s, lo, hi := model.Lookup(uint32(v))

	newLow := d.rng.low + (width*uint64(lo))/total
	newHigh := d.rng.low + (width*uint64(hi))/total - 1
	if err := d.rng.Reduce(newHigh, newLow); err != nil {
		return zero, err
	}

	for d.rng.HOBMatch() {
		b := d.rng.ShiftHOB()
		top := (d.buffer & d.rng.hobMask) != 0
		if b != top {
			return zero, fatalf("Decoder.Decode", ErrStreamCorrupt)
		}
		next, err := r.ReadBit()
		if err != nil {
			return zero, err
		}
		d.buffer = (d.buffer << 1) & d.rng.rangeMask
		if next {
			d.buffer |= 1
		}
	}

	for d.rng.InMiddle() {
		savedTop := (d.buffer & d.rng.hobMask) != 0
		d.rng.ShiftSOB()

		next, err := r.ReadBit()
		if err != nil {
			return zero, err
		}
		d.buffer = (d.buffer << 1) & d.rng.rangeMask
		if next {
			d.buffer |= 1
		}

		if savedTop {
			d.buffer |= d.rng.hobMask
		} else {
			d.buffer &= ^d.rng.hobMask & d.rng.rangeMask
		}
	}

	return s, nil
}
