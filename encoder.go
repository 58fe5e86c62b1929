package arithcoder

import "github.com/kmayerpatel/arithcoder/bitio"

// Encoder narrows a fixed-width Range one symbol at a time, emitting bits
// through a bitio.Writer as the range's top bits become decidable. Encoder
// is generic over the symbol type S; the compiler monomorphizes it rather
// than boxing symbols behind a runtime interface.
//
// An Encoder is created once per codec session via NewEncoder, fed symbols
// via Encode, and terminated exactly once via Finish. Encoding after Finish
// is a misuse and returns a *FatalError.
type Encoder[S comparable] struct {
	rng      *Range
	pending  uint32
	finished bool
}

// NewEncoder creates an Encoder with a fresh Range of the given bit width.
func NewEncoder[S comparable](width uint) *Encoder[S] {
	return &Encoder[S]{rng: NewRange(width)}
}

// Encode narrows the range to the sub-interval model.Interval(s) assigns to
// s, then drains any now-decidable bits (and any accumulated straddle
// bits) to w. model is interrogated but not mutated by Encode; the caller
// is responsible for mutating it identically on the decode side.
func (e *Encoder[S]) Encode(s S, model SymbolModel[S], w bitio.Writer) error {
	if e.finished {
		return fatalf("Encoder.Encode", ErrEncoderFinished)
	}
	if !model.Contains(s) {
		return fatalf("Encoder.Encode", ErrSymbolNotInModel)
	}

	lo, hi := model.Interval(s)
	total := uint64(model.Total())
	width := e.rng.Width()

	newLow := e.rng.low + (width*uint64(lo))/total
	newHigh := e.rng.low + (width*uint64(hi))/total - 1

	if err := e.rng.Reduce(newHigh, newLow); err != nil {
		return err
	}

	if err := e.drainHOBBits(w); err != nil {
		return err
	}

	for e.rng.InMiddle() {
		e.rng.ShiftSOB()
		e.pending++
	}

	return nil
}

// drainHOBBits emits every now-decided top bit, applying the straddle
// protocol: the first bit of the burst is followed by pending copies of
// its complement, then pending resets to zero; later bits in the same
// burst are emitted directly since any prior straddle was just resolved.
func (e *Encoder[S]) drainHOBBits(w bitio.Writer) error {
	first := true
	for e.rng.HOBMatch() {
		b := e.rng.ShiftHOB()
		if err := w.WriteBit(b); err != nil {
			return err
		}
		if first {
			for i := uint32(0); i < e.pending; i++ {
				if err := w.WriteBit(!b); err != nil {
					return err
				}
			}
			e.pending = 0
			first = false
		}
	}
	return nil
}

// Finish emits the bits needed to disambiguate the final range and marks
// the encoder as finished. The caller must then pad w to a byte boundary
// (bitio.Writer.PadToByte).
func (e *Encoder[S]) Finish(w bitio.Writer) error {
	if err := w.WriteBit(true); err != nil {
		return err
	}
	n := e.pending + uint32(e.rng.width) - 1
	for i := uint32(0); i < n; i++ {
		if err := w.WriteBit(false); err != nil {
			return err
		}
	}
	e.finished = true
	return nil
}
