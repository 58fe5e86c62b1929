package arithcoder

import "fmt"

// Range is a fixed-width integer interval [Low, High] inside [0, 2^W - 1],
// for some width W in [2, 63]. It is the numeric core the Encoder and
// Decoder narrow one symbol at a time.
//
// Bounds are carried in uint64 regardless of W so that widths up to 63 bits
// never overflow the derived masks; the codec as shipped always constructs
// Range with W=32.
type Range struct {
	width uint

	low  uint64
	high uint64

	hobMask      uint64
	rangeMask    uint64
	threeQuarter uint64
	quarter      uint64
}

// NewRange creates a Range of the given bit width in its initial state:
// low=0, high=2^width-1. It panics if width is outside [2, 63]; that is a
// caller bug, not a runtime fault the codec can recover from.
func NewRange(width uint) *Range {
	if width < 2 || width > 63 {
		panic(fmt.Sprintf("arithcoder: range width %d out of [2, 63]", width))
	}

	rangeMask := uint64(1)<<width - 1
	threeQuarter := uint64(0b11) << (width - 2)

	r := &Range{
		width:        width,
		low:          0,
		high:         rangeMask,
		hobMask:      uint64(1) << (width - 1),
		rangeMask:    rangeMask,
		threeQuarter: threeQuarter,
		quarter:      ^threeQuarter & rangeMask,
	}
	return r
}

// Width returns high - low + 1.
func (r *Range) Width() uint64 {
	return r.high - r.low + 1
}

// Low returns the current low bound.
func (r *Range) Low() uint64 {
	return r.low
}

// High returns the current high bound.
func (r *Range) High() uint64 {
	return r.high
}

// Reduce narrows the range to [newLow, newHigh]. The precondition
// low <= newLow <= newHigh <= high must hold; a violation indicates an
// internal bug and is reported as a *FatalError rather than corrupting
// state silently.
func (r *Range) Reduce(newHigh, newLow uint64) error {
	if !(r.low <= newLow && newLow <= newHigh && newHigh <= r.high) {
		return fatalf("Range.Reduce", ErrInvalidReduce)
	}
	r.low = newLow
	r.high = newHigh
	return nil
}

// HOBMatch reports whether high and low share the same top bit. Once true,
// that bit is fixed in every future output and can be emitted.
func (r *Range) HOBMatch() bool {
	return (r.high & r.hobMask) == (r.low & r.hobMask)
}

// ShiftHOB shifts the shared top bit out of both bounds and returns it.
// The precondition HOBMatch() must hold; violating it is a programmer
// error and panics rather than returning an error, since the codec never
// calls it without first checking HOBMatch.
func (r *Range) ShiftHOB() bool {
	if !r.HOBMatch() {
		panic("arithcoder: ShiftHOB called without HOBMatch")
	}
	bit := (r.high & r.hobMask) != 0

	r.high = ((r.high << 1) | 1) & r.rangeMask
	r.low = (r.low << 1) & r.rangeMask

	return bit
}

// InMiddle reports whether the range is entirely within the middle half of
// the coding space: low > quarter and high < threeQuarter. This is the
// near-straddle state where neither top bit is decidable yet but
// compression has stalled.
func (r *Range) InMiddle() bool {
	return r.low > r.quarter && r.high < r.threeQuarter
}

// ShiftSOB performs a straddle (middle-half) shift: it subtracts a quarter
// from the range, then doubles it, deferring one straddle bit to the
// caller's pending counter. The precondition InMiddle() must hold.
func (r *Range) ShiftSOB() {
	if !r.InMiddle() {
		panic("arithcoder: ShiftSOB called without InMiddle")
	}
	r.high = ((r.high << 1) | 1 | r.hobMask) & r.rangeMask
	r.low = (r.low << 1) & ^r.hobMask & r.rangeMask
}
