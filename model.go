package arithcoder

// SymbolModel maps symbols of an alphabet A to half-open integer
// sub-intervals of [0, T), where T is the model's current total weight.
// The sub-intervals of every symbol in A partition [0, T) exactly, and
// Interval/Lookup are mutual inverses.
//
// Expressed as a generic capability over any comparable symbol type so the
// compiler monomorphizes Encoder[S]/Decoder[S] rather than boxing symbols
// behind an interface{} dispatch.
type SymbolModel[S comparable] interface {
	// Contains reports whether s belongs to this model's alphabet.
	Contains(s S) bool

	// Total returns T, the sum of every symbol's weight. T >= 1.
	Total() uint32

	// Interval returns the half-open sub-interval [lo, hi) assigned to s.
	// Precondition: Contains(s).
	Interval(s S) (lo, hi uint32)

	// Lookup returns the unique symbol whose interval contains v, along
	// with that interval. Precondition: v < Total().
	Lookup(v uint32) (s S, lo, hi uint32)
}

// renormTotal is the threshold at which CountModel halves every count.
const renormTotal = 1_000_000

// CountModel is a SymbolModel backed by per-symbol integer counts, all
// initialized to at least 1 so every symbol stays encodable. Symbols are
// held in the declaration order given to NewCountModel; Interval and
// Lookup both scan in that order, and it never changes, so encoder and
// decoder built from identically-ordered models stay in lockstep.
type CountModel[S comparable] struct {
	symbols []S
	index   map[S]int
	counts  []uint32
	total   uint32
}

// NewCountModel builds a CountModel over the given symbols (in the order
// given) with the matching initial counts. len(symbols) must equal
// len(counts); every count must be >= 1.
func NewCountModel[S comparable](symbols []S, counts []uint32) *CountModel[S] {
	if len(symbols) != len(counts) {
		panic("arithcoder: NewCountModel: symbols and counts length mismatch")
	}

	m := &CountModel[S]{
		symbols: append([]S(nil), symbols...),
		index:   make(map[S]int, len(symbols)),
		counts:  append([]uint32(nil), counts...),
	}
	for i, s := range m.symbols {
		m.index[s] = i
		m.total += m.counts[i]
	}
	return m
}

// NewByteCountModel builds a CountModel over all 256 byte values with
// initial count 1 each, in ascending declaration order.
func NewByteCountModel() *CountModel[byte] {
	symbols := make([]byte, 256)
	counts := make([]uint32, 256)
	for i := range symbols {
		symbols[i] = byte(i)
		counts[i] = 1
	}
	return NewCountModel(symbols, counts)
}

// englishLetterWeights holds the empirical frequency table for a-z; the
// same weight applies to the uppercase form of each letter. Every other
// byte value gets weight 1.
var englishLetterWeights = map[byte]uint32{
	'e': 127, 't': 91, 'a': 82, 'o': 80, 'i': 70, 'n': 67, 's': 63, 'h': 61,
	'r': 60, 'd': 43, 'l': 40, 'c': 28, 'u': 28, 'm': 24, 'w': 24, 'f': 22,
	'g': 22, 'y': 20, 'p': 19, 'b': 16, 'v': 10, 'k': 8, 'j': 2, 'x': 2,
	'q': 1, 'z': 1,
}

// NewEnglishByteCountModel builds a CountModel over all 256 byte values,
// seeded from a fixed English-letter frequency table (a-z and A-Z get
// their empirical weight, every other byte gets 1). This is a seeded,
// non-adaptive start; subsequent updates use the same IncrCount/SetCount
// as NewByteCountModel.
func NewEnglishByteCountModel() *CountModel[byte] {
	symbols := make([]byte, 256)
	counts := make([]uint32, 256)
	for i := range symbols {
		symbols[i] = byte(i)
		counts[i] = 1
	}
	for letter, weight := range englishLetterWeights {
		counts[letter] = weight
		counts[letter-'a'+'A'] = weight
	}
	return NewCountModel(symbols, counts)
}

// Contains reports whether s is in the model's alphabet.
func (m *CountModel[S]) Contains(s S) bool {
	_, ok := m.index[s]
	return ok
}

// Total returns the sum of all symbol counts.
func (m *CountModel[S]) Total() uint32 {
	return m.total
}

// Interval returns the cumulative-count sub-interval assigned to s, scanning
// symbols in declaration order.
func (m *CountModel[S]) Interval(s S) (lo, hi uint32) {
	idx, ok := m.index[s]
	if !ok {
		return 0, 0
	}
	for i := 0; i < idx; i++ {
		lo += m.counts[i]
	}
	hi = lo + m.counts[idx]
	return lo, hi
}

// Lookup returns the symbol whose cumulative interval contains v, scanning
// in declaration order.
func (m *CountModel[S]) Lookup(v uint32) (s S, lo, hi uint32) {
	var cum uint32
	for i, c := range m.counts {
		if v < cum+c {
			return m.symbols[i], cum, cum + c
		}
		cum += c
	}
	var zero S
	return zero, 0, 0
}

// IncrCount increments the count for s by one, updates the total, and
// renormalizes repeatedly while the total is at or above 1,000,000.
// A no-op if s is not in the alphabet.
func (m *CountModel[S]) IncrCount(s S) {
	idx, ok := m.index[s]
	if !ok {
		return
	}
	m.counts[idx]++
	m.total++
	m.renormalize()
}

// SetCount sets the count for s to c (which must be >= 1), updates the
// total, and renormalizes repeatedly while the total is at or above
// 1,000,000. A no-op if s is not in the alphabet.
func (m *CountModel[S]) SetCount(s S, c uint32) {
	idx, ok := m.index[s]
	if !ok {
		return
	}
	m.total = m.total - m.counts[idx] + c
	m.counts[idx] = c
	m.renormalize()
}

// renormalize halves every count (clamping counts below 3 to 1) and
// recomputes the total, repeatedly, until the total is below 1,000,000.
// This keeps every count >= 1, so no symbol becomes unencodable, and keeps
// the total small enough that the encoder's 64-bit arithmetic never
// overflows.
func (m *CountModel[S]) renormalize() {
	for m.total >= renormTotal {
		var total uint32
		for i, c := range m.counts {
			if c < 3 {
				m.counts[i] = 1
			} else {
				m.counts[i] = c / 2
			}
			total += m.counts[i]
		}
		m.total = total
	}
}
