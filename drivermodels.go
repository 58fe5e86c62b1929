package arithcoder

// OrderZeroModel is the order-0 adaptive driver model: a single
// CountModel[byte] over all 256 byte values, incremented after every
// symbol. Constructing a fresh OrderZeroModel on both the compress and
// decompress side (as the CLI does) keeps the two sides' mutations
// identical.
type OrderZeroModel struct {
	model *CountModel[byte]
}

// NewOrderZeroModel creates an OrderZeroModel seeded with the given
// CountModel (typically NewByteCountModel() or NewEnglishByteCountModel()).
func NewOrderZeroModel(seed *CountModel[byte]) *OrderZeroModel {
	return &OrderZeroModel{model: seed}
}

// Current returns the single model in effect.
func (m *OrderZeroModel) Current() SymbolModel[byte] {
	return m.model
}

// Update increments the count for the symbol just encoded or decoded.
func (m *OrderZeroModel) Update(b byte) {
	m.model.IncrCount(b)
}

// OrderOneModel is the order-1 adaptive driver model: 256 CountModel[byte]
// instances indexed by the previous byte (initial prior 0). The indexed
// model is incremented and the current byte becomes the next prior, so
// Current must be called again (it returns the model for the *current*
// prior) after each Update before encoding/decoding the next symbol.
type OrderOneModel struct {
	models [256]*CountModel[byte]
	prior  byte
	seedFn func() *CountModel[byte]
}

// NewOrderOneModel creates an OrderOneModel whose 256 per-context models
// are each built by calling seed. seed is invoked lazily, once per context
// that is actually used, so an all-256-model order-1 session over a short
// input does not pay for contexts it never sees.
func NewOrderOneModel(seed func() *CountModel[byte]) *OrderOneModel {
	return &OrderOneModel{seedFn: seed}
}

// Current returns the model indexed by the current prior byte, lazily
// constructing it on first use.
func (m *OrderOneModel) Current() SymbolModel[byte] {
	return m.modelFor(m.prior)
}

// Update increments the count for b in the model indexed by the current
// prior, then advances the prior to b.
func (m *OrderOneModel) Update(b byte) {
	m.modelFor(m.prior).IncrCount(b)
	m.prior = b
}

func (m *OrderOneModel) modelFor(prior byte) *CountModel[byte] {
	if m.models[prior] == nil {
		m.models[prior] = m.seedFn()
	}
	return m.models[prior]
}
