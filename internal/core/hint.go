package core

// Hint is an opaque cosmetic payload attached to a cell when the
// stepper births it. The simulation never interprets hints; only the
// display layer does. The concrete encoding is a packed 0x00RRGGBB
// color so it fits in a word, but nothing in the core depends on that.
type Hint uint32

// NoHint marks a cell without a display hint: dead cells, and live
// cells placed by the user rather than born by the automaton.
const NoHint Hint = 0

// PackHint builds a hint from RGB channel values.
func PackHint(r, g, b uint8) Hint {
	return Hint(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB unpacks the hint's channel values.
func (h Hint) RGB() (r, g, b uint8) {
	return uint8(h >> 16), uint8(h >> 8), uint8(h)
}

// HintSource produces the hint attached to each automaton birth. The
// liveness rules never depend on the produced values, so sources may
// be randomized; tests substitute a fixed one.
type HintSource interface {
	Next() Hint
}

// FixedHintSource returns the same hint for every birth.
type FixedHintSource Hint

// Next returns the fixed hint.
func (f FixedHintSource) Next() Hint { return Hint(f) }

// Channel bounds for randomized birth colors.
const (
	birthRedMin, birthRedMax     = 133, 250
	birthGreenMin, birthGreenMax = 211, 250
	birthBlueMin, birthBlueMax   = 56, 110
)

// RangeHintSource samples each RGB channel uniformly from a fixed
// range, giving automaton-born cells their varied green tint.
type RangeHintSource struct {
	rng *RNG
}

// NewRangeHintSource returns a randomized hint source seeded
// deterministically.
func NewRangeHintSource(seed int64) *RangeHintSource {
	return &RangeHintSource{rng: NewRNG(seed)}
}

// Next samples a fresh birth color.
func (s *RangeHintSource) Next() Hint {
	return PackHint(
		s.rng.Uint8Range(birthRedMin, birthRedMax),
		s.rng.Uint8Range(birthGreenMin, birthGreenMax),
		s.rng.Uint8Range(birthBlueMin, birthBlueMax),
	)
}
