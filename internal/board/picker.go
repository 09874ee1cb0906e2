package board

import (
	"math/rand"

	"github.com/samdwyer/roflwords/internal/gamedata"
)

// CharPicker draws grid letters.
type CharPicker interface {
	PickChar() rune
}

// WeightedCharPicker draws letters with probability proportional to their
// corpus frequency.
type WeightedCharPicker struct {
	ranges []charRange
	total  int64
	rng    *rand.Rand
}

// charRange is the half-open slice [start, end) of the cumulative weight owned by one letter.
type charRange struct {
	char       rune
	start, end int64
}

// NewCharPicker builds a picker from a frequency table. Ranges follow table
// order. A row with a non-positive count fails with *gamedata.ConfigError.
func NewCharPicker(table []gamedata.Frequency, rng *rand.Rand) (*WeightedCharPicker, error) {
	if len(table) == 0 {
		return nil, &gamedata.ConfigError{Source: "frequency table", Reason: "frequency table is empty"}
	}

	ranges := make([]charRange, 0, len(table))
	var total int64
	for i, f := range table {
		if f.Count <= 0 {
			return nil, &gamedata.ConfigError{
				Source: "frequency table",
				Line:   i + 1,
				Text:   string(f.Char),
				Reason: "count must be positive",
			}
		}
		ranges = append(ranges, charRange{char: f.Char, start: total, end: total + f.Count})
		total += f.Count
	}

	return &WeightedCharPicker{
		ranges: ranges,
		total:  total,
		rng:    rng,
	}, nil
}

// PickChar draws one letter. Each call is independent.
func (p *WeightedCharPicker) PickChar() rune {
	// Pick a random value in the total weight range
	roll := p.rng.Int63n(p.total)

	// The alphabet is small, so a linear scan is enough
	for _, r := range p.ranges {
		if roll < r.end {
			return r.char
		}
	}

	// Fallback (shouldn't happen)
	return p.ranges[len(p.ranges)-1].char
}

// Total returns the sum of all letter weights.
func (p *WeightedCharPicker) Total() int64 {
	return p.total
}

// Probability returns the chance of drawing ch, or 0 if ch is not in the table.
func (p *WeightedCharPicker) Probability(ch rune) float64 {
	for _, r := range p.ranges {
		if r.char == ch {
			return float64(r.end-r.start) / float64(p.total)
		}
	}
	return 0
}

// Letters returns the table letters in table order.
func (p *WeightedCharPicker) Letters() []rune {
	letters := make([]rune, len(p.ranges))
	for i, r := range p.ranges {
		letters[i] = r.char
	}
	return letters
}
