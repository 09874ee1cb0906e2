package board

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/roflwords/internal/gamedata"
)

func TestNewCharPickerRejectsBadCounts(t *testing.T) {
	tests := []struct {
		name  string
		table []gamedata.Frequency
	}{
		{"empty", nil},
		{"zero", []gamedata.Frequency{{Char: 'а', Count: 5}, {Char: 'б', Count: 0}}},
		{"negative", []gamedata.Frequency{{Char: 'а', Count: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCharPicker(tt.table, rand.New(rand.NewSource(1)))
			var cfgErr *gamedata.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("NewCharPicker() error = %v, want *gamedata.ConfigError", err)
			}
		})
	}
}

func TestCharPickerRanges(t *testing.T) {
	table := []gamedata.Frequency{{Char: 'а', Count: 1}, {Char: 'б', Count: 3}}
	p, err := NewCharPicker(table, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewCharPicker() error = %v", err)
	}

	if p.Total() != 4 {
		t.Errorf("Total() = %d, want 4", p.Total())
	}
	if got := p.Probability('б'); got != 0.75 {
		t.Errorf("Probability('б') = %v, want 0.75", got)
	}
	if got := p.Probability('я'); got != 0 {
		t.Errorf("Probability('я') = %v, want 0", got)
	}
	if got := string(p.Letters()); got != "аб" {
		t.Errorf("Letters() = %q, want %q", got, "аб")
	}
}

func TestCharPickerSingleLetter(t *testing.T) {
	p, err := NewCharPicker([]gamedata.Frequency{{Char: 'ж', Count: 7}}, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewCharPicker() error = %v", err)
	}
	for i := 0; i < 100; i++ {
		if ch := p.PickChar(); ch != 'ж' {
			t.Fatalf("PickChar() = %q, want 'ж'", ch)
		}
	}
}

// chiSquared returns the chi-squared statistic of observed counts against
// the picker's configured probabilities over n draws.
func chiSquared(p *WeightedCharPicker, observed map[rune]int, n int) float64 {
	var stat float64
	for _, ch := range p.Letters() {
		expected := p.Probability(ch) * float64(n)
		diff := float64(observed[ch]) - expected
		stat += diff * diff / expected
	}
	return stat
}

func TestCharPickerDistribution(t *testing.T) {
	table := []gamedata.Frequency{
		{Char: 'а', Count: 10},
		{Char: 'б', Count: 20},
		{Char: 'в', Count: 70},
	}
	p, err := NewCharPicker(table, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewCharPicker() error = %v", err)
	}

	const draws = 100000
	observed := make(map[rune]int)
	for i := 0; i < draws; i++ {
		observed[p.PickChar()]++
	}

	// Critical value for 2 degrees of freedom at p = 0.001
	if stat := chiSquared(p, observed, draws); stat > 13.82 {
		t.Errorf("chi-squared = %.2f, exceeds 13.82; observed %v", stat, observed)
	}
}

func TestCharPickerRussianDistribution(t *testing.T) {
	p, err := NewCharPicker(gamedata.MustLoadFrequencies(), rand.New(rand.NewSource(2024)))
	if err != nil {
		t.Fatalf("NewCharPicker() error = %v", err)
	}

	const draws = 300000
	observed := make(map[rune]int)
	for i := 0; i < draws; i++ {
		ch := p.PickChar()
		if p.Probability(ch) == 0 {
			t.Fatalf("PickChar() returned %q which is not in the table", ch)
		}
		observed[ch]++
	}

	// Critical value for 32 degrees of freedom at p = 0.001 is 62.5
	if stat := chiSquared(p, observed, draws); stat > 62.5 {
		t.Errorf("chi-squared = %.2f, exceeds 62.5", stat)
	}
	if observed['о'] <= observed['ф'] {
		t.Errorf("Expected 'о' (%d) to be drawn more often than 'ф' (%d)", observed['о'], observed['ф'])
	}
}

func TestCharPickerReproducibility(t *testing.T) {
	table := gamedata.MustLoadFrequencies()
	p1, _ := NewCharPicker(table, rand.New(rand.NewSource(12345)))
	p2, _ := NewCharPicker(table, rand.New(rand.NewSource(12345)))

	for i := 0; i < 50; i++ {
		if a, b := p1.PickChar(), p2.PickChar(); a != b {
			t.Fatalf("Draw %d mismatch: %q != %q", i, a, b)
		}
	}
}
