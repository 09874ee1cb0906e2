package game

import (
	"context"
	"fmt"

	"github.com/samdwyer/roflwords/internal/board"
	"github.com/samdwyer/roflwords/internal/dictionary"
	"github.com/samdwyer/roflwords/internal/gamedata"
)

// NewSessionFromConfig loads the letter table and dictionary named by cfg,
// wires the generator, grid and checker, and deals the first board.
// Data errors surface here, before any gameplay begins.
func NewSessionFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	table, err := gamedata.LoadFrequencies(cfg.FrequencyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load letter frequencies: %w", err)
	}
	words, err := gamedata.LoadWords(cfg.DictionaryFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	rng := cfg.NewRand()
	chars, err := board.NewCharPicker(table, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to build letter picker: %w", err)
	}

	grid := board.NewGrid(board.NewGenerator(chars, board.NewPriceCalculator(rng)))
	session := NewSession(grid, dictionary.New(words), opts...)

	if err := session.Reshuffle(ctx, cfg.Rows, cfg.Columns, true); err != nil {
		session.Close()
		return nil, err
	}
	return session, nil
}
