package board

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roflwords/internal/telemetry"
)

const (
	// Default grid dimensions
	DefaultRows    = 5
	DefaultColumns = 5
)

// Generator fills grids with independently drawn letters and prices.
type Generator struct {
	chars  CharPicker
	prices PriceCalculator
}

// NewGenerator creates a generator from a letter source and a price source.
// Seed their random sources for reproducible grids.
func NewGenerator(chars CharPicker, prices PriceCalculator) *Generator {
	return &Generator{
		chars:  chars,
		prices: prices,
	}
}

// Generate returns a new rows×columns cell matrix indexed [row][col].
func (g *Generator) Generate(ctx context.Context, rows, columns int) ([][]Cell, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("generate %dx%d grid: %w", rows, columns, ErrInvalidDimension)
	}

	tracer := telemetry.Tracer("board")
	_, span := tracer.Start(ctx, "grid.generate")
	defer span.End()

	startTime := time.Now()

	cells := make([][]Cell, rows)
	for row := range cells {
		cells[row] = make([]Cell, columns)
		for col := range cells[row] {
			cells[row][col] = Cell{
				Char:  g.chars.PickChar(),
				Price: g.prices.PickPrice(),
				Row:   row,
				Col:   col,
			}
		}
	}

	span.SetAttributes(
		attribute.Int("grid.rows", rows),
		attribute.Int("grid.columns", columns),
		attribute.Int("grid.cells", rows*columns),
		attribute.Int64("grid.generation_us", time.Since(startTime).Microseconds()),
	)

	return cells, nil
}
