package game

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/roflwords/internal/board"
	"github.com/samdwyer/roflwords/internal/dictionary"
	"github.com/samdwyer/roflwords/internal/telemetry"
)

// Session tracks one play period: the traced path, the pending word and its
// score, and the accumulated total. It is not safe for concurrent use; input
// arrives serialized from a single pointer.
type Session struct {
	id      uuid.UUID
	grid    *board.Grid
	checker *dictionary.Checker
	path    SelectionPath
	total   int

	listeners  []*Listener
	stopEvents func()
	logger     zerolog.Logger
	tracer     trace.Tracer
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithTracer sets the tracer used for reshuffle and commit spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Session) {
		s.tracer = tracer
	}
}

// NewSession creates a session over grid and checker. The session listens
// to the grid's cell-entered notifications, so pointer input may go either
// through grid.Enter or straight to ExtendSelection.
// Call Reshuffle to deal the first board.
func NewSession(grid *board.Grid, checker *dictionary.Checker, opts ...Option) *Session {
	s := &Session{
		id:      uuid.New(),
		grid:    grid,
		checker: checker,
		logger:  zerolog.Nop(),
		tracer:  telemetry.Tracer("game"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.stopEvents = grid.OnCellEntered(func(cell board.Cell) {
		s.extend(cell)
	})
	return s
}

// Close detaches the session from its grid.
func (s *Session) Close() {
	if s.stopEvents != nil {
		s.stopEvents()
		s.stopEvents = nil
	}
}

// ID identifies the current play period. It changes on every reshuffle.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Grid returns the board the session plays on.
func (s *Session) Grid() *board.Grid {
	return s.grid
}

// State returns StateSelecting while a path is being traced.
func (s *Session) State() State {
	if s.path.Len() == 0 {
		return StateIdle
	}
	return StateSelecting
}

// Path returns a copy of the traced cells.
func (s *Session) Path() []board.Cell {
	return s.path.Cells()
}

// PendingWord returns the letters traced so far.
func (s *Session) PendingWord() string {
	return s.path.Word()
}

// PendingScore returns the score the traced word would earn.
func (s *Session) PendingScore() PendingScore {
	return s.path.Score()
}

// TotalScore returns the accumulated score.
func (s *Session) TotalScore() int {
	return s.total
}

// FoundWords returns the words claimed since the last reshuffle, sorted.
func (s *Session) FoundWords() []string {
	return s.checker.SessionWords()
}

// ExtendSelection offers the cell at (row, col) to the traced path.
// A cell already in the path or not adjacent to its last cell is ignored
// and reported as not accepted. Only a position outside the grid is an error.
func (s *Session) ExtendSelection(row, col int) (bool, error) {
	cell, err := s.grid.CellAt(row, col)
	if err != nil {
		return false, err
	}
	return s.extend(cell), nil
}

// extend appends cell to the path and broadcasts the new pending word and score.
func (s *Session) extend(cell board.Cell) bool {
	if !s.path.Extend(cell) {
		return false
	}
	s.emitPending()
	return true
}

// ReleaseSelection ends the gesture. A non-empty pending word that the
// dictionary accepts for this session adds its pending score to the total.
// The path is cleared either way. It returns true if a word was scored.
func (s *Session) ReleaseSelection(ctx context.Context) bool {
	word := s.path.Word()
	score := s.path.Score()

	found := false
	if word != "" {
		_, span := s.tracer.Start(ctx, "session.commit")
		found = s.checker.TryRegister(word)
		span.SetAttributes(
			attribute.String("session.id", s.id.String()),
			attribute.String("word", word),
			attribute.Int("points", score.Points),
			attribute.Bool("accepted", found),
		)
		span.End()

		if found {
			s.total += score.Points
			s.logger.Debug().
				Str("session_id", s.id.String()).
				Str("word", word).
				Int("points", score.Points).
				Int("total", s.total).
				Msg("word found")
			s.emitTotal()
			s.emitWordFound(word, score.Points)
		} else {
			s.logger.Debug().
				Str("session_id", s.id.String()).
				Str("word", word).
				Bool("known", s.checker.WordExists(word)).
				Msg("word rejected")
			s.emitWordRejected(word)
		}
	}

	s.path.Clear()
	s.emitPending()
	return found
}

// Reshuffle deals a new board, clears the traced path and forgets the
// claimed words. The total is zeroed only when resetScore is true, so a
// "reshuffle tiles" action keeps the score while a new game starts over.
// Claimed words are forgotten in both cases. On error nothing changes.
func (s *Session) Reshuffle(ctx context.Context, rows, columns int, resetScore bool) error {
	ctx, span := s.tracer.Start(ctx, "session.reshuffle")
	defer span.End()

	if err := s.grid.Regenerate(ctx, rows, columns); err != nil {
		span.RecordError(err)
		return err
	}

	s.id = uuid.New()
	s.path.Clear()
	s.emitPending()
	s.checker.ResetSession()

	if resetScore {
		s.total = 0
		s.emitTotal()
	}

	span.SetAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.Int("grid.rows", rows),
		attribute.Int("grid.columns", columns),
		attribute.Bool("reset_score", resetScore),
		attribute.Int("total", s.total),
	)
	s.logger.Info().
		Str("session_id", s.id.String()).
		Int("rows", rows).
		Int("columns", columns).
		Bool("reset_score", resetScore).
		Int("total", s.total).
		Msg("board reshuffled")

	return nil
}
