package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/samdwyer/roflwords/internal/ui"
)

// Game drives a Session from terminal input and renders it with tcell.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	cfg      Config
	logger   zerolog.Logger
	hud      ui.HUD
	running  bool

	// Pointer state: a drag is in progress, and the cell under the pointer.
	dragging bool
	hovering bool
	hoverRow int
	hoverCol int

	unsubscribe func()
}

// New creates a game on screen, loading data and dealing the first board as configured.
func New(ctx context.Context, cfg Config, screen *ui.Screen, logger zerolog.Logger, opts ...Option) (*Game, error) {
	sessionLogger := logger.With().Str("component", "session").Logger()
	opts = append([]Option{WithLogger(sessionLogger)}, opts...)

	session, err := NewSessionFromConfig(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}

	g := &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  session,
		cfg:      cfg,
		logger:   logger,
		running:  true,
	}
	g.unsubscribe = session.Subscribe(Listener{
		PendingWordChanged: func(word string) {
			g.hud.PendingWord = word
		},
		PendingScoreChanged: func(score PendingScore) {
			g.hud.PendingScore = score.String()
		},
		TotalScoreChanged: func(total int) {
			g.hud.Total = total
		},
		WordFound: func(word string, points int) {
			g.hud.Found = session.FoundWords()
			g.hud.Message = fmt.Sprintf("%s +%d", strings.ToUpper(word), points)
		},
		WordRejected: func(word string) {
			g.hud.Message = fmt.Sprintf("%s: not a word or already found", strings.ToUpper(word))
		},
	})
	return g, nil
}

// Session returns the session the game drives.
func (g *Game) Session() *Session {
	return g.session
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	for g.running {
		g.render()

		// Handle input (blocking)
		g.handleEvent(ctx, g.screen.PollEvent())
	}

	g.Close()
	return nil
}

// render draws the current board and HUD.
func (g *Game) render() {
	hud := g.hud
	hud.Path = g.session.Path()
	g.renderer.Render(g.session.Grid(), hud)
}

// layout returns the screen layout of the current board.
func (g *Game) layout() ui.Layout {
	grid := g.session.Grid()
	return ui.Layout{Rows: grid.Rows(), Columns: grid.Columns()}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'r', 'R':
			g.reshuffle(ctx, false)
		case 'n', 'N':
			g.reshuffle(ctx, true)
		}
	}
}

// handleMouseEvent turns button-1 drags into cell-entered/left notifications
// and the button release into a selection release.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		if g.dragging {
			g.leaveHovered()
			g.dragging = false
			g.session.ReleaseSelection(ctx)
		}
		return
	}
	g.dragging = true

	x, y := ev.Position()
	row, col, ok := g.layout().CellAt(x, y)
	if !ok {
		g.leaveHovered()
		return
	}
	if g.hovering && g.hoverRow == row && g.hoverCol == col {
		return
	}

	g.leaveHovered()
	g.hovering, g.hoverRow, g.hoverCol = true, row, col
	if err := g.session.Grid().Enter(row, col); err != nil {
		g.logger.Warn().Err(err).Int("row", row).Int("col", col).Msg("pointer entered unknown cell")
	}
}

// leaveHovered notifies the grid that the pointer left the hovered cell.
func (g *Game) leaveHovered() {
	if !g.hovering {
		return
	}
	g.hovering = false
	if err := g.session.Grid().Leave(g.hoverRow, g.hoverCol); err != nil {
		g.logger.Warn().Err(err).Int("row", g.hoverRow).Int("col", g.hoverCol).Msg("pointer left unknown cell")
	}
}

// reshuffle deals a new board. resetScore starts a new game.
func (g *Game) reshuffle(ctx context.Context, resetScore bool) {
	g.dragging = false
	g.hovering = false

	if err := g.session.Reshuffle(ctx, g.cfg.Rows, g.cfg.Columns, resetScore); err != nil {
		g.logger.Error().Err(err).Msg("reshuffle failed")
		g.hud.Message = "reshuffle failed: " + err.Error()
		return
	}

	g.hud.Found = g.session.FoundWords()
	if resetScore {
		g.hud.Message = "new game"
	} else {
		g.hud.Message = "tiles reshuffled"
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
	g.session.Close()
	if g.screen != nil {
		g.screen.Close()
	}
}
