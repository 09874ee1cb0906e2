package game

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/samdwyer/roflwords/internal/telemetry"
	"github.com/samdwyer/roflwords/internal/ui"
)

// newTestGame runs a 3x3 game on a simulation screen. Every cell holds 'к'
// and the dictionary knows only "ккк".
func newTestGame(t *testing.T) *Game {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error = %v", err)
	}
	sim.SetSize(80, 24)

	cfg := Config{
		Seed:           1,
		Rows:           3,
		Columns:        3,
		FrequencyFile:  writeFile(t, "letters.tsv", "к\t1\n"),
		DictionaryFile: writeFile(t, "words.txt", "ккк\n"),
	}
	g, err := New(context.Background(), cfg, screen, zerolog.Nop(), WithTracer(telemetry.NoopTracer()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(g.Close)
	return g
}

// mouse returns a mouse event over the label of the cell at (row, col).
func mouse(g *Game, row, col int, buttons tcell.ButtonMask) *tcell.EventMouse {
	x, y := g.layout().CellOrigin(row, col)
	return tcell.NewEventMouse(x+1, y, buttons, tcell.ModNone)
}

func TestMouseDragScoresWord(t *testing.T) {
	g := newTestGame(t)
	ctx := context.Background()

	g.handleEvent(ctx, mouse(g, 0, 0, tcell.Button1))
	g.handleEvent(ctx, mouse(g, 0, 1, tcell.Button1))
	g.handleEvent(ctx, mouse(g, 0, 1, tcell.Button1)) // still on the same cell
	g.handleEvent(ctx, mouse(g, 1, 2, tcell.Button1))

	if got := g.session.PendingWord(); got != "ккк" {
		t.Fatalf("PendingWord() = %q, want %q", got, "ккк")
	}
	if g.hud.PendingWord != "ккк" {
		t.Errorf("hud.PendingWord = %q, want %q", g.hud.PendingWord, "ккк")
	}
	want := g.session.PendingScore().Points

	g.handleEvent(ctx, mouse(g, 1, 2, tcell.ButtonNone))

	if g.session.TotalScore() != want {
		t.Errorf("TotalScore() = %d, want %d", g.session.TotalScore(), want)
	}
	if g.hud.Total != want {
		t.Errorf("hud.Total = %d, want %d", g.hud.Total, want)
	}
	if g.hud.PendingWord != "" || g.hud.PendingScore != "" {
		t.Errorf("hud pending = %q/%q after release, want empty", g.hud.PendingWord, g.hud.PendingScore)
	}
	if len(g.hud.Found) != 1 || g.hud.Found[0] != "ккк" {
		t.Errorf("hud.Found = %v, want [ккк]", g.hud.Found)
	}
	if !strings.HasPrefix(g.hud.Message, "ККК") {
		t.Errorf("hud.Message = %q, want it to announce the word", g.hud.Message)
	}
}

func TestMouseReleaseWithoutDragIsIgnored(t *testing.T) {
	g := newTestGame(t)

	g.handleEvent(context.Background(), mouse(g, 0, 0, tcell.ButtonNone))

	if g.session.State() != StateIdle || g.hud.Message != "" {
		t.Errorf("hover without button changed state: %v, %q", g.session.State(), g.hud.Message)
	}
}

func TestMouseDragOffBoard(t *testing.T) {
	g := newTestGame(t)
	ctx := context.Background()

	g.handleEvent(ctx, mouse(g, 0, 0, tcell.Button1))
	g.handleEvent(ctx, tcell.NewEventMouse(70, 20, tcell.Button1, tcell.ModNone))
	if g.hovering {
		t.Error("pointer off the board should not hover a cell")
	}

	// Coming back to the first cell is a revisit and is ignored
	g.handleEvent(ctx, mouse(g, 0, 0, tcell.Button1))
	if got := len(g.session.Path()); got != 1 {
		t.Errorf("path length = %d, want 1", got)
	}

	g.handleEvent(ctx, tcell.NewEventMouse(70, 20, tcell.ButtonNone, tcell.ModNone))
	if g.session.State() != StateIdle || g.dragging {
		t.Errorf("release off the board left state %v, dragging %v", g.session.State(), g.dragging)
	}
	if g.session.TotalScore() != 0 {
		t.Errorf("TotalScore() = %d, want 0", g.session.TotalScore())
	}
}

func TestGameReshuffle(t *testing.T) {
	g := newTestGame(t)
	ctx := context.Background()

	for _, pos := range [][2]int{{0, 0}, {0, 1}, {0, 2}} {
		g.handleEvent(ctx, mouse(g, pos[0], pos[1], tcell.Button1))
	}
	g.handleEvent(ctx, mouse(g, 0, 2, tcell.ButtonNone))
	total := g.session.TotalScore()
	if total == 0 {
		t.Fatal("expected a scored word before reshuffling")
	}

	gen := g.session.Grid().Generation()
	g.reshuffle(ctx, false)
	if g.session.Grid().Generation() != gen+1 {
		t.Errorf("Generation() = %d, want %d", g.session.Grid().Generation(), gen+1)
	}
	if g.hud.Total != total || len(g.hud.Found) != 0 {
		t.Errorf("keep-score reshuffle: hud total %d found %v, want %d and none", g.hud.Total, g.hud.Found, total)
	}

	g.reshuffle(ctx, true)
	if g.session.TotalScore() != 0 || g.hud.Total != 0 {
		t.Errorf("new game total = %d (hud %d), want 0", g.session.TotalScore(), g.hud.Total)
	}
	if g.hud.Message != "new game" {
		t.Errorf("hud.Message = %q, want %q", g.hud.Message, "new game")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	g.handleEvent(context.Background(), mouse(g, 1, 1, tcell.Button1))
	g.render()

	layout := g.layout()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			x, y := layout.CellOrigin(row, col)
			if r, _ := g.screen.ContentAt(x+1, y); r != 'К' {
				t.Errorf("cell (%d,%d) drawn as %q, want 'К'", row, col, r)
			}
		}
	}

	x, _ := layout.CellOrigin(0, 0)
	if r, _ := g.screen.ContentAt(x, layout.Bottom()+1); r != 'W' {
		t.Errorf("word line starts with %q, want 'W'", r)
	}
}

func TestNilEventStopsGame(t *testing.T) {
	g := newTestGame(t)
	g.handleEvent(context.Background(), nil)

	if g.running {
		t.Error("running = true after nil event, want false")
	}
}
