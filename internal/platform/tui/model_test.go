package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

func testLevel(withFloor bool) levels.Level {
	lvl := levels.Level{
		ID:     "test",
		Name:   "Test",
		Width:  640,
		Height: 320,
		SpawnX: 100,
		SpawnY: 256,
	}
	if withFloor {
		lvl.Blockers = []core.RectF{core.NewRectF(0, 288, 640, 32)}
	}
	return lvl
}

func newTestModel(t *testing.T, lvl levels.Level, store *storage.Store) (Model, *platformer.Game) {
	t.Helper()
	game := platformer.NewWithLevel(lvl)
	m := NewModel(game, store, nil, core.DefaultConfig())
	m.Init()
	return m, game
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

func TestModelHeldKeyMovesPlayer(t *testing.T) {
	m, game := newTestModel(t, testLevel(true), nil)
	startX := game.World().Player().Rect.X

	m = step(t, m, runeKey('d'))
	for i := 0; i < 20; i++ {
		m = step(t, m, TickMsg{})
	}
	if x := game.World().Player().Rect.X; x <= startX {
		t.Fatalf("player X = %v, expected > %v", x, startX)
	}

	// Without further presses the key is released and the player settles.
	for i := 0; i < 120; i++ {
		m = step(t, m, TickMsg{})
	}
	if st := game.World().Player().State; st != platformer.PlayerStanding {
		t.Errorf("player state = %v, expected standing", st)
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, testLevel(false), store)
	for i := 0; i < 90; i++ {
		m = step(t, m, TickMsg{})
	}
	if !m.gameState.GameOver {
		t.Fatal("player should have fallen out of the level")
	}

	runs, err := store.TopRuns("test", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	if runs[0].Finished {
		t.Error("run should be recorded as died")
	}
	if runs[0].DurationMS != m.gameState.ElapsedMS {
		t.Errorf("DurationMS = %d, expected %d", runs[0].DurationMS, m.gameState.ElapsedMS)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m, game := newTestModel(t, testLevel(false), nil)
	for i := 0; i < 90; i++ {
		m = step(t, m, TickMsg{})
	}
	if !m.gameState.GameOver {
		t.Fatal("player should have fallen out of the level")
	}

	m = step(t, m, runeKey('r'))
	m = step(t, m, TickMsg{})
	if m.gameState.GameOver {
		t.Error("restart should begin a new attempt")
	}
	if y := game.World().Player().Rect.Y; y != 256 {
		t.Errorf("player Y after restart = %v, expected 256", y)
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	m, _ := newTestModel(t, testLevel(true), nil)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m = step(t, m, runeKey('p'))
	m = step(t, m, TickMsg{})
	if !m.gameState.Paused {
		t.Fatal("game should be paused")
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestModelResizeKeepsProgress(t *testing.T) {
	m, game := newTestModel(t, testLevel(true), nil)
	for i := 0; i < 10; i++ {
		m = step(t, m, TickMsg{})
	}
	elapsed := game.State().ElapsedMS

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.State().ElapsedMS != elapsed {
		t.Errorf("resize restarted the level: elapsed %d -> %d", elapsed, game.State().ElapsedMS)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}
