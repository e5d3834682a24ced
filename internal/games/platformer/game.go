// Package platformer implements a side-scrolling platformer: a player that
// walks, jumps and stomps across level geometry, patrolling enemies, item
// boxes that release a star power-up, and a camera that follows the player.
//
// World holds the simulation; Game adapts it to the registry.Game contract
// used by the terminal and SSH frontends.
package platformer

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// GameID is the registry identifier of the platformer.
const GameID = "platformer"

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var selectedLevel *levels.Level
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevel selects the level used by games created through the registry.
func SetLevel(lvl levels.Level) {
	selectedLevel = &lvl
}

// SetLogger sets the logger passed to new worlds.
func SetLogger(l *log.Logger) {
	logger = l
}

// LoadConfig loads the tuning the way Reset does, with the preset applied.
func LoadConfig() config.PlatformerConfig {
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Game implements registry.Game on top of a World.
type Game struct {
	world   *World
	runtime core.RuntimeConfig
	cfg     config.PlatformerConfig
	level   *levels.Level
	ticks   int
	paused  bool
}

// New creates a platformer playing the selected level, or the first
// built-in level when none was selected.
func New() *Game {
	return &Game{}
}

// NewWithLevel creates a platformer bound to lvl.
func NewWithLevel(lvl levels.Level) *Game {
	return &Game{level: &lvl}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset initializes or restarts the level.
// It panics when the level cannot be built, which the CLI rules out by
// validating levels before starting a session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = LoadConfig()
	g.ticks = 0
	g.paused = false

	lvl := g.resolveLevel()
	vw, vh := g.viewSize()

	difficulty := config.NewDifficultyManager(g.cfg.Difficulty)
	w, err := NewWorld(lvl, g.cfg, vw, vh, WithLogger(logger), WithDifficulty(difficulty))
	if err != nil {
		panic(fmt.Sprintf("platformer: %v", err))
	}
	g.world = w
}

func (g *Game) resolveLevel() levels.Level {
	if g.level != nil {
		return *g.level
	}
	if selectedLevel != nil {
		return *selectedLevel
	}
	all, err := levels.Embedded().LoadAll()
	if err != nil || len(all) == 0 {
		panic(fmt.Sprintf("platformer: no built-in levels: %v", err))
	}
	return all[0]
}

// viewSize returns the playfield size in world pixels.
func (g *Game) viewSize() (float64, float64) {
	cw, ch := g.cellSize()
	rows := core.Max(g.runtime.ScreenH-hudRows, 1)
	return float64(g.runtime.ScreenW * cw), float64(rows * ch)
}

func (g *Game) cellSize() (int, int) {
	cw, ch := g.cfg.Render.CellW, g.cfg.Render.CellH
	if cw <= 0 {
		cw = 8
	}
	if ch <= 0 {
		ch = 16
	}
	return cw, ch
}

// Resize adapts the viewport to a new terminal size without restarting.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW, g.runtime.ScreenH = screenW, screenH
	if g.world != nil {
		g.world.ResizeViewport(g.viewSize())
	}
}

// nowMS converts the tick count to the simulation clock.
func (g *Game) nowMS() float64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return float64(g.ticks) * 1000 / float64(rate)
}

// Step advances the game by one tick. Movement actions in the frame are
// read as held keys.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.Status() != StatusPlaying {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if err := g.world.Update(in, g.nowMS(), g.runtime.Dt()); err != nil {
		panic(err)
	}
	g.ticks++

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	elapsed := g.nowMS()
	if g.world.Status() != StatusPlaying {
		elapsed = g.world.EndedAt()
	}
	return core.GameState{
		Score:     g.world.Score(),
		GameOver:  g.world.Status() != StatusPlaying,
		Won:       g.world.Status() == StatusFinished,
		Paused:    g.paused,
		Level:     g.world.Level().ID,
		ElapsedMS: int(elapsed),
	}
}

// World exposes the running simulation to frontends that draw it directly.
func (g *Game) World() *World {
	return g.world
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
