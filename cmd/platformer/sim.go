package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	flagTicks  int
	flagScript string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a level headless with scripted input",
	Long: `Run a level without a screen, feeding it a fixed input script, and
print the outcome. Useful for checking levels and tuning changes.

The script is a comma-separated list of steps. Each step is a set of
held keys joined with '+' and a number of ticks:

  right:120,right+jump:1,right+run:300,idle:30

Keys: left, right, jump, run, idle. Once the script is exhausted the
player stands still until --ticks is reached or the level ends.

Examples:
  platformer sim --level 01-meadow --script "right:600"
  platformer sim --level-file ./my-level.yaml --ticks 3600 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to simulate")
	simCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Path to a level file to simulate")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks to run")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Input script, e.g. right:60,right+jump:1")
}

// scriptStep holds a set of keys for a number of ticks.
type scriptStep struct {
	keys  []core.Action
	ticks int
}

var scriptKeys = map[string]core.Action{
	"left":  core.ActionLeft,
	"right": core.ActionRight,
	"jump":  core.ActionJump,
	"run":   core.ActionRun,
}

// parseScript parses "keys:ticks" steps separated by commas.
func parseScript(s string) ([]scriptStep, error) {
	var steps []scriptStep
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		keysPart, ticksPart, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("sim: step %q has no tick count", part)
		}
		n, err := strconv.Atoi(strings.TrimSpace(ticksPart))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("sim: step %q has a bad tick count", part)
		}

		step := scriptStep{ticks: n}
		for _, name := range strings.Split(keysPart, "+") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "idle" || name == "none" {
				continue
			}
			a, ok := scriptKeys[name]
			if !ok {
				return nil, fmt.Errorf("sim: unknown key %q", name)
			}
			step.keys = append(step.keys, a)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// frameAt returns the held keys for the given tick.
func frameAt(steps []scriptStep, tick int) core.InputFrame {
	for _, s := range steps {
		if tick < s.ticks {
			return core.InputOf(s.keys...)
		}
		tick -= s.ticks
	}
	return core.NewInputFrame()
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger("sim")

	lvl, err := resolveLevel(flagLevel, flagLevelFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	steps, err := parseScript(flagScript)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rate := flagFPS
	if rate <= 0 {
		rate = 60
	}
	dt := 1 / float64(rate)

	world, err := platformer.NewWorld(lvl, platformer.LoadConfig(), 640, 368, platformer.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tick := 0
	for ; tick < flagTicks && world.Status() == platformer.StatusPlaying; tick++ {
		now := float64(tick) * 1000 / float64(rate)
		if err := world.Update(frameAt(steps, tick), now, dt); err != nil {
			logger.Error("simulation stopped", "tick", tick, "error", err)
			os.Exit(1)
		}
	}

	p := world.Player()
	elapsed := float64(tick) * 1000 / float64(rate)
	if world.Status() != platformer.StatusPlaying {
		elapsed = world.EndedAt()
	}

	logger.Info("simulation done",
		"level", lvl.ID,
		"status", world.Status(),
		"score", world.Score(),
		"ticks", tick,
		"elapsed", fmt.Sprintf("%.1fs", elapsed/1000),
		"x", p.Rect.X,
		"y", p.Rect.Y,
		"player", p.State,
	)
}
