package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to actions.
// A key may yield two actions (shift+arrow is run plus a direction).
// isQuit reports a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	}

	switch key {
	case "a", "left", "h":
		return []core.Action{core.ActionLeft}, false
	case "d", "right", "l":
		return []core.Action{core.ActionRight}, false
	case "A", "shift+left", "H":
		return []core.Action{core.ActionRun, core.ActionLeft}, false
	case "D", "shift+right", "L":
		return []core.Action{core.ActionRun, core.ActionRight}, false
	case "x", "X":
		return []core.Action{core.ActionRun}, false
	case " ", "w", "up", "k":
		return []core.Action{core.ActionJump}, false
	case "enter":
		return []core.Action{core.ActionConfirm}, false
	case "b", "esc":
		return []core.Action{core.ActionBack}, false
	case "p":
		return []core.Action{core.ActionPause}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	}

	return nil, false
}

// isHoldable reports whether an action describes a key being held down,
// as opposed to a one-shot command.
func isHoldable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionRun:
		return true
	}
	return false
}

// Hold windows for emulated key state, in milliseconds.
const (
	initialHoldMS = 500 // Covers the OS delay before autorepeat starts
	repeatHoldMS  = 100 // Covers the gap between autorepeat presses
)

// HeldKeys emulates key-up events. Terminals only deliver presses, so a
// press keeps its action held for a window that autorepeat presses extend.
type HeldKeys struct {
	initial int
	repeat  int
	left    map[core.Action]int
}

// NewHeldKeys creates held-key state for the given tick rate.
func NewHeldKeys(tickRate int) *HeldKeys {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := func(ms int) int {
		return core.Max(ms*tickRate/1000, 1)
	}
	return &HeldKeys{
		initial: ticks(initialHoldMS),
		repeat:  ticks(repeatHoldMS),
		left:    make(map[core.Action]int),
	}
}

// Press marks an action as held. Pressing a direction releases the
// opposite one.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.left, core.ActionRight)
	case core.ActionRight:
		delete(h.left, core.ActionLeft)
	}

	if n, ok := h.left[a]; ok {
		h.left[a] = core.Max(n, h.repeat)
		return
	}
	h.left[a] = h.initial
}

// Held reports whether an action is currently held.
func (h *HeldKeys) Held(a core.Action) bool {
	return h.left[a] > 0
}

// Tick writes the held actions into frame and ages them by one tick.
func (h *HeldKeys) Tick(frame *core.InputFrame) {
	for a, n := range h.left {
		frame.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
}

// Reset releases every key.
func (h *HeldKeys) Reset() {
	clear(h.left)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
