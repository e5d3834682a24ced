package platformer

import (
	"errors"
	"fmt"
)

// ErrInvalidState is returned when an entity holds a state value outside its
// enumeration. It indicates a programming error.
var ErrInvalidState = errors.New("platformer: invalid state")

func invalidState(kind string, v int) error {
	return fmt.Errorf("%w: %s state %d", ErrInvalidState, kind, v)
}

// PlayerState is the player's finite state.
type PlayerState int

const (
	PlayerStanding PlayerState = iota
	PlayerWalking
	PlayerFreeFall
	PlayerBouncy // Star power: rebounds on landing, knocks enemies away
)

func (s PlayerState) String() string {
	switch s {
	case PlayerStanding:
		return "standing"
	case PlayerWalking:
		return "walking"
	case PlayerFreeFall:
		return "free_fall"
	case PlayerBouncy:
		return "bouncy"
	default:
		return fmt.Sprintf("PlayerState(%d)", int(s))
	}
}

// EnemyState is an enemy's finite state.
type EnemyState int

const (
	EnemyWalking EnemyState = iota
	EnemyFreeFall
	EnemyInAir        // Dead, knocked into the air
	EnemyDeadOnGround // Dead, squashed
)

func (s EnemyState) String() string {
	switch s {
	case EnemyWalking:
		return "walking"
	case EnemyFreeFall:
		return "free_fall"
	case EnemyInAir:
		return "in_air"
	case EnemyDeadOnGround:
		return "dead_on_ground"
	default:
		return fmt.Sprintf("EnemyState(%d)", int(s))
	}
}

// Dead reports whether the state is one of the death states.
func (s EnemyState) Dead() bool {
	return s == EnemyInAir || s == EnemyDeadOnGround
}

// BoxState is an item box's finite state.
type BoxState int

const (
	BoxNormal BoxState = iota
	BoxBumped
	BoxOpened
)

func (s BoxState) String() string {
	switch s {
	case BoxNormal:
		return "normal"
	case BoxBumped:
		return "bumped"
	case BoxOpened:
		return "opened"
	default:
		return fmt.Sprintf("BoxState(%d)", int(s))
	}
}

// StarState is a star power-up's finite state.
type StarState int

const (
	StarReveal StarState = iota
	StarRevealed
)

func (s StarState) String() string {
	switch s {
	case StarReveal:
		return "reveal"
	case StarRevealed:
		return "revealed"
	default:
		return fmt.Sprintf("StarState(%d)", int(s))
	}
}

// Status is the outcome of a level run.
type Status int

const (
	StatusPlaying Status = iota
	StatusFinished
	StatusDied
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusFinished:
		return "finished"
	case StatusDied:
		return "died"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}
