package tether

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/input"
	"github.com/lixenwraith/starfall/parameter"
)

var (
	// ErrUnknownStage is returned for a stage outside the table
	ErrUnknownStage = errors.New("unknown stage")
	// ErrStageLocked is returned for a stage not yet unlocked
	ErrStageLocked = errors.New("stage locked")
)

// Allowance is the set of moves a stage permits, for both the player and the hole generator
type Allowance struct {
	Lateral  bool
	Vertical bool
	Rotation bool
}

// AllowanceFor returns the moves allowed on stage
func AllowanceFor(stage int) Allowance {
	switch {
	case stage < parameter.TetherRotationFrom:
		return Allowance{Lateral: true}
	case stage < parameter.TetherVerticalFrom:
		return Allowance{Lateral: true, Rotation: true}
	default:
		return Allowance{Lateral: true, Vertical: true, Rotation: true}
	}
}

// Motion describes lateral and vertical allowance for the stage banner
func (a Allowance) Motion() string {
	if a.Vertical {
		return "Horizontal and Vertical"
	}
	return "Horizontal"
}

// Settings returns the table row for stage
func Settings(stage int) (parameter.TetherStage, error) {
	s, ok := parameter.TetherStages[stage]
	if !ok {
		return parameter.TetherStage{}, fmt.Errorf("%w: %d", ErrUnknownStage, stage)
	}
	return s, nil
}

// Infinity reports the endless mode
func Infinity(stage int) bool {
	return stage >= parameter.TetherInfinityFrom
}

// normalize folds turns into the distinct orientations of the shape
func normalize(p component.Pose) component.Pose {
	sym := p.Shape.Symmetry()
	p.Turns = ((p.Turns % sym) + sym) % sym
	return p
}

// NextHole draws a fresh hole; axes the stage does not allow keep their previous value
// The last lane and level are never drawn
func NextHole(r *rand.Rand, prev component.Pose, allow Allowance) component.Pose {
	h := prev
	h.Shape = component.Shape(r.IntN(3))
	if allow.Lateral {
		h.Lane = parameter.TetherLanes[r.IntN(len(parameter.TetherLanes)-1)]
	}
	if allow.Rotation {
		h.Turns = parameter.TetherTurns[r.IntN(len(parameter.TetherTurns)-1)]
	}
	if allow.Vertical {
		h.Level = parameter.TetherLevels[r.IntN(len(parameter.TetherLevels)-1)]
	}
	return normalize(h)
}

// Move applies a player action to the piece, reporting whether it changed
func Move(p component.Pose, a input.Action, allow Allowance) (component.Pose, bool) {
	step := parameter.TetherLaneStep
	limit := parameter.TetherPieceLimit
	next := p
	switch a {
	// Screen right looks down -y from behind the piece
	case input.ActionMoveRight:
		if allow.Lateral && p.Lane > -limit {
			next.Lane -= step
		}
	case input.ActionMoveLeft:
		if allow.Lateral && p.Lane < limit {
			next.Lane += step
		}
	case input.ActionMoveUp:
		if allow.Vertical && p.Level < limit {
			next.Level += step
		}
	case input.ActionMoveDown:
		if allow.Vertical && p.Level > -limit {
			next.Level -= step
		}
	case input.ActionRotateCW:
		if allow.Rotation {
			next.Turns++
		}
	case input.ActionRotateCCW:
		if allow.Rotation {
			next.Turns--
		}
	}
	next = normalize(next)
	return next, next != p
}
