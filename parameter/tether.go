package parameter

// Tether Geometry
const (
	// TetherSpeedScale converts table speed into world units per second
	TetherSpeedScale = 65.0

	// TetherCheckX is the wall distance where the piece is tested against the hole
	TetherCheckX = 1.1

	// TetherWallStart is where the next wall appears after a pass
	TetherWallStart = 40.0

	// TetherFirstWall is where the first wall of a session starts
	TetherFirstWall = 30.0

	// TetherFadeEnd removes the passed wall once beyond this x
	TetherFadeEnd = -50.0

	// TetherLaneStep is the distance between lanes and levels
	TetherLaneStep = 2

	// TetherPieceLimit bounds the piece lane and level
	TetherPieceLimit = 6

	// TetherInfinityStep is speed gained per pass in infinity mode, capped by TetherInfinityCap
	TetherInfinityStep = 0.01
	TetherInfinityCap  = 0.18

	// TetherInfinityStage is the stage number of the endless mode
	TetherInfinityStage = 100

	// TetherFinalStage is the last numbered stage
	TetherFinalStage = 10
)

// TetherLanes are the hole y coordinates
var TetherLanes = []int{-6, -4, -2, 0, 2, 4, 6}

// TetherLevels are the hole z coordinates
var TetherLevels = []int{-4, -2, 0, 2, 4, 6}

// TetherTurns are the hole rotations in quarter turns (-90, 0, 90, 180 degrees)
var TetherTurns = []int{3, 0, 1, 2}

// TetherStage is one row of the stage table
type TetherStage struct {
	Speed     float64
	Objective int
}

// TetherStages is keyed by stage number
var TetherStages = map[int]TetherStage{
	1:   {0.1, 5},
	2:   {0.15, 10},
	3:   {0.1, 5},
	4:   {0.15, 10},
	5:   {0.2, 20},
	6:   {0.27, 5},
	7:   {0.1, 5},
	8:   {0.15, 15},
	9:   {0.2, 10},
	10:  {0.2, 30},
	100: {0.1, 0},
}

// Stage allowance thresholds
const (
	TetherRotationFrom = 3  // Rotation allowed from this stage
	TetherVerticalFrom = 7  // Vertical movement allowed from this stage
	TetherInfinityFrom = 20 // Infinity rules from this stage
)
