package input

// Action is a game-level intent decoupled from physical keys
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFire
	ActionShield
	ActionPause
	ActionConfirm
	ActionQuit
	ActionExit // Leave the application
	ActionRotateCW
	ActionRotateCCW
	ActionToggleMute
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:       "none",
	ActionMoveLeft:   "left",
	ActionMoveRight:  "right",
	ActionMoveUp:     "up",
	ActionMoveDown:   "down",
	ActionFire:       "fire",
	ActionShield:     "shield",
	ActionPause:      "pause",
	ActionConfirm:    "confirm",
	ActionQuit:       "quit",
	ActionExit:       "exit",
	ActionRotateCW:   "rotate-cw",
	ActionRotateCCW:  "rotate-ccw",
	ActionToggleMute: "mute",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// Continuous reports actions sampled as held state each tick rather than delivered once
func (a Action) Continuous() bool {
	switch a {
	case ActionMoveLeft, ActionMoveRight, ActionMoveUp, ActionMoveDown, ActionFire:
		return true
	default:
		return false
	}
}

// Actions is a set of held actions for one tick
type Actions uint32

// Has reports whether a is held
func (s Actions) Has(a Action) bool {
	return s&(1<<a) != 0
}

// With returns the set including a
func (s Actions) With(a Action) Actions {
	return s | 1<<a
}

// Axis returns -1, 0 or 1 for a pair of opposing actions
func (s Actions) Axis(neg, pos Action) float64 {
	v := 0.0
	if s.Has(neg) {
		v--
	}
	if s.Has(pos) {
		v++
	}
	return v
}
