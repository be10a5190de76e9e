package component

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// EffectKind discriminates timed visual effects
type EffectKind uint8

const (
	EffectExplosion EffectKind = iota
	EffectParticle
	EffectHitFlash
	EffectPopup
	EffectAlert
	EffectShieldBurst
)

// EffectComponent is a transient visual with a lifetime, aged by the effect system
type EffectComponent struct {
	Kind    EffectKind
	Life    time.Duration
	MaxLife time.Duration
	Text    string
	Color   tcell.Color
}

// Remaining returns life as a 0..1 fraction, used for fading
func (e EffectComponent) Remaining() float64 {
	if e.MaxLife <= 0 {
		return 0
	}
	r := float64(e.Life) / float64(e.MaxLife)
	if r < 0 {
		return 0
	}
	return r
}
