package dogfight

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/audio"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/event"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/system"
)

// missionSystem runs the mission clock, shield timers and the targeting indicator
type missionSystem struct {
	engine.SystemBase
	game *Game
}

func newMissionSystem(ctx *engine.Context, g *Game) *missionSystem {
	return &missionSystem{SystemBase: engine.NewSystemBase(ctx), game: g}
}

func (s *missionSystem) Name() string  { return "dogfight-mission" }
func (s *missionSystem) Priority() int { return parameter.PriorityMission }

func (s *missionSystem) Update(dt time.Duration) {
	if !s.Session.Running() {
		return
	}
	s.shield(dt)
	s.target()

	g := s.game
	g.missionLeft -= dt
	if g.missionLeft > 0 {
		return
	}
	g.missionLeft = 0
	if s.Session.Victory() != nil {
		return
	}

	// Remaining fighters and lasers leave with the victory
	w := s.World
	for _, e := range w.Enemies.All() {
		w.MarkDead(e)
	}
	for _, e := range w.Bullets.All() {
		w.MarkDead(e)
	}
	s.Emit(event.EventVictory, nil)
	system.PlaySound(s.Context, audio.SoundVictory)
	s.Log().Info("mission accomplished", "score", s.Session.Score(), "kills", s.Session.Kills(),
		"rank", Rank(s.Session.Score()))
}

func (s *missionSystem) shield(dt time.Duration) {
	g := s.game
	if g.cooldown > 0 {
		g.cooldown = max(0, g.cooldown-dt)
	}
	if !g.shieldActive {
		return
	}
	g.shieldLeft -= dt
	if g.shieldLeft > 0 {
		return
	}
	g.shieldLeft = 0
	g.shieldActive = false
	s.Emit(event.EventShieldChanged, &event.ShieldPayload{Active: false})
	g.alert("SHIELDS DEPLETED", 2*time.Second)
}

// target lights the indicator when a fighter sits close to the line of fire
func (s *missionSystem) target() {
	g := s.game
	w := s.World
	g.targeting = false
	tr, ok := w.Transforms.Get(g.player)
	if !ok {
		return
	}
	forward := mgl64.AnglesToQuat(tr.Rotation.X(), tr.Rotation.Y(), tr.Rotation.Z(), mgl64.XYZ).
		Rotate(mgl64.Vec3{0, 0, -1})
	for _, e := range w.Enemies.All() {
		if !w.Alive(e) {
			continue
		}
		etr, _ := w.Transforms.Get(e)
		if aimed(tr.Position, forward, etr.Position) {
			g.targeting = true
			return
		}
	}
}

// aimed reports a target within range whose bearing is within the targeting cone of forward
func aimed(from, forward, to mgl64.Vec3) bool {
	d := to.Sub(from)
	dist := d.Len()
	if dist == 0 || dist >= parameter.DogfightTargetRange {
		return false
	}
	return d.Mul(1/dist).Dot(forward) > parameter.DogfightTargetDot
}

