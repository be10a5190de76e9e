package dogfight

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/game"
	"github.com/lixenwraith/starfall/input"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/storage"
)

func newTestGame(t *testing.T) (*Game, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	g := New(game.Deps{
		Store: store,
		Rand:  rand.New(rand.NewPCG(3, 5)),
	})
	// No waves unless a test asks for them
	g.spawner.interval = time.Hour
	return g, store
}

func start(t *testing.T, g *Game) {
	t.Helper()
	if err := g.Session().Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
}

func ticks(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(parameter.TickInterval)
	}
}

func addFighter(g *Game, pos mgl64.Vec3, kind component.EnemyKind) core.Entity {
	w := g.Ctx.World
	t := enemyType(kind)
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Position: pos, Scale: 1})
	w.Healths.Set(e, component.NewHealth(int(parameter.DogfightEnemyHealth*t.HealthMul)))
	w.Enemies.Set(e, component.EnemyComponent{Kind: kind, Points: t.Points, Damage: parameter.DogfightEnemyDamage})
	return e
}

func countPhase(g *Game, phase engine.Phase) *int {
	n := new(int)
	g.Session().OnTransition(func(_, to engine.Phase) {
		if to == phase {
			*n++
		}
	})
	return n
}

func TestInitialState(t *testing.T) {
	g, _ := newTestGame(t)

	if g.Session().Phase() != engine.PhaseIdle {
		t.Errorf("Expected idle, got %s", g.Session().Phase())
	}
	if g.Health() != 100 || g.Shield() != 100 {
		t.Errorf("Expected hull and shield 100, got %d/%d", g.Health(), g.Shield())
	}
	if g.MissionLeft() != 180*time.Second {
		t.Errorf("Expected 3:00 on the clock, got %v", g.MissionLeft())
	}
	if g.Pilot() != parameter.DogfightDefaultPilot {
		t.Errorf("Expected default pilot, got %q", g.Pilot())
	}
	if n := g.Ctx.World.Stars.Count(); n != parameter.DogfightStars {
		t.Errorf("Expected %d stars, got %d", parameter.DogfightStars, n)
	}
}

func TestPilotFromProfile(t *testing.T) {
	store := storage.NewMemoryStore()
	if _, err := storage.SaveProfile(store, storage.Profile{Name: "Wedge", Difficulty: "hard"}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	g := New(game.Deps{Store: store})
	if g.Pilot() != "WEDGE" {
		t.Errorf("Expected pilot WEDGE, got %q", g.Pilot())
	}
	if g.difficulty != core.DifficultyHard {
		t.Errorf("Expected hard, got %s", g.difficulty)
	}
}

func TestHullDamageEndsMissionOnce(t *testing.T) {
	g, _ := newTestGame(t)
	overs := countPhase(g, engine.PhaseGameOver)
	start(t, g)
	g.shield = 0

	want := []int{65, 30, 0}
	for i, h := range want {
		g.takeDamage(parameter.DogfightRamDamage)
		if g.Health() != h {
			t.Fatalf("Hit %d: expected hull %d, got %d", i+1, h, g.Health())
		}
	}
	if g.Session().Phase() != engine.PhaseGameOver {
		t.Fatalf("Expected game over, got %s", g.Session().Phase())
	}
	g.takeDamage(parameter.DogfightRamDamage)
	if *overs != 1 {
		t.Errorf("Expected one game over transition, got %d", *overs)
	}
	if g.Health() != 0 {
		t.Errorf("Expected hull floored at 0, got %d", g.Health())
	}
}

func TestDamageRouting(t *testing.T) {
	tests := []struct {
		name       string
		shield     int
		active     bool
		wantShield int
		wantHull   int
	}{
		{"active shield blocks", 100, true, 100, 100},
		{"shield absorbs", 100, false, 65, 100},
		{"shield floored", 20, false, 0, 100},
		{"hull takes rest", 0, false, 0, 65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			start(t, g)
			g.shield = tt.shield
			g.shieldActive = tt.active

			g.takeDamage(35)

			if g.Shield() != tt.wantShield {
				t.Errorf("Expected shield %d, got %d", tt.wantShield, g.Shield())
			}
			if g.Health() != tt.wantHull {
				t.Errorf("Expected hull %d, got %d", tt.wantHull, g.Health())
			}
		})
	}
}

func TestShieldActivation(t *testing.T) {
	g, _ := newTestGame(t)
	start(t, g)

	g.shield = parameter.DogfightShieldMinimum - 1
	if g.activateShield() {
		t.Fatal("Expected refusal with low shield energy")
	}

	g.shield = 100
	if !g.activateShield() {
		t.Fatal("Expected shield to activate")
	}
	if !g.ShieldActive() || g.cooldown != parameter.DogfightShieldCooldown {
		t.Errorf("Expected active shield and full cooldown, got %v/%v", g.ShieldActive(), g.cooldown)
	}

	ticks(g, int(parameter.DogfightShieldDuration/parameter.TickInterval)+1)
	if g.ShieldActive() {
		t.Error("Expected shield to drop after its duration")
	}
	if g.activateShield() {
		t.Error("Expected refusal during cooldown")
	}
	if g.cooldown <= 0 || g.cooldown > parameter.DogfightShieldCooldown-4*time.Second {
		t.Errorf("Expected cooldown to run down, got %v", g.cooldown)
	}
}

func TestFireThrottled(t *testing.T) {
	g, _ := newTestGame(t)
	start(t, g)

	g.HandleAction(input.ActionFire)
	g.HandleAction(input.ActionFire)
	if n := g.Ctx.World.Bullets.Count(); n != 2 {
		t.Fatalf("Expected one twin volley, got %d lasers", n)
	}

	ticks(g, int(parameter.DogfightFireInterval/parameter.TickInterval)+1)
	g.HandleAction(input.ActionFire)
	if n := g.Ctx.World.Bullets.Count(); n != 4 {
		t.Errorf("Expected a second volley after the interval, got %d lasers", n)
	}
}

func TestRamCreditedOnce(t *testing.T) {
	g, _ := newTestGame(t)
	start(t, g)
	// Past pickup reach so a dropped supply is not collected in the same tick
	addFighter(g, mgl64.Vec3{0, 0, -4}, component.EnemyInterceptor)

	ticks(g, 1)

	s := g.Session()
	if s.Kills() != 1 || s.Score() != 100 {
		t.Errorf("Expected one credited kill worth 100, got kills=%d score=%d", s.Kills(), s.Score())
	}
	if g.Shield() != 100-parameter.DogfightRamDamage {
		t.Errorf("Expected shield %d after ram, got %d", 100-parameter.DogfightRamDamage, g.Shield())
	}
	if g.Ctx.World.Enemies.Count() != 0 {
		t.Errorf("Expected fighter removed, got %d", g.Ctx.World.Enemies.Count())
	}

	ticks(g, 1)
	if s.Kills() != 1 {
		t.Errorf("Expected kill counted once, got %d", s.Kills())
	}
}

func TestLaserKillPreventsRam(t *testing.T) {
	g, _ := newTestGame(t)
	start(t, g)
	addFighter(g, mgl64.Vec3{0, 0, -4}, component.EnemyInterceptor)
	spawnLaser(g.Ctx, mgl64.Vec3{0, 0, -4}, core.FactionPlayer, 40, parameter.DogfightPlayerLaserSpeed)

	ticks(g, 1)

	if g.Session().Kills() != 1 || g.Session().Score() != 100 {
		t.Errorf("Expected one kill worth 100, got kills=%d score=%d", g.Session().Kills(), g.Session().Score())
	}
	if g.Shield() != 100 {
		t.Errorf("Expected no ram damage for a shot-down fighter, got shield %d", g.Shield())
	}
}

func TestLargeHitbox(t *testing.T) {
	g, _ := newTestGame(t)
	start(t, g)
	// Laser ends its move 3 units off the emplacement, inside 3.5 only
	e := addFighter(g, mgl64.Vec3{3, 0, -30}, component.EnemyGroundTargeting)
	spawnLaser(g.Ctx, mgl64.Vec3{0, 0, -30 + parameter.DogfightPlayerLaserSpeed}, core.FactionPlayer, 25,
		parameter.DogfightPlayerLaserSpeed)

	ticks(g, 1)

	h, _ := g.Ctx.World.Healths.Get(e)
	if h.Current != 52-25 {
		t.Errorf("Expected emplacement hit to 27, got %d", h.Current)
	}
}

func TestEnemyLaserHitsPlayer(t *testing.T) {
	g, _ := newTestGame(t)
	start(t, g)
	spawnLaser(g.Ctx, mgl64.Vec3{0, 0, -2}, core.FactionEnemy, parameter.DogfightEnemyDamage,
		parameter.DogfightEnemyLaserSpeed)

	ticks(g, 1)

	if g.Shield() != 100-parameter.DogfightEnemyDamage {
		t.Errorf("Expected shield %d, got %d", 100-parameter.DogfightEnemyDamage, g.Shield())
	}
	if g.Ctx.World.Bullets.Count() != 0 {
		t.Errorf("Expected laser consumed, got %d", g.Ctx.World.Bullets.Count())
	}
}

func TestPickupsCapped(t *testing.T) {
	g, _ := newTestGame(t)
	start(t, g)
	g.shield = 70
	w := g.Ctx.World
	h, _ := w.Healths.Get(g.player)
	h.Damage(10)
	w.Healths.Set(g.player, h)

	for _, kind := range []component.PickupKind{component.PickupShield, component.PickupHealth, component.PickupAmmo} {
		e := w.CreateEntity()
		w.Transforms.Set(e, component.TransformComponent{Position: mgl64.Vec3{0, 0, -1}})
		w.Pickups.Set(e, component.PickupComponent{Kind: kind})
	}
	ticks(g, 1)

	if g.Shield() != 100 {
		t.Errorf("Expected shield capped at 100, got %d", g.Shield())
	}
	if g.Health() != 100 {
		t.Errorf("Expected hull capped at 100, got %d", g.Health())
	}
	if g.Session().Score() != parameter.DogfightPickupAmmoScore {
		t.Errorf("Expected ammo score %d, got %d", parameter.DogfightPickupAmmoScore, g.Session().Score())
	}
}

func TestNoPickupAfterFatalRam(t *testing.T) {
	g, _ := newTestGame(t)
	start(t, g)
	g.shield = 0
	w := g.Ctx.World
	h, _ := w.Healths.Get(g.player)
	h.Damage(100 - parameter.DogfightRamDamage)
	w.Healths.Set(g.player, h)

	addFighter(g, mgl64.Vec3{0, 0, -4}, component.EnemyInterceptor)
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Position: mgl64.Vec3{0, 0, -1}})
	w.Pickups.Set(e, component.PickupComponent{Kind: component.PickupHealth})

	ticks(g, 1)

	if g.Session().Phase() != engine.PhaseGameOver {
		t.Fatalf("Expected game over, got %s", g.Session().Phase())
	}
	if g.Health() != 0 {
		t.Errorf("Expected hull 0 after the ram, got %d", g.Health())
	}
	if !w.Alive(e) {
		t.Error("Expected supply left uncollected")
	}
}

func TestVictoryAtTimerEnd(t *testing.T) {
	g, store := newTestGame(t)
	wins := countPhase(g, engine.PhaseVictory)
	start(t, g)
	addFighter(g, mgl64.Vec3{10, 5, -50}, component.EnemyDefender)
	g.Session().AddScore(3200)
	g.missionLeft = 2 * parameter.TickInterval

	ticks(g, 3)

	if g.Session().Phase() != engine.PhaseVictory {
		t.Fatalf("Expected victory, got %s", g.Session().Phase())
	}
	if *wins != 1 {
		t.Errorf("Expected one victory transition, got %d", *wins)
	}
	if g.MissionLeft() != 0 {
		t.Errorf("Expected clock at zero, got %v", g.MissionLeft())
	}
	if g.Ctx.World.Enemies.Count() != 0 {
		t.Errorf("Expected fleet cleared, got %d", g.Ctx.World.Enemies.Count())
	}
	if best := storage.Int(store, parameter.KeyDogfightBest, 0); best != 3200 {
		t.Errorf("Expected best 3200 stored, got %d", best)
	}
	if Rank(g.Session().Score()) != "PILOT" {
		t.Errorf("Expected PILOT, got %s", Rank(g.Session().Score()))
	}
}

func TestEfficiency(t *testing.T) {
	tests := []struct{ kills, want int }{
		{0, 0}, {1, 4}, {12, 48}, {25, 100}, {40, 100},
	}
	for _, tt := range tests {
		if got := Efficiency(tt.kills); got != tt.want {
			t.Errorf("Efficiency(%d): expected %d, got %d", tt.kills, tt.want, got)
		}
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "ROOKIE"}, {2999, "ROOKIE"}, {3000, "PILOT"}, {5999, "PILOT"}, {6000, "VETERAN"},
		{10000, "JEDI ACE"}, {14999, "JEDI ACE"}, {15000, "JEDI LEGEND"},
	}
	for _, tt := range tests {
		if got := Rank(tt.score); got != tt.want {
			t.Errorf("Rank(%d): expected %s, got %s", tt.score, tt.want, got)
		}
	}
}

func TestSpawnCap(t *testing.T) {
	g, _ := newTestGame(t)
	g.spawner.interval = parameter.TickInterval
	start(t, g)

	ticks(g, 30)

	if n := g.Ctx.World.Enemies.Count(); n != parameter.DogfightMaxEnemies {
		t.Errorf("Expected %d fighters, got %d", parameter.DogfightMaxEnemies, n)
	}
	for _, e := range g.Ctx.World.Enemies.All() {
		tr, _ := g.Ctx.World.Transforms.Get(e)
		if tr.Position.Z() > parameter.DogfightSpawnZNear+30*0.15+0.01 {
			t.Errorf("Expected fighter spawned in the far volume, got z=%f", tr.Position.Z())
		}
	}
}

func TestTargeting(t *testing.T) {
	g, _ := newTestGame(t)
	start(t, g)
	addFighter(g, mgl64.Vec3{0, 0, -40}, component.EnemyDefender)

	ticks(g, 1)
	if !g.Targeting() {
		t.Error("Expected fighter dead ahead to be targeted")
	}

	if aimed(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{20, 0, -20}) {
		t.Error("Expected 45 degree bearing outside the cone")
	}
	if aimed(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 0, -70}) {
		t.Error("Expected target beyond range ignored")
	}
}

func TestRestartIdempotent(t *testing.T) {
	g, _ := newTestGame(t)
	start(t, g)
	g.HandleAction(input.ActionFire)
	g.takeDamage(50)
	addFighter(g, mgl64.Vec3{0, 0, -40}, component.EnemyInterceptor)
	ticks(g, 5)

	for i := 0; i < 2; i++ {
		g.Restart()
		if g.Session().Phase() != engine.PhaseIdle {
			t.Errorf("Restart %d: expected idle, got %s", i, g.Session().Phase())
		}
		if g.Health() != 100 || g.Shield() != 100 || g.MissionLeft() != parameter.DogfightMissionTime {
			t.Errorf("Restart %d: expected fresh mission, got hull=%d shield=%d left=%v",
				i, g.Health(), g.Shield(), g.MissionLeft())
		}
		w := g.Ctx.World
		if w.Enemies.Count() != 0 || w.Bullets.Count() != 0 || w.Stars.Count() != parameter.DogfightStars {
			t.Errorf("Restart %d: expected only stars, got enemies=%d lasers=%d stars=%d",
				i, w.Enemies.Count(), w.Bullets.Count(), w.Stars.Count())
		}
	}
}
