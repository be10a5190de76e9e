package tether

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/game"
	"github.com/lixenwraith/starfall/input"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/render"
	"github.com/lixenwraith/starfall/storage"
)

func newTestGame(t *testing.T, stage int, store storage.KV) *Game {
	t.Helper()
	if store == nil {
		store = storage.NewMemoryStore()
	}
	g, err := New(stage, game.Deps{Store: store, Rand: rand.New(rand.NewPCG(1, 2))})
	if err != nil {
		t.Fatalf("New(%d) failed: %v", stage, err)
	}
	return g
}

func start(t *testing.T, g *Game) {
	t.Helper()
	if err := g.Session().Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
}

// align snaps the piece onto the current hole
func align(g *Game) {
	w := g.Ctx.World
	pc, _ := w.Pieces.Get(g.piece)
	pc.Pose = g.Hole()
	w.Pieces.Set(g.piece, pc)
}

// untilWall ticks until the approached wall is resolved or the run ends
func untilWall(t *testing.T, g *Game) {
	t.Helper()
	wall := g.wall
	for i := 0; i < 2000; i++ {
		g.Step(parameter.TickInterval)
		if g.wall != wall || !g.Session().Running() {
			return
		}
	}
	t.Fatal("Expected the wall to arrive")
}

func TestNewStageChecks(t *testing.T) {
	store := storage.NewMemoryStore()
	if _, err := New(5, game.Deps{Store: store}); !errors.Is(err, ErrStageLocked) {
		t.Errorf("Expected locked stage 5, got %v", err)
	}
	if _, err := New(42, game.Deps{Store: store}); !errors.Is(err, ErrUnknownStage) {
		t.Errorf("Expected unknown stage 42, got %v", err)
	}
	if _, err := New(parameter.TetherInfinityStage, game.Deps{Store: store}); err != nil {
		t.Errorf("Expected infinity always open, got %v", err)
	}
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t, 1, nil)

	if g.Counter() != 5 {
		t.Errorf("Expected objective 5, got %d", g.Counter())
	}
	if g.Speed() != 0.1*parameter.TetherSpeedScale {
		t.Errorf("Expected speed %f, got %f", 0.1*parameter.TetherSpeedScale, g.Speed())
	}
	if !g.Piece().Fits(g.Hole()) {
		t.Errorf("Expected warm-up hole to match the piece, piece=%+v hole=%+v", g.Piece(), g.Hole())
	}
	tr, _ := g.Ctx.World.Transforms.Get(g.wall)
	if tr.Position.X() != parameter.TetherFirstWall {
		t.Errorf("Expected first wall at %f, got %f", parameter.TetherFirstWall, tr.Position.X())
	}
}

func TestWallPassCountsDown(t *testing.T) {
	g := newTestGame(t, 1, nil)
	start(t, g)
	first := g.Hole()

	untilWall(t, g)

	if !g.Session().Running() {
		t.Fatalf("Expected pass, got %s", g.Session().Phase())
	}
	if g.Counter() != 4 || g.Session().Score() != 1 {
		t.Errorf("Expected 4 left and score 1, got %d/%d", g.Counter(), g.Session().Score())
	}
	p := g.Piece()
	if p.Lane != first.Lane || p.Level != first.Level || p.Shape != g.Hole().Shape {
		t.Errorf("Expected piece to keep placement and take the new shape, got %+v (hole %+v)", p, g.Hole())
	}
	tr, _ := g.Ctx.World.Transforms.Get(g.wall)
	if tr.Position.X() > parameter.TetherWallStart || tr.Position.X() < parameter.TetherWallStart-1 {
		t.Errorf("Expected new wall near %f, got %f", parameter.TetherWallStart, tr.Position.X())
	}
	if g.Ctx.World.Walls.Count() != 2 {
		t.Errorf("Expected passed wall fading alongside the new one, got %d walls", g.Ctx.World.Walls.Count())
	}
}

func TestCrashEndsRun(t *testing.T) {
	g := newTestGame(t, 1, nil)
	overs := 0
	g.Session().OnTransition(func(_, to engine.Phase) {
		if to == engine.PhaseGameOver {
			overs++
		}
	})
	start(t, g)

	w := g.Ctx.World
	pc, _ := w.Pieces.Get(g.piece)
	pc.Pose.Lane = g.Hole().Lane + parameter.TetherLaneStep
	w.Pieces.Set(g.piece, pc)

	untilWall(t, g)
	g.Step(parameter.TickInterval)

	if g.Session().Phase() != engine.PhaseGameOver || overs != 1 {
		t.Errorf("Expected one game over, got %s after %d", g.Session().Phase(), overs)
	}
	if g.Counter() != 5 {
		t.Errorf("Expected counter untouched, got %d", g.Counter())
	}
}

func TestStageClearUnlocksNext(t *testing.T) {
	store := storage.NewMemoryStore()
	g := newTestGame(t, 1, store)
	start(t, g)

	for i := 0; i < 5; i++ {
		align(g)
		untilWall(t, g)
	}

	if g.Session().Phase() != engine.PhaseVictory {
		t.Fatalf("Expected stage cleared, got %s", g.Session().Phase())
	}
	if p := storage.NewProgress(store); p.Stage() != 2 {
		t.Errorf("Expected stage 2 unlocked, got %d", p.Stage())
	}

	g.Restart()
	if g.Stage() != 2 || g.Counter() != 10 {
		t.Errorf("Expected stage 2 with 10 walls, got stage %d counter %d", g.Stage(), g.Counter())
	}
	if g.Session().Phase() != engine.PhaseIdle {
		t.Errorf("Expected idle after restart, got %s", g.Session().Phase())
	}
}

func TestInfinityCountsUpAndRecordsBest(t *testing.T) {
	store := storage.NewMemoryStore()
	g := newTestGame(t, parameter.TetherInfinityStage, store)
	start(t, g)
	base := g.Speed()

	for i := 0; i < 3; i++ {
		align(g)
		untilWall(t, g)
	}
	if g.Counter() != 3 {
		t.Errorf("Expected 3 passes, got %d", g.Counter())
	}
	want := base + 3*parameter.TetherInfinityStep*parameter.TetherSpeedScale
	if diff := g.Speed() - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected speed %f, got %f", want, g.Speed())
	}

	w := g.Ctx.World
	pc, _ := w.Pieces.Get(g.piece)
	pc.Pose.Lane = g.Hole().Lane + parameter.TetherLaneStep
	w.Pieces.Set(g.piece, pc)
	untilWall(t, g)
	g.Step(parameter.TickInterval)

	if g.Session().Phase() != engine.PhaseGameOver {
		t.Fatalf("Expected crash, got %s", g.Session().Phase())
	}
	if best := storage.NewProgress(store).Best(); best != 3 {
		t.Errorf("Expected best 3, got %d", best)
	}
}

func TestInfinitySpeedCap(t *testing.T) {
	g := newTestGame(t, parameter.TetherInfinityStage, nil)
	start(t, g)
	capped := parameter.TetherInfinityCap*parameter.TetherSpeedScale + 0.01
	g.speed = capped

	align(g)
	untilWall(t, g)

	if g.Speed() != capped {
		t.Errorf("Expected speed held at %f, got %f", capped, g.Speed())
	}
}

func TestAllowanceFor(t *testing.T) {
	tests := []struct {
		stage int
		want  Allowance
	}{
		{1, Allowance{Lateral: true}},
		{2, Allowance{Lateral: true}},
		{3, Allowance{Lateral: true, Rotation: true}},
		{6, Allowance{Lateral: true, Rotation: true}},
		{7, Allowance{Lateral: true, Vertical: true, Rotation: true}},
		{100, Allowance{Lateral: true, Vertical: true, Rotation: true}},
	}
	for _, tt := range tests {
		if got := AllowanceFor(tt.stage); got != tt.want {
			t.Errorf("Stage %d: expected %+v, got %+v", tt.stage, tt.want, got)
		}
	}
}

func TestMove(t *testing.T) {
	lateral := Allowance{Lateral: true}
	all := Allowance{Lateral: true, Vertical: true, Rotation: true}
	center := component.Pose{Shape: component.ShapeT}

	tests := []struct {
		name  string
		pose  component.Pose
		act   input.Action
		allow Allowance
		want  component.Pose
		moved bool
	}{
		{"right steps down lanes", center, input.ActionMoveRight, lateral, component.Pose{Shape: component.ShapeT, Lane: -2}, true},
		{"left steps up lanes", center, input.ActionMoveLeft, lateral, component.Pose{Shape: component.ShapeT, Lane: 2}, true},
		{"edge holds", component.Pose{Lane: 6}, input.ActionMoveLeft, lateral, component.Pose{Lane: 6}, false},
		{"vertical gated", center, input.ActionMoveUp, lateral, center, false},
		{"vertical allowed", center, input.ActionMoveDown, all, component.Pose{Shape: component.ShapeT, Level: -2}, true},
		{"rotation gated", center, input.ActionRotateCW, lateral, center, false},
		{"ccw wraps", center, input.ActionRotateCCW, all, component.Pose{Shape: component.ShapeT, Turns: 3}, true},
		{"s folds half turns", component.Pose{Shape: component.ShapeS, Turns: 1}, input.ActionRotateCW, all, component.Pose{Shape: component.ShapeS}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, moved := Move(tt.pose, tt.act, tt.allow)
			if got != tt.want || moved != tt.moved {
				t.Errorf("Expected %+v moved=%v, got %+v moved=%v", tt.want, tt.moved, got, moved)
			}
		})
	}
}

func TestNextHoleRespectsAllowance(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	prev := component.Pose{}
	for i := 0; i < 200; i++ {
		h := NextHole(r, prev, Allowance{Lateral: true})
		if h.Level != 0 || h.Turns != 0 {
			t.Fatalf("Expected level and rotation kept, got %+v", h)
		}
		if h.Lane == parameter.TetherLanes[len(parameter.TetherLanes)-1] {
			t.Fatalf("Expected last lane never drawn, got %+v", h)
		}
	}
	for i := 0; i < 200; i++ {
		h := NextHole(r, prev, Allowance{Lateral: true, Vertical: true, Rotation: true})
		if h.Turns >= h.Shape.Symmetry() {
			t.Fatalf("Expected turns folded by symmetry, got %+v", h)
		}
		if h.Level == parameter.TetherLevels[len(parameter.TetherLevels)-1] {
			t.Fatalf("Expected last level never drawn, got %+v", h)
		}
	}
}

func TestInputIgnoredUnlessRunning(t *testing.T) {
	g := newTestGame(t, 1, nil)
	before := g.Piece()
	g.HandleAction(input.ActionMoveLeft)
	if g.Piece() != before {
		t.Errorf("Expected idle piece to stay, got %+v", g.Piece())
	}

	start(t, g)
	g.HandleGesture(input.GestureSwipeRight)
	if g.Piece().Lane != before.Lane-parameter.TetherLaneStep {
		t.Errorf("Expected swipe to step the lane, got %+v", g.Piece())
	}
}

func TestVerticalSwipesFollowStage(t *testing.T) {
	tests := []struct {
		stage int
		want  bool
	}{
		{1, false},
		{6, false},
		{7, true},
		{parameter.TetherInfinityStage, true},
	}
	for _, tt := range tests {
		g := newTestGame(t, tt.stage, nil)
		if got := g.VerticalSwipes(); got != tt.want {
			t.Errorf("Stage %d: expected vertical swipes %v, got %v", tt.stage, tt.want, got)
		}
	}
}

func TestDrawShowsStageBanner(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	s.SetSize(100, 30)
	defer s.Fini()

	g := newTestGame(t, 1, nil)
	g.Draw(render.NewCanvas(s))

	w, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := s.GetContent(x, y)
			b.WriteRune(r)
		}
	}
	text := b.String()
	for _, want := range []string{"STAGE 1", "Objective: 5 Points", "WALLS LEFT"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q on screen", want)
		}
	}
}
