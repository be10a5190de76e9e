// Package game holds the runtime shared by every arcade game: the Game contract, the common
// base wiring context, scheduler, renderers and audio, and the terminal loop
package game

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/starfall/audio"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/input"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/render"
	"github.com/lixenwraith/starfall/storage"
	"github.com/lixenwraith/starfall/system"
)

// Game is one playable title driven by Run
type Game interface {
	Name() string
	Session() *engine.Session
	Context() *engine.Context
	// HandleAction receives discrete gameplay actions while the session runs
	HandleAction(a input.Action)
	// HandleGesture receives classified pointer gestures while the session runs
	HandleGesture(g input.Gesture)
	// Frame runs the ticks due since the previous frame by the scheduler clock
	Frame() int
	// Step runs the ticks covered by dt, for tests and replays
	Step(dt time.Duration) int
	Draw(c *render.Canvas)
	// Restart returns the game to its initial idle state
	Restart()
	Close()
}

// SwipeFilter is implemented by games whose current rules lock vertical swipes
type SwipeFilter interface {
	VerticalSwipes() bool
}

// Deps are the services a game is built with; nil fields get silent defaults
type Deps struct {
	Audio  audio.Player
	Store  storage.KV
	Logger *slog.Logger
	Time   engine.TimeProvider
	Rand   *rand.Rand
	Input  time.Duration // Key hold window
	Frame  time.Duration // Render cadence
}

func (d Deps) withDefaults() Deps {
	if d.Audio == nil {
		d.Audio = &audio.Silent{}
	}
	if d.Store == nil {
		d.Store = storage.NewMemoryStore()
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}
	if d.Time == nil {
		d.Time = engine.NewMonotonicTimeProvider()
	}
	if d.Input <= 0 {
		d.Input = parameter.KeyHoldWindow
	}
	if d.Frame <= 0 {
		d.Frame = parameter.FrameInterval
	}
	return d
}

// OverlayFunc returns the panel for a non-running phase, or false to draw none
type OverlayFunc func(phase engine.Phase) (render.Overlay, bool)

// Base implements the parts of Game every title shares
// Titles embed it and add their systems, renderers and Restart
type Base struct {
	Ctx       *engine.Context
	Scheduler *engine.Scheduler
	Renderers *render.Orchestrator
	Camera    *render.Camera
	Audio     audio.Player
	Store     storage.KV
	Deps      Deps

	overlay OverlayFunc
}

// NewBase creates a context for name with the shared audio and cull systems registered
func NewBase(name string, deps Deps) *Base {
	deps = deps.withDefaults()
	ctx := engine.NewContext(name, deps.Rand, deps.Logger)
	b := &Base{
		Ctx:       ctx,
		Scheduler: engine.NewScheduler(ctx, deps.Time),
		Renderers: render.NewOrchestrator(),
		Camera:    render.NewCamera(defaultEye, defaultTarget, defaultUp),
		Audio:     deps.Audio,
		Store:     deps.Store,
		Deps:      deps,
	}
	ctx.World.AddSystem(system.NewAudioSystem(ctx, deps.Audio))
	ctx.World.AddSystem(system.NewCullSystem(ctx))

	ctx.Session.OnTransition(b.onTransition)
	b.Renderers.Register(render.RendererFunc(b.renderOverlay), parameter.RenderOverlay)
	return b
}

func (b *Base) onTransition(from, to engine.Phase) {
	b.Ctx.Log().Debug("phase changed", "from", from.String(), "to", to.String(),
		"score", b.Ctx.Session.Score())
	switch to {
	case engine.PhaseRunning:
		if from == engine.PhasePaused {
			b.Audio.SetMusicPaused(false)
		} else {
			b.Audio.StartMusic()
		}
	case engine.PhasePaused:
		b.Audio.SetMusicPaused(true)
	case engine.PhaseGameOver, engine.PhaseVictory, engine.PhaseIdle:
		b.Audio.StopMusic()
	}
}

// SetOverlay installs the per-phase panel provider
func (b *Base) SetOverlay(fn OverlayFunc) {
	b.overlay = fn
}

func (b *Base) renderOverlay(c *render.Canvas) {
	if b.overlay == nil || b.Ctx.Session.Running() {
		return
	}
	if o, ok := b.overlay(b.Ctx.Session.Phase()); ok {
		o.Render(c)
	}
}

func (b *Base) Name() string              { return b.Ctx.Session.Game() }
func (b *Base) Session() *engine.Session  { return b.Ctx.Session }
func (b *Base) Context() *engine.Context  { return b.Ctx }
func (b *Base) Frame() int                { return b.Scheduler.Frame() }
func (b *Base) Step(dt time.Duration) int { return b.Scheduler.Advance(dt) }

// Draw prepares the camera for the canvas size and renders every layer
func (b *Base) Draw(c *render.Canvas) {
	b.Camera.Prepare(c.Size())
	b.Renderers.RenderFrame(c)
}

// HandleGesture ignores gestures; titles with touch controls override it
func (b *Base) HandleGesture(input.Gesture) {}

// Reset clears every entity and returns the session to idle
// Callers re-seed their initial entities afterwards
func (b *Base) Reset() {
	if b.Ctx.Session.Phase() == engine.PhasePaused {
		_ = b.Ctx.Session.Transition(engine.PhaseIdle)
	}
	b.Ctx.Reset()
	b.Audio.StopMusic()
}

// Close stops audio owned by the session
func (b *Base) Close() {
	b.Audio.StopMusic()
}

// RecordBest raises the stored best score under key, logging storage failures
func (b *Base) RecordBest(key string) bool {
	raised, err := storage.RaiseInt(b.Store, key, b.Ctx.Session.Score(), parameter.DefaultBestScore)
	if err != nil {
		b.Ctx.Log().Warn("best score not saved", "key", key, "error", err)
	}
	return raised
}
