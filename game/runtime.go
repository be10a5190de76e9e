package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/input"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/render"
)

// Exit tells the caller where to go after a game loop ends
type Exit uint8

const (
	ExitToMenu Exit = iota
	ExitQuit
)

func (e Exit) String() string {
	if e == ExitQuit {
		return "quit"
	}
	return "menu"
}

// controller turns terminal events into session control, held input and gameplay actions
// Only the loop goroutine touches it
type controller struct {
	game   Game
	deps   Deps
	keys   *input.KeyTable
	state  *input.State
	swipe  *input.SwipeDetector
	canvas *render.Canvas
}

func newController(g Game, deps Deps, canvas *render.Canvas) *controller {
	return &controller{
		game:   g,
		deps:   deps,
		keys:   input.DefaultKeyTable(),
		state:  input.NewState(deps.Input),
		swipe:  input.NewSwipeDetector(parameter.SwipeMinDistance, parameter.SwipeMaxDuration),
		canvas: canvas,
	}
}

// handle processes one event; done is true when the loop must end with exit
func (c *controller) handle(ev tcell.Event) (exit Exit, done bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.action(c.keys.Resolve(ev))
	case *tcell.EventMouse:
		c.mouse(ev)
	case *tcell.EventResize:
		c.canvas.Resize()
		c.canvas.Screen().Sync()
	}
	return ExitToMenu, false
}

func (c *controller) action(a input.Action) (Exit, bool) {
	session := c.game.Session()
	switch a {
	case input.ActionNone:
	case input.ActionExit:
		return ExitQuit, true
	case input.ActionToggleMute:
		c.deps.Audio.ToggleMute()
	case input.ActionConfirm:
		c.confirm()
	case input.ActionPause:
		if err := session.TogglePause(); err == nil {
			c.state.Clear()
		}
	case input.ActionQuit:
		if !session.Running() {
			c.game.Close()
			return ExitToMenu, true
		}
		_ = session.TogglePause()
	default:
		if !session.Running() {
			return ExitToMenu, false
		}
		if a.Continuous() {
			c.state.Press(a, c.deps.Time.Now())
		}
		c.game.HandleAction(a)
	}
	return ExitToMenu, false
}

// confirm starts from idle and restarts from an end panel
func (c *controller) confirm() {
	session := c.game.Session()
	switch {
	case session.Phase() == engine.PhaseIdle:
	case session.Phase().Terminal():
		c.game.Restart()
	default:
		return
	}
	if err := session.Start(); err != nil {
		c.deps.Logger.Debug("start ignored", "error", err)
	}
}

func (c *controller) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	now := c.deps.Time.Now()
	if ev.Buttons()&tcell.Button1 != 0 {
		if !c.swipe.Active() {
			c.swipe.Begin(x, y, now)
		}
		return
	}
	if !c.swipe.Active() {
		return
	}
	if f, ok := c.game.(SwipeFilter); ok {
		c.swipe.SetVertical(f.VerticalSwipes())
	}
	width, _ := c.canvas.Size()
	if g, ok := c.swipe.End(x, y, now, width); ok && c.game.Session().Running() {
		c.game.HandleGesture(g)
	}
}

// tick publishes the held-input snapshot, advances the simulation and draws
func (c *controller) tick() {
	ctx := c.game.Context()
	ctx.Input = c.state.Snapshot(c.deps.Time.Now())
	c.game.Frame()
	c.game.Draw(c.canvas)
}

// Run drives g on screen until the player leaves or ctx is cancelled
// The caller owns screen initialisation and finalisation; finalising unblocks the poller
func Run(ctx context.Context, screen tcell.Screen, g Game, deps Deps) Exit {
	deps = deps.withDefaults()
	screen.EnableMouse()
	defer screen.DisableMouse()

	canvas := render.NewCanvas(screen)
	ctrl := newController(g, deps, canvas)

	events := make(chan tcell.Event, parameter.InputChannelSize)
	done := make(chan struct{})
	defer close(done)

	// Polling blocks on the terminal, so it lives on its own goroutine
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(deps.Frame)
	defer ticker.Stop()

	deps.Logger.Info("game loop started", "game", g.Name(), "session", g.Session().ID())
	for {
		select {
		case <-ctx.Done():
			g.Close()
			return ExitQuit
		case ev := <-events:
			if exit, stop := ctrl.handle(ev); stop {
				deps.Logger.Info("game loop ended", "game", g.Name(), "exit", exit.String(),
					"score", g.Session().Score())
				return exit
			}
		case <-ticker.C:
			ctrl.tick()
		}
	}
}
