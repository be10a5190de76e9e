package game

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/render"
)

var (
	defaultEye    = mgl64.Vec3{0, 5, 15}
	defaultTarget = mgl64.Vec3{0, 0, 0}
	defaultUp     = mgl64.Vec3{0, 1, 0}
)

// StarRenderer draws the starfield with depth-graded glyphs
func StarRenderer(w *engine.World, cam *render.Camera) render.Renderer {
	return render.RendererFunc(func(c *render.Canvas) {
		for _, e := range w.Stars.All() {
			tr, ok := w.Transforms.Get(e)
			if !ok {
				continue
			}
			col, row, depth, visible := cam.Project(tr.Position)
			if !visible {
				continue
			}
			r, style := render.DepthGlyph(depth)
			c.Put(col, row, r, style.Background(tcell.ColorBlack))
		}
	})
}

// EffectRenderer draws explosions, particles, flashes and popups; alerts belong to the HUD
func EffectRenderer(w *engine.World, cam *render.Camera) render.Renderer {
	return render.RendererFunc(func(c *render.Canvas) {
		for _, e := range w.Effects.All() {
			fx, _ := w.Effects.Get(e)
			if fx.Kind == component.EffectAlert {
				continue
			}
			tr, ok := w.Transforms.Get(e)
			if !ok {
				continue
			}
			col, row, _, visible := cam.Project(tr.Position)
			if !visible {
				continue
			}
			style := tcell.StyleDefault.Foreground(fadeColor(fx)).Background(tcell.ColorBlack)
			switch fx.Kind {
			case component.EffectExplosion:
				r := '*'
				if fx.Remaining() < 0.5 {
					r = '+'
				}
				c.Put(col, row, r, style.Bold(true))
			case component.EffectParticle:
				c.Put(col, row, particleGlyph(fx.Remaining()), style)
			case component.EffectHitFlash:
				c.Put(col, row, '#', style.Bold(true))
			case component.EffectShieldBurst:
				render.Sprite{Rows: []string{"( )"}, Style: style}.Draw(c, col, row)
			case component.EffectPopup:
				c.Text(col-len(fx.Text)/2, row, fx.Text, style.Bold(true))
			}
		}
	})
}

func particleGlyph(remaining float64) rune {
	switch {
	case remaining > 0.66:
		return '*'
	case remaining > 0.33:
		return '+'
	default:
		return '.'
	}
}

func fadeColor(fx component.EffectComponent) tcell.Color {
	if fx.Remaining() < 0.25 {
		return tcell.ColorDarkGray
	}
	return fx.Color
}

// Projected is an entity placed on the grid, used for painter ordering
type Projected struct {
	Entity core.Entity
	Col    int
	Row    int
	Depth  float64
}

// ProjectSorted projects entities through cam and orders them far to near
func ProjectSorted(w *engine.World, cam *render.Camera, entities []core.Entity) []Projected {
	out := make([]Projected, 0, len(entities))
	for _, e := range entities {
		tr, ok := w.Transforms.Get(e)
		if !ok {
			continue
		}
		col, row, depth, visible := cam.Project(tr.Position)
		if !visible {
			continue
		}
		out = append(out, Projected{Entity: e, Col: col, Row: row, Depth: depth})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Depth > out[j].Depth })
	return out
}
