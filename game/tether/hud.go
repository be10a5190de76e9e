package tether

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/render"
)

// Wall half extent in cells
const wallHalf = 8

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorGray)
	fadingStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray).Background(tcell.ColorBlack)
	edgeStyle   = tcell.StyleDefault.Foreground(tcell.ColorLime)
)

func shapeColor(s component.Shape) tcell.Color {
	switch s {
	case component.ShapeT:
		return tcell.ColorYellow
	case component.ShapeL:
		return tcell.ColorRed
	default:
		return tcell.ColorBlue
	}
}

type cellKey struct{ y, z int }

func poseCells(p component.Pose) map[cellKey]bool {
	out := make(map[cellKey]bool)
	for _, c := range p.Shape.Cells(p.Turns) {
		out[cellKey{p.Lane + c.Y, p.Level + c.Z}] = true
	}
	return out
}

// fillCell paints the projected square of the unit cell centered on (x, y, z) in the wall plane
func (g *Game) fillCell(c *render.Canvas, x float64, y, z int, r rune, style tcell.Style) {
	col0, row0, d0, _ := g.Camera.Project(mgl64.Vec3{x, float64(y) + 0.5, float64(z) + 0.5})
	col1, row1, d1, _ := g.Camera.Project(mgl64.Vec3{x, float64(y) - 0.5, float64(z) - 0.5})
	if d0 <= 1 || d1 <= 1 {
		return
	}
	width, height := c.Size()
	left, right := max(min(col0, col1), 0), min(max(col0, col1), width-1)
	top, bottom := max(min(row0, row1), 0), min(max(row0, row1), height-1)
	if right < left || bottom < top {
		return
	}
	c.Fill(left, top, max(right-left, 1), max(bottom-top, 1), r, style)
}

func (g *Game) drawWall(c *render.Canvas, e core.Entity) {
	w := g.Ctx.World
	wc, _ := w.Walls.Get(e)
	tr, _ := w.Transforms.Get(e)
	if tr.Position.X() <= g.Camera.Eye.X()+1 {
		return
	}
	hole := poseCells(wc.Hole)
	style := wallStyle
	if wc.Fading {
		style = fadingStyle
	}
	for z := wallHalf; z >= -wallHalf; z-- {
		for y := wallHalf; y >= -wallHalf; y-- {
			if hole[cellKey{y, z}] {
				if !wc.Fading {
					g.fillCell(c, tr.Position.X(), y, z, '·', edgeStyle)
				}
				continue
			}
			g.fillCell(c, tr.Position.X(), y, z, '▒', style)
		}
	}
}

func (g *Game) drawPiece(c *render.Canvas) {
	p := g.Piece()
	style := tcell.StyleDefault.Foreground(shapeColor(p.Shape)).Background(shapeColor(p.Shape))
	for k := range poseCells(p) {
		g.fillCell(c, 0, k.y, k.z, '█', style)
	}
}

// renderWorld paints walls far to near with the piece at its depth between them
func (g *Game) renderWorld(c *render.Canvas) {
	w := g.Ctx.World
	walls := w.Walls.All()
	x := func(e core.Entity) float64 {
		tr, _ := w.Transforms.Get(e)
		return tr.Position.X()
	}
	sort.Slice(walls, func(i, j int) bool { return x(walls[i]) > x(walls[j]) })

	drawn := false
	for _, e := range walls {
		if !drawn && x(e) <= 0 {
			g.drawPiece(c)
			drawn = true
		}
		g.drawWall(c, e)
	}
	if !drawn {
		g.drawPiece(c)
	}
}

func (g *Game) renderHUD(c *render.Canvas) {
	label := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	value := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	width, _ := c.Size()

	if Infinity(g.stage) {
		x := c.Text(1, 0, "INFINITY  SCORE ", label)
		x = c.Text(x, 0, fmt.Sprintf("%d", g.counter), value)
		c.Text(x+2, 0, fmt.Sprintf("BEST %d", max(g.progress.Best(), g.counter)), label)
	} else {
		x := c.Text(1, 0, fmt.Sprintf("STAGE %d  WALLS LEFT ", g.stage), label)
		c.Text(x, 0, fmt.Sprintf("%d", g.counter), value)
	}

	tr, ok := g.Ctx.World.Transforms.Get(g.wall)
	if !ok {
		return
	}
	// Approach gauge fills as the wall closes in
	span := parameter.TetherWallStart - parameter.TetherCheckX
	closed := int((parameter.TetherWallStart - tr.Position.X()) / span * 100)
	x := c.Text(1, 1, "WALL  ", label)
	c.Bar(x, 1, parameter.HUDBarWidth, closed, 100, render.HealthColor(100-closed))

	info := fmt.Sprintf("SPEED %.1f", g.speed/parameter.TetherSpeedScale*100)
	c.Text(width-len(info)-1, 0, info, label)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func (g *Game) overlay(phase engine.Phase) (render.Overlay, bool) {
	switch phase {
	case engine.PhaseIdle:
		controls := "Arrows/WASD or drag to move"
		if g.allow.Rotation {
			controls += "   X/Z or tap to turn"
		}
		if Infinity(g.stage) {
			return render.Overlay{
				Title: "INFINITY MODE",
				Lines: []string{
					fmt.Sprintf("Best score: %d", g.progress.Best()),
					"",
					"Objective: Do not crash",
					"Motion: " + g.allow.Motion(),
					"Rotation: " + yesNo(g.allow.Rotation),
					"",
					controls,
				},
				Hint: "ENTER start   Q menu",
			}, true
		}
		return render.Overlay{
			Title: fmt.Sprintf("STAGE %d", g.stage),
			Lines: []string{
				fmt.Sprintf("Objective: %d Points", g.settings.Objective),
				"Motion: " + g.allow.Motion(),
				"Rotation: " + yesNo(g.allow.Rotation),
				"",
				controls,
			},
			Hint: "ENTER start   Q menu",
		}, true
	case engine.PhasePaused:
		return render.Overlay{Title: "PAUSED", Hint: "P resume   Q menu"}, true
	case engine.PhaseGameOver:
		line := "You crashed into the wall"
		if Infinity(g.stage) {
			line = fmt.Sprintf("You scored %d points!", g.counter)
		}
		return render.Overlay{
			Title: "GAME OVER!",
			Lines: []string{line},
			Hint:  "ENTER play again   Q menu",
			Color: tcell.ColorRed,
		}, true
	case engine.PhaseVictory:
		hint := "ENTER next stage   Q menu"
		if g.stage >= parameter.TetherFinalStage {
			hint = "ENTER replay   Q menu"
		}
		lines := []string{fmt.Sprintf("You finished stage %d", g.stage)}
		if g.stage >= parameter.TetherFinalStage {
			lines = append(lines, "Infinity mode unlocked")
		}
		return render.Overlay{Title: "WELL DONE!", Lines: lines, Hint: hint, Color: tcell.ColorLime}, true
	}
	return render.Overlay{}, false
}
