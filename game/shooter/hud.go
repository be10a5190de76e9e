package shooter

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/game"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/render"
	"github.com/lixenwraith/starfall/storage"
)

var (
	shipSprite = render.Sprite{
		Rows:  []string{" ^ ", "/A\\"},
		Style: tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	}
	droneStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	bulletStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

func (g *Game) renderWorld(c *render.Canvas) {
	w := g.Ctx.World
	for _, p := range game.ProjectSorted(w, g.Camera, w.Enemies.All()) {
		tr, _ := w.Transforms.Get(p.Entity)
		glyph := '◆'
		if int(tr.Rotation.Y()*4)%2 == 1 {
			glyph = '◇'
		}
		c.Put(p.Col, p.Row, glyph, droneStyle)
	}
	for _, p := range game.ProjectSorted(w, g.Camera, w.Bullets.All()) {
		c.Put(p.Col, p.Row, '•', bulletStyle)
	}
	if tr, ok := w.Transforms.Get(g.player); ok {
		if col, row, _, visible := g.Camera.Project(tr.Position); visible {
			shipSprite.Draw(c, col, row)
		}
	}
}

func (g *Game) renderHUD(c *render.Canvas) {
	s := g.Session()
	label := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	value := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

	x := c.Text(1, 0, "SCORE ", label)
	c.Text(x, 0, fmt.Sprintf("%d", s.Score()), value)

	h, _ := g.Ctx.World.Healths.Get(g.player)
	x = c.Text(1, 1, "HULL  ", label)
	c.Bar(x, 1, parameter.HUDBarWidth, h.Current, h.Max, render.HealthColor(h.Percent()))
	c.Text(x+parameter.HUDBarWidth+1, 1, fmt.Sprintf("%d%%", h.Percent()), value)

	width, _ := c.Size()
	stats := fmt.Sprintf("KILLS %d  TIME %s", s.Kills(), survival(s))
	c.Text(width-len(stats)-1, 0, stats, label)
}

// survival formats elapsed game time as mm:ss, truncated
func survival(s *engine.Session) string {
	secs := int(s.Elapsed() / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func storageBest(g *Game) int {
	return storage.Int(g.Store, parameter.KeyShooterBest, parameter.DefaultBestScore)
}

func upper(s string) string {
	return strings.ToUpper(s)
}
