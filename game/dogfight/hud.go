package dogfight

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfall/component"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/game"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/render"
	"github.com/lixenwraith/starfall/system"
)

var (
	fighterSprite = render.Sprite{
		Rows:  []string{"=╤=", "╡X╞"},
		Style: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	}
	shieldedSprite = render.Sprite{
		Rows:  []string{"(=╤=)", "(╡X╞)"},
		Style: tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true),
	}
	playerLaserStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	enemyLaserStyle  = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
)

// enemyGlyph draws interceptors as |o|, defenders heavier and emplacements as a block
func enemyGlyph(k component.EnemyKind, near bool) (string, tcell.Style) {
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	switch k {
	case component.EnemyDefender:
		style = style.Foreground(tcell.ColorLightSlateGray)
		if near {
			return "<o>", style.Bold(true)
		}
		return "o", style
	case component.EnemyGroundTargeting:
		style = style.Foreground(tcell.ColorDarkOrange)
		if near {
			return "[#]", style.Bold(true)
		}
		return "#", style
	default:
		if near {
			return "|o|", style.Bold(true)
		}
		return "o", style
	}
}

func (g *Game) renderWorld(c *render.Canvas) {
	w := g.Ctx.World
	for _, p := range game.ProjectSorted(w, g.Camera, w.Enemies.All()) {
		en, _ := w.Enemies.Get(p.Entity)
		glyph, style := enemyGlyph(en.Kind, p.Depth < 25)
		c.Text(p.Col-len([]rune(glyph))/2, p.Row, glyph, style)
	}
	for _, p := range game.ProjectSorted(w, g.Camera, w.Pickups.All()) {
		pk, _ := w.Pickups.Get(p.Entity)
		glyph, style := pickupGlyph(pk.Kind)
		c.Put(p.Col, p.Row, glyph, style)
	}
	for _, p := range game.ProjectSorted(w, g.Camera, w.Bullets.All()) {
		b, _ := w.Bullets.Get(p.Entity)
		// Lasers are long bolts along z, shown as vertical dashes
		if b.Faction == core.FactionPlayer {
			c.Put(p.Col, p.Row, '¦', playerLaserStyle)
		} else {
			c.Put(p.Col, p.Row, '|', enemyLaserStyle)
		}
	}
	if tr, ok := w.Transforms.Get(g.player); ok {
		if col, row, _, visible := g.Camera.Project(tr.Position); visible {
			if g.shieldActive {
				shieldedSprite.Draw(c, col, row)
			} else {
				fighterSprite.Draw(c, col, row)
			}
		}
	}
}

func pickupGlyph(k component.PickupKind) (rune, tcell.Style) {
	switch k {
	case component.PickupHealth:
		return '+', tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	case component.PickupShield:
		return '◊', tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	default:
		return '$', tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	}
}

// shieldColor shades the shield gauge in blues instead of the health policy
func shieldColor(percent int) tcell.Color {
	switch {
	case percent > parameter.HUDHealthGood:
		return tcell.ColorDodgerBlue
	case percent > parameter.HUDHealthWarn:
		return tcell.ColorSteelBlue
	default:
		return tcell.ColorNavy
	}
}

// timerColor turns the mission clock yellow in the last minute and red in the last 30 seconds
func timerColor(left time.Duration) tcell.Color {
	switch {
	case left < 30*time.Second:
		return tcell.ColorRed
	case left < 60*time.Second:
		return tcell.ColorYellow
	default:
		return tcell.ColorWhite
	}
}

func (g *Game) shieldStatus() (string, tcell.Color) {
	switch {
	case g.shieldActive:
		return "SHIELDS ACTIVE", tcell.ColorDodgerBlue
	case g.cooldown > 0:
		return "SHIELDS COOLING " + render.FormatClock(g.cooldown), tcell.ColorGray
	case g.shield < parameter.DogfightShieldMinimum:
		return "SHIELDS LOW", tcell.ColorRed
	default:
		return "SHIELDS READY [E]", tcell.ColorLime
	}
}

func (g *Game) renderHUD(c *render.Canvas) {
	s := g.Session()
	label := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	value := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	width, height := c.Size()

	c.Text(1, 0, g.pilot, tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true))
	x := c.Text(1, 1, "SCORE ", label)
	x = c.Text(x, 1, fmt.Sprintf("%d", s.Score()), value)
	x = c.Text(x+2, 1, "KILLS ", label)
	c.Text(x, 1, fmt.Sprintf("%d", s.Kills()), value)

	h, _ := g.Ctx.World.Healths.Get(g.player)
	x = c.Text(1, 2, "HULL   ", label)
	c.Bar(x, 2, parameter.HUDBarWidth, h.Current, h.Max, render.HealthColor(h.Percent()))
	c.Text(x+parameter.HUDBarWidth+1, 2, fmt.Sprintf("%d%%", h.Percent()), value)

	x = c.Text(1, 3, "SHIELD ", label)
	c.Bar(x, 3, parameter.HUDBarWidth, g.shield, parameter.DogfightPlayerShield, shieldColor(g.shield))
	c.Text(x+parameter.HUDBarWidth+1, 3, fmt.Sprintf("%d%%", g.shield), value)

	status, color := g.shieldStatus()
	c.Text(1, 4, status, tcell.StyleDefault.Foreground(color))

	clock := "MISSION " + render.FormatClock(g.missionLeft)
	c.Text(width-len(clock)-1, 0, clock, tcell.StyleDefault.Foreground(timerColor(g.missionLeft)).Bold(true))

	if !s.Running() {
		return
	}
	cross := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	if g.targeting {
		cross = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	cx, cy := width/2, height/2
	c.Put(cx, cy, '+', cross)
	c.Put(cx-2, cy, '-', cross)
	c.Put(cx+2, cy, '-', cross)
	if g.targeting {
		c.Centered(cy+1, "LOCKED", cross)
	}

	if msg, ok := system.ActiveAlert(g.Ctx.World); ok {
		c.Centered(height/4, msg, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}
}

func (g *Game) overlay(phase engine.Phase) (render.Overlay, bool) {
	s := g.Session()
	switch phase {
	case engine.PhaseIdle:
		return render.Overlay{
			Title: "STAR WARS DOGFIGHT",
			Lines: []string{
				"Pilot: " + g.pilot,
				"Difficulty: " + g.difficulty.String(),
				fmt.Sprintf("Best score: %d", g.best),
				"",
				"Survive " + render.FormatClock(parameter.DogfightMissionTime) + " against the enemy fleet",
				"Arrows/WASD fly   SPACE fire   E shield",
			},
			Hint: "ENTER launch   Q menu",
		}, true
	case engine.PhasePaused:
		return render.Overlay{
			Title: "PAUSED",
			Lines: []string{
				fmt.Sprintf("Score: %d", s.Score()),
				fmt.Sprintf("Kills: %d", s.Kills()),
				"Time left: " + render.FormatClock(g.missionLeft),
			},
			Hint: "P resume   Q menu",
		}, true
	case engine.PhaseGameOver:
		return render.Overlay{
			Title: "MISSION FAILED",
			Lines: []string{
				fmt.Sprintf("Score: %d", s.Score()),
				fmt.Sprintf("Enemies destroyed: %d", s.Kills()),
				"Time survived: " + render.FormatClock(parameter.DogfightMissionTime-g.missionLeft),
				"Rank: " + Rank(s.Score()),
			},
			Hint:  "ENTER retry   Q menu",
			Color: tcell.ColorRed,
		}, true
	case engine.PhaseVictory:
		return render.Overlay{
			Title: "MISSION ACCOMPLISHED",
			Lines: []string{
				fmt.Sprintf("Score: %d", s.Score()),
				fmt.Sprintf("Enemies destroyed: %d", s.Kills()),
				fmt.Sprintf("Efficiency: %d%%", Efficiency(s.Kills())),
				"Rank: " + Rank(s.Score()),
				fmt.Sprintf("Best score: %d", max(g.best, s.Score())),
			},
			Hint:  "ENTER fly again   Q menu",
			Color: tcell.ColorLime,
		}, true
	}
	return render.Overlay{}, false
}
