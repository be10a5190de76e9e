package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Overlay is a centered modal panel for start, pause and end screens
type Overlay struct {
	Title string
	Lines []string
	Hint  string
	Color tcell.Color
}

// Render draws the panel sized to its content
func (o Overlay) Render(c *Canvas) {
	w, h := c.Size()

	inner := runewidth.StringWidth(o.Title)
	for _, l := range o.Lines {
		inner = max(inner, runewidth.StringWidth(l))
	}
	inner = max(inner, runewidth.StringWidth(o.Hint))
	boxW := min(inner+6, w)
	boxH := min(len(o.Lines)+6, h)
	x := (w - boxW) / 2
	y := (h - boxH) / 2

	color := o.Color
	if color == tcell.ColorDefault {
		color = tcell.ColorGold
	}
	frame := tcell.StyleDefault.Foreground(color).Background(tcell.ColorBlack)
	c.Box(x, y, boxW, boxH, frame)

	c.Centered(y+1, o.Title, frame.Bold(true))
	body := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, l := range o.Lines {
		c.Centered(y+3+i, l, body)
	}
	if o.Hint != "" {
		c.Centered(y+boxH-2, o.Hint, tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack))
	}
}
