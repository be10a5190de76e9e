package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/starfall/parameter"
)

// Canvas is a thin drawing surface over a tcell screen
// Coordinates outside the screen are silently clipped
type Canvas struct {
	screen tcell.Screen
	width  int
	height int
}

// NewCanvas wraps screen, reading its current size
func NewCanvas(screen tcell.Screen) *Canvas {
	c := &Canvas{screen: screen}
	c.Resize()
	return c
}

// Resize re-reads the screen size after a resize event
func (c *Canvas) Resize() {
	c.width, c.height = c.screen.Size()
}

// Size returns width and height in cells
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Screen exposes the underlying screen
func (c *Canvas) Screen() tcell.Screen {
	return c.screen
}

// Clear blanks the screen
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// Show flushes pending changes
func (c *Canvas) Show() {
	c.screen.Show()
}

// Put draws one rune
func (c *Canvas) Put(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.screen.SetContent(x, y, r, nil, style)
}

// Text draws s starting at x, returning the column after the last rune
func (c *Canvas) Text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		c.Put(x, y, r, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x
}

// Centered draws s horizontally centered on row y
func (c *Canvas) Centered(y int, s string, style tcell.Style) {
	c.Text((c.width-runewidth.StringWidth(s))/2, y, s, style)
}

// Fill paints a rectangle with r
func (c *Canvas) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.Put(col, row, r, style)
		}
	}
}

// Box draws a single-line frame with a filled interior
func (c *Canvas) Box(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	c.Fill(x+1, y+1, w-2, h-2, ' ', style)
	for col := x + 1; col < x+w-1; col++ {
		c.Put(col, y, tcell.RuneHLine, style)
		c.Put(col, y+h-1, tcell.RuneHLine, style)
	}
	for row := y + 1; row < y+h-1; row++ {
		c.Put(x, row, tcell.RuneVLine, style)
		c.Put(x+w-1, row, tcell.RuneVLine, style)
	}
	c.Put(x, y, tcell.RuneULCorner, style)
	c.Put(x+w-1, y, tcell.RuneURCorner, style)
	c.Put(x, y+h-1, tcell.RuneLLCorner, style)
	c.Put(x+w-1, y+h-1, tcell.RuneLRCorner, style)
}

// Bar draws a horizontal gauge of width cells filled to value/max
// Returns the number of filled cells
func (c *Canvas) Bar(x, y, width, value, maxValue int, fill tcell.Color) int {
	filled := BarCells(value, maxValue, width)
	on := tcell.StyleDefault.Foreground(fill)
	off := tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	for i := 0; i < width; i++ {
		if i < filled {
			c.Put(x+i, y, '█', on)
		} else {
			c.Put(x+i, y, '░', off)
		}
	}
	return filled
}

// BarCells maps value/max onto width cells, rounding down
func BarCells(value, maxValue, width int) int {
	if maxValue <= 0 || value <= 0 {
		return 0
	}
	if value >= maxValue {
		return width
	}
	return value * width / maxValue
}

// HealthColor applies the gauge color policy: above 60% green, above 30% yellow, otherwise red
func HealthColor(percent int) tcell.Color {
	switch {
	case percent > parameter.HUDHealthGood:
		return tcell.ColorGreen
	case percent > parameter.HUDHealthWarn:
		return tcell.ColorYellow
	default:
		return tcell.ColorRed
	}
}

// FormatClock renders a duration as mm:ss, rounding partial seconds up for countdowns
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
