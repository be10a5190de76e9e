package render

import "github.com/gdamore/tcell/v2"

// DepthGlyph picks a star glyph by distance, nearer is brighter
func DepthGlyph(depth float64) (rune, tcell.Style) {
	switch {
	case depth < 25:
		return '*', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	case depth < 60:
		return '+', tcell.StyleDefault.Foreground(tcell.ColorSilver)
	case depth < 110:
		return '·', tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return '.', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
}

// Sprite is a small multi-cell glyph pattern centered on its anchor
type Sprite struct {
	Rows  []string
	Style tcell.Style
}

// Draw places the sprite centered at col, row; spaces are transparent
func (s Sprite) Draw(c *Canvas, col, row int) {
	top := row - len(s.Rows)/2
	for dy, line := range s.Rows {
		runes := []rune(line)
		left := col - len(runes)/2
		for dx, r := range runes {
			if r != ' ' {
				c.Put(left+dx, top+dy, r, s.Style)
			}
		}
	}
}
