package screen

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// parseColor resolves a color name or a "#rgb"/"#rrggbb" hex value.
func parseColor(name string) (tcell.Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return tcell.ColorDefault, false
	}
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return tcell.ColorDefault, false
		}
		r, g, b := c.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return c, false
	}
	return c, true
}

// contrast picks black or white text for the background bg.
func contrast(bg tcell.Color) tcell.Color {
	r, g, b := bg.RGB()
	if r < 0 || g < 0 || b < 0 {
		return tcell.ColorDefault
	}
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	l, _, _ := c.Lab()
	if l > 0.5 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
