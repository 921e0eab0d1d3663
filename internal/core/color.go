package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// palette holds the RGB equivalent used by pixel renderers.
var palette = map[Color]color.RGBA{
	ColorDefault:       {R: 245, G: 245, B: 245, A: 255},
	ColorRed:           {R: 190, G: 33, B: 55, A: 255},
	ColorGreen:         {R: 0, G: 158, B: 47, A: 255},
	ColorYellow:        {R: 253, G: 249, B: 0, A: 255},
	ColorBlue:          {R: 0, G: 121, B: 241, A: 255},
	ColorMagenta:       {R: 200, G: 122, B: 255, A: 255},
	ColorCyan:          {R: 0, G: 188, B: 212, A: 255},
	ColorWhite:         {R: 255, G: 255, B: 255, A: 255},
	ColorBrightRed:     {R: 230, G: 41, B: 55, A: 255},
	ColorBrightGreen:   {R: 0, G: 228, B: 48, A: 255},
	ColorBrightYellow:  {R: 255, G: 203, B: 0, A: 255},
	ColorBrightBlue:    {R: 102, G: 191, B: 255, A: 255},
	ColorBrightMagenta: {R: 255, G: 109, B: 194, A: 255},
	ColorBrightCyan:    {R: 128, G: 255, B: 255, A: 255},
	ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	ColorOrange:        {R: 255, G: 161, B: 0, A: 255},
	ColorGray:          {R: 130, G: 130, B: 130, A: 255},
	ColorDarkGray:      {R: 40, G: 40, B: 40, A: 255},
}

// RGBA returns the color as an opaque RGBA value.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[ColorDefault]
}

// Faded returns the color with its alpha channel scaled by alpha (0..1).
// The result is premultiplied, as image/color expects.
func (c Color) Faded(alpha float64) color.RGBA {
	a := ClampF(alpha, 0, 1)
	rgba := c.RGBA()
	return color.RGBA{
		R: uint8(float64(rgba.R) * a),
		G: uint8(float64(rgba.G) * a),
		B: uint8(float64(rgba.B) * a),
		A: uint8(255 * a),
	}
}
