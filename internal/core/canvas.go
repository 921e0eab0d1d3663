package core

import "math"

// Texture is a handle to a loaded sprite. Games only need its size for
// collision; renderers use the name (pixel) or glyph (terminal).
type Texture struct {
	Name        string
	W, H        int
	Glyph       rune
	Color       Color
	Placeholder bool // True when the image could not be loaded
}

// Size returns the texture dimensions as floats.
func (t Texture) Size() (float64, float64) {
	return float64(t.W), float64(t.H)
}

// PlaceholderTexture returns the texture used when an asset is missing.
func PlaceholderTexture(name string, size int) Texture {
	return Texture{
		Name:        name,
		W:           size,
		H:           size,
		Glyph:       '?',
		Color:       ColorMagenta,
		Placeholder: true,
	}
}

// AssetSource resolves texture names to handles.
type AssetSource interface {
	Texture(name string) Texture
}

// Canvas is the drawing surface a game renders onto. Coordinates are world
// pixels; implementations decide how they map to the output device.
type Canvas interface {
	Clear(bg Color)
	DrawTexture(tex Texture, x, y float64)
	DrawRectLines(x, y, w, h float64, c Color)
	DrawCircle(x, y, radius float64, c Color, alpha float64)
	DrawText(text string, x, y float64, c Color)
}

// CellCanvas projects world pixels onto a character Screen.
// With the default 20x40 cell size, one 40px tile covers two columns and one row.
type CellCanvas struct {
	screen *Screen
	cellW  float64
	cellH  float64
}

// NewCellCanvas wraps a screen. cellW and cellH are world pixels per character.
func NewCellCanvas(screen *Screen, cellW, cellH float64) *CellCanvas {
	if cellW <= 0 {
		cellW = 20
	}
	if cellH <= 0 {
		cellH = 40
	}
	return &CellCanvas{screen: screen, cellW: cellW, cellH: cellH}
}

// Screen returns the underlying character buffer.
func (c *CellCanvas) Screen() *Screen {
	return c.screen
}

// cell converts a world position to a character cell.
func (c *CellCanvas) cell(x, y float64) (int, int) {
	return int(math.Floor(x / c.cellW)), int(math.Floor(y / c.cellH))
}

// span converts a world length to a cell count, at least one.
func span(length, cell float64) int {
	n := int(math.Round(length / cell))
	if n < 1 {
		return 1
	}
	return n
}

// Clear blanks the screen. Terminal background is left to the terminal.
func (c *CellCanvas) Clear(_ Color) {
	c.screen.Clear()
}

// DrawTexture fills the cells covered by the texture with its glyph.
func (c *CellCanvas) DrawTexture(tex Texture, x, y float64) {
	cx, cy := c.cell(x, y)
	w := span(float64(tex.W), c.cellW)
	h := span(float64(tex.H), c.cellH)
	glyph := tex.Glyph
	if glyph == 0 {
		glyph = '?'
	}
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.screen.SetColored(cx+dx, cy+dy, glyph, tex.Color)
		}
	}
}

// DrawRectLines outlines a rectangle. Rectangles too small to box in
// character space are marked by a dot at their top-left cell.
func (c *CellCanvas) DrawRectLines(x, y, w, h float64, col Color) {
	cx, cy := c.cell(x, y)
	cw := span(w, c.cellW)
	ch := span(h, c.cellH)
	if cw < 3 || ch < 3 {
		c.screen.SetColored(cx, cy, '·', col)
		return
	}
	c.screen.DrawBoxColored(NewRect(cx, cy, cw, ch), col)
}

// DrawCircle marks the cell under the circle center, picking a lighter
// glyph as alpha fades.
func (c *CellCanvas) DrawCircle(x, y, _ float64, col Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	cx, cy := c.cell(x, y)
	glyph := '·'
	switch {
	case alpha > 0.66:
		glyph = '●'
	case alpha > 0.33:
		glyph = '•'
	}
	c.screen.SetColored(cx, cy, glyph, col)
}

// DrawText writes text starting at the cell under (x, y).
func (c *CellCanvas) DrawText(text string, x, y float64, col Color) {
	cx, cy := c.cell(x, y)
	c.screen.DrawTextColored(cx, cy, text, col)
}

var _ Canvas = (*CellCanvas)(nil)
