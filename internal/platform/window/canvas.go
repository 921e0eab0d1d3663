// Package window runs games in a desktop window using Ebitengine.
package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// ImageSource supplies decoded sprite images by texture name.
// *assets.Library satisfies it.
type ImageSource interface {
	Image(name string) (image.Image, bool)
}

// Debug font cell size used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

const maxCachedLabels = 256

// Canvas draws world coordinates 1:1 onto an ebiten image.
type Canvas struct {
	dst     *ebiten.Image
	source  ImageSource
	sprites map[string]*ebiten.Image
	labels  map[string]*ebiten.Image
}

// NewCanvas creates a canvas that resolves sprite images through source.
// A nil source draws every texture as a placeholder.
func NewCanvas(source ImageSource) *Canvas {
	return &Canvas{
		source:  source,
		sprites: make(map[string]*ebiten.Image),
		labels:  make(map[string]*ebiten.Image),
	}
}

// Target sets the image drawn onto for the current frame.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Clear fills the frame with the background color.
func (c *Canvas) Clear(bg core.Color) {
	c.dst.Fill(bg.RGBA())
}

// sprite returns the uploaded image for a texture, or nil when only a
// placeholder is available.
func (c *Canvas) sprite(tex core.Texture) *ebiten.Image {
	if tex.Placeholder || c.source == nil {
		return nil
	}
	if img, ok := c.sprites[tex.Name]; ok {
		return img
	}
	var img *ebiten.Image
	if src, ok := c.source.Image(tex.Name); ok {
		img = ebiten.NewImageFromImage(src)
	}
	c.sprites[tex.Name] = img
	return img
}

// DrawTexture draws the sprite scaled to the texture size. Missing sprites
// become a magenta square with the texture glyph.
func (c *Canvas) DrawTexture(tex core.Texture, x, y float64) {
	img := c.sprite(tex)
	if img == nil {
		vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(tex.W), float32(tex.H),
			core.ColorMagenta.RGBA(), false)
		if tex.Glyph != 0 {
			gx := x + float64(tex.W-glyphW)/2
			gy := y + float64(tex.H-glyphH)/2
			c.DrawText(string(tex.Glyph), gx, gy, core.ColorBrightWhite)
		}
		return
	}

	op := &ebiten.DrawImageOptions{}
	b := img.Bounds()
	if b.Dx() > 0 && b.Dy() > 0 {
		op.GeoM.Scale(float64(tex.W)/float64(b.Dx()), float64(tex.H)/float64(b.Dy()))
	}
	op.GeoM.Translate(x, y)
	c.dst.DrawImage(img, op)
}

// DrawRectLines strokes a one pixel rectangle outline.
func (c *Canvas) DrawRectLines(x, y, w, h float64, col core.Color) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), 1, col.RGBA(), false)
}

// DrawCircle fills a circle with the color faded to alpha.
func (c *Canvas) DrawCircle(x, y, radius float64, col core.Color, alpha float64) {
	if alpha <= 0 || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(radius), col.Faded(alpha), true)
}

// DrawText prints with the debug font, tinted to col. Rendered labels are
// cached since HUD text rarely changes between frames.
func (c *Canvas) DrawText(text string, x, y float64, col core.Color) {
	if text == "" {
		return
	}
	label, ok := c.labels[text]
	if !ok {
		if len(c.labels) >= maxCachedLabels {
			for k, img := range c.labels {
				img.Deallocate()
				delete(c.labels, k)
			}
		}
		label = ebiten.NewImage(len([]rune(text))*glyphW+2, glyphH)
		ebitenutil.DebugPrintAt(label, text, 0, 0)
		c.labels[text] = label
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col.RGBA())
	c.dst.DrawImage(label, op)
}

var _ core.Canvas = (*Canvas)(nil)
