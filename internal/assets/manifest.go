// Package assets loads the arcade's sprites and sound effects from disk.
// Anything missing or undecodable is replaced by a stand-in and logged;
// loading never fails.
package assets

import "github.com/vovakirdan/grid-arcade/internal/core"

// TextureSpec describes one sprite: its file and its terminal look.
type TextureSpec struct {
	Name  string
	File  string
	Glyph rune
	Color core.Color
}

// SoundSpec describes one sound effect file.
type SoundSpec struct {
	Name string
	File string
}

// Textures is the fixed sprite manifest.
var Textures = []TextureSpec{
	{Name: "pacman_w", File: "pacman_w.png", Glyph: 'v', Color: core.ColorBrightYellow},
	{Name: "pacman_a", File: "pacman_a.png", Glyph: '>', Color: core.ColorBrightYellow},
	{Name: "pacman_s", File: "pacman_s.png", Glyph: '^', Color: core.ColorBrightYellow},
	{Name: "pacman_d", File: "pacman_d.png", Glyph: '<', Color: core.ColorBrightYellow},
	{Name: "player", File: "player.png", Glyph: '@', Color: core.ColorBrightCyan},
	{Name: "player_alt", File: "player_alt.png", Glyph: 'ǝ', Color: core.ColorBrightCyan},
	{Name: "coin", File: "coin.png", Glyph: '$', Color: core.ColorYellow},
	{Name: "patrol", File: "patrol.png", Glyph: 'X', Color: core.ColorBrightRed},
	{Name: "chaser", File: "chaser.png", Glyph: 'M', Color: core.ColorRed},
	{Name: "speed", File: "speed.png", Glyph: '»', Color: core.ColorBrightGreen},
	{Name: "shield", File: "shield.png", Glyph: '◊', Color: core.ColorBrightBlue},
	{Name: "freeze", File: "freeze.png", Glyph: '*', Color: core.ColorCyan},
}

// Sounds is the fixed sound manifest.
var Sounds = []SoundSpec{
	{Name: "coin", File: "coin.wav"},
	{Name: "powerup", File: "powerup.wav"},
}

// textureSpec returns the manifest entry for name.
func textureSpec(name string) (TextureSpec, bool) {
	for _, spec := range Textures {
		if spec.Name == name {
			return spec, true
		}
	}
	return TextureSpec{}, false
}
