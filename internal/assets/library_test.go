package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/grid-arcade/internal/audio"
	"github.com/vovakirdan/grid-arcade/internal/core"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func writeWAV(t *testing.T, path string, rate beep.SampleRate) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, audio.Tone(rate, 440, 50*time.Millisecond, false), format))
}

func quietLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf), &buf
}

func TestLoadEmptyDirFallsBack(t *testing.T) {
	logger, out := quietLogger()
	lib := Load(t.TempDir(), 40, logger)
	defer lib.Close()

	for _, spec := range Textures {
		tex := lib.Texture(spec.Name)
		assert.True(t, tex.Placeholder, spec.Name)
		assert.Equal(t, 40, tex.W, spec.Name)
		assert.Equal(t, 40, tex.H, spec.Name)
		assert.Equal(t, spec.Glyph, tex.Glyph, "placeholder keeps terminal glyph for %s", spec.Name)

		_, ok := lib.Image(spec.Name)
		assert.False(t, ok)
	}
	for _, spec := range Sounds {
		buf := lib.Sound(spec.Name)
		require.NotNil(t, buf, spec.Name)
		assert.Positive(t, buf.Len(), "synthesized tone for %s", spec.Name)
	}

	require.Len(t, lib.Failures(), len(Textures)+len(Sounds))
	for _, err := range lib.Failures() {
		assert.True(t, errors.Is(err, core.ErrAssetLoad), err.Error())
	}
	assert.Contains(t, out.String(), "using fallback asset")
}

func TestLoadDecodesFiles(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "coin.png"), 32, 24)
	writeWAV(t, filepath.Join(dir, "coin.wav"), audio.SampleRate)

	logger, _ := quietLogger()
	lib := Load(dir, 40, logger)

	coin := lib.Texture("coin")
	assert.False(t, coin.Placeholder)
	assert.Equal(t, 32, coin.W)
	assert.Equal(t, 24, coin.H)
	assert.Equal(t, '$', coin.Glyph)

	img, ok := lib.Image("coin")
	require.True(t, ok)
	assert.Equal(t, 32, img.Bounds().Dx())

	buf := lib.Sound("coin")
	require.NotNil(t, buf)
	assert.InDelta(t, audio.SampleRate.N(50*time.Millisecond), buf.Len(), 2)

	// Everything else fell back.
	assert.Len(t, lib.Failures(), len(Textures)+len(Sounds)-2)
}

func TestLoadResamplesSound(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, "powerup.wav"), beep.SampleRate(22050))

	logger, _ := quietLogger()
	lib := Load(dir, 40, logger)

	buf := lib.Sound("powerup")
	require.NotNil(t, buf)
	assert.Equal(t, audio.SampleRate, buf.Format().SampleRate)
	assert.InDelta(t, audio.SampleRate.N(50*time.Millisecond), buf.Len(), 50)
}

func TestCorruptPNGFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "player.png"), []byte("not a png"), 0o644))

	logger, _ := quietLogger()
	lib := Load(dir, 40, logger)

	assert.True(t, lib.Texture("player").Placeholder)
}

func TestUnknownTexture(t *testing.T) {
	logger, _ := quietLogger()
	lib := Load(t.TempDir(), 20, logger)

	tex := lib.Texture("dragon")
	assert.True(t, tex.Placeholder)
	assert.Equal(t, '?', tex.Glyph)
	assert.Equal(t, 20, tex.W)
}

func TestRegisterSoundsAndClose(t *testing.T) {
	logger, _ := quietLogger()
	lib := Load(t.TempDir(), 40, logger)

	sm := audio.NewSoundManager()
	lib.RegisterSounds(sm)
	assert.True(t, sm.Has("coin"))
	assert.True(t, sm.Has("powerup"))

	require.NoError(t, lib.Close())
	require.NoError(t, lib.Close())
	assert.Nil(t, lib.Sound("coin"))
	assert.Equal(t, "coin", lib.Texture("coin").Name)
}
