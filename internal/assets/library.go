package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/grid-arcade/internal/audio"
	"github.com/vovakirdan/grid-arcade/internal/core"
)

// Library holds everything loaded at startup until Close.
type Library struct {
	dir      string
	tileSize int
	logger   *log.Logger

	textures map[string]core.Texture
	images   map[string]image.Image
	sounds   map[string]*beep.Buffer
	failures []error
	closed   bool
}

// Load reads the manifest from dir. Missing sprites become tile-sized
// placeholders and missing sounds become synthesized tones; each fallback
// is logged as a warning wrapping core.ErrAssetLoad.
func Load(dir string, tileSize int, logger *log.Logger) *Library {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	if tileSize <= 0 {
		tileSize = 40
	}

	l := &Library{
		dir:      dir,
		tileSize: tileSize,
		logger:   logger,
		textures: make(map[string]core.Texture, len(Textures)),
		images:   make(map[string]image.Image, len(Textures)),
		sounds:   make(map[string]*beep.Buffer, len(Sounds)),
	}

	for _, spec := range Textures {
		l.loadTexture(spec)
	}
	for _, spec := range Sounds {
		l.loadSound(spec)
	}

	logger.Debug("assets loaded",
		"dir", dir,
		"textures", len(l.textures),
		"sounds", len(l.sounds),
		"fallbacks", len(l.failures),
	)
	return l
}

func (l *Library) loadTexture(spec TextureSpec) {
	tex := core.Texture{
		Name:  spec.Name,
		W:     l.tileSize,
		H:     l.tileSize,
		Glyph: spec.Glyph,
		Color: spec.Color,
	}

	img, err := decodePNG(filepath.Join(l.dir, spec.File))
	if err != nil {
		l.fail("texture", spec.Name, err)
		tex.Placeholder = true
		l.textures[spec.Name] = tex
		return
	}

	b := img.Bounds()
	tex.W, tex.H = b.Dx(), b.Dy()
	l.textures[spec.Name] = tex
	l.images[spec.Name] = img
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

func (l *Library) loadSound(spec SoundSpec) {
	buf, err := decodeWAV(filepath.Join(l.dir, spec.File))
	if err != nil {
		l.fail("sound", spec.Name, err)
		buf = audio.BufferOf(audio.FallbackTone(spec.Name))
	}
	l.sounds[spec.Name] = buf
}

func decodeWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	// The decoder closes f along with the stream.
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != audio.SampleRate {
		s = beep.Resample(4, format.SampleRate, audio.SampleRate, s)
	}
	buf := audio.BufferOf(s)
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

func (l *Library) fail(kind, name string, cause error) {
	err := fmt.Errorf("assets: %s %s: %w: %w", kind, name, core.ErrAssetLoad, cause)
	l.failures = append(l.failures, err)
	l.logger.Warn("using fallback asset", "kind", kind, "name", name, "error", cause)
}

// Texture returns the named sprite. Names outside the manifest get the
// generic placeholder.
func (l *Library) Texture(name string) core.Texture {
	if tex, ok := l.textures[name]; ok {
		return tex
	}
	return core.PlaceholderTexture(name, l.tileSize)
}

// Image returns the decoded pixels of a sprite, if its file loaded.
func (l *Library) Image(name string) (image.Image, bool) {
	img, ok := l.images[name]
	return img, ok
}

// Sound returns the named sound buffer or nil.
func (l *Library) Sound(name string) *beep.Buffer {
	return l.sounds[name]
}

// RegisterSounds hands every sound to the manager.
func (l *Library) RegisterSounds(sm *audio.SoundManager) {
	for name, buf := range l.sounds {
		sm.Register(name, buf)
	}
}

// Failures returns every fallback taken during Load.
func (l *Library) Failures() []error {
	return l.failures
}

// Close releases decoded pixels and samples. Texture metadata stays
// available so a late Render cannot fail.
func (l *Library) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	clear(l.images)
	clear(l.sounds)
	l.logger.Debug("assets released", "dir", l.dir)
	return nil
}

var _ core.AssetSource = (*Library)(nil)
