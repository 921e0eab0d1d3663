// Package audio plays the arcade's short sound effects through the
// system speaker. Every operation degrades to a no-op when no audio
// device is available.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the rate all registered sounds are stored at.
const SampleRate = beep.SampleRate(44100)

// SoundManager owns the speaker and the registered effect buffers.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sounds      map[string]*beep.Buffer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		sounds: make(map[string]*beep.Buffer),
	}
}

// Initialize opens the speaker. On error the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Register stores a decoded sound under name, replacing any previous one.
// Registering works before Initialize so sounds can be loaded first.
func (sm *SoundManager) Register(name string, buf *beep.Buffer) {
	if buf == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sounds[name] = buf
}

// Has reports whether a sound is registered under name.
func (sm *SoundManager) Has(name string) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	_, ok := sm.sounds[name]
	return ok
}

// SetMuted silences or restores playback.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Play starts the named sound. Unknown names are ignored.
func (sm *SoundManager) Play(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	buf, ok := sm.sounds[name]
	if !ok {
		return
	}

	// The mixer is read by the speaker goroutine.
	speaker.Lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// Cleanup stops all sounds. Registered buffers are kept.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no way to close the speaker; clearing the mixer is enough
	// to leave no audio behind.
	sm.initialized = false
}

// BufferOf drains a streamer into a buffer at SampleRate.
func BufferOf(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(Format())
	buf.Append(s)
	return buf
}

// Format is the sample format of registered sounds.
func Format() beep.Format {
	return beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}
}
