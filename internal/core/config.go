package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the platform and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height in characters (terminal) or pixels (window)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Assets resolves texture names. Nil means every texture is a placeholder.
	Assets AssetSource

	// HighScore is the persisted high score read once at startup.
	HighScore int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameSeconds returns the duration of one tick in seconds.
func (c RuntimeConfig) FrameSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// Texture resolves a texture through the configured asset source,
// falling back to a placeholder of the given size.
func (c RuntimeConfig) Texture(name string, size int) Texture {
	if c.Assets == nil {
		return PlaceholderTexture(name, size)
	}
	return c.Assets.Texture(name)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventItemCollected EventKind = iota
	EventPowerUp
)

// Event is a side effect the platform should realize, such as a sound.
type Event struct {
	Kind  EventKind
	Sound string // Sound name to play, empty for none
	Pos   Vec2
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
