package ultimate

// Phase selects which update branch runs each frame.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	// The phases below have no way in yet; Step leaves them untouched.
	PhasePaused
	PhaseGameOver
	PhaseShop
)

// String returns the phase name shown on screen.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "MENU"
	case PhasePlaying:
		return "PLAYING"
	case PhasePaused:
		return "PAUSED"
	case PhaseGameOver:
		return "GAME_OVER"
	case PhaseShop:
		return "SHOP"
	default:
		return "UNKNOWN"
	}
}
