package core

import "errors"

// Recoverable failure classes. None of them is fatal: each has a safe fallback
// (placeholder asset, zero high score, no movement).
var (
	// ErrAssetLoad reports an image or sound that could not be loaded.
	ErrAssetLoad = errors.New("asset load failed")

	// ErrSaveFileCorrupt reports a high score file that does not hold an integer.
	ErrSaveFileCorrupt = errors.New("save file corrupt")

	// ErrDegenerateVector reports an attempt to normalize a zero-length vector.
	ErrDegenerateVector = errors.New("degenerate vector")
)
