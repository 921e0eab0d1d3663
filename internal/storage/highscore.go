package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// ReadHighScore reads the high score file: a single whitespace-delimited
// integer. A missing file is a zero score with no error. A file that does
// not parse yields zero and an error wrapping core.ErrSaveFileCorrupt, so
// callers can log it and carry on. The file is never written.
func ReadHighScore(path string) (int, error) {
	path, err := expandHome(path)
	if err != nil {
		return 0, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("storage: cannot read high score %s: %w", path, err)
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("storage: high score %s is empty: %w", path, core.ErrSaveFileCorrupt)
	}

	score, err := strconv.Atoi(fields[0])
	if err != nil || score < 0 {
		return 0, fmt.Errorf("storage: high score %s: %q is not a score: %w", path, fields[0], core.ErrSaveFileCorrupt)
	}
	return score, nil
}
