package store

import (
	"os"
	"path/filepath"
	"strings"
)

// Store addresses one on-disk state directory. The zero value is not
// usable; callers construct it with a resolved Dir.
type Store struct {
	Dir string
}

// DefaultDir resolves the store directory: MONDAYQ_DIR wins, otherwise
// ~/.mondayq.
func DefaultDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("MONDAYQ_DIR")); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mondayq"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, "mondayq.sqlite")
}
