package config

import (
	"os"
	"path/filepath"
)

// FindEnv searches upward from the working directory for the nearest
// file with the given name. An empty name means .env.
func FindEnv(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	startDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	curr := startDir
	for {
		candidate := filepath.Join(curr, filename)
		if _, err = os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(curr)
		if parent == curr {
			break
		}
		curr = parent
	}
	return "", os.ErrNotExist
}
