package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/echolabx/docsite/internal/logfields"
)

var envFileNames = []string{".env", ".env.local"}

// loadEnvFiles loads .env and .env.local from dir. Variables already present in
// the process environment are never overwritten. Missing files are skipped.
func loadEnvFiles(dir string) error {
	for _, name := range envFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return err
		}
		slog.Debug("Loaded environment file", logfields.Path(path))
	}
	return nil
}
