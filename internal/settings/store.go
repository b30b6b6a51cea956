package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"quizreminder/internal/logger"
)

const appDirName = "QuizReminder"

// Store persists Settings as JSON at a fixed path.
type Store struct {
	path string
	log  logger.Logger
}

func NewStore(path string, log logger.Logger) *Store {
	return &Store{path: path, log: log}
}

// DefaultPath resolves the per-user settings file location, e.g.
// ~/Library/Application Support/QuizReminder/settings.json on macOS or
// ~/.config/QuizReminder/settings.json on Linux.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appDirName, "settings.json"), nil
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted settings. A missing, unreadable, or corrupt file
// yields Default(); corruption is never an error, only a warning. Keys absent
// from the file keep their default values.
func (s *Store) Load() Settings {
	loaded := Default()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warning("SettingsStore", "settings file unreadable, using defaults", map[string]interface{}{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		return loaded
	}

	if err := json.Unmarshal(data, &loaded); err != nil {
		s.log.Warning("SettingsStore", "settings file corrupt, using defaults", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return Default()
	}

	return loaded.Normalize()
}

// Save writes the settings atomically: temp file in the target directory,
// then rename over the destination. A failure leaves any previous file
// intact and is reported to the caller as a non-fatal error.
func (s *Store) Save(cfg Settings) error {
	cfg = cfg.Normalize()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "settings-*.json")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close settings file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace settings file: %w", err)
	}

	s.log.Debug("SettingsStore", "settings saved", map[string]interface{}{
		"path":     s.path,
		"duration": cfg.Duration,
	})
	return nil
}
