// Package settings holds the per-user configuration: where relocated
// save data lives and which entries to skip. The file sits in the XDG
// config directory as TOML.
package settings

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/saveli-project/saveli/pkg/errors"
	"github.com/saveli-project/saveli/pkg/logging"
)

const settingsFile = "saveli/settings.toml"

// Settings is the process-wide user configuration. DryRun is a runtime
// flag set from the command line, never persisted.
type Settings struct {
	StoragePath string   `toml:"storage_path"`
	Ignored     []string `toml:"ignored,omitempty"`

	DryRun bool `toml:"-"`

	path string
}

// Load reads the settings file, returning defaults when it is missing
// or unreadable. A fresh install has no settings yet, so load never
// fails; commands that need a storage path validate it themselves.
func Load() *Settings {
	logger := logging.GetLogger("settings")

	s := &Settings{}

	path, err := xdg.ConfigFile(settingsFile)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to locate the settings file, using defaults")
		return s
	}
	s.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug().Str("path", path).Msg("No settings file yet, using defaults")
		return s
	}

	if err := toml.Unmarshal(data, s); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Failed to parse the settings file, using defaults")
		return &Settings{path: path}
	}

	return s
}

// Save writes the settings back to the config directory.
func (s *Settings) Save() error {
	if s.path == "" {
		path, err := xdg.ConfigFile(settingsFile)
		if err != nil {
			return errors.Wrap(err, errors.ErrSettingsSave, "failed to locate the settings file")
		}
		s.path = path
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, errors.ErrSettingsSave, "failed to serialize settings")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrSettingsSave, "failed to create %s", filepath.Dir(s.path))
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrSettingsSave, "failed to write settings to %s", s.path)
	}

	return nil
}

// SetStoragePath validates, absolutizes, creates and persists the
// storage root.
func (s *Settings) SetStoragePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "you must specify a path")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to determine the working directory")
		}
		path = filepath.Join(cwd, path)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrSettingsSave, "failed to create the storage path %s", path)
	}

	s.StoragePath = path
	return s.Save()
}

// RequireStoragePath fails unless an absolute storage path is
// configured. Every batch and catalog command calls this first.
func (s *Settings) RequireStoragePath() error {
	if !filepath.IsAbs(s.StoragePath) {
		return errors.Newf(errors.ErrStoragePathUnset,
			"the configured storage path isn't absolute (%q), run set-storage-path first", s.StoragePath)
	}
	return nil
}

// IsIgnored reports whether the entry id is in the ignore set.
func (s *Settings) IsIgnored(id string) bool {
	for _, ignored := range s.Ignored {
		if ignored == id {
			return true
		}
	}
	return false
}

// Ignore adds an entry id to the ignore set and persists.
func (s *Settings) Ignore(id string) error {
	if id == "" {
		return errors.New(errors.ErrInvalidInput, "the id must not be empty")
	}
	if s.IsIgnored(id) {
		return nil
	}
	s.Ignored = append(s.Ignored, id)
	return s.Save()
}

// Heed removes an entry id from the ignore set and persists.
func (s *Settings) Heed(id string) error {
	if id == "" {
		return errors.New(errors.ErrInvalidInput, "the id must not be empty")
	}
	kept := s.Ignored[:0]
	for _, ignored := range s.Ignored {
		if ignored != id {
			kept = append(kept, ignored)
		}
	}
	s.Ignored = kept
	return s.Save()
}
