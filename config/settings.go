// Package config loads and persists the application settings file.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Settings is the application configuration persisted to disk.
type Settings struct {
	Trakt  TraktSettings  `json:"trakt"`
	Cache  CacheSettings  `json:"cache"`
	Import ImportSettings `json:"import"`
	Log    LogSettings    `json:"log"`
}

// TraktSettings holds API credentials and the login key. AccessKey is either
// an 8-character pin (first login) or the refresh token from a previous run.
type TraktSettings struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	AccessKey    string `json:"accessKey"`
	Username     string `json:"username,omitempty"`
}

// CacheSettings controls the response cache location and freshness window.
type CacheSettings struct {
	Dir        string `json:"dir"`
	ExpiryDays int    `json:"expiryDays"`
}

// ImportSettings points at the export files to reconcile.
type ImportSettings struct {
	RatingsCSV   string `json:"ratingsCsv,omitempty"`
	WatchlistCSV string `json:"watchlistCsv,omitempty"`
	// MarkWatched also records rated movies and episodes as watched.
	MarkWatched bool `json:"markWatched"`
}

// LogSettings configures file logging with rotation.
type LogSettings struct {
	File       string `json:"file,omitempty"`
	MaxSize    int    `json:"maxSize"` // megabytes
	MaxBackups int    `json:"maxBackups"`
	MaxAge     int    `json:"maxAge"` // days
	Compress   bool   `json:"compress"`
}

// DefaultSettings returns the settings written on first run.
func DefaultSettings() Settings {
	return Settings{
		Cache: CacheSettings{
			Dir:        filepath.Join("cache", "responses"),
			ExpiryDays: 1,
		},
		Log: LogSettings{
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Manager reads and writes one settings file.
type Manager struct {
	path string
}

// NewManager creates a manager for the given settings path.
func NewManager(configPath string) *Manager {
	return &Manager{path: configPath}
}

// Load reads the settings file, creating it with defaults if missing.
func (m *Manager) Load() (Settings, error) {
	if m.path == "" {
		return Settings{}, errors.New("config path not set")
	}
	if _, err := os.Stat(m.path); errors.Is(err, fs.ErrNotExist) {
		defaults := DefaultSettings()
		if err := m.Save(defaults); err != nil {
			return Settings{}, err
		}
		return defaults, nil
	}

	f, err := os.Open(m.path)
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()

	var settings Settings
	if err := json.NewDecoder(f).Decode(&settings); err != nil {
		return Settings{}, err
	}
	if settings.Cache.ExpiryDays <= 0 {
		settings.Cache.ExpiryDays = 1
	}
	return settings, nil
}

// Save writes the settings file, creating the parent directory as needed.
func (m *Manager) Save(s Settings) error {
	dir := filepath.Dir(m.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o644)
}
