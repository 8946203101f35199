//go:build !darwin

package prefs

import (
	"os"
	"path/filepath"
)

// DefaultDataDir is where SQLite preferences and the pid file live.
func DefaultDataDir() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".local", "share")
		} else {
			return "vizprefs-data"
		}
	}
	return filepath.Join(dir, "vizprefs")
}

// NewPlatform returns the XDG JSON file backend for namespace.
func NewPlatform(namespace string) Backend {
	return NewFile(filePath(namespace))
}
