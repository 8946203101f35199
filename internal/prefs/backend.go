package prefs

import "errors"

// ErrNotFound is returned when a requested preference does not exist.
var ErrNotFound = errors.New("preference not found")

// Backend abstracts platform-specific preference storage for one namespace.
// macOS uses UserDefaults (via `defaults` CLI), other platforms use a JSON
// file under XDG_CONFIG_HOME, and SQLite is available everywhere.
type Backend interface {
	GetString(key string) (val string, ok bool, err error)
	GetInt(key string) (val int, ok bool, err error)
	SetString(key, val string) error
	SetInt(key string, val int) error
	Delete(key string) error
	Keys() ([]string, error)
}

// Backend kinds accepted by Open.
const (
	KindPlatform = "platform"
	KindFile     = "file"
	KindSQLite   = "sqlite"
)
