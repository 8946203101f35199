package config

import (
	"fmt"
	"time"

	"github.com/kalambet/vizprefs/internal/prefs"
)

// appNamespace is the preferences namespace holding the tool's own settings,
// separate from the visualization defaults it manages.
const appNamespace = "app"

type Config struct {
	Server  ServerConfig
	MCP     MCPConfig
	Prefs   PrefsConfig
	Storage StorageConfig
	Session SessionConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port     int
	MaxConns int
}

type MCPConfig struct {
	Stdio bool
}

type PrefsConfig struct {
	Backend   string
	Namespace string
}

type StorageConfig struct {
	DataDir string
}

type SessionConfig struct {
	IdleTimeout string
}

// IdleDuration parses IdleTimeout. Zero disables eviction.
func (c SessionConfig) IdleDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.IdleTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid session.idle_timeout %q: %w", c.IdleTimeout, err)
	}
	return d, nil
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:     4100,
			MaxConns: 64,
		},
		Prefs: PrefsConfig{
			Backend:   prefs.KindPlatform,
			Namespace: "visualization",
		},
		Storage: StorageConfig{
			DataDir: prefs.DefaultDataDir(),
		},
		Session: SessionConfig{
			IdleTimeout: "30m",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the platform-native backend and
// environment variables.
//
// On macOS the backend is UserDefaults (domain: org.vizprefs.app).
// Elsewhere it is a JSON file at $XDG_CONFIG_HOME/vizprefs/app.json.
//
// Environment variables (VIZPREFS_*) override backend values on all platforms.
func Load() (Config, error) {
	return loadWith(prefs.NewPlatform(appNamespace))
}

func loadWith(b prefs.Backend) (Config, error) {
	cfg := defaults()

	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", cfg.Server.Port)
	}
	if cfg.Server.MaxConns < 0 {
		return fmt.Errorf("invalid server.max_conns %d", cfg.Server.MaxConns)
	}
	switch cfg.Prefs.Backend {
	case prefs.KindPlatform, prefs.KindFile, prefs.KindSQLite:
	default:
		return fmt.Errorf("invalid prefs.backend %q (want %s, %s or %s)",
			cfg.Prefs.Backend, prefs.KindPlatform, prefs.KindFile, prefs.KindSQLite)
	}
	if cfg.Prefs.Namespace == "" {
		return fmt.Errorf("prefs.namespace must not be empty")
	}
	if _, err := cfg.Session.IdleDuration(); err != nil {
		return err
	}
	return nil
}

// OpenPreferences opens the visualization preferences selected by cfg.
func OpenPreferences(cfg Config) (*prefs.Preferences, error) {
	p, err := prefs.Open(cfg.Prefs.Backend, cfg.Prefs.Namespace, cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening %s preferences: %w", cfg.Prefs.Backend, err)
	}
	return p, nil
}
