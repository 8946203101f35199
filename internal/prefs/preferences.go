package prefs

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Preferences gives typed get-with-default access to one backend namespace.
// Malformed stored booleans and numbers fall back to the supplied default,
// the same way platform preference APIs treat them.
type Preferences struct {
	backend Backend
}

// New wraps b.
func New(b Backend) *Preferences {
	return &Preferences{backend: b}
}

// Open builds the preferences for namespace on the backend named by kind
// (KindPlatform, KindFile or KindSQLite). dataDir is only used by SQLite.
func Open(kind, namespace, dataDir string) (*Preferences, error) {
	if namespace == "" {
		return nil, fmt.Errorf("preferences namespace is required")
	}
	switch kind {
	case "", KindPlatform:
		return New(NewPlatform(namespace)), nil
	case KindFile:
		return New(NewFile(filePath(namespace))), nil
	case KindSQLite:
		s, err := OpenSQLite(dataDir, namespace)
		if err != nil {
			return nil, err
		}
		return New(s), nil
	default:
		return nil, fmt.Errorf("unknown preferences backend %q (want %s, %s or %s)", kind, KindPlatform, KindFile, KindSQLite)
	}
}

// Close releases the backend if it holds resources.
func (p *Preferences) Close() error {
	if c, ok := p.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Has reports whether key has a stored value.
func (p *Preferences) Has(key string) (bool, error) {
	_, ok, err := p.backend.GetString(key)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}
	return ok, nil
}

// String returns the stored text for key, or def when nothing is stored.
func (p *Preferences) String(key, def string) (string, error) {
	v, ok, err := p.backend.GetString(key)
	if err != nil {
		return def, fmt.Errorf("reading %s: %w", key, err)
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// Bool accepts "true" and "false" in any case.
func (p *Preferences) Bool(key string, def bool) (bool, error) {
	v, ok, err := p.backend.GetString(key)
	if err != nil {
		return def, fmt.Errorf("reading %s: %w", key, err)
	}
	if !ok {
		return def, nil
	}
	switch {
	case strings.EqualFold(v, "true"):
		return true, nil
	case strings.EqualFold(v, "false"):
		return false, nil
	}
	slog.Warn("could not parse bool preference, using default value", "key", key, "value", v, "default", def)
	return def, nil
}

func (p *Preferences) Int(key string, def int) (int, error) {
	v, ok, err := p.backend.GetString(key)
	if err != nil {
		return def, fmt.Errorf("reading %s: %w", key, err)
	}
	if !ok {
		return def, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		slog.Warn("could not parse integer preference, using default value", "key", key, "value", v, "default", def)
		return def, nil
	}
	return i, nil
}

func (p *Preferences) Float(key string, def float32) (float32, error) {
	v, ok, err := p.backend.GetString(key)
	if err != nil {
		return def, fmt.Errorf("reading %s: %w", key, err)
	}
	if !ok {
		return def, nil
	}
	f, err := ParseFloat(v)
	if err != nil {
		slog.Warn("could not parse float preference, using default value", "key", key, "value", v, "default", def)
		return def, nil
	}
	return f, nil
}

func (p *Preferences) PutString(key, val string) error {
	return p.backend.SetString(key, val)
}

func (p *Preferences) PutBool(key string, val bool) error {
	return p.backend.SetString(key, strconv.FormatBool(val))
}

func (p *Preferences) PutInt(key string, val int) error {
	return p.backend.SetInt(key, val)
}

func (p *Preferences) PutFloat(key string, val float32) error {
	return p.backend.SetString(key, FormatFloat(val))
}

// Remove deletes the stored value for key. Removing a missing key is not an error.
func (p *Preferences) Remove(key string) error {
	ok, err := p.Has(key)
	if err != nil || !ok {
		return err
	}
	return p.backend.Delete(key)
}

// Keys lists the stored keys in ascending order.
func (p *Preferences) Keys() ([]string, error) {
	return p.backend.Keys()
}

// FormatFloat renders f the way persisted float preferences have always
// been written: plain decimal with at least one fractional digit for
// magnitudes in [1e-3, 1e7), otherwise d.dddE<exp> ("1.0E7", "2.5E-4").
func FormatFloat(f float32) string {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 32)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'E', -1, 32)
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mant + "E" + strconv.Itoa(e)
}

// ParseFloat parses a float written by FormatFloat (or any decimal float),
// ignoring surrounding whitespace.
func ParseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}
