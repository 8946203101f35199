//go:build darwin

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const domainPrefix = "org.vizprefs."

// DefaultDataDir is where SQLite preferences and the pid file live.
func DefaultDataDir() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, "Library", "Application Support", "vizprefs")
	}
	return "vizprefs-data"
}

type darwinBackend struct {
	domain string
}

// NewPlatform returns the UserDefaults backend for namespace.
func NewPlatform(namespace string) Backend {
	return &darwinBackend{domain: domainPrefix + namespace}
}

func (b *darwinBackend) read(key string) (string, bool, error) {
	cmd := exec.Command("defaults", "read", b.domain, key)
	out, err := cmd.CombinedOutput()
	s := strings.TrimSpace(string(out))
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading default for key '%s': %w, output: %s", key, err, s)
	}
	return s, true, nil
}

func (b *darwinBackend) GetString(key string) (string, bool, error) {
	return b.read(key)
}

func (b *darwinBackend) GetInt(key string) (int, bool, error) {
	s, ok, err := b.read(key)
	if !ok || err != nil {
		return 0, ok, err
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, true, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return i, true, nil
}

func (b *darwinBackend) SetString(key, val string) error {
	return exec.Command("defaults", "write", b.domain, key, "-string", val).Run()
}

func (b *darwinBackend) SetInt(key string, val int) error {
	return exec.Command("defaults", "write", b.domain, key, "-int", strconv.Itoa(val)).Run()
}

func (b *darwinBackend) Delete(key string) error {
	return exec.Command("defaults", "delete", b.domain, key).Run()
}

// Keys parses the top-level entries of `defaults read <domain>`, which prints
// an old-style plist dictionary:
//
//	{
//	    "default_show_edges" = true;
//	    "default_zoom_factor" = "0.2";
//	}
func (b *darwinBackend) Keys() ([]string, error) {
	out, err := exec.Command("defaults", "read", b.domain).CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("reading domain %s: %w", b.domain, err)
	}
	return parsePlistKeys(string(out)), nil
}

func parsePlistKeys(out string) []string {
	var keys []string
	depth := 0
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if depth == 1 {
			if k, _, ok := strings.Cut(line, " = "); ok {
				keys = append(keys, strings.Trim(k, `"`))
			}
		}
		depth += strings.Count(line, "{") + strings.Count(line, "(")
		depth -= strings.Count(line, "}") + strings.Count(line, ")")
	}
	sort.Strings(keys)
	return keys
}
