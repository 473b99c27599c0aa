package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the defaults rtail applies when flags do not override them.
type Config struct {
	NumLines int
	Encoding string
	Color    string
	Theme    string
	SpoolDir string
}

const (
	defaultConfigPath = "~/.config/rtail/config.toml"
	defaultNumLines   = 10
	defaultEncoding   = "utf-8"
	defaultColor      = "auto"
	defaultTheme      = "Nightfox"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		NumLines: defaultNumLines,
		Encoding: defaultEncoding,
		Color:    defaultColor,
		Theme:    defaultTheme,
	}
}

// Load locates and parses the rtail config, falling back to defaults when missing.
// Without an explicit path, an unresolvable home directory also means defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		if strings.TrimSpace(path) == "" {
			return cfg, nil
		}
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		NumLines *int   `toml:"num_lines"`
		Encoding string `toml:"encoding"`
		Color    string `toml:"color"`
		Theme    string `toml:"theme"`
		SpoolDir string `toml:"spool_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.NumLines != nil {
		if *raw.NumLines < 0 {
			return Config{}, fmt.Errorf("parse config: num_lines must not be negative, got %d", *raw.NumLines)
		}
		cfg.NumLines = *raw.NumLines
	}
	if v := strings.TrimSpace(raw.Encoding); v != "" {
		cfg.Encoding = v
	}
	if v := strings.TrimSpace(raw.Color); v != "" {
		cfg.Color = v
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(raw.SpoolDir); v != "" {
		cfg.SpoolDir = mustExpand(v)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
