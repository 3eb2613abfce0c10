// Package config provides YAML-based runtime settings for the memory game.
// Game rules (grid, timings, virtual resolution) are compile-time constants
// and are not configurable here.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidSettings is returned by Settings.Validate.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Settings contains all runtime configuration.
type Settings struct {
	Deck     string `yaml:"deck"`
	DeckFile string `yaml:"deck_file"`
	DecksDir string `yaml:"decks_dir"`

	AssetsDir    string   `yaml:"assets_dir"`
	Fonts        []string `yaml:"fonts"`
	EmbeddedFont bool     `yaml:"embedded_font"`

	DBPath   string `yaml:"db_path"`
	FPS      int    `yaml:"fps"`
	LogLevel string `yaml:"log_level"`

	SSH    SSHSettings    `yaml:"ssh"`
	Window WindowSettings `yaml:"window"`
}

// SSHSettings configures `memory serve`.
type SSHSettings struct {
	Address     string `yaml:"address"`
	HostKey     string `yaml:"host_key"`
	IdleTimeout string `yaml:"idle_timeout"`
}

// WindowSettings configures the graphical front-end.
type WindowSettings struct {
	Fullscreen bool `yaml:"fullscreen"`
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
}

// LogLevels lists the accepted log_level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Timeout parses IdleTimeout. An empty value means no timeout.
func (s SSHSettings) Timeout() (time.Duration, error) {
	if s.IdleTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.IdleTimeout)
	if err != nil {
		return 0, fmt.Errorf("%w: ssh.idle_timeout %q: %v", ErrInvalidSettings, s.IdleTimeout, err)
	}
	return d, nil
}

// Validate checks settings that would otherwise fail later at runtime.
func (s Settings) Validate() error {
	if s.FPS <= 0 || s.FPS > 240 {
		return fmt.Errorf("%w: fps must be in 1..240, got %d", ErrInvalidSettings, s.FPS)
	}
	if !validLogLevel(s.LogLevel) {
		return fmt.Errorf("%w: log_level %q, expected one of %s", ErrInvalidSettings, s.LogLevel, strings.Join(LogLevels, ", "))
	}
	if s.Deck == "" && s.DeckFile == "" {
		return fmt.Errorf("%w: deck or deck_file is required", ErrInvalidSettings)
	}
	if _, err := s.SSH.Timeout(); err != nil {
		return err
	}
	if s.SSH.Address == "" {
		return fmt.Errorf("%w: ssh.address is empty", ErrInvalidSettings)
	}
	if !s.Window.Fullscreen && (s.Window.Width <= 0 || s.Window.Height <= 0) {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidSettings, s.Window.Width, s.Window.Height)
	}
	return nil
}

func validLogLevel(level string) bool {
	for _, l := range LogLevels {
		if level == l {
			return true
		}
	}
	return false
}
