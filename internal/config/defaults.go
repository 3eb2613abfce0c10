package config

import (
	_ "embed"
)

//go:embed defaults/memory.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the hard-coded settings used when no file,
// including the embedded default, can be parsed.
func DefaultSettings() Settings {
	return Settings{
		Deck:      "starwars",
		DecksDir:  "~/.memory/decks",
		AssetsDir: "assets/processed",
		Fonts: []string{
			"assets/fonts/PressStart2P-Regular.ttf",
			"assets/fonts/VT323-Regular.ttf",
			"assets/fonts/font.ttf",
			"/System/Library/Fonts/Supplemental/Arial.ttf",
			"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
			"/Library/Fonts/Arial.ttf",
			"C:/Windows/Fonts/arial.ttf",
			"C:/Windows/Fonts/segoeui.ttf",
		},
		EmbeddedFont: true,
		DBPath:       "~/.memory/scores.db",
		FPS:          60,
		LogLevel:     "info",
		SSH: SSHSettings{
			Address:     ":23235",
			IdleTimeout: "30m",
		},
		Window: WindowSettings{
			Fullscreen: true,
			Width:      1280,
			Height:     720,
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
