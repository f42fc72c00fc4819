// Package kconfig holds process-wide defaults read from an optional TOML
// file, overridable by command-line flags in cmd/.
package kconfig

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Settings is the global configuration, populated by Setup.
var Settings Config

var initialized = false

// Config is the top-level TOML document shape.
type Config struct {
	Board  BoardConfig
	Log    LogConfig
	Search SearchConfig
}

// BoardConfig holds the default geometry used when a command is not given
// an explicit width/height.
type BoardConfig struct {
	Width  int
	Height int
}

// LogConfig holds a log verbosity level. Neither command in cmd/ reads it;
// logw's verbosity is not changed by it.
type LogConfig struct {
	Level int
}

// SearchConfig holds a maximum search depth. cmd/perft takes its depth from
// its -depth flag and does not read this value.
type SearchConfig struct {
	MaxDepth int
}

func defaults() Config {
	return Config{
		Board:  BoardConfig{Width: 8, Height: 8},
		Log:    LogConfig{Level: 2},
		Search: SearchConfig{MaxDepth: 6},
	}
}

// Load returns the built-in defaults overlaid with path's TOML contents.
// An empty path, or one that can't be decoded, yields the defaults
// unchanged.
func Load(path string) Config {
	cfg := defaults()
	if path == "" {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		fmt.Println(err)
	}
	return cfg
}

// Setup loads path into Settings. Safe to call more than once; only the
// first call has effect.
func Setup(path string) {
	if initialized {
		return
	}
	Settings = Load(path)
	initialized = true
}
