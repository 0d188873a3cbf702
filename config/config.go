// Package config resolves run settings from flags, environment variables,
// an optional config file and an optional .env file.
//
// Precedence, highest first: flags set on the command line, LABYRINTH_*
// environment variables (including those loaded from .env), the config file,
// then defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment variables: LABYRINTH_MEMORY_LIMIT_MB etc.
const EnvPrefix = "LABYRINTH"

// ErrNoInput is returned when no primary input is configured.
var ErrNoInput = errors.New("config: no input file configured")

// Setting keys, also used as flag names.
const (
	KeyInput         = "input"
	KeyFallback      = "fallback"
	KeyMode          = "mode"
	KeyMemoryLimitMB = "memory-limit-mb"
	KeyProgressEvery = "progress-every"
	KeyStrict        = "strict"
	KeyMaxLine       = "max-line"
	KeyMargin        = "margin"
	KeyMaxWidth      = "max-width"
	KeyMaxHeight     = "max-height"
	KeyPNG           = "png"
	KeyScale         = "scale"
	KeyLogLevel      = "log-level"
	KeyLogFormat     = "log-format"
)

// Config holds every tunable of a run.
type Config struct {
	Input         string // primary maze file
	Fallback      string // maze searched in streaming mode when Input is too large; empty disables
	Mode          string // "distance" or "path"; used when no subcommand is given
	MemoryLimitMB int64  // budget for the in-memory phase; 0 = GOMEMLIMIT or 75% of RAM, negative = unlimited
	ProgressEvery int    // log progress every N expanded cells; 0 disables
	Strict        bool   // reject characters outside "#.AB"
	MaxLine       int    // longest accepted row, bytes

	Margin    int    // cells drawn around the path; 0 draws the path's bounding box only
	MaxWidth  int    // ASCII view width; 0 = terminal width or default
	MaxHeight int    // ASCII view height
	PNG       string // also write the view as a PNG image to this path
	Scale     int    // PNG pixels per cell

	LogLevel  string
	LogFormat string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Input:         "maze.txt",
		Mode:          "distance",
		ProgressEvery: 1_500_000,
		MaxLine:       1 << 20,
		Margin:        2,
		MaxHeight:     40,
		Scale:         8,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// RegisterFlags adds one flag per setting to fs, with Default values, and
// binds them to v.
func RegisterFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	d := Default()
	fs.StringP(KeyInput, "i", d.Input, "maze file to solve (.br files are decompressed)")
	fs.String(KeyFallback, d.Fallback, "maze file for the low-memory streaming search")
	fs.String(KeyMode, d.Mode, "search mode when no subcommand is given (distance or path)")
	fs.Int64(KeyMemoryLimitMB, d.MemoryLimitMB, "memory budget in MiB for the in-memory search (0 = GOMEMLIMIT or 75% of RAM, -1 = none)")
	fs.Int(KeyProgressEvery, d.ProgressEvery, "log progress every N explored cells (0 = off)")
	fs.Bool(KeyStrict, d.Strict, "reject characters other than '#', '.', 'A', 'B'")
	fs.Int(KeyMaxLine, d.MaxLine, "longest accepted row in bytes")
	fs.Int(KeyMargin, d.Margin, "cells shown around the path (0 = none)")
	fs.Int(KeyMaxWidth, d.MaxWidth, "maximum view width (0 = terminal width)")
	fs.Int(KeyMaxHeight, d.MaxHeight, "maximum view height")
	fs.String(KeyPNG, d.PNG, "write the path view as a PNG image to this file")
	fs.Int(KeyScale, d.Scale, "PNG pixels per cell")
	fs.String(KeyLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	fs.String(KeyLogFormat, d.LogFormat, "log format (text or json)")

	return v.BindPFlags(fs)
}

// Load reads envFile (".env" when empty; a missing file is fine) into the
// process environment, then resolves every setting through v. configFile, if
// set, must exist; otherwise "labyrinth.{yaml,toml,json}" in the working
// directory is used when present.
func Load(v *viper.Viper, configFile, envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: reading %s: %w", envFile, err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("labyrinth")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: %w", err)
			}
		}
	}

	cfg := Config{
		Input:         v.GetString(KeyInput),
		Fallback:      v.GetString(KeyFallback),
		Mode:          v.GetString(KeyMode),
		MemoryLimitMB: v.GetInt64(KeyMemoryLimitMB),
		ProgressEvery: v.GetInt(KeyProgressEvery),
		Strict:        v.GetBool(KeyStrict),
		MaxLine:       v.GetInt(KeyMaxLine),
		Margin:        v.GetInt(KeyMargin),
		MaxWidth:      v.GetInt(KeyMaxWidth),
		MaxHeight:     v.GetInt(KeyMaxHeight),
		PNG:           v.GetString(KeyPNG),
		Scale:         v.GetInt(KeyScale),
		LogLevel:      v.GetString(KeyLogLevel),
		LogFormat:     v.GetString(KeyLogFormat),
	}
	if strings.TrimSpace(cfg.Input) == "" {
		return Config{}, ErrNoInput
	}

	return cfg, nil
}

// MemoryLimitBytes converts MemoryLimitMB, preserving the 0 and negative meanings.
func (c Config) MemoryLimitBytes() int64 {
	if c.MemoryLimitMB <= 0 {
		return c.MemoryLimitMB
	}
	return c.MemoryLimitMB << 20
}
