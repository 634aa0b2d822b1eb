package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	logs "github.com/danmuck/mibctl/internal/logging"
	"github.com/rs/zerolog"
)

type fileConfig struct {
	LogLevel     string `toml:"log_level"`
	LogTimestamp bool   `toml:"log_timestamp"`
	NoColor      bool   `toml:"no_color"`
	Quiet        bool   `toml:"quiet"`
	ShowMetrics  bool   `toml:"show_metrics"`
	Profile      string `toml:"profile"`
}

type toolConfig struct {
	Quiet       bool
	ShowMetrics bool
	Profile     string
	Log         logOverrides
}

// logOverrides holds only the logging keys present in the file.
type logOverrides struct {
	Level     *zerolog.Level
	Timestamp *bool
	NoColor   *bool
}

func (o logOverrides) apply(cfg *logs.Config) {
	if o.Level != nil {
		cfg.Level = *o.Level
	}
	if o.Timestamp != nil {
		cfg.Timestamp = *o.Timestamp
	}
	if o.NoColor != nil {
		cfg.NoColor = *o.NoColor
	}
}

func defaultToolConfig() toolConfig {
	return toolConfig{}
}

func loadToolConfig(path string) (toolConfig, error) {
	cfg := defaultToolConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return toolConfig{}, fmt.Errorf("load mibctl config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return toolConfig{}, fmt.Errorf("load mibctl config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("log_level") {
		lvl, ok := logs.ParseLevel(raw.LogLevel)
		if !ok {
			return toolConfig{}, fmt.Errorf("parse log_level: unknown level %q", raw.LogLevel)
		}
		cfg.Log.Level = &lvl
	}

	if meta.IsDefined("log_timestamp") {
		v := raw.LogTimestamp
		cfg.Log.Timestamp = &v
	}

	if meta.IsDefined("no_color") {
		v := raw.NoColor
		cfg.Log.NoColor = &v
	}

	if meta.IsDefined("quiet") {
		cfg.Quiet = raw.Quiet
	}

	if meta.IsDefined("show_metrics") {
		cfg.ShowMetrics = raw.ShowMetrics
	}

	if meta.IsDefined("profile") {
		cfg.Profile = strings.TrimSpace(raw.Profile)
	}

	return cfg, nil
}
