// Package config loads the ambient knobs focusctl needs outside of
// the per-invocation target list: log level/format, the default edge
// policy for tokens that omit one, i3 mode, and the IPC timeout. It
// never supplies targets; the only setting that reaches the focus
// decision is the default edge, and only for tokens written without an
// edge character.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/korreman/sway-overfocus/internal/target"
)

// Config holds focusctl's ambient settings.
type Config struct {
	LogLevel    string
	LogFormat   string
	I3Mode      bool
	DefaultEdge target.Edge
	IPCTimeout  time.Duration
}

// defaults is a plain struct literal consulted before any config file
// or env var is read.
func defaults() Config {
	return Config{
		LogLevel:    "info",
		LogFormat:   "text",
		I3Mode:      false,
		DefaultEdge: target.EdgeStop,
		IPCTimeout:  2 * time.Second,
	}
}

// Load builds a viper-backed reader rooted at $XDG_CONFIG_HOME/focusctl/config.toml,
// applies FOCUSCTL_-prefixed environment overrides, and returns the
// resulting Config. A missing config file is not an error: defaults
// apply.
func Load() (*Config, error) {
	def := defaults()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	dir, err := ConfigDir()
	if err != nil {
		return nil, fmt.Errorf("determine config directory: %w", err)
	}
	v.AddConfigPath(dir)

	v.SetEnvPrefix("FOCUSCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", def.LogLevel)
	v.SetDefault("log.format", def.LogFormat)
	v.SetDefault("i3_mode", def.I3Mode)
	v.SetDefault("default_edge", edgeString(def.DefaultEdge))
	v.SetDefault("ipc_timeout", def.IPCTimeout.String())

	if err := v.BindEnv("log.level", "FOCUSCTL_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("bind FOCUSCTL_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("log.format", "FOCUSCTL_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("bind FOCUSCTL_LOG_FORMAT: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("read config file in %s: %w", dir, err)
		}
	}

	edge, err := parseEdge(v.GetString("default_edge"))
	if err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(v.GetString("ipc_timeout"))
	if err != nil {
		return nil, fmt.Errorf("parse ipc_timeout %q: %w", v.GetString("ipc_timeout"), err)
	}

	return &Config{
		LogLevel:    v.GetString("log.level"),
		LogFormat:   v.GetString("log.format"),
		I3Mode:      v.GetBool("i3_mode"),
		DefaultEdge: edge,
		IPCTimeout:  timeout,
	}, nil
}

func edgeString(e target.Edge) string {
	switch e {
	case target.EdgeWrap:
		return "wrap"
	case target.EdgeInactiveSpill:
		return "inactive-spill"
	case target.EdgeTraverseSpill:
		return "traverse-spill"
	default:
		return "stop"
	}
}

func parseEdge(s string) (target.Edge, error) {
	switch strings.ToLower(s) {
	case "stop":
		return target.EdgeStop, nil
	case "wrap":
		return target.EdgeWrap, nil
	case "inactive-spill":
		return target.EdgeInactiveSpill, nil
	case "traverse-spill":
		return target.EdgeTraverseSpill, nil
	default:
		return 0, fmt.Errorf("invalid default_edge %q", s)
	}
}
