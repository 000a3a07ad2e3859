package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/claude/sprintlab/internal/models"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Limits LimitsConfig `yaml:"limits"`
	MCP    MCPConfig    `yaml:"mcp"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LimitsConfig bounds the sprint form inputs.
type LimitsConfig struct {
	MinSets     int     `yaml:"min_sets"`
	MaxSets     int     `yaml:"max_sets"`
	DefaultSets int     `yaml:"default_sets"`
	MinTime     float64 `yaml:"min_time"`
	MaxTime     float64 `yaml:"max_time"`
}

type MCPConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a config suitable for running on localhost without a file.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8501},
		Limits: LimitsConfig{
			MinSets:     models.DefaultLimits.MinSets,
			MaxSets:     models.DefaultLimits.MaxSets,
			DefaultSets: 10,
			MinTime:     models.DefaultLimits.MinTime,
			MaxTime:     models.DefaultLimits.MaxTime,
		},
		MCP: MCPConfig{Path: "/mcp"},
		Log: LogConfig{Level: "info"},
	}
}

// SessionLimits converts the configured bounds for models.NewSession.
func (l LimitsConfig) SessionLimits() models.Limits {
	return models.Limits{MinSets: l.MinSets, MaxSets: l.MaxSets, MinTime: l.MinTime, MaxTime: l.MaxTime}
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads config from a YAML file on top of Default(), then applies
// environment variable overrides. Env vars use the prefix SPRINTLAB_:
//
//	SPRINTLAB_SERVER_HOST, SPRINTLAB_SERVER_PORT,
//	SPRINTLAB_LIMITS_MAX_SETS, SPRINTLAB_LIMITS_MAX_TIME,
//	SPRINTLAB_MCP_ENABLED, SPRINTLAB_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SPRINTLAB_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("SPRINTLAB_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SPRINTLAB_LIMITS_MAX_SETS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Limits.MaxSets = n
		}
	}
	if v := os.Getenv("SPRINTLAB_LIMITS_MAX_TIME"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Limits.MaxTime = f
		}
	}
	if v := os.Getenv("SPRINTLAB_MCP_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.MCP.Enabled = b
		}
	}
	if v := os.Getenv("SPRINTLAB_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	l := c.Limits
	if l.MinSets < 1 || l.MaxSets < l.MinSets {
		return fmt.Errorf("limits: need 1 <= min_sets <= max_sets")
	}
	if l.DefaultSets < l.MinSets || l.DefaultSets > l.MaxSets {
		return fmt.Errorf("limits.default_sets must be within [min_sets, max_sets]")
	}
	if !isFinite(l.MinTime) || !isFinite(l.MaxTime) {
		return fmt.Errorf("limits: min_time and max_time must be finite")
	}
	if l.MinTime <= 0 || l.MaxTime < l.MinTime {
		return fmt.Errorf("limits: need 0 < min_time <= max_time")
	}
	if c.MCP.Enabled && !strings.HasPrefix(c.MCP.Path, "/") {
		return fmt.Errorf("mcp.path must start with /")
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
