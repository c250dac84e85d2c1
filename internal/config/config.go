// Package config loads the wordsort configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Processing modes.
const (
	ModeSequential = "sequential"
	ModeParallel   = "parallel"
	ModeBoth       = "both"
)

// Sink kinds.
const (
	SinkFile  = "file"
	SinkRedis = "redis"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the top-level configuration.
type Config struct {
	Input   string        `yaml:"input"`
	Output  string        `yaml:"output"`
	Mode    string        `yaml:"mode"`
	Verify  bool          `yaml:"verify"`
	Sink    SinkConfig    `yaml:"sink"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SinkConfig selects where sorted words are written to.
type SinkConfig struct {
	Kind  string      `yaml:"kind"`
	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig holds Redis connection parameters for the Redis sink.
// The output identifier is used as the list key.
type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	BatchSize int    `yaml:"batchSize"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus metrics endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides. Missing values keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used if nothing else is specified.
func Default() *Config {
	return &Config{
		Output: "output.txt",
		Mode:   ModeBoth,
		Sink: SinkConfig{
			Kind: SinkFile,
			Redis: RedisConfig{
				Addr:      "localhost:6379",
				BatchSize: 1000,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
		},
	}
}

// Validate checks for unknown modes and sinks.
func (cfg *Config) Validate() error {
	switch cfg.Mode {
	case ModeSequential, ModeParallel, ModeBoth:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, cfg.Mode)
	}
	switch cfg.Sink.Kind {
	case SinkFile, SinkRedis:
	default:
		return fmt.Errorf("%w: unknown sink %q", ErrInvalidConfig, cfg.Sink.Kind)
	}
	if cfg.Output == "" {
		return fmt.Errorf("%w: no output given", ErrInvalidConfig)
	}
	return nil
}

// Modes expands the configured mode into the sequence of modes to run.
func (cfg *Config) Modes() []string {
	if cfg.Mode == ModeBoth {
		return []string{ModeSequential, ModeParallel}
	}
	return []string{cfg.Mode}
}

// applyEnvOverrides reads WORDSORT_* environment variables and overrides the
// corresponding config fields. Malformed values are reported as ErrInvalidConfig.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("WORDSORT_INPUT"); v != "" {
		cfg.Input = v
	}
	if v := os.Getenv("WORDSORT_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("WORDSORT_MODE"); v != "" {
		cfg.Mode = v
	}
	if err := envBool("WORDSORT_VERIFY", &cfg.Verify); err != nil {
		return err
	}
	if v := os.Getenv("WORDSORT_SINK"); v != "" {
		cfg.Sink.Kind = v
	}
	if v := os.Getenv("WORDSORT_REDIS_ADDR"); v != "" {
		cfg.Sink.Redis.Addr = v
	}
	if v := os.Getenv("WORDSORT_REDIS_PASSWORD"); v != "" {
		cfg.Sink.Redis.Password = v
	}
	if err := envInt("WORDSORT_REDIS_DB", &cfg.Sink.Redis.DB); err != nil {
		return err
	}
	if v := os.Getenv("WORDSORT_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("WORDSORT_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if err := envBool("WORDSORT_METRICS_ENABLED", &cfg.Metrics.Enabled); err != nil {
		return err
	}
	return envInt("WORDSORT_METRICS_PORT", &cfg.Metrics.Port)
}

func envBool(name string, target *bool) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, name, v)
	}
	*target = b
	return nil
}

func envInt(name string, target *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, name, v)
	}
	*target = n
	return nil
}
