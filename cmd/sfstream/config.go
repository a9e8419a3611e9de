package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/blockberries/sfstream/pkg/hexdump"
)

// Config is the command line tool configuration.
//
// Priority: defaults, then the YAML file, then environment variables.
type Config struct {
	Log  LogConfig  `yaml:"log"`
	Dump DumpConfig `yaml:"dump"`
}

// LogConfig configures the logger.
type LogConfig struct {
	// Level: debug, info, warn, error
	Level string `yaml:"level"`
	// Format: console or json
	Format string `yaml:"format"`
}

// DumpConfig configures hex dumps.
type DumpConfig struct {
	// Width is the number of bytes per line.
	Width int `yaml:"width"`
}

// Environment variables overriding the configuration file.
const (
	envLogLevel  = "SFSTREAM_LOG_LEVEL"
	envLogFormat = "SFSTREAM_LOG_FORMAT"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Log:  LogConfig{Level: "info", Format: "console"},
		Dump: DumpConfig{Width: hexdump.DefaultWidth},
	}
}

// loadConfig builds the configuration from path (optional) and the
// environment looked up through getenv.
func loadConfig(path string, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := getenv(envLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv(envLogFormat); v != "" {
		cfg.Log.Format = v
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log.format: want console or json, got %q", c.Log.Format)
	}
	if c.Dump.Width <= 0 {
		return fmt.Errorf("dump.width: must be positive, got %d", c.Dump.Width)
	}
	return nil
}

// initLogger builds a logger writing to w.
func initLogger(cfg LogConfig, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core).With(zap.String("service", "sfstream")), nil
}
