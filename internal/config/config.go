// Package config loads service settings from file, environment and flags.
package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/ukaji3/carpetarea-go/pkg/carpetarea"
)

// EnvPrefix is the prefix of environment variables, e.g. CARPETAREA_SERVER_ADDR.
const EnvPrefix = "CARPETAREA"

// InputMode selects how an upload is carried in the request body.
type InputMode string

const (
	// InputMultipart expects a multipart form with the workbook in field "file".
	InputMultipart InputMode = "multipart"
	// InputBase64 expects the request body to be the base64-encoded workbook.
	InputBase64 InputMode = "base64"
)

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `mapstructure:"addr" yaml:"addr"`

	// MaxUploadBytes bounds the request body (default 32 MiB).
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes" yaml:"max_upload_bytes"`

	// ReadHeaderTimeout bounds reading request headers (default 10s).
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// ProcessingConfig holds settings that pick between the two upload contracts.
type ProcessingConfig struct {
	InputMode InputMode `mapstructure:"input_mode" yaml:"input_mode"`
	Rounding  string    `mapstructure:"rounding" yaml:"rounding"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name (default "info").
	Level string `mapstructure:"level" yaml:"level"`

	// Format is "console" or "json" (default "console").
	Format string `mapstructure:"format" yaml:"format"`
}

// Config groups all settings.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" yaml:"server"`
	Processing ProcessingConfig `mapstructure:"processing" yaml:"processing"`
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.max_upload_bytes", int64(32<<20))
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("processing.input_mode", string(InputMultipart))
	v.SetDefault("processing.rounding", string(carpetarea.RoundingFixed))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load unmarshals and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks enumerated values and bounds.
func (c Config) Validate() error {
	switch c.Processing.InputMode {
	case InputMultipart, InputBase64:
	default:
		return fmt.Errorf("processing.input_mode %q (must be multipart or base64)", c.Processing.InputMode)
	}
	if _, err := carpetarea.ParseRounding(c.Processing.Rounding); err != nil {
		return fmt.Errorf("processing.rounding: %w", err)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive, got %d", c.Server.MaxUploadBytes)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format %q (must be console or json)", c.Log.Format)
	}
	return nil
}

// Options returns the annotation options for c. The sheet layout is fixed.
func (c Config) Options() carpetarea.Options {
	opts := carpetarea.DefaultOptions()
	opts.Rounding, _ = carpetarea.ParseRounding(c.Processing.Rounding)
	return opts
}
