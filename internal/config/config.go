package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/anas-shakeel/bmpcodec/internal/bmp"
	"github.com/anas-shakeel/bmpcodec/internal/logging"
)

// Config holds the CLI configuration
type Config struct {
	Encode  EncodeConfig  `yaml:"encode"`
	Logging LoggingConfig `yaml:"logging"`
}

// EncodeConfig holds the settings used when writing bitmaps
type EncodeConfig struct {
	BitDepth    int   `yaml:"bitDepth"`    // BMP_BIT_DEPTH, default 24
	XPixelsPerM int32 `yaml:"xPixelsPerM"` // BMP_X_PPM, default 2835
	YPixelsPerM int32 `yaml:"yPixelsPerM"` // BMP_Y_PPM, default 2835
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"` // LOG_LEVEL, default info
}

// LoadOptions holds command-line override options
type LoadOptions struct {
	ConfigFile string
	BitDepth   int
	LogLevel   string
}

// Returns the built-in defaults
func Defaults() *Config {
	return &Config{
		Encode: EncodeConfig{
			BitDepth:    int(bmp.TrueColor),
			XPixelsPerM: bmp.DefaultPixelsPerMeter,
			YPixelsPerM: bmp.DefaultPixelsPerMeter,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load loads configuration from environment variables with defaults
func Load() (*Config, error) {
	return LoadWithOverrides(LoadOptions{})
}

// LoadWithOverrides layers defaults, the YAML file, environment variables
// and command-line overrides, in that order.
func LoadWithOverrides(opts LoadOptions) (*Config, error) {
	config := Defaults()

	if opts.ConfigFile != "" {
		data, err := os.ReadFile(opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", opts.ConfigFile, err)
		}
		if err := yaml.UnmarshalStrict(data, config); err != nil {
			return nil, fmt.Errorf("error unmarshaling YAML from %s: %w", opts.ConfigFile, err)
		}
	}

	config.Encode.BitDepth = getIntWithDefault("BMP_BIT_DEPTH", config.Encode.BitDepth)
	config.Encode.XPixelsPerM = int32(getIntWithDefault("BMP_X_PPM", int(config.Encode.XPixelsPerM)))
	config.Encode.YPixelsPerM = int32(getIntWithDefault("BMP_Y_PPM", int(config.Encode.YPixelsPerM)))
	config.Logging.Level = getEnvWithDefault("LOG_LEVEL", config.Logging.Level)

	if opts.BitDepth != 0 {
		config.Encode.BitDepth = opts.BitDepth
	}
	if s := strings.TrimSpace(opts.LogLevel); s != "" {
		config.Logging.Level = s
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Encode.BitDepth < 0 || c.Encode.BitDepth > math.MaxUint16 || !bmp.BitDepth(c.Encode.BitDepth).Valid() {
		return fmt.Errorf("unsupported bit depth: %d", c.Encode.BitDepth)
	}
	if c.Encode.XPixelsPerM < 0 || c.Encode.YPixelsPerM < 0 {
		return fmt.Errorf("resolution cannot be negative")
	}
	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	return nil
}

// Returns an encoder for the configured depth and resolution
func (c *Config) Encoder() *bmp.Encoder {
	return &bmp.Encoder{
		BitDepth:    bmp.BitDepth(c.Encode.BitDepth),
		XPixelsPerM: c.Encode.XPixelsPerM,
		YPixelsPerM: c.Encode.YPixelsPerM,
	}
}

// Helper functions for environment variable parsing
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
