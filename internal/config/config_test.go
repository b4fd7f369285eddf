package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anas-shakeel/bmpcodec/internal/bmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bmpcodec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			want:    Defaults(),
		},
		{
			name: "custom environment variables",
			envVars: map[string]string{
				"BMP_BIT_DEPTH": "8",
				"BMP_X_PPM":     "3780",
				"BMP_Y_PPM":     "3780",
				"LOG_LEVEL":     "debug",
			},
			want: &Config{
				Encode:  EncodeConfig{BitDepth: 8, XPixelsPerM: 3780, YPixelsPerM: 3780},
				Logging: LoggingConfig{Level: "debug"},
			},
		},
		{
			name:    "unsupported bit depth",
			envVars: map[string]string{"BMP_BIT_DEPTH": "2"},
			wantErr: true,
		},
		{
			name:    "bit depth wrapping to 24 in 16 bits",
			envVars: map[string]string{"BMP_BIT_DEPTH": "65560"},
			wantErr: true,
		},
		{
			name:    "negative bit depth",
			envVars: map[string]string{"BMP_BIT_DEPTH": "-8"},
			wantErr: true,
		},
		{
			name:    "invalid log level",
			envVars: map[string]string{"LOG_LEVEL": "loud"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"BMP_BIT_DEPTH", "BMP_X_PPM", "BMP_Y_PPM", "LOG_LEVEL"} {
				t.Setenv(key, tt.envVars[key])
			}

			got, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadWithOverrides(t *testing.T) {
	t.Setenv("BMP_BIT_DEPTH", "")
	t.Setenv("BMP_X_PPM", "")
	t.Setenv("BMP_Y_PPM", "")
	t.Setenv("LOG_LEVEL", "warn")

	path := writeConfig(t, "encode:\n  bitDepth: 4\n  xPixelsPerM: 100\nlogging:\n  level: error\n")

	cfg, err := LoadWithOverrides(LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Encode.BitDepth)
	assert.Equal(t, int32(100), cfg.Encode.XPixelsPerM)
	assert.Equal(t, int32(bmp.DefaultPixelsPerMeter), cfg.Encode.YPixelsPerM)
	assert.Equal(t, "warn", cfg.Logging.Level, "environment beats the file")

	cfg, err = LoadWithOverrides(LoadOptions{ConfigFile: path, BitDepth: 32, LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Encode.BitDepth)
	assert.Equal(t, "debug", cfg.Logging.Level)

	enc := cfg.Encoder()
	assert.Equal(t, bmp.DeepColor, enc.BitDepth)
	assert.Equal(t, int32(100), enc.XPixelsPerM)
}

func TestLoadWithOverrides_BadFile(t *testing.T) {
	_, err := LoadWithOverrides(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	path := writeConfig(t, "encode:\n  depth: 8\n")
	_, err = LoadWithOverrides(LoadOptions{ConfigFile: path})
	assert.Error(t, err, "unknown keys are rejected")
}
