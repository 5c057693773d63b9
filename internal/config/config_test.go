package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/carpetarea-go/pkg/carpetarea"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, int64(32<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, InputMultipart, cfg.Processing.InputMode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, carpetarea.RoundingFixed, cfg.Options().Rounding)
	assert.Equal(t, "CRE", cfg.Options().Layout.SheetName)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carpetarea.yaml")
	data := []byte(`server:
  addr: "127.0.0.1:9000"
  shutdown_timeout: 3s
processing:
  input_mode: base64
  rounding: numeric
log:
  level: debug
  format: json
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, InputBase64, cfg.Processing.InputMode)
	assert.Equal(t, carpetarea.RoundingNumeric, cfg.Options().Rounding)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CARPETAREA_PROCESSING_INPUT_MODE", "base64")

	v := viper.New()
	BindEnv(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, InputBase64, cfg.Processing.InputMode)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value any
	}{
		{"processing.input_mode", "form"},
		{"processing.rounding", "banker"},
		{"server.max_upload_bytes", 0},
		{"log.level", "loud"},
		{"log.format", "xml"},
	}

	for _, tt := range tests {
		v := viper.New()
		v.Set(tt.key, tt.value)
		_, err := Load(v)
		assert.Error(t, err, tt.key)
	}
}

func TestSetupLogging(t *testing.T) {
	defer func(l zerolog.Logger, lvl zerolog.Level) {
		log.Logger = l
		zerolog.SetGlobalLevel(lvl)
	}(log.Logger, zerolog.GlobalLevel())

	var buf bytes.Buffer
	require.NoError(t, SetupLogging(LogConfig{Level: "warn", Format: "json"}, &buf))

	log.Info().Msg("hidden")
	log.Warn().Str("sheet", "CRE").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"sheet":"CRE"`)

	assert.Error(t, SetupLogging(LogConfig{Level: "loud"}, &buf))
}

func TestReadFile(t *testing.T) {
	v := viper.New()
	_, err := ReadFile(v, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "carpetarea.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	v = viper.New()
	used, err := ReadFile(v, path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "debug", v.GetString("log.level"))
}
