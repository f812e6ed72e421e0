package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gglin/KaTeX/parser"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{name: "zero value is valid", config: Config{}, wantErr: false},
		{
			name:    "valid strict mode",
			config:  Config{Strict: "error"},
			wantErr: false,
		},
		{
			name:    "invalid strict mode",
			config:  Config{Strict: "loud"},
			wantErr: true,
			errMsg:  "strict must be one of",
		},
		{
			name:    "error color missing hash",
			config:  Config{ErrorColor: "cc0000"},
			wantErr: true,
			errMsg:  "error_color must be a #-prefixed hex color",
		},
		{
			name:    "error color with hash",
			config:  Config{ErrorColor: "#cc0000"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ToSettings(t *testing.T) {
	c := Config{ThrowOnError: true, Strict: "error", ErrorColor: "#ffffff"}
	s := c.ToSettings()
	assert.True(t, s.ThrowOnError)
	assert.Equal(t, parser.StrictError, s.Strict)
	assert.Equal(t, "#ffffff", s.ErrorColor)
}

func TestConfig_ToSettings_Defaults(t *testing.T) {
	c := Config{}
	s := c.ToSettings()
	assert.Equal(t, parser.StrictWarn, s.Strict)
	assert.Equal(t, "#cc0000", s.ErrorColor)
	assert.False(t, s.ThrowOnError)
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Setenv("KATEX_STRICT", "ignore")
	t.Setenv("KATEX_THROW_ON_ERROR", "true")
	t.Setenv("KATEX_ERROR_COLOR", "#112233")

	c := &Config{}
	c.LoadFromEnv()

	assert.Equal(t, "ignore", c.Strict)
	assert.True(t, c.ThrowOnError)
	assert.Equal(t, "#112233", c.ErrorColor)
}

func TestConfig_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	c := &Config{Strict: "error", ErrorColor: "#abcdef", ThrowOnError: true}
	require.NoError(t, c.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c.Strict, loaded.Strict)
	assert.Equal(t, c.ErrorColor, loaded.ErrorColor)
	assert.Equal(t, c.ThrowOnError, loaded.ThrowOnError)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdgtest")
	assert.Equal(t, "/tmp/xdgtest/katex-parse/config.yml", DefaultConfigPath())
}
