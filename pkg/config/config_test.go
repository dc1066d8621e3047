package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("API_URL", "https://api.example.uz/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.uz", cfg.APIURL)
	assert.Equal(t, "urmonov.novacode.uz", cfg.AssetHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "uz", cfg.DefaultLocale)
	assert.Equal(t, 1500*time.Millisecond, cfg.SplashDelay)
	assert.Equal(t, 3*time.Second, cfg.NotificationTTL)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.HasRedis())
	assert.False(t, cfg.HasTranslator())
}

func TestLoadConfig_Production(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		errContains string
	}{
		{
			name:        "unknown locale",
			env:         map[string]string{"DEFAULT_LOCALE": "de"},
			errContains: "DEFAULT_LOCALE",
		},
		{
			name:        "zero rate limit",
			env:         map[string]string{"FORM_RATE_LIMIT": "0"},
			errContains: "FORM_RATE_LIMIT",
		},
		{
			name:        "bad duration",
			env:         map[string]string{"SPLASH_DELAY": "soon"},
			errContains: "parse env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestMaskString(t *testing.T) {
	assert.Equal(t, "", maskString(""))
	assert.Equal(t, "***", maskString("abc"))
	assert.Equal(t, "ab***", maskString("abcdef"))
	assert.Equal(t, "sk***wxyz", maskString("sk-abcdefwxyz"))
}
