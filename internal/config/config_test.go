package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/kapu/haengsi-web-go/pkg/errors"
)

func TestLoadRequiresGeminiAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)

	var cerr *apperrors.ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "GEMINI_API_KEY", cerr.Key)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_ENABLE_FALLBACK", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.False(t, cfg.OpenAI.EnableFallback)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadRejectsFallbackWithoutKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_ENABLE_FALLBACK", "true")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("SERVER_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
}
