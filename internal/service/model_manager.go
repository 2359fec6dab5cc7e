package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/kapu/haengsi-web-go/pkg/errors"
)

// ModelManager routes one generation call to the primary provider, falling
// through to OpenAI only when fallback is enabled. No retries against the
// same provider and no rate limiting.
type ModelManager struct {
	primary        TextProvider
	fallback       TextProvider
	enableFallback bool
	logger         *zap.Logger
}

type ModelManagerConfig struct {
	GeminiAPIKey   string
	GeminiModel    string
	OpenAIAPIKey   string
	OpenAIModel    string
	EnableFallback bool
}

func NewModelManager(ctx context.Context, cfg ModelManagerConfig, logger *zap.Logger) (*ModelManager, error) {
	gemini, err := NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	if err != nil {
		return nil, err
	}

	mm := &ModelManager{
		primary: gemini,
		logger:  logger,
	}

	if openaiProvider := NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger); openaiProvider != nil {
		mm.fallback = openaiProvider
		mm.enableFallback = cfg.EnableFallback
	}

	if mm.enableFallback {
		logger.Info("OpenAI fallback enabled", zap.String("model", cfg.OpenAIModel))
	} else {
		logger.Info("OpenAI fallback disabled")
	}

	return mm, nil
}

// GenerateText returns the provider text along with the provider and model
// names that served it. Failures come back as a *errors.ServiceError wrapping
// the provider's raw error.
func (mm *ModelManager) GenerateText(ctx context.Context, prompt string) (string, string, string, error) {
	text, err := mm.primary.GenerateText(ctx, prompt)
	if err == nil {
		return text, mm.primary.Name(), mm.primary.Model(), nil
	}

	if mm.enableFallback && mm.fallback != nil {
		mm.logger.Warn("Primary provider failed, trying fallback",
			zap.String("primary", mm.primary.Name()),
			zap.Error(err),
		)
		fallbackText, fallbackErr := mm.fallback.GenerateText(ctx, prompt)
		if fallbackErr == nil {
			return fallbackText, mm.fallback.Name(), mm.fallback.Model(), nil
		}
		combined := fmt.Errorf("primary: %v; fallback: %w", err, fallbackErr)
		return "", "", "", apperrors.NewServiceError("text generation failed", mm.fallback.Name(), "generate", combined)
	}

	return "", "", "", apperrors.NewServiceError("text generation failed", mm.primary.Name(), "generate", err)
}
