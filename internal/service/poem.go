package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/kapu/haengsi-web-go/internal/domain"
	"github.com/kapu/haengsi-web-go/internal/prompt"
	"github.com/kapu/haengsi-web-go/internal/util"
	apperrors "github.com/kapu/haengsi-web-go/pkg/errors"
)

// TextGenerator abstracts ModelManager for the poem service and its tests.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (text, provider, model string, err error)
}

// PoemService turns a validated word into an acrostic poem result. Failures
// are carried in the result, never as a Go error: the caller branches on
// GenerationResult.Kind.
type PoemService struct {
	generator TextGenerator
	model     string
	logger    *zap.Logger
}

func NewPoemService(generator TextGenerator, model string, logger *zap.Logger) *PoemService {
	return &PoemService{
		generator: generator,
		model:     model,
		logger:    logger,
	}
}

// Generate performs exactly one generation call for word. The word must have
// passed Validate before this is called.
func (ps *PoemService) Generate(ctx context.Context, word *domain.Word) *domain.GenerationResult {
	req := domain.GenerationRequest{
		Word:   word.Trimmed,
		Prompt: prompt.BuildAcrostic(word.Trimmed),
		Model:  ps.model,
	}

	text, provider, model, err := ps.generator.GenerateText(ctx, req.Prompt)
	if err != nil {
		// The user-facing message carries the raw provider error, not the
		// service-layer wrapping.
		cause := err
		var serr *apperrors.ServiceError
		if errors.As(err, &serr) && serr.Cause != nil {
			cause = serr.Cause
		}
		if isEncodingError(cause) {
			ps.logger.Warn("Generation hit a text-encoding fault",
				zap.String("word", req.Word),
				zap.Error(err),
			)
			return domain.EncodingErrorResult()
		}
		ps.logger.Error("Generation failed",
			zap.String("word", req.Word),
			zap.Error(err),
		)
		return domain.APIErrorResult(cause)
	}

	if strings.TrimSpace(text) == "" {
		ps.logger.Warn("Provider returned empty text", zap.String("word", req.Word))
		return domain.EmptyResult(provider, model)
	}

	ps.logger.Info("Poem generated",
		zap.String("word", req.Word),
		zap.String("provider", provider),
		zap.String("model", model),
		zap.String("preview", util.TruncateString(text, 40)),
	)
	return domain.SuccessResult(text, provider, model)
}

// isEncodingError reproduces the upstream heuristic: any error whose message
// mentions "ascii" or "codec" is treated as a 한글 encoding fault. Known to
// misclassify unrelated errors containing those substrings.
func isEncodingError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "ascii") || strings.Contains(msg, "codec")
}
