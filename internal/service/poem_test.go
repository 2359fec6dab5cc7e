package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kapu/haengsi-web-go/internal/domain"
	apperrors "github.com/kapu/haengsi-web-go/pkg/errors"
)

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, string, string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", "", "", f.err
	}
	return f.text, "Gemini", "test-model", nil
}

func newTestService(gen *fakeGenerator) *PoemService {
	return NewPoemService(gen, "test-model", zap.NewNop())
}

func TestGenerateSuccess(t *testing.T) {
	gen := &fakeGenerator{text: "[바]람이 분다\n[다]정히 웃는다"}
	result := newTestService(gen).Generate(context.Background(), domain.NewWord("바다"))

	require.True(t, result.OK())
	assert.Equal(t, []string{"[바]람이 분다", "[다]정히 웃는다"}, result.Lines())
	assert.Equal(t, "Gemini", result.Provider)

	require.Len(t, gen.prompts, 1)
	assert.Equal(t, 2, strings.Count(gen.prompts[0], "바다"))
}

func TestGenerateTrimsSurroundingWhitespace(t *testing.T) {
	gen := &fakeGenerator{text: "\n[바]람\n[다]정\n\n"}
	result := newTestService(gen).Generate(context.Background(), domain.NewWord("바다"))

	require.True(t, result.OK())
	assert.Equal(t, "[바]람\n[다]정", result.Text)
}

func TestGenerateEmptyResponse(t *testing.T) {
	gen := &fakeGenerator{text: "   \n  "}
	result := newTestService(gen).Generate(context.Background(), domain.NewWord("바다"))

	assert.Equal(t, domain.KindEmptyResponse, result.Kind)
	assert.Equal(t, domain.MsgGenerationFailed, result.Text)
}

func TestGenerateEncodingErrorHeuristic(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want domain.ResultKind
	}{
		{"codec in message", errors.New("utf-8 codec can't decode byte"), domain.KindEncodingError},
		{"ascii in message", errors.New("'ASCII' encode failure"), domain.KindEncodingError},
		{"unrelated error", errors.New("connection refused"), domain.KindAPIError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &fakeGenerator{err: tc.err}
			result := newTestService(gen).Generate(context.Background(), domain.NewWord("바다"))

			assert.Equal(t, tc.want, result.Kind)
			if tc.want == domain.KindEncodingError {
				assert.Equal(t, domain.MsgEncodingError, result.Text)
			} else {
				assert.Equal(t, domain.MsgAPIErrorPrefix+tc.err.Error(), result.Text)
			}
		})
	}
}

func TestGenerateUnwrapsServiceErrors(t *testing.T) {
	cause := errors.New("utf-8 codec can't decode byte")
	gen := &fakeGenerator{err: apperrors.NewServiceError("text generation failed", "Gemini", "generate", cause)}
	result := newTestService(gen).Generate(context.Background(), domain.NewWord("바다"))
	assert.Equal(t, domain.KindEncodingError, result.Kind)

	cause = errors.New("connection refused")
	gen = &fakeGenerator{err: apperrors.NewServiceError("text generation failed", "Gemini", "generate", cause)}
	result = newTestService(gen).Generate(context.Background(), domain.NewWord("바다"))
	assert.Equal(t, domain.KindAPIError, result.Kind)
	// message carries the raw provider error, not the service wrapping
	assert.Equal(t, domain.MsgAPIErrorPrefix+"connection refused", result.Text)
}

type scriptedProvider struct {
	name  string
	model string
	text  string
	err   error
	calls int
}

func (s *scriptedProvider) Name() string  { return s.name }
func (s *scriptedProvider) Model() string { return s.model }

func (s *scriptedProvider) GenerateText(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestModelManagerFallback(t *testing.T) {
	primary := &scriptedProvider{name: "Gemini", model: "g", err: errors.New("quota exceeded")}
	fallback := &scriptedProvider{name: "OpenAI", model: "o", text: "poem"}

	mm := &ModelManager{
		primary:        primary,
		fallback:       fallback,
		enableFallback: true,
		logger:         zap.NewNop(),
	}

	text, provider, model, err := mm.GenerateText(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "poem", text)
	assert.Equal(t, "OpenAI", provider)
	assert.Equal(t, "o", model)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestModelManagerNoFallbackByDefault(t *testing.T) {
	primary := &scriptedProvider{name: "Gemini", model: "g", err: errors.New("boom")}
	fallback := &scriptedProvider{name: "OpenAI", model: "o", text: "poem"}

	mm := &ModelManager{
		primary:  primary,
		fallback: fallback,
		logger:   zap.NewNop(),
	}

	_, _, _, err := mm.GenerateText(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, 0, fallback.calls)

	var serr *apperrors.ServiceError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "Gemini", serr.Service)
	assert.Equal(t, "generate", serr.Operation)
	assert.ErrorIs(t, err, primary.err)
}
