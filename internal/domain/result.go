package domain

import "strings"

// ResultKind tags a GenerationResult so callers branch on structure instead
// of matching localized message prefixes.
type ResultKind int

const (
	KindSuccess ResultKind = iota
	KindEmptyResponse
	KindEncodingError
	KindAPIError
)

func (k ResultKind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindEmptyResponse:
		return "empty_response"
	case KindEncodingError:
		return "encoding_error"
	case KindAPIError:
		return "api_error"
	default:
		return "unknown"
	}
}

// Failure messages shown to the user. Kept word-for-word stable; the UI
// displays them as-is.
const (
	MsgGenerationFailed = "행시 생성에 실패했습니다. 다시 시도해주세요."
	MsgEncodingError    = "한글 처리 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	MsgAPIErrorPrefix   = "API 오류가 발생했습니다: "
)

// GenerationResult is the outcome of one generation call. Text holds the poem
// on success and the localized failure message otherwise. Held only for the
// current render cycle.
type GenerationResult struct {
	Kind     ResultKind
	Text     string
	Provider string
	Model    string
}

func SuccessResult(text, provider, model string) *GenerationResult {
	return &GenerationResult{Kind: KindSuccess, Text: strings.TrimSpace(text), Provider: provider, Model: model}
}

func EmptyResult(provider, model string) *GenerationResult {
	return &GenerationResult{Kind: KindEmptyResponse, Text: MsgGenerationFailed, Provider: provider, Model: model}
}

func EncodingErrorResult() *GenerationResult {
	return &GenerationResult{Kind: KindEncodingError, Text: MsgEncodingError}
}

func APIErrorResult(cause error) *GenerationResult {
	return &GenerationResult{Kind: KindAPIError, Text: MsgAPIErrorPrefix + cause.Error()}
}

func (r *GenerationResult) OK() bool {
	return r.Kind == KindSuccess
}

// Lines splits a successful payload into non-blank poem lines.
func (r *GenerationResult) Lines() []string {
	if !r.OK() {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(r.Text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
