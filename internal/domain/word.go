package domain

import (
	"strings"

	"github.com/kapu/haengsi-web-go/internal/constants"
	"github.com/kapu/haengsi-web-go/internal/hangul"
	"github.com/kapu/haengsi-web-go/internal/util"
	apperrors "github.com/kapu/haengsi-web-go/pkg/errors"
)

// User-facing validation messages. These are shown verbatim in the UI.
const (
	MsgEmptyWord    = "단어를 입력해주세요."
	MsgNotKorean    = "한국어 단어를 입력해주세요."
	MsgTooShortWord = "2자 이상의 단어를 입력해주세요."
	MsgTooLongWord  = "10자 이하의 단어를 입력해주세요."
)

// Word is a single user submission. It lives for one request cycle and is
// never persisted.
type Word struct {
	Raw     string
	Trimmed string
}

func NewWord(raw string) *Word {
	return &Word{
		Raw:     raw,
		Trimmed: strings.TrimSpace(raw),
	}
}

// Validate checks the word in the same order the checks are surfaced to the
// user: presence, Korean script, then length bounds on the trimmed text.
// Length is counted in runes, not bytes.
func (w *Word) Validate() error {
	if w.Trimmed == "" {
		return apperrors.NewValidationError(MsgEmptyWord, "word", w.Raw)
	}
	if !hangul.ContainsSyllable(w.Trimmed) {
		return apperrors.NewValidationError(MsgNotKorean, "word", w.Trimmed)
	}
	length := util.RuneLength(w.Trimmed)
	if length < constants.WordLimits.MinLength {
		return apperrors.NewValidationError(MsgTooShortWord, "word", w.Trimmed)
	}
	if length > constants.WordLimits.MaxLength {
		return apperrors.NewValidationError(MsgTooLongWord, "word", w.Trimmed)
	}
	return nil
}

// Syllables returns the Hangul syllables of the trimmed word.
func (w *Word) Syllables() []string {
	return hangul.Syllables(w.Trimmed)
}

// GenerationRequest pairs the rendered prompt with the model that should
// serve it. Construct one only from a Word that passed Validate.
type GenerationRequest struct {
	Word   string
	Prompt string
	Model  string
}
