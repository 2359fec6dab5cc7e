package web

import (
	"html/template"
	"strings"

	"github.com/kapu/haengsi-web-go/internal/domain"
)

// PageState is the view state for one render pass. Every user action maps to
// exactly one state before the template runs.
type PageState int

const (
	// StateIdle renders the bare form, optionally with an inline warning
	// when the prefilled word would not validate.
	StateIdle PageState = iota
	// StateValidationFailed renders a blocking error after an explicit
	// submit with invalid input. No generation call was made.
	StateValidationFailed
	// StateDisplayResult renders the poem with a success banner.
	StateDisplayResult
	// StateDisplayError renders a generation failure banner.
	StateDisplayError
)

// Page is the single view model consumed by the index template.
type Page struct {
	State     PageState
	Word      string
	Warning   string
	Error     string
	Subject   string
	Openers   []string
	PoemLines []string
	Provider  string
	Model     string
	Usage     template.HTML
}

func (p *Page) IsIdle() bool          { return p.State == StateIdle }
func (p *Page) HasWarning() bool      { return p.Warning != "" }
func (p *Page) ShowBlockingErr() bool { return p.State == StateValidationFailed || p.State == StateDisplayError }
func (p *Page) ShowResult() bool      { return p.State == StateDisplayResult }

// formPage builds the Idle view. A present-but-invalid word produces an
// inline warning without blocking the form.
func formPage(raw string, usage template.HTML) *Page {
	page := &Page{
		State: StateIdle,
		Word:  strings.TrimSpace(raw),
		Usage: usage,
	}
	if page.Word != "" {
		if err := domain.NewWord(raw).Validate(); err != nil {
			page.Warning = err.Error()
		}
	}
	return page
}

// rejectedPage builds the blocking validation-error view for a submit.
func rejectedPage(raw, message string, usage template.HTML) *Page {
	return &Page{
		State: StateValidationFailed,
		Word:  strings.TrimSpace(raw),
		Error: message,
		Usage: usage,
	}
}

// resultPage routes a GenerationResult to the success or error view.
func resultPage(word *domain.Word, result *domain.GenerationResult, usage template.HTML) *Page {
	if !result.OK() {
		return &Page{
			State: StateDisplayError,
			Word:  word.Trimmed,
			Error: result.Text,
			Usage: usage,
		}
	}
	return &Page{
		State:     StateDisplayResult,
		Word:      word.Trimmed,
		Subject:   word.Trimmed,
		Openers:   word.Syllables(),
		PoemLines: result.Lines(),
		Provider:  result.Provider,
		Model:     result.Model,
		Usage:     usage,
	}
}
