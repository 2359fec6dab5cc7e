package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kapu/haengsi-web-go/internal/constants"
	"github.com/kapu/haengsi-web-go/internal/domain"
	"github.com/kapu/haengsi-web-go/internal/util"
)

//go:embed templates/*.html
var templateFS embed.FS

// PoemGenerator is the slice of PoemService the handlers need.
type PoemGenerator interface {
	Generate(ctx context.Context, word *domain.Word) *domain.GenerationResult
}

// Server renders the single-page 행시 UI. One synchronous render pass per
// user action; the generation call blocks the request it belongs to.
type Server struct {
	poems  PoemGenerator
	logger *zap.Logger
	tmpl   *template.Template
	usage  template.HTML
	router chi.Router
}

func NewServer(poems PoemGenerator, logger *zap.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	usage, err := renderUsage()
	if err != nil {
		return nil, err
	}

	s := &Server{
		poems:  poems,
		logger: logger,
		tmpl:   tmpl,
		usage:  usage,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/generate", s.handleGenerate)
	r.Get("/healthz", s.handleHealthz)

	s.router = r
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleIndex renders the form. A word query parameter prefills the field
// and, when invalid, produces the inline (non-blocking) warning.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	raw := util.ClampString(r.URL.Query().Get("word"), constants.InputLimits.MaxFormValueLength)
	s.render(w, formPage(raw, s.usage))
}

// handleGenerate runs the submit flow: re-validate, then one blocking
// generation call for a valid word.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	raw := util.ClampString(r.PostFormValue("word"), constants.InputLimits.MaxFormValueLength)
	word := domain.NewWord(raw)

	if err := word.Validate(); err != nil {
		s.render(w, rejectedPage(raw, err.Error(), s.usage))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constants.GenerationConfig.Timeout)
	defer cancel()

	result := s.poems.Generate(ctx, word)
	s.logger.Debug("Render result page",
		zap.String("word", word.Trimmed),
		zap.String("kind", result.Kind.String()),
	)
	s.render(w, resultPage(word, result, s.usage))
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) render(w http.ResponseWriter, page *Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index", page); err != nil {
		s.logger.Error("Template execution failed", zap.Error(err))
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
