// Package server exposes the two query endpoints over HTTP. It owns
// request validation, the JSON error shape, and request logging; the
// actual model/tool work lives behind the executor interfaces.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/Hadi2525/toolbridge/internal/agent"
)

// OpenAIRunner runs one query through the chat-completions loop.
type OpenAIRunner interface {
	Execute(ctx context.Context, query string) (*agent.OpenAIResult, error)
}

// GeminiRunner runs one query through the function-calling loop.
type GeminiRunner interface {
	Execute(ctx context.Context, query string) (*agent.GeminiResult, error)
}

// Server holds the handlers' collaborators.
type Server struct {
	openai   OpenAIRunner
	gemini   GeminiRunner
	logger   *slog.Logger
	validate *validator.Validate
}

// New builds a Server around the two executors.
func New(openai OpenAIRunner, gemini GeminiRunner, logger *slog.Logger) *Server {
	return &Server{
		openai:   openai,
		gemini:   gemini,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Handler returns the routed HTTP handler with logging middleware
// attached.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /query", s.handleQuery)
	mux.HandleFunc("POST /query-gemini", s.handleQueryGemini)
	return s.withRequestLog(mux)
}

// withRequestLog tags each request with a short ID and logs method, path,
// status and duration on completion.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := gonanoid.New()
		if err != nil {
			id = "unknown"
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
