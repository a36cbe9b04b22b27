package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/doclens/doclens/internal/analyzer"
	"github.com/doclens/doclens/internal/config"
	"github.com/doclens/doclens/internal/llm"
	"github.com/doclens/doclens/internal/source"
	"github.com/doclens/doclens/internal/store"
	"github.com/doclens/doclens/internal/suggest"
)

type Server struct {
	cfg      config.Config
	server   *http.Server
	analyzer *analyzer.Analyzer
	store    *store.Store
	folder   *source.Folder
	suggest  *suggest.Service
	llm      llm.Provider
}

// New wires the handlers onto a chi router. The llm provider may be nil,
// in which case the enhance endpoint reports itself unavailable.
func New(cfg config.Config, an *analyzer.Analyzer, st *store.Store, folder *source.Folder, sg *suggest.Service, provider llm.Provider) *Server {
	s := &Server{
		cfg:      cfg,
		analyzer: an,
		store:    st,
		folder:   folder,
		suggest:  sg,
		llm:      provider,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(s.loggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/upload", s.handleUpload)
		r.Get("/documents", s.handleListDocuments)
		r.Post("/documents/{name}/analyze", s.handleAnalyzeDocument)
		r.Get("/history", s.handleHistory)
		r.Post("/suggest", s.handleSuggest)
		r.Post("/enhance", s.handleEnhance)
		r.Get("/health", s.handleHealth)
	})

	// Static files for the front end
	fs := http.FileServer(http.Dir("web/static"))
	r.Handle("/*", fs)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)

		slog.Info("HTTP request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration", time.Since(start),
			"remote_addr", r.RemoteAddr,
		)
	})
}

func (s *Server) Run() error {
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("Starting server", "address", s.server.Addr)
		serverErrors <- s.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("Starting shutdown", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}

// Custom response writer to capture status code
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.status == 0 {
		rw.status = http.StatusOK
	}
	return rw.ResponseWriter.Write(b)
}
