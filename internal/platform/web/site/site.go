// Package site serves the browser build: an HTML shell, wasm_exec.js and
// the game's .wasm bundle.
package site

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// Config holds configuration for the web server.
type Config struct {
	Address string // host:port to listen on
	Dir     string // directory with wasm_exec.js and the bundle
	Wasm    string // bundle file name inside Dir
	Title   string
	Logger  *log.Logger
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address: ":8080",
		Dir:     "dist",
		Wasm:    "flappy.wasm",
		Title:   "Flappy Bird",
	}
}

// Server serves the browser build.
type Server struct {
	config Config
	logger *log.Logger
	http   *http.Server
}

// New creates a server. It fails if Dir lacks the bundle so a missing
// build is reported at startup instead of as a broken page.
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	bundle := filepath.Join(cfg.Dir, cfg.Wasm)
	if _, err := os.Stat(bundle); err != nil {
		return nil, fmt.Errorf("site: wasm bundle: %w", err)
	}

	s := &Server{config: cfg, logger: logger}
	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler returns the routes of the site.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.serveIndex)

	files := http.FileServer(http.Dir(s.config.Dir))
	mux.Handle("GET /wasm_exec.js", files)
	mux.Handle("GET /"+s.config.Wasm, files)

	return s.logRequests(mux)
}

func (s *Server) serveIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTmpl.Execute(w, struct{ Title, Wasm string }{s.config.Title, s.config.Wasm})
	if err != nil {
		s.logger.Error("render index", "error", err)
	}
}

// statusWriter records the response code for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"remote", r.RemoteAddr,
			"elapsed", time.Since(start),
		)
	})
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("site: %w", err)
	}
	return s.Serve(ctx, l)
}

// Serve accepts connections on l until ctx is done.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	s.logger.Info("starting web server", "address", l.Addr().String(), "dir", s.config.Dir)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(l)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("site: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
