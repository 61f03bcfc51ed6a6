package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"contestlens/analyzer/internal/config"
)

// Server exposes the exported analysis document, the bundled sample
// document and the static frontend over HTTP.
type Server struct {
	cfg          config.ServerConfig
	analysisPath string
	server       *http.Server
}

// New creates a server serving the analysis document at analysisPath.
func New(cfg config.ServerConfig, analysisPath string) *Server {
	return &Server{
		cfg:          cfg,
		analysisPath: analysisPath,
	}
}

func (s *Server) routes() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.loggingMiddleware, s.corsMiddleware)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/analysis", s.getAnalysis).Methods("GET")
	api.HandleFunc("/sample", s.getSample).Methods("GET")

	router.HandleFunc("/health", s.health).Methods("GET")

	// Static frontend; "/" resolves to index.html.
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.cfg.StaticDir)))

	return router
}

// Run starts the HTTP server and blocks until the context is cancelled
// or the listener fails. Shutdown is graceful with a short deadline.
func (s *Server) Run(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	log.Infof("Starting contest-lens server on http://%s", s.cfg.Addr())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("Shutting down server...")
		return s.server.Shutdown(shutdownCtx)
	}
}
