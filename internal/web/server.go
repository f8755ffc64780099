// Package web hosts the dashboard HTTP server: locale-prefixed pages,
// the mock sign-in flows and the group session lifecycle.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/healing-together/recoveryhub/internal/storage"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr  string
	AuthDelay time.Duration
	CookieKey string
	TokenKey  string
}

// Server hosts the dashboard HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer builds a configured web server.
func NewServer(config Config, store storage.Store) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if store == nil {
		return nil, errors.New("content store is required")
	}
	if strings.TrimSpace(config.CookieKey) == "" {
		config.CookieKey = "recoveryhub-dev-cookie-key"
		log.Printf("cookie key not set, using the development default")
	}
	if strings.TrimSpace(config.TokenKey) == "" {
		config.TokenKey = "recoveryhub-dev-token-key"
		log.Printf("token key not set, using the development default")
	}

	handler := newHandler(config, store)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
