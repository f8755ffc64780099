package server

import (
	"context"
	"fmt"
	"log"

	platformotel "github.com/healing-together/recoveryhub/internal/platform/otel"
	"github.com/healing-together/recoveryhub/internal/storage/sqlite"
	"github.com/healing-together/recoveryhub/internal/web"
)

// Run starts the dashboard web server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := platformotel.Setup(ctx, "recoveryhub-web")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.StoragePath)
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close content store: %v", err)
		}
	}()

	srv, err := web.NewServer(web.Config{
		HTTPAddr:  cfg.HTTPAddr,
		AuthDelay: cfg.AuthDelay,
		CookieKey: cfg.CookieKey,
		TokenKey:  cfg.TokenKey,
	}, store)
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := srv.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
