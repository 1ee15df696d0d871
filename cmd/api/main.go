// cmd/api/main.go
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"eventscout/cache"
	"eventscout/internal/config"
	"eventscout/internal/events"
	"eventscout/internal/http/routes"
	"eventscout/ticketmaster"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Upstream client
	tm, err := ticketmaster.New(cfg.Ticketmaster.APIKey,
		ticketmaster.WithBaseURL(cfg.Ticketmaster.BaseURL),
		ticketmaster.WithHTTPClient(&http.Client{Timeout: cfg.Ticketmaster.Timeout}),
	)
	if err != nil {
		log.Fatalf("ticketmaster client error: %v", err)
	}

	// One store for the process lifetime, shared by all requests
	store := cache.NewMemoryStore()

	svc := events.NewService(events.ServiceOptions{
		Fetcher:   tm,
		Store:     store,
		Logger:    logger,
		SearchTTL: cfg.Cache.SearchTTL,
		DetailTTL: cfg.Cache.DetailTTL,
		MinRadius: cfg.Search.MinRadius,
		MaxRadius: cfg.Search.MaxRadius,
		PageSize:  cfg.Search.PageSize,
	})

	s := routes.New(routes.ServerOptions{
		Events:      svc,
		Log:         logger,
		CORSOrigins: cfg.CORSOrigins,
	})
	h := hlog.NewHandler(logger)(s.Router)

	log.Printf("starting app on :%s", cfg.Port)
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
