package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"shopassist/internal/assistant"
	"shopassist/internal/config"
	"shopassist/internal/httpx"
	"shopassist/internal/llm/groq"
	"shopassist/internal/logx"
	"shopassist/internal/search"
	"shopassist/internal/search/cache"
	"shopassist/internal/search/ratelimit"
	"shopassist/internal/search/serper"
	"shopassist/internal/search/serperadapter"
)

func main() {
	log := logx.New()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Error("config", logx.Err(err))
		os.Exit(1)
	}
	if cfg.Serper.APIKey == "" {
		log.Warn("SERPER_API_KEY not set; price search will fail")
	}
	if cfg.Groq.APIKey == "" {
		log.Warn("GROQ_API_KEY not set; research and report will fail")
	}

	httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

	serperOpts := []serper.SerperAPIClientOption{
		serper.WithHTTPClient(httpClient),
		serper.WithHeader(http.Header{"User-Agent": []string{"shopassist/1.0"}}),
	}
	if cfg.Serper.Endpoint != "" {
		serperOpts = append(serperOpts, serper.WithBaseURL(cfg.Serper.Endpoint))
	}
	serperClient, err := serper.NewSerperAPIClient(cfg.Serper.APIKey, serperOpts...)
	if err != nil {
		log.Error("serper client", logx.Err(err))
		os.Exit(1)
	}

	var searcher search.Searcher = serperadapter.New(serperadapter.Config{
		QuerySuffix: cfg.Serper.QuerySuffix,
	}, serperClient)
	// Prefer token bucket with burst if RPM is set, otherwise use min-interval
	if cfg.Serper.MaxRequestsPerMinute > 0 {
		rate := float64(cfg.Serper.MaxRequestsPerMinute) / 60.0
		burst := cfg.Serper.Burst
		if burst <= 0 {
			burst = 1
		}
		searcher = &ratelimit.TokenBucketSearcher{S: searcher, TB: ratelimit.NewTokenBucket(rate, burst)}
	} else if cfg.Serper.MinRequestIntervalSec > 0 {
		searcher = &ratelimit.MinInterval{S: searcher, Interval: time.Duration(cfg.Serper.MinRequestIntervalSec) * time.Second}
	}
	if cfg.Serper.CacheTTLSeconds > 0 {
		searcher = &cache.Searcher{S: searcher, TTL: time.Duration(cfg.Serper.CacheTTLSeconds) * time.Second, MaxItems: cfg.Serper.CacheMaxItems}
	}

	groqOpts := []groq.GroqAPIClientOption{
		groq.WithHTTPClient(httpClient),
		groq.WithModel(cfg.Groq.Model),
	}
	if cfg.Groq.Endpoint != "" {
		groqOpts = append(groqOpts, groq.WithBaseURL(cfg.Groq.Endpoint))
	}
	groqClient, err := groq.NewGroqAPIClient(cfg.Groq.APIKey, groqOpts...)
	if err != nil {
		log.Error("groq client", logx.Err(err))
		os.Exit(1)
	}

	a := &api{
		assistant: assistant.New(searcher, groqClient, log),
		pricing:   cfg.Pricing,
		log:       log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(90 * time.Second))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/api/assist", a.handleAssist)
	r.Post("/api/prices", a.handlePrices)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", logx.Err(err))
			os.Exit(1)
		}
	}()

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("server stopped")
}
