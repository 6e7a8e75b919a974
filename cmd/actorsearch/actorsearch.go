package main

import (
	"errors"
	"flag"
	"github.com/clambin/actorsearch/internal/config"
	"github.com/clambin/actorsearch/internal/server"
	"github.com/clambin/actorsearch/pkg/cache"
	"github.com/clambin/actorsearch/pkg/tmdb"
	"github.com/clambin/go-common/httputils/middleware"
	"github.com/clambin/go-common/httputils/roundtripper"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"log/slog"
	"net/http"
	"os"
)

var (
	version    = "change-me"
	debug      = flag.Bool("debug", false, "enable debug logging")
	configFile = flag.String("config", "", "configuration file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	var opts slog.HandlerOptions
	if *debug || cfg.Debug {
		opts.Level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &opts))

	if cfg.TMDB.APIKey == "" {
		logger.Warn("no TMDB API key configured. All requests will fail")
	}

	store := makeStore(cfg.Cache, logger)

	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 100
	// ask for non-compressed responses so we have a clear text copy in our cache
	t.DisableCompression = true

	responseCache := cache.NewRoundTripper(store, roundtripper.New(
		roundtripper.WithLimiter(int64(cfg.TMDB.MaxConcurrent)),
		roundtripper.WithRoundTripper(t),
	), logger)
	prometheus.MustRegister(responseCache)

	tmdbClient := tmdb.New(cfg.TMDB.APIKey, &http.Client{Transport: responseCache, Timeout: cfg.TMDB.Timeout})
	tmdbClient.BaseURL = cfg.TMDB.BaseURL

	s := server.New(tmdbClient, logger)
	prometheus.MustRegister(s)

	logger.Info("Starting actor search",
		"version", version,
		slog.Group("cache", "ttl", cfg.Cache.TTL, "redis", cfg.Cache.Redis.Addr),
	)

	go func() {
		m := http.NewServeMux()
		m.Handle("/metrics", promhttp.Handler())
		m.Handle("/readyz", cache.HealthHandler(store, logger))
		if err := http.ListenAndServe(cfg.Metrics.Addr, m); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start Prometheus metrics server", "err", err)
			os.Exit(1)
		}
	}()

	httpServer := http.Server{
		Addr:    cfg.Server.Addr,
		Handler: middleware.RequestLogger(logger, slog.LevelDebug, middleware.DefaultRequestLogFormatter)(s),
	}
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to start actor search server", "err", err)
		os.Exit(1)
	}
}

func makeStore(cfg config.CacheConfig, logger *slog.Logger) cache.Store {
	if cfg.Redis.Addr == "" {
		return cache.NewMemoryStore(cfg.TTL, cfg.Cleanup)
	}
	logger.Debug("using redis cache", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
	})
	return cache.NewRedisStore(client, "github.com/clambin/actorsearch", cfg.TTL)
}
