package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"belegcheck/internal/amountclass"
	"belegcheck/internal/platform/config"
	"belegcheck/internal/platform/httpserver"
	"belegcheck/internal/platform/logger"
	platformredis "belegcheck/internal/platform/redis"
	httptransport "belegcheck/internal/transport/http"
	"belegcheck/internal/validation"
	"belegcheck/internal/validation/handler"
	"belegcheck/internal/validation/metrics"
	"belegcheck/internal/vies"
	"belegcheck/internal/vies/cache"
	viesmetrics "belegcheck/internal/vies/metrics"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}

	var cacheStore cache.Store
	var health httptransport.HealthChecker
	if redisClient != nil {
		cacheStore = cache.NewRedisStore(redisClient.Client, cfg.ViesCacheTTL)
		health = redisClient
		log.Info("registry cache backed by redis")
	} else {
		cacheStore = cache.NewMemoryStore(cfg.ViesCacheTTL, cfg.ViesCacheMax)
		log.Info("registry cache in process memory")
	}

	viesClient := vies.NewRESTClient(cfg.ViesBaseURL, cfg.ViesTimeout)
	verifier := vies.NewVerifier(viesClient, cacheStore, cfg.ViesTimeout, log,
		vies.WithMetrics(viesmetrics.New()))

	suite := validation.NewSuite(cfg.DomesticCountry, cfg.LegalVatRates, cfg.AmountTolerance)
	classifier := amountclass.New(cfg.ReferenceCurrency, cfg.SmallInvoiceCeiling, cfg.LargeInvoiceFloor)

	svc, err := validation.NewService(suite, classifier, verifier, log,
		validation.WithMetrics(metrics.New()))
	if err != nil {
		log.Error("service construction failed", "error", err)
		os.Exit(1)
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Validation: handler.New(svc, log),
		Redis:      health,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting belegcheck", "addr", cfg.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
}
