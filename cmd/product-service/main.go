package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/product/application"
	producthttp "github.com/yasir-khalid/payments-inventory-microservices/internal/product/infrastructure/http"
	productredis "github.com/yasir-khalid/payments-inventory-microservices/internal/product/infrastructure/redis"
	"github.com/yasir-khalid/payments-inventory-microservices/pkg/config"
	"github.com/yasir-khalid/payments-inventory-microservices/pkg/logging"
	"github.com/yasir-khalid/payments-inventory-microservices/pkg/metrics"
	"github.com/yasir-khalid/payments-inventory-microservices/pkg/shutdown"
)

func main() {
	log := logging.New("product-service")

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	cfg, err := config.LoadProductService()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("redis connect failed", "addr", cfg.Redis.Addr(), "err", err)
		os.Exit(1)
	}

	repo := productredis.NewRepository(log, rdb)
	svc := application.NewService(log, repo)
	handler := producthttp.NewHandler(log, svc)

	m := metrics.NewServerMetrics("products")
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))
	r.Use(m.Middleware)
	r.Handle("/metrics", metrics.Handler())
	r.Mount("/", handler.Routes())

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	log.Info("product-service shutdown complete")
}
