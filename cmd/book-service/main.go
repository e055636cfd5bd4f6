package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/book/application"
	"github.com/yasir-khalid/payments-inventory-microservices/internal/book/domain"
	bookhttp "github.com/yasir-khalid/payments-inventory-microservices/internal/book/infrastructure/http"
	"github.com/yasir-khalid/payments-inventory-microservices/internal/book/infrastructure/memory"
	"github.com/yasir-khalid/payments-inventory-microservices/pkg/config"
	"github.com/yasir-khalid/payments-inventory-microservices/pkg/logging"
	"github.com/yasir-khalid/payments-inventory-microservices/pkg/metrics"
	"github.com/yasir-khalid/payments-inventory-microservices/pkg/shutdown"
)

func main() {
	log := logging.New("book-service")

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	cfg, err := config.LoadBookService()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	repo := memory.NewRepository(domain.Seed())
	svc := application.NewService(log, repo)
	handler := bookhttp.NewHandler(log, svc)

	m := metrics.NewServerMetrics("books")
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
	log.Info("book-service shutdown complete")
}
