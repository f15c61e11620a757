package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/legalaid-ng/legalaid-api/api/handlers"
	"github.com/legalaid-ng/legalaid-api/config"
)

const shutdownTimeout = 30 * time.Second

func main() {
	conf, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := handlers.App{Config: *conf}
	if err := a.Initialize(ctx); err != nil { //initialize database and router
		log.Fatalf("failed to initialize: %v", err)
	}
	if err := a.Scheduler.Start(); err != nil {
		zap.S().Fatalw("failed to start scheduler", "error", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", conf.Port),
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.S().Infow("legalaid-api is up and running",
			"port", conf.Port,
			"url", conf.BaseURL,
			"rootDomain", conf.RootDomain,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalw("server stopped", "error", err)
		}
	}()

	<-ctx.Done()
	zap.S().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.S().Errorw("failed to shut down server", "error", err)
	}
	if err := a.Close(shutdownCtx); err != nil {
		zap.S().Errorw("failed to close app", "error", err)
	}
	_ = zap.S().Sync()
}
