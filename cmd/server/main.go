package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/config"
	"github.com/duyvawss25/Do-An-Co-So/internal/api/handler"
	"github.com/duyvawss25/Do-An-Co-So/internal/api/router"
	"github.com/duyvawss25/Do-An-Co-So/internal/repository"
	"github.com/duyvawss25/Do-An-Co-So/internal/service"
	"github.com/duyvawss25/Do-An-Co-So/pkg/database"
	"github.com/duyvawss25/Do-An-Co-So/pkg/jwt"
	"github.com/duyvawss25/Do-An-Co-So/pkg/logger"
	"github.com/duyvawss25/Do-An-Co-So/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLogger, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, zapLogger *zap.Logger) error {
	db, err := database.NewDB(&cfg.Database, zapLogger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, zapLogger); err != nil {
		return err
	}

	// Redis is optional: without it the token blacklist and rate
	// limiting are disabled but the API keeps working.
	rdb, err := redis.NewClient(&cfg.Redis, zapLogger)
	if err != nil {
		zapLogger.Warn("redis unavailable, blacklist and rate limiting disabled", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, zapLogger)
	h := handler.NewHandler(svc, zapLogger)
	engine := router.New(cfg, h, jwtMgr, rdb, zapLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		zapLogger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	zapLogger.Info("server stopped")
	return nil
}
