package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mindwellhq/mindwell-backend/internal/api"
	"github.com/mindwellhq/mindwell-backend/internal/auth"
	"github.com/mindwellhq/mindwell-backend/internal/config"
	"github.com/mindwellhq/mindwell-backend/internal/db"
	"github.com/mindwellhq/mindwell-backend/internal/logger"
	"github.com/mindwellhq/mindwell-backend/internal/metrics"
	"github.com/mindwellhq/mindwell-backend/internal/ocr"
	"github.com/mindwellhq/mindwell-backend/internal/repository/postgres"
	"github.com/mindwellhq/mindwell-backend/internal/services"
	"github.com/mindwellhq/mindwell-backend/internal/upload"
	"github.com/mindwellhq/mindwell-backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		log.Error("migrations", "err", err)
		os.Exit(1)
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	uploads, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Error("upload dir", "err", err)
		os.Exit(1)
	}

	metrics.Init()

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	tm := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLH)*time.Hour)
	audit := services.NewAuditRecorder(repos.AuditLogs, wp)
	authSvc := services.NewAuthService(repos.Users, tm)
	adminSvc := services.NewAdminService(repos.Admins, tm, audit)
	resourceSvc := services.NewResourceService(repos.Resources, audit)

	r := api.NewRouter(api.Deps{
		Cfg:         cfg,
		TM:          tm,
		AuthSvc:     authSvc,
		AdminSvc:    adminSvc,
		ResourceSvc: resourceSvc,
		Uploads:     uploads,
		OCR:         ocr.NewClient(cfg.OCRBaseURL),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
