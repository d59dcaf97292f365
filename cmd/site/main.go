package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/internal/client"
	"portfolio/internal/pkg/config"
	"portfolio/internal/pkg/logger"
	"portfolio/internal/portfolio"
	"portfolio/internal/site"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	envErr := godotenv.Load()
	if envErr != nil {
		envErr = godotenv.Load("../../.env")
	}
	cfg := config.LoadConfig()
	log := logger.Must(cfg.App.LogLevel, cfg.App.Env)
	defer func() { _ = log.Sync() }()
	if envErr != nil {
		log.Debug("no .env file found, using system environment variables")
	}

	api, err := client.New(cfg.Client.BackendURL, client.WithLogger(log))
	if err != nil {
		log.Fatal("backend url", zap.Error(err))
	}
	if !api.Configured() {
		// Sayfa yine açılır, hata ekranı gösterilir
		log.Warn("PORTFOLIO_BACKEND_URL is not set")
	}

	app := site.New(portfolio.NewLoader(api, log), log).App(true)
	addr := ":" + cfg.Client.SitePort
	log.Info("site starting", zap.String("addr", addr), zap.String("backend", api.BaseURL()))

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatal("site başlatılamadı", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("site düzgün kapatılamadı", zap.Error(err))
	}
}
