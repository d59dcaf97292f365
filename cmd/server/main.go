package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "portfolio/docs"
	_ "portfolio/migrations"

	"portfolio/internal/delivery/http/routers"
	"portfolio/internal/delivery/scheduler"
	"portfolio/internal/infrastructure/db"
	"portfolio/internal/infrastructure/processor"
	"portfolio/internal/infrastructure/queue"
	"portfolio/internal/infrastructure/seed"
	"portfolio/internal/infrastructure/storage"
	"portfolio/internal/pkg/config"
	"portfolio/internal/pkg/logger"
	"portfolio/internal/usecases"
	consts "portfolio/pkg/constants"
	"portfolio/pkg/errors/i18n"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title        Portfolio API
// @version      1.0
// @description  Content and media API for a photography portfolio.
// @BasePath     /api
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

	if err := i18n.Load(cfg.App.Locale); err != nil {
		log.Warn("locale not available, falling back", zap.String("locale", cfg.App.Locale), zap.Error(err))
	}
	if err := cfg.EnsureDirs(); err != nil {
		log.Fatal("upload dirs", zap.Error(err))
	}

	ctx := context.Background()

	repos, closeDB, err := db.OpenRegistry(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal("DB bağlantısı başarısız", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer closeDB()

	// Redis opsiyonel: yoksa video thumbnail işleri kuyruğa atılmaz
	var publisher queue.Publisher
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, background jobs disabled", zap.String("addr", cfg.Redis.Addr()), zap.Error(err))
		} else {
			publisher = queue.NewRedisQueue(rdb, consts.JobQueueKey)
		}
	}

	store, err := storage.New(ctx, cfg.Storage, cfg.Upload.UploadsDir)
	if err != nil {
		log.Fatal("storage", zap.Error(err))
	}
	uploadsDir := ""
	if cfg.Storage.Driver != "s3" {
		uploadsDir = cfg.Upload.UploadsDir
	}

	mediaService := usecases.NewMediaService(repos.Images, repos.Videos, store, publisher, usecases.MediaLimits{
		TempDir:      cfg.Upload.TempDir,
		MaxImageSize: cfg.Upload.MaxImageSize,
		MaxVideoSize: cfg.Upload.MaxVideoSize,
	}, log)
	thumbnailService := usecases.NewThumbnailService(repos.Images, repos.Videos, store, processor.NewFFmpeg(), publisher, cfg.Upload.TempDir, log)

	data, err := seed.Load(cfg.App.SeedFile)
	if err != nil {
		log.Fatal("seed", zap.Error(err))
	}
	if err := usecases.NewSeedService(repos, log).SeedDefaults(ctx, data); err != nil {
		log.Error("seeding default data failed", zap.Error(err))
	}

	jobs, err := scheduler.New(scheduler.Jobs{
		Cleanup:     usecases.NewCleanupService(cfg.Upload.TempDir, log),
		Thumbnails:  thumbnailService,
		Media:       mediaService,
		TempMaxAge:  scheduler.DefaultTempMaxAge,
		PruneBroken: cfg.App.PruneBroken,
		Logger:      log,
	})
	if err != nil {
		log.Fatal("cron", zap.Error(err))
	}
	jobs.Start()

	app := routers.NewApp(routers.Deps{
		Repos:      repos,
		Media:      mediaService,
		UploadsDir: uploadsDir,
		BodyLimit:  int(cfg.Upload.MaxVideoSize) + 10*1024*1024, // multipart alanları için pay
		AccessLog:  true,
		Logger:     log,
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Info("server starting", zap.String("addr", addr), zap.String("db", cfg.Database.Driver), zap.Bool("jobs", publisher != nil))

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatal("Server başlatılamadı", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown sinyali alındı, server kapatılıyor...")

	<-jobs.Stop().Done()

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Error("Server düzgün kapatılamadı", zap.Error(err))
		return
	}
	log.Info("Server düzgün bir şekilde kapatıldı")
}
