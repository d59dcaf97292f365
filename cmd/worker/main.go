package main //worker

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"portfolio/internal/infrastructure/db"
	"portfolio/internal/infrastructure/processor"
	"portfolio/internal/infrastructure/queue"
	"portfolio/internal/infrastructure/storage"
	"portfolio/internal/pkg/config"
	"portfolio/internal/pkg/logger"
	"portfolio/internal/usecases"
	consts "portfolio/pkg/constants"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const pollTimeout = 5 * time.Second

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

	if !cfg.Redis.Enabled() {
		log.Fatal("REDIS_HOST is required for the worker")
	}
	if err := cfg.EnsureDirs(); err != nil {
		log.Fatal("upload dirs", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeDB, err := db.OpenRegistry(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal("DB bağlantısı başarısız", zap.Error(err))
	}
	defer closeDB()

	store, err := storage.New(ctx, cfg.Storage, cfg.Upload.UploadsDir)
	if err != nil {
		log.Fatal("storage", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
	defer rdb.Close()
	jobs := queue.NewRedisQueue(rdb, consts.JobQueueKey)

	thumbnails := usecases.NewThumbnailService(repos.Images, repos.Videos, store, processor.NewFFmpeg(), jobs, cfg.Upload.TempDir, log)

	// Başarısız işler sona eklenir, deneme sayısı Job.Attempt içinde taşınır
	retry := func(job queue.Job) {
		if err := jobs.Publish(context.Background(), job); err != nil {
			log.Error("requeue failed", zap.String("media_id", job.MediaID), zap.Error(err))
		}
	}
	pool := queue.NewWorkerPool(cfg.App.WorkerCount, thumbnails.HandleJob, retry, log)

	log.Info("worker started", zap.Int("workers", cfg.App.WorkerCount), zap.String("queue", consts.JobQueueKey))

	// BRPOP loop to process jobs
	for ctx.Err() == nil {
		job, err := jobs.Next(ctx, pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			log.Warn("BRPop failed", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		if job == nil {
			continue
		}
		pool.AddJob(*job)
	}

	log.Info("worker stopping, draining jobs")
	pool.Shutdown()
}
