package usecases

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"portfolio/internal/domain/entities"
	"portfolio/internal/domain/repositories"
	"portfolio/internal/infrastructure/queue"
	"portfolio/internal/pkg/fileutils"

	"go.uber.org/zap"
)

// VideoProcessor is implemented by processor.FFmpeg.
type VideoProcessor interface {
	Thumbnail(ctx context.Context, inputPath, outputPath, position string) error
	Duration(ctx context.Context, inputPath string) (int, error)
}

type ThumbnailService interface {
	HandleJob(ctx context.Context, job queue.Job) error
	// Backfill schedules thumbnails for media that still lack one and
	// returns how many were scheduled.
	Backfill(ctx context.Context) (int, error)
}

type thumbnailService struct {
	imageRepo repositories.CollectionRepository[entities.Image]
	videoRepo repositories.CollectionRepository[entities.Video]
	storage   repositories.StorageStrategy
	video     VideoProcessor
	publisher queue.Publisher // nil: handle inline
	tempDir   string
	logger    *zap.Logger
}

func NewThumbnailService(
	imageRepo repositories.CollectionRepository[entities.Image],
	videoRepo repositories.CollectionRepository[entities.Video],
	storage repositories.StorageStrategy,
	video VideoProcessor,
	publisher queue.Publisher,
	tempDir string,
	logger *zap.Logger,
) ThumbnailService {
	return &thumbnailService{
		imageRepo: imageRepo,
		videoRepo: videoRepo,
		storage:   storage,
		video:     video,
		publisher: publisher,
		tempDir:   tempDir,
		logger:    logger,
	}
}

func (s *thumbnailService) HandleJob(ctx context.Context, job queue.Job) error {
	switch job.Type {
	case queue.JobImageThumbnail:
		return s.imageThumbnail(ctx, job)
	case queue.JobVideoThumbnail:
		return s.videoThumbnail(ctx, job)
	default:
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
}

func (s *thumbnailService) imageThumbnail(ctx context.Context, job queue.Job) error {
	image, err := s.imageRepo.Get(ctx, job.MediaID)
	if err != nil {
		return fmt.Errorf("image %s: %w", job.MediaID, err)
	}
	if image.ThumbnailKey != "" {
		return nil
	}

	rc, err := s.storage.Open(ctx, image.StorageKey)
	if err != nil {
		return fmt.Errorf("dosya açılamadı: %w", err)
	}
	defer rc.Close()

	url, key, err := storeThumbnail(ctx, s.storage, rc, image.ID)
	if err != nil {
		return err
	}
	image.ThumbnailURL, image.ThumbnailKey = url, key
	return s.imageRepo.Save(ctx, image)
}

func (s *thumbnailService) videoThumbnail(ctx context.Context, job queue.Job) error {
	if s.video == nil {
		return fmt.Errorf("video processing is not configured")
	}
	video, err := s.videoRepo.Get(ctx, job.MediaID)
	if err != nil {
		return fmt.Errorf("video %s: %w", job.MediaID, err)
	}
	if video.ThumbnailKey != "" {
		return nil
	}

	rc, err := s.storage.Open(ctx, video.StorageKey)
	if err != nil {
		return fmt.Errorf("dosya açılamadı: %w", err)
	}
	src, _, err := fileutils.SpoolToTemp(s.tempDir, filepath.Ext(video.StorageKey), rc, 0)
	rc.Close()
	if err != nil {
		return err
	}
	defer fileutils.Discard(src)

	thumbPath := src.Name() + ".jpg"
	defer os.Remove(thumbPath)
	if err := s.video.Thumbnail(ctx, src.Name(), thumbPath, "00:00:01"); err != nil {
		return err
	}

	thumb, err := os.Open(thumbPath)
	if err != nil {
		return err
	}
	defer thumb.Close()

	key := thumbnailKey(video.ID)
	url, err := s.storage.Save(ctx, key, thumb, "image/jpeg")
	if err != nil {
		return err
	}
	video.ThumbnailURL, video.ThumbnailKey = url, key

	if d, err := s.video.Duration(ctx, src.Name()); err != nil {
		s.logger.Warn("could not read video duration", zap.String("id", video.ID), zap.Error(err))
	} else if d > 0 {
		video.Duration = d
	}
	return s.videoRepo.Save(ctx, video)
}

func (s *thumbnailService) Backfill(ctx context.Context) (int, error) {
	var jobs []queue.Job

	images, err := s.imageRepo.List(ctx, repositories.ListFilter{})
	if err != nil {
		return 0, err
	}
	for _, image := range images {
		if image.ThumbnailKey == "" && image.StorageKey != "" {
			jobs = append(jobs, queue.Job{Type: queue.JobImageThumbnail, MediaID: image.ID, StorageKey: image.StorageKey})
		}
	}

	if s.video != nil || s.publisher != nil {
		videos, err := s.videoRepo.List(ctx, repositories.ListFilter{})
		if err != nil {
			return 0, err
		}
		for _, video := range videos {
			if video.ThumbnailKey == "" && video.StorageKey != "" {
				jobs = append(jobs, queue.Job{Type: queue.JobVideoThumbnail, MediaID: video.ID, StorageKey: video.StorageKey})
			}
		}
	}

	scheduled := 0
	for _, job := range jobs {
		var err error
		if s.publisher != nil {
			err = s.publisher.Publish(ctx, job)
		} else {
			err = s.HandleJob(ctx, job)
		}
		if err != nil {
			s.logger.Warn("thumbnail backfill failed", zap.String("media_id", job.MediaID), zap.Error(err))
			continue
		}
		scheduled++
	}
	return scheduled, nil
}
