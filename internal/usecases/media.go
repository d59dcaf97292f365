package usecases

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"portfolio/internal/domain/category"
	"portfolio/internal/domain/dto"
	"portfolio/internal/domain/entities"
	"portfolio/internal/domain/repositories"
	"portfolio/internal/infrastructure/processor"
	"portfolio/internal/infrastructure/queue"
	"portfolio/internal/pkg/fileutils"
	consts "portfolio/pkg/constants"
	apperrors "portfolio/pkg/errors"
	"portfolio/pkg/helper"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MediaService interface {
	ListImages(ctx context.Context, filter repositories.ListFilter) ([]entities.Image, error)
	UploadImage(ctx context.Context, in dto.UploadInput) (*entities.Image, error)
	UpdateImage(ctx context.Context, id string, patch dto.ImageUpdate) (*entities.Image, error)
	DeleteImage(ctx context.Context, id string) error

	ListVideos(ctx context.Context, filter repositories.ListFilter) ([]entities.Video, error)
	UploadVideo(ctx context.Context, in dto.UploadInput) (*entities.Video, error)
	UpdateVideo(ctx context.Context, id string, patch dto.VideoUpdate) (*entities.Video, error)
	DeleteVideo(ctx context.Context, id string) error

	// PruneBrokenImages deletes image records whose file is missing or truncated.
	PruneBrokenImages(ctx context.Context) (int, error)
}

type MediaLimits struct {
	TempDir      string
	MaxImageSize int64
	MaxVideoSize int64
}

// Files below this size are treated as broken by PruneBrokenImages.
const minImageBytes = 1000

type mediaService struct {
	images    ContentService[entities.Image]
	videos    ContentService[entities.Video]
	imageRepo repositories.CollectionRepository[entities.Image]
	videoRepo repositories.CollectionRepository[entities.Video]
	storage   repositories.StorageStrategy
	publisher queue.Publisher // nil: no background jobs
	limits    MediaLimits
	logger    *zap.Logger
}

func NewMediaService(
	imageRepo repositories.CollectionRepository[entities.Image],
	videoRepo repositories.CollectionRepository[entities.Video],
	storage repositories.StorageStrategy,
	publisher queue.Publisher,
	limits MediaLimits,
	logger *zap.Logger,
) MediaService {
	return &mediaService{
		images:    NewContentService(imageRepo, "Image", logger),
		videos:    NewContentService(videoRepo, "Video", logger),
		imageRepo: imageRepo,
		videoRepo: videoRepo,
		storage:   storage,
		publisher: publisher,
		limits:    limits,
		logger:    logger,
	}
}

func (s *mediaService) ListImages(ctx context.Context, filter repositories.ListFilter) ([]entities.Image, error) {
	return s.images.List(ctx, filter)
}

func (s *mediaService) ListVideos(ctx context.Context, filter repositories.ListFilter) ([]entities.Video, error) {
	return s.videos.List(ctx, filter)
}

func (s *mediaService) UpdateImage(ctx context.Context, id string, patch dto.ImageUpdate) (*entities.Image, error) {
	return s.images.Update(ctx, id, patch)
}

func (s *mediaService) UpdateVideo(ctx context.Context, id string, patch dto.VideoUpdate) (*entities.Video, error) {
	return s.videos.Update(ctx, id, patch)
}

func (s *mediaService) UploadImage(ctx context.Context, in dto.UploadInput) (*entities.Image, error) {
	image := &entities.Image{
		Title:       in.Form.Title,
		Description: in.Form.Description,
		Category:    in.Form.Category,
		Featured:    in.Form.Featured,
	}
	if err := prepare(image); err != nil {
		return nil, err
	}

	contentType := helper.ResolveContentType(in.ContentType, in.Filename)
	if !helper.IsAllowedImageType(contentType) {
		return nil, apperrors.ErrUnsupportedType(fmt.Sprintf("Invalid image type. Allowed types: %s", strings.Join(helper.AllowedImageTypes(), ", ")))
	}
	tooLarge := apperrors.ErrFileTooLarge(fmt.Sprintf("Image too large. Maximum size: %dMB", s.limits.MaxImageSize/(1024*1024)))
	if in.Size > s.limits.MaxImageSize {
		return nil, tooLarge
	}

	ext := helper.Extension(in.Filename, contentType)
	tmp, _, err := fileutils.SpoolToTemp(s.limits.TempDir, ext, in.Body, s.limits.MaxImageSize)
	if err != nil {
		if errors.Is(err, fileutils.ErrTooLarge) {
			return nil, tooLarge
		}
		return nil, apperrors.ErrUploadFailed(err)
	}
	defer fileutils.Discard(tmp)

	id := uuid.NewString()
	image.ID = id
	image.StorageKey = fmt.Sprintf("%s/%s/%s%s", consts.FolderImages, image.Category, id, ext)
	if image.ImageURL, err = s.storage.Save(ctx, image.StorageKey, tmp, contentType); err != nil {
		return nil, apperrors.ErrUploadFailed(err)
	}

	// Thumbnail başarısız olursa orijinal kullanılır
	image.ThumbnailURL = image.ImageURL
	if _, err := tmp.Seek(0, io.SeekStart); err == nil {
		if url, key, err := storeThumbnail(ctx, s.storage, tmp, id); err != nil {
			s.logger.Warn("thumbnail failed, using original", zap.String("key", image.StorageKey), zap.Error(err))
		} else {
			image.ThumbnailURL, image.ThumbnailKey = url, key
		}
	}

	if err := s.imageRepo.Create(ctx, image); err != nil {
		s.removeFiles(ctx, image.StorageKey, image.ThumbnailKey)
		return nil, apperrors.ErrUploadFailed(err)
	}
	s.logger.Info("image uploaded", zap.String("id", image.ID), zap.String("category", image.Category))
	return image, nil
}

func storeThumbnail(ctx context.Context, storage repositories.StorageStrategy, src io.Reader, id string) (string, string, error) {
	var buf bytes.Buffer
	if err := processor.Thumbnail(src, &buf, processor.DefaultThumbnail); err != nil {
		return "", "", err
	}
	key := thumbnailKey(id)
	url, err := storage.Save(ctx, key, &buf, "image/jpeg")
	if err != nil {
		return "", "", err
	}
	return url, key, nil
}

func (s *mediaService) UploadVideo(ctx context.Context, in dto.UploadInput) (*entities.Video, error) {
	video := &entities.Video{
		Title:       in.Form.Title,
		Description: in.Form.Description,
		Category:    in.Form.Category,
		Featured:    in.Form.Featured,
	}
	if err := prepare(video); err != nil {
		return nil, err
	}

	contentType := helper.ResolveContentType(in.ContentType, in.Filename)
	if !helper.IsAllowedVideoType(contentType) {
		return nil, apperrors.ErrUnsupportedType(fmt.Sprintf("Invalid video type. Allowed types: %s", strings.Join(helper.AllowedVideoTypes(), ", ")))
	}
	tooLarge := apperrors.ErrFileTooLarge(fmt.Sprintf("Video too large. Maximum size: %dMB", s.limits.MaxVideoSize/(1024*1024)))
	if in.Size > s.limits.MaxVideoSize {
		return nil, tooLarge
	}

	ext := helper.Extension(in.Filename, contentType)
	tmp, _, err := fileutils.SpoolToTemp(s.limits.TempDir, ext, in.Body, s.limits.MaxVideoSize)
	if err != nil {
		if errors.Is(err, fileutils.ErrTooLarge) {
			return nil, tooLarge
		}
		return nil, apperrors.ErrUploadFailed(err)
	}
	defer fileutils.Discard(tmp)

	video.ID = uuid.NewString()
	video.StorageKey = fmt.Sprintf("%s/%s/%s%s", consts.FolderVideos, video.Category, video.ID, ext)
	if video.VideoURL, err = s.storage.Save(ctx, video.StorageKey, tmp, contentType); err != nil {
		return nil, apperrors.ErrUploadFailed(err)
	}

	if err := s.videoRepo.Create(ctx, video); err != nil {
		s.removeFiles(ctx, video.StorageKey)
		return nil, apperrors.ErrUploadFailed(err)
	}
	s.logger.Info("video uploaded", zap.String("id", video.ID), zap.String("category", video.Category))

	// Thumbnail ve süre worker tarafından doldurulur
	if s.publisher != nil {
		job := queue.Job{Type: queue.JobVideoThumbnail, MediaID: video.ID, StorageKey: video.StorageKey}
		if err := s.publisher.Publish(ctx, job); err != nil {
			s.logger.Warn("could not enqueue video thumbnail", zap.String("id", video.ID), zap.Error(err))
		}
	}
	return video, nil
}

func (s *mediaService) DeleteImage(ctx context.Context, id string) error {
	image, err := s.images.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.images.Delete(ctx, id); err != nil {
		return err
	}
	s.removeFiles(ctx, image.StorageKey, image.ThumbnailKey)
	return nil
}

func (s *mediaService) DeleteVideo(ctx context.Context, id string) error {
	video, err := s.videos.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.videos.Delete(ctx, id); err != nil {
		return err
	}
	s.removeFiles(ctx, video.StorageKey, video.ThumbnailKey)
	return nil
}

func (s *mediaService) removeFiles(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Warn("could not delete stored file", zap.String("key", key), zap.Error(err))
		}
	}
}

func (s *mediaService) PruneBrokenImages(ctx context.Context) (int, error) {
	images, err := s.imageRepo.List(ctx, repositories.ListFilter{})
	if err != nil {
		return 0, err
	}

	pruned := 0
	for _, image := range images {
		if image.StorageKey == "" || s.intact(ctx, image.StorageKey) {
			continue
		}
		if err := s.imageRepo.Delete(ctx, image.ID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return pruned, err
		}
		s.removeFiles(ctx, image.ThumbnailKey)
		s.logger.Info("pruned broken image", zap.String("id", image.ID), zap.String("title", image.Title))
		pruned++
	}
	return pruned, nil
}

func (s *mediaService) intact(ctx context.Context, key string) bool {
	rc, err := s.storage.Open(ctx, key)
	if err != nil {
		return false
	}
	defer rc.Close()
	n, _ := io.CopyN(io.Discard, rc, minImageBytes)
	return n >= minImageBytes
}

func thumbnailKey(id string) string {
	return fmt.Sprintf("%s/thumb_%s.jpg", consts.FolderThumbnails, id)
}

// CategoryOptions lists both category sets for the admin tooling.
func CategoryOptions() dto.CategoriesResponse {
	convert := func(k category.Kind) []dto.CategoryOption {
		opts := category.Options(k)
		out := make([]dto.CategoryOption, 0, len(opts))
		for _, o := range opts {
			out = append(out, dto.CategoryOption{Value: string(o.Value), Label: o.Label})
		}
		return out
	}
	return dto.CategoriesResponse{Images: convert(category.KindPhoto), Videos: convert(category.KindVideo)}
}
