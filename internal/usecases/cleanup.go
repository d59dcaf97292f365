package usecases

import (
	"time"

	"portfolio/internal/pkg/fileutils"

	"go.uber.org/zap"
)

type CleanupService interface {
	CleanupOldTempFiles(maxAge time.Duration) (int, error)
}

type cleanupService struct {
	tempDir string
	now     func() time.Time
	logger  *zap.Logger
}

func NewCleanupService(tempDir string, logger *zap.Logger) CleanupService {
	return &cleanupService{
		tempDir: tempDir,
		now:     time.Now,
		logger:  logger,
	}
}

// CleanupOldTempFiles removes spooled uploads left behind by interrupted requests.
func (s *cleanupService) CleanupOldTempFiles(maxAge time.Duration) (int, error) {
	removed, err := fileutils.RemoveOlderThan(s.tempDir, maxAge, s.now())
	for _, path := range removed {
		s.logger.Info("removed old temp file", zap.String("path", path))
	}
	return len(removed), err
}
