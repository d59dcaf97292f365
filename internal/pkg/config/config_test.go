package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "DB_DRIVER", "UPLOAD_MAX_IMAGE_SIZE", "UPLOAD_DELAY", "REDIS_HOST", "PORTFOLIO_BACKEND_URL"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8001", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, int64(50*1024*1024), cfg.Upload.MaxImageSize)
	assert.Equal(t, int64(1000*1024*1024), cfg.Upload.MaxVideoSize)
	assert.Equal(t, time.Second, cfg.Client.UploadDelay)
	assert.False(t, cfg.Redis.Enabled())
	assert.Empty(t, cfg.Client.BackendURL)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "Mongo")
	t.Setenv("UPLOAD_DELAY", "250")
	t.Setenv("PORTFOLIO_BACKEND_URL", "http://api.example.test/")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("MEDIA_PRUNE_BROKEN", "true")
	t.Setenv("WORKER_COUNT", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, "mongo", cfg.Database.Driver)
	assert.Equal(t, 250*time.Millisecond, cfg.Client.UploadDelay)
	assert.Equal(t, "http://api.example.test", cfg.Client.BackendURL)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
	assert.True(t, cfg.App.PruneBroken)
	assert.Equal(t, 4, cfg.App.WorkerCount)
}

func TestUploadDelayAcceptsDuration(t *testing.T) {
	t.Setenv("UPLOAD_DELAY", "2s")
	assert.Equal(t, 2*time.Second, LoadConfig().Client.UploadDelay)
}

func TestEnsureDirsCreatesAbsoluteDirs(t *testing.T) {
	root := t.TempDir()
	cfg := &Config{Upload: UploadConfig{
		TempDir:    filepath.Join(root, "tmp"),
		UploadsDir: filepath.Join(root, "uploads"),
	}}

	require.NoError(t, cfg.EnsureDirs())
	assert.DirExists(t, cfg.Upload.TempDir)
	assert.DirExists(t, cfg.Upload.UploadsDir)
}
