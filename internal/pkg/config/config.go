package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	App      AppConfig
	Client   ClientConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type UploadConfig struct {
	TempDir      string
	UploadsDir   string
	MaxImageSize int64 // bytes
	MaxVideoSize int64 // bytes
}

type DatabaseConfig struct {
	Driver      string // postgres | sqlite | mongo | memory
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SQLitePath  string
	MongoURI    string
	AutoMigrate bool
}

type RedisConfig struct {
	Host string
	Port string
}

type StorageConfig struct {
	Driver   string // local | s3
	S3Bucket string
	S3Region string
}

type AppConfig struct {
	Locale      string
	LogLevel    string
	Env         string
	SeedFile    string
	WorkerCount int
	PruneBroken bool
}

// ClientConfig drives the site and uploader binaries.
type ClientConfig struct {
	BackendURL  string
	UploadDelay time.Duration
	OwnerName   string
	SitePort    string
}

func (r RedisConfig) Enabled() bool { return r.Host != "" }

func (r RedisConfig) Addr() string {
	port := r.Port
	if port == "" {
		port = "6379"
	}
	return fmt.Sprintf("%s:%s", r.Host, port)
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		d.Host, d.User, d.Password, d.DBName, d.Port)
}

func LoadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8001"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Upload: UploadConfig{
			TempDir:      getEnv("UPLOAD_TEMP_DIR", "temp_uploads"),
			UploadsDir:   getEnv("UPLOAD_DIR", "uploads"),
			MaxImageSize: getEnvAsInt64("UPLOAD_MAX_IMAGE_SIZE", 50*1024*1024),   // 50MB
			MaxVideoSize: getEnvAsInt64("UPLOAD_MAX_VIDEO_SIZE", 1000*1024*1024), // 1000MB
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			DBName:      getEnv("DB_NAME", "portfolio"),
			SQLitePath:  getEnv("SQLITE_PATH", "portfolio.db"),
			MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
			AutoMigrate: getEnvAsBool("RUN_AUTO_MIGRATION", false),
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", ""),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		Storage: StorageConfig{
			Driver:   strings.ToLower(getEnv("STORAGE_DRIVER", "local")),
			S3Bucket: getEnv("S3_BUCKET", ""),
			S3Region: getEnv("S3_REGION", "us-east-1"),
		},
		App: AppConfig{
			Locale:      getEnv("LOCALE", "en"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Env:         getEnv("APP_ENV", "development"),
			SeedFile:    getEnv("SEED_FILE", ""),
			WorkerCount: int(getEnvAsInt64("WORKER_COUNT", 4)),
			PruneBroken: getEnvAsBool("MEDIA_PRUNE_BROKEN", false),
		},
		Client: ClientConfig{
			BackendURL:  strings.TrimRight(getEnv("PORTFOLIO_BACKEND_URL", ""), "/"),
			UploadDelay: getEnvAsDuration("UPLOAD_DELAY", time.Second),
			OwnerName:   getEnv("OWNER_NAME", ""),
			SitePort:    getEnv("SITE_PORT", "3000"),
		},
	}

	return config
}

// EnsureDirs resolves relative upload dirs against the project root and creates them.
func (c *Config) EnsureDirs() error {
	for _, dir := range []*string{&c.Upload.TempDir, &c.Upload.UploadsDir} {
		resolved, err := resolveDir(*dir)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(resolved, 0755); err != nil {
			return fmt.Errorf("klasör oluşturulamadı %s: %w", resolved, err)
		}
		*dir = resolved
	}
	return nil
}

func resolveDir(dir string) (string, error) {
	if filepath.IsAbs(dir) {
		return dir, nil
	}
	// Proje kökü:
	projectRoot, err := findProjectRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(projectRoot, dir), nil
}

func findProjectRoot() (string, error) {
	current, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(current, "go.mod")); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Root'a ulaştık, go.mod bulunamadı
			return os.Getwd()
		}
		current = parent
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("1500ms") or plain milliseconds.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultValue
}
