package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"portfolio/internal/domain/repositories"
)

type LocalStorage struct {
	BasePath  string
	URLPrefix string
}

func NewLocalStorage(basePath, urlPrefix string) repositories.StorageStrategy {
	return &LocalStorage{BasePath: basePath, URLPrefix: strings.TrimRight(urlPrefix, "/")}
}

func (l *LocalStorage) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("geçersiz anahtar: %q", key)
	}
	return filepath.Join(l.BasePath, clean), nil
}

func (l *LocalStorage) Save(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	fullPath, err := l.path(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return "", fmt.Errorf("klasör oluşturulamadı: %w", err)
	}

	outFile, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("dosya oluşturulamadı: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, body); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("dosya yazılamadı: %w", err)
	}

	return l.URL(key), nil
}

func (l *LocalStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	fullPath, err := l.path(key)
	if err != nil {
		return nil, err
	}
	return os.Open(fullPath)
}

// Delete treats a missing file as already deleted.
func (l *LocalStorage) Delete(_ context.Context, key string) error {
	fullPath, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (l *LocalStorage) Exists(_ context.Context, key string) bool {
	fullPath, err := l.path(key)
	if err != nil {
		return false
	}
	_, err = os.Stat(fullPath)
	return err == nil
}

func (l *LocalStorage) URL(key string) string {
	return l.URLPrefix + "/" + strings.TrimLeft(key, "/")
}
