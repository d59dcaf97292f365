package fileutils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

var ErrTooLarge = errors.New("file exceeds size limit")

// SpoolToTemp copies r into a new temp file under dir. Reading stops with
// ErrTooLarge once more than maxBytes arrive; maxBytes <= 0 means no limit.
// The returned file is rewound; callers close and remove it.
func SpoolToTemp(dir, ext string, r io.Reader, maxBytes int64) (*os.File, int64, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, 0, fmt.Errorf("klasör oluşturulamadı: %w", err)
	}
	f, err := os.CreateTemp(dir, "upload-*"+ext)
	if err != nil {
		return nil, 0, fmt.Errorf("geçici dosya oluşturulamadı: %w", err)
	}

	src := r
	if maxBytes > 0 {
		src = io.LimitReader(r, maxBytes+1)
	}
	n, err := io.Copy(f, src)
	if err == nil && maxBytes > 0 && n > maxBytes {
		err = ErrTooLarge
	}
	if err == nil {
		_, err = f.Seek(0, io.SeekStart)
	}
	if err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, n, err
	}
	return f, n, nil
}

// Discard closes and removes a file created by SpoolToTemp.
func Discard(f *os.File) {
	if f == nil {
		return
	}
	f.Close()
	os.Remove(f.Name())
}

// RemoveOlderThan deletes direct children of dir whose modification time is
// older than maxAge and returns their paths.
func RemoveOlderThan(dir string, maxAge time.Duration, now time.Time) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var removed []string
	var errs []error
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			errs = append(errs, fmt.Errorf("stat alınamadı %s: %w", path, err))
			continue
		}
		if now.Sub(info.ModTime()) <= maxAge {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			errs = append(errs, fmt.Errorf("kaldırılamadı %s: %w", path, err))
			continue
		}
		removed = append(removed, path)
	}
	return removed, errors.Join(errs...)
}
