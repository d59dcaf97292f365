package uploadqueue

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"portfolio/internal/client"
	"portfolio/internal/domain/category"
)

// Status only moves forward: pending → uploading → success | error.
type Status string

const (
	StatusPending   Status = "pending"
	StatusUploading Status = "uploading"
	StatusSuccess   Status = "success"
	StatusError     Status = "error"
)

func (s Status) String() string { return string(s) }

func (s Status) IsActive() bool { return s == StatusUploading }

func (s Status) IsFinished() bool { return s == StatusSuccess || s == StatusError }

// Field names a user-editable task attribute.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldFeatured    Field = "featured"
)

// Task is one file waiting for, or done with, its upload.
type Task struct {
	ID          string
	File        client.FileSource
	Title       string
	Description string
	Category    category.Category
	Featured    bool
	Status      Status
	Error       string // normalized message when Status is error
	MediaID     string // id assigned by the server on success
	CreatedAt   time.Time
	FinishedAt  time.Time
}

func newTaskID(now time.Time) string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// rand.Read never fails on supported platforms
		panic(err)
	}
	return fmt.Sprintf("task-%d-%s", now.UnixNano(), hex.EncodeToString(b[:]))
}

// DefaultTitle derives a title from a filename: "summer_cover-2.jpg" → "summer cover 2".
func DefaultTitle(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.NewReplacer("_", " ", "-", " ").Replace(base)
}

// DefaultDescription is "<owner>'s photography work" or "<owner>'s video work".
func DefaultDescription(owner string, kind category.Kind) string {
	noun := kind.Noun()
	if owner == "" {
		return strings.ToUpper(noun[:1]) + noun[1:] + " work"
	}
	return fmt.Sprintf("%s's %s work", owner, noun)
}
