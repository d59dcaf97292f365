package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"portfolio/internal/domain/category"
	"portfolio/pkg/helper"

	"go.uber.org/zap"
)

// FileSource is a file to upload; Open is called once per attempt.
type FileSource struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// LocalFile describes a file on disk.
func LocalFile(path string) (FileSource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileSource{}, err
	}
	if info.IsDir() {
		return FileSource{}, fmt.Errorf("%s is a directory", path)
	}
	return FileSource{
		Name: filepath.Base(path),
		Size: info.Size(),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}, nil
}

// BytesFile wraps in-memory content.
func BytesFile(name string, data []byte) FileSource {
	return FileSource{
		Name: name,
		Size: int64(len(data)),
		Open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(data)), nil },
	}
}

type UploadRequest struct {
	File        FileSource
	Title       string
	Description string
	Category    string
	Featured    bool
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Upload posts a multipart form to /api/{images|videos}/upload. The body
// is streamed, so large videos are never held in memory.
func (c *Client) Upload(ctx context.Context, kind category.Kind, req UploadRequest, out any) error {
	if !kind.Valid() {
		return otherError(fmt.Errorf("unknown media kind %q", kind))
	}
	if _, err := category.Parse(kind, req.Category); err != nil {
		return otherError(err)
	}
	if req.File.Open == nil {
		return otherError(fmt.Errorf("no file given"))
	}
	target, err := c.endpoint(string(kind), nil, "upload")
	if err != nil {
		return err
	}

	file, err := req.File.Open()
	if err != nil {
		return otherError(fmt.Errorf("open %s: %w", req.File.Name, err))
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		defer file.Close()
		pw.CloseWithError(writeUploadForm(mw, file, req))
	}()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target, pr)
	if err != nil {
		pr.Close()
		return otherError(err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Debug("uploading", zap.String("kind", string(kind)), zap.String("file", req.File.Name), zap.Int64("size", req.File.Size))
	err = c.send(ctx, c.upload, httpReq, out)
	pr.Close()
	return err
}

func writeUploadForm(mw *multipart.Writer, file io.Reader, req UploadRequest) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(req.File.Name)))
	h.Set("Content-Type", helper.GetMimeTypeFromExtension(req.File.Name))

	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("read %s: %w", req.File.Name, err)
	}

	fields := [][2]string{
		{"title", req.Title},
		{"description", req.Description},
		{"category", req.Category},
		{"featured", strconv.FormatBool(req.Featured)},
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return err
		}
	}
	return mw.Close()
}
