package helper

import (
	"path/filepath"
	"sort"
	"strings"
)

var extensionTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".avi":  "video/avi",
	".mov":  "video/mov",
	".wmv":  "video/wmv",
	".flv":  "video/flv",
	".webm": "video/webm",
	".mkv":  "video/mkv",
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedVideoTypes = map[string]bool{
	"video/mp4":  true,
	"video/avi":  true,
	"video/mov":  true,
	"video/wmv":  true,
	"video/flv":  true,
	"video/webm": true,
}

// Browsers report some containers under registered names.
var typeAliases = map[string]string{
	"video/quicktime": "video/mov",
	"video/x-msvideo": "video/avi",
	"video/x-ms-wmv":  "video/wmv",
	"video/x-flv":     "video/flv",
	"image/pjpeg":     "image/jpeg",
}

func GetMimeTypeFromExtension(filename string) string {
	if t, ok := extensionTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return t
	}
	return "application/octet-stream"
}

// ResolveContentType trusts the declared type unless it is missing or generic,
// in which case the file extension decides.
func ResolveContentType(declared, filename string) string {
	t := strings.ToLower(strings.TrimSpace(declared))
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	if alias, ok := typeAliases[t]; ok {
		t = alias
	}
	if t == "" || t == "application/octet-stream" {
		return GetMimeTypeFromExtension(filename)
	}
	return t
}

func IsAllowedImageType(contentType string) bool { return allowedImageTypes[contentType] }

func IsAllowedVideoType(contentType string) bool { return allowedVideoTypes[contentType] }

func AllowedImageTypes() []string { return sortedKeys(allowedImageTypes) }

func AllowedVideoTypes() []string { return sortedKeys(allowedVideoTypes) }

func IsImageFile(filename string) bool {
	return IsAllowedImageType(GetMimeTypeFromExtension(filename))
}

func IsVideoFile(filePath string) bool {
	return IsAllowedVideoType(GetMimeTypeFromExtension(filePath))
}

// Extension returns the lower-cased extension of filename, falling back to
// one derived from contentType.
func Extension(filename, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		return ext
	}
	for ext, t := range extensionTypes {
		if t == contentType && ext != ".jpeg" {
			return ext
		}
	}
	return ""
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
