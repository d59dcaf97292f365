package processor

import (
	"context"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// FFmpeg extracts frames and metadata with the ffmpeg/ffprobe binaries.
type FFmpeg struct {
	FFmpegPath  string
	FFprobePath string
}

func NewFFmpeg() *FFmpeg {
	return &FFmpeg{FFmpegPath: "ffmpeg", FFprobePath: "ffprobe"} //* sistemde kurulu olmalı
}

// Thumbnail writes a single JPEG frame taken at position (e.g. "00:00:01").
func (f *FFmpeg) Thumbnail(ctx context.Context, inputPath, outputPath, position string) error {
	cmd := exec.CommandContext(ctx, f.FFmpegPath,
		"-y",
		"-ss", position,
		"-i", inputPath,
		"-vframes", "1",
		"-vf", "scale='min(300,iw)':-2",
		"-q:v", "3",
		outputPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg thumbnail: %w: %s", err, lastLine(out))
	}
	return nil
}

// Duration returns the container duration rounded to whole seconds.
func (f *FFmpeg) Duration(ctx context.Context, inputPath string) (int, error) {
	cmd := exec.CommandContext(ctx, f.FFprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		inputPath,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}
	return parseDuration(string(out))
}

func parseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return 0, nil
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("süre okunamadı %q: %w", s, err)
	}
	return int(math.Round(secs)), nil
}

func lastLine(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	return lines[len(lines)-1]
}
