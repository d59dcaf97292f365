package processor

import (
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // webp decoder
)

type ResizeOption struct {
	Width   int
	Height  int
	Quality int // 1-100
}

// DefaultThumbnail fits inside 300x300 and is encoded as JPEG q85.
var DefaultThumbnail = ResizeOption{Width: 300, Height: 300, Quality: 85}

// Thumbnail decodes an image from r and writes a JPEG that fits inside the
// option's box, keeping the aspect ratio. Smaller images are not enlarged.
func Thumbnail(r io.Reader, w io.Writer, opt ResizeOption) error {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("resim açılamadı: %w", err)
	}

	// Oran koruyarak resize
	thumb := imaging.Fit(img, opt.Width, opt.Height, imaging.Lanczos)

	// JPEG kalite ayarı ile kaydet
	if err := imaging.Encode(w, thumb, imaging.JPEG, imaging.JPEGQuality(opt.Quality)); err != nil {
		return fmt.Errorf("thumbnail kaydedilemedi: %w", err)
	}
	return nil
}
