package media

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/content"
	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/models"
)

// ErrUnsupportedType marks an upload that is neither a known image nor a
// video. Batch callers skip the file and keep going.
var ErrUnsupportedType = errors.New("media: unsupported file type")

// Ingestor turns uploaded files into MediaItems. Images are resized and
// re-encoded; videos are stored verbatim. Files land in Dir under a UUID
// filename and the MediaItem URL points at BaseURL.
type Ingestor struct {
	Dir      string // e.g. static/uploads
	BaseURL  string // e.g. /static/uploads
	MaxWidth uint   // images wider than this are scaled down
}

func NewIngestor(dir, baseURL string) *Ingestor {
	return &Ingestor{Dir: dir, BaseURL: baseURL, MaxWidth: 800}
}

// FromUpload converts one multipart upload into a MediaItem.
func (ing *Ingestor) FromUpload(file multipart.File, header *multipart.FileHeader) (models.MediaItem, error) {
	contentType := header.Header.Get("Content-Type")
	if IsVideoType(contentType) {
		return ing.saveVideo(file, header)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	var img image.Image
	var err error
	switch ext {
	case ".png":
		img, err = png.Decode(file)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(file)
	default:
		return models.MediaItem{}, ErrUnsupportedType
	}
	if err != nil {
		return models.MediaItem{}, fmt.Errorf("decoding %s: %w", header.Filename, err)
	}

	resized := resize.Resize(ing.MaxWidth, 0, img, resize.Lanczos3)

	filename := uuid.New().String() + ".jpg"
	out, err := os.Create(filepath.Join(ing.Dir, filename))
	if err != nil {
		return models.MediaItem{}, fmt.Errorf("creating upload file: %w", err)
	}
	defer out.Close()
	if err := jpeg.Encode(out, resized, &jpeg.Options{Quality: 80}); err != nil {
		return models.MediaItem{}, fmt.Errorf("encoding %s: %w", header.Filename, err)
	}

	return models.MediaItem{
		ID:   content.NewID(),
		URL:  ing.BaseURL + "/" + filename,
		Type: models.MediaImage,
	}, nil
}

func (ing *Ingestor) saveVideo(file multipart.File, header *multipart.FileHeader) (models.MediaItem, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = ".mp4"
	}
	filename := uuid.New().String() + ext
	out, err := os.Create(filepath.Join(ing.Dir, filename))
	if err != nil {
		return models.MediaItem{}, fmt.Errorf("creating upload file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, file); err != nil {
		return models.MediaItem{}, fmt.Errorf("writing %s: %w", header.Filename, err)
	}

	return models.MediaItem{
		ID:   content.NewID(),
		URL:  ing.BaseURL + "/" + filename,
		Type: models.MediaVideo,
	}, nil
}
