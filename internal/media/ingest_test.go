package media

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/models"
)

// uploadFixture builds one multipart file upload and hands back its parsed
// file and header, the way a handler would receive them.
func uploadFixture(t *testing.T, filename, contentType string, body []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="media"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	fh := req.MultipartForm.File["media"][0]
	file, err := fh.Open()
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })
	return file, fh
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func TestFromUploadImage(t *testing.T) {
	dir := t.TempDir()
	ing := NewIngestor(dir, "/static/uploads")

	file, fh := uploadFixture(t, "piece.png", "image/png", pngBytes(t))
	item, err := ing.FromUpload(file, fh)
	require.NoError(t, err)

	assert.Equal(t, models.MediaImage, item.Type)
	assert.True(t, strings.HasPrefix(item.URL, "/static/uploads/"))
	assert.True(t, strings.HasSuffix(item.URL, ".jpg"))

	saved := filepath.Join(dir, filepath.Base(item.URL))
	info, err := os.Stat(saved)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestFromUploadVideoStoredVerbatim(t *testing.T) {
	dir := t.TempDir()
	ing := NewIngestor(dir, "/static/uploads")

	payload := []byte("not really mpeg but stored as-is")
	file, fh := uploadFixture(t, "clip.mp4", "video/mp4", payload)
	item, err := ing.FromUpload(file, fh)
	require.NoError(t, err)

	assert.Equal(t, models.MediaVideo, item.Type)
	assert.True(t, strings.HasSuffix(item.URL, ".mp4"))

	saved, err := os.ReadFile(filepath.Join(dir, filepath.Base(item.URL)))
	require.NoError(t, err)
	assert.Equal(t, payload, saved)
}

func TestFromUploadUnsupportedType(t *testing.T) {
	ing := NewIngestor(t.TempDir(), "/static/uploads")

	file, fh := uploadFixture(t, "anim.gif", "image/gif", []byte("GIF89a"))
	_, err := ing.FromUpload(file, fh)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
