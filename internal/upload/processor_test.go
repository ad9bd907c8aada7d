package upload

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/makeitweb/studio-backend/internal/apperr"
)

func multipartFiles(t *testing.T, name string, content []byte) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("img", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/uploads", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["img"]
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSaveImagesConvertsToJPEG(t *testing.T) {
	proc, err := NewProcessor(t.TempDir())
	require.NoError(t, err)

	paths, err := proc.SaveImages(multipartFiles(t, "photo.png", pngBytes(t)))
	require.NoError(t, err)
	require.Len(t, paths, 1)

	require.True(t, strings.HasPrefix(paths[0], "/uploads/"))
	require.Equal(t, ".jpg", filepath.Ext(paths[0]))

	stored := filepath.Join(proc.Dir, strings.TrimPrefix(paths[0], "/uploads/"))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	// JPEG SOI marker.
	require.Equal(t, []byte{0xFF, 0xD8}, data[:2])
}

func TestSaveImagesKeepsGIF(t *testing.T) {
	proc, err := NewProcessor(t.TempDir())
	require.NoError(t, err)

	gif := []byte("GIF89a fake payload")
	paths, err := proc.SaveImages(multipartFiles(t, "anim.gif", gif))
	require.NoError(t, err)
	require.Equal(t, ".gif", filepath.Ext(paths[0]))

	stored := filepath.Join(proc.Dir, strings.TrimPrefix(paths[0], "/uploads/"))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	require.Equal(t, gif, data)
}

func TestSaveImagesRejectsUnknownExtension(t *testing.T) {
	proc, err := NewProcessor(t.TempDir())
	require.NoError(t, err)

	_, err = proc.SaveImages(multipartFiles(t, "report.pdf", []byte("%PDF-")))
	require.Equal(t, apperr.KindUnsupportedFile, apperr.KindOf(err))
}

func TestSaveImagesRejectsCorruptImage(t *testing.T) {
	proc, err := NewProcessor(t.TempDir())
	require.NoError(t, err)

	_, err = proc.SaveImages(multipartFiles(t, "broken.png", []byte("not an image")))
	require.Equal(t, apperr.KindUnsupportedFile, apperr.KindOf(err))
}
