// Package upload stores multipart image uploads, re-encoding everything
// except GIFs into compressed JPEG for the web.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/makeitweb/studio-backend/internal/apperr"
)

const jpegQuality = 80

var allowedExt = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

type Processor struct {
	Dir string
}

func NewProcessor(dir string) (*Processor, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Processor{Dir: dir}, nil
}

// SaveImages stores every uploaded file and returns their web paths.
// A disallowed extension or an undecodable image rejects that file and
// the whole request.
func (p *Processor) SaveImages(files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, fh := range files {
		path, err := p.saveImage(fh)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (p *Processor) saveImage(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		return "", apperr.Newf(apperr.KindUnsupportedFile, "file type %q is not allowed", ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", apperr.Wrap(apperr.KindStore, "open upload", err)
	}
	defer src.Close()

	// GIFs pass through untouched so animations survive.
	if ext == ".gif" {
		return p.storeRaw(src, ext)
	}
	return p.storeJPEG(src)
}

func (p *Processor) storeRaw(src io.Reader, ext string) (string, error) {
	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(p.Dir, name))
	if err != nil {
		return "", apperr.Wrap(apperr.KindStore, "store upload", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", apperr.Wrap(apperr.KindStore, "store upload", err)
	}
	return "/uploads/" + name, nil
}

func (p *Processor) storeJPEG(src io.Reader) (string, error) {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", apperr.Wrap(apperr.KindUnsupportedFile, "not a decodable image", err)
	}

	name := uuid.NewString() + ".jpg"
	dst, err := os.Create(filepath.Join(p.Dir, name))
	if err != nil {
		return "", apperr.Wrap(apperr.KindStore, "store upload", err)
	}
	defer dst.Close()

	if err := imaging.Encode(dst, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", apperr.Wrap(apperr.KindStore, "encode image", err)
	}
	return "/uploads/" + name, nil
}
