package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/makeitweb/studio-backend/internal/apperr"
	"github.com/makeitweb/studio-backend/internal/logging"
	"github.com/makeitweb/studio-backend/internal/upload"
)

type UploadHTTP struct {
	Proc *upload.Processor
}

// Save accepts multipart uploads under the "img" key and returns the
// stored web paths.
func (h *UploadHTTP) Save(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "upload.save")

	form, err := c.MultipartForm()
	if err != nil {
		return respondError(c, l, "upload_failed", apperr.Wrap(apperr.KindParse, "invalid multipart form", err), "")
	}

	files := form.File["img"]
	if len(files) == 0 {
		return respondError(c, l, "upload_failed", apperr.New(apperr.KindValidation, "no files were uploaded"), "")
	}

	paths, err := h.Proc.SaveImages(files)
	if err != nil {
		return respondError(c, l, "upload_failed", err, "")
	}

	l.Info("upload_success", "count", len(paths))
	return c.JSON(http.StatusOK, map[string]any{"filePaths": paths})
}
