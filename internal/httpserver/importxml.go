package httpserver

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/makeitweb/studio-backend/internal/apperr"
	"github.com/makeitweb/studio-backend/internal/importer"
	"github.com/makeitweb/studio-backend/internal/logging"
)

type ImportHTTP struct {
	Importer *importer.Importer
}

// ImportCatalog ingests a YML catalog feed uploaded under the "file"
// key and responds with the per-item report.
func (h *ImportHTTP) ImportCatalog(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "import.catalog")

	fh, err := c.FormFile("file")
	if err != nil {
		return respondError(c, l, "import_failed", apperr.Wrap(apperr.KindValidation, "no catalog file was uploaded", err), "")
	}
	if ext := strings.ToLower(filepath.Ext(fh.Filename)); ext != ".xml" {
		return respondError(c, l, "import_failed", apperr.Newf(apperr.KindUnsupportedFile, "file type %q is not allowed, expected .xml", ext), "")
	}

	src, err := fh.Open()
	if err != nil {
		return respondError(c, l, "import_failed", apperr.Wrap(apperr.KindStore, "open catalog file", err), "")
	}
	defer src.Close()

	report, err := h.Importer.Import(ctx, src)
	if err != nil {
		return respondError(c, l, "import_failed", err, "")
	}

	created := report.Created()
	l.Info("import_success", "created", created, "offers", len(report.Offers), "categories", report.Categories.Upserted)
	return c.JSON(http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Imported %d of %d offers", created, len(report.Offers)),
		"data":    report,
	})
}
