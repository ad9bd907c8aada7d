package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/makeitweb/studio-backend/internal/apperr"
	"github.com/makeitweb/studio-backend/internal/query"
)

// ContentRangeHeader is exposed through CORS so admin UIs can paginate.
const ContentRangeHeader = "Content-Range"

// respondList writes the slice body plus the Content-Range header
// "<resource> <start>-<min(end,total-1)>/<total>".
func respondList(c echo.Context, resource string, q query.ListQuery, total int64, items any) error {
	upper := q.RangeEnd()
	if last := int(total) - 1; last < upper {
		upper = last
	}
	c.Response().Header().Set(ContentRangeHeader,
		fmt.Sprintf("%s %d-%d/%d", resource, q.Offset, upper, total))
	return c.JSON(http.StatusOK, items)
}

func respondDeleted(c echo.Context, entity string) error {
	return c.JSON(http.StatusOK, map[string]string{"message": entity + " deleted!"})
}

// respondError maps the closed error-kind set (plus gorm's not-found
// sentinel) onto HTTP statuses and logs at a level matching the class.
func respondError(c echo.Context, l *slog.Logger, op string, err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		l.Warn(op, "status", http.StatusNotFound, "error", err)
		return c.JSON(http.StatusNotFound, map[string]string{"error": notFoundMsg})
	}

	status := apperr.HTTPStatus(err)
	if status >= 500 {
		l.Error(op, "status", status, "error", err)
		return c.JSON(status, map[string]string{"message": "Internal Server Error", "error": err.Error()})
	}

	l.Warn(op, "status", status, "error", err)
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func parseID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperr.Newf(apperr.KindValidation, "id %q is not an integer", raw)
	}
	return uint(id), nil
}

func rawQuery(c echo.Context) query.Raw {
	return query.Raw{
		Range:  c.QueryParam("range"),
		Sort:   c.QueryParam("sort"),
		Filter: c.QueryParam("filter"),
	}
}
