package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/makeitweb/studio-backend/internal/apperr"
	"github.com/makeitweb/studio-backend/internal/logging"
	"github.com/makeitweb/studio-backend/internal/query"
	"github.com/makeitweb/studio-backend/internal/service"
	"github.com/makeitweb/studio-backend/internal/transport"
)

// CasesHTTP serves a single case section. Two instances are registered,
// one for /api/cases and one for /api/casesHome.
type CasesHTTP struct {
	Svc      *service.CaseService
	Resource string // name reported in Content-Range
	Section  string
}

func (h *CasesHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", h.Resource+".list")

	q, err := query.Parse(rawQuery(c), service.CaseFields)
	if err != nil {
		return respondError(c, l, "list_cases_failed", err, "Case not found!")
	}

	total, items, err := h.Svc.List(ctx, h.Section, q)
	if err != nil {
		return respondError(c, l, "list_cases_failed", err, "Case not found!")
	}
	return respondList(c, h.Resource, q, total, items)
}

func (h *CasesHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", h.Resource+".get")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "get_case_failed", err, "Case not found!")
	}

	item, err := h.Svc.Get(ctx, h.Section, id)
	if err != nil {
		return respondError(c, l, "get_case_failed", err, "Case not found!")
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CasesHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", h.Resource+".create")

	var req transport.CreateCaseRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, l, "create_case_failed", apperr.Wrap(apperr.KindParse, "invalid body", err), "")
	}

	item, err := h.Svc.Create(ctx, h.Section, req)
	if err != nil {
		return respondError(c, l, "create_case_failed", err, "Case not found!")
	}

	l.Info("create_case_success", "id", item.ID)
	return c.JSON(http.StatusCreated, item)
}

func (h *CasesHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", h.Resource+".update")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "update_case_failed", err, "Case not found!")
	}

	var req transport.PatchCaseRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, l, "update_case_failed", apperr.Wrap(apperr.KindParse, "invalid body", err), "")
	}

	item, err := h.Svc.Update(ctx, h.Section, id, req)
	if err != nil {
		return respondError(c, l, "update_case_failed", err, "Case not found!")
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CasesHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", h.Resource+".delete")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "delete_case_failed", err, "Case not found!")
	}

	if err := h.Svc.Delete(ctx, h.Section, id); err != nil {
		return respondError(c, l, "delete_case_failed", err, "Case not found!")
	}

	l.Info("delete_case_success", "id", id)
	return respondDeleted(c, "Case")
}
