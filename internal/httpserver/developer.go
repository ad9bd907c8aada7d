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

type DeveloperHTTP struct {
	Svc *service.DeveloperService
}

func (h *DeveloperHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "developer.list")

	q, err := query.Parse(rawQuery(c), service.DeveloperFields)
	if err != nil {
		return respondError(c, l, "list_developers_failed", err, "Developer not found!")
	}

	total, items, err := h.Svc.List(ctx, q)
	if err != nil {
		return respondError(c, l, "list_developers_failed", err, "Developer not found!")
	}
	return respondList(c, "developers", q, total, items)
}

func (h *DeveloperHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "developer.get")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "get_developer_failed", err, "Developer not found!")
	}

	dev, err := h.Svc.Get(ctx, id)
	if err != nil {
		return respondError(c, l, "get_developer_failed", err, "Developer not found!")
	}
	return c.JSON(http.StatusOK, dev)
}

func (h *DeveloperHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "developer.create")

	var req transport.CreateDeveloperRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, l, "create_developer_failed", apperr.Wrap(apperr.KindParse, "invalid body", err), "")
	}

	dev, err := h.Svc.Create(ctx, req)
	if err != nil {
		return respondError(c, l, "create_developer_failed", err, "Developer not found!")
	}

	l.Info("create_developer_success", "id", dev.ID)
	return c.JSON(http.StatusCreated, dev)
}

func (h *DeveloperHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "developer.update")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "update_developer_failed", err, "Developer not found!")
	}

	var req transport.PatchDeveloperRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, l, "update_developer_failed", apperr.Wrap(apperr.KindParse, "invalid body", err), "")
	}

	dev, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return respondError(c, l, "update_developer_failed", err, "Developer not found!")
	}
	return c.JSON(http.StatusOK, dev)
}

func (h *DeveloperHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "developer.delete")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "delete_developer_failed", err, "Developer not found!")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return respondError(c, l, "delete_developer_failed", err, "Developer not found!")
	}

	l.Info("delete_developer_success", "id", id)
	return respondDeleted(c, "Developer")
}
