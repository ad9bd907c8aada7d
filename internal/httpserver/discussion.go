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

type DiscussionHTTP struct {
	Svc *service.DiscussionService
}

func (h *DiscussionHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "discussion.list")

	q, err := query.Parse(rawQuery(c), service.DiscussionFields)
	if err != nil {
		return respondError(c, l, "list_discussions_failed", err, "Discussion not found!")
	}

	total, items, err := h.Svc.List(ctx, q)
	if err != nil {
		return respondError(c, l, "list_discussions_failed", err, "Discussion not found!")
	}
	return respondList(c, "discussions", q, total, items)
}

func (h *DiscussionHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "discussion.get")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "get_discussion_failed", err, "Discussion not found!")
	}

	d, err := h.Svc.Get(ctx, id)
	if err != nil {
		return respondError(c, l, "get_discussion_failed", err, "Discussion not found!")
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DiscussionHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "discussion.create")

	var req transport.CreateDiscussionRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, l, "create_discussion_failed", apperr.Wrap(apperr.KindParse, "invalid body", err), "")
	}

	d, err := h.Svc.Create(ctx, req)
	if err != nil {
		return respondError(c, l, "create_discussion_failed", err, "Discussion not found!")
	}

	l.Info("create_discussion_success", "id", d.ID)
	return c.JSON(http.StatusCreated, d)
}

func (h *DiscussionHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "discussion.update")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "update_discussion_failed", err, "Discussion not found!")
	}

	var req transport.PatchDiscussionRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, l, "update_discussion_failed", apperr.Wrap(apperr.KindParse, "invalid body", err), "")
	}

	d, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return respondError(c, l, "update_discussion_failed", err, "Discussion not found!")
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DiscussionHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "discussion.delete")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "delete_discussion_failed", err, "Discussion not found!")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return respondError(c, l, "delete_discussion_failed", err, "Discussion not found!")
	}

	l.Info("delete_discussion_success", "id", id)
	return respondDeleted(c, "Discussion")
}
