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

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.list")

	q, err := query.Parse(rawQuery(c), service.UserFields)
	if err != nil {
		return respondError(c, l, "list_users_failed", err, "User not found!")
	}

	total, items, err := h.Svc.List(ctx, q)
	if err != nil {
		return respondError(c, l, "list_users_failed", err, "User not found!")
	}
	return respondList(c, "users", q, total, items)
}

func (h *UserHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "get_user_failed", err, "User not found!")
	}

	u, err := h.Svc.Get(ctx, id)
	if err != nil {
		return respondError(c, l, "get_user_failed", err, "User not found!")
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, l, "create_user_failed", apperr.Wrap(apperr.KindParse, "invalid body", err), "")
	}

	u, err := h.Svc.Create(ctx, req)
	if err != nil {
		return respondError(c, l, "create_user_failed", err, "User not found!")
	}

	l.Info("create_user_success", "id", u.ID)
	return c.JSON(http.StatusCreated, u)
}

func (h *UserHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "update_user_failed", err, "User not found!")
	}

	var req transport.PatchUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, l, "update_user_failed", apperr.Wrap(apperr.KindParse, "invalid body", err), "")
	}

	u, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return respondError(c, l, "update_user_failed", err, "User not found!")
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "delete_user_failed", err, "User not found!")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return respondError(c, l, "delete_user_failed", err, "User not found!")
	}

	l.Info("delete_user_success", "id", id)
	return respondDeleted(c, "User")
}
