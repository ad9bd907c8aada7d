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

type CategoryHTTP struct {
	Svc *service.CategoryService
}

func (h *CategoryHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.list")

	q, err := query.Parse(rawQuery(c), service.CategoryFields)
	if err != nil {
		return respondError(c, l, "list_categories_failed", err, "Category not found!")
	}

	total, items, err := h.Svc.List(ctx, q)
	if err != nil {
		return respondError(c, l, "list_categories_failed", err, "Category not found!")
	}
	return respondList(c, "categories", q, total, items)
}

func (h *CategoryHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "get_category_failed", err, "Category not found!")
	}

	cat, err := h.Svc.Get(ctx, id)
	if err != nil {
		return respondError(c, l, "get_category_failed", err, "Category not found!")
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *CategoryHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create")

	var req transport.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, l, "create_category_failed", apperr.Wrap(apperr.KindParse, "invalid body", err), "")
	}

	cat, err := h.Svc.Create(ctx, req)
	if err != nil {
		return respondError(c, l, "create_category_failed", err, "Category not found!")
	}

	l.Info("create_category_success", "id", cat.ID)
	return c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.update")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "update_category_failed", err, "Category not found!")
	}

	var req transport.PatchCategoryRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, l, "update_category_failed", apperr.Wrap(apperr.KindParse, "invalid body", err), "")
	}

	cat, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return respondError(c, l, "update_category_failed", err, "Category not found!")
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *CategoryHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "delete_category_failed", err, "Category not found!")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return respondError(c, l, "delete_category_failed", err, "Category not found!")
	}

	l.Info("delete_category_success", "id", id)
	return respondDeleted(c, "Category")
}
