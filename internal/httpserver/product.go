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

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	q, err := query.Parse(rawQuery(c), service.ProductFields)
	if err != nil {
		return respondError(c, l, "list_products_failed", err, "Product not found!")
	}

	total, items, err := h.Svc.List(ctx, q)
	if err != nil {
		return respondError(c, l, "list_products_failed", err, "Product not found!")
	}
	return respondList(c, "products", q, total, items)
}

func (h *ProductHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "get_product_failed", err, "Product not found!")
	}

	prod, err := h.Svc.Get(ctx, id)
	if err != nil {
		return respondError(c, l, "get_product_failed", err, "Product not found!")
	}
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, l, "create_product_failed", apperr.Wrap(apperr.KindParse, "invalid body", err), "")
	}

	prod, err := h.Svc.Create(ctx, req)
	if err != nil {
		return respondError(c, l, "create_product_failed", err, "Product not found!")
	}

	l.Info("create_product_success", "id", prod.ID)
	return c.JSON(http.StatusCreated, prod)
}

func (h *ProductHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "update_product_failed", err, "Product not found!")
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, l, "update_product_failed", apperr.Wrap(apperr.KindParse, "invalid body", err), "")
	}

	prod, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return respondError(c, l, "update_product_failed", err, "Product not found!")
	}
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "delete_product_failed", err, "Product not found!")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return respondError(c, l, "delete_product_failed", err, "Product not found!")
	}

	l.Info("delete_product_success", "id", id)
	return respondDeleted(c, "Product")
}
