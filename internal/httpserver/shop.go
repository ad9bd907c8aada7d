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

type ShopHTTP struct {
	Svc *service.ShopService
}

func (h *ShopHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "shop.list")

	q, err := query.Parse(rawQuery(c), service.ShopFields)
	if err != nil {
		return respondError(c, l, "list_shops_failed", err, "Shop not found!")
	}

	total, items, err := h.Svc.List(ctx, q)
	if err != nil {
		return respondError(c, l, "list_shops_failed", err, "Shop not found!")
	}
	return respondList(c, "shops", q, total, items)
}

func (h *ShopHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "shop.get")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "get_shop_failed", err, "Shop not found!")
	}

	shop, err := h.Svc.Get(ctx, id)
	if err != nil {
		return respondError(c, l, "get_shop_failed", err, "Shop not found!")
	}
	return c.JSON(http.StatusOK, shop)
}

func (h *ShopHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "shop.create")

	var req transport.CreateShopRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, l, "create_shop_failed", apperr.Wrap(apperr.KindParse, "invalid body", err), "")
	}

	shop, err := h.Svc.Create(ctx, req)
	if err != nil {
		return respondError(c, l, "create_shop_failed", err, "Shop not found!")
	}

	l.Info("create_shop_success", "id", shop.ID)
	return c.JSON(http.StatusCreated, shop)
}

func (h *ShopHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "shop.update")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "update_shop_failed", err, "Shop not found!")
	}

	var req transport.PatchShopRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, l, "update_shop_failed", apperr.Wrap(apperr.KindParse, "invalid body", err), "")
	}

	shop, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return respondError(c, l, "update_shop_failed", err, "Shop not found!")
	}
	return c.JSON(http.StatusOK, shop)
}

func (h *ShopHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "shop.delete")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, l, "delete_shop_failed", err, "Shop not found!")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return respondError(c, l, "delete_shop_failed", err, "Shop not found!")
	}

	l.Info("delete_shop_success", "id", id)
	return respondDeleted(c, "Shop")
}
