// Package httpserver exposes the catalog over REST. Every list endpoint
// honors ra-style range/sort/filter query params and reports the window
// through the Content-Range header.
package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Deps carries all wired handlers for route registration.
type Deps struct {
	Categories  *CategoryHTTP
	Cases       *CasesHTTP
	CasesHome   *CasesHTTP
	Developers  *DeveloperHTTP
	Shops       *ShopHTTP
	Products    *ProductHTTP
	Discussions *DiscussionHTTP
	Users       *UserHTTP
	Uploads     *UploadHTTP
	Imports     *ImportHTTP

	// UploadLimit caps multipart bodies, e.g. "48M".
	UploadLimit string
}

type resource interface {
	List(echo.Context) error
	Get(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

func Register(e *echo.Echo, d Deps) {
	e.GET("/health/live", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/health/ready", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	api := e.Group("/api")
	mount(api, "/categories", d.Categories)
	mount(api, "/cases", d.Cases)
	mount(api, "/casesHome", d.CasesHome)
	mount(api, "/developers", d.Developers)
	mount(api, "/shops", d.Shops)
	mount(api, "/products", d.Products)
	mount(api, "/discussions", d.Discussions)
	mount(api, "/users", d.Users)

	bodyLimit := middleware.BodyLimit(d.UploadLimit)
	e.POST("/uploads", d.Uploads.Save, bodyLimit)
	api.POST("/upload-xml", d.Imports.ImportCatalog, bodyLimit)
}

func mount(g *echo.Group, prefix string, r resource) {
	sub := g.Group(prefix)
	sub.GET("", r.List)
	sub.GET("/:id", r.Get)
	sub.POST("", r.Create)
	sub.PUT("/:id", r.Update)
	sub.DELETE("/:id", r.Delete)
}
