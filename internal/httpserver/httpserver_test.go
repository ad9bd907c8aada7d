package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/makeitweb/studio-backend/internal/importer"
	"github.com/makeitweb/studio-backend/internal/models"
	"github.com/makeitweb/studio-backend/internal/repo"
	"github.com/makeitweb/studio-backend/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))

	categories := repo.NewCategoryRepo(db)
	cases := repo.NewCaseRepo(db)
	products := repo.NewProductRepo(db)

	e := echo.New()
	Register(e, Deps{
		Categories: &CategoryHTTP{Svc: &service.CategoryService{Repo: categories}},
		Cases: &CasesHTTP{
			Svc:      &service.CaseService{Repo: cases},
			Resource: "cases",
			Section:  models.SectionPortfolio,
		},
		CasesHome: &CasesHTTP{
			Svc:      &service.CaseService{Repo: cases},
			Resource: "casesHome",
			Section:  models.SectionHome,
		},
		Developers:  &DeveloperHTTP{Svc: &service.DeveloperService{Repo: repo.NewDeveloperRepo(db)}},
		Shops:       &ShopHTTP{Svc: &service.ShopService{Repo: repo.NewShopRepo(db)}},
		Products:    &ProductHTTP{Svc: &service.ProductService{Repo: products}},
		Discussions: &DiscussionHTTP{Svc: &service.DiscussionService{Repo: repo.NewDiscussionRepo(db)}},
		Users:       &UserHTTP{Svc: &service.UserService{Repo: repo.NewUserRepo(db)}},
		Imports:     &ImportHTTP{Importer: &importer.Importer{Categories: categories, Products: products}},
		UploadLimit: "48M",
	})

	return &testEnv{T: t, E: e, DB: db}
}

func (env *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCategoryLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/categories", map[string]any{"title": "Branding"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[models.Category](t, rec)
	require.NotZero(t, created.ID)
	require.Equal(t, "Branding", created.Title)

	rec = env.do(http.MethodGet, "/api/categories/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPut, "/api/categories/1", map[string]any{"title": "Identity"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Identity", decode[models.Category](t, rec).Title)

	rec = env.do(http.MethodDelete, "/api/categories/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, map[string]string{"message": "Category deleted!"}, decode[map[string]string](t, rec))

	rec = env.do(http.MethodGet, "/api/categories/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, map[string]string{"error": "Category not found!"}, decode[map[string]string](t, rec))
}

func TestCategoryCreateRequiresTitle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/categories", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Title is required!", decode[map[string]string](t, rec)["error"])
}

func TestListContentRange(t *testing.T) {
	env := newTestEnv(t)

	for _, title := range []string{"A", "B", "C"} {
		rec := env.do(http.MethodPost, "/api/categories", map[string]any{"title": title})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.do(http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "categories 0-2/3", rec.Header().Get(ContentRangeHeader))
	require.Len(t, decode[[]models.Category](t, rec), 3)

	rec = env.do(http.MethodGet, "/api/categories?range=[0,1]", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "categories 0-1/3", rec.Header().Get(ContentRangeHeader))
	require.Len(t, decode[[]models.Category](t, rec), 2)

	rec = env.do(http.MethodGet, `/api/categories?sort=["title","asc"]&filter={"title":"b"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "categories 0-0/1", rec.Header().Get(ContentRangeHeader))

	rec = env.do(http.MethodGet, `/api/categories?sort=["nope","asc"]`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCaseSectionsAreIsolated(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/categories", map[string]any{"title": "Branding"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPost, "/api/cases", map[string]any{
		"name":        "Rebrand",
		"categoryIds": []int{1},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[models.Case](t, rec)

	rec = env.do(http.MethodGet, "/api/cases", nil)
	require.Equal(t, "cases 0-0/1", rec.Header().Get(ContentRangeHeader))

	rec = env.do(http.MethodGet, "/api/casesHome", nil)
	require.Equal(t, "casesHome 0--1/0", rec.Header().Get(ContentRangeHeader))
	require.Empty(t, decode[[]models.Case](t, rec))

	rec = env.do(http.MethodGet, "/api/casesHome/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Case not found!", decode[map[string]string](t, rec)["error"])

	rec = env.do(http.MethodGet, "/api/cases/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, created.ID, decode[models.Case](t, rec).ID)
}

func TestCaseCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/cases", map[string]any{"name": "No categories"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Name and at least one categoryId are required!", decode[map[string]string](t, rec)["error"])
}

func TestProductCRUD(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/categories", map[string]any{"title": "Furniture"})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Price and category ids arrive as strings from the admin form.
	rec = env.do(http.MethodPost, "/api/products", map[string]any{
		"name":        "Desk",
		"price":       "150.5",
		"categoryIds": []string{"1"},
		"img":         []any{map[string]any{"rawFile": map[string]any{"path": "desk.png"}}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[models.Product](t, rec)
	require.Equal(t, 150.5, created.Price)
	require.Equal(t, []string{"/uploads/desk.png"}, []string(created.Img))
	require.Equal(t, []string{"Furniture"}, []string(created.Tags))

	rec = env.do(http.MethodPut, "/api/products/1", map[string]any{"price": 199})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[models.Product](t, rec)
	require.Equal(t, 199.0, updated.Price)
	require.Equal(t, "Desk", updated.Name)

	rec = env.do(http.MethodDelete, "/api/products/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Product deleted!", decode[map[string]string](t, rec)["message"])

	rec = env.do(http.MethodGet, "/api/products/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Product not found!", decode[map[string]string](t, rec)["error"])
}

func TestProductCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/products", map[string]any{"name": "Desk"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Name, price, and at least one categoryId are required!", decode[map[string]string](t, rec)["error"])
}

func TestUserPasswordNeverLeaves(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/users", map[string]any{
		"login":    "admin",
		"email":    "admin@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotContains(t, rec.Body.String(), "secret")
	require.NotContains(t, rec.Body.String(), "password")

	var stored models.User
	require.NoError(t, env.DB.First(&stored, 1).Error)
	require.NotEqual(t, "secret", stored.Password)
	require.NotEmpty(t, stored.Password)

	rec = env.do(http.MethodPost, "/api/users", map[string]any{
		"login":    "admin",
		"email":    "again@example.com",
		"password": "other",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "User already exists", decode[map[string]string](t, rec)["error"])
}

func TestDiscussionCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/discussions", map[string]any{"name": "Ann"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/api/discussions", map[string]any{
		"name":    "Ann",
		"phone":   "+100200300",
		"email":   "ann@example.com",
		"company": "Acme",
		"budget":  "250000",
		"message": "Need a site",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 250000, decode[models.Discussion](t, rec).Budget)
}

func TestBadIDReturns400(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/categories/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
