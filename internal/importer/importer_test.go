package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/makeitweb/studio-backend/internal/apperr"
	"github.com/makeitweb/studio-backend/internal/models"
	"github.com/makeitweb/studio-backend/internal/repo"
)

func newTestImporter(t *testing.T) (*Importer, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))

	return &Importer{
		Categories: repo.NewCategoryRepo(db),
		Products:   repo.NewProductRepo(db),
	}, db
}

const feed = `<?xml version="1.0" encoding="UTF-8"?>
<yml_catalog date="2024-05-01">
  <shop>
    <categories>
      <category id="10">Furniture</category>
      <category id="20">Lighting</category>
      <category id="bad">Broken</category>
    </categories>
    <offers>
      <offer id="1">
        <model>Desk Alpha</model>
        <price>150.50</price>
        <categoryId>10</categoryId>
        <description>Oak desk</description>
        <picture>https://cdn.example.com/desk.jpg</picture>
        <param name="Material">Oak</param>
        <param name="Width">120cm</param>
      </offer>
      <offer id="2">
        <name>Lamp Beta</name>
        <price>not a price</price>
        <categoryId>20</categoryId>
      </offer>
      <offer id="3">
        <model>Ghost</model>
        <price>10</price>
        <categoryId>99</categoryId>
      </offer>
      <offer id="4">
        <price>10</price>
        <categoryId>10</categoryId>
      </offer>
    </offers>
  </shop>
</yml_catalog>`

func TestImportFeed(t *testing.T) {
	im, db := newTestImporter(t)
	ctx := context.Background()

	report, err := im.Import(ctx, strings.NewReader(feed))
	require.NoError(t, err)

	require.Equal(t, 2, report.Categories.Upserted)
	require.Equal(t, []string{"bad"}, report.Categories.Skipped)

	require.Len(t, report.Offers, 4)
	require.Equal(t, 2, report.Created())

	byName := map[string]OfferResult{}
	for _, o := range report.Offers {
		byName[o.Name] = o
	}

	require.Equal(t, StatusCreated, byName["Desk Alpha"].Status)
	require.Equal(t, 2, byName["Desk Alpha"].Characteristics)

	// An unparsable price falls back to zero instead of failing the offer.
	require.Equal(t, StatusCreated, byName["Lamp Beta"].Status)

	require.Equal(t, StatusSkipped, byName["Ghost"].Status)
	require.Equal(t, StatusSkipped, byName[""].Status)

	var desk models.Product
	require.NoError(t, db.Preload("Characteristics").Where("name = ?", "Desk Alpha").First(&desk).Error)
	require.Equal(t, 150.50, desk.Price)
	require.EqualValues(t, 10, desk.CategoryID)
	require.Equal(t, []string{"https://cdn.example.com/desk.jpg"}, []string(desk.Img))
	require.Len(t, desk.Characteristics, 2)

	var lamp models.Product
	require.NoError(t, db.Where("name = ?", "Lamp Beta").First(&lamp).Error)
	require.Zero(t, lamp.Price)
}

func TestImportIsIdempotent(t *testing.T) {
	im, db := newTestImporter(t)
	ctx := context.Background()

	_, err := im.Import(ctx, strings.NewReader(feed))
	require.NoError(t, err)

	report, err := im.Import(ctx, strings.NewReader(feed))
	require.NoError(t, err)
	require.Zero(t, report.Created())

	for _, o := range report.Offers {
		require.NotEqual(t, StatusCreated, o.Status, "offer %q re-created on second run", o.Name)
	}

	var products int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.EqualValues(t, 2, products)
}

func TestImportUpdatesCategoryTitle(t *testing.T) {
	im, db := newTestImporter(t)
	ctx := context.Background()

	_, err := im.Import(ctx, strings.NewReader(feed))
	require.NoError(t, err)

	renamed := strings.Replace(feed, ">Furniture<", ">Office Furniture<", 1)
	_, err = im.Import(ctx, strings.NewReader(renamed))
	require.NoError(t, err)

	var cat models.Category
	require.NoError(t, db.First(&cat, 10).Error)
	require.Equal(t, "Office Furniture", cat.Title)

	var categories int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	require.EqualValues(t, 2, categories)
}

func TestImportRejectsMalformedFeeds(t *testing.T) {
	im, _ := newTestImporter(t)
	ctx := context.Background()

	_, err := im.Import(ctx, strings.NewReader("not xml at all"))
	require.Equal(t, apperr.KindParse, apperr.KindOf(err))

	_, err = im.Import(ctx, strings.NewReader(`<yml_catalog date="2024-05-01"></yml_catalog>`))
	require.Equal(t, apperr.KindParse, apperr.KindOf(err))
}
