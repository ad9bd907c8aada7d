package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/makeitweb/studio-backend/internal/models"
)

func TestCaseCreateWithRelations(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCaseRepo(db)

	cat := seedCategory(t, db, "Branding")
	dev := &models.Developer{Name: "Ann", Position: "Designer"}
	require.NoError(t, db.Create(dev).Error)

	price := 250000.0
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, &models.Case{
		Section: models.SectionPortfolio,
		Name:    "Rebrand",
		Price:   &price,
		Img:     []string{"/uploads/a.jpg"},
		Date:    &date,
	}, []uint{dev.ID}, []uint{cat.ID})
	require.NoError(t, err)

	got, err := repo.GetInSection(ctx, created.ID, models.SectionPortfolio)
	require.NoError(t, err)
	require.Equal(t, "Rebrand", got.Name)
	require.Len(t, got.Developers, 1)
	require.Len(t, got.Categories, 1)
	require.Equal(t, []string{"/uploads/a.jpg"}, []string(got.Img))
}

func TestCaseSectionScoping(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCaseRepo(db)

	c := seedCase(t, db, models.SectionHome, "Hero")

	_, err := repo.GetInSection(ctx, c.ID, models.SectionPortfolio)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.DeleteInSection(ctx, c.ID, models.SectionPortfolio)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.GetInSection(ctx, c.ID, models.SectionHome)
	require.NoError(t, err)
}

func TestCasePatchSparse(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCaseRepo(db)

	cat := seedCategory(t, db, "Branding")
	price := 100.0
	created, err := repo.Create(ctx, &models.Case{
		Section: models.SectionPortfolio,
		Name:    "Before",
		Price:   &price,
		Website: "https://example.com",
	}, nil, []uint{cat.ID})
	require.NoError(t, err)

	name := "After"
	got, err := repo.Patch(ctx, created.ID, models.SectionPortfolio, CasePatch{Name: &name})
	require.NoError(t, err)

	require.Equal(t, "After", got.Name)
	require.NotNil(t, got.Price)
	require.Equal(t, 100.0, *got.Price)
	require.Equal(t, "https://example.com", got.Website)
	require.Len(t, got.Categories, 1)
}

func TestCasePatchAppliesEmptyValues(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCaseRepo(db)

	cat := seedCategory(t, db, "Branding")
	created, err := repo.Create(ctx, &models.Case{
		Section: models.SectionPortfolio,
		Name:    "Keep",
		Website: "https://example.com",
	}, nil, []uint{cat.ID})
	require.NoError(t, err)

	empty := ""
	got, err := repo.Patch(ctx, created.ID, models.SectionPortfolio, CasePatch{Website: &empty})
	require.NoError(t, err)
	require.Equal(t, "", got.Website)
	require.Equal(t, "Keep", got.Name)
}

func TestCasePatchReplacesRelations(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCaseRepo(db)

	cat1 := seedCategory(t, db, "Branding")
	cat2 := seedCategory(t, db, "Web")
	created, err := repo.Create(ctx, &models.Case{
		Section: models.SectionPortfolio,
		Name:    "Rebrand",
	}, nil, []uint{cat1.ID})
	require.NoError(t, err)

	next := []uint{cat2.ID}
	got, err := repo.Patch(ctx, created.ID, models.SectionPortfolio, CasePatch{CategoryIDs: &next})
	require.NoError(t, err)
	require.Len(t, got.Categories, 1)
	require.Equal(t, cat2.ID, got.Categories[0].ID)
}
