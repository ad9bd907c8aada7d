package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/makeitweb/studio-backend/internal/apperr"
	"github.com/makeitweb/studio-backend/internal/models"
)

type CategoryRepo struct {
	Store[models.Category]
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{Store: Store[models.Category]{DB: db}}
}

// loadSectionCases resolves a connect/set list against one case section,
// rejecting ids that are missing or belong to the other section.
func loadSectionCases(ctx context.Context, db *gorm.DB, ids []uint, section string) ([]*models.Case, error) {
	if len(ids) == 0 {
		return []*models.Case{}, nil
	}

	var items []*models.Case
	if err := db.WithContext(ctx).Where("section = ?", section).Find(&items, ids).Error; err != nil {
		return nil, err
	}
	if len(items) != len(ids) {
		return nil, apperr.Newf(apperr.KindValidation, "%d of %d referenced case ids do not exist", len(ids)-len(items), len(ids))
	}
	return items, nil
}

// Create inserts the category and links the referenced cases. Every
// referenced id must already exist.
func (r *CategoryRepo) Create(ctx context.Context, cat *models.Category, caseIDs, caseHomeIDs []uint) (*models.Category, error) {
	cases, err := loadSectionCases(ctx, r.DB, caseIDs, models.SectionPortfolio)
	if err != nil {
		return nil, err
	}
	homes, err := loadSectionCases(ctx, r.DB, caseHomeIDs, models.SectionHome)
	if err != nil {
		return nil, err
	}
	cat.Cases = append(cases, homes...)

	if err := r.DB.WithContext(ctx).Omit("Cases.*").Create(cat).Error; err != nil {
		return nil, err
	}
	return cat, nil
}

type CategoryPatch struct {
	Title       *string
	CaseIDs     *[]uint
	CaseHomeIDs *[]uint
}

func (r *CategoryRepo) Patch(ctx context.Context, id uint, p CategoryPatch) (*models.Category, error) {
	var cat models.Category
	if err := r.DB.WithContext(ctx).First(&cat, id).Error; err != nil {
		return nil, err
	}

	if p.Title != nil {
		cat.Title = *p.Title
	}
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Save(&cat).Error; err != nil {
		return nil, err
	}

	if p.CaseIDs != nil {
		if err := r.replaceSectionCases(ctx, &cat, *p.CaseIDs, models.SectionPortfolio); err != nil {
			return nil, err
		}
	}
	if p.CaseHomeIDs != nil {
		if err := r.replaceSectionCases(ctx, &cat, *p.CaseHomeIDs, models.SectionHome); err != nil {
			return nil, err
		}
	}

	return r.Get(ctx, id, "Cases")
}

// replaceSectionCases swaps the category's membership within one section
// while leaving its links into the other section untouched.
func (r *CategoryRepo) replaceSectionCases(ctx context.Context, cat *models.Category, ids []uint, section string) error {
	next, err := loadSectionCases(ctx, r.DB, ids, section)
	if err != nil {
		return err
	}

	var keep []*models.Case
	if err := r.DB.WithContext(ctx).Model(cat).Association("Cases").Find(&keep, "section <> ?", section); err != nil {
		return err
	}

	return r.DB.WithContext(ctx).Model(cat).Association("Cases").Replace(append(keep, next...))
}

// UpsertByID creates the category under the caller-chosen id or, if it is
// already present, rewrites its title. The catalog importer keys
// categories this way.
func (r *CategoryRepo) UpsertByID(ctx context.Context, id uint, title string) error {
	var existing models.Category
	err := r.DB.WithContext(ctx).First(&existing, id).Error
	switch {
	case err == nil:
		existing.Title = title
		return r.DB.WithContext(ctx).Omit(clause.Associations).Save(&existing).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.DB.WithContext(ctx).Create(&models.Category{ID: id, Title: title}).Error
	default:
		return err
	}
}

// Exists reports whether a category id is present without loading it.
func (r *CategoryRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// TitlesByIDs returns the titles of the given categories in input order.
func (r *CategoryRepo) TitlesByIDs(ctx context.Context, ids []uint) ([]string, error) {
	cats, err := loadByIDs[models.Category](ctx, r.DB, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]string, len(cats))
	for _, c := range cats {
		byID[c.ID] = c.Title
	}
	titles := make([]string, 0, len(ids))
	for _, id := range ids {
		titles = append(titles, byID[id])
	}
	return titles, nil
}
