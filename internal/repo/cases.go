package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/makeitweb/studio-backend/internal/models"
)

// CaseRepo serves both case sections; every operation is scoped to the
// section of the resource it was called for.
type CaseRepo struct {
	Store[models.Case]
}

func NewCaseRepo(db *gorm.DB) *CaseRepo {
	return &CaseRepo{Store: Store[models.Case]{DB: db}}
}

func (r *CaseRepo) GetInSection(ctx context.Context, id uint, section string) (*models.Case, error) {
	var item models.Case
	err := r.DB.WithContext(ctx).
		Preload("Developers").
		Preload("Categories").
		Where("section = ?", section).
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CaseRepo) Create(ctx context.Context, c *models.Case, developerIDs, categoryIDs []uint) (*models.Case, error) {
	devs, err := loadByIDs[models.Developer](ctx, r.DB, developerIDs)
	if err != nil {
		return nil, err
	}
	cats, err := loadByIDs[models.Category](ctx, r.DB, categoryIDs)
	if err != nil {
		return nil, err
	}

	c.Developers = devs
	c.Categories = cats
	if err := r.DB.WithContext(ctx).Omit("Developers.*", "Categories.*").Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

type CasePatch struct {
	Name         *string
	Price        *float64
	Img          *[]string
	Website      *string
	Date         *time.Time
	DeveloperIDs *[]uint
	CategoryIDs  *[]uint
}

func (r *CaseRepo) Patch(ctx context.Context, id uint, section string, p CasePatch) (*models.Case, error) {
	var c models.Case
	if err := r.DB.WithContext(ctx).Where("section = ?", section).First(&c, id).Error; err != nil {
		return nil, err
	}

	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Price != nil {
		c.Price = p.Price
	}
	if p.Img != nil {
		c.Img = *p.Img
	}
	if p.Website != nil {
		c.Website = *p.Website
	}
	if p.Date != nil {
		c.Date = p.Date
	}

	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Save(&c).Error; err != nil {
		return nil, err
	}

	if p.DeveloperIDs != nil {
		devs, err := loadByIDs[models.Developer](ctx, r.DB, *p.DeveloperIDs)
		if err != nil {
			return nil, err
		}
		if err := r.DB.WithContext(ctx).Model(&c).Association("Developers").Replace(devs); err != nil {
			return nil, err
		}
	}
	if p.CategoryIDs != nil {
		cats, err := loadByIDs[models.Category](ctx, r.DB, *p.CategoryIDs)
		if err != nil {
			return nil, err
		}
		if err := r.DB.WithContext(ctx).Model(&c).Association("Categories").Replace(cats); err != nil {
			return nil, err
		}
	}

	return r.GetInSection(ctx, id, section)
}

func (r *CaseRepo) DeleteInSection(ctx context.Context, id uint, section string) error {
	var c models.Case
	if err := r.DB.WithContext(ctx).Where("section = ?", section).First(&c, id).Error; err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Select(clause.Associations).Delete(&c).Error
}
