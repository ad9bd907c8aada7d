package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/makeitweb/studio-backend/internal/models"
)

type ProductRepo struct {
	Store[models.Product]
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{Store: Store[models.Product]{DB: db}}
}

// Create inserts the product linked to the given categories. The product
// inherits the category titles as its tag list.
func (r *ProductRepo) Create(ctx context.Context, prod *models.Product, categoryIDs []uint) (*models.Product, error) {
	cats, err := loadByIDs[models.Category](ctx, r.DB, categoryIDs)
	if err != nil {
		return nil, err
	}

	tags := make([]string, 0, len(cats))
	for _, c := range cats {
		tags = append(tags, c.Title)
	}

	prod.Categories = cats
	prod.Tags = tags
	if err := r.DB.WithContext(ctx).Omit("Categories.*").Create(prod).Error; err != nil {
		return nil, err
	}
	return prod, nil
}

// CreateImported inserts a product coming from the catalog feed; it has a
// single owning category id and no tag derivation.
func (r *ProductRepo) CreateImported(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

// HasDuplicate reports whether a product with the same name, price and
// owning category is already stored. The import path uses this as its
// best-effort idempotence guard.
func (r *ProductRepo) HasDuplicate(ctx context.Context, name string, price float64, categoryID uint) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("name = ? AND price = ? AND category_id = ?", name, price, categoryID).
		Count(&n).Error
	return n > 0, err
}

func (r *ProductRepo) AddCharacteristic(ctx context.Context, ch *models.ProductCharacteristic) error {
	return r.DB.WithContext(ctx).Create(ch).Error
}

type ProductPatch struct {
	Name         *string
	Price        *float64
	Img          *[]string
	Description  *string
	Organization *string
	Website      *string
	CategoryIDs  *[]uint
}

func (r *ProductRepo) Patch(ctx context.Context, id uint, p ProductPatch) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).First(&prod, id).Error; err != nil {
		return nil, err
	}

	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.Img != nil {
		prod.Img = *p.Img
	}
	if p.Description != nil {
		prod.Description = *p.Description
	}
	if p.Organization != nil {
		prod.Organization = *p.Organization
	}
	if p.Website != nil {
		prod.Website = *p.Website
	}

	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Save(&prod).Error; err != nil {
		return nil, err
	}

	if p.CategoryIDs != nil {
		cats, err := loadByIDs[models.Category](ctx, r.DB, *p.CategoryIDs)
		if err != nil {
			return nil, err
		}
		if err := r.DB.WithContext(ctx).Model(&prod).Association("Categories").Replace(cats); err != nil {
			return nil, err
		}
	}

	return r.Get(ctx, id, "Categories", "Characteristics")
}

// Delete removes the product together with its characteristic rows and
// category links.
func (r *ProductRepo) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prod models.Product
		if err := tx.First(&prod, id).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductCharacteristic{}).Error; err != nil {
			return err
		}
		return tx.Select(clause.Associations).Delete(&prod).Error
	})
}
