package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/makeitweb/studio-backend/internal/models"
)

type ShopRepo struct {
	Store[models.Shop]
}

func NewShopRepo(db *gorm.DB) *ShopRepo {
	return &ShopRepo{Store: Store[models.Shop]{DB: db}}
}

func (r *ShopRepo) Create(ctx context.Context, shop *models.Shop, categoryIDs []uint) (*models.Shop, error) {
	cats, err := loadByIDs[models.Category](ctx, r.DB, categoryIDs)
	if err != nil {
		return nil, err
	}

	shop.Categories = cats
	if err := r.DB.WithContext(ctx).Omit("Categories.*").Create(shop).Error; err != nil {
		return nil, err
	}
	return shop, nil
}

type ShopPatch struct {
	Name        *string
	Price       *float64
	Img         *[]string
	Website     *string
	CategoryIDs *[]uint
}

func (r *ShopRepo) Patch(ctx context.Context, id uint, p ShopPatch) (*models.Shop, error) {
	var shop models.Shop
	if err := r.DB.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}

	if p.Name != nil {
		shop.Name = *p.Name
	}
	if p.Price != nil {
		shop.Price = p.Price
	}
	if p.Img != nil {
		shop.Img = *p.Img
	}
	if p.Website != nil {
		shop.Website = *p.Website
	}

	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Save(&shop).Error; err != nil {
		return nil, err
	}

	if p.CategoryIDs != nil {
		cats, err := loadByIDs[models.Category](ctx, r.DB, *p.CategoryIDs)
		if err != nil {
			return nil, err
		}
		if err := r.DB.WithContext(ctx).Model(&shop).Association("Categories").Replace(cats); err != nil {
			return nil, err
		}
	}

	return r.Get(ctx, id, "Categories")
}
