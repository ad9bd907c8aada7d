package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/makeitweb/studio-backend/internal/models"
)

type DeveloperRepo struct {
	Store[models.Developer]
}

func NewDeveloperRepo(db *gorm.DB) *DeveloperRepo {
	return &DeveloperRepo{Store: Store[models.Developer]{DB: db}}
}

func (r *DeveloperRepo) Create(ctx context.Context, dev *models.Developer) (*models.Developer, error) {
	if err := r.DB.WithContext(ctx).Create(dev).Error; err != nil {
		return nil, err
	}
	return dev, nil
}

type DeveloperPatch struct {
	Name       *string
	Position   *string
	Img        *string
	Telegram   *string
	Instagram  *string
	Whatsapp   *string
	VK         *string
	Tiktok     *string
	Behance    *string
	Pinterest  *string
	Artstation *string
}

func (r *DeveloperRepo) Patch(ctx context.Context, id uint, p DeveloperPatch) (*models.Developer, error) {
	var dev models.Developer
	if err := r.DB.WithContext(ctx).First(&dev, id).Error; err != nil {
		return nil, err
	}

	if p.Name != nil {
		dev.Name = *p.Name
	}
	if p.Position != nil {
		dev.Position = *p.Position
	}
	if p.Img != nil {
		dev.Img = *p.Img
	}
	if p.Telegram != nil {
		dev.Telegram = *p.Telegram
	}
	if p.Instagram != nil {
		dev.Instagram = *p.Instagram
	}
	if p.Whatsapp != nil {
		dev.Whatsapp = *p.Whatsapp
	}
	if p.VK != nil {
		dev.VK = *p.VK
	}
	if p.Tiktok != nil {
		dev.Tiktok = *p.Tiktok
	}
	if p.Behance != nil {
		dev.Behance = *p.Behance
	}
	if p.Pinterest != nil {
		dev.Pinterest = *p.Pinterest
	}
	if p.Artstation != nil {
		dev.Artstation = *p.Artstation
	}

	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Save(&dev).Error; err != nil {
		return nil, err
	}
	return &dev, nil
}
