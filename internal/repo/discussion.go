package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/makeitweb/studio-backend/internal/models"
)

type DiscussionRepo struct {
	Store[models.Discussion]
}

func NewDiscussionRepo(db *gorm.DB) *DiscussionRepo {
	return &DiscussionRepo{Store: Store[models.Discussion]{DB: db}}
}

func (r *DiscussionRepo) Create(ctx context.Context, d *models.Discussion) (*models.Discussion, error) {
	if err := r.DB.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

type DiscussionPatch struct {
	Name    *string
	Phone   *string
	Email   *string
	Company *string
	Budget  *int
	Message *string
}

func (r *DiscussionRepo) Patch(ctx context.Context, id uint, p DiscussionPatch) (*models.Discussion, error) {
	var d models.Discussion
	if err := r.DB.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}

	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Phone != nil {
		d.Phone = *p.Phone
	}
	if p.Email != nil {
		d.Email = *p.Email
	}
	if p.Company != nil {
		d.Company = *p.Company
	}
	if p.Budget != nil {
		d.Budget = *p.Budget
	}
	if p.Message != nil {
		d.Message = *p.Message
	}

	if err := r.DB.WithContext(ctx).Save(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}
