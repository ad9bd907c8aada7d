package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/makeitweb/studio-backend/internal/models"
)

type UserRepo struct {
	Store[models.User]
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{Store: Store[models.User]{DB: db}}
}

// LoginTaken reports whether another user already holds the login.
func (r *UserRepo) LoginTaken(ctx context.Context, login string, excludeID uint) (bool, error) {
	var existing models.User
	err := r.DB.WithContext(ctx).Where("login = ? AND id <> ?", login, excludeID).First(&existing).Error
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (r *UserRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if err := r.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// UserPatch fields carry the already-hashed password.
type UserPatch struct {
	Login    *string
	Email    *string
	Password *string
	Name     *string
}

func (r *UserRepo) Patch(ctx context.Context, id uint, p UserPatch) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}

	if p.Login != nil {
		u.Login = *p.Login
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Name != nil {
		u.Name = *p.Name
	}

	if err := r.DB.WithContext(ctx).Save(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
