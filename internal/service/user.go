package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/makeitweb/studio-backend/internal/apperr"
	"github.com/makeitweb/studio-backend/internal/models"
	"github.com/makeitweb/studio-backend/internal/query"
	"github.com/makeitweb/studio-backend/internal/repo"
	"github.com/makeitweb/studio-backend/internal/transport"
)

// UserService manages admin accounts. Credential verification and token
// issuance live in a separate auth service; this one only stores users
// with their passwords hashed.
type UserService struct {
	Repo *repo.UserRepo
}

func (s *UserService) List(ctx context.Context, q query.ListQuery) (int64, []models.User, error) {
	total, err := s.Repo.Count(ctx, q.Predicates)
	if err != nil {
		return 0, nil, err
	}
	items, err := s.Repo.List(ctx, q)
	if err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.Repo.Get(ctx, id)
}

func (s *UserService) Create(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	if req.Login == "" || req.Email == "" || req.Password == "" {
		return nil, apperr.New(apperr.KindValidation, "Login, email and password are required!")
	}

	taken, err := s.Repo.LoginTaken(ctx, req.Login, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.New(apperr.KindValidation, "User already exists")
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return s.Repo.Create(ctx, &models.User{
		Login:    req.Login,
		Email:    req.Email,
		Password: hash,
		Name:     req.Name,
	})
}

func (s *UserService) Update(ctx context.Context, id uint, req transport.PatchUserRequest) (*models.User, error) {
	p := repo.UserPatch{
		Login: req.Login,
		Email: req.Email,
		Name:  req.Name,
	}

	if req.Login != nil {
		taken, err := s.Repo.LoginTaken(ctx, *req.Login, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.New(apperr.KindValidation, "User already exists")
		}
	}

	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		p.Password = &hash
	}

	return s.Repo.Patch(ctx, id, p)
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.Repo.Delete(ctx, id)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
