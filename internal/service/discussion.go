package service

import (
	"context"

	"github.com/makeitweb/studio-backend/internal/apperr"
	"github.com/makeitweb/studio-backend/internal/models"
	"github.com/makeitweb/studio-backend/internal/query"
	"github.com/makeitweb/studio-backend/internal/repo"
	"github.com/makeitweb/studio-backend/internal/transport"
)

type DiscussionService struct {
	Repo *repo.DiscussionRepo
}

func (s *DiscussionService) List(ctx context.Context, q query.ListQuery) (int64, []models.Discussion, error) {
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

func (s *DiscussionService) Get(ctx context.Context, id uint) (*models.Discussion, error) {
	return s.Repo.Get(ctx, id)
}

func (s *DiscussionService) Create(ctx context.Context, req transport.CreateDiscussionRequest) (*models.Discussion, error) {
	if req.Name == "" || req.Phone == "" || req.Email == "" || req.Company == "" || req.Budget == nil || req.Message == "" {
		return nil, apperr.New(apperr.KindValidation, "Missing name, phone, email, company, budget, or message!")
	}

	return s.Repo.Create(ctx, &models.Discussion{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Company: req.Company,
		Budget:  req.Budget.Int(),
		Message: req.Message,
	})
}

func (s *DiscussionService) Update(ctx context.Context, id uint, req transport.PatchDiscussionRequest) (*models.Discussion, error) {
	p := repo.DiscussionPatch{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
	}
	if req.Budget != nil {
		budget := req.Budget.Int()
		p.Budget = &budget
	}
	return s.Repo.Patch(ctx, id, p)
}

func (s *DiscussionService) Delete(ctx context.Context, id uint) error {
	return s.Repo.Delete(ctx, id)
}
