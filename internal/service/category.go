// Package service holds the per-entity application services: request
// validation, transport-to-domain conversion and orchestration of the
// repositories underneath.
package service

import (
	"context"

	"github.com/makeitweb/studio-backend/internal/apperr"
	"github.com/makeitweb/studio-backend/internal/models"
	"github.com/makeitweb/studio-backend/internal/query"
	"github.com/makeitweb/studio-backend/internal/repo"
	"github.com/makeitweb/studio-backend/internal/transport"
)

type CategoryService struct {
	Repo *repo.CategoryRepo
}

func (s *CategoryService) List(ctx context.Context, q query.ListQuery) (int64, []models.Category, error) {
	total, err := s.Repo.Count(ctx, q.Predicates)
	if err != nil {
		return 0, nil, err
	}
	items, err := s.Repo.List(ctx, q, "Cases")
	if err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	return s.Repo.Get(ctx, id, "Cases")
}

func (s *CategoryService) Create(ctx context.Context, req transport.CreateCategoryRequest) (*models.Category, error) {
	if req.Title == "" {
		return nil, apperr.New(apperr.KindValidation, "Title is required!")
	}

	cat := &models.Category{Title: req.Title}
	return s.Repo.Create(ctx, cat, req.CaseIDs.Uints(), req.CaseHomeIDs.Uints())
}

func (s *CategoryService) Update(ctx context.Context, id uint, req transport.PatchCategoryRequest) (*models.Category, error) {
	p := repo.CategoryPatch{Title: req.Title}
	if req.CaseIDs != nil {
		ids := req.CaseIDs.Uints()
		p.CaseIDs = &ids
	}
	if req.CaseHomeIDs != nil {
		ids := req.CaseHomeIDs.Uints()
		p.CaseHomeIDs = &ids
	}
	return s.Repo.Patch(ctx, id, p)
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	return s.Repo.DeleteWithAssociations(ctx, id)
}
