package service

import (
	"context"

	"github.com/makeitweb/studio-backend/internal/apperr"
	"github.com/makeitweb/studio-backend/internal/models"
	"github.com/makeitweb/studio-backend/internal/query"
	"github.com/makeitweb/studio-backend/internal/repo"
	"github.com/makeitweb/studio-backend/internal/transport"
)

type DeveloperService struct {
	Repo *repo.DeveloperRepo
}

func (s *DeveloperService) List(ctx context.Context, q query.ListQuery) (int64, []models.Developer, error) {
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

func (s *DeveloperService) Get(ctx context.Context, id uint) (*models.Developer, error) {
	return s.Repo.Get(ctx, id, "Cases")
}

func (s *DeveloperService) Create(ctx context.Context, req transport.CreateDeveloperRequest) (*models.Developer, error) {
	if req.Name == "" || req.Position == "" {
		return nil, apperr.New(apperr.KindValidation, "Name and position are required!")
	}

	dev := &models.Developer{
		Name:       req.Name,
		Position:   req.Position,
		Img:        req.Img,
		Telegram:   req.Telegram,
		Instagram:  req.Instagram,
		Whatsapp:   req.Whatsapp,
		VK:         req.VK,
		Tiktok:     req.Tiktok,
		Behance:    req.Behance,
		Pinterest:  req.Pinterest,
		Artstation: req.Artstation,
	}
	return s.Repo.Create(ctx, dev)
}

func (s *DeveloperService) Update(ctx context.Context, id uint, req transport.PatchDeveloperRequest) (*models.Developer, error) {
	return s.Repo.Patch(ctx, id, repo.DeveloperPatch{
		Name:       req.Name,
		Position:   req.Position,
		Img:        req.Img,
		Telegram:   req.Telegram,
		Instagram:  req.Instagram,
		Whatsapp:   req.Whatsapp,
		VK:         req.VK,
		Tiktok:     req.Tiktok,
		Behance:    req.Behance,
		Pinterest:  req.Pinterest,
		Artstation: req.Artstation,
	})
}

func (s *DeveloperService) Delete(ctx context.Context, id uint) error {
	return s.Repo.DeleteWithAssociations(ctx, id)
}
