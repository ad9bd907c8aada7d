package service

import (
	"context"

	"github.com/makeitweb/studio-backend/internal/apperr"
	"github.com/makeitweb/studio-backend/internal/models"
	"github.com/makeitweb/studio-backend/internal/query"
	"github.com/makeitweb/studio-backend/internal/repo"
	"github.com/makeitweb/studio-backend/internal/transport"
)

type ShopService struct {
	Repo *repo.ShopRepo
}

func (s *ShopService) List(ctx context.Context, q query.ListQuery) (int64, []models.Shop, error) {
	total, err := s.Repo.Count(ctx, q.Predicates)
	if err != nil {
		return 0, nil, err
	}
	items, err := s.Repo.List(ctx, q, "Categories")
	if err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (s *ShopService) Get(ctx context.Context, id uint) (*models.Shop, error) {
	return s.Repo.Get(ctx, id, "Categories")
}

func (s *ShopService) Create(ctx context.Context, req transport.CreateShopRequest) (*models.Shop, error) {
	if req.Name == "" || len(req.CategoryIDs) == 0 {
		return nil, apperr.New(apperr.KindValidation, "Name and at least one categoryId are required!")
	}

	shop := &models.Shop{
		Name:    req.Name,
		Img:     transport.ImagePaths(req.Img),
		Website: req.Website,
	}
	if req.Price != nil {
		price := req.Price.Float64()
		shop.Price = &price
	}

	return s.Repo.Create(ctx, shop, req.CategoryIDs.Uints())
}

func (s *ShopService) Update(ctx context.Context, id uint, req transport.PatchShopRequest) (*models.Shop, error) {
	p := repo.ShopPatch{
		Name:    req.Name,
		Website: req.Website,
	}
	if req.Price != nil {
		price := req.Price.Float64()
		p.Price = &price
	}
	if req.Img != nil {
		img := transport.ImagePaths(*req.Img)
		p.Img = &img
	}
	if req.CategoryIDs != nil {
		ids := req.CategoryIDs.Uints()
		p.CategoryIDs = &ids
	}
	return s.Repo.Patch(ctx, id, p)
}

func (s *ShopService) Delete(ctx context.Context, id uint) error {
	return s.Repo.DeleteWithAssociations(ctx, id)
}
