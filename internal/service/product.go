package service

import (
	"context"
	"fmt"

	"github.com/makeitweb/studio-backend/internal/apperr"
	"github.com/makeitweb/studio-backend/internal/events"
	"github.com/makeitweb/studio-backend/internal/logging"
	"github.com/makeitweb/studio-backend/internal/models"
	"github.com/makeitweb/studio-backend/internal/query"
	"github.com/makeitweb/studio-backend/internal/repo"
	"github.com/makeitweb/studio-backend/internal/transport"
)

type ProductService struct {
	Repo     *repo.ProductRepo
	Producer *events.Producer
}

func (s *ProductService) List(ctx context.Context, q query.ListQuery) (int64, []models.Product, error) {
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

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.Get(ctx, id, "Categories", "Characteristics")
}

func (s *ProductService) Create(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" || req.Price == nil || len(req.CategoryIDs) == 0 {
		return nil, apperr.New(apperr.KindValidation, "Name, price, and at least one categoryId are required!")
	}

	prod := &models.Product{
		Name:         req.Name,
		Price:        req.Price.Float64(),
		Img:          transport.ImagePaths(req.Img),
		Description:  req.Description,
		Organization: req.Organization,
		Website:      req.Website,
	}

	created, err := s.Repo.Create(ctx, prod, req.CategoryIDs.Uints())
	if err != nil {
		return nil, err
	}

	s.publish(ctx, created.ID, map[string]any{
		"type":      "product_created",
		"productID": created.ID,
		"name":      created.Name,
	})
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, req transport.PatchProductRequest) (*models.Product, error) {
	p := repo.ProductPatch{
		Name:         req.Name,
		Description:  req.Description,
		Organization: req.Organization,
		Website:      req.Website,
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

	updated, err := s.Repo.Patch(ctx, id, p)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, updated.ID, map[string]any{
		"type":      "product_updated",
		"productID": updated.ID,
		"name":      updated.Name,
	})
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, id, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	return nil
}

func (s *ProductService) publish(ctx context.Context, id uint, event map[string]any) {
	if err := s.Producer.Publish(ctx, fmt.Sprint(id), event); err != nil {
		logging.FromContext(ctx).Warn("catalog_event_publish_failed", "error", err)
	}
}
