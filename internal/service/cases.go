package service

import (
	"context"
	"time"

	"github.com/makeitweb/studio-backend/internal/apperr"
	"github.com/makeitweb/studio-backend/internal/models"
	"github.com/makeitweb/studio-backend/internal/query"
	"github.com/makeitweb/studio-backend/internal/repo"
	"github.com/makeitweb/studio-backend/internal/transport"
)

// CaseService serves both the portfolio and the home-page case resources;
// the handler passes the section its route is bound to.
type CaseService struct {
	Repo *repo.CaseRepo
}

func (s *CaseService) List(ctx context.Context, section string, q query.ListQuery) (int64, []models.Case, error) {
	q.Predicates = append(q.Predicates, query.Predicate{
		Column: "section",
		Kind:   query.MatchEquals,
		Value:  section,
	})

	total, err := s.Repo.Count(ctx, q.Predicates)
	if err != nil {
		return 0, nil, err
	}
	items, err := s.Repo.List(ctx, q, "Developers", "Categories")
	if err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (s *CaseService) Get(ctx context.Context, section string, id uint) (*models.Case, error) {
	return s.Repo.GetInSection(ctx, id, section)
}

func (s *CaseService) Create(ctx context.Context, section string, req transport.CreateCaseRequest) (*models.Case, error) {
	if req.Name == "" || len(req.CategoryIDs) == 0 {
		return nil, apperr.New(apperr.KindValidation, "Name and at least one categoryId are required!")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	c := &models.Case{
		Section: section,
		Name:    req.Name,
		Img:     transport.ImagePaths(req.Img),
		Website: req.Website,
		Date:    date,
	}
	if req.Price != nil {
		price := req.Price.Float64()
		c.Price = &price
	}

	return s.Repo.Create(ctx, c, req.DeveloperIDs.Uints(), req.CategoryIDs.Uints())
}

func (s *CaseService) Update(ctx context.Context, section string, id uint, req transport.PatchCaseRequest) (*models.Case, error) {
	p := repo.CasePatch{
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
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		p.Date = date
	}
	if req.DeveloperIDs != nil {
		ids := req.DeveloperIDs.Uints()
		p.DeveloperIDs = &ids
	}
	if req.CategoryIDs != nil {
		ids := req.CategoryIDs.Uints()
		p.CategoryIDs = &ids
	}

	return s.Repo.Patch(ctx, id, section, p)
}

func (s *CaseService) Delete(ctx context.Context, section string, id uint) error {
	return s.Repo.DeleteInSection(ctx, id, section)
}

// parseDate accepts RFC 3339 timestamps and bare dates; an empty string
// means no date.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, apperr.Newf(apperr.KindValidation, "date %q is not a valid timestamp", raw)
}
