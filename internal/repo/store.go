// Package repo executes catalog queries and mutations against the
// relational store.
package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/makeitweb/studio-backend/internal/apperr"
	"github.com/makeitweb/studio-backend/internal/query"
)

// Store is the generic read/delete half of an entity repository. Each
// entity repo embeds one and adds its own Create/Patch with relation
// semantics.
type Store[T any] struct {
	DB *gorm.DB
}

func (s *Store[T]) scoped(ctx context.Context, preds []query.Predicate) *gorm.DB {
	var model T
	return ApplyPredicates(s.DB.WithContext(ctx).Model(&model), preds)
}

// ApplyPredicates turns normalized predicates into WHERE clauses. Columns
// have already passed the per-entity allow-list, so interpolating them is
// safe.
func ApplyPredicates(tx *gorm.DB, preds []query.Predicate) *gorm.DB {
	for _, p := range preds {
		switch p.Kind {
		case query.MatchContains:
			needle, _ := p.Value.(string)
			tx = tx.Where("LOWER("+p.Column+") LIKE ?", "%"+strings.ToLower(needle)+"%")
		case query.MatchIn:
			tx = tx.Where(p.Column+" IN ?", p.Value)
		case query.MatchEquals:
			tx = tx.Where(p.Column+" = ?", p.Value)
		}
	}
	return tx
}

func (s *Store[T]) Count(ctx context.Context, preds []query.Predicate) (int64, error) {
	var total int64
	if err := s.scoped(ctx, preds).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store[T]) List(ctx context.Context, q query.ListQuery, preloads ...string) ([]T, error) {
	tx := s.scoped(ctx, q.Predicates)
	for _, rel := range preloads {
		tx = tx.Preload(rel)
	}

	order := q.OrderColumn + " ASC"
	if q.Descending {
		order = q.OrderColumn + " DESC"
	}

	items := make([]T, 0, q.Limit)
	if err := tx.Order(order).Offset(q.Offset).Limit(q.Limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store[T]) Get(ctx context.Context, id uint, preloads ...string) (*T, error) {
	tx := s.DB.WithContext(ctx)
	for _, rel := range preloads {
		tx = tx.Preload(rel)
	}

	var item T
	if err := tx.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	var model T
	res := s.DB.WithContext(ctx).Delete(&model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteWithAssociations removes the record and its join-table rows.
// Entities carrying many-to-many relations use this instead of Delete so
// stale links never survive the owner.
func (s *Store[T]) DeleteWithAssociations(ctx context.Context, id uint) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Select(clause.Associations).Delete(item).Error
}

// loadByIDs resolves a relation connect/set list, rejecting the whole
// operation when any referenced id has no record.
func loadByIDs[T any](ctx context.Context, db *gorm.DB, ids []uint) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}

	var items []*T
	if err := db.WithContext(ctx).Find(&items, ids).Error; err != nil {
		return nil, err
	}
	if len(items) != len(ids) {
		return nil, apperr.Newf(apperr.KindValidation, "%d of %d referenced ids do not exist", len(ids)-len(items), len(ids))
	}
	return items, nil
}
