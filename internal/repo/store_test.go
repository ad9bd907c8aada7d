package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/makeitweb/studio-backend/internal/models"
	"github.com/makeitweb/studio-backend/internal/query"
)

func TestStoreListWindowAndOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for _, title := range []string{"Branding", "Web", "Motion", "Identity"} {
		seedCategory(t, db, title)
	}

	store := Store[models.Category]{DB: db}

	q := query.ListQuery{Offset: 1, Limit: 2, OrderColumn: "title", Descending: false}
	items, err := store.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Identity", items[0].Title)
	require.Equal(t, "Motion", items[1].Title)

	total, err := store.Count(ctx, nil)
	require.NoError(t, err)
	require.EqualValues(t, 4, total)
}

func TestStorePredicates(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	branding := seedCategory(t, db, "Branding")
	seedCategory(t, db, "Web Development")
	motion := seedCategory(t, db, "Motion Design")

	store := Store[models.Category]{DB: db}

	contains := []query.Predicate{{Column: "title", Kind: query.MatchContains, Value: "BRAND"}}
	total, err := store.Count(ctx, contains)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)

	in := []query.Predicate{{Column: "id", Kind: query.MatchIn, Value: []any{float64(branding.ID), float64(motion.ID)}}}
	total, err = store.Count(ctx, in)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)

	equals := []query.Predicate{{Column: "title", Kind: query.MatchEquals, Value: "Motion Design"}}
	total, err = store.Count(ctx, equals)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
}

func TestStoreDeleteMissing(t *testing.T) {
	db := newTestDB(t)
	store := Store[models.Category]{DB: db}

	err := store.Delete(context.Background(), 404)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
