package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WuFaChieh/Mostra-exhibition/internal/domain"
	"github.com/WuFaChieh/Mostra-exhibition/internal/storage/seed"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "mostra.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	n, err := s.Seed(ctx, seed.Exhibitions())
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	n, err = s.Seed(ctx, seed.Exhibitions())
	require.NoError(t, err)
	assert.Zero(t, n)

	items, err := s.ListExhibitions(ctx, domain.ExhibitionFilter{})
	require.NoError(t, err)
	require.Len(t, items, 20)
	assert.Equal(t, "e1", items[0].ID)
	require.Len(t, items[0].Comments, 1)
	assert.Equal(t, "c1", items[0].Comments[0].ID)
}

func TestListFiltersByKindCategoryAndTag(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	_, err := s.Seed(ctx, []domain.Exhibition{
		{ID: "a", Kind: domain.KindMajor, Category: "美術館", Tags: []string{"雕塑"}},
		{ID: "b", Kind: domain.KindMinor, Category: "美術館", Tags: []string{"攝影"}},
		{ID: "c", Kind: domain.KindMajor, Category: "博物館"},
	})
	require.NoError(t, err)

	items, err := s.ListExhibitions(ctx, domain.ExhibitionFilter{Category: "美術館"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = s.ListExhibitions(ctx, domain.ExhibitionFilter{Kind: domain.KindMajor, Tag: "雕塑"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)
}

func TestCreateExhibitionGoesToFront(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	_, err := s.Seed(ctx, []domain.Exhibition{{ID: "a"}, {ID: "b"}})
	require.NoError(t, err)

	created, err := s.CreateExhibition(ctx, domain.Exhibition{ID: "new", Kind: domain.KindMinor, Tags: []string{"網友推薦"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"網友推薦"}, created.Tags)

	items, err := s.ListExhibitions(ctx, domain.ExhibitionFilter{})
	require.NoError(t, err)
	assert.Equal(t, "new", items[0].ID)

	_, err = s.CreateExhibition(ctx, domain.Exhibition{ID: "a"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddCommentRecomputesRating(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	_, err := s.Seed(ctx, []domain.Exhibition{{ID: "a", Rating: 4.9}})
	require.NoError(t, err)

	ex, err := s.AddComment(ctx, "a", domain.Comment{ID: "c1", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, ex.Rating)

	ex, err = s.AddComment(ctx, "a", domain.Comment{ID: "c2", Rating: 2})
	require.NoError(t, err)
	assert.InDelta(t, 3.5, ex.Rating, 1e-9)
	assert.Equal(t, "c2", ex.Comments[0].ID)
	assert.Equal(t, domain.MeanRating(ex.Comments), ex.Rating)

	_, err = s.AddComment(ctx, "a", domain.Comment{ID: "c3", Rating: 9})
	assert.ErrorIs(t, err, domain.ErrInvalidRating)

	_, err = s.AddComment(ctx, "missing", domain.Comment{ID: "c4", Rating: 3})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjustBookmarksClamps(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	_, err := s.Seed(ctx, []domain.Exhibition{{ID: "a", BookmarksCount: 1}})
	require.NoError(t, err)

	ex, err := s.AdjustBookmarks(ctx, "a", -3)
	require.NoError(t, err)
	assert.Equal(t, 0, ex.BookmarksCount)

	ex, err = s.AdjustBookmarks(ctx, "a", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, ex.BookmarksCount)

	_, err = s.GetExhibition(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
