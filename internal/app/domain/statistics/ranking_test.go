package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/passadia/internal/app/models"
)

func catalog() []models.Walkway {
	return []models.Walkway{
		{ID: 1, StorageKey: "k1", Name: "one"},
		{ID: 2, StorageKey: "k2", Name: "two"},
		{ID: 3, StorageKey: "k3", Name: "three"},
		{ID: 4, StorageKey: "k4", Name: "four"},
		{ID: 5, StorageKey: "k5", Name: "five"},
		{ID: 6, StorageKey: "k6", Name: "six"},
	}
}

func visit(ref models.WalkwayRef) models.HistoryEntry {
	return models.HistoryEntry{WalkwayID: ref}
}

func users() []models.User {
	return []models.User{
		{
			Email:     "a@example.com",
			Favorites: []models.WalkwayRef{models.KeyRef("k2"), models.NumericRef(3)},
			History:   []models.HistoryEntry{visit(models.NumericRef(1)), visit(models.NumericRef(1)), visit(models.ParseRef("2"))},
		},
		{
			Email:     "b@example.com",
			Favorites: []models.WalkwayRef{models.NumericRef(2), models.KeyRef("k2")},
			History:   []models.HistoryEntry{visit(models.KeyRef("k1"))},
		},
		{
			Email:     "c@example.com",
			Favorites: []models.WalkwayRef{models.KeyRef("k4")},
		},
	}
}

func TestCountInteractions(t *testing.T) {
	counts := CountInteractions(users(), catalog())

	assert.Equal(t, 2, counts.Likes[2], "same walkway favorited via id and key counts once per user")
	assert.Equal(t, 1, counts.Likes[3])
	assert.Equal(t, 1, counts.Likes[4])
	assert.Equal(t, 2, counts.Explored[1], "repeat walks count once per user")
	assert.Equal(t, 1, counts.Explored[2])
	assert.Zero(t, counts.Explored[5])
}

func TestRank(t *testing.T) {
	counts := CountInteractions(users(), catalog())

	tests := []struct {
		name    string
		kind    Kind
		limit   int
		wantIDs []int
		wantTop int
	}{
		{name: "liked", kind: KindLiked, limit: 4, wantIDs: []int{2, 3, 4}, wantTop: 2},
		{name: "explored", kind: KindExplored, limit: 4, wantIDs: []int{1, 2}, wantTop: 2},
		{name: "top ties by id", kind: KindTop, limit: 4, wantIDs: []int{2, 1, 3, 4}, wantTop: 3},
		{name: "capped", kind: KindTop, limit: 2, wantIDs: []int{2, 1}, wantTop: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := Rank(tt.kind, counts, catalog(), tt.limit)

			ids := make([]int, 0, len(ranked))
			for _, r := range ranked {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			require.NotEmpty(t, ranked)
			assert.Equal(t, tt.wantTop, ranked[0].Count)
		})
	}
}

func TestRank_NoInteractions(t *testing.T) {
	ranked := Rank(KindTop, CountInteractions(nil, catalog()), catalog(), 4)
	assert.Empty(t, ranked)
}
