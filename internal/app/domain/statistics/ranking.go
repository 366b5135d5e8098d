package statistics

import (
	"sort"

	"github.com/FACorreiaa/passadia/internal/app/domain/recommendation"
	"github.com/FACorreiaa/passadia/internal/app/models"
)

// Kind selects which counter a ranking is built from.
type Kind string

const (
	KindLiked    Kind = "liked"
	KindExplored Kind = "explored"
	KindTop      Kind = "top"
)

// Counts holds per-walkway counters keyed by numeric id.
type Counts struct {
	Likes    map[int]int
	Explored map[int]int
}

// CountInteractions counts, for every walkway, how many users favorited it
// and how many distinct users walked it at least once. Ids are normalized
// through the catalog mapper so numeric and storage-key refs agree.
func CountInteractions(users []models.User, walkways []models.Walkway) Counts {
	mapper := recommendation.NewIDMapper(walkways)
	counts := Counts{
		Likes:    make(map[int]int),
		Explored: make(map[int]int),
	}

	for i := range users {
		u := &users[i]

		liked := make(map[int]struct{}, len(u.Favorites))
		for _, ref := range u.Favorites {
			if id, ok := mapper.NumericID(ref); ok {
				liked[id] = struct{}{}
			}
		}
		for id := range liked {
			counts.Likes[id]++
		}

		walked := make(map[int]struct{}, len(u.History))
		for _, entry := range u.History {
			if id, ok := mapper.NumericID(entry.WalkwayID); ok {
				walked[id] = struct{}{}
			}
		}
		for id := range walked {
			counts.Explored[id]++
		}
	}

	return counts
}

func (c Counts) value(kind Kind, id int) int {
	switch kind {
	case KindLiked:
		return c.Likes[id]
	case KindExplored:
		return c.Explored[id]
	default:
		return c.Likes[id] + c.Explored[id]
	}
}

// Rank orders the catalog by the selected counter, highest first, ties by
// ascending id. Walkways nobody interacted with are left out.
func Rank(kind Kind, counts Counts, walkways []models.Walkway, limit int) []models.RankedWalkway {
	ranked := make([]models.RankedWalkway, 0, len(walkways))
	for _, w := range walkways {
		if w.ID == 0 {
			continue
		}
		if n := counts.value(kind, w.ID); n > 0 {
			ranked = append(ranked, models.RankedWalkway{Walkway: w, Count: n})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].ID < ranked[j].ID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
