package recommendation

import "github.com/FACorreiaa/passadia/internal/app/models"

// DefaultLimit caps every recommendation list.
const DefaultLimit = 4

// Snapshot is the store state a recommendation is computed from.
type Snapshot struct {
	Target   *models.User
	Users    []models.User
	Walkways []models.Walkway
}

// Strategy names a recommendation path.
type Strategy string

const (
	StrategyCollaborative Strategy = "collaborative"
	StrategyContentBased  Strategy = "content_based"
	StrategyHybrid        Strategy = "hybrid"
)

// Collaborative runs the collaborative filter and caps the result.
func Collaborative(s Snapshot, minSimilarity *float64, limit int) []models.RecommendedWalkway {
	return capList(wrap(RecommendCollaborative(s.Target, s.Users, s.Walkways, minSimilarity)), limit)
}

// RecommendHybridCascade narrows the catalog with the collaborative filter,
// then re-ranks those candidates by content and, for geographically tight
// users, by proximity to what they already explored. Each stage that yields
// nothing falls back to the previous stage's output.
func RecommendHybridCascade(s Snapshot, limit int) []models.RecommendedWalkway {
	collaborative := RecommendCollaborative(s.Target, s.Users, s.Walkways, nil)
	if len(collaborative) == 0 {
		return []models.RecommendedWalkway{}
	}

	ec := BuildExplorationContext(s.Target, s.Walkways)
	if len(ec.Explored) == 0 {
		return capList(wrap(collaborative), limit)
	}

	scored := RecommendByEuclidean(ec.History, ec.Favorites, collaborative)
	if len(scored) == 0 {
		return capList(wrap(collaborative), limit)
	}
	SortByEuclidean(scored)

	var ranked []models.RecommendedWalkway
	switch {
	case IsGeoDispersed(ec.Explored):
		ranked = scored
	case len(scored) == 1:
		ranked = scored
	default:
		ranked = RefineByGeolocation(scored, ec.Explored)
	}

	return capList(dedupe(ranked), limit)
}

// RecommendContentBased scores the whole unexplored catalog against the
// user's history and favorites. Unlike the cascade, geo refinement runs even
// for a single scored walkway.
func RecommendContentBased(s Snapshot, limit int) []models.RecommendedWalkway {
	ec := BuildExplorationContext(s.Target, s.Walkways)
	if ec.IsEmpty() {
		return []models.RecommendedWalkway{}
	}

	scored := RecommendByEuclidean(ec.History, ec.Favorites, ec.Unexplored)
	SortByEuclidean(scored)

	ranked := scored
	if !IsGeoDispersed(ec.Explored) {
		ranked = RefineByGeolocation(scored, ec.Explored)
	}

	return capList(dedupe(ranked), limit)
}

func wrap(walkways []models.Walkway) []models.RecommendedWalkway {
	out := make([]models.RecommendedWalkway, 0, len(walkways))
	for _, w := range walkways {
		out = append(out, models.RecommendedWalkway{Walkway: w})
	}
	return out
}

// dedupe keeps the first occurrence of each walkway id, preserving order.
func dedupe(list []models.RecommendedWalkway) []models.RecommendedWalkway {
	seen := make(map[string]struct{}, len(list))
	out := make([]models.RecommendedWalkway, 0, len(list))
	for _, r := range list {
		id := identity(r.Walkway)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, r)
	}
	return out
}

func capList(list []models.RecommendedWalkway, limit int) []models.RecommendedWalkway {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(list) > limit {
		return list[:limit]
	}
	return list
}
