package recommendation

import (
	"math"
	"sort"
	"strconv"

	"github.com/FACorreiaa/passadia/internal/app/models"
)

type reference struct {
	name   string
	vector Vector
}

// RecommendByEuclidean scores candidates and favorites the user has not walked
// against the user's history and favorites. Each scored walkway carries the
// Euclidean distance to its nearest reference in normalized
// distance/difficulty space and the name of that reference. Walkways without
// a numeric difficulty are neither references nor scored. The output keeps
// input order.
func RecommendByEuclidean(history, favorites, candidates []models.Walkway) []models.RecommendedWalkway {
	historic := make(map[int]struct{}, len(history))
	for _, w := range history {
		historic[w.ID] = struct{}{}
	}

	favoriteIDs := make(map[int]struct{}, len(favorites))
	favoritesNotInHistory := make([]models.Walkway, 0, len(favorites))
	for _, w := range favorites {
		favoriteIDs[w.ID] = struct{}{}
		if _, walked := historic[w.ID]; !walked {
			favoritesNotInHistory = append(favoritesNotInHistory, w)
		}
	}

	refs := make([]reference, 0, len(history)+len(favoritesNotInHistory))
	for _, w := range dedupeWalkways(append(append([]models.Walkway{}, history...), favoritesNotInHistory...)) {
		v, ok := VectorOf(w)
		if !ok {
			continue
		}
		refs = append(refs, reference{name: w.Name, vector: Normalize(v)})
	}
	if len(refs) == 0 {
		return []models.RecommendedWalkway{}
	}

	toScore := make([]models.Walkway, 0, len(candidates)+len(favoritesNotInHistory))
	for _, w := range candidates {
		if _, walked := historic[w.ID]; !walked {
			toScore = append(toScore, w)
		}
	}
	toScore = dedupeWalkways(append(toScore, favoritesNotInHistory...))

	scored := make([]models.RecommendedWalkway, 0, len(toScore))
	for _, w := range toScore {
		v, ok := VectorOf(w)
		if !ok {
			continue
		}
		normalized := Normalize(v)

		best := math.Inf(1)
		closest := ""
		for _, ref := range refs {
			if d := EuclideanDistance(normalized, ref.vector); d < best {
				best = d
				closest = ref.name
			}
		}

		_, isFavorite := favoriteIDs[w.ID]
		euclidean := best
		scored = append(scored, models.RecommendedWalkway{
			Walkway:    w,
			IsFavorite: isFavorite,
			Euclidean:  &euclidean,
			ClosestTo:  closest,
		})
	}
	return scored
}

// SortByEuclidean orders scored walkways by ascending distance to their
// nearest reference. Unscored entries go last.
func SortByEuclidean(scored []models.RecommendedWalkway) {
	sort.SliceStable(scored, func(i, j int) bool {
		return euclideanOf(scored[i]) < euclideanOf(scored[j])
	})
}

func euclideanOf(r models.RecommendedWalkway) float64 {
	if r.Euclidean == nil {
		return math.Inf(1)
	}
	return *r.Euclidean
}

// identity is the dedupe key of a walkway: its numeric id, or its storage key
// for entries the catalog never numbered.
func identity(w models.Walkway) string {
	if w.ID != 0 {
		return strconv.Itoa(w.ID)
	}
	return "key:" + w.StorageKey
}

// dedupeWalkways keeps the first walkway seen for each id.
func dedupeWalkways(walkways []models.Walkway) []models.Walkway {
	seen := make(map[string]struct{}, len(walkways))
	out := make([]models.Walkway, 0, len(walkways))
	for _, w := range walkways {
		id := identity(w)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, w)
	}
	return out
}
