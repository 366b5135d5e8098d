package recommendation

import (
	"sort"

	"github.com/FACorreiaa/passadia/internal/app/models"
	"github.com/FACorreiaa/passadia/internal/pkg/geo"
)

// IsGeoDispersed reports whether the explored walkways are spread out: the
// largest pairwise distance exceeds the mean plus one population standard
// deviation. Fewer than two located walkways are never dispersed.
func IsGeoDispersed(explored []models.Walkway) bool {
	located := make([]*models.Coordinates, 0, len(explored))
	for _, w := range explored {
		if w.Coordinates.Valid() {
			located = append(located, w.Coordinates)
		}
	}
	if len(located) < 2 {
		return false
	}

	distances := make([]float64, 0, len(located)*(len(located)-1)/2)
	for i := 0; i < len(located); i++ {
		for j := i + 1; j < len(located); j++ {
			distances = append(distances, HaversineKm(located[i], located[j]))
		}
	}

	mean, stddev := geo.MeanStdDev(distances)
	return geo.Max(distances) > mean+stddev
}

// RefineByGeolocation keeps the candidates that lie closer to an explored
// walkway than the mean plus one standard deviation of all
// candidate-to-explored distances, sorted by that nearest distance. Explored
// walkways never count as neighbours of themselves. When explored is empty or
// no distance can be computed the candidates are returned unchanged.
func RefineByGeolocation(candidates []models.RecommendedWalkway, explored []models.Walkway) []models.RecommendedWalkway {
	if len(explored) == 0 {
		return candidates
	}

	nearest := make(map[int]float64, len(candidates))
	var distances []float64
	for i, c := range candidates {
		if !c.Coordinates.Valid() {
			continue
		}
		found := false
		var best float64
		for _, e := range explored {
			if identity(e) == identity(c.Walkway) || !e.Coordinates.Valid() {
				continue
			}
			d := HaversineKm(c.Coordinates, e.Coordinates)
			distances = append(distances, d)
			if !found || d < best {
				best = d
				found = true
			}
		}
		if found {
			nearest[i] = best
		}
	}

	if len(distances) == 0 {
		return candidates
	}

	mean, stddev := geo.MeanStdDev(distances)
	threshold := mean + stddev

	refined := make([]models.RecommendedWalkway, 0, len(nearest))
	for i, c := range candidates {
		d, ok := nearest[i]
		if !ok || d >= threshold {
			continue
		}
		km := d
		c.NearestExploredKm = &km
		refined = append(refined, c)
	}

	sort.SliceStable(refined, func(i, j int) bool {
		return *refined[i].NearestExploredKm < *refined[j].NearestExploredKm
	})
	return refined
}
