package recommendation

import (
	"fmt"

	"github.com/FACorreiaa/passadia/internal/app/models"
)

func walkwayFixture(id int, distance any, difficulty float64) models.Walkway {
	return models.Walkway{
		ID:         id,
		StorageKey: keyOf(id),
		Name:       "walkway " + keyOf(id),
		Specifics: models.Specifics{
			Distance:   models.NewDistance(distance),
			Difficulty: models.NewDifficulty(difficulty),
		},
	}
}

func locatedWalkway(id int, lat, lng float64) models.Walkway {
	w := walkwayFixture(id, "5 km", 1)
	w.Coordinates = &models.Coordinates{Latitude: lat, Longitude: lng}
	return w
}

func keyOf(id int) string {
	return fmt.Sprintf("w%d", id)
}

func walked(refs ...models.WalkwayRef) []models.HistoryEntry {
	entries := make([]models.HistoryEntry, 0, len(refs))
	for _, r := range refs {
		entries = append(entries, models.HistoryEntry{WalkwayID: r})
	}
	return entries
}

func walkwayIDs(list []models.Walkway) []int {
	ids := make([]int, 0, len(list))
	for _, w := range list {
		ids = append(ids, w.ID)
	}
	return ids
}

func recommendedIDs(list []models.RecommendedWalkway) []int {
	ids := make([]int, 0, len(list))
	for _, w := range list {
		ids = append(ids, w.ID)
	}
	return ids
}

// scenarioSnapshot is the walker with one walk on walkway 1 and two peers
// who share one interest each and walked 2 and 3.
func scenarioSnapshot() Snapshot {
	target := models.User{
		StorageKey: "u",
		Email:      "u@example.com",
		Interests:  []string{"hiking", "nature"},
		History:    walked(models.NumericRef(1)),
	}
	return Snapshot{
		Target: &target,
		Users: []models.User{
			target,
			{StorageKey: "v1", Email: "v1@example.com", Interests: []string{"hiking"}, History: walked(models.NumericRef(2))},
			{StorageKey: "v2", Email: "v2@example.com", Interests: []string{"nature"}, History: walked(models.ParseRef("3"))},
		},
		Walkways: []models.Walkway{
			walkwayFixture(1, "5 km", 1),
			walkwayFixture(2, "5.2 km", 1),
			walkwayFixture(3, "30 km", 3),
		},
	}
}
