package recommendation

import "github.com/FACorreiaa/passadia/internal/app/models"

// ExplorationContext is a user's view of the catalog: what they walked, what
// they favorited, and the explored/unexplored partition of the catalog.
type ExplorationContext struct {
	// History holds one catalog walkway per distinct walkway in the user's
	// history, in catalog order.
	History []models.Walkway
	// Visits keeps the raw history entries keyed by numeric id.
	Visits     map[int][]models.HistoryEntry
	Favorites  []models.Walkway
	All        []models.Walkway
	Explored   []models.Walkway
	Unexplored []models.Walkway
	Mapper     *IDMapper
}

// BuildExplorationContext partitions walkways for target. Every catalog entry
// ends up in exactly one of Explored or Unexplored.
func BuildExplorationContext(target *models.User, walkways []models.Walkway) *ExplorationContext {
	mapper := NewIDMapper(walkways)

	historyIDs := make(map[int]struct{}, len(target.History))
	visits := make(map[int][]models.HistoryEntry, len(target.History))
	for _, entry := range target.History {
		id, ok := mapper.NumericID(entry.WalkwayID)
		if !ok {
			continue
		}
		historyIDs[id] = struct{}{}
		visits[id] = append(visits[id], entry)
	}

	favoriteKeys := toSet(mapper.StorageKeys(target.Favorites))

	ec := &ExplorationContext{
		Visits: visits,
		All:    walkways,
		Mapper: mapper,
	}

	for _, w := range walkways {
		_, walked := historyIDs[w.ID]
		walked = walked && w.ID != 0
		_, favorite := favoriteKeys[w.StorageKey]
		favorite = favorite && w.StorageKey != ""

		if walked {
			ec.History = append(ec.History, w)
		}
		if favorite {
			ec.Favorites = append(ec.Favorites, w)
		}
		if walked || favorite {
			ec.Explored = append(ec.Explored, w)
		} else {
			ec.Unexplored = append(ec.Unexplored, w)
		}
	}

	return ec
}

// IsEmpty reports whether the user has neither walked nor favorited anything
// the catalog knows about.
func (ec *ExplorationContext) IsEmpty() bool {
	return len(ec.History) == 0 && len(ec.Favorites) == 0
}
