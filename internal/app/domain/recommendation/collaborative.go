package recommendation

import "github.com/FACorreiaa/passadia/internal/app/models"

// sameUser matches by storage key when both sides have one, else by email.
func sameUser(a, b *models.User) bool {
	if a.StorageKey != "" && b.StorageKey != "" {
		return a.StorageKey == b.StorageKey
	}
	return a.Email == b.Email
}

// AverageSimilarity is the mean Jaccard similarity between target and every
// other user that declares interests and shares at least one of them. It is 0
// when no such user exists.
func AverageSimilarity(target *models.User, users []models.User) float64 {
	var sum float64
	var n int
	for i := range users {
		other := &users[i]
		if sameUser(target, other) || len(other.Interests) == 0 {
			continue
		}
		sim := JaccardSimilarity(target.Interests, other.Interests)
		if sim <= 0 {
			continue
		}
		sum += sim
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// FindSimilarUsers returns the other users whose interest similarity to
// target reaches minSimilarity. A nil minSimilarity uses AverageSimilarity as
// the threshold. Users sharing no interest at all are never similar. Results
// follow the order of users.
func FindSimilarUsers(target *models.User, users []models.User, mapper *IDMapper, minSimilarity *float64) []models.SimilarUser {
	var threshold float64
	if minSimilarity != nil {
		threshold = *minSimilarity
	} else {
		threshold = AverageSimilarity(target, users)
	}

	similar := make([]models.SimilarUser, 0)
	for i := range users {
		other := &users[i]
		if sameUser(target, other) || len(other.Interests) == 0 {
			continue
		}

		sim := JaccardSimilarity(target.Interests, other.Interests)
		if sim <= 0 || sim < threshold {
			continue
		}

		similar = append(similar, models.SimilarUser{
			UserID:     other.UserID,
			Email:      other.Email,
			Similarity: sim,
			History:    mapper.StorageKeys(HistoryRefs(other)),
			Favorites:  mapper.StorageKeys(other.Favorites),
		})
	}
	return similar
}

// RecommendCollaborative returns, in catalog order, the walkways that similar
// users walked or favorited and target has neither walked nor favorited.
func RecommendCollaborative(target *models.User, users []models.User, walkways []models.Walkway, minSimilarity *float64) []models.Walkway {
	mapper := NewIDMapper(walkways)
	explored := mapper.ExploredKeys(target)

	candidates := make(map[string]struct{})
	for _, su := range FindSimilarUsers(target, users, mapper, minSimilarity) {
		for _, key := range su.History {
			if _, seen := explored[key]; !seen {
				candidates[key] = struct{}{}
			}
		}
		for _, key := range su.Favorites {
			if _, seen := explored[key]; !seen {
				candidates[key] = struct{}{}
			}
		}
	}

	result := make([]models.Walkway, 0, len(candidates))
	if len(candidates) == 0 {
		return result
	}
	for _, w := range walkways {
		if _, ok := candidates[w.StorageKey]; ok && w.StorageKey != "" {
			result = append(result, w)
		}
	}
	return result
}
