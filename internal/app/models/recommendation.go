package models

// RecommendedWalkway is a catalog walkway enriched with whatever scoring
// stage produced it. Fields a stage did not compute are omitted.
type RecommendedWalkway struct {
	Walkway
	IsFavorite        bool     `json:"isFavorite"`
	Euclidean         *float64 `json:"euclidean,omitempty"`
	ClosestTo         string   `json:"closestTo,omitempty"`
	NearestExploredKm *float64 `json:"nearestExploredKm,omitempty"`
}

// SimilarUser is another walker whose declared interests overlap with the
// target's, with their explored walkways normalized to storage keys.
type SimilarUser struct {
	UserID     string   `json:"userId"`
	Email      string   `json:"email"`
	Similarity float64  `json:"similarity"`
	History    []string `json:"history"`
	Favorites  []string `json:"favorites"`
}

// RankedWalkway is a walkway with an aggregate counter.
type RankedWalkway struct {
	Walkway
	Count int `json:"count"`
}

// ErrorResponse is the envelope returned on failed API calls.
type ErrorResponse struct {
	Error string `json:"error"`
}
