package models

// User is a walker document. Favorites and history reference walkways through
// WalkwayRef because the two have historically been written with different id
// kinds.
type User struct {
	StorageKey      string         `json:"storageKey,omitempty"`
	Email           string         `json:"email"`
	UserID          string         `json:"userId"`
	Interests       []string       `json:"interests"`
	Points          int            `json:"points"`
	Favorites       []WalkwayRef   `json:"favorites"`
	History         []HistoryEntry `json:"history"`
	CreatedWalkways []WalkwayRef   `json:"createdWalkways,omitempty"`
}

// HistoryEntry records one walk. A walkway may appear several times.
type HistoryEntry struct {
	WalkwayID         WalkwayRef `json:"walkwayId"`
	WalkwayName       string     `json:"walkwayName,omitempty"`
	StartDate         string     `json:"startDate,omitempty"`
	EndDate           string     `json:"endDate,omitempty"`
	DistanceCompleted Distance   `json:"distanceCompleted"`
	Finished          bool       `json:"finished"`
	TimeSpent         any        `json:"timeSpent,omitempty"`
	Experience        string     `json:"experience,omitempty"`
}
