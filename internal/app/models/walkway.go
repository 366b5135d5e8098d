package models

import (
	"math"

	"github.com/goccy/go-json"
)

// Walkway is a catalog entry. ID is the stable numeric id users reference;
// StorageKey is the document key and only meaningful inside the store.
type Walkway struct {
	ID             int          `json:"id"`
	StorageKey     string       `json:"storageKey,omitempty"`
	Name           string       `json:"name"`
	Description    string       `json:"description,omitempty"`
	District       string       `json:"district,omitempty"`
	Region         string       `json:"region,omitempty"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
	Specifics      Specifics    `json:"specifics"`
	Trajectory     *Trajectory  `json:"trajectory,omitempty"`
	GeoJSON        string       `json:"geojson,omitempty"`
	PrimaryImage   string       `json:"primaryImage,omitempty"`
	PublicComments []Comment    `json:"publicComments,omitempty"`
}

// Specifics carries the attributes content-based scoring works on.
type Specifics struct {
	Difficulty Difficulty `json:"difficulty"`
	Distance   Distance   `json:"distance"`
}

// Comment is a public experience report left on a walkway.
type Comment struct {
	User       string `json:"user"`
	Experience string `json:"experience"`
	Timestamp  string `json:"timestamp"`
}

// Distance keeps the raw distance value as written by the authoring workflow,
// either a formatted string such as "12.3 km" or a bare number.
type Distance struct {
	raw any
}

// NewDistance wraps a raw distance value.
func NewDistance(v any) Distance { return Distance{raw: v} }

// Raw returns the value as decoded.
func (d Distance) Raw() any { return d.raw }

func (d *Distance) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &d.raw)
}

func (d Distance) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.raw)
}

// Difficulty is an integer in 1..3 when set by the catalog. Documents written
// by hand sometimes carry strings or nothing at all, which is why the raw
// value is kept.
type Difficulty struct {
	raw any
}

// NewDifficulty wraps a numeric difficulty.
func NewDifficulty(v float64) Difficulty { return Difficulty{raw: v} }

// Float returns the difficulty when it is a real number.
func (d Difficulty) Float() (float64, bool) {
	var f float64
	switch v := d.raw.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (d *Difficulty) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &d.raw)
}

func (d Difficulty) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.raw)
}
