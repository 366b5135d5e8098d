package recommendation

import (
	"math"
	"regexp"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/FACorreiaa/passadia/internal/app/models"
)

var numberToken = regexp.MustCompile(`\d+(?:\.\d+)?|\.\d+`)

// JaccardSimilarity is |A∩B| / |A∪B| over the distinct tags of a and b, and 0
// when the union is empty.
func JaccardSimilarity(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)

	union := len(setA)
	intersection := 0
	for tag := range setB {
		if _, ok := setA[tag]; ok {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// ParseDistance extracts kilometres from a formatted string such as "12.3 km"
// or from a bare number. Anything else is 0.
func ParseDistance(raw any) float64 {
	var f float64
	switch v := raw.(type) {
	case string:
		token := numberToken.FindString(v)
		if token == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return 0
		}
		f = parsed
	case float64:
		f = v
	case int:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Vector is a walkway in distance/difficulty space.
type Vector struct {
	Distance   float64
	Difficulty float64
}

// VectorOf builds the scoring vector of w. ok is false when the walkway has no
// usable numeric difficulty.
func VectorOf(w models.Walkway) (Vector, bool) {
	difficulty, ok := w.Specifics.Difficulty.Float()
	if !ok {
		return Vector{}, false
	}
	return Vector{
		Distance:   ParseDistance(w.Specifics.Distance.Raw()),
		Difficulty: difficulty,
	}, true
}

// Normalize scales v to unit length. The zero vector stays zero.
func Normalize(v Vector) Vector {
	magnitude := math.Hypot(v.Distance, v.Difficulty)
	if magnitude == 0 {
		return Vector{}
	}
	return Vector{
		Distance:   v.Distance / magnitude,
		Difficulty: v.Difficulty / magnitude,
	}
}

// EuclideanDistance is the 2-D norm of a-b.
func EuclideanDistance(a, b Vector) float64 {
	return math.Hypot(a.Distance-b.Distance, a.Difficulty-b.Difficulty)
}

// HaversineKm is the great-circle distance between two walkway coordinates.
func HaversineKm(a, b *models.Coordinates) float64 {
	return a.DistanceKm(b)
}
