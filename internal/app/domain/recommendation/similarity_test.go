package recommendation

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestJaccardSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"hiking", "nature"}, []string{"nature", "hiking"}, 1},
		{"half overlap", []string{"hiking", "nature"}, []string{"hiking"}, 0.5},
		{"one third", []string{"hiking", "nature"}, []string{"nature", "birds"}, 1.0 / 3.0},
		{"disjoint", []string{"hiking"}, []string{"cooking"}, 0},
		{"both empty", nil, nil, 0},
		{"one empty", []string{"hiking"}, nil, 0},
		{"duplicates ignored", []string{"hiking", "hiking"}, []string{"hiking"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JaccardSimilarity(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.InDelta(t, got, JaccardSimilarity(tt.b, tt.a), 1e-9, "symmetric")
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestParseDistance(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want float64
	}{
		{"formatted km", "12.5 km", 12.5},
		{"integer string", "7km", 7},
		{"leading text", "approx. 3.25 km", 3.25},
		{"bare float", 7.0, 7},
		{"bare int", 7, 7},
		{"json number", json.Number("4.5"), 4.5},
		{"nil", nil, 0},
		{"no digits", "km", 0},
		{"unsupported type", true, 0},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseDistance(tt.raw), 1e-9)
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("unit magnitude and same direction", func(t *testing.T) {
		for _, v := range []Vector{{3, 4}, {5, 1}, {30, 3}, {0, 2}, {0.001, 0.002}} {
			n := Normalize(v)
			assert.InDelta(t, 1.0, math.Hypot(n.Distance, n.Difficulty), 1e-9)
			assert.InDelta(t, v.Distance*n.Difficulty, v.Difficulty*n.Distance, 1e-9, "collinear with input")
		}
	})

	t.Run("zero vector", func(t *testing.T) {
		assert.Equal(t, Vector{}, Normalize(Vector{}))
	})
}

func TestEuclideanDistance(t *testing.T) {
	assert.InDelta(t, 5.0, EuclideanDistance(Vector{0, 0}, Vector{3, 4}), 1e-9)
	assert.InDelta(t, 0.0, EuclideanDistance(Vector{1, 1}, Vector{1, 1}), 1e-9)
}
