package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/passadia/internal/app/models"
)

func TestIsGeoDispersed(t *testing.T) {
	tests := []struct {
		name     string
		explored []models.Walkway
		want     bool
	}{
		{
			name:     "no walkways",
			explored: nil,
			want:     false,
		},
		{
			name:     "single located walkway",
			explored: []models.Walkway{locatedWalkway(1, 38.70, -9.14), walkwayFixture(2, "5 km", 1)},
			want:     false,
		},
		{
			name:     "two walkways far apart",
			explored: []models.Walkway{locatedWalkway(1, 38.70, -9.14), locatedWalkway(2, 41.15, -8.61)},
			want:     false,
		},
		{
			name: "tight cluster",
			explored: []models.Walkway{
				locatedWalkway(1, 38.700, -9.140),
				locatedWalkway(2, 38.700, -9.130),
				locatedWalkway(3, 38.708, -9.135),
			},
			want: false,
		},
		{
			name: "cluster with a far outlier",
			explored: []models.Walkway{
				locatedWalkway(1, 38.700, -9.140),
				locatedWalkway(2, 38.700, -9.130),
				locatedWalkway(3, 38.708, -9.135),
				locatedWalkway(4, 38.705, -9.145),
				locatedWalkway(5, 41.150, -8.610),
			},
			want: true,
		},
		{
			name: "invalid coordinates ignored",
			explored: []models.Walkway{
				locatedWalkway(1, 38.70, -9.14),
				locatedWalkway(2, 0, 0),
				locatedWalkway(3, 95, 10),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGeoDispersed(tt.explored))
		})
	}
}

func scoredOf(walkways ...models.Walkway) []models.RecommendedWalkway {
	out := make([]models.RecommendedWalkway, 0, len(walkways))
	for _, w := range walkways {
		out = append(out, models.RecommendedWalkway{Walkway: w})
	}
	return out
}

func TestRefineByGeolocation(t *testing.T) {
	explored := []models.Walkway{
		locatedWalkway(1, 38.70, -9.14),
		locatedWalkway(2, 38.71, -9.14),
	}
	candidates := scoredOf(
		locatedWalkway(11, 38.72, -9.14),  // 1.1 km from walkway 2
		locatedWalkway(12, 41.15, -8.61),  // Porto
		locatedWalkway(13, 38.705, -9.14), // between both
		walkwayFixture(14, "5 km", 1),     // no coordinates
	)

	refined := RefineByGeolocation(candidates, explored)

	assert.Equal(t, []int{13, 11}, recommendedIDs(refined))
	require.NotNil(t, refined[0].NearestExploredKm)
	assert.InDelta(t, 0.556, *refined[0].NearestExploredKm, 0.01)
	assert.InDelta(t, 1.112, *refined[1].NearestExploredKm, 0.01)
}

func TestRefineByGeolocation_FailsOpen(t *testing.T) {
	candidates := scoredOf(locatedWalkway(11, 38.72, -9.14), walkwayFixture(12, "5 km", 1))

	t.Run("no explored walkways", func(t *testing.T) {
		assert.Equal(t, candidates, RefineByGeolocation(candidates, nil))
	})

	t.Run("no located explored walkways", func(t *testing.T) {
		explored := []models.Walkway{walkwayFixture(1, "5 km", 1)}
		assert.Equal(t, candidates, RefineByGeolocation(candidates, explored))
	})
}

func TestRefineByGeolocation_IgnoresSameWalkway(t *testing.T) {
	explored := []models.Walkway{
		locatedWalkway(1, 38.70, -9.14),
		locatedWalkway(2, 38.80, -9.14),
		locatedWalkway(3, 41.15, -8.61),
	}
	// Walkway 1 is both explored and a candidate (a favorite being re-scored):
	// its nearest neighbour must be walkway 2, not itself at 0 km.
	candidates := scoredOf(locatedWalkway(1, 38.70, -9.14), locatedWalkway(4, 38.705, -9.14))

	refined := RefineByGeolocation(candidates, explored)

	require.Len(t, refined, 2)
	assert.Equal(t, 4, refined[0].ID)
	assert.Equal(t, 1, refined[1].ID)
	assert.Greater(t, *refined[1].NearestExploredKm, 10.0)
}
