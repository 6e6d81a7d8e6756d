package services

import (
	"testing"

	"garagespace/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixtures() []models.Garage {
	return []models.Garage{
		{ID: 1, Title: "Downtown parking box", Location: "Madrid"},
		{ID: 2, Title: "Riverside garage", Location: "Sevilla"},
		{ID: 3, Title: "Airport long stay", Location: "Malaga", Amenities: []models.Amenity{{Name: "camera"}}},
	}
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "malaga", NormalizeQuery("  Málaga "))
	assert.Equal(t, "garage", NormalizeQuery("GARAGE"))
}

func TestSearchGaragesByTitle(t *testing.T) {
	results := SearchGarages("riverside", searchFixtures())
	require.NotEmpty(t, results)
	assert.Equal(t, uint(2), results[0].Garage.ID)
}

func TestSearchGaragesByLocationIgnoresAccents(t *testing.T) {
	results := SearchGarages("málaga", searchFixtures())
	require.NotEmpty(t, results)
	assert.Equal(t, uint(3), results[0].Garage.ID)
}

func TestSearchGaragesToleratesTypos(t *testing.T) {
	results := SearchGarages("riversde garage", searchFixtures())
	require.NotEmpty(t, results)
	assert.Equal(t, uint(2), results[0].Garage.ID)
}

func TestSearchGaragesOrdersByScore(t *testing.T) {
	results := SearchGarages("garage sevilla", searchFixtures())
	require.NotEmpty(t, results)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestSearchGaragesNoMatch(t *testing.T) {
	results := SearchGarages("zzzzzzzz", searchFixtures())
	assert.Empty(t, results)
}
