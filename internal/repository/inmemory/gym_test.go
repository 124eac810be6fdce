package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/gym_checkin_system/internal/geo"
	"github.com/shenikar/gym_checkin_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGym(t *testing.T, title string, lat, lon float64, createdAt time.Time) *models.Gym {
	t.Helper()
	latitude, err := models.NewCoordinate(lat)
	require.NoError(t, err)
	longitude, err := models.NewCoordinate(lon)
	require.NoError(t, err)
	return &models.Gym{ID: uuid.New(), Title: title, Latitude: latitude, Longitude: longitude, CreatedAt: createdAt}
}

func titles(gyms []*models.Gym) []string {
	out := make([]string, len(gyms))
	for i, g := range gyms {
		out[i] = g.Title
	}
	return out
}

func TestGymRepository_SearchManyNewestFirst(t *testing.T) {
	base := time.Date(2022, 1, 20, 10, 0, 0, 0, time.UTC)
	repo := NewGymRepository(
		newGym(t, "JavaScript Gym", 0, 0, base),
		newGym(t, "TypeScript Gym", 0, 0, base.Add(2*time.Hour)),
		newGym(t, "Go Gym", 0, 0, base.Add(time.Hour)),
	)

	gyms, err := repo.SearchMany(context.Background(), "gym", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"TypeScript Gym", "Go Gym", "JavaScript Gym"}, titles(gyms))

	page, err := repo.SearchMany(context.Background(), "gym", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"JavaScript Gym"}, titles(page))
}

func TestGymRepository_SearchManyMatchesWildcardsLiterally(t *testing.T) {
	now := time.Now()
	repo := NewGymRepository(
		newGym(t, "100% Fitness", 0, 0, now),
		newGym(t, "Iron_Temple", 0, 0, now),
		newGym(t, "Iron Temple", 0, 0, now),
	)

	gyms, err := repo.SearchMany(context.Background(), "%", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Fitness"}, titles(gyms))

	gyms, err = repo.SearchMany(context.Background(), "iron_", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"Iron_Temple"}, titles(gyms))
}

func TestGymRepository_FindManyNearbyNewestFirst(t *testing.T) {
	base := time.Date(2022, 1, 20, 10, 0, 0, 0, time.UTC)
	repo := NewGymRepository(
		newGym(t, "Near Old", -27.2092052, -49.6401091, base),
		newGym(t, "Far Away", -27.0610928, -49.5229501, base.Add(3*time.Hour)),
		newGym(t, "Near New", -27.2092052, -49.6401091, base.Add(time.Hour)),
	)

	gyms, err := repo.FindManyNearby(context.Background(), geo.Coordinate{Latitude: -27.2092052, Longitude: -49.6401091}, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Near New", "Near Old"}, titles(gyms))
}
