package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/gym_checkin_system/internal/geo"
	"github.com/shenikar/gym_checkin_system/internal/models"
	"github.com/shenikar/gym_checkin_system/internal/repository/inmemory"
	"github.com/shenikar/gym_checkin_system/internal/service"
	"github.com/shenikar/gym_checkin_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateGym_Success(t *testing.T) {
	repo := inmemory.NewGymRepository()
	sut := service.NewGymService(repo, newTestLogger())

	gym, err := sut.CreateGym(context.Background(), service.CreateGymInput{
		Title:     "JavaScript Gym",
		Phone:     "123456789",
		Latitude:  gymLatitude,
		Longitude: gymLongitude,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, gym.ID)

	lat, err := models.CoordinateToFloat(gym.Latitude)
	require.NoError(t, err)
	assert.InDelta(t, gymLatitude, lat, 1e-9)
}

func TestCreateGym_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockGymRepository(ctrl)
	sut := service.NewGymService(repoMock, newTestLogger())

	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")).Times(1)

	_, err := sut.CreateGym(context.Background(), service.CreateGymInput{Title: "Gym"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create gym")
}

func TestGetGym_NotFound(t *testing.T) {
	sut := service.NewGymService(inmemory.NewGymRepository(), newTestLogger())

	_, err := sut.GetGym(context.Background(), uuid.New())

	require.ErrorIs(t, err, service.ErrResourceNotFound)
}

func TestGetGym_Success(t *testing.T) {
	gym := newTestGym(t, gymLatitude, gymLongitude)
	sut := service.NewGymService(inmemory.NewGymRepository(gym), newTestLogger())

	found, err := sut.GetGym(context.Background(), gym.ID)

	require.NoError(t, err)
	assert.Equal(t, gym.ID, found.ID)
}

func TestSearchGyms_Paginated(t *testing.T) {
	repo := inmemory.NewGymRepository()
	for i := 1; i <= 22; i++ {
		gym := newTestGym(t, gymLatitude, gymLongitude)
		gym.Title = fmt.Sprintf("JavaScript Gym %d", i)
		require.NoError(t, repo.Create(context.Background(), gym))
	}
	other := newTestGym(t, gymLatitude, gymLongitude)
	other.Title = "TypeScript Gym"
	require.NoError(t, repo.Create(context.Background(), other))

	sut := service.NewGymService(repo, newTestLogger())

	firstPage, err := sut.SearchGyms(context.Background(), "javascript", 1)
	require.NoError(t, err)
	assert.Len(t, firstPage, service.GymSearchPageSize)

	secondPage, err := sut.SearchGyms(context.Background(), "JavaScript", 2)
	require.NoError(t, err)
	require.Len(t, secondPage, 2)
	assert.Equal(t, "JavaScript Gym 21", secondPage[0].Title)
}

func TestFetchNearbyGyms(t *testing.T) {
	near := newTestGym(t, -27.2092052, -49.6401091)
	near.Title = "Near Gym"
	far := newTestGym(t, -27.0610928, -49.5229501)
	far.Title = "Far Gym"

	sut := service.NewGymService(inmemory.NewGymRepository(near, far), newTestLogger())

	gyms, err := sut.FetchNearbyGyms(context.Background(), geo.Coordinate{Latitude: gymLatitude, Longitude: gymLongitude})

	require.NoError(t, err)
	require.Len(t, gyms, 1)
	assert.Equal(t, "Near Gym", gyms[0].Title)
}

func TestFetchNearbyGyms_PassesRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockGymRepository(ctrl)
	sut := service.NewGymService(repoMock, newTestLogger())
	point := geo.Coordinate{Latitude: 1, Longitude: 2}

	repoMock.EXPECT().FindManyNearby(gomock.Any(), point, service.NearbyGymsRadiusKm).Return([]*models.Gym{}, nil).Times(1)

	gyms, err := sut.FetchNearbyGyms(context.Background(), point)

	require.NoError(t, err)
	assert.Empty(t, gyms)
}
