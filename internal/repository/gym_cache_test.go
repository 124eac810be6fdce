package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shenikar/gym_checkin_system/internal/models"
	"github.com/shenikar/gym_checkin_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCachedRepo(t *testing.T) (*CachedGymRepository, redismock.ClientMock, *mocks.MockGymRepository) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockGymRepository(ctrl)
	db, mock := redismock.NewClientMock()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	repo := NewCachedGymRepository(inner, db, time.Minute, logger)
	return repo.(*CachedGymRepository), mock, inner
}

func newCacheTestGym(t *testing.T) *models.Gym {
	lat, err := models.NewCoordinate(-27.209205)
	require.NoError(t, err)
	lon, err := models.NewCoordinate(-49.640109)
	require.NoError(t, err)
	return &models.Gym{
		ID:        uuid.New(),
		Title:     "Gym",
		Phone:     "123456789",
		Latitude:  lat,
		Longitude: lon,
		CreatedAt: time.Date(2022, 1, 20, 10, 0, 0, 0, time.UTC),
	}
}

func TestCachedGymRepository_FindByID_FromCache(t *testing.T) {
	repo, mock, inner := newCachedRepo(t)
	ctx := context.Background()
	gym := newCacheTestGym(t)
	payload, err := json.Marshal(gym)
	require.NoError(t, err)

	mock.ExpectGet(gymCacheKey(gym.ID)).SetVal(string(payload))
	inner.EXPECT().FindByID(gomock.Any(), gomock.Any()).Times(0)

	found, err := repo.FindByID(ctx, gym.ID)

	require.NoError(t, err)
	assert.Equal(t, gym.ID, found.ID)
	assert.Equal(t, gym.Title, found.Title)
	lat, err := models.CoordinateToFloat(found.Latitude)
	require.NoError(t, err)
	assert.InDelta(t, -27.209205, lat, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedGymRepository_FindByID_MissFillsCache(t *testing.T) {
	repo, mock, inner := newCachedRepo(t)
	ctx := context.Background()
	gym := newCacheTestGym(t)
	payload, err := json.Marshal(gym)
	require.NoError(t, err)

	mock.ExpectGet(gymCacheKey(gym.ID)).RedisNil()
	inner.EXPECT().FindByID(ctx, gym.ID).Return(gym, nil).Times(1)
	mock.ExpectSet(gymCacheKey(gym.ID), payload, time.Minute).SetVal("OK")

	found, err := repo.FindByID(ctx, gym.ID)

	require.NoError(t, err)
	assert.Equal(t, gym, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedGymRepository_FindByID_NotFoundIsNotCached(t *testing.T) {
	repo, mock, inner := newCachedRepo(t)
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectGet(gymCacheKey(id)).RedisNil()
	inner.EXPECT().FindByID(ctx, id).Return(nil, nil).Times(1)

	found, err := repo.FindByID(ctx, id)

	require.NoError(t, err)
	assert.Nil(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedGymRepository_FindByID_CacheErrorFallsBack(t *testing.T) {
	repo, mock, inner := newCachedRepo(t)
	ctx := context.Background()
	gym := newCacheTestGym(t)

	mock.ExpectGet(gymCacheKey(gym.ID)).SetErr(errors.New("connection reset"))
	inner.EXPECT().FindByID(ctx, gym.ID).Return(gym, nil).Times(1)
	mock.Regexp().ExpectSet(gymCacheKey(gym.ID), `.*`, time.Minute).SetErr(errors.New("connection reset"))

	found, err := repo.FindByID(ctx, gym.ID)

	require.NoError(t, err)
	assert.Equal(t, gym.ID, found.ID)
}

func TestCachedGymRepository_FindByID_InnerError(t *testing.T) {
	repo, mock, inner := newCachedRepo(t)
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectGet(gymCacheKey(id)).RedisNil()
	inner.EXPECT().FindByID(ctx, id).Return(nil, errors.New("db down")).Times(1)

	_, err := repo.FindByID(ctx, id)

	require.Error(t, err)
	assert.ErrorContains(t, err, "db down")
}
