package inmemory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/gym_checkin_system/internal/models"
	"github.com/shenikar/gym_checkin_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInRepository_CreateEnforcesOnePerDay(t *testing.T) {
	repo := NewCheckInRepository()
	ctx := context.Background()
	userID := uuid.New()
	morning := time.Date(2022, 1, 20, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &models.CheckIn{ID: uuid.New(), UserID: userID, CreatedAt: morning}))
	err := repo.Create(ctx, &models.CheckIn{ID: uuid.New(), UserID: userID, CreatedAt: morning.Add(12 * time.Hour)})

	require.ErrorIs(t, err, service.ErrMaxNumberOfCheckIns)
	assert.Len(t, repo.Items(), 1)
}

func TestCheckInRepository_ConcurrentCreateSameDay(t *testing.T) {
	repo := NewCheckInRepository()
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2022, 1, 20, 8, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &models.CheckIn{ID: uuid.New(), UserID: userID, CreatedAt: now})
		}()
	}
	wg.Wait()

	assert.Len(t, repo.Items(), 1)
}

func TestCheckInRepository_FindByUserIDOnDate(t *testing.T) {
	repo := NewCheckInRepository()
	ctx := context.Background()
	userID := uuid.New()
	created := time.Date(2022, 1, 20, 23, 59, 59, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &models.CheckIn{ID: uuid.New(), UserID: userID, CreatedAt: created}))

	found, err := repo.FindByUserIDOnDate(ctx, userID, time.Date(2022, 1, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.NotNil(t, found)

	missing, err := repo.FindByUserIDOnDate(ctx, userID, time.Date(2022, 1, 21, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCheckInRepository_SaveUnknown(t *testing.T) {
	repo := NewCheckInRepository()

	err := repo.Save(context.Background(), &models.CheckIn{ID: uuid.New()})

	require.ErrorIs(t, err, service.ErrResourceNotFound)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, paginate(items, 1, 2))
	assert.Equal(t, []int{5}, paginate(items, 3, 2))
	assert.Equal(t, []int{}, paginate(items, 4, 2))
	assert.Equal(t, []int{1, 2}, paginate(items, 0, 2))
}
