// Package inmemory содержит потокобезопасные реализации репозиториев в памяти
// для тестов и локального запуска без базы данных.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/gym_checkin_system/internal/models"
	"github.com/shenikar/gym_checkin_system/internal/repository"
	"github.com/shenikar/gym_checkin_system/internal/service"
)

type CheckInRepository struct {
	mu    sync.RWMutex
	items []*models.CheckIn
}

func NewCheckInRepository() *CheckInRepository {
	return &CheckInRepository{}
}

// Items возвращает копию сохранённых отметок
func (r *CheckInRepository) Items() []models.CheckIn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.CheckIn, len(r.items))
	for i, c := range r.items {
		items[i] = *c
	}
	return items
}

// Create повторяет проверку уникального индекса (user_id, день создания)
func (r *CheckInRepository) Create(ctx context.Context, checkIn *models.CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findOnDate(checkIn.UserID, checkIn.CreatedAt) != nil {
		return service.ErrMaxNumberOfCheckIns
	}

	stored := *checkIn
	r.items = append(r.items, &stored)
	return nil
}

func (r *CheckInRepository) Save(ctx context.Context, checkIn *models.CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.items {
		if c.ID == checkIn.ID {
			stored := *checkIn
			r.items[i] = &stored
			return nil
		}
	}
	return service.ErrResourceNotFound
}

func (r *CheckInRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.items {
		if c.ID == id {
			found := *c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *CheckInRepository) FindByUserIDOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c := r.findOnDate(userID, date); c != nil {
		found := *c
		return &found, nil
	}
	return nil, nil
}

func (r *CheckInRepository) FindManyByUserID(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*models.CheckIn, 0)
	for _, c := range r.items {
		if c.UserID == userID {
			found := *c
			matched = append(matched, &found)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return paginate(matched, page, pageSize), nil
}

func (r *CheckInRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, c := range r.items {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}

// findOnDate вызывается под блокировкой
func (r *CheckInRepository) findOnDate(userID uuid.UUID, date time.Time) *models.CheckIn {
	start, end := repository.DayBounds(date)
	for _, c := range r.items {
		if c.UserID != userID {
			continue
		}
		if !c.CreatedAt.Before(start) && c.CreatedAt.Before(end) {
			return c
		}
	}
	return nil
}

func paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	from := (page - 1) * pageSize
	if from >= len(items) {
		return []T{}
	}
	to := from + pageSize
	if to > len(items) {
		to = len(items)
	}
	return items[from:to]
}
