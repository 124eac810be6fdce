package inmemory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/gym_checkin_system/internal/geo"
	"github.com/shenikar/gym_checkin_system/internal/models"
)

type GymRepository struct {
	mu    sync.RWMutex
	items []*models.Gym
}

func NewGymRepository(gyms ...*models.Gym) *GymRepository {
	r := &GymRepository{}
	for _, g := range gyms {
		stored := *g
		r.items = append(r.items, &stored)
	}
	return r
}

func (r *GymRepository) Create(ctx context.Context, gym *models.Gym) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gym.CreatedAt.IsZero() {
		gym.CreatedAt = time.Now()
	}
	stored := *gym
	r.items = append(r.items, &stored)
	return nil
}

func (r *GymRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Gym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.items {
		if g.ID == id {
			found := *g
			return &found, nil
		}
	}
	return nil, nil
}

func (r *GymRepository) SearchMany(ctx context.Context, query string, page, pageSize int) ([]*models.Gym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(query)
	matched := make([]*models.Gym, 0)
	for _, g := range r.items {
		if strings.Contains(strings.ToLower(g.Title), query) {
			found := *g
			matched = append(matched, &found)
		}
	}
	sortNewestFirst(matched)
	return paginate(matched, page, pageSize), nil
}

func (r *GymRepository) FindManyNearby(ctx context.Context, point geo.Coordinate, radiusKm float64) ([]*models.Gym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*models.Gym, 0)
	for _, g := range r.items {
		lat, err := models.CoordinateToFloat(g.Latitude)
		if err != nil {
			return nil, err
		}
		lon, err := models.CoordinateToFloat(g.Longitude)
		if err != nil {
			return nil, err
		}
		if geo.DistanceBetweenCoordinates(point, geo.Coordinate{Latitude: lat, Longitude: lon}) <= radiusKm {
			found := *g
			matched = append(matched, &found)
		}
	}
	sortNewestFirst(matched)
	return matched, nil
}

func sortNewestFirst(gyms []*models.Gym) {
	sort.SliceStable(gyms, func(i, j int) bool {
		return gyms[i].CreatedAt.After(gyms[j].CreatedAt)
	})
}
