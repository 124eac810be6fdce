package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/gym_checkin_system/internal/geo"
	"github.com/shenikar/gym_checkin_system/internal/models"
	"github.com/shenikar/gym_checkin_system/internal/service"
	"github.com/sirupsen/logrus"
)

// CachedGymRepository кэширует спортзалы в Redis поверх другого GymRepository.
// Спортзал не меняется после создания, поэтому инвалидация не нужна.
type CachedGymRepository struct {
	next        service.GymRepository
	redisClient *redis.Client
	ttl         time.Duration
	logger      *logrus.Logger
}

func NewCachedGymRepository(next service.GymRepository, redisClient *redis.Client, ttl time.Duration, logger *logrus.Logger) service.GymRepository {
	return &CachedGymRepository{
		next:        next,
		redisClient: redisClient,
		ttl:         ttl,
		logger:      logger,
	}
}

func gymCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("gym:%s", id.String())
}

func (r *CachedGymRepository) Create(ctx context.Context, gym *models.Gym) error {
	return r.next.Create(ctx, gym)
}

// FindByID сначала смотрит в кэш; ошибки Redis не прерывают чтение из бд
func (r *CachedGymRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Gym, error) {
	log := r.logger.WithField("gym_id", id)

	gym, err := r.getGymFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Gym cache read failed")
	}
	if gym != nil {
		return gym, nil
	}

	gym, err = r.next.FindByID(ctx, id)
	if err != nil || gym == nil {
		return gym, err
	}

	if err := r.setGymCache(ctx, gym); err != nil {
		log.WithError(err).Warn("Gym cache write failed")
	}
	return gym, nil
}

func (r *CachedGymRepository) SearchMany(ctx context.Context, query string, page, pageSize int) ([]*models.Gym, error) {
	return r.next.SearchMany(ctx, query, page, pageSize)
}

func (r *CachedGymRepository) FindManyNearby(ctx context.Context, point geo.Coordinate, radiusKm float64) ([]*models.Gym, error) {
	return r.next.FindManyNearby(ctx, point, radiusKm)
}

// getGymFromCache пытается получить спортзал из Redis
func (r *CachedGymRepository) getGymFromCache(ctx context.Context, id uuid.UUID) (*models.Gym, error) {
	val, err := r.redisClient.Get(ctx, gymCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get gym from cache: %w", err)
	}

	gym := &models.Gym{}
	if err := json.Unmarshal(val, gym); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gym from cache: %w", err)
	}
	return gym, nil
}

// setGymCache сохраняет спортзал в Redis
func (r *CachedGymRepository) setGymCache(ctx context.Context, gym *models.Gym) error {
	val, err := json.Marshal(gym)
	if err != nil {
		return fmt.Errorf("failed to marshal gym for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, gymCacheKey(gym.ID), val, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set gym in cache: %w", err)
	}
	return nil
}
