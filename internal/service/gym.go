package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/gym_checkin_system/internal/geo"
	"github.com/shenikar/gym_checkin_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=gym.go -destination=mocks/gym_mock.go -package=mocks

const (
	GymSearchPageSize = 20
	// NearbyGymsRadiusKm - радиус поиска ближайших спортзалов
	NearbyGymsRadiusKm = 10.0
)

// GymRepository определяет контракт хранилища спортзалов.
// FindByID возвращает (nil, nil), если спортзал не найден.
type GymRepository interface {
	Create(ctx context.Context, gym *models.Gym) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Gym, error)
	SearchMany(ctx context.Context, query string, page, pageSize int) ([]*models.Gym, error)
	FindManyNearby(ctx context.Context, point geo.Coordinate, radiusKm float64) ([]*models.Gym, error)
}

type CreateGymInput struct {
	Title       string
	Description string
	Phone       string
	Latitude    float64
	Longitude   float64
}

type GymService interface {
	CreateGym(ctx context.Context, input CreateGymInput) (*models.Gym, error)
	GetGym(ctx context.Context, id uuid.UUID) (*models.Gym, error)
	SearchGyms(ctx context.Context, query string, page int) ([]*models.Gym, error)
	FetchNearbyGyms(ctx context.Context, point geo.Coordinate) ([]*models.Gym, error)
}

type gymService struct {
	repo   GymRepository
	logger *logrus.Logger
}

func NewGymService(repo GymRepository, logger *logrus.Logger) GymService {
	return &gymService{
		repo:   repo,
		logger: logger,
	}
}

func (s *gymService) CreateGym(ctx context.Context, input CreateGymInput) (*models.Gym, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "gym",
		"method":  "CreateGym",
		"title":   input.Title,
	})
	log.Info("Attempting to create a new gym")

	latitude, err := models.NewCoordinate(input.Latitude)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	longitude, err := models.NewCoordinate(input.Longitude)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	gym := &models.Gym{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Phone:       input.Phone,
		Latitude:    latitude,
		Longitude:   longitude,
	}
	if err := s.repo.Create(ctx, gym); err != nil {
		log.WithError(err).Error("Failed to create gym in repository")
		return nil, fmt.Errorf("service: could not create gym: %w", err)
	}

	log.WithField("gym_id", gym.ID).Info("Gym created successfully")
	return gym, nil
}

func (s *gymService) GetGym(ctx context.Context, id uuid.UUID) (*models.Gym, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "gym",
		"method":  "GetGym",
		"gym_id":  id,
	})

	gym, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get gym from repository")
		return nil, fmt.Errorf("service: could not get gym: %w", err)
	}
	if gym == nil {
		log.Warn("Gym not found")
		return nil, ErrResourceNotFound
	}
	return gym, nil
}

func (s *gymService) SearchGyms(ctx context.Context, query string, page int) ([]*models.Gym, error) {
	if page < 1 {
		page = 1
	}
	query = strings.TrimSpace(query)

	log := s.logger.WithFields(logrus.Fields{
		"service": "gym",
		"method":  "SearchGyms",
		"query":   query,
		"page":    page,
	})
	log.Info("Searching gyms")

	gyms, err := s.repo.SearchMany(ctx, query, page, GymSearchPageSize)
	if err != nil {
		log.WithError(err).Error("Failed to search gyms in repository")
		return nil, fmt.Errorf("service: could not search gyms: %w", err)
	}

	log.WithField("count", len(gyms)).Info("Gyms searched successfully")
	return gyms, nil
}

func (s *gymService) FetchNearbyGyms(ctx context.Context, point geo.Coordinate) ([]*models.Gym, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "gym",
		"method":    "FetchNearbyGyms",
		"latitude":  point.Latitude,
		"longitude": point.Longitude,
	})
	log.Info("Fetching nearby gyms")

	gyms, err := s.repo.FindManyNearby(ctx, point, NearbyGymsRadiusKm)
	if err != nil {
		log.WithError(err).Error("Failed to fetch nearby gyms from repository")
		return nil, fmt.Errorf("service: could not fetch nearby gyms: %w", err)
	}

	log.WithField("count", len(gyms)).Info("Nearby gyms fetched successfully")
	return gyms, nil
}
