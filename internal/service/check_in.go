package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/gym_checkin_system/internal/config"
	"github.com/shenikar/gym_checkin_system/internal/geo"
	"github.com/shenikar/gym_checkin_system/internal/metrics"
	"github.com/shenikar/gym_checkin_system/internal/models"
	"github.com/shenikar/gym_checkin_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=check_in.go -destination=mocks/check_in_mock.go -package=mocks

// CheckInHistoryPageSize - размер страницы истории отметок
const CheckInHistoryPageSize = 20

// CheckInRepository определяет контракт хранилища отметок.
// Методы поиска возвращают (nil, nil), если запись не найдена.
type CheckInRepository interface {
	Create(ctx context.Context, checkIn *models.CheckIn) error
	Save(ctx context.Context, checkIn *models.CheckIn) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.CheckIn, error)
	// FindByUserIDOnDate ищет отметку пользователя за календарный день date в часовом поясе date
	FindByUserIDOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.CheckIn, error)
	FindManyByUserID(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.CheckIn, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}

// CheckInInput - данные для отметки пользователя в спортзале
type CheckInInput struct {
	GymID         uuid.UUID
	UserID        uuid.UUID
	UserLatitude  float64
	UserLongitude float64
}

// CheckInService определяет контракт бизнес-логики отметок
type CheckInService interface {
	CheckIn(ctx context.Context, input CheckInInput) (*models.CheckIn, error)
	Validate(ctx context.Context, checkInID uuid.UUID) (*models.CheckIn, error)
	History(ctx context.Context, userID uuid.UUID, page int) ([]*models.CheckIn, error)
	Metrics(ctx context.Context, userID uuid.UUID) (int, error)
}

type checkInService struct {
	checkIns  CheckInRepository
	gyms      GymRepository
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

// CheckInOption настраивает checkInService
type CheckInOption func(*checkInService)

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) CheckInOption {
	return func(s *checkInService) {
		s.now = now
	}
}

func NewCheckInService(checkIns CheckInRepository, gyms GymRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.WebhookPublisher, opts ...CheckInOption) CheckInService {
	s := &checkInService{
		checkIns:  checkIns,
		gyms:      gyms,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckIn проверяет расстояние до спортзала и лимит отметок за день, затем создаёт отметку
func (s *checkInService) CheckIn(ctx context.Context, input CheckInInput) (*models.CheckIn, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "check_in",
		"method":  "CheckIn",
		"user_id": input.UserID,
		"gym_id":  input.GymID,
	})
	log.Info("Attempting to check in")

	gym, err := s.gyms.FindByID(ctx, input.GymID)
	if err != nil {
		metrics.RecordCheckIn(metrics.CheckInFailed)
		log.WithError(err).Error("Failed to find gym in repository")
		return nil, fmt.Errorf("service: could not find gym: %w", err)
	}
	if gym == nil {
		metrics.RecordCheckIn(metrics.CheckInGymNotFound)
		log.Warn("Attempted to check in to a non-existent gym")
		return nil, ErrResourceNotFound
	}

	gymLocation, err := gymCoordinate(gym)
	if err != nil {
		metrics.RecordCheckIn(metrics.CheckInFailed)
		log.WithError(err).Error("Gym has invalid coordinates")
		return nil, fmt.Errorf("service: gym %s: %w", gym.ID, err)
	}
	userLocation := geo.Coordinate{Latitude: input.UserLatitude, Longitude: input.UserLongitude}

	distance := geo.DistanceBetweenCoordinates(userLocation, gymLocation)
	if !math.IsNaN(distance) {
		metrics.ObserveCheckInDistance(distance)
		log = log.WithField("distance_km", distance)
	}

	// NaN от нечисловых координат тоже отклоняется
	if !(distance <= s.cfg.CheckInMaxDistanceKm) {
		metrics.RecordCheckIn(metrics.CheckInTooFar)
		log.Warn("User is too far from the gym")
		return nil, ErrMaxDistance
	}

	now := s.now().In(s.cfg.CheckInLocation)

	existing, err := s.checkIns.FindByUserIDOnDate(ctx, input.UserID, now)
	if err != nil {
		metrics.RecordCheckIn(metrics.CheckInFailed)
		log.WithError(err).Error("Failed to look up today's check-in")
		return nil, fmt.Errorf("service: could not look up check-ins: %w", err)
	}
	if existing != nil {
		metrics.RecordCheckIn(metrics.CheckInDuplicate)
		log.WithField("existing_check_in_id", existing.ID).Warn("User already checked in today")
		return nil, ErrMaxNumberOfCheckIns
	}

	checkIn := &models.CheckIn{
		ID:        uuid.New(),
		UserID:    input.UserID,
		GymID:     input.GymID,
		CreatedAt: now,
	}
	if err := s.checkIns.Create(ctx, checkIn); err != nil {
		if errors.Is(err, ErrMaxNumberOfCheckIns) {
			metrics.RecordCheckIn(metrics.CheckInDuplicate)
			log.Warn("Concurrent check-in for the same day rejected by store")
			return nil, ErrMaxNumberOfCheckIns
		}
		metrics.RecordCheckIn(metrics.CheckInFailed)
		log.WithError(err).Error("Failed to create check-in in repository")
		return nil, fmt.Errorf("service: could not create check-in: %w", err)
	}

	metrics.RecordCheckIn(metrics.CheckInCreated)
	log.WithField("check_in_id", checkIn.ID).Info("Check-in created successfully")

	s.publish(ctx, log, webhook.CheckInEvent{
		Type:       webhook.EventCheckInCreated,
		CheckInID:  checkIn.ID,
		UserID:     checkIn.UserID,
		GymID:      checkIn.GymID,
		Latitude:   input.UserLatitude,
		Longitude:  input.UserLongitude,
		DistanceKm: distance,
		Timestamp:  checkIn.CreatedAt,
	})

	return checkIn, nil
}

// Validate подтверждает отметку, если окно подтверждения ещё не истекло
func (s *checkInService) Validate(ctx context.Context, checkInID uuid.UUID) (*models.CheckIn, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "check_in",
		"method":      "Validate",
		"check_in_id": checkInID,
	})
	log.Info("Attempting to validate check-in")

	checkIn, err := s.checkIns.FindByID(ctx, checkInID)
	if err != nil {
		log.WithError(err).Error("Failed to find check-in in repository")
		return nil, fmt.Errorf("service: could not find check-in: %w", err)
	}
	if checkIn == nil {
		metrics.RecordValidation(metrics.ValidationNotFound)
		log.Warn("Attempted to validate a non-existent check-in")
		return nil, ErrResourceNotFound
	}

	if checkIn.ValidatedAt != nil {
		log.Info("Check-in already validated")
		return checkIn, nil
	}

	now := s.now().In(s.cfg.CheckInLocation)
	if now.Sub(checkIn.CreatedAt) > s.cfg.CheckInValidationWindow {
		metrics.RecordValidation(metrics.ValidationLate)
		log.Warn("Check-in validation window expired")
		return nil, ErrLateCheckInValidation
	}

	checkIn.ValidatedAt = &now
	if err := s.checkIns.Save(ctx, checkIn); err != nil {
		log.WithError(err).Error("Failed to save validated check-in")
		return nil, fmt.Errorf("service: could not validate check-in: %w", err)
	}

	metrics.RecordValidation(metrics.ValidationAccepted)
	log.Info("Check-in validated successfully")

	s.publish(ctx, log, webhook.CheckInEvent{
		Type:      webhook.EventCheckInValidated,
		CheckInID: checkIn.ID,
		UserID:    checkIn.UserID,
		GymID:     checkIn.GymID,
		Timestamp: now,
	})

	return checkIn, nil
}

// History возвращает отметки пользователя, новые первыми
func (s *checkInService) History(ctx context.Context, userID uuid.UUID, page int) ([]*models.CheckIn, error) {
	if page < 1 {
		page = 1
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "check_in",
		"method":  "History",
		"user_id": userID,
		"page":    page,
	})
	log.Info("Listing check-in history")

	checkIns, err := s.checkIns.FindManyByUserID(ctx, userID, page, CheckInHistoryPageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list check-ins from repository")
		return nil, fmt.Errorf("service: could not list check-ins: %w", err)
	}

	log.WithField("count", len(checkIns)).Info("Check-in history listed successfully")
	return checkIns, nil
}

// Metrics возвращает общее количество отметок пользователя
func (s *checkInService) Metrics(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.checkIns.CountByUserID(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to count check-ins")
		return 0, fmt.Errorf("service: could not count check-ins: %w", err)
	}
	return count, nil
}

// publish отправляет событие; ошибка публикации не отменяет отметку
func (s *checkInService) publish(ctx context.Context, log *logrus.Entry, event webhook.CheckInEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish check-in webhook event")
	}
}

func gymCoordinate(gym *models.Gym) (geo.Coordinate, error) {
	lat, err := models.CoordinateToFloat(gym.Latitude)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := models.CoordinateToFloat(gym.Longitude)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("longitude: %w", err)
	}
	return geo.Coordinate{Latitude: lat, Longitude: lon}, nil
}
