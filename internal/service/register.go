package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/gym_checkin_system/internal/metrics"
	"github.com/shenikar/gym_checkin_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=register.go -destination=mocks/register_mock.go -package=mocks

// UserRepository определяет контракт хранилища пользователей.
// FindByEmail возвращает (nil, nil), если пользователь не найден.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
}

type registerService struct {
	repo       UserRepository
	logger     *logrus.Logger
	bcryptCost int
}

func NewRegisterService(repo UserRepository, logger *logrus.Logger, bcryptCost int) RegisterService {
	return &registerService{
		repo:       repo,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// Register создает пользователя с уникальным e-mail и bcrypt-хэшем пароля
func (s *registerService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	log := s.logger.WithFields(logrus.Fields{
		"service": "register",
		"method":  "Register",
		"email":   email,
	})
	log.Info("Attempting to register a new user")

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user by e-mail")
		return nil, fmt.Errorf("service: could not look up user: %w", err)
	}
	if existing != nil {
		log.Warn("E-mail already in use")
		return nil, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			log.Warn("E-mail taken concurrently")
			return nil, ErrUserAlreadyExists
		}
		log.WithError(err).Error("Failed to create user in repository")
		return nil, fmt.Errorf("service: could not create user: %w", err)
	}

	metrics.RecordRegistration()
	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, nil
}
