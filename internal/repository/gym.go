package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/gym_checkin_system/internal/geo"
	"github.com/shenikar/gym_checkin_system/internal/models"
	"github.com/shenikar/gym_checkin_system/internal/service"
)

const gymColumns = `id, title, description, phone, latitude, longitude, created_at`

type GymRepository struct {
	db *pgxpool.Pool
}

func NewGymRepository(db *pgxpool.Pool) service.GymRepository {
	return &GymRepository{db: db}
}

// Create создает новую запись о спортзале в бд
func (r *GymRepository) Create(ctx context.Context, gym *models.Gym) error {
	query := `
		INSERT INTO gyms (id, title, description, phone, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at;
	`
	err := r.db.QueryRow(ctx, query,
		gym.ID,
		gym.Title,
		gym.Description,
		gym.Phone,
		gym.Latitude,
		gym.Longitude,
	).Scan(&gym.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create gym: %w", err)
	}
	return nil
}

// FindByID возвращает спортзал по UUID или nil, если его нет
func (r *GymRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Gym, error) {
	query := `SELECT ` + gymColumns + ` FROM gyms WHERE id = $1;`
	gym, err := scanGym(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get gym by id: %w", err)
	}
	return gym, nil
}

// SearchMany ищет спортзалы по подстроке в названии; % и _ в запросе не шаблоны
func (r *GymRepository) SearchMany(ctx context.Context, query string, page, pageSize int) ([]*models.Gym, error) {
	offset := (page - 1) * pageSize
	sql := `
		SELECT ` + gymColumns + `
		FROM gyms
		WHERE strpos(lower(title), lower($1)) > 0
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	return r.queryGyms(ctx, sql, query, pageSize, offset)
}

// FindManyNearby находит спортзалы в радиусе radiusKm от точки (формула гаверсинусов)
func (r *GymRepository) FindManyNearby(ctx context.Context, point geo.Coordinate, radiusKm float64) ([]*models.Gym, error) {
	sql := `
		SELECT ` + gymColumns + `
		FROM gyms
		WHERE 2 * 6371 * asin(LEAST(1, sqrt(
			power(sin(radians(latitude::float8 - $1::float8) / 2), 2) +
			cos(radians($1::float8)) * cos(radians(latitude::float8)) *
			power(sin(radians(longitude::float8 - $2::float8) / 2), 2)
		))) <= $3::float8
		ORDER BY created_at DESC;
	`
	return r.queryGyms(ctx, sql, point.Latitude, point.Longitude, radiusKm)
}

func (r *GymRepository) queryGyms(ctx context.Context, sql string, args ...any) ([]*models.Gym, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query gyms: %w", err)
	}
	defer rows.Close()

	gyms := make([]*models.Gym, 0)
	for rows.Next() {
		gym, err := scanGym(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gym row: %w", err)
		}
		gyms = append(gyms, gym)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return gyms, nil
}

func scanGym(row pgx.Row) (*models.Gym, error) {
	gym := &models.Gym{}
	err := row.Scan(
		&gym.ID,
		&gym.Title,
		&gym.Description,
		&gym.Phone,
		&gym.Latitude,
		&gym.Longitude,
		&gym.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return gym, nil
}
