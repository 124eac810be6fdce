package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/gym_checkin_system/internal/models"
	"github.com/shenikar/gym_checkin_system/internal/service"
)

const checkInColumns = `id, user_id, gym_id, validated_at, created_at`

type CheckInRepository struct {
	db *pgxpool.Pool
}

func NewCheckInRepository(db *pgxpool.Pool) service.CheckInRepository {
	return &CheckInRepository{db: db}
}

// Create сохраняет новую отметку. Уникальный индекс (user_id, check_in_day)
// не даёт создать вторую отметку за день, в этом случае возвращается service.ErrMaxNumberOfCheckIns
func (r *CheckInRepository) Create(ctx context.Context, checkIn *models.CheckIn) error {
	query := `
		INSERT INTO check_ins (id, user_id, gym_id, created_at, check_in_day)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.Exec(ctx, query,
		checkIn.ID,
		checkIn.UserID,
		checkIn.GymID,
		checkIn.CreatedAt,
		calendarDay(checkIn.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return service.ErrMaxNumberOfCheckIns
		}
		return fmt.Errorf("failed to create check-in: %w", err)
	}
	return nil
}

// Save обновляет изменяемые поля отметки
func (r *CheckInRepository) Save(ctx context.Context, checkIn *models.CheckIn) error {
	query := `UPDATE check_ins SET validated_at = $1 WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, checkIn.ValidatedAt, checkIn.ID)
	if err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("check-in with id %s not found for update", checkIn.ID)
	}
	return nil
}

func (r *CheckInRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.CheckIn, error) {
	query := `SELECT ` + checkInColumns + ` FROM check_ins WHERE id = $1;`
	checkIn, err := scanCheckIn(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get check-in by id: %w", err)
	}
	return checkIn, nil
}

func (r *CheckInRepository) FindByUserIDOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.CheckIn, error) {
	start, end := DayBounds(date)
	query := `
		SELECT ` + checkInColumns + `
		FROM check_ins
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		LIMIT 1;
	`
	checkIn, err := scanCheckIn(r.db.QueryRow(ctx, query, userID, start, end))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find check-in on date: %w", err)
	}
	return checkIn, nil
}

func (r *CheckInRepository) FindManyByUserID(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.CheckIn, error) {
	offset := (page - 1) * pageSize
	query := `
		SELECT ` + checkInColumns + `
		FROM check_ins
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, userID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	checkIns := make([]*models.CheckIn, 0)
	for rows.Next() {
		checkIn, err := scanCheckIn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check-in row: %w", err)
		}
		checkIns = append(checkIns, checkIn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return checkIns, nil
}

func (r *CheckInRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM check_ins WHERE user_id = $1;`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count check-ins: %w", err)
	}
	return count, nil
}

func scanCheckIn(row pgx.Row) (*models.CheckIn, error) {
	checkIn := &models.CheckIn{}
	err := row.Scan(
		&checkIn.ID,
		&checkIn.UserID,
		&checkIn.GymID,
		&checkIn.ValidatedAt,
		&checkIn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return checkIn, nil
}
