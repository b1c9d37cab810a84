package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sheav-web/-math-bot-telegram-two/internal/models"
)

type AttemptsR struct {
	db QueryI
}

func NewAttemptsRepository(db QueryI) *AttemptsR {
	return &AttemptsR{db: db}
}

// Init creates the attempts table when it does not exist yet.
func (r *AttemptsR) Init(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS user_attempts (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		correct INT NOT NULL,
		elapsed_sec INT NOT NULL,
		completed_at TIMESTAMPTZ NOT NULL,
		missed TEXT[] NOT NULL DEFAULT '{}'
	);
	CREATE INDEX IF NOT EXISTS idx_user_attempts_user ON user_attempts (user_id, completed_at);
	`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to init attempts schema: %w", err)
	}

	return nil
}

func (r *AttemptsR) AddAttempt(ctx context.Context, userID int64, attempt models.AttemptRecord) error {
	query := `
		INSERT INTO user_attempts (user_id, correct, elapsed_sec, completed_at, missed)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		userID, attempt.Correct, attempt.Elapsed, attempt.Date, pq.StringArray(attempt.Missed))
	if err != nil {
		return fmt.Errorf("failed to save attempt for user %d: %w", userID, err)
	}

	return nil
}

type attemptRow struct {
	Correct int            `db:"correct"`
	Elapsed int            `db:"elapsed_sec"`
	Date    time.Time      `db:"completed_at"`
	Missed  pq.StringArray `db:"missed"`
}

func (r *AttemptsR) Attempts(ctx context.Context, userID int64) ([]models.AttemptRecord, error) {
	query := `
		SELECT correct, elapsed_sec, completed_at, missed
		FROM user_attempts
		WHERE user_id = $1
		ORDER BY completed_at
	`

	var rows []attemptRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to load attempts for user %d: %w", userID, err)
	}

	attempts := make([]models.AttemptRecord, 0, len(rows))
	for _, row := range rows {
		attempts = append(attempts, models.AttemptRecord{
			Correct: row.Correct,
			Elapsed: row.Elapsed,
			Date:    row.Date,
			Missed:  []string(row.Missed),
		})
	}

	return attempts, nil
}
