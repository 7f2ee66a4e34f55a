package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"telegram-registration-bot/internal/domain/model"
	"telegram-registration-bot/internal/domain/ports/repository"
	"telegram-registration-bot/internal/infra/metrics"
)

var _ repository.StepStateRepository = (*stepStateRepo)(nil)

// stepStateRepo persists the per-user registration step in users_states.
// One row per user; absence means StepNone.
type stepStateRepo struct {
	pool *pgxpool.Pool
}

func NewStepStateRepo(pool *pgxpool.Pool) repository.StepStateRepository {
	return &stepStateRepo{pool: pool}
}

func (r *stepStateRepo) Get(ctx context.Context, tx repository.Tx, userID int64) (model.Step, error) {
	defer metrics.ObserveDBOp("step_state_get", time.Now())

	row, err := pickRow(ctx, r.pool, tx, `SELECT current_step FROM users_states WHERE user_id = $1;`, userID)
	if err != nil {
		return model.StepNone, err
	}
	var step int
	if err := row.Scan(&step); err != nil {
		if err == pgx.ErrNoRows {
			return model.StepNone, nil
		}
		return model.StepNone, err
	}
	return model.Step(step), nil
}

func (r *stepStateRepo) Set(ctx context.Context, tx repository.Tx, userID int64, step model.Step) error {
	defer metrics.ObserveDBOp("step_state_set", time.Now())

	const q = `
INSERT INTO users_states (user_id, current_step)
VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE SET current_step = EXCLUDED.current_step;
`
	_, err := execSQL(ctx, r.pool, tx, q, userID, int(step))
	return err
}

func (r *stepStateRepo) Reset(ctx context.Context, tx repository.Tx, userID int64) error {
	defer metrics.ObserveDBOp("step_state_reset", time.Now())

	// Deleting rather than zeroing keeps the table bounded by active attempts.
	_, err := execSQL(ctx, r.pool, tx, `DELETE FROM users_states WHERE user_id = $1;`, userID)
	return err
}
