package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"telegram-registration-bot/internal/domain/model"
	"telegram-registration-bot/internal/domain/ports/repository"
	"telegram-registration-bot/internal/infra/metrics"
)

var _ repository.DraftRepository = (*draftRepo)(nil)

// draftRepo stages in-progress registration drafts in temp_user_data as a
// JSON text column. encoding/json keeps every Unicode script intact, so the
// round-trip is lossless for any name or region the user types.
type draftRepo struct {
	pool *pgxpool.Pool
}

func NewDraftRepo(pool *pgxpool.Pool) repository.DraftRepository {
	return &draftRepo{pool: pool}
}

func (r *draftRepo) Get(ctx context.Context, tx repository.Tx, userID int64) (*model.Draft, error) {
	defer metrics.ObserveDBOp("draft_get", time.Now())

	row, err := pickRow(ctx, r.pool, tx, `SELECT json_data FROM temp_user_data WHERE user_id = $1;`, userID)
	if err != nil {
		return nil, err
	}
	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == pgx.ErrNoRows {
			return &model.Draft{}, nil
		}
		return nil, err
	}
	var d model.Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("decode draft for user %d: %w", userID, err)
	}
	return &d, nil
}

func (r *draftRepo) Save(ctx context.Context, tx repository.Tx, userID int64, draft *model.Draft) error {
	defer metrics.ObserveDBOp("draft_save", time.Now())

	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft for user %d: %w", userID, err)
	}
	const q = `
INSERT INTO temp_user_data (user_id, json_data)
VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE SET json_data = EXCLUDED.json_data;
`
	_, err = execSQL(ctx, r.pool, tx, q, userID, string(raw))
	return err
}

func (r *draftRepo) Clear(ctx context.Context, tx repository.Tx, userID int64) error {
	defer metrics.ObserveDBOp("draft_clear", time.Now())

	_, err := execSQL(ctx, r.pool, tx, `DELETE FROM temp_user_data WHERE user_id = $1;`, userID)
	return err
}
