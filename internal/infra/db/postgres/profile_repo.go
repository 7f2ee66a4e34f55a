package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"telegram-registration-bot/internal/domain"
	"telegram-registration-bot/internal/domain/model"
	"telegram-registration-bot/internal/domain/ports/repository"
	"telegram-registration-bot/internal/infra/metrics"
)

// Postgres error classes the committer distinguishes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var _ repository.ProfileRepository = (*profileRepo)(nil)

type profileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) repository.ProfileRepository {
	return &profileRepo{pool: pool}
}

// Create inserts the permanent profile row. contact carries a unique index,
// so a concurrent duplicate registration surfaces as domain.ErrAlreadyExists
// instead of a second row.
func (r *profileRepo) Create(ctx context.Context, tx repository.Tx, p *model.Profile) error {
	defer metrics.ObserveDBOp("profile_create", time.Now())

	const q = `
INSERT INTO users (
  id, contact, username, usersurname, gender, age, region_id,
  registration_step, photo, geolocation, is_admin
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11);
`
	_, err := execSQL(ctx, r.pool, tx, q,
		p.ID, p.Contact, p.Name, p.Surname, p.Gender, p.Age, p.RegionID,
		int(p.Step), p.Photo, p.Geolocation, p.IsAdmin,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *profileRepo) FindByContact(ctx context.Context, tx repository.Tx, contact string) (*model.Profile, error) {
	defer metrics.ObserveDBOp("profile_find_by_contact", time.Now())

	const q = `
SELECT id, contact, username, usersurname, gender, age, region_id,
       registration_step, photo, geolocation, is_admin
  FROM users WHERE contact = $1;
`
	row, err := pickRow(ctx, r.pool, tx, q, contact)
	if err != nil {
		return nil, err
	}
	var p model.Profile
	var step int
	if err := row.Scan(&p.ID, &p.Contact, &p.Name, &p.Surname, &p.Gender, &p.Age,
		&p.RegionID, &step, &p.Photo, &p.Geolocation, &p.IsAdmin); err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.Step = model.Step(step)
	return &p, nil
}

// AddInterest links one interest to the profile as its own atomic unit.
// Duplicates are idempotent no-ops (created=false); an interest id that does
// not exist in the catalog comes back as domain.ErrNotFound.
func (r *profileRepo) AddInterest(ctx context.Context, tx repository.Tx, profileID string, interestID int64) (bool, error) {
	defer metrics.ObserveDBOp("profile_add_interest", time.Now())

	const q = `
INSERT INTO user_interests (user_id, interest_id)
VALUES ($1, $2)
ON CONFLICT (user_id, interest_id) DO NOTHING;
`
	tag, err := execSQL(ctx, r.pool, tx, q, profileID, interestID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return false, domain.ErrNotFound
		}
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *profileRepo) InterestIDs(ctx context.Context, tx repository.Tx, profileID string) ([]int64, error) {
	defer metrics.ObserveDBOp("profile_interest_ids", time.Now())

	rows, err := queryRows(ctx, r.pool, tx,
		`SELECT interest_id FROM user_interests WHERE user_id = $1 ORDER BY interest_id;`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
