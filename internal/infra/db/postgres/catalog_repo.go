package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"telegram-registration-bot/internal/domain"
	"telegram-registration-bot/internal/domain/model"
	"telegram-registration-bot/internal/domain/ports/repository"
	"telegram-registration-bot/internal/infra/metrics"
)

var _ repository.CatalogRepository = (*catalogRepo)(nil)

// catalogRepo serves the static region and interest catalogs. The legacy
// column names (region, interest) are aliased to name at the query level.
type catalogRepo struct {
	pool *pgxpool.Pool
}

func NewCatalogRepo(pool *pgxpool.Pool) repository.CatalogRepository {
	return &catalogRepo{pool: pool}
}

func (r *catalogRepo) ListRegions(ctx context.Context) ([]model.Region, error) {
	defer metrics.ObserveDBOp("catalog_list_regions", time.Now())

	rows, err := queryRows(ctx, r.pool, repository.NoTX,
		`SELECT id, region AS name FROM regions ORDER BY region;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRegions(rows)
}

func (r *catalogRepo) FindRegionByName(ctx context.Context, name string) (*model.Region, error) {
	defer metrics.ObserveDBOp("catalog_find_region", time.Now())

	row, err := pickRow(ctx, r.pool, repository.NoTX,
		`SELECT id, region AS name FROM regions WHERE region = $1;`, name)
	if err != nil {
		return nil, err
	}
	var reg model.Region
	if err := row.Scan(&reg.ID, &reg.Name); err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (r *catalogRepo) ListInterests(ctx context.Context) ([]model.Interest, error) {
	defer metrics.ObserveDBOp("catalog_list_interests", time.Now())

	rows, err := queryRows(ctx, r.pool, repository.NoTX,
		`SELECT id, interest AS name FROM interests ORDER BY interest;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInterests(rows)
}

// FindInterestByName expects its argument pre-normalized; the stored names
// are folded the same way in the query so both sides agree.
func (r *catalogRepo) FindInterestByName(ctx context.Context, normalized string) (*model.Interest, error) {
	defer metrics.ObserveDBOp("catalog_find_interest", time.Now())

	const q = `
SELECT id, interest AS name FROM interests
 WHERE REPLACE(LOWER(interest), 'ё', 'е') = $1;
`
	row, err := pickRow(ctx, r.pool, repository.NoTX, q, normalized)
	if err != nil {
		return nil, err
	}
	var in model.Interest
	if err := row.Scan(&in.ID, &in.Name); err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &in, nil
}

func (r *catalogRepo) SuggestInterests(ctx context.Context, term string, limit int) ([]model.Interest, error) {
	defer metrics.ObserveDBOp("catalog_suggest_interests", time.Now())

	const q = `
SELECT id, interest AS name FROM interests
 WHERE interest ILIKE '%' || $1 || '%'
 ORDER BY interest
 LIMIT $2;
`
	rows, err := queryRows(ctx, r.pool, repository.NoTX, q, term, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInterests(rows)
}

func scanRegions(rows pgx.Rows) ([]model.Region, error) {
	var out []model.Region
	for rows.Next() {
		var reg model.Region
		if err := rows.Scan(&reg.ID, &reg.Name); err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

func scanInterests(rows pgx.Rows) ([]model.Interest, error) {
	var out []model.Interest
	for rows.Next() {
		var in model.Interest
		if err := rows.Scan(&in.ID, &in.Name); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}
