package repository

import (
	"context"

	"telegram-registration-bot/internal/domain/model"
)

// CatalogRepository resolves region and interest names to stable ids and
// supplies the full catalogs for prompting. Consumed read-only by the engine;
// name arguments to FindInterestByName must already be normalized via
// model.NormalizeInterestName.
type CatalogRepository interface {
	ListRegions(ctx context.Context) ([]model.Region, error)
	// FindRegionByName matches exactly and case-sensitively.
	FindRegionByName(ctx context.Context, name string) (*model.Region, error)
	ListInterests(ctx context.Context) ([]model.Interest, error)
	FindInterestByName(ctx context.Context, normalized string) (*model.Interest, error)
	// SuggestInterests returns up to limit catalog entries whose name
	// contains term, case-insensitively.
	SuggestInterests(ctx context.Context, term string, limit int) ([]model.Interest, error)
}
