package repository

import (
	"context"

	"telegram-registration-bot/internal/domain/model"
)

// ProfileRepository owns the permanent profile rows and their interest
// associations.
type ProfileRepository interface {
	// Create inserts the profile as one atomic unit. A duplicate contact
	// surfaces as domain.ErrAlreadyExists.
	Create(ctx context.Context, tx Tx, p *model.Profile) error
	// FindByContact returns domain.ErrNotFound when no profile matches.
	FindByContact(ctx context.Context, tx Tx, contact string) (*model.Profile, error)
	// AddInterest links one interest to the profile. Re-linking the same pair
	// is an idempotent no-op reported as created=false. A nonexistent interest
	// id surfaces as domain.ErrNotFound.
	AddInterest(ctx context.Context, tx Tx, profileID string, interestID int64) (created bool, err error)
	// InterestIDs lists the interest ids currently linked to the profile.
	InterestIDs(ctx context.Context, tx Tx, profileID string) ([]int64, error)
}
