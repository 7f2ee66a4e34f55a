package repository

import (
	"context"

	"telegram-registration-bot/internal/domain/model"
)

// DraftRepository stages the in-progress registration record per user.
//
// Get returns an empty draft when none is stored. Save replaces the stored
// draft atomically in one upsert; the store does no field-level merge, so the
// caller merges into the previously read draft before saving. Clear is a
// no-op when nothing is stored. The serialized form must round-trip any
// Unicode text losslessly.
type DraftRepository interface {
	Get(ctx context.Context, tx Tx, userID int64) (*model.Draft, error)
	Save(ctx context.Context, tx Tx, userID int64, draft *model.Draft) error
	Clear(ctx context.Context, tx Tx, userID int64) error
}
