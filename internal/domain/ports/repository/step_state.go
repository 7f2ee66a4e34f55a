package repository

import (
	"context"

	"telegram-registration-bot/internal/domain/model"
)

// StepStateRepository is the engine's program counter: one row per user,
// holding the current step of an in-progress registration.
//
// Get never fails on absence — a user who never interacted is at StepNone.
// Set is an idempotent last-write-wins upsert. Reset removes the row and is
// safe to call when it does not exist.
type StepStateRepository interface {
	Get(ctx context.Context, tx Tx, userID int64) (model.Step, error)
	Set(ctx context.Context, tx Tx, userID int64, step model.Step) error
	Reset(ctx context.Context, tx Tx, userID int64) error
}
