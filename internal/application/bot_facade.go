// File: internal/application/bot_facade.go
package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"telegram-registration-bot/internal/domain"
	"telegram-registration-bot/internal/domain/ports/adapter"
	"telegram-registration-bot/internal/infra/logging"
	"telegram-registration-bot/internal/infra/redis"
	"telegram-registration-bot/internal/usecase"
)

// turnTTL bounds how long a crashed handler can keep a user's turn locked.
const turnTTL = 30 * time.Second

// BotFacade sits between the Telegram adapter and the registration engine.
// It owns the cross-process turn lock and converts engine errors into the
// replies the adapter should send; the adapter itself never sees an error.
type BotFacade struct {
	regUC  usecase.RegistrationUseCase
	locker redis.TurnLocker
	log    *zerolog.Logger
}

func NewBotFacade(regUC usecase.RegistrationUseCase, locker redis.TurnLocker, logger *zerolog.Logger) *BotFacade {
	return &BotFacade{regUC: regUC, locker: locker, log: logger}
}

// HandleUpdate processes one inbound event under the user's turn lock and
// returns the prompts to send. A turn already held by another process drops
// the event silently; the duplicate delivery carries no new information.
func (b *BotFacade) HandleUpdate(ctx context.Context, ev adapter.InboundEvent) []adapter.Prompt {
	ctx = logging.WithTraceID(ctx, uuid.NewString())
	ctx = logging.WithTgID(ctx, ev.UserID)
	log := logging.With(ctx, b.log)

	token, err := b.locker.TryLock(ctx, ev.UserID, turnTTL)
	if err != nil {
		if errors.Is(err, domain.ErrTurnInProgress) {
			log.Debug().Msg("turn already in progress, dropping update")
			return nil
		}
		log.Error().Err(err).Msg("turn lock failed")
		return nil
	}
	defer func() {
		if uerr := b.locker.Unlock(ctx, ev.UserID, token); uerr != nil {
			log.Warn().Err(uerr).Msg("turn unlock failed")
		}
	}()

	prompts, err := b.regUC.HandleEvent(ctx, ev)
	if err != nil {
		// The engine already attached a user-facing apology to the error
		// path; the detail stays in the log.
		log.Error().Err(err).Str("kind", string(ev.Kind)).Msg("handle event failed")
	}
	return prompts
}
