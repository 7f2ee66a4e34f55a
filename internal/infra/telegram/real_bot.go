package telegram

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"telegram-registration-bot/internal/application"
	"telegram-registration-bot/internal/config"
	"telegram-registration-bot/internal/domain/ports/adapter"
	"telegram-registration-bot/internal/infra/metrics"
	"telegram-registration-bot/internal/infra/worker"
)

var _ adapter.TelegramBotAdapter = (*RealTelegramBotAdapter)(nil)

// RealTelegramBotAdapter implements adapter.TelegramBotAdapter over tgbotapi
// long polling. Inbound updates are routed through a keyed worker pool so one
// user's messages are handled strictly in arrival order while different users
// proceed concurrently.
type RealTelegramBotAdapter struct {
	bot    *tgbotapi.BotAPI
	cfg    *config.BotConfig
	facade *application.BotFacade
	pool   *worker.KeyedPool
	log    *zerolog.Logger

	cancelPolling context.CancelFunc
}

func NewRealTelegramBotAdapter(cfg *config.BotConfig, facade *application.BotFacade, pool *worker.KeyedPool, logger *zerolog.Logger) (*RealTelegramBotAdapter, error) {
	if cfg == nil {
		return nil, errors.New("bot config is nil")
	}
	if facade == nil {
		return nil, errors.New("bot facade is nil")
	}
	if pool == nil {
		return nil, errors.New("worker pool is nil")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}

	return &RealTelegramBotAdapter{
		bot:    bot,
		cfg:    cfg,
		facade: facade,
		pool:   pool,
		log:    logger,
	}, nil
}

// StartPolling polls Telegram for updates until ctx is canceled. Each update
// is converted to an InboundEvent and submitted to the pool keyed by user id.
func (r *RealTelegramBotAdapter) StartPolling(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := r.bot.GetUpdatesChan(u)

	ctx, cancel := context.WithCancel(ctx)
	r.cancelPolling = cancel

	for {
		select {
		case <-ctx.Done():
			r.bot.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			ev, chatID, ok := convertUpdate(update)
			if !ok {
				continue
			}
			metrics.IncTelegramUpdate(string(ev.Kind))
			if err := r.pool.Submit(ev.UserID, func(taskCtx context.Context) error {
				return r.processEvent(taskCtx, chatID, ev)
			}); err != nil {
				r.log.Warn().Err(err).Int64("tg_id", ev.UserID).Msg("update dropped")
			}
		}
	}
}

// StopPolling stops the polling loop gracefully.
func (r *RealTelegramBotAdapter) StopPolling() {
	if r.cancelPolling != nil {
		r.cancelPolling()
	}
}

func (r *RealTelegramBotAdapter) processEvent(ctx context.Context, chatID int64, ev adapter.InboundEvent) error {
	for _, p := range r.facade.HandleUpdate(ctx, ev) {
		if err := r.SendPrompt(ctx, chatID, p); err != nil {
			return err
		}
	}
	return nil
}

// SendPrompt renders one prompt into a Telegram message, translating the
// choice set into a one-column reply keyboard.
func (r *RealTelegramBotAdapter) SendPrompt(_ context.Context, chatID int64, p adapter.Prompt) error {
	msg := tgbotapi.NewMessage(chatID, p.Text)
	switch {
	case p.RemoveKeyboard && len(p.Choices) == 0 && !p.RequestContact && !p.RequestLocation:
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	case len(p.Choices) > 0 || p.RequestContact || p.RequestLocation:
		msg.ReplyMarkup = buildKeyboard(p)
	}
	_, err := r.bot.Send(msg)
	return err
}

// buildKeyboard lays each choice out on its own row. Contact and location
// requests become the corresponding share button on the first row.
func buildKeyboard(p adapter.Prompt) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(p.Choices)+1)
	for i, choice := range p.Choices {
		btn := tgbotapi.NewKeyboardButton(choice)
		if i == 0 && p.RequestContact {
			btn = tgbotapi.NewKeyboardButtonContact(choice)
		}
		if i == 0 && p.RequestLocation {
			btn = tgbotapi.NewKeyboardButtonLocation(choice)
		}
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(btn))
	}
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = false
	return kb
}

// convertUpdate maps a raw Telegram update onto the transport-agnostic event
// shape. Updates without a message or sender are skipped.
func convertUpdate(update tgbotapi.Update) (adapter.InboundEvent, int64, bool) {
	m := update.Message
	if m == nil || m.From == nil {
		return adapter.InboundEvent{}, 0, false
	}

	ev := adapter.InboundEvent{
		UserID: m.From.ID,
		ChatID: m.Chat.ID,
	}

	switch {
	case m.Contact != nil:
		ev.Kind = adapter.EventContact
		ev.Phone = m.Contact.PhoneNumber
	case m.Location != nil:
		ev.Kind = adapter.EventGeo
		ev.Latitude = m.Location.Latitude
		ev.Longitude = m.Location.Longitude
	case len(m.Photo) > 0:
		// The last size is the largest; its file id is what the profile keeps.
		ev.Kind = adapter.EventPhoto
		ev.Photo = m.Photo[len(m.Photo)-1].FileID
	case m.IsCommand():
		ev.Kind = adapter.EventCommand
		ev.Command = m.Command()
	case strings.TrimSpace(m.Text) != "":
		ev.Kind = adapter.EventText
		ev.Text = m.Text
	default:
		return adapter.InboundEvent{}, 0, false
	}

	return ev, m.Chat.ID, true
}
