package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog"

	"telegram-registration-bot/internal/config"
	"telegram-registration-bot/internal/domain"
	"telegram-registration-bot/internal/domain/model"
	"telegram-registration-bot/internal/domain/ports/adapter"
	"telegram-registration-bot/internal/domain/ports/repository"
	"telegram-registration-bot/internal/infra/i18n"
	"telegram-registration-bot/internal/infra/logging"
	"telegram-registration-bot/internal/infra/metrics"
)

// Compile-time check
var _ RegistrationUseCase = (*registrationUC)(nil)

// RegistrationUseCase drives the whole registration conversation: it resolves
// the user's persisted step, runs the matching handler and persists the
// outcome. The returned prompts are what the transport should send; a non-nil
// error is for the caller's log, never for the user.
type RegistrationUseCase interface {
	HandleEvent(ctx context.Context, ev adapter.InboundEvent) ([]adapter.Prompt, error)
}

type registrationUC struct {
	steps    repository.StepStateRepository
	drafts   repository.DraftRepository
	profiles repository.ProfileRepository
	catalog  repository.CatalogRepository
	tm       repository.TransactionManager
	tr       *i18n.Translator
	cfg      config.RegistrationConfig
	log      *zerolog.Logger

	adminPhones map[string]struct{}
}

func NewRegistrationUseCase(
	steps repository.StepStateRepository,
	drafts repository.DraftRepository,
	profiles repository.ProfileRepository,
	catalog repository.CatalogRepository,
	tm repository.TransactionManager,
	tr *i18n.Translator,
	cfg config.RegistrationConfig,
	adminPhones []string,
	logger *zerolog.Logger,
) RegistrationUseCase {
	admins := make(map[string]struct{}, len(adminPhones))
	for _, p := range adminPhones {
		admins[normalizePhone(p)] = struct{}{}
	}
	return &registrationUC{
		steps:       steps,
		drafts:      drafts,
		profiles:    profiles,
		catalog:     catalog,
		tm:          tm,
		tr:          tr,
		cfg:         cfg,
		log:         logger,
		adminPhones: admins,
	}
}

func (u *registrationUC) HandleEvent(ctx context.Context, ev adapter.InboundEvent) ([]adapter.Prompt, error) {
	defer logging.TraceDuration(u.log, "RegistrationUC.HandleEvent")()
	ctx = logging.WithTgID(ctx, ev.UserID)

	step, err := u.steps.Get(ctx, repository.NoTX, ev.UserID)
	if err != nil {
		return u.apology(), err
	}

	if step == model.StepNone {
		return u.handleEntry(ctx, ev)
	}
	ctx = logging.WithStep(ctx, step.String())

	// The cancel check runs before any step parsing so the user can abandon
	// the flow from any step without tripping that step's validation.
	if u.isCancel(ev) {
		return u.cancel(ctx, ev.UserID, step)
	}

	// /start mid-flow re-issues the current question; that is also what makes
	// the conversation resumable after a process restart.
	if ev.Kind == adapter.EventCommand && ev.Command == "start" {
		p, err := u.promptFor(ctx, step)
		if err != nil {
			return u.apology(), err
		}
		return []adapter.Prompt{p}, nil
	}

	draft, err := u.drafts.Get(ctx, repository.NoTX, ev.UserID)
	if err != nil {
		return u.apology(), err
	}

	res, err := u.dispatch(ctx, step, draft, ev)
	if err != nil {
		return u.apology(), err
	}
	metrics.IncStepOutcome(step.String(), res.Accepted)

	if !res.Accepted {
		return res.Prompts, nil
	}
	if res.Commit {
		return u.commit(ctx, ev.UserID, draft)
	}

	// Persist the merged draft before advancing the step so a crash between
	// the two writes re-asks a question instead of losing an answer.
	if err := u.drafts.Save(ctx, repository.NoTX, ev.UserID, draft); err != nil {
		return u.apology(), err
	}
	if err := u.steps.Set(ctx, repository.NoTX, ev.UserID, res.Next); err != nil {
		return u.apology(), err
	}
	return res.Prompts, nil
}

func (u *registrationUC) dispatch(ctx context.Context, step model.Step, draft *model.Draft, ev adapter.InboundEvent) (stepResult, error) {
	switch step {
	case model.StepName:
		return u.handleName(ctx, draft, ev)
	case model.StepSurname:
		return u.handleSurname(ctx, draft, ev)
	case model.StepGender:
		return u.handleGender(ctx, draft, ev)
	case model.StepAge:
		return u.handleAge(ctx, draft, ev)
	case model.StepRegion:
		return u.handleRegion(ctx, draft, ev)
	case model.StepInterests:
		return u.handleInterests(ctx, draft, ev)
	case model.StepPhoto:
		return u.handlePhoto(ctx, draft, ev)
	case model.StepLocation:
		return u.handleLocation(ctx, draft, ev)
	default:
		logging.With(ctx, u.log).Error().Int("step_value", int(step)).Msg("unknown persisted step, resetting")
		_ = u.steps.Reset(ctx, repository.NoTX, ev.UserID)
		return stepResult{Prompts: []adapter.Prompt{{Text: u.tr.T("use_start")}}}, nil
	}
}

// handleEntry covers everything that happens before the first step is
// persisted: the intro, the launch button and the phone capture.
func (u *registrationUC) handleEntry(ctx context.Context, ev adapter.InboundEvent) ([]adapter.Prompt, error) {
	switch {
	case ev.Kind == adapter.EventCommand && ev.Command == "start":
		return []adapter.Prompt{{
			Text:    u.tr.T("intro"),
			Choices: []string{u.cfg.LaunchKeyword},
		}}, nil

	case ev.Kind == adapter.EventText && strings.EqualFold(strings.TrimSpace(ev.Text), u.cfg.LaunchKeyword):
		return []adapter.Prompt{{
			Text:           u.tr.T("ask_phone"),
			Choices:        []string{u.tr.T("btn_phone")},
			RequestContact: true,
		}}, nil

	case ev.Kind == adapter.EventContact:
		return u.beginRegistration(ctx, ev)

	default:
		return []adapter.Prompt{{Text: u.tr.T("use_start")}}, nil
	}
}

// beginRegistration stages the draft the moment the phone arrives and moves
// the user onto the first question.
func (u *registrationUC) beginRegistration(ctx context.Context, ev adapter.InboundEvent) ([]adapter.Prompt, error) {
	phone := strings.TrimSpace(ev.Phone)
	if phone == "" {
		return []adapter.Prompt{{Text: u.tr.T("use_start")}}, nil
	}

	existing, err := u.profiles.FindByContact(ctx, repository.NoTX, phone)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return u.apology(), err
	}
	if existing != nil {
		return []adapter.Prompt{{Text: u.tr.T("welcome_back"), RemoveKeyboard: true}}, nil
	}

	draft := model.NewDraft(phone, u.isAdminPhone(phone))
	if err := u.drafts.Save(ctx, repository.NoTX, ev.UserID, draft); err != nil {
		return u.apology(), err
	}
	if err := u.steps.Set(ctx, repository.NoTX, ev.UserID, model.StepName); err != nil {
		return u.apology(), err
	}
	logging.With(ctx, u.log).Info().
		Str("phone", logging.Redact(phone, false)).
		Bool("is_admin", draft.IsAdmin).
		Msg("registration started")

	p, err := u.promptFor(ctx, model.StepName)
	if err != nil {
		return u.apology(), err
	}
	return []adapter.Prompt{p}, nil
}

func (u *registrationUC) cancel(ctx context.Context, userID int64, step model.Step) ([]adapter.Prompt, error) {
	if err := u.drafts.Clear(ctx, repository.NoTX, userID); err != nil {
		return u.apology(), err
	}
	if err := u.steps.Reset(ctx, repository.NoTX, userID); err != nil {
		return u.apology(), err
	}
	metrics.IncCancellation(step.String())
	logging.With(ctx, u.log).Info().Msg("registration cancelled")
	return []adapter.Prompt{{Text: u.tr.T("cancelled"), RemoveKeyboard: true}}, nil
}

// commit turns the finished draft into the permanent profile. The profile
// insert is one atomic unit; each interest association is its own unit and a
// failed one is counted, not escalated.
func (u *registrationUC) commit(ctx context.Context, userID int64, draft *model.Draft) ([]adapter.Prompt, error) {
	log := logging.With(ctx, u.log)

	profile, err := model.NewProfileFromDraft(draft)
	if err != nil {
		// The engine guarantees phone/name/surname before this step, so an
		// incomplete draft here is a bug in the engine, not bad user input.
		metrics.IncCommit("error")
		log.Error().Err(err).Msg("commit invoked with incomplete draft")
		return u.apology(), err
	}

	// Find-by-contact and insert run in one serializable transaction so two
	// racing commits cannot both create a profile for the same contact.
	txOpts := pgx.TxOptions{IsoLevel: pgx.Serializable}
	err = u.tm.WithTx(ctx, txOpts, func(ctx context.Context, tx repository.Tx) error {
		_, ferr := u.profiles.FindByContact(ctx, tx, profile.Contact)
		if ferr == nil {
			return domain.ErrAlreadyExists
		}
		if !errors.Is(ferr, domain.ErrNotFound) {
			return ferr
		}
		return u.profiles.Create(ctx, tx, profile)
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		metrics.IncCommit("duplicate")
		log.Warn().Msg("profile already exists at commit time")
		_ = u.drafts.Clear(ctx, repository.NoTX, userID)
		_ = u.steps.Reset(ctx, repository.NoTX, userID)
		return []adapter.Prompt{{Text: u.tr.T("already_registered"), RemoveKeyboard: true}}, nil
	}
	if err != nil {
		// Draft and step stay untouched so retrying the same message is safe.
		metrics.IncCommit("error")
		return u.apology(), err
	}

	linked := 0
	for _, interestID := range draft.Interests {
		if _, aerr := u.profiles.AddInterest(ctx, repository.NoTX, profile.ID, interestID); aerr != nil {
			metrics.IncInterestLinkFailure()
			log.Warn().Err(aerr).
				Str("profile_id", profile.ID).
				Int64("interest_id", interestID).
				Msg("failed to link interest")
			continue
		}
		linked++
	}
	if ids, ierr := u.profiles.InterestIDs(ctx, repository.NoTX, profile.ID); ierr == nil {
		log.Debug().Str("profile_id", profile.ID).Ints64("interest_ids", ids).Msg("interests persisted")
	}

	// Only now, with both phases resolved, is the staged state released.
	if err := u.drafts.Clear(ctx, repository.NoTX, userID); err != nil {
		log.Error().Err(err).Msg("failed to clear draft after commit")
	}
	if err := u.steps.Reset(ctx, repository.NoTX, userID); err != nil {
		log.Error().Err(err).Msg("failed to reset step after commit")
	}

	metrics.IncCommit("ok")
	log.Info().
		Str("profile_id", profile.ID).
		Int("interests_linked", linked).
		Msg("registration committed")
	return []adapter.Prompt{{Text: u.tr.T("registration_done", linked), RemoveKeyboard: true}}, nil
}

func (u *registrationUC) isCancel(ev adapter.InboundEvent) bool {
	if ev.Kind == adapter.EventCommand && "/"+ev.Command == u.cfg.CancelCommand {
		return true
	}
	if ev.Kind != adapter.EventText {
		return false
	}
	text := strings.ToLower(ev.Text)
	if strings.Contains(text, strings.ToLower(u.cfg.CancelKeyword)) {
		return true
	}
	return strings.TrimSpace(text) == u.cfg.CancelCommand
}

func (u *registrationUC) isSkip(ev adapter.InboundEvent) bool {
	return ev.Kind == adapter.EventText &&
		strings.EqualFold(strings.TrimSpace(ev.Text), u.cfg.SkipKeyword)
}

func (u *registrationUC) isAdminPhone(phone string) bool {
	_, ok := u.adminPhones[normalizePhone(phone)]
	return ok
}

func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (u *registrationUC) apology() []adapter.Prompt {
	return []adapter.Prompt{{Text: u.tr.T("error_generic")}}
}
