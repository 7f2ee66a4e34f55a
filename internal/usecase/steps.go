package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"telegram-registration-bot/internal/domain"
	"telegram-registration-bot/internal/domain/model"
	"telegram-registration-bot/internal/domain/ports/adapter"
)

// stepResult is what every step handler returns. Accepted=false means the
// draft and persisted step are untouched and Prompts carry the re-ask.
// Commit=true means the flow is finished and the caller runs the committer
// instead of persisting a next step.
type stepResult struct {
	Accepted bool
	Next     model.Step
	Commit   bool
	Prompts  []adapter.Prompt
}

func (u *registrationUC) reject(prompts ...adapter.Prompt) stepResult {
	return stepResult{Accepted: false, Prompts: prompts}
}

func (u *registrationUC) advance(ctx context.Context, next model.Step, extra ...adapter.Prompt) (stepResult, error) {
	p, err := u.promptFor(ctx, next)
	if err != nil {
		return stepResult{}, err
	}
	return stepResult{Accepted: true, Next: next, Prompts: append(extra, p)}, nil
}

func (u *registrationUC) handleName(ctx context.Context, draft *model.Draft, ev adapter.InboundEvent) (stepResult, error) {
	name := strings.TrimSpace(ev.Text)
	if ev.Kind != adapter.EventText || name == "" {
		p, err := u.promptFor(ctx, model.StepName)
		if err != nil {
			return stepResult{}, err
		}
		return u.reject(p), nil
	}
	draft.Name = name
	return stepResult{
		Accepted: true,
		Next:     model.StepSurname,
		Prompts:  []adapter.Prompt{{Text: u.tr.T("name_accepted", name)}},
	}, nil
}

func (u *registrationUC) handleSurname(ctx context.Context, draft *model.Draft, ev adapter.InboundEvent) (stepResult, error) {
	surname := strings.TrimSpace(ev.Text)
	if ev.Kind != adapter.EventText || surname == "" {
		p, err := u.promptFor(ctx, model.StepSurname)
		if err != nil {
			return stepResult{}, err
		}
		return u.reject(p), nil
	}
	draft.Surname = surname
	return u.advance(ctx, model.StepGender)
}

func (u *registrationUC) handleGender(ctx context.Context, draft *model.Draft, ev adapter.InboundEvent) (stepResult, error) {
	if u.isSkip(ev) {
		draft.Gender = nil
		return u.advance(ctx, model.StepAge)
	}
	gender, ok := model.ParseGender(ev.Text)
	if ev.Kind != adapter.EventText || !ok {
		return u.reject(adapter.Prompt{
			Text:    u.tr.T("gender_invalid"),
			Choices: u.genderChoices(),
		}), nil
	}
	draft.Gender = &gender
	return u.advance(ctx, model.StepAge)
}

func (u *registrationUC) handleAge(ctx context.Context, draft *model.Draft, ev adapter.InboundEvent) (stepResult, error) {
	if u.isSkip(ev) {
		draft.Age = nil
		return u.advance(ctx, model.StepRegion)
	}
	age, err := strconv.Atoi(strings.TrimSpace(ev.Text))
	if ev.Kind != adapter.EventText || err != nil || age < u.cfg.MinAge || age > u.cfg.MaxAge {
		return u.reject(adapter.Prompt{
			Text:    u.tr.T("age_invalid", u.cfg.MinAge, u.cfg.MaxAge),
			Choices: []string{u.tr.T("btn_skip")},
		}), nil
	}
	draft.Age = &age
	return u.advance(ctx, model.StepRegion)
}

func (u *registrationUC) handleRegion(ctx context.Context, draft *model.Draft, ev adapter.InboundEvent) (stepResult, error) {
	if ev.Kind != adapter.EventText || strings.TrimSpace(ev.Text) == "" {
		p, err := u.promptFor(ctx, model.StepRegion)
		if err != nil {
			return stepResult{}, err
		}
		return u.reject(p), nil
	}
	// Region names come from buttons, so the match is exact and
	// case-sensitive. Free-typed near-misses get the full list again.
	region, err := u.catalog.FindRegionByName(ctx, strings.TrimSpace(ev.Text))
	if err != nil {
		if domainNotFound(err) {
			choices, cerr := u.regionChoices(ctx)
			if cerr != nil {
				return stepResult{}, cerr
			}
			return u.reject(adapter.Prompt{
				Text:    u.tr.T("region_not_found"),
				Choices: choices,
			}), nil
		}
		return stepResult{}, err
	}
	draft.RegionID = &region.ID
	return u.advance(ctx, model.StepInterests)
}

func (u *registrationUC) handleInterests(ctx context.Context, draft *model.Draft, ev adapter.InboundEvent) (stepResult, error) {
	if u.isSkip(ev) {
		return u.advance(ctx, model.StepPhoto)
	}
	if ev.Kind != adapter.EventText || strings.TrimSpace(ev.Text) == "" {
		choices, err := u.interestChoices(ctx)
		if err != nil {
			return stepResult{}, err
		}
		return u.reject(adapter.Prompt{
			Text:    u.tr.T("interest_use_buttons"),
			Choices: choices,
		}), nil
	}

	normalized := model.NormalizeInterestName(ev.Text)
	interest, err := u.catalog.FindInterestByName(ctx, normalized)
	if err != nil {
		if domainNotFound(err) {
			return u.suggestInterests(ctx, normalized)
		}
		return stepResult{}, err
	}

	choices, cerr := u.interestChoices(ctx)
	if cerr != nil {
		return stepResult{}, cerr
	}
	if !draft.AddInterest(interest.ID) {
		return u.reject(adapter.Prompt{
			Text:    u.tr.T("interest_duplicate", interest.Name),
			Choices: choices,
		}), nil
	}
	// The step loops back onto itself until the user skips ahead. The draft
	// changed, so this still counts as an accepted answer.
	return stepResult{
		Accepted: true,
		Next:     model.StepInterests,
		Prompts: []adapter.Prompt{{
			Text:    u.tr.T("interest_added", interest.Name, len(draft.Interests)),
			Choices: choices,
		}},
	}, nil
}

func (u *registrationUC) suggestInterests(ctx context.Context, normalized string) (stepResult, error) {
	suggestions, err := u.catalog.SuggestInterests(ctx, normalized, u.cfg.SuggestionLimit)
	if err != nil {
		return stepResult{}, err
	}
	if len(suggestions) == 0 {
		choices, cerr := u.interestChoices(ctx)
		if cerr != nil {
			return stepResult{}, cerr
		}
		return u.reject(adapter.Prompt{
			Text:    u.tr.T("interest_use_buttons"),
			Choices: choices,
		}), nil
	}
	names := make([]string, 0, 3)
	for _, s := range suggestions {
		names = append(names, s.Name)
		if len(names) == 3 {
			break
		}
	}
	return u.reject(adapter.Prompt{
		Text:    u.tr.T("interest_suggest", strings.Join(names, ", ")),
		Choices: append(names, u.tr.T("btn_skip")),
	}), nil
}

func (u *registrationUC) handlePhoto(ctx context.Context, draft *model.Draft, ev adapter.InboundEvent) (stepResult, error) {
	if u.isSkip(ev) {
		draft.Photo = nil
		return u.advance(ctx, model.StepLocation)
	}
	if ev.Kind != adapter.EventPhoto || ev.Photo == "" {
		return u.reject(adapter.Prompt{
			Text:    u.tr.T("photo_invalid"),
			Choices: []string{u.tr.T("btn_skip")},
		}), nil
	}
	photo := ev.Photo
	draft.Photo = &photo
	return u.advance(ctx, model.StepLocation)
}

func (u *registrationUC) handleLocation(_ context.Context, draft *model.Draft, ev adapter.InboundEvent) (stepResult, error) {
	if u.isSkip(ev) {
		draft.Geolocation = nil
		return stepResult{Accepted: true, Commit: true}, nil
	}
	if ev.Kind != adapter.EventGeo {
		return u.reject(adapter.Prompt{
			Text:            u.tr.T("location_invalid"),
			Choices:         []string{u.tr.T("btn_location"), u.tr.T("btn_skip")},
			RequestLocation: true,
		}), nil
	}
	loc := model.FormatGeolocation(ev.Latitude, ev.Longitude)
	draft.Geolocation = &loc
	return stepResult{Accepted: true, Commit: true}, nil
}

// promptFor builds the question for a step, including its reply keyboard.
func (u *registrationUC) promptFor(ctx context.Context, step model.Step) (adapter.Prompt, error) {
	switch step {
	case model.StepName:
		return adapter.Prompt{Text: u.tr.T("ask_name"), RemoveKeyboard: true}, nil
	case model.StepSurname:
		return adapter.Prompt{Text: u.tr.T("ask_surname")}, nil
	case model.StepGender:
		return adapter.Prompt{Text: u.tr.T("ask_gender"), Choices: u.genderChoices()}, nil
	case model.StepAge:
		return adapter.Prompt{
			Text:    u.tr.T("ask_age", u.cfg.MinAge, u.cfg.MaxAge),
			Choices: []string{u.tr.T("btn_skip")},
		}, nil
	case model.StepRegion:
		choices, err := u.regionChoices(ctx)
		if err != nil {
			return adapter.Prompt{}, err
		}
		return adapter.Prompt{Text: u.tr.T("ask_region"), Choices: choices}, nil
	case model.StepInterests:
		choices, err := u.interestChoices(ctx)
		if err != nil {
			return adapter.Prompt{}, err
		}
		return adapter.Prompt{Text: u.tr.T("ask_interests"), Choices: choices}, nil
	case model.StepPhoto:
		return adapter.Prompt{
			Text:    u.tr.T("ask_photo"),
			Choices: []string{u.tr.T("btn_skip")},
		}, nil
	case model.StepLocation:
		return adapter.Prompt{
			Text:            u.tr.T("ask_location"),
			Choices:         []string{u.tr.T("btn_location"), u.tr.T("btn_skip")},
			RequestLocation: true,
		}, nil
	default:
		return adapter.Prompt{Text: u.tr.T("use_start")}, nil
	}
}

func (u *registrationUC) genderChoices() []string {
	return []string{
		u.tr.T("btn_gender_male"),
		u.tr.T("btn_gender_female"),
		u.tr.T("btn_skip"),
	}
}

func (u *registrationUC) regionChoices(ctx context.Context) ([]string, error) {
	regions, err := u.catalog.ListRegions(ctx)
	if err != nil {
		return nil, err
	}
	choices := make([]string, 0, len(regions))
	for _, r := range regions {
		choices = append(choices, r.Name)
	}
	return choices, nil
}

// interestChoices lists the entire interest catalog as buttons, the
// configured popular entries first and the rest in catalog order, with the
// skip button last.
func (u *registrationUC) interestChoices(ctx context.Context) ([]string, error) {
	interests, err := u.catalog.ListInterests(ctx)
	if err != nil {
		return nil, err
	}
	popular := make(map[string]struct{}, len(u.cfg.PopularInterests))
	choices := make([]string, 0, len(interests)+1)
	for _, name := range u.cfg.PopularInterests {
		popular[model.NormalizeInterestName(name)] = struct{}{}
		choices = append(choices, name)
	}
	for _, in := range interests {
		if _, dup := popular[model.NormalizeInterestName(in.Name)]; dup {
			continue
		}
		choices = append(choices, in.Name)
	}
	return append(choices, u.tr.T("btn_skip")), nil
}

func domainNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
