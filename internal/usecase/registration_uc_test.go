//go:build !integration

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"telegram-registration-bot/internal/config"
	"telegram-registration-bot/internal/domain/model"
	"telegram-registration-bot/internal/domain/ports/adapter"
	"telegram-registration-bot/internal/infra/i18n"
)

const testUserID int64 = 7001

type engineFixture struct {
	uc       RegistrationUseCase
	steps    *fakeStepRepo
	drafts   *fakeDraftRepo
	profiles *fakeProfileRepo
	catalog  *fakeCatalogRepo
	tm       *fakeTxManager
	tr       *i18n.Translator
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	tr, err := i18n.NewTranslator(i18n.LocalesFS, "ru")
	if err != nil {
		t.Fatalf("translator: %v", err)
	}

	cfg := config.RegistrationConfig{
		CancelCommand:    "/cancel",
		CancelKeyword:    "отмена",
		SkipKeyword:      "пропустить",
		LaunchKeyword:    "Запустить",
		MinAge:           12,
		MaxAge:           120,
		SuggestionLimit:  5,
		PopularInterests: []string{"Волейбол", "Футбол"},
	}

	f := &engineFixture{
		steps:    newFakeStepRepo(),
		drafts:   newFakeDraftRepo(),
		profiles: newFakeProfileRepo(10, 11, 12, 13, 14),
		catalog:  newFakeCatalogRepo(),
		tm:       &fakeTxManager{},
		tr:       tr,
	}
	logger := zerolog.Nop()
	f.uc = NewRegistrationUseCase(
		f.steps, f.drafts, f.profiles, f.catalog, f.tm,
		tr, cfg, []string{"+7 999 000 11 22"}, &logger,
	)
	return f
}

// at positions the user mid-flow with a staged draft.
func (f *engineFixture) at(t *testing.T, step model.Step, draft *model.Draft) {
	t.Helper()
	ctx := context.Background()
	if draft != nil {
		if err := f.drafts.Save(ctx, nil, testUserID, draft); err != nil {
			t.Fatalf("stage draft: %v", err)
		}
	}
	if err := f.steps.Set(ctx, nil, testUserID, step); err != nil {
		t.Fatalf("stage step: %v", err)
	}
}

func (f *engineFixture) handle(t *testing.T, ev adapter.InboundEvent) []adapter.Prompt {
	t.Helper()
	prompts, err := f.uc.HandleEvent(context.Background(), ev)
	if err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	return prompts
}

func (f *engineFixture) stepOf(t *testing.T) model.Step {
	t.Helper()
	step, err := f.steps.Get(context.Background(), nil, testUserID)
	if err != nil {
		t.Fatalf("step get: %v", err)
	}
	return step
}

func (f *engineFixture) draftOf(t *testing.T) *model.Draft {
	t.Helper()
	d, err := f.drafts.Get(context.Background(), nil, testUserID)
	if err != nil {
		t.Fatalf("draft get: %v", err)
	}
	return d
}

func textEv(text string) adapter.InboundEvent {
	return adapter.InboundEvent{Kind: adapter.EventText, UserID: testUserID, ChatID: testUserID, Text: text}
}

func cmdEv(cmd string) adapter.InboundEvent {
	return adapter.InboundEvent{Kind: adapter.EventCommand, UserID: testUserID, ChatID: testUserID, Command: cmd}
}

func contactEv(phone string) adapter.InboundEvent {
	return adapter.InboundEvent{Kind: adapter.EventContact, UserID: testUserID, ChatID: testUserID, Phone: phone}
}

func photoEv(fileID string) adapter.InboundEvent {
	return adapter.InboundEvent{Kind: adapter.EventPhoto, UserID: testUserID, ChatID: testUserID, Photo: fileID}
}

func geoEv(lat, lon float64) adapter.InboundEvent {
	return adapter.InboundEvent{Kind: adapter.EventGeo, UserID: testUserID, ChatID: testUserID, Latitude: lat, Longitude: lon}
}

func wantText(t *testing.T, prompts []adapter.Prompt, want string) {
	t.Helper()
	if len(prompts) == 0 {
		t.Fatal("expected at least one prompt")
	}
	last := prompts[len(prompts)-1]
	if last.Text != want {
		t.Fatalf("prompt text = %q, want %q", last.Text, want)
	}
}

func TestEntry_StartShowsLaunchButton(t *testing.T) {
	f := newEngineFixture(t)

	prompts := f.handle(t, cmdEv("start"))
	wantText(t, prompts, f.tr.T("intro"))
	if len(prompts[0].Choices) != 1 || prompts[0].Choices[0] != "Запустить" {
		t.Fatalf("unexpected choices: %v", prompts[0].Choices)
	}
	if f.stepOf(t) != model.StepNone {
		t.Fatal("start alone must not advance the step")
	}
}

func TestEntry_LaunchAsksForPhone(t *testing.T) {
	f := newEngineFixture(t)

	prompts := f.handle(t, textEv("запустить"))
	wantText(t, prompts, f.tr.T("ask_phone"))
	if !prompts[0].RequestContact {
		t.Fatal("phone prompt must request the contact share button")
	}
}

func TestEntry_ContactStartsFlow(t *testing.T) {
	f := newEngineFixture(t)

	prompts := f.handle(t, contactEv("+79990001122"))
	wantText(t, prompts, f.tr.T("ask_name"))

	if f.stepOf(t) != model.StepName {
		t.Fatalf("step = %v, want name", f.stepOf(t))
	}
	draft := f.draftOf(t)
	if draft.Phone != "+79990001122" {
		t.Fatalf("draft phone = %q", draft.Phone)
	}
	if !draft.IsAdmin {
		t.Fatal("admin phone must mark the draft as admin")
	}
}

func TestEntry_NonAdminContact(t *testing.T) {
	f := newEngineFixture(t)

	f.handle(t, contactEv("+71112223344"))
	if f.draftOf(t).IsAdmin {
		t.Fatal("unknown phone must not be admin")
	}
}

func TestEntry_ExistingContactWelcomedBack(t *testing.T) {
	f := newEngineFixture(t)
	f.profiles.byContact["+79990001122"] = &model.Profile{ID: "p-1", Contact: "+79990001122"}

	prompts := f.handle(t, contactEv("+79990001122"))
	wantText(t, prompts, f.tr.T("welcome_back"))
	if f.stepOf(t) != model.StepNone {
		t.Fatal("existing profile must not start a flow")
	}
}

func TestEntry_RandomTextPointsAtStart(t *testing.T) {
	f := newEngineFixture(t)

	prompts := f.handle(t, textEv("привет"))
	wantText(t, prompts, f.tr.T("use_start"))
}

func TestName_AcceptAndReject(t *testing.T) {
	f := newEngineFixture(t)
	f.at(t, model.StepName, model.NewDraft("+7000", false))

	prompts := f.handle(t, textEv("   "))
	wantText(t, prompts, f.tr.T("ask_name"))
	if f.stepOf(t) != model.StepName {
		t.Fatal("rejected answer must not advance")
	}

	prompts = f.handle(t, textEv("  Иван  "))
	wantText(t, prompts, f.tr.T("name_accepted", "Иван"))
	if got := f.draftOf(t).Name; got != "Иван" {
		t.Fatalf("name = %q, want trimmed Иван", got)
	}
	if f.stepOf(t) != model.StepSurname {
		t.Fatalf("step = %v, want surname", f.stepOf(t))
	}
}

func TestName_NameAcknowledgedInSurnamePromptFlow(t *testing.T) {
	f := newEngineFixture(t)
	f.at(t, model.StepSurname, &model.Draft{Phone: "+7000", Name: "Иван"})

	f.handle(t, textEv("Петров"))
	draft := f.draftOf(t)
	if draft.Surname != "Петров" {
		t.Fatalf("surname = %q", draft.Surname)
	}
	if f.stepOf(t) != model.StepGender {
		t.Fatalf("step = %v, want gender", f.stepOf(t))
	}
}

func TestGender_ParseSkipAndReject(t *testing.T) {
	f := newEngineFixture(t)

	cases := []struct {
		name     string
		input    string
		accepted bool
		want     *model.Gender
	}{
		{"russian male", "Мужской", true, genderPtr(model.GenderMale)},
		{"english female", "FEMALE", true, genderPtr(model.GenderFemale)},
		{"skip leaves it empty", "Пропустить", true, nil},
		{"garbage rejected", "яблоко", false, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f.at(t, model.StepGender, &model.Draft{Phone: "+7000", Name: "A", Surname: "B"})

			prompts := f.handle(t, textEv(tc.input))
			if !tc.accepted {
				wantText(t, prompts, f.tr.T("gender_invalid"))
				if f.stepOf(t) != model.StepGender {
					t.Fatal("invalid gender must not advance")
				}
				return
			}
			if f.stepOf(t) != model.StepAge {
				t.Fatalf("step = %v, want age", f.stepOf(t))
			}
			got := f.draftOf(t).Gender
			if (got == nil) != (tc.want == nil) || (got != nil && *got != *tc.want) {
				t.Fatalf("gender = %v, want %v", got, tc.want)
			}
		})
	}
}

func genderPtr(g model.Gender) *model.Gender { return &g }

func TestAge_Boundaries(t *testing.T) {
	f := newEngineFixture(t)

	cases := []struct {
		input    string
		accepted bool
	}{
		{"11", false},
		{"12", true},
		{"120", true},
		{"121", false},
		{"abc", false},
		{"-5", false},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			f.at(t, model.StepAge, &model.Draft{Phone: "+7000", Name: "A", Surname: "B"})

			prompts := f.handle(t, textEv(tc.input))
			if tc.accepted {
				if f.stepOf(t) != model.StepRegion {
					t.Fatalf("step = %v, want region", f.stepOf(t))
				}
				return
			}
			wantText(t, prompts, f.tr.T("age_invalid", 12, 120))
			if f.stepOf(t) != model.StepAge {
				t.Fatal("invalid age must not advance")
			}
			if f.draftOf(t).Age != nil {
				t.Fatal("rejected age must not be stored")
			}
		})
	}
}

func TestAge_Skip(t *testing.T) {
	f := newEngineFixture(t)
	f.at(t, model.StepAge, &model.Draft{Phone: "+7000", Name: "A", Surname: "B"})

	f.handle(t, textEv("пропустить"))
	if f.stepOf(t) != model.StepRegion {
		t.Fatalf("step = %v, want region", f.stepOf(t))
	}
	if f.draftOf(t).Age != nil {
		t.Fatal("skipped age must stay empty")
	}
}

func TestRegion_ExactMatchOnly(t *testing.T) {
	f := newEngineFixture(t)
	f.at(t, model.StepRegion, &model.Draft{Phone: "+7000", Name: "A", Surname: "B"})

	prompts := f.handle(t, textEv("москва"))
	wantText(t, prompts, f.tr.T("region_not_found"))
	if len(prompts[0].Choices) != 2 {
		t.Fatalf("re-prompt should list all regions, got %v", prompts[0].Choices)
	}
	if f.stepOf(t) != model.StepRegion {
		t.Fatal("unknown region must not advance")
	}

	f.handle(t, textEv("Москва"))
	if f.stepOf(t) != model.StepInterests {
		t.Fatalf("step = %v, want interests", f.stepOf(t))
	}
	if got := f.draftOf(t).RegionID; got == nil || *got != 1 {
		t.Fatalf("region id = %v, want 1", got)
	}
}

func TestInterests_AddLoopAndDuplicate(t *testing.T) {
	f := newEngineFixture(t)
	f.at(t, model.StepInterests, &model.Draft{Phone: "+7000", Name: "A", Surname: "B"})

	prompts := f.handle(t, textEv("Футбол"))
	wantText(t, prompts, f.tr.T("interest_added", "Футбол", 1))
	if f.stepOf(t) != model.StepInterests {
		t.Fatal("interest step must loop onto itself")
	}

	prompts = f.handle(t, textEv("футбол"))
	wantText(t, prompts, f.tr.T("interest_duplicate", "Футбол"))
	if got := f.draftOf(t).Interests; len(got) != 1 {
		t.Fatalf("interests = %v, want exactly one", got)
	}
}

func TestInterests_AliasResolves(t *testing.T) {
	f := newEngineFixture(t)
	f.at(t, model.StepInterests, &model.Draft{Phone: "+7000", Name: "A", Surname: "B"})

	prompts := f.handle(t, textEv("спорт"))
	wantText(t, prompts, f.tr.T("interest_added", "Волейбол", 1))
	if got := f.draftOf(t).Interests; len(got) != 1 || got[0] != 10 {
		t.Fatalf("interests = %v, want [10]", got)
	}
}

func TestInterests_FuzzySuggestionsCapped(t *testing.T) {
	f := newEngineFixture(t)
	f.at(t, model.StepInterests, &model.Draft{Phone: "+7000", Name: "A", Surname: "B"})

	prompts := f.handle(t, textEv("теннис большой"))
	if f.stepOf(t) != model.StepInterests {
		t.Fatal("fuzzy miss must not advance")
	}
	// "теннис большой" has no exact match; no substring hit either, so the
	// keyboard fallback is shown.
	wantText(t, prompts, f.tr.T("interest_use_buttons"))

	prompts = f.handle(t, textEv("енн"))
	if len(prompts[0].Choices) < 2 {
		t.Fatalf("expected suggestion buttons, got %v", prompts[0].Choices)
	}
	if got := f.draftOf(t).Interests; len(got) != 0 {
		t.Fatalf("suggestions must not modify the draft, got %v", got)
	}
}

func TestInterests_KeyboardListsWholeCatalog(t *testing.T) {
	f := newEngineFixture(t)
	f.at(t, model.StepInterests, &model.Draft{Phone: "+7000", Name: "A", Surname: "B"})

	// /start mid-flow re-renders the interest question; the buttons must show
	// the popular entries first and then the rest of the catalog, so entries
	// missing from the popular list are still offered.
	prompts := f.handle(t, cmdEv("start"))
	want := []string{
		"Волейбол", "Футбол",
		"Игра на гитаре", "Теннис", "Настольный теннис",
		f.tr.T("btn_skip"),
	}
	got := prompts[0].Choices
	if len(got) != len(want) {
		t.Fatalf("choices = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("choices[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}

	// The self-loop re-prompt carries the same catalog-backed keyboard.
	prompts = f.handle(t, textEv("Теннис"))
	wantText(t, prompts, f.tr.T("interest_added", "Теннис", 1))
	if got := prompts[0].Choices; len(got) != len(want) || got[4] != "Настольный теннис" {
		t.Fatalf("loop choices = %v, want full catalog", got)
	}
}

func TestInterests_SkipAdvances(t *testing.T) {
	f := newEngineFixture(t)
	f.at(t, model.StepInterests, &model.Draft{Phone: "+7000", Name: "A", Surname: "B"})

	f.handle(t, textEv("Пропустить"))
	if f.stepOf(t) != model.StepPhoto {
		t.Fatalf("step = %v, want photo", f.stepOf(t))
	}
}

func TestPhoto_AttachmentSkipAndReject(t *testing.T) {
	f := newEngineFixture(t)

	f.at(t, model.StepPhoto, &model.Draft{Phone: "+7000", Name: "A", Surname: "B"})
	prompts := f.handle(t, textEv("вот фото"))
	wantText(t, prompts, f.tr.T("photo_invalid"))
	if f.stepOf(t) != model.StepPhoto {
		t.Fatal("text at photo step must not advance")
	}

	f.handle(t, photoEv("file-abc"))
	if f.stepOf(t) != model.StepLocation {
		t.Fatalf("step = %v, want location", f.stepOf(t))
	}
	if got := f.draftOf(t).Photo; got == nil || *got != "file-abc" {
		t.Fatalf("photo = %v, want file-abc", got)
	}

	f.at(t, model.StepPhoto, &model.Draft{Phone: "+7001", Name: "A", Surname: "B"})
	f.handle(t, textEv("пропустить"))
	if f.draftOf(t).Photo != nil {
		t.Fatal("skipped photo must stay empty")
	}
}

func TestLocation_GeoCommits(t *testing.T) {
	f := newEngineFixture(t)
	f.at(t, model.StepLocation, &model.Draft{
		Phone: "+7000", Name: "Иван", Surname: "Петров", Interests: []int64{10, 11},
	})

	prompts := f.handle(t, geoEv(55.75, 37.61))
	wantText(t, prompts, f.tr.T("registration_done", 2))

	if len(f.profiles.created) != 1 {
		t.Fatalf("created %d profiles, want 1", len(f.profiles.created))
	}
	p := f.profiles.created[0]
	if p.Geolocation == nil || *p.Geolocation != "55.750000,37.610000" {
		t.Fatalf("geolocation = %v", p.Geolocation)
	}
	if f.stepOf(t) != model.StepNone {
		t.Fatal("commit must reset the step")
	}
	if !f.draftOf(t).IsZero() {
		t.Fatal("commit must clear the draft")
	}
}

func TestLocation_SkipCommitsWithoutGeo(t *testing.T) {
	f := newEngineFixture(t)
	f.at(t, model.StepLocation, &model.Draft{Phone: "+7000", Name: "Иван", Surname: "Петров"})

	prompts := f.handle(t, textEv("Пропустить"))
	wantText(t, prompts, f.tr.T("registration_done", 0))
	if f.profiles.created[0].Geolocation != nil {
		t.Fatal("skipped location must stay empty")
	}
}

func TestLocation_TextRejected(t *testing.T) {
	f := newEngineFixture(t)
	f.at(t, model.StepLocation, &model.Draft{Phone: "+7000", Name: "Иван", Surname: "Петров"})

	prompts := f.handle(t, textEv("Москва, Тверская 1"))
	wantText(t, prompts, f.tr.T("location_invalid"))
	if len(f.profiles.created) != 0 {
		t.Fatal("free text must not trigger a commit")
	}
}

func TestCommit_InterestLinkFailuresAreBestEffort(t *testing.T) {
	f := newEngineFixture(t)
	f.profiles.addInterestErr[11] = errors.New("fk broke")
	f.at(t, model.StepLocation, &model.Draft{
		Phone: "+7000", Name: "Иван", Surname: "Петров", Interests: []int64{10, 11, 12},
	})

	prompts := f.handle(t, textEv("пропустить"))
	wantText(t, prompts, f.tr.T("registration_done", 2))
	if len(f.profiles.created) != 1 {
		t.Fatal("profile must be committed despite link failures")
	}
	if f.stepOf(t) != model.StepNone {
		t.Fatal("link failures must not keep the flow open")
	}
}

func TestCommit_UnknownInterestIDDoesNotFailRegistration(t *testing.T) {
	f := newEngineFixture(t)
	f.at(t, model.StepLocation, &model.Draft{
		Phone: "+7000", Name: "Иван", Surname: "Петров", Interests: []int64{10, 99999},
	})

	prompts := f.handle(t, textEv("пропустить"))
	wantText(t, prompts, f.tr.T("registration_done", 1))
	links, _ := f.profiles.InterestIDs(context.Background(), nil, f.profiles.created[0].ID)
	if len(links) != 1 || links[0] != 10 {
		t.Fatalf("links = %v, want only the valid interest", links)
	}
}

func TestCommit_DuplicateContactClearsState(t *testing.T) {
	f := newEngineFixture(t)
	f.profiles.byContact["+7000"] = &model.Profile{ID: "p-0", Contact: "+7000"}
	f.at(t, model.StepLocation, &model.Draft{Phone: "+7000", Name: "Иван", Surname: "Петров"})

	prompts := f.handle(t, textEv("пропустить"))
	wantText(t, prompts, f.tr.T("already_registered"))
	if f.stepOf(t) != model.StepNone || !f.draftOf(t).IsZero() {
		t.Fatal("duplicate commit must clear staged state")
	}
}

func TestCommit_StoreFailureKeepsState(t *testing.T) {
	f := newEngineFixture(t)
	f.tm.err = errors.New("db down")
	f.at(t, model.StepLocation, &model.Draft{Phone: "+7000", Name: "Иван", Surname: "Петров"})

	prompts, err := f.uc.HandleEvent(context.Background(), textEv("пропустить"))
	if err == nil {
		t.Fatal("expected store error to surface to the caller")
	}
	wantText(t, prompts, f.tr.T("error_generic"))
	if f.stepOf(t) != model.StepLocation {
		t.Fatal("failed commit must keep the step for a retry")
	}
	if f.draftOf(t).IsZero() {
		t.Fatal("failed commit must keep the draft")
	}
}

func TestCancel_AtEveryStep(t *testing.T) {
	f := newEngineFixture(t)

	for step := model.StepName; step <= model.StepLocation; step++ {
		t.Run(step.String(), func(t *testing.T) {
			f.at(t, step, &model.Draft{Phone: "+7000", Name: "A", Surname: "B"})

			prompts := f.handle(t, cmdEv("cancel"))
			wantText(t, prompts, f.tr.T("cancelled"))
			if f.stepOf(t) != model.StepNone {
				t.Fatal("cancel must reset the step")
			}
			if !f.draftOf(t).IsZero() {
				t.Fatal("cancel must clear the draft")
			}
		})
	}
}

func TestCancel_KeywordInsideText(t *testing.T) {
	f := newEngineFixture(t)
	f.at(t, model.StepAge, &model.Draft{Phone: "+7000", Name: "A", Surname: "B"})

	prompts := f.handle(t, textEv("давайте ОТМЕНА, я передумал"))
	wantText(t, prompts, f.tr.T("cancelled"))
	if f.stepOf(t) != model.StepNone {
		t.Fatal("cancel keyword must reset the step")
	}
}

func TestCancel_NotInterceptedOutsideFlow(t *testing.T) {
	f := newEngineFixture(t)

	prompts := f.handle(t, cmdEv("cancel"))
	wantText(t, prompts, f.tr.T("use_start"))
}

func TestStartMidFlowRepeatsQuestion(t *testing.T) {
	f := newEngineFixture(t)
	f.at(t, model.StepAge, &model.Draft{Phone: "+7000", Name: "A", Surname: "B"})

	prompts := f.handle(t, cmdEv("start"))
	wantText(t, prompts, f.tr.T("ask_age", 12, 120))
	if f.stepOf(t) != model.StepAge {
		t.Fatal("start mid-flow must not move the step")
	}
}

// Full happy path, phone to commit, checking the step never moves backwards.
func TestFullScenario(t *testing.T) {
	f := newEngineFixture(t)

	seen := model.StepNone
	checkMonotonic := func() {
		t.Helper()
		cur := f.stepOf(t)
		if cur != model.StepNone && cur < seen {
			t.Fatalf("step went backwards: %v -> %v", seen, cur)
		}
		if cur > seen {
			seen = cur
		}
	}

	f.handle(t, cmdEv("start"))
	f.handle(t, textEv("Запустить"))
	f.handle(t, contactEv("+79990001122"))
	checkMonotonic()
	f.handle(t, textEv("Иван"))
	checkMonotonic()
	f.handle(t, textEv("Петров"))
	checkMonotonic()
	f.handle(t, textEv("Мужской"))
	checkMonotonic()
	f.handle(t, textEv("29"))
	checkMonotonic()
	f.handle(t, textEv("Казань"))
	checkMonotonic()
	f.handle(t, textEv("Футбол"))
	f.handle(t, textEv("гитара"))
	checkMonotonic()
	f.handle(t, textEv("Пропустить"))
	checkMonotonic()
	f.handle(t, photoEv("photo-1"))
	checkMonotonic()
	prompts := f.handle(t, geoEv(55.79, 49.12))
	wantText(t, prompts, f.tr.T("registration_done", 2))

	if len(f.profiles.created) != 1 {
		t.Fatalf("created %d profiles, want 1", len(f.profiles.created))
	}
	p := f.profiles.created[0]
	if p.Contact != "+79990001122" || p.Name != "Иван" || p.Surname != "Петров" {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if p.Gender == nil || *p.Gender != model.GenderMale {
		t.Fatalf("gender = %v", p.Gender)
	}
	if p.Age == nil || *p.Age != 29 {
		t.Fatalf("age = %v", p.Age)
	}
	if p.RegionID == nil || *p.RegionID != 2 {
		t.Fatalf("region = %v", p.RegionID)
	}
	if !p.IsAdmin {
		t.Fatal("admin phone must carry into the profile")
	}
	links, _ := f.profiles.InterestIDs(context.Background(), nil, p.ID)
	if len(links) != 2 {
		t.Fatalf("linked interests = %v, want футбол and гитара", links)
	}
}
