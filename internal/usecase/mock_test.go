//go:build !integration

package usecase

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v4"

	"telegram-registration-bot/internal/domain"
	"telegram-registration-bot/internal/domain/model"
	"telegram-registration-bot/internal/domain/ports/repository"
)

// In-memory fakes backing the engine tests. They keep real state so a test
// can walk the whole conversation; error injection fields simulate store
// failures at specific calls.

type fakeStepRepo struct {
	steps  map[int64]model.Step
	getErr error
	setErr error
}

func newFakeStepRepo() *fakeStepRepo {
	return &fakeStepRepo{steps: make(map[int64]model.Step)}
}

func (f *fakeStepRepo) Get(_ context.Context, _ repository.Tx, userID int64) (model.Step, error) {
	if f.getErr != nil {
		return model.StepNone, f.getErr
	}
	return f.steps[userID], nil
}

func (f *fakeStepRepo) Set(_ context.Context, _ repository.Tx, userID int64, step model.Step) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.steps[userID] = step
	return nil
}

func (f *fakeStepRepo) Reset(_ context.Context, _ repository.Tx, userID int64) error {
	delete(f.steps, userID)
	return nil
}

type fakeDraftRepo struct {
	drafts  map[int64]model.Draft
	saveErr error
}

func newFakeDraftRepo() *fakeDraftRepo {
	return &fakeDraftRepo{drafts: make(map[int64]model.Draft)}
}

func (f *fakeDraftRepo) Get(_ context.Context, _ repository.Tx, userID int64) (*model.Draft, error) {
	d, ok := f.drafts[userID]
	if !ok {
		return &model.Draft{}, nil
	}
	copied := d
	copied.Interests = append([]int64(nil), d.Interests...)
	return &copied, nil
}

func (f *fakeDraftRepo) Save(_ context.Context, _ repository.Tx, userID int64, draft *model.Draft) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *draft
	copied.Interests = append([]int64(nil), draft.Interests...)
	f.drafts[userID] = copied
	return nil
}

func (f *fakeDraftRepo) Clear(_ context.Context, _ repository.Tx, userID int64) error {
	delete(f.drafts, userID)
	return nil
}

type fakeProfileRepo struct {
	byContact map[string]*model.Profile
	links     map[string][]int64
	interests map[int64]bool

	createErr      error
	addInterestErr map[int64]error
	created        []*model.Profile
}

func newFakeProfileRepo(validInterests ...int64) *fakeProfileRepo {
	valid := make(map[int64]bool, len(validInterests))
	for _, id := range validInterests {
		valid[id] = true
	}
	return &fakeProfileRepo{
		byContact:      make(map[string]*model.Profile),
		links:          make(map[string][]int64),
		interests:      valid,
		addInterestErr: make(map[int64]error),
	}
}

func (f *fakeProfileRepo) Create(_ context.Context, _ repository.Tx, p *model.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byContact[p.Contact]; exists {
		return domain.ErrAlreadyExists
	}
	f.byContact[p.Contact] = p
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProfileRepo) FindByContact(_ context.Context, _ repository.Tx, contact string) (*model.Profile, error) {
	p, ok := f.byContact[contact]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) AddInterest(_ context.Context, _ repository.Tx, profileID string, interestID int64) (bool, error) {
	if err := f.addInterestErr[interestID]; err != nil {
		return false, err
	}
	if !f.interests[interestID] {
		return false, domain.ErrNotFound
	}
	for _, id := range f.links[profileID] {
		if id == interestID {
			return false, nil
		}
	}
	f.links[profileID] = append(f.links[profileID], interestID)
	return true, nil
}

func (f *fakeProfileRepo) InterestIDs(_ context.Context, _ repository.Tx, profileID string) ([]int64, error) {
	return append([]int64(nil), f.links[profileID]...), nil
}

type fakeCatalogRepo struct {
	regions   []model.Region
	interests []model.Interest
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		regions: []model.Region{
			{ID: 1, Name: "Москва"},
			{ID: 2, Name: "Казань"},
		},
		interests: []model.Interest{
			{ID: 10, Name: "Волейбол"},
			{ID: 11, Name: "Футбол"},
			{ID: 12, Name: "Игра на гитаре"},
			{ID: 13, Name: "Теннис"},
			{ID: 14, Name: "Настольный теннис"},
		},
	}
}

func (f *fakeCatalogRepo) ListRegions(_ context.Context) ([]model.Region, error) {
	return f.regions, nil
}

func (f *fakeCatalogRepo) FindRegionByName(_ context.Context, name string) (*model.Region, error) {
	for _, r := range f.regions {
		if r.Name == name {
			region := r
			return &region, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCatalogRepo) ListInterests(_ context.Context) ([]model.Interest, error) {
	return f.interests, nil
}

func (f *fakeCatalogRepo) FindInterestByName(_ context.Context, normalized string) (*model.Interest, error) {
	for _, i := range f.interests {
		if model.NormalizeInterestName(i.Name) == normalized {
			interest := i
			return &interest, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCatalogRepo) SuggestInterests(_ context.Context, term string, limit int) ([]model.Interest, error) {
	var out []model.Interest
	for _, i := range f.interests {
		if strings.Contains(strings.ToLower(i.Name), strings.ToLower(term)) {
			out = append(out, i)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type fakeTxManager struct {
	err error
}

func (f *fakeTxManager) WithTx(ctx context.Context, _ pgx.TxOptions, fn func(ctx context.Context, tx repository.Tx) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx, repository.NoTX)
}
