package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/trip-companion/internal/domain"
	"github.com/pkordes/trip-companion/internal/repo"
)

// ---- mock repos ------------------------------------------------------------

// mockActivityRepo is a hand-written test double for repo.ActivityRepo.
// Set only the method fields your test needs.
type mockActivityRepo struct {
	create          func(ctx context.Context, act domain.Activity) (domain.Activity, error)
	getByID         func(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	list            func(ctx context.Context) ([]domain.Activity, error)
	toggleCompleted func(ctx context.Context, id uuid.UUID) (domain.Activity, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	return m.create(ctx, act)
}
func (m *mockActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, id)
}
func (m *mockActivityRepo) List(ctx context.Context) ([]domain.Activity, error) {
	return m.list(ctx)
}
func (m *mockActivityRepo) ToggleCompleted(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	return m.toggleCompleted(ctx, id)
}

// compile-time check: mockActivityRepo must satisfy repo.ActivityRepo.
var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

// listing returns a mockActivityRepo whose List yields acts.
func listing(acts ...domain.Activity) *mockActivityRepo {
	return &mockActivityRepo{
		list: func(_ context.Context) ([]domain.Activity, error) {
			return acts, nil
		},
	}
}

// mockPhraseRepo is a hand-written test double for repo.PhraseRepo.
type mockPhraseRepo struct {
	list      func(ctx context.Context) ([]domain.Phrase, error)
	getByWord func(ctx context.Context, word string) (domain.Phrase, error)
}

func (m *mockPhraseRepo) List(ctx context.Context) ([]domain.Phrase, error) {
	return m.list(ctx)
}
func (m *mockPhraseRepo) GetByWord(ctx context.Context, word string) (domain.Phrase, error) {
	return m.getByWord(ctx, word)
}

var _ repo.PhraseRepo = (*mockPhraseRepo)(nil)
