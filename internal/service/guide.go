package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/trip-companion/internal/domain"
	"github.com/pkordes/trip-companion/internal/repo"
)

// GuideService serves the phrasebook.
type GuideService struct {
	phrases repo.PhraseRepo
}

// NewGuideService constructs a GuideService backed by the provided repo.
func NewGuideService(phrases repo.PhraseRepo) *GuideService {
	return &GuideService{phrases: phrases}
}

// Phrases returns the phrasebook in display order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *GuideService) Phrases(ctx context.Context) ([]domain.Phrase, error) {
	phrases, err := s.phrases.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.GuideService.Phrases: %w", err)
	}
	if phrases == nil {
		return []domain.Phrase{}, nil
	}
	return phrases, nil
}

// Lookup returns a single phrase by word, ignoring case.
func (s *GuideService) Lookup(ctx context.Context, word string) (domain.Phrase, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return domain.Phrase{}, fmt.Errorf("%w: word is required", domain.ErrValidation)
	}
	p, err := s.phrases.GetByWord(ctx, word)
	if err != nil {
		return domain.Phrase{}, fmt.Errorf("service.GuideService.Lookup: %w", err)
	}
	return p, nil
}
