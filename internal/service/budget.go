package service

import (
	"context"
	"fmt"

	"github.com/pkordes/trip-companion/internal/domain"
	"github.com/pkordes/trip-companion/internal/repo"
)

// BudgetService builds the cost breakdown of the itinerary.
type BudgetService struct {
	activities repo.ActivityRepo
}

// NewBudgetService constructs a BudgetService backed by the provided repo.
func NewBudgetService(activities repo.ActivityRepo) *BudgetService {
	return &BudgetService{activities: activities}
}

// Summary returns every paid activity priced in currency, plus the total.
// An activity is paid when its EUR price is positive, whichever currency
// is requested.
func (s *BudgetService) Summary(ctx context.Context, currency domain.Currency) (domain.BudgetSummary, error) {
	acts, err := s.activities.List(ctx)
	if err != nil {
		return domain.BudgetSummary{}, fmt.Errorf("service.BudgetService.Summary: %w", err)
	}

	sum := domain.BudgetSummary{Currency: currency, Items: []domain.BudgetItem{}}
	for _, a := range acts {
		if !a.IsPaid() {
			continue
		}
		amount := a.Price(currency)
		sum.Total += amount
		sum.Items = append(sum.Items, domain.BudgetItem{
			ActivityID: a.ID,
			Title:      a.Title,
			Type:       a.Type,
			Amount:     amount,
			Display:    domain.FormatAmount(currency, amount),
		})
	}
	sum.TotalDisplay = domain.FormatAmount(currency, sum.Total)
	return sum, nil
}
