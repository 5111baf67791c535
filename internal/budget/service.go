package budget

import (
	"log/slog"

	"github.com/davinsyabanp/SakuKu/internal/transaction"
)

// Store persists the budget map independently of the transaction ledger.
type Store interface {
	LoadBudget() map[string]float64
	SaveBudget(budget map[string]float64) bool
}

// ExpenseTotals is the slice of the aggregation engine the tracker needs.
type ExpenseTotals interface {
	TotalsByCategory(typeFilter string) map[string]float64
}

// Service maps categories to spending ceilings and reports
// spend-vs-ceiling progress.
type Service struct {
	store   Store
	reports ExpenseTotals
	logger  *slog.Logger
}

func NewService(store Store, reports ExpenseTotals, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		reports: reports,
		logger:  logger,
	}
}

// SetBudget replaces the entire budget map. Ceilings that are zero or
// negative are dropped rather than stored.
func (s *Service) SetBudget(ceilings map[string]float64) bool {
	budget := make(map[string]float64, len(ceilings))
	for category, ceiling := range ceilings {
		if ceiling <= 0 {
			s.logger.Debug("dropping non-positive budget ceiling", "category", category, "ceiling", ceiling)
			continue
		}
		budget[category] = ceiling
	}

	if !s.store.SaveBudget(budget) {
		return false
	}

	s.logger.Info("budget saved", "categories", len(budget))
	return true
}

// Budget returns the stored ceilings.
func (s *Service) Budget() map[string]float64 {
	return s.store.LoadBudget()
}

// Progress reports spend against every stored ceiling. Categories without
// a ceiling never appear, regardless of spend.
func (s *Service) Progress() map[string]CategoryProgress {
	budget := s.store.LoadBudget()
	spentByCategory := s.reports.TotalsByCategory(string(transaction.TypeExpense))

	progress := make(map[string]CategoryProgress, len(budget))
	for category, ceiling := range budget {
		spent := spentByCategory[category]

		// Stored ceilings are always positive; the zero guard only
		// protects against hand-edited storage.
		percentage := 0.0
		if ceiling > 0 {
			percentage = spent / ceiling * 100
		}

		progress[category] = CategoryProgress{
			Spent:      spent,
			Ceiling:    ceiling,
			Percentage: percentage,
		}
	}
	return progress
}
