package report

import (
	"log/slog"

	"github.com/davinsyabanp/SakuKu/internal/transaction"
)

// Ledger supplies the full transaction collection. Each aggregation call
// fetches a fresh snapshot, so results always reflect the latest
// persisted state.
type Ledger interface {
	All() []transaction.Transaction
}

// Service derives summary statistics from the ledger's contents.
type Service struct {
	ledger Ledger
	logger *slog.Logger
}

func NewService(ledger Ledger, logger *slog.Logger) *Service {
	return &Service{
		ledger: ledger,
		logger: logger,
	}
}

// Balance returns total income, total expenses and their difference.
// An empty ledger yields all zeros.
func (s *Service) Balance() Balance {
	var b Balance
	for _, t := range s.ledger.All() {
		if t.IsIncome() {
			b.TotalIncome += t.Amount
		} else {
			b.TotalExpenses += t.Amount
		}
	}
	b.Balance = b.TotalIncome - b.TotalExpenses

	s.logger.Debug("computed balance",
		"balance", b.Balance,
		"total_income", b.TotalIncome,
		"total_expenses", b.TotalExpenses)
	return b
}

// TotalsByCategory sums amounts grouped by category, optionally restricted
// to one transaction type. Categories without matching transactions are
// absent from the result.
func (s *Service) TotalsByCategory(typeFilter string) map[string]float64 {
	totals := make(map[string]float64)
	for _, t := range s.ledger.All() {
		if typeFilter != "" && string(t.Type) != typeFilter {
			continue
		}
		totals[t.Category] += t.Amount
	}
	return totals
}

// MonthlySeries buckets every transaction by the year-month of its date.
// Keys are zero-padded "YYYY-MM", so lexicographic order is chronological.
func (s *Service) MonthlySeries() map[string]MonthlyTotals {
	series := make(map[string]MonthlyTotals)
	for _, t := range s.ledger.All() {
		key := t.MonthKey()
		bucket := series[key]
		if t.IsIncome() {
			bucket.Income += t.Amount
		} else {
			bucket.Expenses += t.Amount
		}
		series[key] = bucket
	}
	return series
}
