package report

// Balance summarizes the whole ledger. All sums are plain float64
// accumulation; precision follows IEEE 754, not currency rounding rules.
type Balance struct {
	Balance       float64 `json:"balance"`
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
}

// MonthlyTotals holds the independent income and expense sums for one
// "YYYY-MM" bucket.
type MonthlyTotals struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}
