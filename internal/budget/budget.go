package budget

// CategoryProgress reports spend against one category ceiling. Percentage
// is not clamped: over-budget categories exceed 100 and the presentation
// layer decides how to render that.
type CategoryProgress struct {
	Spent      float64 `json:"spent"`
	Ceiling    float64 `json:"ceiling"`
	Percentage float64 `json:"percentage"`
}

// IsOverBudget reports whether spending has passed the ceiling.
func (p CategoryProgress) IsOverBudget() bool {
	return p.Percentage > 100
}
