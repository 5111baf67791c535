package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/davinsyabanp/SakuKu/internal/transaction"
)

// uiCategories is the fixed set the forms of the original app offered.
// The ledger does not enforce it; commands only warn on anything else.
var uiCategories = []string{
	"food", "transport", "entertainment", "shopping",
	"bills", "healthcare", "education", "other",
}

func isUICategory(category string) bool {
	for _, c := range uiCategories {
		if c == category {
			return true
		}
	}
	return false
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	overStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// formatCurrency renders an amount in the original app's id-ID style:
// dot-grouped integer part, comma decimal separator.
func formatCurrency(symbol string, amount float64) string {
	neg := amount < 0
	fixed := strconv.FormatFloat(math.Abs(amount), 'f', 2, 64)

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	out := fmt.Sprintf("%s %s,%s", symbol, grouped.String(), fracPart)
	if neg {
		out = "-" + out
	}
	return out
}

func typeBadge(t transaction.Type) string {
	if t == transaction.TypeIncome {
		return incomeStyle.Render(fmt.Sprintf("%-9s", "income"))
	}
	return expenseStyle.Render(fmt.Sprintf("%-9s", "expense"))
}

// amountCell pads before styling so ANSI codes never skew column widths.
func amountCell(symbol string, t transaction.Transaction, width int) string {
	s := formatCurrency(symbol, t.Amount)
	if t.Type == transaction.TypeIncome {
		return incomeStyle.Render(fmt.Sprintf("%*s", width, "+"+s))
	}
	return expenseStyle.Render(fmt.Sprintf("%*s", width, "-"+s))
}

// bar renders a proportional horizontal bar of at most width cells.
func bar(value, max float64, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	cells := int(value / max * float64(width))
	if cells < 1 {
		cells = 1
	}
	if cells > width {
		cells = width
	}
	return strings.Repeat("█", cells)
}
