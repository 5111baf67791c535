package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	errors "github.com/davinsyabanp/SakuKu/internal"
	"github.com/davinsyabanp/SakuKu/internal/notify"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Per-category spending budgets",
	Long:  `Set per-category spending ceilings and review spend against them.`,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set category=amount ...",
	Short: "Replace the budget",
	Long: `Replace the whole budget map. Every argument is category=amount;
categories left out lose their ceiling, and non-positive amounts are dropped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		ceilings := make(map[string]float64, len(args))
		for _, arg := range args {
			category, raw, ok := strings.Cut(arg, "=")
			if !ok {
				err := fmt.Errorf("invalid budget entry %q, expected category=amount", arg)
				deps.Notifier.Notify(err.Error(), notify.SeverityError)
				return err
			}
			amount, parseErr := strconv.ParseFloat(raw, 64)
			if parseErr != nil {
				err := fmt.Errorf("invalid amount in %q", arg)
				deps.Notifier.Notify(err.Error(), notify.SeverityError)
				return err
			}
			if !isUICategory(category) {
				deps.Notifier.Notify(
					fmt.Sprintf("Category %q is not one of the standard categories", category),
					notify.SeverityInfo)
			}
			ceilings[category] = amount
		}

		if !deps.Budget.SetBudget(ceilings) {
			return errors.ErrBudgetNotSaved
		}

		deps.Notifier.Notify("Budget updated successfully", notify.SeveritySuccess)
		return nil
	},
}

var budgetStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Spend against each ceiling",
	Long:  `Show expense totals against every stored budget ceiling.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		progress := deps.Budget.Progress()
		if len(progress) == 0 {
			fmt.Println(mutedStyle.Render("No budget set. Use 'sakuku budget set' to add ceilings."))
			return nil
		}

		categories := make([]string, 0, len(progress))
		for category := range progress {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		symbol := deps.Config.Currency.Symbol
		for _, category := range categories {
			p := progress[category]

			// Bars cap at the ceiling; the percentage carries the overflow.
			shown := p.Spent
			if shown > p.Ceiling {
				shown = p.Ceiling
			}
			rendered := bar(shown, p.Ceiling, 30)

			status := fmt.Sprintf("%s / %s (%.0f%%)",
				formatCurrency(symbol, p.Spent),
				formatCurrency(symbol, p.Ceiling),
				p.Percentage)
			if p.IsOverBudget() {
				rendered = overStyle.Render(rendered)
				status = overStyle.Render(status + " over budget")
			} else {
				rendered = incomeStyle.Render(rendered)
			}

			fmt.Printf("%-14s %-30s %s\n", category, rendered, status)
		}
		return nil
	},
}
