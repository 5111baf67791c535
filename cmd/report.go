package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/davinsyabanp/SakuKu/internal/transaction"
)

var reportTypeFilter string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Spending reports",
	Long:  `Aggregate reports over the ledger: per-category totals and monthly trends.`,
}

var reportCategoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Totals per category",
	Long:  `Show amount totals grouped by category, largest first. Defaults to expenses only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		totals := deps.Reports.TotalsByCategory(reportTypeFilter)
		if len(totals) == 0 {
			fmt.Println(mutedStyle.Render("No transactions found."))
			return nil
		}

		categories := make([]string, 0, len(totals))
		maxTotal := 0.0
		for category, total := range totals {
			categories = append(categories, category)
			if total > maxTotal {
				maxTotal = total
			}
		}
		sort.Slice(categories, func(i, j int) bool {
			if totals[categories[i]] != totals[categories[j]] {
				return totals[categories[i]] > totals[categories[j]]
			}
			return categories[i] < categories[j]
		})

		symbol := deps.Config.Currency.Symbol
		for _, category := range categories {
			fmt.Printf("%-14s %18s  %s\n",
				category,
				formatCurrency(symbol, totals[category]),
				expenseStyle.Render(bar(totals[category], maxTotal, 30)))
		}
		return nil
	},
}

var reportMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Monthly income and expense trend",
	Long:  `Show income and expense totals per month, oldest month first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		series := deps.Reports.MonthlySeries()
		if len(series) == 0 {
			fmt.Println(mutedStyle.Render("No transactions found."))
			return nil
		}

		// "YYYY-MM" keys sort chronologically as plain strings.
		months := make([]string, 0, len(series))
		maxTotal := 0.0
		for month, totals := range series {
			months = append(months, month)
			if totals.Income > maxTotal {
				maxTotal = totals.Income
			}
			if totals.Expenses > maxTotal {
				maxTotal = totals.Expenses
			}
		}
		sort.Strings(months)

		symbol := deps.Config.Currency.Symbol
		for _, month := range months {
			totals := series[month]
			fmt.Println(headerStyle.Render(month))
			fmt.Printf("  income   %18s  %s\n",
				formatCurrency(symbol, totals.Income),
				incomeStyle.Render(bar(totals.Income, maxTotal, 30)))
			fmt.Printf("  expenses %18s  %s\n",
				formatCurrency(symbol, totals.Expenses),
				expenseStyle.Render(bar(totals.Expenses, maxTotal, 30)))
		}
		return nil
	},
}

func init() {
	reportCategoryCmd.Flags().StringVarP(&reportTypeFilter, "type", "t", string(transaction.TypeExpense),
		"Restrict to one type (income or expense), empty for both")
}
