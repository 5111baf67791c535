package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show current balance",
	Long:  `Show the current balance together with total income and total expenses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		b := deps.Reports.Balance()
		symbol := deps.Config.Currency.Symbol

		balanceText := formatCurrency(symbol, b.Balance)
		if b.Balance >= 0 {
			balanceText = incomeStyle.Render(balanceText)
		} else {
			balanceText = expenseStyle.Render(balanceText)
		}

		fmt.Println(headerStyle.Render("Current Balance"))
		fmt.Printf("  %s\n\n", balanceText)
		fmt.Printf("  %-16s %s\n", "Total Income", incomeStyle.Render(formatCurrency(symbol, b.TotalIncome)))
		fmt.Printf("  %-16s %s\n", "Total Expenses", expenseStyle.Render(formatCurrency(symbol, b.TotalExpenses)))
		return nil
	},
}
