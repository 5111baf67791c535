package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davinsyabanp/SakuKu/internal/transaction"
)

var (
	listType     string
	listCategory string
	listSearch   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	Long:  `List transactions newest first, optionally filtered by type, category and description search.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		txns := deps.Ledger.List(transaction.Filters{
			Type:     listType,
			Category: listCategory,
			Search:   listSearch,
		})

		if len(txns) == 0 {
			fmt.Println(mutedStyle.Render("No transactions found. Add your first transaction to get started!"))
			return nil
		}

		symbol := deps.Config.Currency.Symbol
		fmt.Println(headerStyle.Render(fmt.Sprintf("%-12s %-28s %-14s %-9s %18s  %s",
			"DATE", "DESCRIPTION", "CATEGORY", "TYPE", "AMOUNT", "ID")))
		for _, t := range txns {
			fmt.Printf("%-12s %-28s %-14s %s %s  %s\n",
				t.Date.Format(transaction.DateLayout),
				truncate(t.Description, 28),
				truncate(t.Category, 14),
				typeBadge(t.Type),
				amountCell(symbol, t, 18),
				mutedStyle.Render(t.ID))
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "Filter by type: income or expense")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by exact category")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive description search")
}
