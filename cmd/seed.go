package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	transactionDatamodel "github.com/davinsyabanp/SakuKu/internal/core/datamodel/transaction"
	"github.com/davinsyabanp/SakuKu/internal/notify"
	"github.com/davinsyabanp/SakuKu/internal/transaction"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed sample data",
	Long:  `Seed the ledger with sample transactions and a sample budget for development and testing purposes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		if clearData {
			if !deps.Store.SaveTransactions([]transactionDatamodel.Transaction{}) {
				return fmt.Errorf("failed to clear transactions")
			}
			if !deps.Store.SaveBudget(map[string]float64{}) {
				return fmt.Errorf("failed to clear budget")
			}
			fmt.Println("Cleared existing data")
		}

		now := time.Now()
		thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		lastMonth := thisMonth.AddDate(0, -1, 0)

		samples := []transaction.CreateTransactionDTO{
			{Type: "income", Amount: 8500000, Category: "other", Description: "Monthly salary", Date: lastMonth},
			{Type: "expense", Amount: 1250000, Category: "bills", Description: "Rent and electricity", Date: lastMonth.AddDate(0, 0, 2)},
			{Type: "expense", Amount: 350000, Category: "food", Description: "Groceries", Date: lastMonth.AddDate(0, 0, 5)},
			{Type: "expense", Amount: 45000, Category: "food", Description: "Coffee with friends", Date: lastMonth.AddDate(0, 0, 12)},
			{Type: "expense", Amount: 150000, Category: "transport", Description: "Fuel", Date: lastMonth.AddDate(0, 0, 18)},
			{Type: "income", Amount: 8500000, Category: "other", Description: "Monthly salary", Date: thisMonth},
			{Type: "expense", Amount: 420000, Category: "food", Description: "Groceries", Date: thisMonth.AddDate(0, 0, 3)},
			{Type: "expense", Amount: 200000, Category: "entertainment", Description: "Cinema night", Date: thisMonth.AddDate(0, 0, 7)},
			{Type: "expense", Amount: 90000, Category: "healthcare", Description: "Pharmacy", Date: thisMonth.AddDate(0, 0, 9)},
		}

		for _, dto := range samples {
			if _, err := deps.Ledger.Add(dto); err != nil {
				return fmt.Errorf("failed to seed transaction %q: %w", dto.Description, err)
			}
		}
		fmt.Printf("Seeded %d transactions\n", len(samples))

		budget := map[string]float64{
			"food":          1000000,
			"transport":     400000,
			"entertainment": 300000,
			"bills":         1500000,
		}
		if !deps.Budget.SetBudget(budget) {
			return fmt.Errorf("failed to seed budget")
		}
		fmt.Printf("Seeded budget for %d categories\n", len(budget))

		deps.Notifier.Notify("Sample data ready", notify.SeveritySuccess)
		return nil
	},
}
