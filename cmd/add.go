package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	errors "github.com/davinsyabanp/SakuKu/internal"
	"github.com/davinsyabanp/SakuKu/internal/notify"
	"github.com/davinsyabanp/SakuKu/internal/transaction"
)

var (
	addType        string
	addAmount      float64
	addCategory    string
	addDescription string
	addDate        string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	Long:  `Record an income or expense transaction in the ledger.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		date, err := parseDateFlag(addDate)
		if err != nil {
			deps.Notifier.Notify(err.Error(), notify.SeverityError)
			return err
		}

		if addCategory != "" && !isUICategory(addCategory) {
			deps.Notifier.Notify(
				fmt.Sprintf("Category %q is not one of the standard categories", addCategory),
				notify.SeverityInfo)
		}

		txn, err := deps.Ledger.Add(transaction.CreateTransactionDTO{
			Type:        addType,
			Amount:      addAmount,
			Category:    addCategory,
			Description: addDescription,
			Date:        date,
		})
		if err != nil {
			notifyFailure(deps.Notifier, err, "Error adding transaction")
			return err
		}

		deps.Notifier.Notify("Transaction added successfully", notify.SeveritySuccess)
		fmt.Println(mutedStyle.Render("id: " + txn.ID))
		return nil
	},
}

// parseDateFlag interprets an empty date as today, matching the original
// form's default.
func parseDateFlag(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse(transaction.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return date, nil
}

// notifyFailure surfaces an operation failure to the user, preferring the
// detailed validation message when one exists.
func notifyFailure(n notify.Notifier, err error, fallback string) {
	if appErr, ok := errors.IsAppError(err); ok {
		n.Notify(appErr.GetDetailedMessage(), notify.SeverityError)
		return
	}
	n.Notify(fallback, notify.SeverityError)
}

func init() {
	addCmd.Flags().StringVarP(&addType, "type", "t", "", "Transaction type: income or expense")
	addCmd.Flags().Float64VarP(&addAmount, "amount", "a", 0, "Amount, must be greater than 0")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category label")
	addCmd.Flags().StringVarP(&addDescription, "description", "m", "", "Description")
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Calendar date (YYYY-MM-DD), defaults to today")
}
