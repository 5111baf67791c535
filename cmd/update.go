package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/davinsyabanp/SakuKu/internal/notify"
	"github.com/davinsyabanp/SakuKu/internal/transaction"
)

var (
	updateType        string
	updateAmount      float64
	updateCategory    string
	updateDescription string
	updateDate        string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a transaction",
	Long:  `Update the given fields of an existing transaction; anything not passed stays as it is.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		dto := transaction.UpdateTransactionDTO{}
		if cmd.Flags().Changed("type") {
			dto.Type = &updateType
		}
		if cmd.Flags().Changed("amount") {
			dto.Amount = &updateAmount
		}
		if cmd.Flags().Changed("category") {
			dto.Category = &updateCategory
		}
		if cmd.Flags().Changed("description") {
			dto.Description = &updateDescription
		}
		if cmd.Flags().Changed("date") {
			var date time.Time
			date, err = parseDateFlag(updateDate)
			if err != nil {
				deps.Notifier.Notify(err.Error(), notify.SeverityError)
				return err
			}
			dto.Date = &date
		}

		if dto.IsEmpty() {
			deps.Notifier.Notify("Nothing to update: pass at least one field flag", notify.SeverityInfo)
			return nil
		}

		if _, err := deps.Ledger.Update(args[0], dto); err != nil {
			notifyFailure(deps.Notifier, err, "Error updating transaction")
			return err
		}

		deps.Notifier.Notify("Transaction updated successfully", notify.SeveritySuccess)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateType, "type", "t", "", "New type: income or expense")
	updateCmd.Flags().Float64VarP(&updateAmount, "amount", "a", 0, "New amount, must be greater than 0")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "New category label")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "m", "", "New description")
	updateCmd.Flags().StringVarP(&updateDate, "date", "d", "", "New calendar date (YYYY-MM-DD)")
}
