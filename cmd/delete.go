package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davinsyabanp/SakuKu/internal/notify"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction",
	Long:  `Delete a transaction by id. Asks for confirmation unless --yes is passed.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		if !skipConfirm && !confirm("Are you sure you want to delete this transaction?") {
			deps.Notifier.Notify("Deletion cancelled", notify.SeverityInfo)
			return nil
		}

		if err := deps.Ledger.Delete(args[0]); err != nil {
			notifyFailure(deps.Notifier, err, "Error deleting transaction")
			return err
		}

		deps.Notifier.Notify("Transaction deleted successfully", notify.SeveritySuccess)
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
