package transaction

import (
	"time"

	transactionDatamodel "github.com/davinsyabanp/SakuKu/internal/core/datamodel/transaction"
)

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// DateLayout is the calendar-day format used on disk and at the CLI.
const DateLayout = "2006-01-02"

// Transaction is a single ledger record. ID and Timestamp are assigned at
// creation and never change; Date is the user-facing calendar day used for
// filtering, sorting and month bucketing, while Timestamp is audit-only.
type Transaction struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Timestamp   time.Time `json:"timestamp"`
}

func (t *Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// MonthKey returns the zero-padded "YYYY-MM" bucket for the transaction date.
func (t *Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}

func ToDataModel(t *Transaction) *transactionDatamodel.Transaction {
	return &transactionDatamodel.Transaction{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date.Format(DateLayout),
		Timestamp:   t.Timestamp.UnixMilli(),
	}
}

func FromDataModel(d *transactionDatamodel.Transaction) *Transaction {
	// Unparseable dates degrade to the zero time rather than dropping the
	// record; such rows sort last and bucket under "0001-01".
	date, _ := time.Parse(DateLayout, d.Date)

	return &Transaction{
		ID:          d.ID,
		Type:        Type(d.Type),
		Amount:      d.Amount,
		Category:    d.Category,
		Description: d.Description,
		Date:        date,
		Timestamp:   time.UnixMilli(d.Timestamp),
	}
}

func FromDataModelSlice(records []transactionDatamodel.Transaction) []Transaction {
	result := make([]Transaction, len(records))
	for i := range records {
		result[i] = *FromDataModel(&records[i])
	}
	return result
}
