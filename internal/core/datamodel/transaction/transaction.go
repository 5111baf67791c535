package transaction

// Transaction is the persisted shape of a ledger record. The whole
// collection is serialized as one JSON array under a single storage key,
// so field names here define the on-disk format.
type Transaction struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Timestamp   int64   `json:"timestamp"`
}
