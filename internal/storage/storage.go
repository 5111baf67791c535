package storage

import (
	"encoding/json"
	"log/slog"

	transactionDatamodel "github.com/davinsyabanp/SakuKu/internal/core/datamodel/transaction"
	"github.com/davinsyabanp/SakuKu/internal/notify"
)

// Storage keys for the two persisted entries. The values are carried over
// from the original web app so existing exports stay readable.
const (
	KeyTransactions = "financeTrackerData"
	KeyBudget       = "financeTrackerBudget"
)

// KV is the durable key-value storage a Store persists into. Implementations
// live in the file and sqlite subpackages.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Store is the persistence adapter: it owns serialization of the transaction
// collection and the budget map. Reads fail soft (empty defaults), writes
// report failure through the notifier and return false.
type Store struct {
	kv       KV
	notifier notify.Notifier
	logger   *slog.Logger
}

func NewStore(kv KV, notifier notify.Notifier, logger *slog.Logger) *Store {
	return &Store{
		kv:       kv,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *Store) LoadTransactions() []transactionDatamodel.Transaction {
	raw, ok, err := s.kv.Get(KeyTransactions)
	if err != nil {
		s.logger.Error("failed to read transactions entry", "key", KeyTransactions, "error", err)
		return []transactionDatamodel.Transaction{}
	}
	if !ok {
		return []transactionDatamodel.Transaction{}
	}

	var txns []transactionDatamodel.Transaction
	if err := json.Unmarshal([]byte(raw), &txns); err != nil {
		s.logger.Error("transactions entry is corrupt, treating as empty", "key", KeyTransactions, "error", err)
		return []transactionDatamodel.Transaction{}
	}
	if txns == nil {
		txns = []transactionDatamodel.Transaction{}
	}
	return txns
}

func (s *Store) SaveTransactions(txns []transactionDatamodel.Transaction) bool {
	raw, err := json.Marshal(txns)
	if err != nil {
		s.logger.Error("failed to marshal transactions", "error", err)
		s.notifier.Notify("Error saving data", notify.SeverityError)
		return false
	}

	if err := s.kv.Set(KeyTransactions, string(raw)); err != nil {
		s.logger.Error("failed to write transactions entry", "key", KeyTransactions, "error", err)
		s.notifier.Notify("Error saving data", notify.SeverityError)
		return false
	}
	return true
}

func (s *Store) LoadBudget() map[string]float64 {
	raw, ok, err := s.kv.Get(KeyBudget)
	if err != nil {
		s.logger.Error("failed to read budget entry", "key", KeyBudget, "error", err)
		return map[string]float64{}
	}
	if !ok {
		return map[string]float64{}
	}

	var budget map[string]float64
	if err := json.Unmarshal([]byte(raw), &budget); err != nil {
		s.logger.Error("budget entry is corrupt, treating as empty", "key", KeyBudget, "error", err)
		return map[string]float64{}
	}
	if budget == nil {
		budget = map[string]float64{}
	}
	return budget
}

func (s *Store) SaveBudget(budget map[string]float64) bool {
	raw, err := json.Marshal(budget)
	if err != nil {
		s.logger.Error("failed to marshal budget", "error", err)
		s.notifier.Notify("Error saving budget", notify.SeverityError)
		return false
	}

	if err := s.kv.Set(KeyBudget, string(raw)); err != nil {
		s.logger.Error("failed to write budget entry", "key", KeyBudget, "error", err)
		s.notifier.Notify("Error saving budget", notify.SeverityError)
		return false
	}
	return true
}
