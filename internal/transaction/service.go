package transaction

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	errors "github.com/davinsyabanp/SakuKu/internal"
	transactionDatamodel "github.com/davinsyabanp/SakuKu/internal/core/datamodel/transaction"
)

// Store is the persistence adapter the ledger writes through. Every
// operation reloads the full collection, mutates it and writes it back;
// the ledger itself holds no state between calls.
type Store interface {
	LoadTransactions() []transactionDatamodel.Transaction
	SaveTransactions(txns []transactionDatamodel.Transaction) bool
}

// Service is the ledger: the authoritative store and mutator of
// transaction records.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Add validates the input, assigns a fresh id and creation timestamp, and
// appends the record to the stored collection.
func (s *Service) Add(dto CreateTransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("transaction validation failed", "error", err)
		return nil, err
	}

	txn := &Transaction{
		ID:          uuid.NewString(),
		Type:        Type(dto.Type),
		Amount:      dto.Amount,
		Category:    dto.Category,
		Description: dto.Description,
		Date:        dto.Date,
		Timestamp:   time.Now(),
	}

	records := s.store.LoadTransactions()
	records = append(records, *ToDataModel(txn))

	if !s.store.SaveTransactions(records) {
		return nil, errors.ErrTransactionNotSaved
	}

	s.logger.Info("transaction added",
		"transaction_id", txn.ID,
		"type", txn.Type,
		"amount", txn.Amount,
		"category", txn.Category)

	return txn, nil
}

// Update merges the set fields of dto over the stored record. ID and
// Timestamp are immutable; unknown ids fail without touching storage.
func (s *Service) Update(id string, dto UpdateTransactionDTO) (*Transaction, error) {
	if id == "" {
		return nil, errors.ErrInvalidTransactionID
	}
	if err := dto.Validate(); err != nil {
		s.logger.Error("transaction update validation failed", "error", err, "transaction_id", id)
		return nil, err
	}

	records := s.store.LoadTransactions()
	idx := indexOf(records, id)
	if idx < 0 {
		s.logger.Warn("transaction not found for update", "transaction_id", id)
		return nil, errors.ErrTransactionNotFound
	}

	txn := FromDataModel(&records[idx])
	if dto.Type != nil {
		txn.Type = Type(*dto.Type)
	}
	if dto.Amount != nil {
		txn.Amount = *dto.Amount
	}
	if dto.Category != nil {
		txn.Category = *dto.Category
	}
	if dto.Description != nil {
		txn.Description = *dto.Description
	}
	if dto.Date != nil {
		txn.Date = *dto.Date
	}
	records[idx] = *ToDataModel(txn)

	if !s.store.SaveTransactions(records) {
		return nil, errors.ErrTransactionNotSaved
	}

	s.logger.Info("transaction updated", "transaction_id", id)
	return txn, nil
}

// Delete removes exactly one record by id. Confirmation is the caller's
// concern; the ledger deletes unconditionally once invoked.
func (s *Service) Delete(id string) error {
	if id == "" {
		return errors.ErrInvalidTransactionID
	}

	records := s.store.LoadTransactions()
	idx := indexOf(records, id)
	if idx < 0 {
		s.logger.Warn("transaction not found for delete", "transaction_id", id)
		return errors.ErrTransactionNotFound
	}

	records = append(records[:idx], records[idx+1:]...)

	if !s.store.SaveTransactions(records) {
		return errors.ErrTransactionNotSaved
	}

	s.logger.Info("transaction deleted", "transaction_id", id)
	return nil
}

// List returns the stored transactions matching the filters, newest date
// first. The sort is stable, so equal dates keep their stored order.
func (s *Service) List(filters Filters) []Transaction {
	txns := FromDataModelSlice(s.store.LoadTransactions())

	filtered := txns[:0]
	search := strings.ToLower(filters.Search)
	for _, t := range txns {
		if filters.Type != "" && string(t.Type) != filters.Type {
			continue
		}
		if filters.Category != "" && t.Category != filters.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	return filtered
}

// All returns the full stored collection in stored order, for aggregation.
func (s *Service) All() []Transaction {
	return FromDataModelSlice(s.store.LoadTransactions())
}

func indexOf(records []transactionDatamodel.Transaction, id string) int {
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}
	return -1
}
