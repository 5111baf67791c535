package storage_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	transactionDatamodel "github.com/davinsyabanp/SakuKu/internal/core/datamodel/transaction"
	"github.com/davinsyabanp/SakuKu/internal/notify"
	"github.com/davinsyabanp/SakuKu/internal/storage"
)

func TestStorage(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Storage Suite")
}

// MockKV implements storage.KV for testing
type MockKV struct {
	entries map[string]string
	getErr  error
	setErr  error
}

func NewMockKV() *MockKV {
	return &MockKV{entries: map[string]string{}}
}

func (m *MockKV) Get(key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *MockKV) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.entries[key] = value
	return nil
}

var _ = Describe("Store", func() {
	var (
		kv       *MockKV
		recorder *notify.Recorder
		store    *storage.Store
	)

	BeforeEach(func() {
		kv = NewMockKV()
		recorder = notify.NewRecorder()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		store = storage.NewStore(kv, recorder, logger)
	})

	Describe("LoadTransactions", func() {
		It("should return an empty slice when the entry is absent", func() {
			Expect(store.LoadTransactions()).To(BeEmpty())
		})

		It("should return an empty slice when the entry is corrupt", func() {
			kv.entries[storage.KeyTransactions] = "{not json"
			Expect(store.LoadTransactions()).To(BeEmpty())
		})

		It("should return an empty slice when the backend is unreadable", func() {
			kv.getErr = errors.New("disk on fire")
			Expect(store.LoadTransactions()).To(BeEmpty())
		})

		It("should round-trip a saved collection", func() {
			saved := []transactionDatamodel.Transaction{
				{
					ID:          "t-1",
					Type:        "expense",
					Amount:      12.5,
					Category:    "food",
					Description: "Nasi goreng",
					Date:        "2024-01-05",
					Timestamp:   1704412800000,
				},
			}
			Expect(store.SaveTransactions(saved)).To(BeTrue())

			loaded := store.LoadTransactions()
			Expect(loaded).To(Equal(saved))
		})
	})

	Describe("SaveTransactions", func() {
		Context("when the backend write fails", func() {
			BeforeEach(func() {
				kv.setErr = errors.New("quota exceeded")
			})

			It("should return false and emit an error notification", func() {
				ok := store.SaveTransactions([]transactionDatamodel.Transaction{{ID: "t-1"}})
				Expect(ok).To(BeFalse())
				Expect(recorder.Has(notify.SeverityError)).To(BeTrue())
			})
		})

		It("should not notify on success", func() {
			Expect(store.SaveTransactions(nil)).To(BeTrue())
			Expect(recorder.Notifications).To(BeEmpty())
		})
	})

	Describe("Budget entry", func() {
		It("should return an empty map when the entry is absent", func() {
			Expect(store.LoadBudget()).To(BeEmpty())
		})

		It("should return an empty map when the entry is corrupt", func() {
			kv.entries[storage.KeyBudget] = "[1,2,3"
			Expect(store.LoadBudget()).To(BeEmpty())
		})

		It("should round-trip a saved budget", func() {
			budget := map[string]float64{"food": 100, "bills": 250.5}
			Expect(store.SaveBudget(budget)).To(BeTrue())
			Expect(store.LoadBudget()).To(Equal(budget))
		})

		It("should notify and return false on write failure", func() {
			kv.setErr = errors.New("quota exceeded")
			Expect(store.SaveBudget(map[string]float64{"food": 1})).To(BeFalse())
			Expect(recorder.Has(notify.SeverityError)).To(BeTrue())
		})

		It("should keep transactions and budget independent", func() {
			Expect(store.SaveBudget(map[string]float64{"food": 100})).To(BeTrue())
			Expect(store.LoadTransactions()).To(BeEmpty())
		})
	})
})
