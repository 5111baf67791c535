package report_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/davinsyabanp/SakuKu/internal/report"
	"github.com/davinsyabanp/SakuKu/internal/transaction"
)

func TestReportService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Report Service Suite")
}

// MockLedger implements report.Ledger for testing
type MockLedger struct {
	txns []transaction.Transaction
}

func (m *MockLedger) All() []transaction.Transaction {
	return m.txns
}

func (m *MockLedger) AddFixture(txnType, category string, amount float64, date time.Time) {
	m.txns = append(m.txns, transaction.Transaction{
		ID:       "fixture",
		Type:     transaction.Type(txnType),
		Amount:   amount,
		Category: category,
		Date:     date,
	})
}

func onDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var _ = Describe("Report Service", func() {
	var (
		ledger  *MockLedger
		service *report.Service
	)

	BeforeEach(func() {
		ledger = &MockLedger{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = report.NewService(ledger, logger)
	})

	Describe("Balance", func() {
		Context("with an empty ledger", func() {
			It("should return all zeros", func() {
				b := service.Balance()
				Expect(b.Balance).To(BeZero())
				Expect(b.TotalIncome).To(BeZero())
				Expect(b.TotalExpenses).To(BeZero())
			})
		})

		Context("with mixed transactions", func() {
			BeforeEach(func() {
				ledger.AddFixture("income", "other", 100, onDay(2024, time.January, 5))
				ledger.AddFixture("expense", "food", 30, onDay(2024, time.January, 6))
			})

			It("should sum income and expenses separately", func() {
				b := service.Balance()
				Expect(b.TotalIncome).To(Equal(100.0))
				Expect(b.TotalExpenses).To(Equal(30.0))
				Expect(b.Balance).To(Equal(70.0))
			})
		})
	})

	Describe("TotalsByCategory", func() {
		BeforeEach(func() {
			ledger.AddFixture("expense", "food", 20, onDay(2024, time.January, 5))
			ledger.AddFixture("expense", "food", 10, onDay(2024, time.January, 8))
			ledger.AddFixture("income", "food", 5, onDay(2024, time.January, 9))
			ledger.AddFixture("expense", "transport", 15, onDay(2024, time.January, 10))
		})

		It("should sum per category restricted to the given type", func() {
			totals := service.TotalsByCategory("expense")
			Expect(totals).To(HaveLen(2))
			Expect(totals["food"]).To(Equal(30.0))
			Expect(totals["transport"]).To(Equal(15.0))
		})

		It("should include every type when the filter is empty", func() {
			totals := service.TotalsByCategory("")
			Expect(totals["food"]).To(Equal(35.0))
		})

		It("should omit categories with no matching transactions", func() {
			totals := service.TotalsByCategory("income")
			Expect(totals).NotTo(HaveKey("transport"))
		})
	})

	Describe("MonthlySeries", func() {
		It("should accumulate income and expenses per month bucket", func() {
			ledger.AddFixture("income", "other", 50, onDay(2024, time.January, 5))
			ledger.AddFixture("expense", "food", 10, onDay(2024, time.January, 20))

			series := service.MonthlySeries()
			Expect(series).To(HaveLen(1))
			Expect(series["2024-01"].Income).To(Equal(50.0))
			Expect(series["2024-01"].Expenses).To(Equal(10.0))
		})

		It("should use independent buckets per month", func() {
			ledger.AddFixture("income", "other", 50, onDay(2024, time.January, 5))
			ledger.AddFixture("expense", "food", 25, onDay(2024, time.February, 1))

			series := service.MonthlySeries()
			Expect(series).To(HaveLen(2))
			Expect(series["2024-01"].Income).To(Equal(50.0))
			Expect(series["2024-01"].Expenses).To(BeZero())
			Expect(series["2024-02"].Expenses).To(Equal(25.0))
		})

		It("should zero-pad month keys", func() {
			ledger.AddFixture("expense", "food", 5, onDay(2024, time.March, 3))

			series := service.MonthlySeries()
			Expect(series).To(HaveKey("2024-03"))
		})

		It("should return an empty map for an empty ledger", func() {
			Expect(service.MonthlySeries()).To(BeEmpty())
		})
	})
})
