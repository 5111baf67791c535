package sqlite_test

import (
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/davinsyabanp/SakuKu/internal/storage/sqlite"
)

func TestSQLiteKV(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "SQLite KV Suite")
}

var _ = Describe("SQLite KV", func() {
	var kv *sqlite.KV

	BeforeEach(func() {
		path := filepath.Join(GinkgoT().TempDir(), "sakuku.db")

		var err error
		kv, err = sqlite.New(path)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should report absent keys without error", func() {
		_, ok, err := kv.Get("financeTrackerData")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("should round-trip a value", func() {
		Expect(kv.Set("financeTrackerData", `[{"id":"t-1"}]`)).To(Succeed())

		value, ok, err := kv.Get("financeTrackerData")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal(`[{"id":"t-1"}]`))
	})

	It("should upsert on repeated writes to one key", func() {
		Expect(kv.Set("financeTrackerBudget", `{"food":100}`)).To(Succeed())
		Expect(kv.Set("financeTrackerBudget", `{"food":250}`)).To(Succeed())

		value, _, err := kv.Get("financeTrackerBudget")
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(`{"food":250}`))
	})

	It("should store keys independently", func() {
		Expect(kv.Set("financeTrackerData", "[]")).To(Succeed())
		Expect(kv.Set("financeTrackerBudget", "{}")).To(Succeed())

		data, _, err := kv.Get("financeTrackerData")
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal("[]"))

		budget, _, err := kv.Get("financeTrackerBudget")
		Expect(err).NotTo(HaveOccurred())
		Expect(budget).To(Equal("{}"))
	})
})
