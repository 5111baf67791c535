package file_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/davinsyabanp/SakuKu/internal/storage/file"
)

func TestFileKV(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "File KV Suite")
}

var _ = Describe("File KV", func() {
	var (
		dir string
		kv  *file.KV
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()

		var err error
		kv, err = file.New(dir)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should create the data directory if missing", func() {
		nested := filepath.Join(dir, "a", "b")
		_, err := file.New(nested)
		Expect(err).NotTo(HaveOccurred())

		info, err := os.Stat(nested)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
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

	It("should overwrite an existing value", func() {
		Expect(kv.Set("financeTrackerBudget", `{"food":100}`)).To(Succeed())
		Expect(kv.Set("financeTrackerBudget", `{"food":250}`)).To(Succeed())

		value, ok, err := kv.Get("financeTrackerBudget")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal(`{"food":250}`))
	})

	It("should keep keys in separate files", func() {
		Expect(kv.Set("financeTrackerData", "[]")).To(Succeed())
		Expect(kv.Set("financeTrackerBudget", "{}")).To(Succeed())

		Expect(filepath.Join(dir, "financeTrackerData.json")).To(BeARegularFile())
		Expect(filepath.Join(dir, "financeTrackerBudget.json")).To(BeARegularFile())
	})

	It("should leave no temp files behind after a write", func() {
		Expect(kv.Set("financeTrackerData", "[]")).To(Succeed())

		matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
		Expect(err).NotTo(HaveOccurred())
		Expect(matches).To(BeEmpty())
	})
})
