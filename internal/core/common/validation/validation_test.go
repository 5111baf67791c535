package validation_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errors "github.com/davinsyabanp/SakuKu/internal"
	"github.com/davinsyabanp/SakuKu/internal/core/common/validation"
)

func TestValidation(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Validation Suite")
}

var _ = Describe("ValidationBuilder", func() {
	It("should pass when every rule holds", func() {
		v := validation.NewValidator()
		v.Field("type", "expense").Required().OneOf(errors.ErrCodeInvalidType, "income", "expense")
		v.Field("amount", 12.5).Positive(errors.ErrCodeInvalidAmount)
		v.Field("date", time.Now()).Required()

		Expect(v.Validate()).To(BeNil())
	})

	It("should reject blank required strings", func() {
		v := validation.NewValidator()
		v.Field("description", "   ").Required()

		err := v.Validate()
		Expect(err).NotTo(BeNil())
		Expect(err.Type).To(Equal(errors.ErrorTypeValidation))
	})

	It("should reject zero and negative amounts", func() {
		for _, amount := range []float64{0, -1} {
			v := validation.NewValidator()
			v.Field("amount", amount).Positive(errors.ErrCodeInvalidAmount)
			Expect(v.Validate()).NotTo(BeNil())
		}
	})

	It("should reject values outside the allowed set", func() {
		v := validation.NewValidator()
		v.Field("type", "transfer").OneOf(errors.ErrCodeInvalidType, "income", "expense")

		err := v.Validate()
		Expect(err).NotTo(BeNil())
		Expect(err.GetDetailedMessage()).To(ContainSubstring("must be one of"))
	})

	It("should collect errors from every failing field", func() {
		v := validation.NewValidator()
		v.Field("amount", -3.0).Positive(errors.ErrCodeInvalidAmount)
		v.Field("description", "").Required()

		err := v.Validate()
		Expect(err).NotTo(BeNil())

		details, ok := err.Details.(errors.ValidationErrors)
		Expect(ok).To(BeTrue())
		Expect(details.Errors).To(HaveLen(2))
	})

	It("should enforce maximum string length", func() {
		long := make([]byte, 501)
		for i := range long {
			long[i] = 'a'
		}

		v := validation.NewValidator()
		v.Field("description", string(long)).MaxLength(500)
		Expect(v.Validate()).NotTo(BeNil())
	})
})
