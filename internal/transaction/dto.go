package transaction

import (
	"time"

	errors "github.com/davinsyabanp/SakuKu/internal"
	"github.com/davinsyabanp/SakuKu/internal/core/common/validation"
)

// CreateTransactionDTO carries the fields a caller supplies when recording
// a transaction; id and timestamp are generated by the ledger.
type CreateTransactionDTO struct {
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

func (dto CreateTransactionDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("type", dto.Type).
		Required().
		OneOf(errors.ErrCodeInvalidType, string(TypeIncome), string(TypeExpense))
	v.Field("amount", dto.Amount).
		Positive(errors.ErrCodeInvalidAmount)
	v.Field("category", dto.Category).
		Required()
	v.Field("description", dto.Description).
		Required().
		MaxLength(500)
	v.Field("date", dto.Date).
		Required()
	return v.Validate()
}

// UpdateTransactionDTO is a partial update: nil fields are left untouched.
type UpdateTransactionDTO struct {
	Type        *string    `json:"type,omitempty"`
	Amount      *float64   `json:"amount,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// Validate re-checks only the fields being changed, so an update can never
// push a stored record outside the creation-time invariants.
func (dto UpdateTransactionDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if dto.Type != nil {
		v.Field("type", *dto.Type).
			Required().
			OneOf(errors.ErrCodeInvalidType, string(TypeIncome), string(TypeExpense))
	}
	if dto.Amount != nil {
		v.Field("amount", *dto.Amount).
			Positive(errors.ErrCodeInvalidAmount)
	}
	if dto.Category != nil {
		v.Field("category", *dto.Category).
			Required()
	}
	if dto.Description != nil {
		v.Field("description", *dto.Description).
			Required().
			MaxLength(500)
	}
	if dto.Date != nil {
		v.Field("date", *dto.Date).
			Required()
	}
	return v.Validate()
}

// IsEmpty reports whether the update changes nothing.
func (dto UpdateTransactionDTO) IsEmpty() bool {
	return dto.Type == nil && dto.Amount == nil && dto.Category == nil &&
		dto.Description == nil && dto.Date == nil
}

// Filters narrows List results. All fields are optional and combine with
// AND semantics; Search matches the description case-insensitively.
type Filters struct {
	Type     string
	Category string
	Search   string
}
