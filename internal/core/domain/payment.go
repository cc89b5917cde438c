package domain

import "time"

// PaymentType classifies a ledger entry made by an admin.
type PaymentType string

const (
	PaymentTypePayment    PaymentType = "payment"
	PaymentTypePenalty    PaymentType = "penalty"
	PaymentTypeAdjustment PaymentType = "adjustment"
)

// Payment is an administrative tab entry. A positive amount settles debt
// (the member paid), a negative amount is a penalty and increases debt.
type Payment struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	Member    Ref         `json:"member" bson:"member"`
	Amount    float64     `json:"amount" bson:"amount"`
	Type      PaymentType `json:"type" bson:"type"`
	Date      time.Time   `json:"date" bson:"date"`
	Notes     string      `json:"notes,omitempty" bson:"notes,omitempty"`
	Admin     Ref         `json:"admin" bson:"admin"`
	CreatedAt time.Time   `json:"created_at" bson:"createdAt"`
}

// ValidPaymentType reports whether t is a known payment type.
func ValidPaymentType(t PaymentType) bool {
	switch t {
	case PaymentTypePayment, PaymentTypePenalty, PaymentTypeAdjustment:
		return true
	}
	return false
}
