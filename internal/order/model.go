package order

import (
	"time"

	"hostel-store/internal/cart"

	"github.com/shopspring/decimal"
)

// Status moves strictly forward and is never transitioned by this
// application; changes happen out of band on the remote service.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDelivered  Status = "delivered"
)

// PaymentMethod is a recorded label of intent, not a processed
// transaction. The wire values are the ones the orders table stores.
type PaymentMethod string

const (
	MethodCashOnDelivery PaymentMethod = "cod"
	MethodMobileWallet   PaymentMethod = "upi"
	MethodCard           PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCashOnDelivery, MethodMobileWallet, MethodCard:
		return true
	}
	return false
}

// Order is a server-recorded snapshot of a completed checkout. Once
// created it is only ever read back, never mutated here.
type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Items         []cart.Item     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Status        Status          `json:"status"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

// newOrder is the insert payload; the id and timestamp are
// server-assigned.
type newOrder struct {
	UserID        string          `json:"user_id"`
	Items         []cart.Item     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Status        Status          `json:"status"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
}
