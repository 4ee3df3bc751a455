package payment

import (
	"context"
	"time"
)

const (
	ProviderVipps       = "vipps"
	ProviderMercadoPago = "mercadopago"
)

// Order is what a gateway is asked to collect.
type Order struct {
	OrderID     string
	BookingID   string
	Amount      float64
	Currency    string
	Description string
}

type Checkout struct {
	RedirectURL string
	// ProviderRef is the gateway's own id for the checkout, if any.
	ProviderRef string
}

type Gateway interface {
	Name() string
	CreateCheckout(ctx context.Context, o Order) (*Checkout, error)
}

const (
	SessionPending = "pending"
	SessionPaid    = "paid"
	SessionFailed  = "failed"
)

// Session tracks one checkout attempt for a booking.
type Session struct {
	OrderID     string    `json:"order_id"`
	BookingID   string    `json:"booking_id"`
	Provider    string    `json:"provider"`
	ProviderRef string    `json:"provider_ref,omitempty"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	RedirectURL string    `json:"redirect_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
