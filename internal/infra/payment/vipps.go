package payment

import (
	"context"
	"net/url"

	"github.com/cockroachdb/errors"
)

// VippsPlaceholder hands the customer straight back to the shop front end
// with the order id. No money moves; the front end reports the outcome
// through the callback endpoint.
type VippsPlaceholder struct {
	returnURL *url.URL
}

func NewVippsPlaceholder(returnURL string) (*VippsPlaceholder, error) {
	u, err := url.Parse(returnURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Newf("invalid payment return url %q", returnURL)
	}
	return &VippsPlaceholder{returnURL: u}, nil
}

func (v *VippsPlaceholder) Name() string { return ProviderVipps }

func (v *VippsPlaceholder) CreateCheckout(_ context.Context, o Order) (*Checkout, error) {
	u := *v.returnURL
	q := u.Query()
	q.Set("order_id", o.OrderID)
	q.Set("booking_id", o.BookingID)
	u.RawQuery = q.Encode()

	return &Checkout{RedirectURL: u.String()}, nil
}
