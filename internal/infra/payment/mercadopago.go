package payment

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPago opens a hosted checkout preference per order.
type MercadoPago struct {
	client          preferenceCreator
	returnURL       string
	notificationURL string
}

func NewMercadoPago(accessToken, returnURL, notificationURL string) (*MercadoPago, error) {
	if accessToken == "" {
		return nil, errors.New("mercadopago access token is required")
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "mercadopago config")
	}

	return &MercadoPago{
		client:          preference.NewClient(cfg),
		returnURL:       returnURL,
		notificationURL: notificationURL,
	}, nil
}

func (m *MercadoPago) Name() string { return ProviderMercadoPago }

func (m *MercadoPago) CreateCheckout(ctx context.Context, o Order) (*Checkout, error) {
	req := preference.Request{
		ExternalReference: o.OrderID,
		NotificationURL:   m.notificationURL,
		Items: []preference.ItemRequest{
			{
				ID:         o.BookingID,
				Title:      o.Description,
				Quantity:   1,
				UnitPrice:  o.Amount,
				CurrencyID: o.Currency,
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: m.returnURL,
			Failure: m.returnURL,
			Pending: m.returnURL,
		},
	}

	resp, err := m.client.Create(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "create mercadopago preference")
	}

	return &Checkout{
		RedirectURL: resp.InitPoint,
		ProviderRef: resp.ID,
	}, nil
}
