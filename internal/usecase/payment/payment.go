package payment

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	infra "github.com/BruksfildServices01/barber-booking/internal/infra/payment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
)

const (
	CodePaymentNotFound = "payment_not_found"
	CodeInvalidStatus   = "invalid_payment_status"
	CodeGatewayFailed   = "payment_gateway_failed"
)

const currency = "NOK"

type Auditor interface {
	Dispatch(ev audit.Event)
}

type noopAuditor struct{}

func (noopAuditor) Dispatch(audit.Event) {}

// Service runs the placeholder payment handshake against one gateway.
type Service struct {
	repo    domain.Repository
	gateway infra.Gateway
	store   infra.SessionStore
	ttl     time.Duration
	now     func() time.Time
	audit   Auditor
}

func NewService(
	repo domain.Repository,
	gateway infra.Gateway,
	store infra.SessionStore,
	ttl time.Duration,
	auditor Auditor,
) *Service {
	if auditor == nil {
		auditor = noopAuditor{}
	}
	return &Service{
		repo:    repo,
		gateway: gateway,
		store:   store,
		ttl:     ttl,
		now:     time.Now,
		audit:   auditor,
	}
}

type InitiateResult struct {
	OrderID     string  `json:"order_id"`
	BookingID   string  `json:"booking_id"`
	Provider    string  `json:"provider"`
	Amount      float64 `json:"amount"`
	RedirectURL string  `json:"redirect_url"`
}

// Initiate opens a checkout for a confirmed, unpaid booking.
func (s *Service) Initiate(ctx context.Context, bookingID string) (*InitiateResult, error) {
	b, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanStartPayment(domain.Status(b.Status), domain.PaymentStatus(b.PaymentStatus)); err != nil {
		return nil, err
	}

	orderID := uuid.NewString()
	description := b.ServiceName
	if description == "" {
		description = "Westcutz appointment " + b.Date + " " + b.TimeSlot
	}

	checkout, err := s.gateway.CreateCheckout(ctx, infra.Order{
		OrderID:     orderID,
		BookingID:   b.ID,
		Amount:      b.ServicePrice,
		Currency:    currency,
		Description: description,
	})
	if err != nil {
		metrics.IncPayment(s.gateway.Name(), "gateway_error")
		return nil, errors.WithSecondaryError(httperr.ErrBusiness(CodeGatewayFailed), err)
	}

	if err := domain.StartPayment(b, orderID); err != nil {
		return nil, err
	}

	// The session goes first so a stored reference always resolves.
	now := s.now()
	session := &infra.Session{
		OrderID:     orderID,
		BookingID:   b.ID,
		Provider:    s.gateway.Name(),
		ProviderRef: checkout.ProviderRef,
		Amount:      b.ServicePrice,
		Currency:    currency,
		Status:      infra.SessionPending,
		RedirectURL: checkout.RedirectURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Save(ctx, session, s.ttl); err != nil {
		return nil, errors.Wrap(err, "save payment session")
	}

	if err := s.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncPayment(s.gateway.Name(), "initiated")
	s.audit.Dispatch(audit.Event{
		Actor:    audit.ActorCustomer,
		Action:   audit.ActionPaymentStarted,
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]string{"order_id": orderID, "provider": s.gateway.Name()},
	})

	return &InitiateResult{
		OrderID:     orderID,
		BookingID:   b.ID,
		Provider:    s.gateway.Name(),
		Amount:      b.ServicePrice,
		RedirectURL: checkout.RedirectURL,
	}, nil
}

// settled maps a gateway-reported status onto paid (true) or failed (false).
func settled(status string) (paid bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "success", "paid":
		return true, true
	case "failed", "cancelled", "canceled":
		return false, true
	default:
		return false, false
	}
}

type CallbackResult struct {
	OrderID       string `json:"order_id"`
	BookingID     string `json:"booking_id"`
	PaymentStatus string `json:"payment_status"`
}

// Callback records the outcome the gateway reported for orderID.
func (s *Service) Callback(ctx context.Context, orderID, status string) (*CallbackResult, error) {
	paid, ok := settled(status)
	if !ok {
		return nil, httperr.ErrBusiness(CodeInvalidStatus)
	}

	session, err := s.store.Get(ctx, orderID)
	if errors.Is(err, infra.ErrSessionNotFound) {
		return nil, httperr.ErrBusiness(CodePaymentNotFound)
	}
	if err != nil {
		return nil, err
	}

	b, err := s.repo.GetBookingByPaymentReference(ctx, orderID)
	if err != nil {
		return nil, err
	}

	before := b.PaymentStatus
	if err := domain.SettlePayment(b, paid); err != nil {
		return nil, err
	}

	res := &CallbackResult{
		OrderID:       orderID,
		BookingID:     b.ID,
		PaymentStatus: b.PaymentStatus,
	}
	if b.PaymentStatus == before {
		return res, nil
	}

	if err := s.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	session.Status = b.PaymentStatus
	session.UpdatedAt = s.now()
	if err := s.store.Save(ctx, session, s.ttl); err != nil {
		return nil, err
	}

	metrics.IncPayment(session.Provider, b.PaymentStatus)
	s.audit.Dispatch(audit.Event{
		Actor:    audit.ActorGateway,
		Action:   audit.ActionPaymentSettled,
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]string{
			"order_id":       orderID,
			"status":         b.PaymentStatus,
			"booking_status": b.Status,
		},
	})

	return res, nil
}

type StatusResult struct {
	BookingID     string         `json:"booking_id"`
	PaymentStatus string         `json:"payment_status"`
	OrderID       string         `json:"order_id,omitempty"`
	Session       *infra.Session `json:"session,omitempty"`
}

// Status reports the booking's payment state and its live session, if the
// session has not expired.
func (s *Service) Status(ctx context.Context, bookingID string) (*StatusResult, error) {
	b, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	res := &StatusResult{
		BookingID:     b.ID,
		PaymentStatus: b.PaymentStatus,
		OrderID:       b.PaymentReference,
	}

	if b.PaymentReference == "" {
		return res, nil
	}

	session, err := s.store.Get(ctx, b.PaymentReference)
	switch {
	case errors.Is(err, infra.ErrSessionNotFound):
	case err != nil:
		return nil, err
	default:
		res.Session = session
	}

	return res, nil
}
