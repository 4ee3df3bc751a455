package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName string
	Phone        string
	Email        string

	BarberID string
	Date     string
	TimeSlot string

	ServiceID       string
	ServiceName     string
	ServicePrice    float64
	ServiceDuration int
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	engine *domain.Engine
	now    timezone.Clock
	audit  Auditor
	notify Notifier

	// emailDomainOK is nil when the DNS domain check is disabled.
	emailDomainOK func(email string) bool
}

type CreateOption func(*CreateBooking)

func WithAudit(a Auditor) CreateOption {
	return func(uc *CreateBooking) { uc.audit = a }
}

func WithNotifier(n Notifier) CreateOption {
	return func(uc *CreateBooking) { uc.notify = n }
}

// WithEmailDomainCheck rejects emails whose domain fails check.
func WithEmailDomainCheck(check func(email string) bool) CreateOption {
	return func(uc *CreateBooking) { uc.emailDomainOK = check }
}

func NewCreateBooking(
	repo domain.Repository,
	engine *domain.Engine,
	now timezone.Clock,
	opts ...CreateOption,
) *CreateBooking {
	uc := &CreateBooking{
		repo:   repo,
		engine: engine,
		now:    now,
		audit:  noopAuditor{},
		notify: noopNotifier{},
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	// --------------------------------------------------
	// Customer
	// --------------------------------------------------
	if err := uc.checkCustomer(in); err != nil {
		return nil, uc.reject(in, err)
	}

	// --------------------------------------------------
	// Slot decision
	// --------------------------------------------------
	if _, err := uc.engine.ParseDate(in.Date); err != nil {
		return nil, uc.reject(in, err)
	}

	barber := uc.engine.Schedule().Canonical(in.BarberID)

	reserved, err := uc.repo.FindReservedTimes(ctx, barber, in.Date)
	if err != nil {
		return nil, err
	}

	if err := uc.engine.Validate(
		barber,
		in.Date,
		in.TimeSlot,
		domain.NewReservedSet(reserved),
		uc.now(),
	); err != nil {
		return nil, uc.reject(in, err)
	}

	slot, _ := domain.ParseSlot(in.TimeSlot)

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	b := &models.Booking{
		ID:           uuid.NewString(),
		CustomerName: in.CustomerName,
		Phone:        in.Phone,
		Email:        in.Email,

		BarberID: barber,
		Date:     in.Date,
		TimeSlot: slot.String(),
		Duration: int(uc.engine.Duration().Minutes()),

		ServiceID:       in.ServiceID,
		ServiceName:     in.ServiceName,
		ServicePrice:    in.ServicePrice,
		ServiceDuration: in.ServiceDuration,

		Status:        string(domain.InitialStatus()),
		PaymentStatus: string(domain.InitialPaymentStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsBusiness(err, domain.CodeSlotTaken) {
			return nil, uc.reject(in, err)
		}
		return nil, err
	}

	// --------------------------------------------------
	// Side effects
	// --------------------------------------------------
	metrics.IncBookingCreated(barber)

	uc.audit.Dispatch(audit.Event{
		Actor:    audit.ActorCustomer,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]string{
			"barber_id": b.BarberID,
			"date":      b.Date,
			"time_slot": b.TimeSlot,
		},
	})

	if b.Email != "" {
		uc.notify.Dispatch(notify.Confirmation(b, uc.engine.Schedule().NameOf(barber)))
	}

	return b, nil
}

func (uc *CreateBooking) checkCustomer(in CreateBookingInput) error {
	if in.CustomerName == "" {
		return httperr.ErrBusiness(domain.CodeMissingName)
	}
	if !validators.HasContact(in.Phone, in.Email) {
		return httperr.ErrBusiness(domain.CodeMissingContact)
	}
	if in.Email == "" {
		return nil
	}
	if !validators.IsEmailSyntaxValid(in.Email) {
		return httperr.ErrBusiness(domain.CodeInvalidEmail)
	}
	if uc.emailDomainOK != nil && !uc.emailDomainOK(in.Email) {
		return httperr.ErrBusiness(domain.CodeEmailDomain)
	}
	return nil
}

func (uc *CreateBooking) reject(in CreateBookingInput, err error) error {
	code, _ := httperr.CodeOf(err)
	metrics.IncBookingRejected(code)

	uc.audit.Dispatch(audit.Event{
		Actor:  audit.ActorCustomer,
		Action: audit.ActionBookingRejected,
		Entity: "booking",
		Metadata: map[string]string{
			"reason":    code,
			"barber_id": in.BarberID,
			"date":      in.Date,
			"time_slot": in.TimeSlot,
		},
	})

	return err
}
