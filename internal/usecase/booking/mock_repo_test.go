package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) FindReservedTimes(ctx context.Context, barberID, date string) ([]string, error) {
	args := m.Called(ctx, barberID, date)
	times, _ := args.Get(0).([]string)
	return times, args.Error(1)
}

func (m *mockRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockRepo) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockRepo) GetBookingByPaymentReference(ctx context.Context, ref string) (*models.Booking, error) {
	args := m.Called(ctx, ref)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockRepo) ListBookings(ctx context.Context, f domain.ListFilter) ([]models.Booking, error) {
	args := m.Called(ctx, f)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

var _ domain.Repository = (*mockRepo)(nil)

type recordingAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordingAuditor) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingAuditor) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

type recordingNotifier struct {
	msgs []notify.Message
}

func (r *recordingNotifier) Dispatch(msg notify.Message) {
	r.msgs = append(r.msgs, msg)
}

func osloEngine(t *testing.T) *domain.Engine {
	t.Helper()
	oslo, err := time.LoadLocation("Europe/Oslo")
	require.NoError(t, err)
	return domain.NewEngine(schedule.Default(), oslo, domain.DefaultSlotDuration)
}

// fixedClock pins now to Monday 2030-01-07 12:00 in the engine's zone.
func fixedClock(e *domain.Engine) func() time.Time {
	return func() time.Time {
		return time.Date(2030, 1, 7, 12, 0, 0, 0, e.Location())
	}
}
