package repository

import (
	"context"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) FindReservedTimes(
	ctx context.Context,
	barberID string,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("barber_id = ? AND date = ? AND status <> ?", barberID, date, string(domain.StatusCancelled)).
		Order("time_slot ASC").
		Pluck("time_slot", &times).Error; err != nil {
		return nil, errors.Wrap(err, "find reserved times")
	}

	return times, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness(domain.CodeSlotTaken)
		}
		return errors.Wrap(err, "create booking")
	}
	return nil
}

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *BookingGormRepository) GetBookingByPaymentReference(
	ctx context.Context,
	reference string,
) (*models.Booking, error) {
	return r.first(ctx, "payment_reference = ?", reference)
}

func (r *BookingGormRepository) first(ctx context.Context, query string, arg any) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).Where(query, arg).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(domain.CodeBookingNotFound)
		}
		return nil, errors.Wrap(err, "get booking")
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness(domain.CodeSlotTaken)
		}
		return errors.Wrap(err, "update booking")
	}
	return nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if !filter.IncludeCancelled {
		q = q.Where("status <> ?", string(domain.StatusCancelled))
	}
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.DateFrom != "" {
		q = q.Where("date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("date <= ?", filter.DateTo)
	}
	if filter.BarberID != "" {
		q = q.Where("barber_id = ?", filter.BarberID)
	}

	var bookings []models.Booking
	if err := q.
		Order("date ASC").
		Order("time_slot ASC").
		Find(&bookings).Error; err != nil {
		return nil, errors.Wrap(err, "list bookings")
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
