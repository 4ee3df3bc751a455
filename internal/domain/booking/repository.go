package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ListFilter struct {
	Date     string
	BarberID string
	// DateFrom/DateTo bound an inclusive YYYY-MM-DD range when set.
	DateFrom string
	DateTo   string
	// IncludeCancelled is off for the booking list and on for exports.
	IncludeCancelled bool
}

type Repository interface {
	// -------- Availability --------
	FindReservedTimes(
		ctx context.Context,
		barberID string,
		date string,
	) ([]string, error)

	// -------- Booking (create) --------
	// CreateBooking reports a storage-level slot collision as a
	// CodeSlotTaken business error.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (read / state change) --------
	GetBookingByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	GetBookingByPaymentReference(
		ctx context.Context,
		reference string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookings(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Booking, error)
}
