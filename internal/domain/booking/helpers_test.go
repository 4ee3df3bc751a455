package booking

import "github.com/BruksfildServices01/barber-booking/internal/models"

func bookingWithStatus(s Status) *models.Booking {
	return &models.Booking{
		ID:            "b-1",
		BarberID:      "marius",
		Date:          "2025-06-10",
		TimeSlot:      "09:00",
		Status:        string(s),
		PaymentStatus: string(PaymentPending),
	}
}
