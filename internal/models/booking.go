package models

import "time"

// Booking is one customer reservation of a barber's slot. At most one
// non-cancelled booking may hold a (barber_id, date, time_slot) triple.
type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CustomerName string `gorm:"size:100;not null" json:"customer_name"`
	Phone        string `gorm:"size:30" json:"phone,omitempty"`
	Email        string `gorm:"size:100" json:"email,omitempty"`

	BarberID string `gorm:"size:50;not null;uniqueIndex:idx_bookings_active_slot,where:status <> 'cancelled'" json:"barber_id"`
	Date     string `gorm:"size:10;not null;uniqueIndex:idx_bookings_active_slot" json:"date"`
	TimeSlot string `gorm:"size:5;not null;uniqueIndex:idx_bookings_active_slot" json:"time_slot"`
	Duration int    `gorm:"not null;default:45" json:"duration"`

	ServiceID       string  `gorm:"size:50" json:"service_id,omitempty"`
	ServiceName     string  `gorm:"size:100" json:"service_name,omitempty"`
	ServicePrice    float64 `json:"service_price,omitempty"`
	ServiceDuration int     `json:"service_duration,omitempty"`

	Status           string `gorm:"size:20;not null;default:'confirmed'" json:"status"`
	PaymentStatus    string `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	PaymentReference string `gorm:"size:64;index" json:"payment_reference,omitempty"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
