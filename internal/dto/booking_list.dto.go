package dto

type BookingListDTO struct {
	ID            string `json:"id"`
	BarberID      string `json:"barber_id"`
	Date          string `json:"date"`
	TimeSlot      string `json:"time_slot"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	CustomerName  string `json:"customer_name"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	ServiceName   string `json:"service_name,omitempty"`
}
