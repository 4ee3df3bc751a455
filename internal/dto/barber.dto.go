package dto

import "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"

type BarberDTO struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Hours    schedule.WeeklyHours `json:"hours"`
	PhotoURL string               `json:"photo_url,omitempty"`
}
