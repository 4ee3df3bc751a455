package models

import "time"

type BarberPhoto struct {
	BarberID  string    `gorm:"primaryKey;size:50" json:"barber_id"`
	ObjectKey string    `gorm:"size:255;not null" json:"object_key"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	UpdatedAt time.Time `json:"updated_at"`
}
