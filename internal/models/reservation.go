package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint `json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100;not null" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	// Stored as plain strings in the wire formats (YYYY-MM-DD and
	// HH:MM:SS) so date+time grouping stays timezone-free.
	ReservationDate string `gorm:"size:10;index;not null" json:"reservation_date"`
	ReservationTime string `gorm:"size:8;not null" json:"reservation_time"`

	NumberOfGuests  int    `gorm:"not null" json:"number_of_guests"`
	Status          string `gorm:"size:20;default:'Pending'" json:"status"`
	SpecialRequests string `gorm:"type:text" json:"special_requests"`
	TableNumber     *int   `json:"table_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
