package reservation

import (
	"context"

	"github.com/smartbistro/restaurant-api/internal/models"
)

type Repository interface {
	// -------- Availability --------

	// GuestsBySlot sums NumberOfGuests per HH:MM slot for a date,
	// over reservations that still count toward capacity.
	GuestsBySlot(
		ctx context.Context,
		date string,
	) (map[string]int, error)

	// -------- Reservation (create / read) --------
	CreateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	GetReservation(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	ListFromDate(
		ctx context.Context,
		date string,
	) ([]models.Reservation, error)

	// -------- Reservation (status) --------

	// UpdateStatus overwrites the stored status (and table number,
	// when given). Returns false when no such reservation exists.
	UpdateStatus(
		ctx context.Context,
		id uint,
		status string,
		tableNumber *int,
	) (bool, error)
}
