package reservation

import (
	"context"

	"github.com/smartbistro/restaurant-api/internal/audit"
	domain "github.com/smartbistro/restaurant-api/internal/domain/reservation"
	"github.com/smartbistro/restaurant-api/internal/models"
	"github.com/smartbistro/restaurant-api/internal/timezone"
)

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// Execute validates and persists a booking request with status
// Pending. Capacity is not re-checked against concurrent writers; two
// simultaneous bookings can overfill a slot (accepted limitation).
func (uc *CreateReservation) Execute(
	ctx context.Context,
	in domain.Request,
) (*models.Reservation, error) {

	now := timezone.NowIn(uc.tz)
	if err := in.Validate(now); err != nil {
		return nil, err
	}

	res := &models.Reservation{
		UserID:          in.UserID,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		ReservationDate: in.Date,
		ReservationTime: in.Time,
		NumberOfGuests:  in.Guests,
		Status:          string(domain.InitialStatus()),
		SpecialRequests: in.SpecialRequests,
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
