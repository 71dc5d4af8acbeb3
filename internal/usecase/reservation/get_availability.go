package reservation

import (
	"context"

	domain "github.com/smartbistro/restaurant-api/internal/domain/reservation"
	"github.com/smartbistro/restaurant-api/internal/httperr"
	"github.com/smartbistro/restaurant-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
	tz   string
}

func NewGetAvailability(repo domain.Repository, tz string) *GetAvailability {
	return &GetAvailability{repo: repo, tz: tz}
}

// Execute returns the bookable HH:MM slots for a date and party size,
// in catalog order. Read-only; the booked aggregate may be stale by
// the time the client books.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	dateStr string,
	guests int,
) ([]string, error) {

	if guests < 1 {
		return nil, httperr.ErrBusiness("invalid_guests", "Number of guests must be a positive number")
	}

	loc := timezone.Location(uc.tz)

	date, err := domain.ParseDate(dateStr, loc)
	if err != nil {
		return nil, err
	}

	// Closed day: skip the query, the answer is already known.
	if date.Weekday() == domain.ClosedWeekday {
		return []string{}, nil
	}

	booked, err := uc.repo.GuestsBySlot(ctx, date.Format(domain.DateLayout))
	if err != nil {
		return nil, err
	}

	slots := domain.AvailableSlots(domain.AvailabilityInput{
		Date:   date,
		Guests: guests,
		Booked: booked,
		Now:    timezone.NowIn(uc.tz),
	})

	return slots, nil
}
