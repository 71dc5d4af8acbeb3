package reservation

import (
	"context"

	domain "github.com/smartbistro/restaurant-api/internal/domain/reservation"
	"github.com/smartbistro/restaurant-api/internal/dto"
	"github.com/smartbistro/restaurant-api/internal/timezone"
)

type ListUpcoming struct {
	repo domain.Repository
	tz   string
}

func NewListUpcoming(repo domain.Repository, tz string) *ListUpcoming {
	return &ListUpcoming{repo: repo, tz: tz}
}

// Execute lists reservations from today onward, ordered by date and
// time, for the admin panel.
func (uc *ListUpcoming) Execute(
	ctx context.Context,
) ([]dto.ReservationListDTO, error) {

	today := timezone.NowIn(uc.tz).Format(domain.DateLayout)

	reservations, err := uc.repo.ListFromDate(ctx, today)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, dto.ReservationListDTO{
			ID:              r.ID,
			CustomerName:    r.CustomerName,
			CustomerEmail:   r.CustomerEmail,
			ReservationDate: r.ReservationDate,
			ReservationTime: r.ReservationTime,
			NumberOfGuests:  r.NumberOfGuests,
			Status:          r.Status,
			SpecialRequests: r.SpecialRequests,
			TableNumber:     r.TableNumber,
		})
	}

	return out, nil
}
