package reservation

import (
	"context"

	"github.com/smartbistro/restaurant-api/internal/audit"
	domain "github.com/smartbistro/restaurant-api/internal/domain/reservation"
	"github.com/smartbistro/restaurant-api/internal/httperr"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute overwrites a reservation's status with whatever the caller
// sent. The value is not checked against the known status set and no
// transition rules apply (Cancelled back to Approved is allowed);
// applying the same status twice is a no-op. Fails only when the id
// does not exist.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	id uint,
	status string,
	tableNumber *int,
	actorID *uint,
) error {

	found, err := uc.repo.UpdateStatus(ctx, id, status, tableNumber)
	if err != nil {
		return err
	}
	if !found {
		return httperr.ErrBusiness("reservation_not_found", "Reservation not found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "reservation_status_updated",
		Entity:   "reservation",
		EntityID: &id,
		Metadata: map[string]any{"status": status},
	})

	return nil
}
