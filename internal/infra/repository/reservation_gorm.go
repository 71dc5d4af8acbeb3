package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/smartbistro/restaurant-api/internal/domain/reservation"
	"github.com/smartbistro/restaurant-api/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

type slotAggregate struct {
	ReservationTime string
	TotalGuests     int
}

func (r *ReservationGormRepository) GuestsBySlot(
	ctx context.Context,
	date string,
) (map[string]int, error) {

	var rows []slotAggregate
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Select("reservation_time, SUM(number_of_guests) AS total_guests").
		Where(
			"reservation_date = ? AND status IN ?",
			date,
			[]string{string(domain.StatusPending), string(domain.StatusApproved)},
		).
		Group("reservation_time").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	booked := make(map[string]int, len(rows))
	for _, row := range rows {
		// Stored HH:MM:SS, keyed HH:MM to match the catalog.
		key := row.ReservationTime
		if len(key) >= 5 {
			key = key[:5]
		}
		booked[key] += row.TotalGuests
	}

	return booked, nil
}

// --------------------------------------------------
// Reservation (create / read)
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) ListFromDate(
	ctx context.Context,
	date string,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("reservation_date >= ?", date).
		Order("reservation_date ASC, reservation_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

// --------------------------------------------------
// Reservation (status)
// --------------------------------------------------

func (r *ReservationGormRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	status string,
	tableNumber *int,
) (bool, error) {

	updates := map[string]any{"status": status}
	if tableNumber != nil {
		updates["table_number"] = *tableNumber
	}

	result := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return false, result.Error
	}

	// gorm reports zero rows both for a missing id and for a no-op
	// write of the same values, so check existence explicitly.
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.Reservation{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	}

	return true, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
