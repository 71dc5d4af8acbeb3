package reservation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/smartbistro/restaurant-api/internal/audit"
	dbpkg "github.com/smartbistro/restaurant-api/internal/db"
	domain "github.com/smartbistro/restaurant-api/internal/domain/reservation"
	"github.com/smartbistro/restaurant-api/internal/httperr"
	infraRepo "github.com/smartbistro/restaurant-api/internal/infra/repository"
	"github.com/smartbistro/restaurant-api/internal/models"
)

const testTZ = "UTC"

func setup(t *testing.T) (*gorm.DB, domain.Repository, *audit.Dispatcher) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	repo := infraRepo.NewReservationGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	return db, repo, dispatcher
}

// nextWeekday returns a date at least a week out on the given weekday,
// safely inside the advance-booking window and past any same-day
// lead-time filtering.
func nextWeekday(w time.Weekday) time.Time {
	d := time.Now().UTC().AddDate(0, 0, 7)
	for d.Weekday() != w {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func TestGetAvailabilityClosedDay(t *testing.T) {
	_, repo, _ := setup(t)
	uc := NewGetAvailability(repo, testTZ)

	monday := nextWeekday(time.Monday).Format(domain.DateLayout)

	slots, err := uc.Execute(context.Background(), monday, 2)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailabilityInvalidInput(t *testing.T) {
	_, repo, _ := setup(t)
	uc := NewGetAvailability(repo, testTZ)

	_, err := uc.Execute(context.Background(), "2030/06/11", 2)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	tuesday := nextWeekday(time.Tuesday).Format(domain.DateLayout)
	_, err = uc.Execute(context.Background(), tuesday, 0)
	assert.True(t, httperr.IsBusiness(err, "invalid_guests"))
}

func TestGetAvailabilityCapacityFiltering(t *testing.T) {
	db, repo, _ := setup(t)
	uc := NewGetAvailability(repo, testTZ)

	tuesday := nextWeekday(time.Tuesday).Format(domain.DateLayout)

	for _, r := range []models.Reservation{
		{CustomerName: "A", CustomerEmail: "a@example.com", ReservationDate: tuesday, ReservationTime: "18:00:00", NumberOfGuests: 30, Status: "Approved"},
		{CustomerName: "B", CustomerEmail: "b@example.com", ReservationDate: tuesday, ReservationTime: "18:00:00", NumberOfGuests: 18, Status: "Pending"},
		{CustomerName: "C", CustomerEmail: "c@example.com", ReservationDate: tuesday, ReservationTime: "18:00:00", NumberOfGuests: 40, Status: "Cancelled"},
	} {
		require.NoError(t, db.Create(&r).Error)
	}

	slots, err := uc.Execute(context.Background(), tuesday, 3)
	require.NoError(t, err)

	assert.NotContains(t, slots, "18:00")
	assert.Contains(t, slots, "18:30")
	assert.Len(t, slots, 17)
}

func TestCreateReservationPersistsPending(t *testing.T) {
	db, repo, dispatcher := setup(t)
	uc := NewCreateReservation(repo, dispatcher, testTZ)

	tuesday := nextWeekday(time.Tuesday).Format(domain.DateLayout)

	res, err := uc.Execute(context.Background(), domain.Request{
		CustomerName:  "Dana Reyes",
		CustomerEmail: "dana@example.com",
		Date:          tuesday,
		Time:          "18:30",
		Guests:        4,
	})
	require.NoError(t, err)
	require.NotZero(t, res.ID)

	var stored models.Reservation
	require.NoError(t, db.First(&stored, res.ID).Error)

	assert.Equal(t, tuesday, stored.ReservationDate)
	assert.Equal(t, "18:30:00", stored.ReservationTime)
	assert.Equal(t, 4, stored.NumberOfGuests)
	assert.Equal(t, string(domain.StatusPending), stored.Status)
}

func TestCreateReservationRejectsMalformedTime(t *testing.T) {
	db, repo, dispatcher := setup(t)
	uc := NewCreateReservation(repo, dispatcher, testTZ)

	tuesday := nextWeekday(time.Tuesday).Format(domain.DateLayout)

	_, err := uc.Execute(context.Background(), domain.Request{
		CustomerName:  "Dana Reyes",
		CustomerEmail: "dana@example.com",
		Date:          tuesday,
		Time:          "18:5",
		Guests:        4,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Zero(t, count, "a rejected request must not be partially inserted")
}

func TestUpdateStatusNotFound(t *testing.T) {
	_, repo, dispatcher := setup(t)
	uc := NewUpdateStatus(repo, dispatcher)

	err := uc.Execute(context.Background(), 999999, "Approved", nil, nil)
	assert.True(t, httperr.IsBusiness(err, "reservation_not_found"))
}

func TestUpdateStatusIdempotent(t *testing.T) {
	db, repo, dispatcher := setup(t)
	uc := NewUpdateStatus(repo, dispatcher)

	res := models.Reservation{
		CustomerName:    "Dana Reyes",
		CustomerEmail:   "dana@example.com",
		ReservationDate: "2030-06-11",
		ReservationTime: "18:00:00",
		NumberOfGuests:  2,
		Status:          "Pending",
	}
	require.NoError(t, db.Create(&res).Error)

	require.NoError(t, uc.Execute(context.Background(), res.ID, "Approved", nil, nil))
	require.NoError(t, uc.Execute(context.Background(), res.ID, "Approved", nil, nil))

	var stored models.Reservation
	require.NoError(t, db.First(&stored, res.ID).Error)
	assert.Equal(t, "Approved", stored.Status)
}
