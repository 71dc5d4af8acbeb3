package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/smartbistro/restaurant-api/internal/config"
	dbpkg "github.com/smartbistro/restaurant-api/internal/db"
	domain "github.com/smartbistro/restaurant-api/internal/domain/reservation"
	"github.com/smartbistro/restaurant-api/internal/models"
	"github.com/smartbistro/restaurant-api/internal/routes"
)

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	cfg := &config.Config{
		JWTSecret: "test-secret",
		Timezone:  "UTC",
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)

	return r, db, cfg
}

func adminToken(t *testing.T, cfg *config.Config) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  1,
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

// nextWeekday returns a date at least a week out on the given weekday.
func nextWeekday(w time.Weekday) time.Time {
	d := time.Now().UTC().AddDate(0, 0, 7)
	for d.Weekday() != w {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

func TestAvailableSlotsMissingParams(t *testing.T) {
	r, _, _ := setupServer(t)

	w := doJSON(r, http.MethodGet, "/api/reservations/available-slots?date=2030-06-11", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailableSlotsCapacity(t *testing.T) {
	r, db, _ := setupServer(t)

	tuesday := nextWeekday(time.Tuesday).Format(domain.DateLayout)
	require.NoError(t, db.Create(&models.Reservation{
		CustomerName:    "Big Party",
		CustomerEmail:   "party@example.com",
		ReservationDate: tuesday,
		ReservationTime: "18:00:00",
		NumberOfGuests:  48,
		Status:          "Approved",
	}).Error)

	w := doJSON(r, http.MethodGet, "/api/reservations/available-slots?date="+tuesday+"&guests=3", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	slots, ok := data["availableSlots"].([]any)
	require.True(t, ok)

	assert.NotContains(t, slots, "18:00")
	assert.Contains(t, slots, "18:30")
}

func TestAvailableSlotsClosedDayIsEmptyNotError(t *testing.T) {
	r, _, _ := setupServer(t)

	monday := nextWeekday(time.Monday).Format(domain.DateLayout)

	w := doJSON(r, http.MethodGet, "/api/reservations/available-slots?date="+monday+"&guests=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	slots, ok := data["availableSlots"].([]any)
	require.True(t, ok)
	assert.Empty(t, slots)
}

// ======================================================
// CREATE
// ======================================================

func TestCreateReservationRoundTrip(t *testing.T) {
	r, db, _ := setupServer(t)

	tuesday := nextWeekday(time.Tuesday).Format(domain.DateLayout)

	w := doJSON(r, http.MethodPost, "/api/reservations", gin.H{
		"customer_name":    "Dana Reyes",
		"customer_email":   "dana@example.com",
		"reservation_date": tuesday,
		"reservation_time": "18:30",
		"number_of_guests": 4,
		"special_requests": "Window table",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeData(t, w)
	id := uint(data["reservationId"].(float64))

	var stored models.Reservation
	require.NoError(t, db.First(&stored, id).Error)

	assert.Equal(t, tuesday, stored.ReservationDate)
	assert.Equal(t, "18:30:00", stored.ReservationTime)
	assert.Equal(t, 4, stored.NumberOfGuests)
	assert.Equal(t, "Pending", stored.Status)
	assert.Equal(t, "Window table", stored.SpecialRequests)
}

func TestCreateReservationMalformedTime(t *testing.T) {
	r, db, _ := setupServer(t)

	tuesday := nextWeekday(time.Tuesday).Format(domain.DateLayout)

	w := doJSON(r, http.MethodPost, "/api/reservations", gin.H{
		"customer_name":    "Dana Reyes",
		"customer_email":   "dana@example.com",
		"reservation_date": tuesday,
		"reservation_time": "18:5",
		"number_of_guests": 4,
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid time format")

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateReservationPastDate(t *testing.T) {
	r, _, _ := setupServer(t)

	w := doJSON(r, http.MethodPost, "/api/reservations", gin.H{
		"customer_name":    "Dana Reyes",
		"customer_email":   "dana@example.com",
		"reservation_date": "2020-01-02",
		"reservation_time": "18:30",
		"number_of_guests": 4,
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "future date")
}

// ======================================================
// STATUS (admin)
// ======================================================

func TestUpdateReservationStatusRequiresAuth(t *testing.T) {
	r, _, _ := setupServer(t)

	w := doJSON(r, http.MethodPut, "/api/reservations/1/status", gin.H{"status": "Approved"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateReservationStatusNotFound(t *testing.T) {
	r, _, cfg := setupServer(t)

	w := doJSON(r, http.MethodPut, "/api/reservations/999999/status",
		gin.H{"status": "Approved"}, adminToken(t, cfg))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateReservationStatus(t *testing.T) {
	r, db, cfg := setupServer(t)

	res := models.Reservation{
		CustomerName:    "Dana Reyes",
		CustomerEmail:   "dana@example.com",
		ReservationDate: "2030-06-11",
		ReservationTime: "18:00:00",
		NumberOfGuests:  2,
		Status:          "Pending",
	}
	require.NoError(t, db.Create(&res).Error)

	body := gin.H{"status": "Approved", "table_number": 5}
	token := adminToken(t, cfg)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/reservations/%d/status", res.ID), body, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Second identical update succeeds and changes nothing.
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/reservations/%d/status", res.ID), body, token)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Reservation
	require.NoError(t, db.First(&stored, res.ID).Error)
	assert.Equal(t, "Approved", stored.Status)
	require.NotNil(t, stored.TableNumber)
	assert.Equal(t, 5, *stored.TableNumber)
}

func TestListReservationsForbiddenForCustomers(t *testing.T) {
	r, _, cfg := setupServer(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  2,
		"role": "customer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	w := doJSON(r, http.MethodGet, "/api/reservations", nil, signed)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
