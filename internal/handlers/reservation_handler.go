package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/smartbistro/restaurant-api/internal/domain/reservation"
	"github.com/smartbistro/restaurant-api/internal/httperr"
	"github.com/smartbistro/restaurant-api/internal/httpresp"
	"github.com/smartbistro/restaurant-api/internal/middleware"
	ucReservation "github.com/smartbistro/restaurant-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	availabilityUC *ucReservation.GetAvailability
	createUC       *ucReservation.CreateReservation
	updateStatusUC *ucReservation.UpdateStatus
	listUpcomingUC *ucReservation.ListUpcoming
}

func NewReservationHandler(
	availabilityUC *ucReservation.GetAvailability,
	createUC *ucReservation.CreateReservation,
	updateStatusUC *ucReservation.UpdateStatus,
	listUpcomingUC *ucReservation.ListUpcoming,
) *ReservationHandler {
	return &ReservationHandler{
		availabilityUC: availabilityUC,
		createUC:       createUC,
		updateStatusUC: updateStatusUC,
		listUpcomingUC: listUpcomingUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	UserID          *uint  `json:"user_id"`
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required"`
	CustomerPhone   string `json:"customer_phone"`
	Date            string `json:"reservation_date" binding:"required"` // YYYY-MM-DD
	Time            string `json:"reservation_time" binding:"required"` // HH:MM or HH:MM:SS
	NumberOfGuests  int    `json:"number_of_guests" binding:"required"`
	SpecialRequests string `json:"special_requests"`
}

type UpdateReservationStatusRequest struct {
	Status      string `json:"status" binding:"required"`
	TableNumber *int   `json:"table_number"`
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

func (h *ReservationHandler) AvailableSlots(c *gin.Context) {
	dateStr := c.Query("date")
	guestsStr := c.Query("guests")

	if dateStr == "" || guestsStr == "" {
		httperr.BadRequest(c, "Date and guests parameters are required")
		return
	}

	guests, err := strconv.Atoi(guestsStr)
	if err != nil {
		httperr.BadRequest(c, "Number of guests must be a positive number")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), dateStr, guests)
	if err != nil {
		if msg, ok := httperr.BusinessMessage(err); ok {
			httperr.BadRequest(c, msg)
			return
		}
		httperr.Internal(c, "Failed to fetch available time slots")
		return
	}

	httpresp.OK(c, gin.H{"availableSlots": slots})
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields: customerName, customerEmail, date, time, guests")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), domain.Request{
		UserID:          req.UserID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.NumberOfGuests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		if msg, ok := httperr.BusinessMessage(err); ok {
			httperr.BadRequest(c, msg)
			return
		}
		httperr.Internal(c, "Failed to create reservation")
		return
	}

	httpresp.Created(c, gin.H{"reservationId": res.ID})
}

// ======================================================
// LIST (admin)
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.listUpcomingUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to fetch reservations")
		return
	}

	httpresp.OK(c, reservations)
}

// ======================================================
// UPDATE STATUS (admin)
// ======================================================

func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid reservation id")
		return
	}

	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Status is required")
		return
	}

	actorID := actorFromContext(c)

	err = h.updateStatusUC.Execute(
		c.Request.Context(),
		uint(id),
		req.Status,
		req.TableNumber,
		actorID,
	)
	if err != nil {
		if httperr.IsBusiness(err, "reservation_not_found") {
			httperr.NotFound(c, "Reservation not found")
			return
		}
		httperr.Internal(c, "Failed to update reservation status")
		return
	}

	httpresp.Message(c, "Reservation status updated")
}

func actorFromContext(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}
