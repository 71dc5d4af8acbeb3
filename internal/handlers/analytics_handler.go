package handlers

import (
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartbistro/restaurant-api/internal/httperr"
	"github.com/smartbistro/restaurant-api/internal/httpresp"
	"github.com/smartbistro/restaurant-api/internal/models"
	"github.com/smartbistro/restaurant-api/internal/timezone"
)

type AnalyticsHandler struct {
	db *gorm.DB
	tz string
}

func NewAnalyticsHandler(db *gorm.DB, tz string) *AnalyticsHandler {
	return &AnalyticsHandler{db: db, tz: tz}
}

type dailyRevenue struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type topItem struct {
	MenuItemID uint   `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

type statusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Get assembles the admin dashboard numbers: daily revenue over the
// last 30 days, the five best-selling items, and status breakdowns
// for orders and reservations.
func (h *AnalyticsHandler) Get(c *gin.Context) {
	now := timezone.NowIn(h.tz)
	since := now.AddDate(0, 0, -30)

	// Daily revenue, aggregated in Go so the grouping works the same
	// on every SQL backend.
	var orders []models.Order
	if err := h.db.
		Where("order_date >= ?", since).
		Find(&orders).Error; err != nil {
		httperr.Internal(c, "Failed to fetch analytics")
		return
	}

	byDay := map[string]*dailyRevenue{}
	for _, o := range orders {
		day := o.OrderDate.In(now.Location()).Format("2006-01-02")
		entry, ok := byDay[day]
		if !ok {
			entry = &dailyRevenue{Date: day}
			byDay[day] = entry
		}
		entry.Orders++
		entry.Revenue += o.TotalAmount
	}

	daily := make([]dailyRevenue, 0, len(byDay))
	for _, entry := range byDay {
		daily = append(daily, *entry)
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	// Top sellers.
	var top []topItem
	if err := h.db.
		Model(&models.OrderItem{}).
		Select("order_items.menu_item_id, menu_items.name, SUM(order_items.quantity) AS quantity").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Group("order_items.menu_item_id, menu_items.name").
		Order("quantity DESC").
		Limit(5).
		Scan(&top).Error; err != nil {
		httperr.Internal(c, "Failed to fetch analytics")
		return
	}

	// Status breakdowns.
	var orderStatuses []statusCount
	if err := h.db.
		Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&orderStatuses).Error; err != nil {
		httperr.Internal(c, "Failed to fetch analytics")
		return
	}

	var reservationStatuses []statusCount
	if err := h.db.
		Model(&models.Reservation{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&reservationStatuses).Error; err != nil {
		httperr.Internal(c, "Failed to fetch analytics")
		return
	}

	httpresp.OK(c, gin.H{
		"dailyRevenue":        daily,
		"topItems":            top,
		"orderStatuses":       orderStatuses,
		"reservationStatuses": reservationStatuses,
	})
}
