package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartbistro/restaurant-api/internal/audit"
	domain "github.com/smartbistro/restaurant-api/internal/domain/order"
	"github.com/smartbistro/restaurant-api/internal/dto"
	"github.com/smartbistro/restaurant-api/internal/httperr"
	"github.com/smartbistro/restaurant-api/internal/httpresp"
	"github.com/smartbistro/restaurant-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewOrderHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *OrderHandler {
	return &OrderHandler{
		db:    db,
		audit: dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type OrderItemRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	UserID          *uint              `json:"user_id"`
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	OrderType       string             `json:"order_type" binding:"required"`
	DeliveryAddress string             `json:"delivery_address"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	EstimatedTime *int   `json:"estimated_time"`
}

// ======================================================
// CREATE
// ======================================================

func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Order must include at least one item")
		return
	}

	orderType := domain.NormalizeType(req.OrderType)

	if orderType == domain.TypeDelivery && strings.TrimSpace(req.DeliveryAddress) == "" {
		httperr.BadRequest(c, "Delivery orders require a delivery address")
		return
	}

	var created models.Order

	err := h.db.Transaction(func(tx *gorm.DB) error {

		order := models.Order{
			UserID:          req.UserID,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			OrderType:       orderType,
			DeliveryAddress: req.DeliveryAddress,
			Status:          string(domain.StatusPending),
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var total float64
		summary := make([]domain.SummaryItem, 0, len(req.Items))

		for _, line := range req.Items {
			var item models.MenuItem
			if err := tx.First(&item, line.MenuItemID).Error; err != nil {
				return httperr.ErrBusiness("menu_item_not_found", "One or more menu items no longer exist")
			}

			subtotal := item.Price * float64(line.Quantity)
			total += subtotal

			if err := tx.Create(&models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: item.ID,
				Quantity:   line.Quantity,
				Price:      item.Price,
				Subtotal:   subtotal,
			}).Error; err != nil {
				return err
			}

			summary = append(summary, domain.SummaryItem{
				Name:     item.Name,
				Quantity: line.Quantity,
			})
		}

		order.TotalAmount = total
		order.MenuName = domain.Summary(summary)

		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		created = order
		return nil
	})

	if err != nil {
		if msg, ok := httperr.BusinessMessage(err); ok {
			httperr.BadRequest(c, msg)
			return
		}
		httperr.Internal(c, "Failed to create order")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   req.UserID,
		Action:   "order_created",
		Entity:   "order",
		EntityID: &created.ID,
		Metadata: map[string]any{"total": created.TotalAmount},
	})

	httpresp.OK(c, gin.H{"orderId": created.ID})
}

// ======================================================
// LIST (admin order board)
// ======================================================

func (h *OrderHandler) List(c *gin.Context) {
	var orders []models.Order
	if err := h.db.
		Preload("User").
		Order("order_date DESC").
		Find(&orders).Error; err != nil {
		httperr.Internal(c, "Failed to fetch orders")
		return
	}

	out := make([]dto.OrderListDTO, 0, len(orders))
	for _, o := range orders {
		menuName := o.MenuName
		if menuName == "" {
			menuName = "No items"
		}

		out = append(out, dto.OrderListDTO{
			ID:            o.ID,
			CustomerName:  displayName(&o),
			OrderType:     o.OrderType,
			Status:        o.Status,
			TotalAmount:   o.TotalAmount,
			OrderDate:     o.OrderDate,
			EstimatedTime: o.EstimatedTime,
			CustomerEmail: o.CustomerEmail,
			CustomerPhone: o.CustomerPhone,
			DeliveryAddr:  o.DeliveryAddress,
			MenuName:      menuName,
		})
	}

	httpresp.OK(c, out)
}

// displayName picks the best available customer label: account name,
// then the name typed at checkout, then the email, then a fallback.
func displayName(o *models.Order) string {
	if o.User != nil {
		full := strings.TrimSpace(o.User.FirstName + " " + o.User.LastName)
		if full != "" {
			return full
		}
	}
	if strings.TrimSpace(o.CustomerName) != "" {
		return o.CustomerName
	}
	if o.CustomerEmail != "" {
		return o.CustomerEmail
	}
	return "Walk-in Customer"
}

// ======================================================
// DETAILS
// ======================================================

func (h *OrderHandler) Details(c *gin.Context) {
	id := c.Param("id")

	var items []models.OrderItem
	if err := h.db.
		Preload("MenuItem").
		Where("order_id = ?", id).
		Order("id ASC").
		Find(&items).Error; err != nil {
		httperr.Internal(c, "Failed to fetch order details")
		return
	}

	out := make([]dto.OrderItemDTO, 0, len(items))
	for _, it := range items {
		name := it.MenuItem.Name
		description := it.MenuItem.Description
		if name == "" {
			// The menu item was deleted after the order was placed.
			name = "Menu Item #" + strconv.FormatUint(uint64(it.MenuItemID), 10)
		}
		if description == "" {
			description = "No description available"
		}

		out = append(out, dto.OrderItemDTO{
			ID:              it.ID,
			MenuItemID:      it.MenuItemID,
			Quantity:        it.Quantity,
			ItemPrice:       it.Price,
			ItemTotal:       it.Subtotal,
			ItemName:        name,
			ItemDescription: description,
		})
	}

	httpresp.OK(c, out)
}

// ======================================================
// UPDATE STATUS (admin)
// ======================================================

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid order id")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Status is required")
		return
	}

	updates := map[string]any{"status": req.Status}
	if req.EstimatedTime != nil {
		updates["estimated_time"] = *req.EstimatedTime
	}

	result := h.db.
		Model(&models.Order{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		httperr.Internal(c, "Failed to update order status")
		return
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := h.db.Model(&models.Order{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			httperr.Internal(c, "Failed to update order status")
			return
		}
		if count == 0 {
			httperr.NotFound(c, "Order not found")
			return
		}
	}

	orderID := uint(id)
	h.audit.Dispatch(audit.Event{
		UserID:   actorFromContext(c),
		Action:   "order_status_updated",
		Entity:   "order",
		EntityID: &orderID,
		Metadata: map[string]any{"status": req.Status},
	})

	httpresp.Message(c, "Order status updated successfully")
}
