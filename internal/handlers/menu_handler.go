package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartbistro/restaurant-api/internal/cache"
	"github.com/smartbistro/restaurant-api/internal/httperr"
	"github.com/smartbistro/restaurant-api/internal/httpresp"
	"github.com/smartbistro/restaurant-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type MenuHandler struct {
	db    *gorm.DB
	cache *cache.MenuCache
}

func NewMenuHandler(db *gorm.DB, menuCache *cache.MenuCache) *MenuHandler {
	return &MenuHandler{db: db, cache: menuCache}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	Ingredients string  `json:"ingredients"`
	DietaryType string  `json:"dietary_type"`
	IsAvailable *bool   `json:"is_available"`
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	CategoryID  *uint    `json:"category_id,omitempty"`
	Ingredients *string  `json:"ingredients,omitempty"`
	DietaryType *string  `json:"dietary_type,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

// ======================================================
// PUBLIC MENU
// ======================================================

func (h *MenuHandler) ListPublic(c *gin.Context) {
	if payload, ok := h.cache.Get(c.Request.Context()); ok {
		c.Data(200, "application/json; charset=utf-8", payload)
		return
	}

	var items []models.MenuItem
	if err := h.db.
		Preload("Category").
		Joins("JOIN categories ON categories.id = menu_items.category_id").
		Where("menu_items.is_available = ?", true).
		Order("categories.name ASC, menu_items.name ASC").
		Find(&items).Error; err != nil {
		httperr.Internal(c, "Failed to fetch menu")
		return
	}

	envelope := httpresp.Envelope{Success: true, Data: items}
	if payload, err := json.Marshal(envelope); err == nil {
		h.cache.Set(c.Request.Context(), payload)
		c.Data(200, "application/json; charset=utf-8", payload)
		return
	}

	httpresp.OK(c, items)
}

// ======================================================
// ADMIN MENU (includes unavailable items)
// ======================================================

func (h *MenuHandler) ListAdmin(c *gin.Context) {
	var items []models.MenuItem
	if err := h.db.
		Preload("Category").
		Joins("JOIN categories ON categories.id = menu_items.category_id").
		Order("categories.name ASC, menu_items.name ASC").
		Find(&items).Error; err != nil {
		httperr.Internal(c, "Failed to fetch menu")
		return
	}

	httpresp.OK(c, items)
}

// ======================================================
// CREATE
// ======================================================

func (h *MenuHandler) Create(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields: name, description, price, categoryId")
		return
	}

	var category models.Category
	if err := h.db.First(&category, req.CategoryID).Error; err != nil {
		httperr.BadRequest(c, "Unknown category")
		return
	}

	item := models.MenuItem{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Ingredients: req.Ingredients,
		DietaryType: normalizeDietaryType(req.DietaryType),
		IsAvailable: req.IsAvailable == nil || *req.IsAvailable,
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "Failed to create menu item")
		return
	}

	h.cache.Invalidate(c.Request.Context())

	httpresp.Created(c, gin.H{"menuItemId": item.ID})
}

// ======================================================
// UPDATE (partial)
// ======================================================

func (h *MenuHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var item models.MenuItem
	if err := h.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Menu item not found")
			return
		}
		httperr.Internal(c, "Failed to fetch menu item")
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request")
		return
	}

	if req.Name == nil && req.Description == nil && req.Price == nil &&
		req.CategoryID == nil && req.Ingredients == nil &&
		req.DietaryType == nil && req.IsAvailable == nil {
		httperr.BadRequest(c, "No fields provided for update")
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.CategoryID != nil {
		item.CategoryID = *req.CategoryID
	}
	if req.Ingredients != nil {
		item.Ingredients = *req.Ingredients
	}
	if req.DietaryType != nil {
		item.DietaryType = normalizeDietaryType(*req.DietaryType)
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "Failed to update menu item")
		return
	}

	h.cache.Invalidate(c.Request.Context())

	httpresp.Message(c, "Menu item updated successfully")
}

// ======================================================
// DELETE (soft-disable when referenced by orders)
// ======================================================

func (h *MenuHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var item models.MenuItem
	if err := h.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Menu item not found")
			return
		}
		httperr.Internal(c, "Failed to fetch menu item")
		return
	}

	var orderCount int64
	if err := h.db.Model(&models.OrderItem{}).
		Where("menu_item_id = ?", item.ID).
		Count(&orderCount).Error; err != nil {
		httperr.Internal(c, "Failed to delete menu item")
		return
	}

	if orderCount > 0 {
		// Deleting would orphan order history; hide it instead.
		if err := h.db.Model(&item).Update("is_available", false).Error; err != nil {
			httperr.Internal(c, "Failed to delete menu item")
			return
		}

		h.cache.Invalidate(c.Request.Context())
		httpresp.Message(c, "Menu item has existing orders and has been marked as unavailable instead of deleted")
		return
	}

	if err := h.db.Delete(&item).Error; err != nil {
		httperr.Internal(c, "Failed to delete menu item")
		return
	}

	h.cache.Invalidate(c.Request.Context())
	httpresp.Message(c, "Menu item deleted successfully")
}

// ======================================================
// CATEGORIES
// ======================================================

func (h *MenuHandler) ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := h.db.Order("name ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "Failed to fetch categories")
		return
	}

	httpresp.OK(c, categories)
}

// normalizeDietaryType keeps the filter values the menu page sends
// ("vegetarian", "vegan", "gluten-free") case-insensitive.
func normalizeDietaryType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
