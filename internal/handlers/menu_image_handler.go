package handlers

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartbistro/restaurant-api/internal/cache"
	"github.com/smartbistro/restaurant-api/internal/httperr"
	"github.com/smartbistro/restaurant-api/internal/httpresp"
	"github.com/smartbistro/restaurant-api/internal/imaging"
	"github.com/smartbistro/restaurant-api/internal/models"
	"github.com/smartbistro/restaurant-api/internal/storage"
)

const maxImageBytes = 8 << 20 // 8 MiB upload cap

type MenuImageHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
	cache    *cache.MenuCache
}

func NewMenuImageHandler(
	db *gorm.DB,
	uploader *storage.Uploader,
	menuCache *cache.MenuCache,
) *MenuImageHandler {
	return &MenuImageHandler{
		db:       db,
		uploader: uploader,
		cache:    menuCache,
	}
}

// Upload accepts a multipart "image" file, re-encodes it to webp and
// stores it in S3, then persists the public URL on the menu item.
func (h *MenuImageHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "Image uploads are not configured")
		return
	}

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

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "Image file is required")
		return
	}
	if file.Size > maxImageBytes {
		httperr.BadRequest(c, "Image is too large (max 8 MB)")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "Failed to read image")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		httperr.Internal(c, "Failed to read image")
		return
	}

	encoded, err := imaging.ToWebP(data)
	if err != nil {
		httperr.BadRequest(c, "Unsupported image format (jpeg or png expected)")
		return
	}

	key := fmt.Sprintf("menu/%s.webp", uuid.NewString())

	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "Failed to store image")
		return
	}

	if err := h.db.Model(&item).Update("image_url", url).Error; err != nil {
		httperr.Internal(c, "Failed to save image URL")
		return
	}

	h.cache.Invalidate(c.Request.Context())

	httpresp.OK(c, gin.H{"imageUrl": url})
}
