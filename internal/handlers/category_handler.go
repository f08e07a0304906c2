package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pennyhelp/esep-self-employment-hub/internal/cache"
	"github.com/pennyhelp/esep-self-employment-hub/internal/realtime"
	"github.com/pennyhelp/esep-self-employment-hub/models"
)

// CategoryInput defines the payload for creating/updating a category.
type CategoryInput struct {
	Name          string          `json:"name" binding:"required"`
	ActualFee     decimal.Decimal `json:"actual_fee"`
	OfferFee      decimal.Decimal `json:"offer_fee"`
	IsActive      *bool           `json:"is_active"`
	IsHighlighted bool            `json:"is_highlighted"`
	PopupImageURL string          `json:"popup_image_url"`
	QRImageURL    string          `json:"qr_image_url"`
}

func (in *CategoryInput) validateFees() bool {
	return !in.ActualFee.IsNegative() && !in.OfferFee.IsNegative()
}

// publicCategory decorates a category with its computed discount for the
// public listing.
type publicCategory struct {
	models.Category
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	DiscountPercent int             `json:"discount_percent"`
}

// CategoryHandler serves the public listing and the admin CRUD for
// categories. Its collaborators are injected rather than read from globals
// so the cache and the change feed are swappable in tests.
type CategoryHandler struct {
	db    *gorm.DB
	store cache.Store
	hub   *realtime.Hub
}

func NewCategoryHandler(db *gorm.DB, store cache.Store, hub *realtime.Hub) *CategoryHandler {
	return &CategoryHandler{db: db, store: store, hub: hub}
}

// changed funnels a successful mutation into the shared invalidation path:
// the cached list views are dropped and subscribers are notified.
func (h *CategoryHandler) changed(c *gin.Context, action string) {
	h.store.Invalidate(c.Request.Context(), cache.TableKeys("categories")...)
	h.hub.Publish("categories", action)
}

// ListPublic returns the active categories in the fixed display order, with
// discount amounts and percentages computed server-side.
func (h *CategoryHandler) ListPublic(c *gin.Context) {
	key := cache.ListKey("categories", "public")
	if body, ok := h.store.Get(c.Request.Context(), key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	var categories []models.Category
	if err := h.db.Where("is_active = ?", true).Order("name asc").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch categories"})
		return
	}
	orderForDisplay(categories)

	out := make([]publicCategory, 0, len(categories))
	for _, cat := range categories {
		out = append(out, publicCategory{
			Category:        cat,
			DiscountAmount:  cat.DiscountAmount(),
			DiscountPercent: cat.DiscountPercent(),
		})
	}

	body, err := json.Marshal(out)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch categories"})
		return
	}
	h.store.Set(c.Request.Context(), key, body, cache.DefaultTTL)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// List returns all categories for the admin screens. `?all=true` skips
// pagination and is served through the cache.
func (h *CategoryHandler) List(c *gin.Context) {
	if c.Query("all") == "true" {
		key := cache.ListKey("categories", "admin")
		if body, ok := h.store.Get(c.Request.Context(), key); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			return
		}

		var categories []models.Category
		if err := h.db.Order("name asc").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch categories"})
			return
		}
		if categories == nil {
			categories = make([]models.Category, 0)
		}
		body, err := json.Marshal(categories)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch categories"})
			return
		}
		h.store.Set(c.Request.Context(), key, body, cache.DefaultTTL)
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	var totalRows int64
	h.db.Model(&models.Category{}).Count(&totalRows)

	var categories []models.Category
	if err := h.db.Order("name asc").Scopes(Paginate(c)).Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch categories"})
		return
	}
	if categories == nil {
		categories = make([]models.Category, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, categories, totalRows))
}

// Get returns one category by ID.
func (h *CategoryHandler) Get(c *gin.Context) {
	id := c.Param("id")
	var category models.Category
	if err := h.db.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// Create inserts a new category.
func (h *CategoryHandler) Create(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.validateFees() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fees must not be negative"})
		return
	}

	category := models.Category{
		Name:          input.Name,
		ActualFee:     input.ActualFee,
		OfferFee:      input.OfferFee,
		IsActive:      true,
		IsHighlighted: input.IsHighlighted,
		PopupImageURL: input.PopupImageURL,
		QRImageURL:    input.QRImageURL,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if err := h.db.Create(&category).Error; err != nil {
		slog.Error("Category create failed", "name", input.Name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	h.changed(c, realtime.ActionInsert)
	c.JSON(http.StatusCreated, category)
}

// Update replaces the full field set of an existing category and refreshes
// its updated_at timestamp.
func (h *CategoryHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var category models.Category
	if err := h.db.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.validateFees() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fees must not be negative"})
		return
	}

	category.Name = input.Name
	category.ActualFee = input.ActualFee
	category.OfferFee = input.OfferFee
	category.IsHighlighted = input.IsHighlighted
	category.PopupImageURL = input.PopupImageURL
	category.QRImageURL = input.QRImageURL
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := h.db.Save(&category).Error; err != nil {
		slog.Error("Category update failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	h.changed(c, realtime.ActionUpdate)
	c.JSON(http.StatusOK, category)
}

// Delete removes a category permanently. Categories referenced by
// registrations cannot be deleted.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var count int64
	h.db.Model(&models.Registration{}).Where("category_id = ?", id).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete category: it has registrations"})
		return
	}

	if result := h.db.Delete(&models.Category{}, id); result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete category: it has registrations"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		}
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
	} else {
		h.changed(c, realtime.ActionDelete)
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
