package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pennyhelp/esep-self-employment-hub/internal/cache"
	"github.com/pennyhelp/esep-self-employment-hub/internal/realtime"
	"github.com/pennyhelp/esep-self-employment-hub/models"
)

// PanchayathInput defines the payload for creating/updating a panchayath.
type PanchayathInput struct {
	Name     string `json:"name" binding:"required"`
	District string `json:"district" binding:"required"`
}

// PanchayathGroup is one district with its panchayaths sorted by name.
type PanchayathGroup struct {
	District    string              `json:"district"`
	Panchayaths []models.Panchayath `json:"panchayaths"`
}

// groupByDistrict folds rows already ordered by (district, name) into groups,
// so group order and member order both come straight from the query.
func groupByDistrict(rows []models.Panchayath) []PanchayathGroup {
	groups := make([]PanchayathGroup, 0)
	for _, p := range rows {
		if n := len(groups); n == 0 || groups[n-1].District != p.District {
			groups = append(groups, PanchayathGroup{District: p.District})
		}
		last := &groups[len(groups)-1]
		last.Panchayaths = append(last.Panchayaths, p)
	}
	return groups
}

// PanchayathHandler serves the grouped public listing and the admin CRUD.
type PanchayathHandler struct {
	db    *gorm.DB
	store cache.Store
	hub   *realtime.Hub
}

func NewPanchayathHandler(db *gorm.DB, store cache.Store, hub *realtime.Hub) *PanchayathHandler {
	return &PanchayathHandler{db: db, store: store, hub: hub}
}

func (h *PanchayathHandler) changed(c *gin.Context, action string) {
	h.store.Invalidate(c.Request.Context(), cache.TableKeys("panchayaths")...)
	h.hub.Publish("panchayaths", action)
}

// ListGrouped returns the panchayaths grouped by district, groups sorted by
// district and members by name.
func (h *PanchayathHandler) ListGrouped(c *gin.Context) {
	key := cache.ListKey("panchayaths", "grouped")
	if body, ok := h.store.Get(c.Request.Context(), key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	var rows []models.Panchayath
	if err := h.db.Order("district asc, name asc").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch panchayaths"})
		return
	}

	body, err := json.Marshal(groupByDistrict(rows))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch panchayaths"})
		return
	}
	h.store.Set(c.Request.Context(), key, body, cache.DefaultTTL)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// List returns all panchayaths for the admin screens, ordered by district
// then name. `?all=true` skips pagination and is served through the cache.
func (h *PanchayathHandler) List(c *gin.Context) {
	if c.Query("all") == "true" {
		key := cache.ListKey("panchayaths", "admin")
		if body, ok := h.store.Get(c.Request.Context(), key); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			return
		}

		var rows []models.Panchayath
		if err := h.db.Order("district asc, name asc").Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch panchayaths"})
			return
		}
		if rows == nil {
			rows = make([]models.Panchayath, 0)
		}
		body, err := json.Marshal(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch panchayaths"})
			return
		}
		h.store.Set(c.Request.Context(), key, body, cache.DefaultTTL)
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	var totalRows int64
	h.db.Model(&models.Panchayath{}).Count(&totalRows)

	var rows []models.Panchayath
	if err := h.db.Order("district asc, name asc").Scopes(Paginate(c)).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch panchayaths"})
		return
	}
	if rows == nil {
		rows = make([]models.Panchayath, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, rows, totalRows))
}

// Get returns one panchayath by ID.
func (h *PanchayathHandler) Get(c *gin.Context) {
	id := c.Param("id")
	var panchayath models.Panchayath
	if err := h.db.First(&panchayath, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Panchayath not found"})
		return
	}
	c.JSON(http.StatusOK, panchayath)
}

// Create inserts a new panchayath.
func (h *PanchayathHandler) Create(c *gin.Context) {
	var input PanchayathInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	panchayath := models.Panchayath{Name: input.Name, District: input.District}
	if err := h.db.Create(&panchayath).Error; err != nil {
		slog.Error("Panchayath create failed", "name", input.Name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create panchayath"})
		return
	}
	h.changed(c, realtime.ActionInsert)
	c.JSON(http.StatusCreated, panchayath)
}

// Update replaces the name and district of an existing panchayath.
func (h *PanchayathHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var panchayath models.Panchayath
	if err := h.db.First(&panchayath, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Panchayath not found"})
		return
	}

	var input PanchayathInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	panchayath.Name = input.Name
	panchayath.District = input.District
	if err := h.db.Save(&panchayath).Error; err != nil {
		slog.Error("Panchayath update failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update panchayath"})
		return
	}
	h.changed(c, realtime.ActionUpdate)
	c.JSON(http.StatusOK, panchayath)
}

// Delete removes a panchayath. Deletion is refused while registrations
// reference the row, mirroring the database constraint.
func (h *PanchayathHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var count int64
	h.db.Model(&models.Registration{}).Where("panchayath_id = ?", id).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete panchayath: it has registrations"})
		return
	}

	if result := h.db.Delete(&models.Panchayath{}, id); result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete panchayath: it has registrations"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete panchayath"})
		}
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Panchayath not found"})
	} else {
		h.changed(c, realtime.ActionDelete)
		c.JSON(http.StatusOK, gin.H{"message": "Panchayath deleted successfully"})
	}
}
