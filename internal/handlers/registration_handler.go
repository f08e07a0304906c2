package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/divan/num2words"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/pennyhelp/esep-self-employment-hub/internal/realtime"
	"github.com/pennyhelp/esep-self-employment-hub/models"
)

// RegistrationInput is the public application form payload. The fee is not
// part of it; the server always charges the category's current offer fee.
type RegistrationInput struct {
	FullName     string `json:"full_name" binding:"required"`
	Mobile       string `json:"mobile" binding:"required"`
	Address      string `json:"address"`
	WardNo       string `json:"ward_no"`
	CategoryID   uint   `json:"category_id" binding:"required"`
	PanchayathID uint   `json:"panchayath_id" binding:"required"`
}

// DecisionInput sets the status of a pending registration.
type DecisionInput struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// RegistrationHandler serves the public application endpoint and the admin
// registration workflow (listing, decisions, export, receipts).
type RegistrationHandler struct {
	db  *gorm.DB
	hub *realtime.Hub
}

func NewRegistrationHandler(db *gorm.DB, hub *realtime.Hub) *RegistrationHandler {
	return &RegistrationHandler{db: db, hub: hub}
}

func newRegistrationNo(id string) string {
	return "ESEP-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:10])
}

// Create accepts a public application for an active category.
func (h *RegistrationHandler) Create(c *gin.Context) {
	var input RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category models.Category
	if err := h.db.First(&category, input.CategoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if !category.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category is not open for registration"})
		return
	}
	var panchayath models.Panchayath
	if err := h.db.First(&panchayath, input.PanchayathID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Panchayath not found"})
		return
	}

	id := uuid.NewString()
	registration := models.Registration{
		ID:             id,
		RegistrationNo: newRegistrationNo(id),
		FullName:       input.FullName,
		Mobile:         input.Mobile,
		Address:        input.Address,
		WardNo:         input.WardNo,
		CategoryID:     category.ID,
		PanchayathID:   panchayath.ID,
		FeePaid:        category.OfferFee,
		Status:         models.RegistrationPending,
	}
	if err := h.db.Create(&registration).Error; err != nil {
		slog.Error("Registration create failed", "mobile", input.Mobile, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit registration"})
		return
	}
	h.hub.Publish("registrations", realtime.ActionInsert)
	c.JSON(http.StatusCreated, registration)
}

// List returns registrations for the admin screens, newest first, with
// optional status/category/panchayath filters.
func (h *RegistrationHandler) List(c *gin.Context) {
	query := h.db.Model(&models.Registration{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if panchayathID := c.Query("panchayath_id"); panchayathID != "" {
		query = query.Where("panchayath_id = ?", panchayathID)
	}

	var totalRows int64
	query.Count(&totalRows)

	var registrations []models.Registration
	if err := query.Preload("Category").Preload("Panchayath").
		Order("created_at desc").Scopes(Paginate(c)).
		Find(&registrations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch registrations"})
		return
	}
	if registrations == nil {
		registrations = make([]models.Registration, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, registrations, totalRows))
}

// Get returns one registration with its category and panchayath.
func (h *RegistrationHandler) Get(c *gin.Context) {
	var registration models.Registration
	if err := h.db.Preload("Category").Preload("Panchayath").
		First(&registration, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		return
	}
	c.JSON(http.StatusOK, registration)
}

// Decide approves or rejects a registration.
func (h *RegistrationHandler) Decide(c *gin.Context) {
	var registration models.Registration
	if err := h.db.First(&registration, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		return
	}

	var input DecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registration.Status = input.Status
	if err := h.db.Save(&registration).Error; err != nil {
		slog.Error("Registration decision failed", "id", registration.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update registration"})
		return
	}
	h.hub.Publish("registrations", realtime.ActionUpdate)
	c.JSON(http.StatusOK, registration)
}

// Export streams every registration as an xlsx workbook.
func (h *RegistrationHandler) Export(c *gin.Context) {
	var registrations []models.Registration
	if err := h.db.Preload("Category").Preload("Panchayath").
		Order("created_at asc").Find(&registrations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch registrations"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Registrations"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Registration No", "Name", "Mobile", "Category", "Panchayath", "District", "Ward", "Fee Paid", "Status", "Submitted"}
	for i, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for row, reg := range registrations {
		values := []interface{}{
			reg.RegistrationNo,
			reg.FullName,
			reg.Mobile,
			reg.Category.Name,
			reg.Panchayath.Name,
			reg.Panchayath.District,
			reg.WardNo,
			reg.FeePaid.InexactFloat64(),
			reg.Status,
			reg.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("registrations-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		slog.Error("Registration export failed", "error", err)
	}
}

// Receipt returns the payment receipt data for one registration, with the
// fee amount spelled out in words.
func (h *RegistrationHandler) Receipt(c *gin.Context) {
	var registration models.Registration
	if err := h.db.Preload("Category").Preload("Panchayath").
		First(&registration, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"registration_no": registration.RegistrationNo,
		"full_name":       registration.FullName,
		"category":        registration.Category.Name,
		"panchayath":      registration.Panchayath.Name,
		"district":        registration.Panchayath.District,
		"fee_paid":        registration.FeePaid,
		"fee_in_words":    feeInWords(registration.FeePaid.Round(0).IntPart()),
		"status":          registration.Status,
		"issued_at":       time.Now().UTC(),
	})
}

func feeInWords(amount int64) string {
	if amount <= 0 {
		return "Free of charge"
	}
	words := num2words.ConvertAnd(int(amount))
	if len(words) > 0 {
		words = strings.ToUpper(words[:1]) + words[1:]
	}
	return "Rupees " + words + " Only"
}
