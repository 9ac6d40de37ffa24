package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinicware/clinic-scheduler/internal/middleware"
	"github.com/clinicware/clinic-scheduler/internal/models"
)

type ProfessionalHandler struct {
	db *gorm.DB
}

func NewProfessionalHandler(db *gorm.DB) *ProfessionalHandler {
	return &ProfessionalHandler{db: db}
}

// ======================================================
// LIST
// ======================================================

func (h *ProfessionalHandler) List(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	var professionals []models.Professional
	if err := h.db.
		Where("clinic_id = ?", clinicID).
		Order("created_at ASC").
		Find(&professionals).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed_to_list_professionals",
		})
		return
	}

	c.JSON(http.StatusOK, professionals)
}

// ======================================================
// CREATE
// ======================================================

type CreateProfessionalRequest struct {
	Name           string `json:"name" binding:"required"`
	Specialization string `json:"specialization" binding:"required,oneof=phisio speech secretary"`
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	professional := models.Professional{
		ID:             uuid.NewString(),
		ClinicID:       clinicID,
		Name:           req.Name,
		Specialization: req.Specialization,
	}

	if err := h.db.Create(&professional).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_professional"})
		return
	}

	c.JSON(http.StatusCreated, professional)
}
