package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/clinicware/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicware/clinic-scheduler/internal/middleware"
	"github.com/clinicware/clinic-scheduler/internal/models"
)

type PatientHandler struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewPatientHandler(db *gorm.DB, repo domain.Repository) *PatientHandler {
	return &PatientHandler{db: db, repo: repo}
}

// ======================================================
// LIST
// ======================================================

func (h *PatientHandler) List(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	query := strings.TrimSpace(c.Query("query"))

	patients, err := h.repo.ListPatients(c.Request.Context(), clinicID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed_to_list_patients",
		})
		return
	}

	c.JSON(http.StatusOK, patients)
}

// ======================================================
// CREATE
// ======================================================

type CreatePatientRequest struct {
	Name       string `json:"name" binding:"required"`
	MotherName string `json:"mother_name" binding:"required"`
	FatherName string `json:"father_name"`
	Diagnosis  string `json:"diagnosis" binding:"required"`
}

func (h *PatientHandler) Create(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	patient := models.Patient{
		ID:         uuid.NewString(),
		ClinicID:   clinicID,
		Name:       req.Name,
		MotherName: req.MotherName,
		FatherName: req.FatherName,
		Diagnosis:  req.Diagnosis,
	}

	if err := h.db.Create(&patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_patient"})
		return
	}

	c.JSON(http.StatusCreated, patient)
}
