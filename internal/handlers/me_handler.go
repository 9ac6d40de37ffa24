package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/clinicware/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicware/clinic-scheduler/internal/middleware"
	"github.com/clinicware/clinic-scheduler/internal/models"
)

type MeHandler struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewMeHandler(db *gorm.DB, repo domain.Repository) *MeHandler {
	return &MeHandler{db: db, repo: repo}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	clinic, err := h.repo.GetClinicByID(c.Request.Context(), user.ClinicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "clinic_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"phone":     user.Phone,
			"role":      user.Role,
			"clinic_id": user.ClinicID,
		},
		"clinic": gin.H{
			"id":      clinic.ID,
			"name":    clinic.Name,
			"cnpj":    clinic.CNPJ,
			"phone":   clinic.Phone,
			"address": clinic.Address,
		},
	})
}
