package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/clinicware/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicware/clinic-scheduler/internal/httperr"
	"github.com/clinicware/clinic-scheduler/internal/httpresp"
	"github.com/clinicware/clinic-scheduler/internal/middleware"
	uc "github.com/clinicware/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC    *uc.CreateAppointment
	editUC      *uc.EditAppointment
	setStatusUC *uc.SetAppointmentStatus
	deleteUC    *uc.DeleteAppointment
}

func NewAppointmentHandler(
	createUC *uc.CreateAppointment,
	editUC *uc.EditAppointment,
	setStatusUC *uc.SetAppointmentStatus,
	deleteUC *uc.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:    createUC,
		editUC:      editUC,
		setStatusUC: setStatusUC,
		deleteUC:    deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	DurationMin    int    `json:"duration_min" binding:"required"`
	Location       string `json:"location" binding:"required"`
	Observation    string `json:"observation"`
	PatientID      string `json:"patient_id" binding:"required"`
	ProfessionalID string `json:"professional_id" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (req AppointmentRequest) toInput() domain.CreateInput {
	return domain.CreateInput{
		Date:           req.Date,
		Time:           req.Time,
		DurationMin:    req.DurationMin,
		Location:       req.Location,
		Observation:    req.Observation,
		PatientID:      req.PatientID,
		ProfessionalID: req.ProfessionalID,
	}
}

// ======================================================
// HELPERS
// ======================================================

func writeAppointmentError(c *gin.Context, err error) {
	if code, ok := httperr.AnyBusiness(err); ok {
		if code == "appointment_not_found" {
			httperr.NotFound(c, code, "Agendamento não encontrado.")
			return
		}
		httperr.BadRequest(c, code, "Dados inválidos.")
		return
	}
	httperr.Internal(c, "appointment_error", "Erro ao processar agendamento.")
}

func appointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), clinicID, userID, req.toInput())
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// EDIT
// ======================================================

func (h *AppointmentHandler) Edit(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := domain.EditInput{ID: id, CreateInput: req.toInput()}

	ap, err := h.editUC.Execute(c.Request.Context(), clinicID, userID, in)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// SET STATUS
// ======================================================

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.setStatusUC.Execute(
		c.Request.Context(),
		clinicID,
		userID,
		id,
		domain.Status(req.Status),
	)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), clinicID, userID, id); err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, nil)
}
