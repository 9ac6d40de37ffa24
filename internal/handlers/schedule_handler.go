package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/clinicware/clinic-scheduler/internal/httperr"
	"github.com/clinicware/clinic-scheduler/internal/httpresp"
	"github.com/clinicware/clinic-scheduler/internal/middleware"
	"github.com/clinicware/clinic-scheduler/internal/timezone"
	uc "github.com/clinicware/clinic-scheduler/internal/usecase/appointment"
)

// ScheduleHandler serves the per-day professionals-with-appointments list
// the calendar grid is built from. Missing date means today.
type ScheduleHandler struct {
	listDayUC *uc.ListDaySchedule
}

func NewScheduleHandler(listDayUC *uc.ListDaySchedule) *ScheduleHandler {
	return &ScheduleHandler{listDayUC: listDayUC}
}

func (h *ScheduleHandler) GetDay(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	date := timezone.Today()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := timezone.ParseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		date = parsed
	}

	day, err := h.listDayUC.Execute(c.Request.Context(), clinicID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_schedule", "Erro ao carregar agenda.")
		return
	}

	httpresp.List(c, day)
}
