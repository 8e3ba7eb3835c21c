package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Massi21022535/Asistencia-Back/internal/service"
	appErrors "github.com/Massi21022535/Asistencia-Back/pkg/errors"
	"github.com/Massi21022535/Asistencia-Back/pkg/response"
)

// AttendanceHandler exposes the public self-service marking endpoint.
type AttendanceHandler struct {
	service *service.AttendanceService
	metrics *service.MetricsService
}

// NewAttendanceHandler creates a new handler.
func NewAttendanceHandler(svc *service.AttendanceService, metrics *service.MetricsService) *AttendanceHandler {
	return &AttendanceHandler{service: svc, metrics: metrics}
}

// Mark godoc
// @Summary Mark attendance via token
// @Description Student self-registers presence with a session token and their document number
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body service.MarkByTokenRequest true "Marking payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /attendance/mark [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req service.MarkByTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid marking payload"))
		return
	}

	if err := h.service.MarkByToken(c.Request.Context(), req); err != nil {
		h.metrics.ObserveMark("token", appErrors.FromError(err).Code)
		response.Error(c, err)
		return
	}

	h.metrics.ObserveMark("token", "ok")
	response.JSON(c, http.StatusOK, gin.H{"message": "attendance recorded"})
}
