package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Massi21022535/Asistencia-Back/internal/service"
	appErrors "github.com/Massi21022535/Asistencia-Back/pkg/errors"
	"github.com/Massi21022535/Asistencia-Back/pkg/response"
)

// TeacherHandler serves the teacher-scoped endpoints. Every operation
// is authorized against the caller's teaching assignments inside the
// services; the handler only threads the authenticated identity
// through.
type TeacherHandler struct {
	groups     *service.GroupService
	sessions   *service.SessionService
	attendance *service.AttendanceService
	reports    *service.ReportService
	notes      *service.NoteService
	metrics    *service.MetricsService
}

// NewTeacherHandler creates a new handler.
func NewTeacherHandler(groups *service.GroupService, sessions *service.SessionService, attendance *service.AttendanceService, reports *service.ReportService, notes *service.NoteService, metrics *service.MetricsService) *TeacherHandler {
	return &TeacherHandler{
		groups:     groups,
		sessions:   sessions,
		attendance: attendance,
		reports:    reports,
		notes:      notes,
		metrics:    metrics,
	}
}

// Groups godoc
// @Summary List the caller's groups
// @Tags Teacher
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teacher/groups [get]
func (h *TeacherHandler) Groups(c *gin.Context) {
	claims := claimsFromContext(c)
	groups, err := h.groups.GroupsForTeacher(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, groups)
}

// Students godoc
// @Summary List enrolled students of a group
// @Tags Teacher
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /teacher/groups/{groupID}/students [get]
func (h *TeacherHandler) Students(c *gin.Context) {
	claims := claimsFromContext(c)
	students, err := h.groups.Roster(c.Request.Context(), claims.UserID, c.Param("groupID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// ListSessions godoc
// @Summary List the sessions of a group, newest first
// @Tags Sessions
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /teacher/groups/{groupID}/sessions [get]
func (h *TeacherHandler) ListSessions(c *gin.Context) {
	claims := claimsFromContext(c)
	sessions, err := h.sessions.List(c.Request.Context(), claims.UserID, c.Param("groupID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions)
}

// OpenSession godoc
// @Summary Open a class session
// @Description Token mode returns a redemption link for the session QR; manual mode creates a session without a token
// @Tags Sessions
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID"
// @Param payload body service.OpenSessionRequest true "Session payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /teacher/groups/{groupID}/sessions [post]
func (h *TeacherHandler) OpenSession(c *gin.Context) {
	claims := claimsFromContext(c)

	var req service.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid session payload"))
		return
	}

	result, err := h.sessions.Open(c.Request.Context(), claims.UserID, c.Param("groupID"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// DeleteSession godoc
// @Summary Delete a session
// @Description Removes the session and cascades its presence records; the token becomes permanently unresolvable
// @Tags Sessions
// @Produce json
// @Param groupID path string true "Group ID"
// @Param sessionID path string true "Session ID"
// @Success 204 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teacher/groups/{groupID}/sessions/{sessionID} [delete]
func (h *TeacherHandler) DeleteSession(c *gin.Context) {
	claims := claimsFromContext(c)
	if err := h.sessions.Delete(c.Request.Context(), claims.UserID, c.Param("groupID"), c.Param("sessionID")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// BulkMark godoc
// @Summary Manually mark students present in a session
// @Description Additive insert-or-ignore per student; unknown or unenrolled IDs are skipped without failing the batch
// @Tags Attendance
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID"
// @Param sessionID path string true "Session ID"
// @Param payload body service.BulkMarkRequest true "Student IDs"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teacher/groups/{groupID}/sessions/{sessionID}/attendance [post]
func (h *TeacherHandler) BulkMark(c *gin.Context) {
	claims := claimsFromContext(c)

	var req service.BulkMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid bulk marking payload"))
		return
	}

	result, err := h.attendance.MarkBulk(c.Request.Context(), claims.UserID, c.Param("groupID"), c.Param("sessionID"), req)
	if err != nil {
		h.metrics.ObserveMark("bulk", appErrors.FromError(err).Code)
		response.Error(c, err)
		return
	}

	h.metrics.ObserveMark("bulk", "ok")
	response.JSON(c, http.StatusOK, result)
}

// SessionDetail godoc
// @Summary Per-session attendance detail
// @Tags Attendance
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teacher/sessions/{sessionID}/attendance [get]
func (h *TeacherHandler) SessionDetail(c *gin.Context) {
	claims := claimsFromContext(c)
	rows, err := h.reports.SessionDetail(c.Request.Context(), claims.Identity(), c.Param("sessionID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// GroupReport godoc
// @Summary Per-group attendance percentages
// @Tags Reports
// @Produce json
// @Param groupID path string true "Group ID"
// @Param format query string false "json, csv or pdf"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /teacher/groups/{groupID}/report [get]
func (h *TeacherHandler) GroupReport(c *gin.Context) {
	claims := claimsFromContext(c)
	groupID := c.Param("groupID")
	rows, err := h.reports.GroupReport(c.Request.Context(), claims.Identity(), groupID)
	if err != nil {
		response.Error(c, err)
		return
	}
	renderGroupReport(c, groupID, rows)
}

// CreateNote godoc
// @Summary Record a note for a student
// @Tags Notes
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID"
// @Param studentID path string true "Student ID"
// @Param payload body service.CreateNoteRequest true "Note payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /teacher/groups/{groupID}/students/{studentID}/notes [post]
func (h *TeacherHandler) CreateNote(c *gin.Context) {
	claims := claimsFromContext(c)

	var req service.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid note payload"))
		return
	}

	note, err := h.notes.Create(c.Request.Context(), claims.UserID, c.Param("groupID"), c.Param("studentID"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, note)
}

// ListNotes godoc
// @Summary List a student's notes, newest first
// @Tags Notes
// @Produce json
// @Param groupID path string true "Group ID"
// @Param studentID path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /teacher/groups/{groupID}/students/{studentID}/notes [get]
func (h *TeacherHandler) ListNotes(c *gin.Context) {
	claims := claimsFromContext(c)
	notes, err := h.notes.List(c.Request.Context(), claims.UserID, c.Param("groupID"), c.Param("studentID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notes)
}
