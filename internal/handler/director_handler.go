package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Massi21022535/Asistencia-Back/internal/service"
	"github.com/Massi21022535/Asistencia-Back/pkg/response"
)

// DirectorHandler serves the director-scoped endpoints. Director
// visibility is global; no teaching-assignment check applies.
type DirectorHandler struct {
	groups  *service.GroupService
	reports *service.ReportService
}

// NewDirectorHandler creates a new handler.
func NewDirectorHandler(groups *service.GroupService, reports *service.ReportService) *DirectorHandler {
	return &DirectorHandler{groups: groups, reports: reports}
}

// Groups godoc
// @Summary List every subject and group
// @Tags Director
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /director/groups [get]
func (h *DirectorHandler) Groups(c *gin.Context) {
	groups, err := h.groups.AllGroups(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, groups)
}

// GroupReport godoc
// @Summary Per-group attendance percentages, unrestricted
// @Tags Director
// @Produce json
// @Param groupID path string true "Group ID"
// @Param format query string false "json, csv or pdf"
// @Success 200 {object} response.Envelope
// @Router /director/groups/{groupID}/report [get]
func (h *DirectorHandler) GroupReport(c *gin.Context) {
	claims := claimsFromContext(c)
	groupID := c.Param("groupID")
	rows, err := h.reports.GroupReport(c.Request.Context(), claims.Identity(), groupID)
	if err != nil {
		response.Error(c, err)
		return
	}
	renderGroupReport(c, groupID, rows)
}

// SessionDetail godoc
// @Summary Per-session attendance detail, unrestricted
// @Tags Director
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /director/sessions/{sessionID}/attendance [get]
func (h *DirectorHandler) SessionDetail(c *gin.Context) {
	claims := claimsFromContext(c)
	rows, err := h.reports.SessionDetail(c.Request.Context(), claims.Identity(), c.Param("sessionID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}
