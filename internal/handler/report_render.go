package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Massi21022535/Asistencia-Back/internal/models"
	"github.com/Massi21022535/Asistencia-Back/pkg/export"
	appErrors "github.com/Massi21022535/Asistencia-Back/pkg/errors"
	"github.com/Massi21022535/Asistencia-Back/pkg/response"
)

// renderGroupReport answers a report request as JSON (default), CSV
// or PDF depending on the format query parameter.
func renderGroupReport(c *gin.Context, groupID string, rows []models.GroupReportRow) {
	format := c.Query("format")
	if format == "" || format == "json" {
		response.JSON(c, http.StatusOK, rows)
		return
	}

	table := export.Table{
		Title:   fmt.Sprintf("Attendance report %s", groupID),
		Headers: []string{"Last name", "First names", "Present", "Total sessions", "Percentage"},
	}
	for _, row := range rows {
		percentage := ""
		if row.Percentage != nil {
			percentage = strconv.FormatFloat(*row.Percentage, 'f', 2, 64)
		}
		table.Rows = append(table.Rows, []string{
			row.LastName,
			row.FirstNames,
			strconv.Itoa(row.PresentCount),
			strconv.Itoa(row.TotalSessions),
			percentage,
		})
	}

	switch format {
	case "csv":
		data, err := export.RenderCSV(table)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv"))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=report-%s.csv", groupID))
		c.Data(http.StatusOK, "text/csv", data)
	case "pdf":
		data, err := export.RenderPDF(table)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf"))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=report-%s.pdf", groupID))
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unsupported format, use json, csv or pdf"))
	}
}
