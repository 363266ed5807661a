package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"field-service-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	defaultExportWindow = 30 * 24 * time.Hour
)

// AssignmentLogHandler handles HTTP requests for the assignment audit trail
type AssignmentLogHandler struct {
	logService service.AssignmentLogServiceInterface
	now        func() time.Time
}

// NewAssignmentLogHandler creates a new assignment log handler
func NewAssignmentLogHandler(logService service.AssignmentLogServiceInterface) *AssignmentLogHandler {
	return &AssignmentLogHandler{logService: logService, now: time.Now}
}

// GetJobHistory returns a job's assignment log in replay order
// @Summary Get a job's assignment history
// @Tags assignment-logs
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Success 200 {array} models.AssignmentLog
// @Failure 404 {object} ErrorResponse "Job not found"
// @Security BearerAuth
// @Router /jobs/{id}/assignment-logs [get]
func (h *AssignmentLogHandler) GetJobHistory(c *gin.Context) {
	id, ok := pathUUID(c, "id", "job")
	if !ok {
		return
	}

	entries, err := h.logService.GetJobHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ListAssignmentLogs returns all entries newest first
// @Summary List assignment logs
// @Tags assignment-logs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.AssignmentLogListResponse
// @Security BearerAuth
// @Router /assignment-logs [get]
func (h *AssignmentLogHandler) ListAssignmentLogs(c *gin.Context) {
	page, pageSize, err := pagination(c)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.logService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ExportAssignmentLogs downloads entries in a date range as an XLSX workbook
// @Summary Export assignment logs
// @Description Date-only bounds cover whole days: to=2024-03-31 includes all of March 31st.
// @Description Defaults to the last 30 days.
// @Tags assignment-logs
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string false "Start date (YYYY-MM-DD or RFC 3339)"
// @Param to query string false "End date (YYYY-MM-DD or RFC 3339)"
// @Success 200 {file} file "Workbook"
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Security BearerAuth
// @Router /assignment-logs/export [get]
func (h *AssignmentLogHandler) ExportAssignmentLogs(c *gin.Context) {
	from, err := queryDate(c, "from")
	if err != nil {
		respondError(c, err)
		return
	}
	to, err := queryDate(c, "to")
	if err != nil {
		respondError(c, err)
		return
	}

	end := h.now().UTC()
	if to != nil {
		end = *to
		if len(c.Query("to")) == len(queryDateLayout) {
			end = end.AddDate(0, 0, 1)
		}
	}
	start := end.Add(-defaultExportWindow)
	if from != nil {
		start = *from
	}

	var buf bytes.Buffer
	if err := h.logService.ExportXLSX(c.Request.Context(), start, end, &buf); err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("assignment-logs-%s-%s.xlsx", start.Format(queryDateLayout), end.Format(queryDateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
