package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ly3848/task-manager/internal/services"
)

// ReportHandler serves the aggregate reports.
type ReportHandler struct {
	reports *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// UserReport returns user totals and the role distribution.
func (h *ReportHandler) UserReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.reports.UserReport())
}

// TaskReport returns task distributions and the completion rate.
func (h *ReportHandler) TaskReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.reports.TaskReport())
}

// ProjectReport returns project totals and averages.
func (h *ReportHandler) ProjectReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.reports.ProjectReport())
}
