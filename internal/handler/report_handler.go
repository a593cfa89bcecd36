package handler

import (
	"fmt"
	"net/http"
	"time"

	"fueldepot/internal/middleware"
	"fueldepot/internal/model"
	"fueldepot/internal/service"
	"fueldepot/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler sets up the routing dependencies for reporting endpoints.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup.
func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleOfficer, model.RoleRequester)
	officer := middleware.RequireRole(model.RoleAdmin, model.RoleOfficer)
	admin := middleware.RequireRole(model.RoleAdmin)

	reports := router.Group("/reports")
	{
		reports.GET("/summary", anyRole, h.Summary)
		reports.GET("/monthly", officer, h.Monthly)
		reports.GET("/monthly/export", officer, h.MonthlyCSV)
	}

	data := router.Group("/data", admin)
	{
		data.GET("/export", h.ExportAll)
		data.POST("/import", h.ImportAll)
	}
}

// Summary handles GET /reports/summary
// @Summary      Dashboard summary
// @Description  Request counts and the current inventory snapshot
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=service.SummaryStats}
// @Router       /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.reportService.Summary(c.Request.Context())))
}

// yearMonth resolves year/month query params, defaulting to the current month.
func yearMonth(c *gin.Context) (int, time.Month) {
	now := time.Now()
	year := parseIntQuery(c, "year", now.Year())
	month := parseIntQuery(c, "month", int(now.Month()))
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	return year, time.Month(month)
}

// Monthly handles GET /reports/monthly?year=&month=
func (h *ReportHandler) Monthly(c *gin.Context) {
	year, month := yearMonth(c)
	report := h.reportService.MonthlyReport(c.Request.Context(), year, month)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}

// MonthlyCSV handles GET /reports/monthly/export, streaming the ledger slice
// as a CSV attachment.
func (h *ReportHandler) MonthlyCSV(c *gin.Context) {
	year, month := yearMonth(c)
	data, err := h.reportService.TransactionsCSV(c.Request.Context(), year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	filename := fmt.Sprintf("fuel-transactions-%04d-%02d.csv", year, int(month))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportAll handles GET /data/export
// @Summary      Export all collections
// @Tags         data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=model.Snapshot}
// @Router       /data/export [get]
func (h *ReportHandler) ExportAll(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.reportService.ExportAll(c.Request.Context())))
}

// ImportAll handles POST /data/import
func (h *ReportHandler) ImportAll(c *gin.Context) {
	var snapshot model.Snapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid snapshot payload: "+err.Error()))
		return
	}

	if err := h.reportService.ImportAll(c.Request.Context(), snapshot); err != nil {
		c.JSON(statusForError(err), response.Error(statusForError(err), err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Data imported"))
}
