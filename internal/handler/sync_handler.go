package handler

import (
	"net/http"

	"fueldepot/internal/middleware"
	"fueldepot/internal/model"
	"fueldepot/internal/service"
	"fueldepot/internal/sheets"
	"fueldepot/pkg/response"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	relay         *sheets.Client
	reportService service.ReportService
}

// NewSyncHandler sets up the routing dependencies for relay sync endpoints.
func NewSyncHandler(relay *sheets.Client, reportService service.ReportService) *SyncHandler {
	return &SyncHandler{relay: relay, reportService: reportService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup.
func (h *SyncHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := middleware.RequireRole(model.RoleAdmin)
	officer := middleware.RequireRole(model.RoleAdmin, model.RoleOfficer)

	settings := router.Group("/settings/sync", admin)
	{
		settings.GET("", h.GetConfig)
		settings.PUT("", h.SetConfig)
	}

	sync := router.Group("/sync")
	{
		sync.GET("/status", officer, h.Status)
		sync.POST("/push", officer, h.Push)
		sync.POST("/pull", admin, h.Pull)
	}
}

type syncConfigPayload struct {
	WebAppURL        string `json:"webAppUrl"`
	TelegramBotToken string `json:"telegramBotToken"`
	TelegramChatID   string `json:"telegramChatId"`
}

// GetConfig handles GET /settings/sync; the bot token is masked in responses.
func (h *SyncHandler) GetConfig(c *gin.Context) {
	cfg := h.relay.Reload(c.Request.Context())
	masked := cfg
	if masked.TelegramBotToken != "" {
		masked.TelegramBotToken = "***"
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, masked))
}

// SetConfig handles PUT /settings/sync, persisting a new config version.
func (h *SyncHandler) SetConfig(c *gin.Context) {
	var payload syncConfigPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	cfg, err := h.relay.SetConfig(c.Request.Context(), payload.WebAppURL, payload.TelegramBotToken, payload.TelegramChatID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	cfg.TelegramBotToken = ""
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cfg))
}

// Status handles GET /sync/status
func (h *SyncHandler) Status(c *gin.Context) {
	ctx := c.Request.Context()
	cfg := h.relay.Config()

	status := map[string]interface{}{
		"sheetConfigured":    cfg.SheetConfigured(),
		"telegramConfigured": cfg.TelegramConfigured(),
	}
	if last, ok := h.relay.LastSync(ctx); ok {
		status["lastSync"] = last
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, status))
}

// Push handles POST /sync/push: one best-effort snapshot push. Delivery is
// not guaranteed; success means the relay accepted the connection.
func (h *SyncHandler) Push(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.relay.SyncAll(ctx, h.reportService.ExportAll(ctx)); err != nil {
		c.JSON(statusForError(err), response.Error(statusForError(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Snapshot pushed"))
}

// Pull handles POST /sync/pull: fetch the remote snapshot and import it over
// the local collections.
func (h *SyncHandler) Pull(c *gin.Context) {
	ctx := c.Request.Context()

	snapshot, err := h.relay.FetchAll(ctx)
	if err != nil {
		c.JSON(statusForError(err), response.Error(statusForError(err), err.Error()))
		return
	}
	if err := h.reportService.ImportAll(ctx, snapshot); err != nil {
		c.JSON(statusForError(err), response.Error(statusForError(err), err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Data pulled from sheet"))
}
