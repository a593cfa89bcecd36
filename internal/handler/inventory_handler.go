package handler

import (
	"net/http"

	"fueldepot/internal/middleware"
	"fueldepot/internal/model"
	"fueldepot/internal/service"
	"fueldepot/pkg/response"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	workflow service.WorkflowService
}

// NewInventoryHandler sets up the routing dependencies for inventory endpoints.
func NewInventoryHandler(workflow service.WorkflowService) *InventoryHandler {
	return &InventoryHandler{workflow: workflow}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup.
func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleOfficer, model.RoleRequester)
	officer := middleware.RequireRole(model.RoleAdmin, model.RoleOfficer)

	inv := router.Group("/inventory")
	{
		inv.GET("", anyRole, h.GetInventory)
		inv.POST("/receive", officer, h.ReceiveStock)
		inv.PUT("/:fuelType", middleware.RequireRole(model.RoleAdmin), h.SetLevel)
	}
}

// GetInventory handles GET /inventory
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.workflow.Inventory(c.Request.Context())))
}

// ReceiveStock handles POST /inventory/receive
// @Summary      Receive fuel into inventory
// @Description  Increments the bucket and appends a receive ledger entry. Capacity is not enforced.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.ReceiveStockInput  true  "Receive Payload"
// @Success      201      {object}  response.Response{data=model.Transaction}
// @Failure      400      {object}  response.Response
// @Router       /inventory/receive [post]
func (h *InventoryHandler) ReceiveStock(c *gin.Context) {
	var in service.ReceiveStockInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	officerID, _ := c.Get("userID")
	officer, _ := officerID.(string)

	tx, err := h.workflow.ReceiveStock(c.Request.Context(), in, officer)
	if err != nil {
		c.JSON(statusForError(err), response.Error(statusForError(err), err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, tx))
}

type setLevelPayload struct {
	Liters float64 `json:"liters" binding:"min=0"`
}

// SetLevel handles PUT /inventory/:fuelType, the administrative override.
// It bypasses the ledger and is not recorded as a transaction.
func (h *InventoryHandler) SetLevel(c *gin.Context) {
	var payload setLevelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	role, _ := c.Get("userRole")
	actorRole, _ := role.(string)

	inv, err := h.workflow.SetInventory(c.Request.Context(), c.Param("fuelType"), payload.Liters, actorRole)
	if err != nil {
		c.JSON(statusForError(err), response.Error(statusForError(err), err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, inv))
}
