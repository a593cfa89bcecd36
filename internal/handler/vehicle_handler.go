package handler

import (
	"net/http"

	"fueldepot/internal/middleware"
	"fueldepot/internal/model"
	"fueldepot/internal/service"
	"fueldepot/pkg/response"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleService service.VehicleService
}

// NewVehicleHandler sets up the routing dependencies for the vehicle registry.
func NewVehicleHandler(vehicleService service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup.
func (h *VehicleHandler) RegisterRoutes(router *gin.RouterGroup) {
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleOfficer, model.RoleRequester)
	officer := middleware.RequireRole(model.RoleAdmin, model.RoleOfficer)

	vehicles := router.Group("/vehicles")
	{
		vehicles.GET("", anyRole, h.ListVehicles)
		vehicles.GET("/options", anyRole, h.VehicleOptions)
		vehicles.GET("/:id", anyRole, h.GetVehicleByID)
		vehicles.POST("", officer, h.CreateVehicle)
		vehicles.PUT("/:id", officer, h.UpdateVehicle)
		vehicles.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.DeleteVehicle)
	}
}

// ListVehicles handles GET /vehicles with optional fuel_type/active filters
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	fuelType := c.Query("fuel_type")
	activeOnly := c.Query("active") == "true"
	vehicles := h.vehicleService.List(c.Request.Context(), fuelType, activeOnly)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, vehicles))
}

// VehicleOptions handles GET /vehicles/options for selection dropdowns
func (h *VehicleHandler) VehicleOptions(c *gin.Context) {
	opts := h.vehicleService.Options(c.Request.Context(), c.Query("fuel_type"))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, opts))
}

// GetVehicleByID handles GET /vehicles/:id
func (h *VehicleHandler) GetVehicleByID(c *gin.Context) {
	vehicle, err := h.vehicleService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), response.Error(statusForError(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, vehicle))
}

// CreateVehicle handles POST /vehicles
// @Summary      Register a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateVehicleRequest  true  "Vehicle Payload"
// @Success      201      {object}  response.Response{data=model.Vehicle}
// @Failure      400      {object}  response.Response
// @Router       /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req service.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusForError(err), response.Error(statusForError(err), err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, vehicle))
}

// UpdateVehicle handles PUT /vehicles/:id
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var req service.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(statusForError(err), response.Error(statusForError(err), err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, vehicle))
}

// DeleteVehicle handles DELETE /vehicles/:id
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.vehicleService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(statusForError(err), response.Error(statusForError(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Vehicle deleted"))
}
