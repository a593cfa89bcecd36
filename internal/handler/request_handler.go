package handler

import (
	"net/http"
	"strconv"

	"fueldepot/internal/middleware"
	"fueldepot/internal/model"
	"fueldepot/internal/repository"
	"fueldepot/internal/service"
	"fueldepot/pkg/pagination"
	"fueldepot/pkg/response"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	workflow service.WorkflowService
	requests repository.RequestRepository
}

// NewRequestHandler sets up the routing dependencies for fuel requests.
func NewRequestHandler(workflow service.WorkflowService, requests repository.RequestRepository) *RequestHandler {
	return &RequestHandler{workflow: workflow, requests: requests}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup.
func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleOfficer, model.RoleRequester)
	officer := middleware.RequireRole(model.RoleAdmin, model.RoleOfficer)

	reqs := router.Group("/requests")
	{
		reqs.GET("", anyRole, h.ListRequests)
		reqs.GET("/:id", anyRole, h.GetRequestByID)
		reqs.POST("", anyRole, h.SubmitRequest)
		reqs.POST("/:id/process", officer, h.ProcessRequest)
		reqs.POST("/:id/reject", officer, h.RejectRequest)
	}
}

// ListRequests handles GET /requests with optional status/mine filters
// @Summary      List fuel requests
// @Description  Newest-first. Requesters see only their own requests.
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Items per page"
// @Success      200     {object}  response.Response{data=object}
// @Router       /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	ctx := c.Request.Context()
	role, _ := c.Get("userRole")
	userID, _ := c.Get("userID")

	var reqs []model.FuelRequest
	if role == model.RoleRequester {
		id, _ := userID.(string)
		reqs = h.requests.GetByRequester(ctx, id)
	} else if status := c.Query("status"); status != "" {
		reqs = h.requests.GetByStatus(ctx, status)
	} else {
		reqs = h.requests.GetAll(ctx)
	}

	params := pagination.Parse(c)
	total := len(reqs)
	start := params.Offset
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"requests": reqs[start:end],
		"total":    total,
		"page":     params.Page,
		"limit":    params.Limit,
	}))
}

// GetRequestByID handles GET /requests/:id
func (h *RequestHandler) GetRequestByID(c *gin.Context) {
	req, found := h.requests.GetByID(c.Request.Context(), c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Request not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, req))
}

// SubmitRequest handles POST /requests
// @Summary      Submit a fuel request
// @Description  Creates a pending request. Stock is not checked at submission.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.SubmitRequestInput  true  "Request Payload"
// @Success      201      {object}  response.Response{data=model.FuelRequest}
// @Failure      400      {object}  response.Response
// @Router       /requests [post]
func (h *RequestHandler) SubmitRequest(c *gin.Context) {
	var in service.SubmitRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	// Requesters submit for themselves; the snapshot fields come from the token.
	if role, _ := c.Get("userRole"); role == model.RoleRequester {
		if id, ok := c.Get("userID"); ok {
			in.RequesterID, _ = id.(string)
		}
		if name, ok := c.Get("userName"); ok {
			in.RequesterName, _ = name.(string)
		}
	}

	req, err := h.workflow.SubmitRequest(c.Request.Context(), in)
	if err != nil {
		c.JSON(statusForError(err), response.Error(statusForError(err), err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, req))
}

type processRequestPayload struct {
	ActualLiters float64 `json:"actualLiters" binding:"required,gt=0"`
}

// ProcessRequest handles POST /requests/:id/process
// @Summary      Approve and dispense a request
// @Description  Moves a pending request to completed, decrements inventory and appends a dispense ledger entry
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "Request ID"
// @Param        payload  body      processRequestPayload  true  "Actual liters dispensed"
// @Success      200      {object}  response.Response{data=model.FuelRequest}
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response  "insufficient stock"
// @Router       /requests/{id}/process [post]
func (h *RequestHandler) ProcessRequest(c *gin.Context) {
	var payload processRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	officerID, _ := c.Get("userID")
	officer, _ := officerID.(string)

	req, err := h.workflow.ProcessRequest(c.Request.Context(), c.Param("id"), officer, payload.ActualLiters)
	if err != nil {
		c.JSON(statusForError(err), response.Error(statusForError(err), err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, req))
}

// RejectRequest handles POST /requests/:id/reject
func (h *RequestHandler) RejectRequest(c *gin.Context) {
	officerID, _ := c.Get("userID")
	officer, _ := officerID.(string)

	req, err := h.workflow.RejectRequest(c.Request.Context(), c.Param("id"), officer)
	if err != nil {
		c.JSON(statusForError(err), response.Error(statusForError(err), err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, req))
}

// parseIntQuery is shared by report handlers for year/month params.
func parseIntQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}
