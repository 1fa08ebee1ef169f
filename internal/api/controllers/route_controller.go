package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rockroutes/internal/models/db_models"
	"rockroutes/internal/models/request_models"
	"rockroutes/internal/services"
	"rockroutes/pkg/utils"
)

const invalidRouteID = "Invalid route ID"

type RouteController struct {
	routeService services.RouteServiceInterface
}

func NewRouteController(routeService services.RouteServiceInterface) *RouteController {
	return &RouteController{
		routeService: routeService,
	}
}

// CreateRoute godoc
// @Summary Create a route
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body request_models.CreateRouteRequest true "Route payload"
// @Success 201 {object} utils.APIResponse{data=db_models.Route}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes [post]
func (rc *RouteController) CreateRoute(c *gin.Context) {
	account, ok := requireAccount(c)
	if !ok {
		return
	}

	var req request_models.CreateRouteRequest
	if !bindJSON(c, &req, "Please include all required route fields") {
		return
	}

	route, err := rc.routeService.CreateRoute(c.Request.Context(), account.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, route, "Route created")
}

// ListRoutes godoc
// @Summary List the caller's routes
// @Tags Routes
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]db_models.Route}
// @Security BearerAuth
// @Router /routes [get]
func (rc *RouteController) ListRoutes(c *gin.Context) {
	account, ok := requireAccount(c)
	if !ok {
		return
	}

	routes, err := rc.routeService.ListRoutes(c.Request.Context(), account.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, routes, "Fetched routes successfully")
}

// GetRoute godoc
// @Summary Get a route
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} utils.APIResponse{data=db_models.Route}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/{id} [get]
func (rc *RouteController) GetRoute(c *gin.Context) {
	rc.byID(c, "", rc.routeService.GetRoute)
}

// UpdateRoute godoc
// @Summary Update a route
// @Description Only fields present in the payload change; owner and timestamps are ignored
// @Tags Routes
// @Accept json
// @Produce json
// @Param id path string true "Route ID"
// @Param request body request_models.UpdateRouteRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=db_models.Route}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/{id} [put]
func (rc *RouteController) UpdateRoute(c *gin.Context) {
	account, ok := requireAccount(c)
	if !ok {
		return
	}
	id, ok := pathID(c, invalidRouteID)
	if !ok {
		return
	}

	var req request_models.UpdateRouteRequest
	if !bindJSON(c, &req, "Validation failed") {
		return
	}

	route, err := rc.routeService.UpdateRoute(c.Request.Context(), account.ID, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route updated")
}

// DeleteRoute godoc
// @Summary Delete a route
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/{id} [delete]
func (rc *RouteController) DeleteRoute(c *gin.Context) {
	account, ok := requireAccount(c)
	if !ok {
		return
	}
	id, ok := pathID(c, invalidRouteID)
	if !ok {
		return
	}

	if err := rc.routeService.DeleteRoute(c.Request.Context(), account.ID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Route removed")
}

// LogAttempt godoc
// @Summary Log one attempt on a route
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} utils.APIResponse{data=db_models.Route}
// @Security BearerAuth
// @Router /routes/{id}/log-attempt [put]
func (rc *RouteController) LogAttempt(c *gin.Context) {
	rc.byID(c, "Attempt logged", rc.routeService.LogAttempt)
}

// ToggleProject godoc
// @Summary Flip the project flag of a route
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} utils.APIResponse{data=db_models.Route}
// @Security BearerAuth
// @Router /routes/{id}/toggle-project [put]
func (rc *RouteController) ToggleProject(c *gin.Context) {
	rc.byID(c, "Project status updated", rc.routeService.ToggleProject)
}

// MarkComplete godoc
// @Summary Mark a route complete
// @Description Idempotent; a completed route is returned unchanged
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} utils.APIResponse{data=db_models.Route}
// @Security BearerAuth
// @Router /routes/{id}/mark-complete [put]
func (rc *RouteController) MarkComplete(c *gin.Context) {
	rc.byID(c, "Route marked complete", rc.routeService.MarkComplete)
}

type routeAction func(ctx context.Context, accountID uuid.UUID, routeID uuid.UUID) (*db_models.Route, error)

// byID runs a body-less, id-addressed route operation.
func (rc *RouteController) byID(c *gin.Context, message string, action routeAction) {
	account, ok := requireAccount(c)
	if !ok {
		return
	}
	id, ok := pathID(c, invalidRouteID)
	if !ok {
		return
	}

	route, err := action(c.Request.Context(), account.ID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, message)
}
