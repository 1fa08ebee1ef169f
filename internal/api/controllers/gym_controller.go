package controllers

import (
	"github.com/gin-gonic/gin"
	"rockroutes/internal/models/request_models"
	"rockroutes/internal/services"
	"rockroutes/pkg/utils"
)

const invalidGymID = "Invalid gym ID"

type GymController struct {
	gymService services.GymServiceInterface
}

func NewGymController(gymService services.GymServiceInterface) *GymController {
	return &GymController{
		gymService: gymService,
	}
}

// CreateGym godoc
// @Summary Create a gym
// @Tags Gyms
// @Accept json
// @Produce json
// @Param request body request_models.CreateGymRequest true "Gym payload"
// @Success 201 {object} utils.APIResponse{data=db_models.Gym}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /gyms [post]
func (gc *GymController) CreateGym(c *gin.Context) {
	account, ok := requireAccount(c)
	if !ok {
		return
	}

	var req request_models.CreateGymRequest
	if !bindJSON(c, &req, "Please include all required gym fields") {
		return
	}

	gym, err := gc.gymService.CreateGym(c.Request.Context(), account.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gym, "Gym created")
}

// ListGyms godoc
// @Summary List the caller's gyms
// @Tags Gyms
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]db_models.Gym}
// @Security BearerAuth
// @Router /gyms [get]
func (gc *GymController) ListGyms(c *gin.Context) {
	account, ok := requireAccount(c)
	if !ok {
		return
	}

	gyms, err := gc.gymService.ListGyms(c.Request.Context(), account.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gyms, "Fetched gyms successfully")
}

// GetGym godoc
// @Summary Get a gym
// @Tags Gyms
// @Produce json
// @Param id path string true "Gym ID"
// @Success 200 {object} utils.APIResponse{data=db_models.Gym}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /gyms/{id} [get]
func (gc *GymController) GetGym(c *gin.Context) {
	account, ok := requireAccount(c)
	if !ok {
		return
	}
	id, ok := pathID(c, invalidGymID)
	if !ok {
		return
	}

	gym, err := gc.gymService.GetGym(c.Request.Context(), account.ID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gym, "")
}

// UpdateGym godoc
// @Summary Update a gym
// @Description Only fields present in the payload change; owner and timestamps are ignored
// @Tags Gyms
// @Accept json
// @Produce json
// @Param id path string true "Gym ID"
// @Param request body request_models.UpdateGymRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=db_models.Gym}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /gyms/{id} [put]
func (gc *GymController) UpdateGym(c *gin.Context) {
	account, ok := requireAccount(c)
	if !ok {
		return
	}
	id, ok := pathID(c, invalidGymID)
	if !ok {
		return
	}

	var req request_models.UpdateGymRequest
	if !bindJSON(c, &req, "Validation failed") {
		return
	}

	gym, err := gc.gymService.UpdateGym(c.Request.Context(), account.ID, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gym, "Gym updated")
}

// DeleteGym godoc
// @Summary Delete a gym and its routes
// @Tags Gyms
// @Produce json
// @Param id path string true "Gym ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /gyms/{id} [delete]
func (gc *GymController) DeleteGym(c *gin.Context) {
	account, ok := requireAccount(c)
	if !ok {
		return
	}
	id, ok := pathID(c, invalidGymID)
	if !ok {
		return
	}

	if err := gc.gymService.DeleteGym(c.Request.Context(), account.ID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Gym removed")
}
