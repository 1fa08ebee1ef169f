package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"rockroutes/internal/models/request_models"
	"rockroutes/internal/services"
	"rockroutes/pkg/middleware"
	"rockroutes/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a password account and return it with a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse{data=response_models.AuthResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if !bindJSON(c, &req, "Please include an email and password") {
		return
	}

	auth, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, auth, "Account created successfully")
}

// Login godoc
// @Summary Login with email and password
// @Description Authenticate a user and return a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse{data=response_models.AuthResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if !bindJSON(c, &req, "Please include an email and password") {
		return
	}

	auth, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, auth, "Login successful")
}

// GoogleAuth godoc
// @Summary Sign in with Google
// @Description Exchange a Google ID token for an account and bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.GoogleAuthRequest true "Google ID token"
// @Success 200 {object} utils.APIResponse{data=response_models.AuthResponse}
// @Failure 401 {object} utils.APIResponse
// @Router /auth/google [post]
func (a *AccountController) GoogleAuth(c *gin.Context) {
	var req request_models.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// a missing token is treated the same as a bad one
		utils.HandleServiceError(c, utils.ErrGoogleAuthFailed)
		return
	}

	auth, err := a.accountService.GoogleLogin(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, auth, "Login successful")
}

// GetUser godoc
// @Summary Current account
// @Description Return the account the bearer token belongs to
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=db_models.Account}
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /user [get]
func (a *AccountController) GetUser(c *gin.Context) {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrNotAuthenticated)
		return
	}

	utils.RespondWithStatus(c, http.StatusOK, account, "")
}
