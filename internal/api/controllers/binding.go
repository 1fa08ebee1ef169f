package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rockroutes/internal/models/db_models"
	"rockroutes/pkg/middleware"
	"rockroutes/pkg/utils"
)

// bindJSON decodes the body and writes a 400 when it is malformed or fails
// its binding rules. Field failures come back keyed by JSON name.
func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if fields := utils.FieldErrors(err); fields != nil {
			utils.RespondValidationError(c, message, fields)
		} else {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		}
		return false
	}
	return true
}

// requireAccount returns the caller resolved by the auth gate.
func requireAccount(c *gin.Context) (*db_models.Account, bool) {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrNotAuthenticated)
		return nil, false
	}
	return account, true
}

// pathID parses the :id parameter. A malformed id is rejected before any
// lookup happens.
func pathID(c *gin.Context, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		utils.RespondError(c, http.StatusBadRequest, message)
		return uuid.Nil, false
	}
	return id, true
}
