package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/studyboard/internal/common"
)

func respondOK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, payload)
}

// respondError maps service sentinels onto HTTP statuses. Anything
// unrecognized becomes a generic 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		respondStatus(c, http.StatusUnprocessableEntity, "validation_failed", "invalid input")
	case errors.Is(err, common.ErrorDuplicateUser):
		respondStatus(c, http.StatusConflict, "user_exists", "user already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		// one generic message for every auth failure
		respondStatus(c, http.StatusUnauthorized, "unauthorized", "invalid username or password")
	case errors.Is(err, common.ErrorForbidden):
		respondStatus(c, http.StatusForbidden, "forbidden", "forbidden")
	case errors.Is(err, common.ErrorNotFound):
		respondStatus(c, http.StatusNotFound, "not_found", "not found")
	default:
		respondStatus(c, http.StatusInternalServerError, "internal", "internal error")
	}
}

func respondStatus(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{"message": message, "code": code},
	})
}
