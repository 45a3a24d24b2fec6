package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope every failed request is answered with.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"Not Found"`
}

// Type aliases so swag can resolve models in annotations.
type Question = models.Question
type Category = models.Category

func abortWithStatus(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: http.StatusText(status),
	})
}

// abortWithError maps a service error kind to its status. Errors of no known
// kind are storage or unexpected failures and get the endpoint's fallback.
func abortWithError(c *gin.Context, err error, fallback int) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		abortWithStatus(c, http.StatusBadRequest)
	case errors.Is(err, services.ErrNotFound):
		abortWithStatus(c, http.StatusNotFound)
	default:
		abortWithStatus(c, fallback)
	}
}

// NotFound, MethodNotAllowed and InternalError render the envelope for the
// router's own failures.
func NotFound(c *gin.Context) {
	abortWithStatus(c, http.StatusNotFound)
}

func MethodNotAllowed(c *gin.Context) {
	abortWithStatus(c, http.StatusMethodNotAllowed)
}

func InternalError(c *gin.Context) {
	abortWithStatus(c, http.StatusInternalServerError)
}

// pageParam reads ?page, falling back to 1 when it is absent or not an
// integer. Integers too large for an int become math.MaxInt so they land
// beyond the last page rather than on the first.
func pageParam(c *gin.Context) int {
	raw := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	switch {
	case err == nil:
		return page
	case errors.Is(err, strconv.ErrRange):
		if strings.HasPrefix(raw, "-") {
			return math.MinInt
		}
		return math.MaxInt
	default:
		return 1
	}
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
