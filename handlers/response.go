package handlers

import (
	"Storefront/apperr"
	"Storefront/middleware"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// respondError writes {message, status:"fail"}. Internal errors are
// logged with their cause and answered with a generic message.
func respondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		middleware.RequestLogger(c).Error().Err(err).Msg("request failed")
	}
	_ = c.Error(err)

	c.JSON(apperr.HTTPStatus(kind), gin.H{
		"message": apperr.Message(err),
		"status":  "fail",
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": message,
		"status":  "fail",
	})
}

// paramID parses a positive numeric path parameter.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondBadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}
