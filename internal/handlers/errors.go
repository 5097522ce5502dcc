package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"curanet/internal/middleware"
	"curanet/internal/services"
	"curanet/internal/utils"
)

// respondError maps a service error onto an HTTP response.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.ValidationFailed(c, verr.Error(), verr.Fields)
	case errors.Is(err, services.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, services.ErrDuplicateMedicalID):
		utils.Conflict(c, err.Error())
	default:
		middleware.Logger(c).Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		_ = c.Error(err)
		utils.InternalServerError(c, "Internal Server Error")
	}
}

// parseID reads a positive integer path parameter. It writes a 400 and
// returns false when the value is malformed.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.BadRequest(c, "Invalid "+name+": must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
