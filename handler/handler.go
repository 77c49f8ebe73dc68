package handler

import (
	"errors"
	"strconv"

	"quicknotes/usecase"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps the usecase failure taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, usecase.ErrForbidden):
		utils.Forbidden(c, "Forbidden")
	case errors.Is(err, usecase.ErrNotModified):
		utils.NotModified(c)
	case errors.Is(err, usecase.ErrUnauthenticated):
		utils.Unauthorized(c, err.Error())
	case errors.Is(err, usecase.ErrAlreadyExists),
		errors.Is(err, usecase.ErrNoteArchived),
		errors.Is(err, usecase.ErrTagNotAttached),
		errors.Is(err, usecase.ErrTextRequired),
		errors.Is(err, usecase.ErrNameRequired):
		utils.BadRequest(c, err.Error())
	default:
		utils.TrackError("internal")
		utils.InternalError(c, "Internal server error")
	}
}

// parseID reads the numeric id path parameter.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}
