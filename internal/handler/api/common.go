package api

import (
	"errors"
	"io"
	"net/http"

	"estate-marketplace/internal/domain/user"
	"estate-marketplace/internal/handler/httperr"
	"estate-marketplace/internal/handler/middleware"
	"estate-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidID      = errs.Classify(errs.ErrValidation, "invalid id format")
	errInvalidRequest = errs.Classify(errs.ErrValidation, "invalid request format")
	errNoActor        = errs.New("authenticated actor missing from context")
)

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errInvalidID, err.Error()), "Invalid "+param+" format")
		return uuid.Nil, false
	}
	return id, true
}

func requireActor(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		// RequireAuth guards every route that calls this.
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoActor, "Internal server error")
		return user.Actor{}, false
	}
	return actor, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errInvalidRequest, err.Error()), "Invalid request format")
		return false
	}
	return true
}

// bindOptionalJSON accepts an empty body as the zero request.
func bindOptionalJSON(c *gin.Context, req any) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errInvalidRequest, err.Error()), "Invalid request format")
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errInvalidRequest, err.Error()), "Invalid query parameters")
		return false
	}
	return true
}

func success(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}
