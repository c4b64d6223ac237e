package httperr

import (
	"net/http"

	"estate-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// AbortWithError writes {"message", "error"} and records err on the context
// for the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status, Message: msg}
	if class := errs.Class(err); class != nil {
		resp.Error = class.Error()
	} else if status >= http.StatusInternalServerError {
		resp.Error = "internal error"
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err through the error taxonomy. Unclassified errors become 500s
// and never leak their message.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	msg, ok := errs.PublicMessage(err)
	if !ok || status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg)
}

func StatusOf(err error) int {
	switch errs.Class(err) {
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrForbidden:
		return http.StatusForbidden
	case errs.ErrConflict:
		return http.StatusConflict
	case errs.ErrInvalidState, errs.ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
