package httperr

import (
	"net/http"

	"parkspace-booking/internal/pkg/validation"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Kind    string `json:"kind,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, KindFor(status), err, msg, detail)
}

// Abort classifies err and writes the matching status, kind and message.
func Abort(c *gin.Context, err error) {
	m := Classify(err)
	abort(c, m.Status, m.Kind, err, m.Message, m.Detail)
}

// AbortBinding reports a request that failed binding or validation.
func AbortBinding(c *gin.Context, err error) {
	var detail any
	if fields := validation.FieldErrors(err); fields != nil {
		detail = gin.H{"fields": fields}
	}
	abort(c, http.StatusBadRequest, KindValidation, err, "Invalid request", detail)
}

func abort(c *gin.Context, status int, kind string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Kind = kind
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
