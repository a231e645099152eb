package api

import (
	"net/http"
	"time"

	"parkspace-booking/internal/handler/httperr"
	"parkspace-booking/internal/pkg/caldate"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathID parses a UUID path parameter and aborts with 400 when it is malformed.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name+" format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func dateOrToday(s *string, today time.Time) (time.Time, error) {
	if s == nil || *s == "" {
		return today, nil
	}
	return caldate.Parse(*s)
}
