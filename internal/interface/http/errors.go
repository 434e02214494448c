package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jcgarciar/tasks-backend/pkg/apperr"
	"github.com/jcgarciar/tasks-backend/pkg/response"
)

// respondError translates service failures into HTTP responses. Application
// errors map to their status and message; anything else is logged with its
// real cause and answered with a generic 500 that leaks nothing.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	if ae, ok := apperr.From(err); ok {
		response.Fail(c, ae.StatusCode, ae.Message)
		return
	}
	if logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"path":       c.FullPath(),
			"request_id": c.GetString("request_id"),
		}).Error("unexpected error")
	}
	response.Fail(c, http.StatusInternalServerError, "Error inesperado")
}
