package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Failure is the error envelope: {ok:false, message} or {ok:false, errors}.
// Success responses carry the raw payload with no wrapper; that asymmetry is
// part of the public surface and deliberately kept.
type Failure struct {
	OK      bool              `json:"ok"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Fail writes {ok:false, message} with the given status.
func Fail(c *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, Failure{OK: false, Message: message})
}

// FailFields writes a 400 with per-field validation details.
func FailFields(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, Failure{OK: false, Errors: fields})
}
