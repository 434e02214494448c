package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/jcgarciar/tasks-backend/internal/interface/http"
	"github.com/jcgarciar/tasks-backend/pkg/validation"
)

// UserModule wires the user routes. Both are public: registration is how a
// client obtains its first token.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/:email", m.Handler.GetByEmail)
		users.POST("/", validation.Body[handlers.CreateUserRequest](handlers.CtxCreateUserKey), m.Handler.Create)
	}
}
