package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/jcgarciar/tasks-backend/internal/interface/http"
	"github.com/jcgarciar/tasks-backend/internal/interface/middleware"
	"github.com/jcgarciar/tasks-backend/pkg/helpers"
	"github.com/jcgarciar/tasks-backend/pkg/validation"
)

// TaskModule wires the task routes. Every route sits behind the auth gate;
// create and update additionally run the validation gate before the handler.
type TaskModule struct {
	Handler *handlers.TaskHandler
	JWT     *helpers.JWTManager
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager) *TaskModule {
	return &TaskModule{Handler: h, JWT: jwt}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	auth := middleware.BearerAuth(m.JWT)

	tasks := rg.Group("/tasks")
	{
		tasks.GET("/", auth, m.Handler.GetAll)
		tasks.GET("/get-by-user", auth, m.Handler.GetByUser)
		tasks.POST("/", auth, validation.Body[handlers.CreateTaskRequest](handlers.CtxCreateTaskKey), m.Handler.Create)
		tasks.PUT("/:id", auth, validation.Body[handlers.UpdateTaskRequest](handlers.CtxUpdateTaskKey), m.Handler.Update)
		tasks.DELETE("/:id", auth, m.Handler.Delete)
	}
}
