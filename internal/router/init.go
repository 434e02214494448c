package router

import (
	"github.com/jcgarciar/tasks-backend/internal/application"
	"github.com/jcgarciar/tasks-backend/internal/container"
	"github.com/jcgarciar/tasks-backend/internal/infrastructure/mongodb"
	handlers "github.com/jcgarciar/tasks-backend/internal/interface/http"
	"github.com/jcgarciar/tasks-backend/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	db := container.GetMongoDatabase()
	logger := container.GetLogger()

	userRepo := mongodb.NewUserRepository(db)
	userSvc := application.NewUserService(userRepo, container.GetJWT(), container.GetRabbitPub(), logger)
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))

	taskRepo := mongodb.NewTaskRepository(db)
	taskSvc := application.NewTaskService(taskRepo, logger)
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), container.GetJWT()))

	r.Add(modules.NewHealthModule(container.GetMongoClient()))
}
