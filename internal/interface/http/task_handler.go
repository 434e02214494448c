package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jcgarciar/tasks-backend/internal/application"
	"github.com/jcgarciar/tasks-backend/internal/domain/entity"
	"github.com/jcgarciar/tasks-backend/internal/interface/middleware"
	"github.com/jcgarciar/tasks-backend/pkg/validation"
)

// Context keys under which the validation gate stores parsed task bodies.
const (
	CtxCreateTaskKey = "createTaskRequest"
	CtxUpdateTaskKey = "updateTaskRequest"
)

// CreateTaskRequest is validated by the route's validation gate before the
// handler runs. completed is deliberately absent: clients cannot set it.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,min=10"`
	Description string `json:"description" binding:"required,min=15"`
	TaskDate    string `json:"task_date" binding:"required,taskdate"`
}

// UpdateTaskRequest requires all four mutable fields; updates have no
// partial-field semantics. Completed is a pointer so an explicit false
// passes the required check.
type UpdateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	TaskDate    string `json:"task_date" binding:"required"`
	Completed   *bool  `json:"completed" binding:"required"`
}

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

func (h *TaskHandler) GetAll(c *gin.Context) {
	data, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *TaskHandler) GetByUser(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	// Tri-state filter: absent means no completion filter; any present
	// value other than "true" (case-insensitive) means false.
	var completed *bool
	if q, ok := c.GetQuery("completed"); ok {
		b := strings.EqualFold(q, "true")
		completed = &b
	}

	data, err := h.Svc.ListByUser(c.Request.Context(), uid, completed)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *TaskHandler) Create(c *gin.Context) {
	req := validation.FromContext[CreateTaskRequest](c, CtxCreateTaskKey)

	// The owner comes from the authenticated identity, never from the body.
	uid := c.GetString(middleware.CtxUserIDKey)

	task, err := h.Svc.Create(c.Request.Context(), uid, application.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		TaskDate:    req.TaskDate,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	id := c.Param("id")
	req := validation.FromContext[UpdateTaskRequest](c, CtxUpdateTaskKey)

	data, err := h.Svc.Update(c.Request.Context(), id, entity.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		TaskDate:    req.TaskDate,
		Completed:   *req.Completed,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	ok, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, ok)
}
