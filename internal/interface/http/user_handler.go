package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jcgarciar/tasks-backend/internal/application"
	"github.com/jcgarciar/tasks-backend/pkg/apperr"
	"github.com/jcgarciar/tasks-backend/pkg/validation"
)

// CtxCreateUserKey is the context key for the validated registration body.
const CtxCreateUserKey = "createUserRequest"

type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	u := h.Svc.GetByEmail(c.Request.Context(), c.Param("email"))
	if u == nil {
		respondError(c, h.Logger, apperr.New("Registro no encontrado"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": u.ID.Hex(), "email": u.Email})
}

// Create registers the email on first sight and answers with the user plus a
// bearer token either way; isNew tells the caller which case happened.
func (h *UserHandler) Create(c *gin.Context) {
	req := validation.FromContext[CreateUserRequest](c, CtxCreateUserKey)

	res, err := h.Svc.GetOrCreate(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
