package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jcgarciar/tasks-backend/internal/domain/entity"
	"github.com/jcgarciar/tasks-backend/internal/domain/repository"
	"github.com/jcgarciar/tasks-backend/pkg/apperr"
)

// createdDateLayout is the display format for the created_date field in
// list responses.
const createdDateLayout = "2006-01-02 15:04:05"

var (
	errTaskNotFound  = apperr.New("No existe tarea")
	errTaskCompleted = apperr.New("No se puede eliminar tarea, tarea ya ha sido completada")
)

// TaskService layers business rules over the tasks collection.
type TaskService struct {
	Repo   repository.TaskRepository
	Logger *logrus.Logger
}

func NewTaskService(repo repository.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Repo: repo, Logger: logger}
}

// TaskResponse is the list-item shape: createdAt is stripped and replaced by
// the formatted created_date string.
type TaskResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TaskDate    string `json:"task_date"`
	Completed   bool   `json:"completed"`
	CreatedDate string `json:"created_date"`
}

func toResponse(t entity.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID.Hex(),
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		TaskDate:    t.TaskDate,
		Completed:   t.Completed,
		CreatedDate: t.CreatedAt.Format(createdDateLayout),
	}
}

func toResponses(tasks []entity.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toResponse(t))
	}
	return out
}

// ListAll returns every task ordered by task_date ascending.
func (s *TaskService) ListAll(ctx context.Context) ([]TaskResponse, error) {
	tasks, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(tasks), nil
}

// ListByUser returns the user's tasks ordered by task_date ascending,
// optionally filtered by completion when the filter is provided.
func (s *TaskService) ListByUser(ctx context.Context, userID string, completed *bool) ([]TaskResponse, error) {
	tasks, err := s.Repo.FindByUser(ctx, userID, completed)
	if err != nil {
		return nil, err
	}
	return toResponses(tasks), nil
}

// CreateTaskInput is the validated creation payload. completed and createdAt
// never come from the client.
type CreateTaskInput struct {
	Title       string
	Description string
	TaskDate    string
}

// Create persists a new task for the user. The completion flag is forced to
// false and createdAt is stamped server-side regardless of client input. The
// stored document is returned with its assigned id and raw createdAt.
func (s *TaskService) Create(ctx context.Context, userID string, in CreateTaskInput) (*entity.Task, error) {
	t := &entity.Task{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		TaskDate:    in.TaskDate,
		Completed:   false,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update overwrites the four mutable fields of an existing task and echoes
// the input back; the document is not reloaded from the store.
func (s *TaskService) Update(ctx context.Context, id string, data entity.TaskUpdate) (*entity.TaskUpdate, error) {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errTaskNotFound
		}
		return nil, err
	}
	if err := s.Repo.Update(ctx, id, data); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errTaskNotFound
		}
		return nil, err
	}
	return &data, nil
}

// Delete removes a task unless it is already completed. The completion check
// reads the stored flag at delete time only; reverting completion first makes
// the task deletable again.
func (s *TaskService) Delete(ctx context.Context, id string) (bool, error) {
	t, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, errTaskNotFound
		}
		return false, err
	}
	if t.Completed {
		return false, errTaskCompleted
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, errTaskNotFound
		}
		return false, err
	}
	return true, nil
}
