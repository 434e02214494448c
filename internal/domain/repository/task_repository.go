package repository

import (
	"context"
	"errors"

	"github.com/jcgarciar/tasks-backend/internal/domain/entity"
)

// ErrNotFound is returned by repositories when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// TaskRepository defines task persistence over the document store.
// Listing methods return tasks ordered by task_date ascending.
type TaskRepository interface {
	FindAll(ctx context.Context) ([]entity.Task, error)
	// FindByUser filters by owner; completed is tri-state (nil = no filter).
	FindByUser(ctx context.Context, userID string, completed *bool) ([]entity.Task, error)
	FindByID(ctx context.Context, id string) (*entity.Task, error)
	// Insert stores a new task document and fills in the assigned id.
	Insert(ctx context.Context, t *entity.Task) error
	// Update overwrites the four mutable fields of an existing document.
	Update(ctx context.Context, id string, data entity.TaskUpdate) error
	Delete(ctx context.Context, id string) error
}
