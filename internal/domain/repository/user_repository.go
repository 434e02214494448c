package repository

import (
	"context"

	"github.com/jcgarciar/tasks-backend/internal/domain/entity"
)

// UserRepository defines user persistence over the document store.
type UserRepository interface {
	// FindByEmail returns the first user whose email matches exactly,
	// or ErrNotFound when no document matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Insert stores a new user document and fills in the assigned id.
	Insert(ctx context.Context, u *entity.User) error
}
