package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/jcgarciar/tasks-backend/internal/domain/entity"
	"github.com/jcgarciar/tasks-backend/internal/domain/repository"
	"github.com/jcgarciar/tasks-backend/pkg/helpers"
	"github.com/jcgarciar/tasks-backend/pkg/mailer"
)

// UserService implements lookup-by-email and get-or-create over the users
// collection. Publisher may be nil; the welcome email is best effort.
type UserService struct {
	Repo      repository.UserRepository
	JWT       *helpers.JWTManager
	Publisher *helpers.RabbitPublisher
	Logger    *logrus.Logger
}

func NewUserService(repo repository.UserRepository, jwt *helpers.JWTManager, pub *helpers.RabbitPublisher, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Publisher: pub, Logger: logger}
}

// AuthUser is the user shape returned by registration. IsNew is transient:
// computed per request, never persisted.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	IsNew bool   `json:"isNew"`
}

// AuthResult pairs the user with a freshly issued token.
type AuthResult struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token"`
}

// GetByEmail returns the user for an exact email match, or nil when no user
// is known. Store errors are reported as "no user" as well; callers cannot
// tell the cases apart, so the cause is logged here.
func (s *UserService) GetByEmail(ctx context.Context, email string) *entity.User {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Warn("user lookup failed, treating as not found")
		}
		return nil
	}
	return u
}

// GetOrCreate looks the email up and inserts a new user when absent. Either
// way a token is issued for the resulting identity. Two concurrent calls for
// the same unseen email can both insert: there is no uniqueness constraint
// or transaction, and that race is accepted.
func (s *UserService) GetOrCreate(ctx context.Context, email string) (*AuthResult, error) {
	isNew := false
	u := s.GetByEmail(ctx, email)
	if u == nil {
		u = &entity.User{Email: email}
		if err := s.Repo.Insert(ctx, u); err != nil {
			return nil, err
		}
		isNew = true
	}

	token, err := s.JWT.Generate(u.ID.Hex(), u.Email)
	if err != nil {
		return nil, err
	}

	if isNew {
		s.publishWelcome(ctx, u.Email)
	}

	return &AuthResult{
		User:  AuthUser{ID: u.ID.Hex(), Email: u.Email, IsNew: isNew},
		Token: token,
	}, nil
}

func (s *UserService) publishWelcome(ctx context.Context, email string) {
	if s.Publisher == nil {
		return
	}
	job := mailer.EmailJob{
		To:       email,
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"Email": email},
	}
	if err := s.Publisher.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", email).Warn("welcome email publish failed")
	}
}
