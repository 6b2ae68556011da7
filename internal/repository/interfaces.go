package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Jer-romano/messagely/internal/domain"
)

// ErrDuplicateUsername is returned by UserRepository.Create when the
// username unique constraint is violated.
var ErrDuplicateUsername = errors.New("username already exists")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.PublicProfile, error)
	// TouchLastLogin advances last_login_at and reports whether a row matched.
	TouchLastLogin(ctx context.Context, username string, at time.Time) (bool, error)
}

type MessageRepository interface {
	// Create inserts the message and fills in the server-assigned ID.
	Create(ctx context.Context, msg *domain.Message) error
	GetByID(ctx context.Context, id int64) (*domain.Message, error)
	// MarkRead stamps read_at only if it is still null.
	MarkRead(ctx context.Context, id int64, at time.Time) error
	ListFrom(ctx context.Context, username string) ([]domain.Message, error)
	ListTo(ctx context.Context, username string) ([]domain.Message, error)
}
