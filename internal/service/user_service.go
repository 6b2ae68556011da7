package service

import (
	"context"
	"errors"

	"github.com/Jer-romano/messagely/internal/domain"
	"github.com/Jer-romano/messagely/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	userRepo repository.UserRepository
	msgRepo  repository.MessageRepository
}

func NewUserService(userRepo repository.UserRepository, msgRepo repository.MessageRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		msgRepo:  msgRepo,
	}
}

// List returns the public profile of every user.
func (s *UserService) List(ctx context.Context) ([]domain.PublicProfile, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.PublicProfile{}
	}
	return users, nil
}

// Get returns one user's profile plus join/last-login timestamps. The
// password hash stays out of the serialized form.
func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// MessagesFrom returns all messages sent by the user, each with the
// recipient's public profile embedded. No messages is an empty slice.
func (s *UserService) MessagesFrom(ctx context.Context, username string) ([]domain.Message, error) {
	if err := s.ensureExists(ctx, username); err != nil {
		return nil, err
	}

	messages, err := s.msgRepo.ListFrom(ctx, username)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return messages, nil
}

// MessagesTo returns all messages received by the user, each with the
// sender's public profile embedded.
func (s *UserService) MessagesTo(ctx context.Context, username string) ([]domain.Message, error) {
	if err := s.ensureExists(ctx, username); err != nil {
		return nil, err
	}

	messages, err := s.msgRepo.ListTo(ctx, username)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return messages, nil
}

func (s *UserService) ensureExists(ctx context.Context, username string) error {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}
