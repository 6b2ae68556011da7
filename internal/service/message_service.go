package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jer-romano/messagely/internal/domain"
	"github.com/Jer-romano/messagely/internal/repository"
)

var (
	ErrMessageNotFound   = errors.New("message not found")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrNotParticipant    = errors.New("only the sender or recipient can view this message")
	ErrNotRecipient      = errors.New("only the recipient can mark this message read")
)

// Notifier pushes message events to connected clients. Implementations must
// not block.
type Notifier interface {
	NotifyNewMessage(msg *domain.Message)
	NotifyMessageRead(msg *domain.Message)
}

type MessageService struct {
	msgRepo  repository.MessageRepository
	userRepo repository.UserRepository
	notifier Notifier
}

func NewMessageService(msgRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		msgRepo:  msgRepo,
		userRepo: userRepo,
	}
}

func (s *MessageService) SetNotifier(n Notifier) {
	s.notifier = n
}

// Send stores a new message from one user to another. The recipient must
// exist; the id and sent_at are server-assigned and read_at starts null.
func (s *MessageService) Send(ctx context.Context, from, to, body string) (*domain.Message, error) {
	recipient, err := s.userRepo.GetByUsername(ctx, to)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, ErrRecipientNotFound
	}

	msg := &domain.Message{
		FromUsername: from,
		ToUsername:   to,
		Body:         body,
		SentAt:       time.Now(),
	}

	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	full, err := s.msgRepo.GetByID(ctx, msg.ID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyNewMessage(full)
	}

	return full, nil
}

// Get returns a message with both public profiles embedded. Only the sender
// or the recipient may view it.
func (s *MessageService) Get(ctx context.Context, requester string, id int64) (*domain.Message, error) {
	msg, err := s.msgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}
	if msg.FromUsername != requester && msg.ToUsername != requester {
		return nil, ErrNotParticipant
	}
	return msg, nil
}

// MarkRead stamps read_at on a message. Only the recipient may do this, and
// marking an already-read message returns it with its original stamp.
func (s *MessageService) MarkRead(ctx context.Context, requester string, id int64) (*domain.Message, error) {
	msg, err := s.msgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}
	if msg.ToUsername != requester {
		return nil, ErrNotRecipient
	}
	if msg.ReadAt != nil {
		return msg, nil
	}

	if err := s.msgRepo.MarkRead(ctx, id, time.Now()); err != nil {
		return nil, fmt.Errorf("marking message read: %w", err)
	}

	updated, err := s.msgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyMessageRead(updated)
	}

	return updated, nil
}
