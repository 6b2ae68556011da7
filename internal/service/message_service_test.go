package service

import (
	"context"
	"testing"

	"github.com/Jer-romano/messagely/internal/domain"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	newMessages  []*domain.Message
	readReceipts []*domain.Message
}

func (n *recordingNotifier) NotifyNewMessage(msg *domain.Message)  { n.newMessages = append(n.newMessages, msg) }
func (n *recordingNotifier) NotifyMessageRead(msg *domain.Message) { n.readReceipts = append(n.readReceipts, msg) }

func newTestMessageService() (*MessageService, *recordingNotifier) {
	users := newFakeUserRepo()
	seedUser(users, "alice", "hash-a")
	seedUser(users, "bob", "hash-b")
	seedUser(users, "carol", "hash-c")

	s := NewMessageService(newFakeMessageRepo(users), users)
	n := &recordingNotifier{}
	s.SetNotifier(n)
	return s, n
}

func TestSend(t *testing.T) {
	s, n := newTestMessageService()

	msg, err := s.Send(context.Background(), "alice", "bob", "hello bob")
	require.NoError(t, err)
	require.NotZero(t, msg.ID)
	require.Equal(t, "alice", msg.FromUsername)
	require.Equal(t, "bob", msg.ToUsername)
	require.Equal(t, "hello bob", msg.Body)
	require.False(t, msg.SentAt.IsZero())
	require.Nil(t, msg.ReadAt)
	require.NotNil(t, msg.FromUser)
	require.NotNil(t, msg.ToUser)

	require.Len(t, n.newMessages, 1)
	require.Equal(t, msg.ID, n.newMessages[0].ID)
}

func TestSendUnknownRecipient(t *testing.T) {
	s, n := newTestMessageService()

	msg, err := s.Send(context.Background(), "alice", "nobody", "hello?")
	require.ErrorIs(t, err, ErrRecipientNotFound)
	require.Nil(t, msg)
	require.Empty(t, n.newMessages)
}

func TestGetVisibleToParticipantsOnly(t *testing.T) {
	s, _ := newTestMessageService()
	ctx := context.Background()

	sent, err := s.Send(ctx, "alice", "bob", "between us")
	require.NoError(t, err)

	for _, participant := range []string{"alice", "bob"} {
		msg, err := s.Get(ctx, participant, sent.ID)
		require.NoError(t, err)
		require.Equal(t, sent.ID, msg.ID)
	}

	_, err = s.Get(ctx, "carol", sent.ID)
	require.ErrorIs(t, err, ErrNotParticipant)
}

func TestGetNotFound(t *testing.T) {
	s, _ := newTestMessageService()

	_, err := s.Get(context.Background(), "alice", 42)
	require.ErrorIs(t, err, ErrMessageNotFound)
}

func TestMarkRead(t *testing.T) {
	s, n := newTestMessageService()
	ctx := context.Background()

	sent, err := s.Send(ctx, "alice", "bob", "read me")
	require.NoError(t, err)
	require.Nil(t, sent.ReadAt)

	msg, err := s.MarkRead(ctx, "bob", sent.ID)
	require.NoError(t, err)
	require.NotNil(t, msg.ReadAt)

	require.Len(t, n.readReceipts, 1)
	require.Equal(t, sent.ID, n.readReceipts[0].ID)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	s, n := newTestMessageService()
	ctx := context.Background()

	sent, err := s.Send(ctx, "alice", "bob", "read me")
	require.NoError(t, err)

	first, err := s.MarkRead(ctx, "bob", sent.ID)
	require.NoError(t, err)
	require.NotNil(t, first.ReadAt)

	second, err := s.MarkRead(ctx, "bob", sent.ID)
	require.NoError(t, err)
	require.NotNil(t, second.ReadAt)
	require.Equal(t, *first.ReadAt, *second.ReadAt)

	// Only the first mark produces a receipt.
	require.Len(t, n.readReceipts, 1)
}

func TestMarkReadRecipientOnly(t *testing.T) {
	s, _ := newTestMessageService()
	ctx := context.Background()

	sent, err := s.Send(ctx, "alice", "bob", "read me")
	require.NoError(t, err)

	_, err = s.MarkRead(ctx, "alice", sent.ID)
	require.ErrorIs(t, err, ErrNotRecipient)

	_, err = s.MarkRead(ctx, "carol", sent.ID)
	require.ErrorIs(t, err, ErrNotRecipient)
}

func TestMarkReadNotFound(t *testing.T) {
	s, _ := newTestMessageService()

	_, err := s.MarkRead(context.Background(), "bob", 42)
	require.ErrorIs(t, err, ErrMessageNotFound)
}
