package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Jer-romano/messagely/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	readAt := time.Now()
	msg := domain.Message{
		ID:           7,
		FromUsername: "alice",
		ToUsername:   "bob",
		Body:         "hi",
		SentAt:       time.Now().Add(-time.Minute),
		ReadAt:       &readAt,
	}

	evt, err := NewEvent(EventTypeMessageRead, MessagePayload{Message: msg})
	require.NoError(t, err)
	require.Equal(t, EventTypeMessageRead, evt.Type)
	require.NotZero(t, evt.Timestamp)

	var decoded domain.Message
	require.NoError(t, json.Unmarshal(evt.Payload, &decoded))
	require.Equal(t, int64(7), decoded.ID)
	require.Equal(t, "alice", decoded.FromUsername)
	require.NotNil(t, decoded.ReadAt)
}
