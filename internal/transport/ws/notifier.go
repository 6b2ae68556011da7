package ws

import (
	"log"

	"github.com/Jer-romano/messagely/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

// NotifyNewMessage pushes a new message to its recipient.
func (n *HubNotifier) NotifyNewMessage(msg *domain.Message) {
	evt, err := NewEvent(EventTypeMessageNew, MessagePayload{Message: *msg})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.SendToUser(msg.ToUsername, evt)
}

// NotifyMessageRead pushes a read receipt back to the sender.
func (n *HubNotifier) NotifyMessageRead(msg *domain.Message) {
	evt, err := NewEvent(EventTypeMessageRead, MessagePayload{Message: *msg})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.SendToUser(msg.FromUsername, evt)
}
