package domain

import (
	"time"
)

type Message struct {
	ID           int64      `json:"id"`
	FromUsername string     `json:"from_username"`
	ToUsername   string     `json:"to_username"`
	Body         string     `json:"body"`
	SentAt       time.Time  `json:"sent_at"`
	ReadAt       *time.Time `json:"read_at"`
	// Joined fields
	FromUser *PublicProfile `json:"from_user,omitempty"`
	ToUser   *PublicProfile `json:"to_user,omitempty"`
}
