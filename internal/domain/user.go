package domain

import (
	"time"
)

type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	JoinAt       time.Time `json:"join_at"`
	LastLoginAt  time.Time `json:"last_login_at"`
}

// PublicProfile is the subset of user fields safe to expose to other users.
type PublicProfile struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

func (u *User) Profile() PublicProfile {
	return PublicProfile{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}
