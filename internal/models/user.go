package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered end-user account. The password hash never leaves
// the backend: it is excluded from JSON serialization entirely.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicView is the account shape returned by auth endpoints.
type PublicView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Public() PublicView {
	return PublicView{ID: u.ID, Name: u.Name, Email: u.Email}
}
