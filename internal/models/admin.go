package models

import "time"

// Admin is a staff account. Structurally identical to User but kept in a
// separate table with its own uniqueness scope; the role tag is fixed at
// creation and never changes.
type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (a Admin) Public() PublicView {
	return PublicView{ID: a.ID, Name: a.Name, Email: a.Email}
}
