package model

import (
	"time"

	"eventman/internal/core/util"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUser(name, email, passwordHash string) *User {
	return &User{
		ID:        util.GenerateID(),
		Email:     email,
		Password:  passwordHash,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// Projection is the subset of a user carried in a session. It deliberately
// excludes the password hash.
type Projection struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Projection() Projection {
	return Projection{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
