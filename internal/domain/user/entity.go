package user

import (
	"time"

	"github.com/google/uuid"
)

// User holds only a bcrypt hash, never the raw password.
type User struct {
	id           uuid.UUID
	username     Username
	passwordHash string
	createdAt    time.Time
}

func NewUser(username Username, passwordHash string, now time.Time) (*User, error) {
	if passwordHash == "" {
		return nil, ErrEmptyHash
	}
	return &User{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		createdAt:    now,
	}, nil
}

func ReconstructUser(id uuid.UUID, username Username, passwordHash string, createdAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
