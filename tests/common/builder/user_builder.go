//go:build unit || e2e

package builder

import (
	"time"

	"experience-booking/internal/domain/user"
	reqdto "experience-booking/internal/handler/dto/request"
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Username     string
	Password     string
	PasswordHash string
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Username:     "traveller",
		Password:     "password123",
		PasswordHash: "hashed_password",
		CreatedAt:    time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	return user.NewUser(username, u.PasswordHash, u.CreatedAt)
}

func (u *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterUserRequest {
	return reqdto.RegisterUserRequest{Username: u.Username, Password: u.Password}
}

func (u *UserBuilder) BuildInput() commands.RegisterUserInput {
	return commands.RegisterUserInput{Username: u.Username, Password: u.Password}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}
}

// Fluent builder methods
func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}
