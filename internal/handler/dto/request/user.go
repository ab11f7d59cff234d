package request

import "experience-booking/internal/usecase/commands"

type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (r RegisterUserRequest) ToInput() commands.RegisterUserInput {
	return commands.RegisterUserInput{Username: r.Username, Password: r.Password}
}
