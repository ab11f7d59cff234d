package user

import (
	"strings"
	"unicode/utf8"

	"experience-booking/internal/pkg/errs"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
)

var (
	ErrEmptyUsername    = errs.New("username cannot be empty")
	ErrUsernameTooShort = errs.New("username must be at least 3 characters long")
	ErrUsernameTooLong  = errs.New("username must be at most 50 characters long")
	ErrEmptyHash        = errs.New("password hash cannot be empty")
)

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	switch {
	case n == 0:
		return Username{}, ErrEmptyUsername
	case n < MinUsernameLength:
		return Username{}, ErrUsernameTooShort
	case n > MaxUsernameLength:
		return Username{}, ErrUsernameTooLong
	}
	return Username{value: s}, nil
}

func (u Username) String() string {
	return u.value
}
