package commands

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user.go -package=commandsmock

import (
	"context"

	"experience-booking/internal/domain/user"
	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/clock"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/pkg/password"
	"experience-booking/internal/usecase/queries"
)

var ErrUsernameTaken = errs.New("username already taken")

type RegisterUserInput struct {
	Username string
	Password string
}

type UserCommands interface {
	Register(ctx context.Context, input RegisterUserInput) (*queries.UserView, error)
}

type userCommandsImpl struct {
	repo    UserRepository
	queries queries.UserQueries
	clock   clock.Clock
}

func NewUserCommands(repo UserRepository, userQueries queries.UserQueries, clk clock.Clock) UserCommands {
	return &userCommandsImpl{repo: repo, queries: userQueries, clock: clk}
}

func (c *userCommandsImpl) Register(ctx context.Context, input RegisterUserInput) (*queries.UserView, error) {
	verr := errs.NewValidationError()
	username, err := user.NewUsername(input.Username)
	if err != nil {
		verr.Add("username", err)
	}
	if err := password.Validate(input.Password); err != nil {
		verr.Add("password", err)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	u, err := user.NewUser(username, hash, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if err := c.repo.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrUsernameTaken
		}
		return nil, errs.Mark(errs.Wrap(err, "create user"), ErrStoreFailure)
	}

	view, err := c.queries.GetByID(ctx, u.ID())
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read created user"), ErrStoreFailure)
	}
	return view, nil
}
