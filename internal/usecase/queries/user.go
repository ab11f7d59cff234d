package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

import (
	"context"
	"strings"

	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindByUsername(ctx context.Context, username string) (*UserView, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	GetByUsername(ctx context.Context, username string) (*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	return q.wrap(q.readStore.FindByID(ctx, id))
}

func (q *userQueriesImpl) GetByUsername(ctx context.Context, username string) (*UserView, error) {
	return q.wrap(q.readStore.FindByUsername(ctx, strings.TrimSpace(username)))
}

func (q *userQueriesImpl) wrap(view *UserView, err error) (*UserView, error) {
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "get user"), ErrQueryFailed)
	}
	return view, nil
}
