package queries

//go:generate mockgen -source=experience.go -destination=../../../tests/mock/queries/experience.go -package=queriesmock

import (
	"context"

	"experience-booking/internal/domain/experience"
	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrExperienceNotFound = errs.New("experience not found")
	ErrQueryFailed        = errs.New("query failed")
)

type ExperienceReadStore interface {
	// FindAll returns matching experiences newest first.
	FindAll(ctx context.Context, filter experience.Filter) ([]*ExperienceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ExperienceView, error)
}

type ExperienceQueries interface {
	List(ctx context.Context, filter experience.Filter) ([]*ExperienceView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ExperienceView, error)
	Categories(ctx context.Context) ([]string, error)
	Destinations(ctx context.Context) ([]string, error)
}

type experienceQueriesImpl struct {
	store ExperienceReadStore
}

func NewExperienceQueries(store ExperienceReadStore) ExperienceQueries {
	return &experienceQueriesImpl{store: store}
}

func (q *experienceQueriesImpl) List(ctx context.Context, filter experience.Filter) ([]*ExperienceView, error) {
	rows, err := q.store.FindAll(ctx, filter)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "list experiences"), ErrQueryFailed)
	}
	if rows == nil {
		rows = []*ExperienceView{}
	}
	return rows, nil
}

func (q *experienceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ExperienceView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "get experience"), ErrQueryFailed)
	}
	return view, nil
}

func (q *experienceQueriesImpl) Categories(ctx context.Context) ([]string, error) {
	return q.distinct(ctx, func(v *ExperienceView) string { return v.Category })
}

func (q *experienceQueriesImpl) Destinations(ctx context.Context) ([]string, error) {
	return q.distinct(ctx, func(v *ExperienceView) string { return v.Location })
}

// distinct keeps first-seen order over the newest-first catalog.
func (q *experienceQueriesImpl) distinct(ctx context.Context, field func(*ExperienceView) string) ([]string, error) {
	rows, err := q.List(ctx, experience.Filter{})
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(rows))
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		v := field(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}
