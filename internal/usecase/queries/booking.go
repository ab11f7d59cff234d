package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"

	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindAll(ctx context.Context) ([]*BookingView, error)
	FindByExperienceID(ctx context.Context, experienceID uuid.UUID) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context) ([]*BookingView, error)
	ListByExperience(ctx context.Context, experienceID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store       BookingReadStore
	experiences ExperienceReadStore
}

func NewBookingQueries(store BookingReadStore, experiences ExperienceReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store, experiences: experiences}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "get booking"), ErrQueryFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context) ([]*BookingView, error) {
	rows, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "list bookings"), ErrQueryFailed)
	}
	if rows == nil {
		rows = []*BookingView{}
	}
	return rows, nil
}

func (q *bookingQueriesImpl) ListByExperience(ctx context.Context, experienceID uuid.UUID) ([]*BookingView, error) {
	if _, err := q.experiences.FindByID(ctx, experienceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "get experience"), ErrQueryFailed)
	}

	rows, err := q.store.FindByExperienceID(ctx, experienceID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "list bookings by experience"), ErrQueryFailed)
	}
	if rows == nil {
		rows = []*BookingView{}
	}
	return rows, nil
}
