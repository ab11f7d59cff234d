package memstore

import (
	"context"
	"log/slog"
	"slices"

	"experience-booking/internal/domain/booking"
	"experience-booking/internal/infra"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// BookingStore does not check that the experience exists; the booking
// command does that before it writes.
type BookingStore struct {
	db     *DB
	logger *slog.Logger
}

func NewBookingStore(db *DB, logger *slog.Logger) *BookingStore {
	return &BookingStore{db: db, logger: logger}
}

func (s *BookingStore) Create(ctx context.Context, b *booking.Booking) error {
	if err := checkCtx(ctx, s.logger); err != nil {
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.bookings[b.ID()]; ok {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "booking id already exists", nil)
	}

	s.db.bookings[b.ID()] = &bookingRow{
		ID:               b.ID(),
		ExperienceID:     b.ExperienceID(),
		CustomerName:     b.Customer().Name(),
		CustomerEmail:    b.Customer().Email(),
		CustomerPhone:    b.Customer().Phone(),
		BookingDate:      b.BookingDate(),
		Guests:           b.Guests().Count(),
		TotalAmountCents: b.TotalAmount().Cents(),
		SpecialRequests:  clonePtr(b.SpecialRequests()),
		Status:           b.Status().String(),
		CreatedAt:        b.CreatedAt(),
		seq:              s.db.nextSeq(),
	}
	return nil
}

func (s *BookingStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	if err := checkCtx(ctx, s.logger); err != nil {
		return nil, err
	}

	s.db.mu.RLock()
	row, ok := s.db.bookings[id]
	s.db.mu.RUnlock()
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking not found", nil)
	}
	return s.toView(row)
}

func (s *BookingStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	return s.find(ctx, func(*bookingRow) bool { return true })
}

func (s *BookingStore) FindByExperienceID(ctx context.Context, experienceID uuid.UUID) ([]*queries.BookingView, error) {
	return s.find(ctx, func(r *bookingRow) bool { return r.ExperienceID == experienceID })
}

func (s *BookingStore) find(ctx context.Context, keep func(*bookingRow) bool) ([]*queries.BookingView, error) {
	if err := checkCtx(ctx, s.logger); err != nil {
		return nil, err
	}

	s.db.mu.RLock()
	rows := make([]*bookingRow, 0, len(s.db.bookings))
	for _, row := range s.db.bookings {
		if keep(row) {
			rows = append(rows, row)
		}
	}
	s.db.mu.RUnlock()

	slices.SortFunc(rows, func(a, b *bookingRow) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.seq, b.seq)
	})

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		view, err := s.toView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *BookingStore) toView(row *bookingRow) (*queries.BookingView, error) {
	var view queries.BookingView
	if err := copier.Copy(&view, row); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "copy booking row", err)
	}
	view.SpecialRequests = clonePtr(row.SpecialRequests)
	return &view, nil
}
