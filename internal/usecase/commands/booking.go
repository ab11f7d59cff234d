package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"experience-booking/internal/domain/booking"
	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/pkg/money"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrExperienceNotFound = errs.New("experience not found")
	ErrStoreFailure       = errs.New("store operation failed")
)

type CreateBookingInput struct {
	ExperienceID    uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	BookingDate     time.Time
	Guests          int
	SpecialRequests *string
	Status          string
}

type BookingCommands interface {
	Create(ctx context.Context, input CreateBookingInput) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings    BookingRepository
	experiences ExperienceRepository
	queries     queries.BookingQueries
	cache       ListCacheInvalidator
	publisher   BookingEventPublisher
	services    *booking.Services
	logger      *slog.Logger
}

func NewBookingCommands(
	bookings BookingRepository,
	experiences ExperienceRepository,
	bookingQueries queries.BookingQueries,
	cache ListCacheInvalidator,
	publisher BookingEventPublisher,
	services *booking.Services,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:    bookings,
		experiences: experiences,
		queries:     bookingQueries,
		cache:       cache,
		publisher:   publisher,
		services:    services,
		logger:      logger,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, input CreateBookingInput) (*queries.BookingView, error) {
	customer, guests, status, err := validateBookingInput(input)
	if err != nil {
		return nil, err
	}

	// The experience must exist before anything is priced or stored.
	snap, err := c.experiences.FindSnapshotByID(ctx, input.ExperienceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "find experience"), ErrStoreFailure)
	}

	b, err := booking.NewBooking(
		c.services,
		booking.ExperienceSpec{ID: snap.ID, PricePerPerson: money.FromCents(snap.PriceCents)},
		customer,
		input.BookingDate,
		guests,
		input.SpecialRequests,
		status,
	)
	if err != nil {
		if errs.Is(err, booking.ErrTotalOutOfRange) {
			return nil, errs.Field("guests", booking.ErrTotalOutOfRange)
		}
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if err := c.bookings.Create(ctx, b); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "create booking"), ErrStoreFailure)
	}

	if err := c.cache.Invalidate(ctx, CacheGroupBookings); err != nil {
		c.logger.Warn("Failed to invalidate booking list cache", "error", err, "booking_id", b.ID())
	}

	event := BookingCreatedEvent{
		BookingID:        b.ID(),
		ExperienceID:     b.ExperienceID(),
		CustomerEmail:    b.Customer().Email(),
		BookingDate:      b.BookingDate(),
		Guests:           b.Guests().Count(),
		TotalAmountCents: b.TotalAmount().Cents(),
		Status:           b.Status().String(),
		CreatedAt:        b.CreatedAt(),
	}
	if err := c.publisher.PublishBookingCreated(ctx, event); err != nil {
		c.logger.Warn("Failed to publish booking created event", "error", err, "booking_id", b.ID())
	}

	// Read-after-write
	view, err := c.queries.GetByID(ctx, b.ID())
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read created booking"), ErrStoreFailure)
	}
	return view, nil
}

func validateBookingInput(input CreateBookingInput) (booking.Customer, booking.Guests, booking.Status, error) {
	verr := errs.NewValidationError()

	if input.ExperienceID == uuid.Nil {
		verr.Add("experienceId", errs.New("experience id is required"))
	}

	customer, err := booking.NewCustomer(input.CustomerName, input.CustomerEmail, input.CustomerPhone)
	if err != nil {
		verr.Add(customerField(err), err)
	}

	if input.BookingDate.IsZero() {
		verr.Add("bookingDate", booking.ErrMissingDate)
	}

	guests, err := booking.NewGuests(input.Guests)
	if err != nil {
		verr.Add("guests", err)
	}

	status, err := booking.ParseStatus(input.Status)
	if err != nil {
		verr.Add("status", err)
	}

	return customer, guests, status, verr.OrNil()
}

func customerField(err error) string {
	switch {
	case errs.Is(err, booking.ErrInvalidEmail):
		return "customerEmail"
	case errs.Is(err, booking.ErrEmptyPhone):
		return "customerPhone"
	default:
		return "customerName"
	}
}
