package booking

import (
	"strings"
	"time"

	"experience-booking/internal/pkg/clock"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName = errs.New("customer name cannot be empty")
	ErrInvalidEmail      = errs.New("invalid customer email")
	ErrEmptyPhone        = errs.New("customer phone cannot be empty")
	ErrInvalidGuests     = errs.New("guests must be at least 1")
	ErrTooManyGuests     = errs.New("guests must be at most 10")
	ErrTotalOutOfRange   = errs.New("total amount is too large")
	ErrMissingDate       = errs.New("booking date is required")
	ErrInvalidStatus     = errs.New("invalid booking status")
	ErrInvalidTransition = errs.New("invalid booking status transition")
	ErrNonPositivePrice  = errs.New("experience price must be greater than zero")
)

// ExperienceSpec is the slice of an experience a booking needs at creation.
type ExperienceSpec struct {
	ID             uuid.UUID
	PricePerPerson money.Money
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

type Booking struct {
	id              uuid.UUID
	experienceID    uuid.UUID
	customer        Customer
	bookingDate     time.Time
	guests          Guests
	totalAmount     money.Money
	specialRequests *string
	status          Status
	createdAt       time.Time
}

func NewBooking(
	services *Services,
	exp ExperienceSpec,
	customer Customer,
	bookingDate time.Time,
	guests Guests,
	specialRequests *string,
	status Status,
) (*Booking, error) {
	if bookingDate.IsZero() {
		return nil, ErrMissingDate
	}
	if _, err := NewGuests(guests.Count()); err != nil {
		return nil, err
	}
	if status == "" {
		status = DefaultStatus
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !exp.PricePerPerson.IsPositive() {
		return nil, ErrNonPositivePrice
	}

	total, err := services.PriceCalculator.CalculateTotal(exp.PricePerPerson, guests)
	if err != nil {
		return nil, errs.Mark(err, ErrTotalOutOfRange)
	}

	if specialRequests != nil {
		trimmed := strings.TrimSpace(*specialRequests)
		if trimmed == "" {
			specialRequests = nil
		} else {
			specialRequests = &trimmed
		}
	}

	return &Booking{
		id:              uuid.New(),
		experienceID:    exp.ID,
		customer:        customer,
		bookingDate:     bookingDate,
		guests:          guests,
		totalAmount:     total,
		specialRequests: specialRequests,
		status:          status,
		createdAt:       services.Clock.Now(),
	}, nil
}

func ReconstructBooking(
	id, experienceID uuid.UUID,
	customer Customer,
	bookingDate time.Time,
	guests Guests,
	totalAmount money.Money,
	specialRequests *string,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		experienceID:    experienceID,
		customer:        customer,
		bookingDate:     bookingDate,
		guests:          guests,
		totalAmount:     totalAmount,
		specialRequests: specialRequests,
		status:          status,
		createdAt:       createdAt,
	}
}

// TransitionTo moves the booking along the status lifecycle.
// Cancelled and completed bookings are terminal.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", b.status, next)
	}
	b.status = next
	return nil
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) ExperienceID() uuid.UUID  { return b.experienceID }
func (b *Booking) Customer() Customer       { return b.customer }
func (b *Booking) BookingDate() time.Time   { return b.bookingDate }
func (b *Booking) Guests() Guests           { return b.guests }
func (b *Booking) TotalAmount() money.Money { return b.totalAmount }
func (b *Booking) SpecialRequests() *string { return b.specialRequests }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
