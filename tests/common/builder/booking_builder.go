//go:build unit || e2e

package builder

import (
	"time"

	"experience-booking/internal/domain/booking"
	reqdto "experience-booking/internal/handler/dto/request"
	"experience-booking/internal/pkg/clock"
	"experience-booking/internal/pkg/money"
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	ExperienceID    uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	BookingDate     time.Time
	Guests          int
	PricePerPerson  string
	SpecialRequests *string
	Status          string
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:             uuid.New(),
		ExperienceID:   uuid.New(),
		CustomerName:   "Asha Menon",
		CustomerEmail:  "asha@example.com",
		CustomerPhone:  "+91 98765 43210",
		BookingDate:    time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
		Guests:         3,
		PricePerPerson: "1899.00",
		Status:         "pending",
		CreatedAt:      time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ExperienceID:    b.ExperienceID.String(),
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		BookingDate:     b.BookingDate.Format(time.RFC3339),
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status,
	}
}

func (b *BookingBuilder) BuildInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ExperienceID:    b.ExperienceID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		BookingDate:     b.BookingDate,
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	customer, err := booking.NewCustomer(b.CustomerName, b.CustomerEmail, b.CustomerPhone)
	if err != nil {
		return nil, err
	}
	guests, err := booking.NewGuests(b.Guests)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(b.Status)
	if err != nil {
		return nil, err
	}
	services := &booking.Services{
		Clock:           clock.NewMockClock(b.CreatedAt),
		PriceCalculator: booking.NewPerGuestPriceCalculator(),
	}
	return booking.NewBooking(
		services,
		booking.ExperienceSpec{ID: b.ExperienceID, PricePerPerson: money.MustParse(b.PricePerPerson)},
		customer, b.BookingDate, guests, b.SpecialRequests, status,
	)
}

func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:               b.ID,
		ExperienceID:     b.ExperienceID,
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		CustomerPhone:    b.CustomerPhone,
		BookingDate:      b.BookingDate,
		Guests:           b.Guests,
		TotalAmountCents: b.totalCents(),
		SpecialRequests:  b.SpecialRequests,
		Status:           b.Status,
		CreatedAt:        b.CreatedAt,
	}
}

func (b *BookingBuilder) totalCents() int64 {
	total, err := money.MustParse(b.PricePerPerson).Times(b.Guests)
	if err != nil {
		panic(err)
	}
	return total.Cents()
}

// Fluent builder methods
func (b *BookingBuilder) WithExperienceID(id uuid.UUID) *BookingBuilder {
	b.ExperienceID = id
	return b
}

func (b *BookingBuilder) WithGuests(n int) *BookingBuilder {
	b.Guests = n
	return b
}

func (b *BookingBuilder) WithPricePerPerson(price string) *BookingBuilder {
	b.PricePerPerson = price
	return b
}

func (b *BookingBuilder) WithSpecialRequests(s string) *BookingBuilder {
	b.SpecialRequests = &s
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}
