package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"
	"time"

	"experience-booking/internal/domain/booking"
	"experience-booking/internal/domain/experience"
	"experience-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Cache groups for list responses that writes must invalidate.
const (
	CacheGroupExperiences = "experiences"
	CacheGroupBookings    = "bookings"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ExperienceSnapshot struct {
	ID         uuid.UUID
	PriceCents int64
}

type BookingCreatedEvent struct {
	BookingID        uuid.UUID `json:"bookingId"`
	ExperienceID     uuid.UUID `json:"experienceId"`
	CustomerEmail    string    `json:"customerEmail"`
	BookingDate      time.Time `json:"bookingDate"`
	Guests           int       `json:"guests"`
	TotalAmountCents int64     `json:"totalAmountCents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

type ExperienceRepository interface {
	Create(ctx context.Context, exp *experience.Experience) error
	FindSnapshotByID(ctx context.Context, id uuid.UUID) (*ExperienceSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
}

type ListCacheInvalidator interface {
	Invalidate(ctx context.Context, group string) error
}

type BookingEventPublisher interface {
	PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error
}
