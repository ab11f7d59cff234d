package queries

import (
	"time"

	"github.com/google/uuid"
)

// ExperienceView is the read model for one catalog entry. Money is in cents
// and the rating in tenths of a star.
type ExperienceView struct {
	ID                 uuid.UUID
	Title              string
	Location           string
	PriceCents         int64
	OriginalPriceCents *int64
	RatingTenths       int
	ReviewCount        int
	Duration           string
	GroupSize          string
	Category           string
	Image              string
	Featured           bool
	Description        *string
	Inclusions         []string
	Exclusions         []string
	Highlights         []string
	CreatedAt          time.Time
}

type BookingView struct {
	ID               uuid.UUID
	ExperienceID     uuid.UUID
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	BookingDate      time.Time
	Guests           int
	TotalAmountCents int64
	SpecialRequests  *string
	Status           string
	CreatedAt        time.Time
}

type UserView struct {
	ID        uuid.UUID
	Username  string
	CreatedAt time.Time
}
