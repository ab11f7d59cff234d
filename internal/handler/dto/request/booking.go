package request

import (
	"strings"
	"time"

	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrInvalidBookingDate = errs.New("bookingDate must be an ISO-8601 date or date-time")

// CreateBookingRequest has no totalAmount: the server always computes it,
// and an unknown JSON field from the client is simply dropped.
type CreateBookingRequest struct {
	ExperienceID    string  `json:"experienceId" binding:"required,uuid"`
	CustomerName    string  `json:"customerName" binding:"required"`
	CustomerEmail   string  `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string  `json:"customerPhone" binding:"required"`
	BookingDate     string  `json:"bookingDate" binding:"required"`
	Guests          int     `json:"guests" binding:"required,gte=1,lte=10"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	Status          string  `json:"status,omitempty" binding:"omitempty,oneof=pending confirmed cancelled completed"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	experienceID, err := uuid.Parse(r.ExperienceID)
	if err != nil {
		return commands.CreateBookingInput{}, errs.Field("experienceId", err)
	}
	date, err := ParseBookingDate(r.BookingDate)
	if err != nil {
		return commands.CreateBookingInput{}, errs.Field("bookingDate", err)
	}
	return commands.CreateBookingInput{
		ExperienceID:    experienceID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		BookingDate:     date,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
		Status:          r.Status,
	}, nil
}

var bookingDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseBookingDate accepts a full timestamp or a plain calendar date.
func ParseBookingDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidBookingDate
}
