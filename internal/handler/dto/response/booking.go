package response

import (
	"time"

	"experience-booking/internal/pkg/money"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	ExperienceID    uuid.UUID `json:"experienceId"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	BookingDate     time.Time `json:"bookingDate"`
	Guests          int       `json:"guests"`
	TotalAmount     string    `json:"totalAmount"`
	SpecialRequests *string   `json:"specialRequests"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID,
		ExperienceID:    v.ExperienceID,
		CustomerName:    v.CustomerName,
		CustomerEmail:   v.CustomerEmail,
		CustomerPhone:   v.CustomerPhone,
		BookingDate:     v.BookingDate,
		Guests:          v.Guests,
		TotalAmount:     money.FromCents(v.TotalAmountCents).String(),
		SpecialRequests: v.SpecialRequests,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}
