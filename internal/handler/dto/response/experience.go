package response

import (
	"time"

	"experience-booking/internal/domain/experience"
	"experience-booking/internal/pkg/money"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// Prices are decimal strings ("1899.00") so clients never see float drift.
type ExperienceResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	Price         string    `json:"price"`
	OriginalPrice *string   `json:"originalPrice"`
	Rating        string    `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	Duration      string    `json:"duration"`
	GroupSize     string    `json:"groupSize"`
	Category      string    `json:"category"`
	Image         string    `json:"image"`
	Featured      bool      `json:"featured"`
	Description   *string   `json:"description"`
	Inclusions    []string  `json:"inclusions"`
	Exclusions    []string  `json:"exclusions"`
	Highlights    []string  `json:"highlights"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromExperienceView(v *queries.ExperienceView) *ExperienceResponse {
	res := &ExperienceResponse{
		ID:          v.ID,
		Title:       v.Title,
		Location:    v.Location,
		Price:       money.FromCents(v.PriceCents).String(),
		Rating:      experience.Rating(v.RatingTenths).String(),
		ReviewCount: v.ReviewCount,
		Duration:    v.Duration,
		GroupSize:   v.GroupSize,
		Category:    v.Category,
		Image:       v.Image,
		Featured:    v.Featured,
		Description: v.Description,
		Inclusions:  v.Inclusions,
		Exclusions:  v.Exclusions,
		Highlights:  v.Highlights,
		CreatedAt:   v.CreatedAt,
	}
	if v.OriginalPriceCents != nil {
		op := money.FromCents(*v.OriginalPriceCents).String()
		res.OriginalPrice = &op
	}
	return res
}

func FromExperienceViews(views []*queries.ExperienceView) []*ExperienceResponse {
	res := make([]*ExperienceResponse, len(views))
	for i, v := range views {
		res[i] = FromExperienceView(v)
	}
	return res
}
