//go:build unit || e2e

package builder

import (
	"time"

	"experience-booking/internal/domain/experience"
	"experience-booking/internal/pkg/money"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExperienceBuilder struct {
	ID            uuid.UUID
	Title         string
	Location      string
	Price         string
	OriginalPrice string
	Rating        string
	ReviewCount   int
	Duration      string
	GroupSize     string
	Category      string
	Image         string
	Featured      bool
	Description   string
	Inclusions    []string
	Exclusions    []string
	Highlights    []string
	CreatedAt     time.Time
}

func NewExperienceBuilder() *ExperienceBuilder {
	return &ExperienceBuilder{
		ID:          uuid.New(),
		Title:       "Kerala Backwater Cruise",
		Location:    "Alleppey, Kerala",
		Price:       "1899.00",
		Rating:      "4.7",
		ReviewCount: 89,
		Duration:    "2 Days",
		GroupSize:   "2-6 People",
		Category:    "Cultural",
		Image:       "https://example.com/kerala.jpg",
		Description: "Houseboat cruise through the backwaters",
		Inclusions:  []string{"Houseboat stay", "All meals"},
		Exclusions:  []string{"Airfare"},
		Highlights:  []string{"Scenic backwaters"},
		CreatedAt:   time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ExperienceBuilder) With(mutate func(*ExperienceBuilder)) *ExperienceBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ExperienceBuilder) BuildDetails() experience.Details {
	d := experience.Details{
		Title:       b.Title,
		Location:    b.Location,
		Price:       money.MustParse(b.Price),
		ReviewCount: b.ReviewCount,
		Duration:    b.Duration,
		GroupSize:   b.GroupSize,
		Category:    b.Category,
		Image:       b.Image,
		Featured:    b.Featured,
		Inclusions:  b.Inclusions,
		Exclusions:  b.Exclusions,
		Highlights:  b.Highlights,
	}
	rating, err := experience.ParseRating(b.Rating)
	if err != nil {
		panic(err)
	}
	d.Rating = rating
	if b.OriginalPrice != "" {
		op := money.MustParse(b.OriginalPrice)
		d.OriginalPrice = &op
	}
	if b.Description != "" {
		desc := b.Description
		d.Description = &desc
	}
	return d
}

func (b *ExperienceBuilder) BuildDomain() (*experience.Experience, error) {
	return experience.NewExperience(b.ID, b.BuildDetails(), b.CreatedAt)
}

func (b *ExperienceBuilder) MustBuildDomain() *experience.Experience {
	exp, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return exp
}

func (b *ExperienceBuilder) BuildView() *queries.ExperienceView {
	d := b.BuildDetails()
	v := &queries.ExperienceView{
		ID:           b.ID,
		Title:        d.Title,
		Location:     d.Location,
		PriceCents:   d.Price.Cents(),
		RatingTenths: d.Rating.Tenths(),
		ReviewCount:  d.ReviewCount,
		Duration:     d.Duration,
		GroupSize:    d.GroupSize,
		Category:     d.Category,
		Image:        d.Image,
		Featured:     d.Featured,
		Description:  d.Description,
		Inclusions:   d.Inclusions,
		Exclusions:   d.Exclusions,
		Highlights:   d.Highlights,
		CreatedAt:    b.CreatedAt,
	}
	if d.OriginalPrice != nil {
		cents := d.OriginalPrice.Cents()
		v.OriginalPriceCents = &cents
	}
	return v
}

// Fluent builder methods
func (b *ExperienceBuilder) WithTitle(title string) *ExperienceBuilder {
	b.Title = title
	return b
}

func (b *ExperienceBuilder) WithLocation(location string) *ExperienceBuilder {
	b.Location = location
	return b
}

func (b *ExperienceBuilder) WithCategory(category string) *ExperienceBuilder {
	b.Category = category
	return b
}

func (b *ExperienceBuilder) WithPrice(price string) *ExperienceBuilder {
	b.Price = price
	return b
}

func (b *ExperienceBuilder) WithCreatedAt(at time.Time) *ExperienceBuilder {
	b.CreatedAt = at
	return b
}

func (b *ExperienceBuilder) AsFeatured() *ExperienceBuilder {
	b.Featured = true
	return b
}
