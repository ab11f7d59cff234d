package experience

import (
	"slices"
	"strings"
	"time"

	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle          = errs.New("title cannot be empty")
	ErrEmptyLocation       = errs.New("location cannot be empty")
	ErrEmptyCategory       = errs.New("category cannot be empty")
	ErrNonPositivePrice    = errs.New("price must be greater than zero")
	ErrInvalidOriginal     = errs.New("original price must be greater than zero")
	ErrRatingOutOfRange    = errs.New("rating must be between 0.0 and 5.0")
	ErrNegativeReviewCount = errs.New("review count cannot be negative")
)

// Details is everything a caller supplies when listing a new experience.
type Details struct {
	Title         string
	Location      string
	Price         money.Money
	OriginalPrice *money.Money
	Rating        Rating
	ReviewCount   int
	Duration      string
	GroupSize     string
	Category      string
	Image         string
	Featured      bool
	Description   *string
	Inclusions    []string
	Exclusions    []string
	Highlights    []string
}

// Experience is immutable once created.
type Experience struct {
	id            uuid.UUID
	title         string
	location      string
	price         money.Money
	originalPrice *money.Money
	rating        Rating
	reviewCount   int
	duration      string
	groupSize     string
	category      string
	image         string
	featured      bool
	description   *string
	inclusions    []string
	exclusions    []string
	highlights    []string
	createdAt     time.Time
}

func NewExperience(id uuid.UUID, d Details, now time.Time) (*Experience, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	location := strings.TrimSpace(d.Location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	category := strings.TrimSpace(d.Category)
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if !d.Price.IsPositive() {
		return nil, ErrNonPositivePrice
	}
	if d.OriginalPrice != nil && !d.OriginalPrice.IsPositive() {
		return nil, ErrInvalidOriginal
	}
	if _, err := NewRating(d.Rating.Tenths()); err != nil {
		return nil, err
	}
	if d.ReviewCount < 0 {
		return nil, ErrNegativeReviewCount
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Experience{
		id:            id,
		title:         title,
		location:      location,
		price:         d.Price,
		originalPrice: d.OriginalPrice,
		rating:        d.Rating,
		reviewCount:   d.ReviewCount,
		duration:      d.Duration,
		groupSize:     d.GroupSize,
		category:      category,
		image:         d.Image,
		featured:      d.Featured,
		description:   d.Description,
		inclusions:    slices.Clone(d.Inclusions),
		exclusions:    slices.Clone(d.Exclusions),
		highlights:    slices.Clone(d.Highlights),
		createdAt:     now,
	}, nil
}

// ReconstructExperience rebuilds an entity from stored data without validation.
func ReconstructExperience(id uuid.UUID, d Details, createdAt time.Time) *Experience {
	return &Experience{
		id:            id,
		title:         d.Title,
		location:      d.Location,
		price:         d.Price,
		originalPrice: d.OriginalPrice,
		rating:        d.Rating,
		reviewCount:   d.ReviewCount,
		duration:      d.Duration,
		groupSize:     d.GroupSize,
		category:      d.Category,
		image:         d.Image,
		featured:      d.Featured,
		description:   d.Description,
		inclusions:    d.Inclusions,
		exclusions:    d.Exclusions,
		highlights:    d.Highlights,
		createdAt:     createdAt,
	}
}

func (e *Experience) ID() uuid.UUID               { return e.id }
func (e *Experience) Title() string               { return e.title }
func (e *Experience) Location() string            { return e.location }
func (e *Experience) Price() money.Money          { return e.price }
func (e *Experience) OriginalPrice() *money.Money { return e.originalPrice }
func (e *Experience) Rating() Rating              { return e.rating }
func (e *Experience) ReviewCount() int            { return e.reviewCount }
func (e *Experience) Duration() string            { return e.duration }
func (e *Experience) GroupSize() string           { return e.groupSize }
func (e *Experience) Category() string            { return e.category }
func (e *Experience) Image() string               { return e.image }
func (e *Experience) Featured() bool              { return e.featured }
func (e *Experience) Description() *string        { return e.description }
func (e *Experience) Inclusions() []string        { return slices.Clone(e.inclusions) }
func (e *Experience) Exclusions() []string        { return slices.Clone(e.exclusions) }
func (e *Experience) Highlights() []string        { return slices.Clone(e.highlights) }
func (e *Experience) CreatedAt() time.Time        { return e.createdAt }
