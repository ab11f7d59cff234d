package booking

import "experience-booking/internal/pkg/money"

type PriceCalculator interface {
	CalculateTotal(pricePerPerson money.Money, guests Guests) (money.Money, error)
}

// PerGuestPriceCalculator charges the listed price once per guest.
type PerGuestPriceCalculator struct{}

func NewPerGuestPriceCalculator() *PerGuestPriceCalculator {
	return &PerGuestPriceCalculator{}
}

func (PerGuestPriceCalculator) CalculateTotal(pricePerPerson money.Money, guests Guests) (money.Money, error) {
	return pricePerPerson.Times(guests.Count())
}
