package booking

import (
	"net/mail"
	"strings"
)

type Customer struct {
	name  string
	email string
	phone string
}

func NewCustomer(name, email, phone string) (Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return Customer{}, ErrEmptyCustomerName
	}
	if email == "" {
		return Customer{}, ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return Customer{}, ErrInvalidEmail
	}
	if phone == "" {
		return Customer{}, ErrEmptyPhone
	}
	return Customer{name: name, email: email, phone: phone}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }
func (c Customer) Phone() string { return c.phone }

type Guests struct {
	count int
}

// MaxGuests matches the largest party the booking form offers.
const MaxGuests = 10

func NewGuests(count int) (Guests, error) {
	if count < 1 {
		return Guests{}, ErrInvalidGuests
	}
	if count > MaxGuests {
		return Guests{}, ErrTooManyGuests
	}
	return Guests{count: count}, nil
}

func (g Guests) Count() int {
	return g.count
}
