// Package money holds two-decimal currency amounts as integer cents so that
// arithmetic on prices never drifts.
package money

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"experience-booking/internal/pkg/errs"
)

var (
	ErrInvalidAmount  = errs.New("amount must be a decimal number with at most two fraction digits")
	ErrNegativeAmount = errs.New("amount cannot be negative")
	ErrAmountOverflow = errs.New("amount is too large")
)

type Money struct {
	cents int64
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// Parse accepts "1899", "1899.5" and "1899.00". Signs, exponents and more than
// two fraction digits are rejected.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "-") {
		return Money{}, ErrNegativeAmount
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || !isDigits(whole) {
		return Money{}, ErrInvalidAmount
	}
	if hasFrac && (frac == "" || len(frac) > 2 || !isDigits(frac)) {
		return Money{}, ErrInvalidAmount
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if errs.Is(err, strconv.ErrRange) {
		return Money{}, ErrAmountOverflow
	}
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	var cents int64
	if hasFrac {
		for len(frac) < 2 {
			frac += "0"
		}
		cents, _ = strconv.ParseInt(frac, 10, 64)
	}
	if units > (math.MaxInt64-cents)/100 {
		return Money{}, ErrAmountOverflow
	}
	return Money{cents: units*100 + cents}, nil
}

func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("money: %q: %v", s, err))
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

// Times multiplies by a non-negative count. A product that does not fit in
// int64 cents is ErrAmountOverflow, never a wrapped value.
func (m Money) Times(n int) (Money, error) {
	if n < 0 {
		return Money{}, ErrNegativeAmount
	}
	c := m.cents
	neg := c < 0
	if neg {
		c = -c
		if c < 0 {
			return Money{}, ErrAmountOverflow
		}
	}
	hi, lo := bits.Mul64(uint64(c), uint64(n))
	if hi != 0 || lo > math.MaxInt64 {
		return Money{}, ErrAmountOverflow
	}
	product := int64(lo)
	if neg {
		product = -product
	}
	return Money{cents: product}, nil
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
