package experience

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	MaxRatingTenths = 50
	DefaultRating   = Rating(45)
)

// Rating is stored in tenths: 4.8 stars is 48.
type Rating int

func NewRating(tenths int) (Rating, error) {
	if tenths < 0 || tenths > MaxRatingTenths {
		return 0, ErrRatingOutOfRange
	}
	return Rating(tenths), nil
}

func ParseRating(s string) (Rating, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultRating, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrRatingOutOfRange
	}
	// Range is checked on the raw value so 5.04 cannot round down into it.
	if f < 0 || f*10 > MaxRatingTenths {
		return 0, ErrRatingOutOfRange
	}
	return NewRating(int(math.Round(f * 10)))
}

func (r Rating) Tenths() int {
	return int(r)
}

func (r Rating) String() string {
	return fmt.Sprintf("%d.%d", int(r)/10, int(r)%10)
}
