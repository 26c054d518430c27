// Package fee prices a booking from a museum's two-tier fee schedule.
package fee

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const domesticNationality = "indian"

var (
	ErrNegativeCount = errors.New("visitor counts cannot be negative")
	ErrEmptyBooking  = errors.New("at least one adult or child is required")
	ErrTotalTooLarge = errors.New("booking total exceeds the maximum amount")
)

// MaxTotal is the largest amount a ticket total column can hold.
var MaxTotal = decimal.RequireFromString("99999999.99")

type Schedule struct {
	IndianAdult   decimal.Decimal
	IndianChild   decimal.Decimal
	International decimal.Decimal
}

func IsIndian(nationality string) bool {
	return strings.EqualFold(strings.TrimSpace(nationality), domesticNationality)
}

// Compute returns the booking total rounded to two places. International
// visitors pay one rate whether adult or child.
func Compute(schedule Schedule, nationality string, adults, children int) (decimal.Decimal, error) {
	if adults < 0 || children < 0 {
		return decimal.Zero, ErrNegativeCount
	}

	if adults+children == 0 {
		return decimal.Zero, ErrEmptyBooking
	}

	adultRate, childRate := schedule.International, schedule.International
	if IsIndian(nationality) {
		adultRate, childRate = schedule.IndianAdult, schedule.IndianChild
	}

	total := adultRate.Mul(decimal.NewFromInt(int64(adults))).
		Add(childRate.Mul(decimal.NewFromInt(int64(children))))

	total = total.Round(2)
	if total.GreaterThan(MaxTotal) {
		return decimal.Zero, ErrTotalTooLarge
	}

	return total, nil
}
