package model

import (
	"time"

	"hotel-ledger/internal/apierror"
)

// Date is a calendar day. Values are totally ordered and sit at midnight
// UTC, so subtraction yields whole days.
type Date struct {
	t time.Time
}

// ParseDate reads a date in the given layout, see time.Parse. The default
// layout's fixed-width fields reject unpadded input, and impossible
// calendar dates fail outright.
func ParseDate(s, layout string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, &apierror.ParseError{
			UserMsg: apierror.ErrDateInvalidFormat,
			BaseErr: err,
		}
	}

	return Date{t: t}, nil
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// NightsUntil is the whole number of nights between d and end.
func (d Date) NightsUntil(end Date) int {
	return int(end.t.Sub(d.t).Hours() / 24)
}

func (d Date) String(layout string) string {
	return d.t.Format(layout)
}
