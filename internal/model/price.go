package model

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"hotel-ledger/internal/apierror"
)

const (
	priceSeparator   = "."
	priceMinorDigits = 2
)

var priceDigits = regexp.MustCompile(`^[0-9]+$`)

// Price is an exact amount of money, stored as an arbitrary-precision
// count of minor units (cents) so that arithmetic never goes through
// floating point. A price is always strictly positive.
type Price struct {
	cents *big.Int
}

// ParsePrice reads a decimal amount, optionally suffixed with the given
// currency symbol. The fraction may be omitted (".00" implied) or have a
// single digit (tens of cents); digits past the second must all be zero.
// A zero amount is rejected.
func ParsePrice(s, currency string) (Price, error) {
	s = strings.TrimSuffix(s, currency)

	parts := strings.Split(s, priceSeparator)
	if len(parts) > 2 {
		return Price{}, errors.New(apierror.ErrPriceManySeparators)
	}

	if !priceDigits.MatchString(parts[0]) {
		return Price{}, errors.New(apierror.ErrPriceInvalidFormat)
	}

	cents, _ := new(big.Int).SetString(parts[0], 10)
	cents.Mul(cents, big.NewInt(100))

	if len(parts) == 2 && parts[1] != "" {
		minor, err := parseMinorUnits(parts[1])
		if err != nil {
			return Price{}, err
		}

		cents.Add(cents, big.NewInt(minor))
	}

	if cents.Sign() == 0 {
		return Price{}, errors.New(apierror.ErrPriceZero)
	}

	return Price{cents: cents}, nil
}

func parseMinorUnits(frac string) (int64, error) {
	if !priceDigits.MatchString(frac) {
		return 0, errors.New(apierror.ErrPriceInvalidFormat)
	}

	if len(frac) < priceMinorDigits {
		return int64(frac[0]-'0') * 10, nil
	}

	for _, digit := range frac[priceMinorDigits:] {
		if digit != '0' {
			return 0, fmt.Errorf(apierror.ErrPriceExcessPrecisionFmt, priceMinorDigits)
		}
	}

	return int64(frac[0]-'0')*10 + int64(frac[1]-'0'), nil
}

// MulNights scales a per-night price to a whole stay. The multiply is
// exact; no rounding is involved.
func (p Price) MulNights(nights int) Price {
	return Price{cents: new(big.Int).Mul(p.cents, big.NewInt(int64(nights)))}
}

func (p Price) Cmp(other Price) int {
	return p.cents.Cmp(other.cents)
}

// String renders the canonical form: full units, separator, exactly two
// fraction digits, currency symbol.
func (p Price) String(currency string) string {
	units, cents := new(big.Int).QuoRem(p.cents, big.NewInt(100), new(big.Int))
	return fmt.Sprintf("%s%s%02d%s", units, priceSeparator, cents.Int64(), currency)
}
