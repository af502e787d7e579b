package model

import (
	"fmt"

	"hotel-ledger/internal/apierror"
)

// Category is the closed set of room categories. Text forms are the
// literal names, case-sensitive, with no synonyms.
type Category int

const (
	Single Category = iota
	Double
	Suite
)

var categoryNames = map[string]Category{
	"Single": Single,
	"Double": Double,
	"Suite":  Suite,
}

func ParseCategory(s string) (Category, error) {
	category, ok := categoryNames[s]
	if !ok {
		return 0, fmt.Errorf(apierror.ErrUnknownCategoryFmt, s)
	}

	return category, nil
}

func (c Category) String() string {
	switch c {
	case Single:
		return "Single"
	case Double:
		return "Double"
	case Suite:
		return "Suite"
	}

	return ""
}
