package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

const dateLayout = "2006-01-02"

type valuesSuite struct {
	suite.Suite
}

func TestValuesSuite(t *testing.T) {
	suite.Run(t, new(valuesSuite))
}

func (s *valuesSuite) TestParseHotelID() {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "single digit pads to five",
			input:    "1",
			expected: "00001",
		},
		{
			name:     "max value",
			input:    "99999",
			expected: "99999",
		},
		{
			name:     "leading zeros accepted",
			input:    "000042",
			expected: "00042",
		},
		{
			name:    "zero rejected",
			input:   "0",
			wantErr: true,
		},
		{
			name:    "six digits rejected",
			input:   "100000",
			wantErr: true,
		},
		{
			name:    "negative rejected",
			input:   "-3",
			wantErr: true,
		},
		{
			name:    "letters rejected",
			input:   "12ab",
			wantErr: true,
		},
		{
			name:    "empty rejected",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			id, err := ParseHotelID(tc.input)
			if tc.wantErr {
				s.Error(err)
				return
			}

			s.Require().NoError(err)
			s.Equal(tc.expected, id.String())
			s.Len(id.String(), HotelIDMaxDigits)

			reparsed, err := ParseHotelID(id.String())
			s.Require().NoError(err)
			s.Equal(id, reparsed)
		})
	}
}

func (s *valuesSuite) TestParseCategory() {
	for _, name := range []string{"Single", "Double", "Suite"} {
		s.Run(name, func() {
			category, err := ParseCategory(name)
			s.Require().NoError(err)
			s.Equal(name, category.String())
		})
	}

	for _, bad := range []string{"single", "SUITE", "Twin", ""} {
		s.Run("rejects "+bad, func() {
			_, err := ParseCategory(bad)
			s.Error(err)
		})
	}
}

func (s *valuesSuite) TestParseDate() {
	date, err := ParseDate("2024-01-01", dateLayout)
	s.Require().NoError(err)
	s.Equal("2024-01-01", date.String(dateLayout))

	for _, bad := range []string{"2024-1-1", "2024-02-30", "01-01-2024", "2024/01/01", "yesterday", ""} {
		s.Run("rejects "+bad, func() {
			_, err := ParseDate(bad, dateLayout)
			s.Error(err)
		})
	}
}

func (s *valuesSuite) TestDateOrdering() {
	earlier, err := ParseDate("2024-01-01", dateLayout)
	s.Require().NoError(err)

	later, err := ParseDate("2024-01-02", dateLayout)
	s.Require().NoError(err)

	s.True(earlier.Before(later))
	s.False(later.Before(earlier))
	s.True(earlier.Equal(earlier))
	s.False(earlier.Equal(later))
}

func (s *valuesSuite) TestNightsUntil() {
	testCases := []struct {
		name   string
		start  string
		end    string
		nights int
	}{
		{
			name:   "two nights",
			start:  "2024-01-01",
			end:    "2024-01-03",
			nights: 2,
		},
		{
			name:   "same day",
			start:  "2024-01-01",
			end:    "2024-01-01",
			nights: 0,
		},
		{
			name:   "across leap day",
			start:  "2024-02-28",
			end:    "2024-03-01",
			nights: 2,
		},
		{
			name:   "across year boundary",
			start:  "2023-12-30",
			end:    "2024-01-02",
			nights: 3,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			start, err := ParseDate(tc.start, dateLayout)
			s.Require().NoError(err)

			end, err := ParseDate(tc.end, dateLayout)
			s.Require().NoError(err)

			s.Equal(tc.nights, start.NightsUntil(end))
		})
	}
}

func (s *valuesSuite) TestPersonEquality() {
	ids := map[Person]int{
		{Forename: "Ada", Surname: "Lovelace"}: 1,
	}

	_, ok := ids[Person{Forename: "Ada", Surname: "Lovelace"}]
	s.True(ok)

	_, ok = ids[Person{Forename: "ada", Surname: "Lovelace"}]
	s.False(ok)

	_, ok = ids[Person{Forename: "Lovelace", Surname: "Ada"}]
	s.False(ok)
}
