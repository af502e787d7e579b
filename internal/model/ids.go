package model

import (
	"errors"
	"fmt"
	"strconv"

	"hotel-ledger/internal/apierror"
)

// HotelID is the primary key of a hotel. The value is strictly positive
// with at most HotelIDMaxDigits decimal digits; the canonical text form is
// zero-padded to exactly that width. Parsing accepts leading zeros.
type HotelID uint32

const HotelIDMaxDigits = 5

func ParseHotelID(s string) (HotelID, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New(apierror.ErrHotelIDInvalidFormat)
	}

	if len(strconv.FormatUint(id, 10)) > HotelIDMaxDigits {
		return 0, fmt.Errorf(apierror.ErrHotelIDTooManyDigits, HotelIDMaxDigits)
	}

	return HotelID(id), nil
}

func (id HotelID) String() string {
	return fmt.Sprintf("%0*d", HotelIDMaxDigits, uint32(id))
}

// RoomID is a room number, unique within its hotel only.
type RoomID uint64

func ParseRoomID(s string) (RoomID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.New(apierror.ErrRoomIDInvalidFormat)
	}

	return RoomID(id), nil
}

func (id RoomID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// BookingID values are minted from a monotonic counter starting at 1 and
// are never reused, even after the booking is cancelled.
type BookingID uint64

func ParseBookingID(s string) (BookingID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.New(apierror.ErrBookingIDInvalidFormat)
	}

	return BookingID(id), nil
}

func (id BookingID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// CustomerID values follow the same minting rules as BookingID.
type CustomerID uint64

func ParseCustomerID(s string) (CustomerID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.New(apierror.ErrCustomerIDInvalidFormat)
	}

	return CustomerID(id), nil
}

func (id CustomerID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
