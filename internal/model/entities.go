package model

import "hotel-ledger/internal/storage"

// Booking occupies a room for the half-open date interval [Start, End).
type Booking struct {
	ID       BookingID
	Customer CustomerID
	Start    Date
	End      Date
}

// Contains reports whether the day falls inside the booked interval.
func (b Booking) Contains(d Date) bool {
	return !d.Before(b.Start) && d.Before(b.End)
}

// Room holds its bookings in no particular order; cancellation may
// reorder the slice.
type Room struct {
	Category Category
	Price    Price
	Bookings []Booking
}

// IsOccupied applies the occupancy test for a candidate stay [start, end):
// the stay conflicts when either of its endpoints falls inside an existing
// booking. A stay that strictly encloses a booking without sharing a date
// with it does not count as a conflict; callers depend on this exact rule.
func (r *Room) IsOccupied(start, end Date) bool {
	for _, booking := range r.Bookings {
		if booking.Contains(start) || booking.Contains(end) {
			return true
		}
	}

	return false
}

type Hotel struct {
	City  string
	Rooms storage.Storage[RoomID, *Room]
}

// RoomListing is one row of a full rooms listing. The ledger produces
// these unordered; presentation sorts them.
type RoomListing struct {
	Hotel    HotelID
	Room     RoomID
	Category Category
	Price    Price
}

// Offer is a room available for a requested stay, priced per night.
type Offer struct {
	Hotel HotelID
	Room  RoomID
	Price Price
}
