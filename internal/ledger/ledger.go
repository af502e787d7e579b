package ledger

import (
	"errors"
	"fmt"

	"hotel-ledger/internal/apierror"
	"hotel-ledger/internal/model"
	"hotel-ledger/internal/storage"
)

// Ledger owns every hotel, room, booking and customer identity of one
// interpreter instance. All operations are synchronous and assume
// single-threaded access; callers that cross thread boundaries must
// serialize externally.
type Ledger struct {
	hotels    storage.Storage[model.HotelID, *model.Hotel]
	customers storage.Storage[model.Person, model.CustomerID]

	// both counters are minted monotonically starting at 1 and never
	// reused, even after cancellations or hotel removal
	nextBookingID  model.BookingID
	nextCustomerID model.CustomerID
}

func New(
	hotels storage.Storage[model.HotelID, *model.Hotel],
	customers storage.Storage[model.Person, model.CustomerID],
) *Ledger {
	return &Ledger{
		hotels:         hotels,
		customers:      customers,
		nextBookingID:  1,
		nextCustomerID: 1,
	}
}

func (l *Ledger) AddHotel(id model.HotelID, city string) error {
	if _, ok := l.hotels.Get(id); ok {
		return errors.New(apierror.ErrHotelIDInUse)
	}

	l.hotels.Set(id, &model.Hotel{
		City:  city,
		Rooms: storage.NewInMemoryStorage[model.RoomID, *model.Room](),
	})

	return nil
}

func (l *Ledger) AddRoom(
	hotelID model.HotelID, roomID model.RoomID, category model.Category, price model.Price,
) error {
	hotel, ok := l.hotels.Get(hotelID)
	if !ok {
		return fmt.Errorf(apierror.ErrUnknownHotelFmt, hotelID)
	}

	if _, ok := hotel.Rooms.Get(roomID); ok {
		return errors.New(apierror.ErrRoomIDInUse)
	}

	hotel.Rooms.Set(roomID, &model.Room{Category: category, Price: price})
	return nil
}

func (l *Ledger) RemoveRoom(hotelID model.HotelID, roomID model.RoomID) error {
	hotel, ok := l.hotels.Get(hotelID)
	if !ok {
		return fmt.Errorf(apierror.ErrUnknownHotelFmt, hotelID)
	}

	if _, ok := hotel.Rooms.Get(roomID); !ok {
		return fmt.Errorf(apierror.ErrUnknownRoomFmt, roomID)
	}

	hotel.Rooms.Delete(roomID)
	return nil
}

// RemoveHotel discards the hotel with all its rooms and bookings.
// Removal is unconditional; existing bookings do not block it.
func (l *Ledger) RemoveHotel(id model.HotelID) error {
	if _, ok := l.hotels.Get(id); !ok {
		return fmt.Errorf(apierror.ErrUnknownHotelFmt, id)
	}

	l.hotels.Delete(id)
	return nil
}

// Rooms lists every room of every hotel, unordered.
func (l *Ledger) Rooms() []model.RoomListing {
	var listings []model.RoomListing
	for _, hotel := range l.hotels.All() {
		for _, room := range hotel.Value.Rooms.All() {
			listings = append(listings, model.RoomListing{
				Hotel:    hotel.Key,
				Room:     room.Key,
				Category: room.Value.Category,
				Price:    room.Value.Price,
			})
		}
	}

	return listings
}

// Bookings lists every booking of every room, unordered.
func (l *Ledger) Bookings() []model.Booking {
	var bookings []model.Booking
	for _, hotel := range l.hotels.All() {
		for _, room := range hotel.Value.Rooms.All() {
			bookings = append(bookings, room.Value.Bookings...)
		}
	}

	return bookings
}

// Available collects the rooms of the given city and category whose
// bookings pass the occupancy test for the stay [start, end). City
// matching is exact and case-sensitive.
func (l *Ledger) Available(
	city string, category model.Category, start, end model.Date,
) []model.Offer {
	var offers []model.Offer
	for _, hotel := range l.hotels.All() {
		if hotel.Value.City != city {
			continue
		}

		for _, room := range hotel.Value.Rooms.All() {
			if room.Value.Category != category {
				continue
			}

			if room.Value.IsOccupied(start, end) {
				continue
			}

			offers = append(offers, model.Offer{
				Hotel: hotel.Key,
				Room:  room.Key,
				Price: room.Value.Price,
			})
		}
	}

	return offers
}

// Book reserves the stay [start, end) on the given room for the customer
// and returns the freshly minted booking id.
func (l *Ledger) Book(
	hotelID model.HotelID, roomID model.RoomID, start, end model.Date, customer model.CustomerID,
) (model.BookingID, error) {
	hotel, ok := l.hotels.Get(hotelID)
	if !ok {
		return 0, fmt.Errorf(apierror.ErrUnknownHotelFmt, hotelID)
	}

	room, ok := hotel.Rooms.Get(roomID)
	if !ok {
		return 0, fmt.Errorf(apierror.ErrUnknownRoomFmt, roomID)
	}

	if room.IsOccupied(start, end) {
		return 0, errors.New(apierror.ErrRoomOccupied)
	}

	id := l.nextBookingID
	l.nextBookingID++

	room.Bookings = append(room.Bookings, model.Booking{
		ID:       id,
		Customer: customer,
		Start:    start,
		End:      end,
	})

	return id, nil
}

// Customer resolves a person to their customer id, minting a fresh one the
// first time a name pair is seen. It never fails.
func (l *Ledger) Customer(person model.Person) model.CustomerID {
	if id, ok := l.customers.Get(person); ok {
		return id
	}

	id := l.nextCustomerID
	l.nextCustomerID++
	l.customers.Set(person, id)

	return id
}

// Cancel removes the booking with the given id after checking that it
// belongs to the customer. Removal swaps with the last booking of the
// room; no ordering is promised there.
func (l *Ledger) Cancel(bookingID model.BookingID, customer model.CustomerID) error {
	for _, hotel := range l.hotels.All() {
		for _, room := range hotel.Value.Rooms.All() {
			bookings := room.Value.Bookings
			for i, booking := range bookings {
				if booking.ID != bookingID {
					continue
				}

				if booking.Customer != customer {
					return fmt.Errorf(apierror.ErrBookingNotOwnedFmt, customer)
				}

				last := len(bookings) - 1
				bookings[i] = bookings[last]
				room.Value.Bookings = bookings[:last]
				return nil
			}
		}
	}

	return fmt.Errorf(apierror.ErrBookingNotFoundFmt, bookingID)
}
