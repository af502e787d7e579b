package model

// Command is one fully parsed and type-checked command line, ready to be
// applied to the ledger. The set of implementations is closed.
type Command interface {
	isCommand()
}

type AddHotel struct {
	ID   HotelID
	City string
}

type AddRoom struct {
	Hotel    HotelID
	Room     RoomID
	Category Category
	Price    Price
}

type RemoveHotel struct {
	ID HotelID
}

type RemoveRoom struct {
	Hotel HotelID
	Room  RoomID
}

type FindCheapest struct {
	City     string
	Category Category
	Start    Date
	End      Date
}

type FindAvailable struct {
	City     string
	Category Category
	Start    Date
	End      Date
}

type ListRooms struct{}

type ListBookings struct{}

type Book struct {
	Hotel HotelID
	Room  RoomID
	Start Date
	End   Date
	Guest Person
}

type Cancel struct {
	Booking  BookingID
	Customer CustomerID
}

type Quit struct{}

func (AddHotel) isCommand()      {}
func (AddRoom) isCommand()       {}
func (RemoveHotel) isCommand()   {}
func (RemoveRoom) isCommand()    {}
func (FindCheapest) isCommand()  {}
func (FindAvailable) isCommand() {}
func (ListRooms) isCommand()     {}
func (ListBookings) isCommand()  {}
func (Book) isCommand()          {}
func (Cancel) isCommand()        {}
func (Quit) isCommand()          {}
