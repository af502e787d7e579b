package apierror

const (

	// ErrHotelIDInUse is generated when adding a hotel whose id already exists.
	ErrHotelIDInUse = "hotel ID is already in use"

	// ErrRoomIDInUse is generated when adding a room whose number is already
	// taken within the same hotel.
	ErrRoomIDInUse = "room ID is already in use"

	ErrUnknownHotelFmt = "unknown hotel ID %s"
	ErrUnknownRoomFmt  = "unknown room ID %d"

	// ErrRoomOccupied is generated when the requested interval fails the
	// occupancy test against an existing booking of the room.
	ErrRoomOccupied = "room is already occupied during that time frame"

	ErrBookingNotOwnedFmt = "this booking does not belong to customer %d"
	ErrBookingNotFoundFmt = "could not find booking with id %d"
)
