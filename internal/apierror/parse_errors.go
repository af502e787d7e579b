package apierror

const (
	ErrEmptyCommand      = "please enter a command"
	ErrUnknownCommandFmt = "unknown command '%s'"
	ErrMissingTargetFmt  = "missing target, expected one of %s"
	ErrUnknownTargetFmt  = "unknown target '%s', expected one of %s"
	ErrArgumentCountFmt  = "expected %d arguments, got %d"
	ErrUnexpectedArgFmt  = "unexpected argument %s"

	ErrHotelIDInvalidFormat = "hotel id must be a positive integer"
	ErrHotelIDTooManyDigits = "hotel id must not exceed %d digits"

	ErrRoomIDInvalidFormat     = "room id must be a non-negative integer"
	ErrBookingIDInvalidFormat  = "booking id must be a non-negative integer"
	ErrCustomerIDInvalidFormat = "customer id must be a non-negative integer"

	ErrPriceInvalidFormat      = "price must be a decimal number"
	ErrPriceManySeparators     = "cannot have multiple decimal separators in price"
	ErrPriceExcessPrecisionFmt = "price only has %d digits of precision"
	ErrPriceZero               = "price must be non-zero"

	ErrUnknownCategoryFmt = "unknown category '%s'"
	ErrDateInvalidFormat  = "date must be in YYYY-MM-DD format"
)
