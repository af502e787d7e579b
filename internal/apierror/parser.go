package apierror

import "fmt"

type ParseError struct {

	// Arg is the 1-based position of the offending argument.
	// Zero means the command line itself could not be resolved.
	Arg     int
	UserMsg string
	BaseErr error
}

func (e *ParseError) Error() string {
	if e.Arg > 0 {
		return fmt.Sprintf("argument %d: %s", e.Arg, e.UserMsg)
	}

	return e.UserMsg
}
