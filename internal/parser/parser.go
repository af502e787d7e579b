package parser

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"hotel-ledger/cmd/config"
	"hotel-ledger/internal/apierror"
	"hotel-ledger/internal/model"
)

// Parser resolves one whitespace-tokenized command line to a typed
// command. It never touches the ledger; a failure in any argument aborts
// the whole command before anything is applied.
type Parser struct {
	cfg *config.Parser
}

func NewParser(cfg *config.Parser) *Parser {
	return &Parser{cfg: cfg}
}

const quitCommand = "quit"

type argKind int

const (
	argHotelID argKind = iota
	argRoomID
	argBookingID
	argCustomerID
	argCategory
	argPrice
	argDate
	argWord
)

type commandKey struct {
	command string
	target  string
}

type commandSpec struct {

	// args is the ordered list of value types the positional arguments
	// must parse into; its length is the command's fixed arity.
	args []argKind

	build func(args []any) model.Command
}

// dispatch is the full command language: every (command, target) pair maps
// to its argument signature and constructor. Targetless commands use an
// empty target.
var dispatch = map[commandKey]commandSpec{
	{command: "add", target: "hotel"}: {
		args: []argKind{argHotelID, argWord},
		build: func(args []any) model.Command {
			return model.AddHotel{ID: args[0].(model.HotelID), City: args[1].(string)}
		},
	},
	{command: "add", target: "room"}: {
		args: []argKind{argHotelID, argRoomID, argCategory, argPrice},
		build: func(args []any) model.Command {
			return model.AddRoom{
				Hotel:    args[0].(model.HotelID),
				Room:     args[1].(model.RoomID),
				Category: args[2].(model.Category),
				Price:    args[3].(model.Price),
			}
		},
	},
	{command: "remove", target: "hotel"}: {
		args: []argKind{argHotelID},
		build: func(args []any) model.Command {
			return model.RemoveHotel{ID: args[0].(model.HotelID)}
		},
	},
	{command: "remove", target: "room"}: {
		args: []argKind{argHotelID, argRoomID},
		build: func(args []any) model.Command {
			return model.RemoveRoom{Hotel: args[0].(model.HotelID), Room: args[1].(model.RoomID)}
		},
	},
	{command: "find", target: "cheapest"}: {
		args: []argKind{argWord, argCategory, argDate, argDate},
		build: func(args []any) model.Command {
			return model.FindCheapest{
				City:     args[0].(string),
				Category: args[1].(model.Category),
				Start:    args[2].(model.Date),
				End:      args[3].(model.Date),
			}
		},
	},
	{command: "find", target: "available"}: {
		args: []argKind{argWord, argCategory, argDate, argDate},
		build: func(args []any) model.Command {
			return model.FindAvailable{
				City:     args[0].(string),
				Category: args[1].(model.Category),
				Start:    args[2].(model.Date),
				End:      args[3].(model.Date),
			}
		},
	},
	{command: "list", target: "rooms"}: {
		build: func([]any) model.Command { return model.ListRooms{} },
	},
	{command: "list", target: "bookings"}: {
		build: func([]any) model.Command { return model.ListBookings{} },
	},
	{command: "book"}: {
		args: []argKind{argHotelID, argRoomID, argDate, argDate, argWord, argWord},
		build: func(args []any) model.Command {
			return model.Book{
				Hotel: args[0].(model.HotelID),
				Room:  args[1].(model.RoomID),
				Start: args[2].(model.Date),
				End:   args[3].(model.Date),
				Guest: model.Person{
					Forename: args[4].(string),
					Surname:  args[5].(string),
				},
			}
		},
	},
	{command: "cancel"}: {
		args: []argKind{argBookingID, argCustomerID},
		build: func(args []any) model.Command {
			return model.Cancel{
				Booking:  args[0].(model.BookingID),
				Customer: args[1].(model.CustomerID),
			}
		},
	},
}

func (p *Parser) Parse(line string) (model.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, &apierror.ParseError{UserMsg: apierror.ErrEmptyCommand}
	}

	command, rest := fields[0], fields[1:]
	if command == quitCommand {
		if len(rest) > 0 {
			return nil, &apierror.ParseError{
				UserMsg: fmt.Sprintf(apierror.ErrUnexpectedArgFmt, rest[0]),
			}
		}

		return model.Quit{}, nil
	}

	spec, ok := dispatch[commandKey{command: command}]
	if !ok {
		var err error
		spec, rest, err = resolveTarget(command, rest)
		if err != nil {
			return nil, err
		}
	}

	return p.parseArgs(spec, rest)
}

func resolveTarget(command string, rest []string) (commandSpec, []string, error) {
	targets := targetsOf(command)
	if len(targets) == 0 {
		return commandSpec{}, nil, &apierror.ParseError{
			UserMsg: fmt.Sprintf(apierror.ErrUnknownCommandFmt, command),
		}
	}

	targetList := strings.Join(targets, ", ")
	if len(rest) == 0 {
		return commandSpec{}, nil, &apierror.ParseError{
			UserMsg: fmt.Sprintf(apierror.ErrMissingTargetFmt, targetList),
		}
	}

	spec, ok := dispatch[commandKey{command: command, target: rest[0]}]
	if !ok {
		return commandSpec{}, nil, &apierror.ParseError{
			UserMsg: fmt.Sprintf(apierror.ErrUnknownTargetFmt, rest[0], targetList),
		}
	}

	return spec, rest[1:], nil
}

func targetsOf(command string) []string {
	var targets []string
	for key := range dispatch {
		if key.command == command && key.target != "" {
			targets = append(targets, key.target)
		}
	}

	sort.Strings(targets)
	return targets
}

func (p *Parser) parseArgs(spec commandSpec, args []string) (model.Command, error) {
	if len(args) != len(spec.args) {
		return nil, &apierror.ParseError{
			UserMsg: fmt.Sprintf(apierror.ErrArgumentCountFmt, len(spec.args), len(args)),
		}
	}

	parsed := make([]any, len(args))
	for i, kind := range spec.args {
		value, err := p.parseArg(kind, args[i])
		if err != nil {
			return nil, &apierror.ParseError{
				Arg:     i + 1,
				UserMsg: err.Error(),
				BaseErr: err,
			}
		}

		parsed[i] = value
	}

	return spec.build(parsed), nil
}

func (p *Parser) parseArg(kind argKind, s string) (any, error) {
	switch kind {
	case argHotelID:
		id, err := model.ParseHotelID(s)
		return id, err
	case argRoomID:
		id, err := model.ParseRoomID(s)
		return id, err
	case argBookingID:
		id, err := model.ParseBookingID(s)
		return id, err
	case argCustomerID:
		id, err := model.ParseCustomerID(s)
		return id, err
	case argCategory:
		category, err := model.ParseCategory(s)
		return category, err
	case argPrice:
		price, err := model.ParsePrice(s, p.cfg.CurrencySymbol)
		return price, err
	case argDate:
		date, err := model.ParseDate(s, p.cfg.DateFormat)
		return date, err
	case argWord:
		return s, nil
	}

	return nil, errors.New("unhandled argument kind")
}
