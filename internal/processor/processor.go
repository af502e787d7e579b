package processor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"hotel-ledger/cmd/config"
	"hotel-ledger/internal/ledger"
	"hotel-ledger/internal/model"
	"hotel-ledger/internal/parser"
)

// CommandResult describes the outcome of one command line: the rendered
// output (possibly empty), whether the command failed, and whether the
// driving loop should stop afterwards.
type CommandResult struct {
	Output     string
	IsError    bool
	IsQuitting bool
}

const (
	okOutput    = "OK"
	errorPrefix = "Error: "
)

type Processor struct {
	cfg    *config.Processor
	parser *parser.Parser
	ledger *ledger.Ledger
}

func New(cfg *config.Processor, p *parser.Parser, l *ledger.Ledger) *Processor {
	return &Processor{
		cfg:    cfg,
		parser: p,
		ledger: l,
	}
}

// HandleCommand applies one command line to the ledger. A failing command
// leaves the ledger untouched and renders as a single error line; the
// processor stays usable for the next command either way.
func (p *Processor) HandleCommand(line string) CommandResult {
	output, quitting, err := p.eval(line)
	if err != nil {
		return CommandResult{Output: errorPrefix + err.Error(), IsError: true}
	}

	return CommandResult{Output: output, IsQuitting: quitting}
}

func (p *Processor) eval(line string) (string, bool, error) {
	command, err := p.parser.Parse(line)
	if err != nil {
		return "", false, err
	}

	if _, ok := command.(model.Quit); ok {
		return "", true, nil
	}

	output, err := p.apply(command)
	return output, false, err
}

func (p *Processor) apply(command model.Command) (string, error) {
	switch c := command.(type) {
	case model.AddHotel:
		return okResult(p.ledger.AddHotel(c.ID, c.City))
	case model.AddRoom:
		return okResult(p.ledger.AddRoom(c.Hotel, c.Room, c.Category, c.Price))
	case model.RemoveHotel:
		return okResult(p.ledger.RemoveHotel(c.ID))
	case model.RemoveRoom:
		return okResult(p.ledger.RemoveRoom(c.Hotel, c.Room))
	case model.Cancel:
		return okResult(p.ledger.Cancel(c.Booking, c.Customer))
	case model.ListRooms:
		return p.listRooms(), nil
	case model.ListBookings:
		return p.listBookings(), nil
	case model.FindAvailable:
		return p.findAvailable(c), nil
	case model.FindCheapest:
		return p.findCheapest(c), nil
	case model.Book:
		return p.book(c)
	}

	return "", errors.New("unhandled command")
}

// okResult renders a pure mutation with no natural return value.
func okResult(err error) (string, error) {
	if err != nil {
		return "", err
	}

	return okOutput, nil
}

func (p *Processor) listRooms() string {
	rooms := p.ledger.Rooms()
	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].Hotel != rooms[j].Hotel {
			return rooms[i].Hotel < rooms[j].Hotel
		}

		return rooms[i].Room < rooms[j].Room
	})

	lines := make([]string, 0, len(rooms))
	for _, room := range rooms {
		lines = append(lines, fmt.Sprintf(
			"%s %s %s %s",
			room.Hotel, room.Room, room.Category, room.Price.String(p.cfg.CurrencySymbol),
		))
	}

	return strings.Join(lines, "\n")
}

func (p *Processor) listBookings() string {
	bookings := p.ledger.Bookings()
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].ID < bookings[j].ID
	})

	lines := make([]string, 0, len(bookings))
	for _, booking := range bookings {
		lines = append(lines, fmt.Sprintf(
			"%s %s %s %s",
			booking.ID, booking.Customer,
			booking.Start.String(p.cfg.DateFormat), booking.End.String(p.cfg.DateFormat),
		))
	}

	return strings.Join(lines, "\n")
}

func (p *Processor) findAvailable(c model.FindAvailable) string {
	offers := p.ledger.Available(c.City, c.Category, c.Start, c.End)
	sort.Slice(offers, func(i, j int) bool {
		if offers[i].Hotel != offers[j].Hotel {
			return offers[i].Hotel < offers[j].Hotel
		}

		return offers[i].Room < offers[j].Room
	})

	lines := make([]string, 0, len(offers))
	for _, offer := range offers {
		lines = append(lines, fmt.Sprintf(
			"%s %s %s",
			offer.Hotel, offer.Room, offer.Price.String(p.cfg.CurrencySymbol),
		))
	}

	return strings.Join(lines, "\n")
}

// findCheapest reports the minimum offer by (price, hotel id, room number)
// with the total for the whole stay, or empty output when nothing matches.
func (p *Processor) findCheapest(c model.FindCheapest) string {
	offers := p.ledger.Available(c.City, c.Category, c.Start, c.End)
	if len(offers) == 0 {
		return ""
	}

	best := offers[0]
	for _, offer := range offers[1:] {
		if cheaper(offer, best) {
			best = offer
		}
	}

	total := best.Price.MulNights(c.Start.NightsUntil(c.End))
	return fmt.Sprintf("%s %s %s", best.Hotel, best.Room, total.String(p.cfg.CurrencySymbol))
}

func cheaper(a, b model.Offer) bool {
	if cmp := a.Price.Cmp(b.Price); cmp != 0 {
		return cmp < 0
	}

	if a.Hotel != b.Hotel {
		return a.Hotel < b.Hotel
	}

	return a.Room < b.Room
}

func (p *Processor) book(c model.Book) (string, error) {
	customer := p.ledger.Customer(c.Guest)

	id, err := p.ledger.Book(c.Hotel, c.Room, c.Start, c.End, customer)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s %s", id, customer), nil
}
