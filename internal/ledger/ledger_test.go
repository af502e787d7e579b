package ledger

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"hotel-ledger/internal/model"
	"hotel-ledger/internal/storage"
)

const (
	dateLayout = "2006-01-02"
	euro       = "€"
)

type ledgerSuite struct {
	suite.Suite
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(ledgerSuite))
}

func newLedger() *Ledger {
	return New(
		storage.NewInMemoryStorage[model.HotelID, *model.Hotel](),
		storage.NewInMemoryStorage[model.Person, model.CustomerID](),
	)
}

func (s *ledgerSuite) date(v string) model.Date {
	date, err := model.ParseDate(v, dateLayout)
	s.Require().NoError(err)
	return date
}

func (s *ledgerSuite) price(v string) model.Price {
	price, err := model.ParsePrice(v, euro)
	s.Require().NoError(err)
	return price
}

// addBerlinSingle seeds hotel 1 in Berlin with room 101, Single, 50.00€.
func (s *ledgerSuite) addBerlinSingle(l *Ledger) {
	s.Require().NoError(l.AddHotel(1, "Berlin"))
	s.Require().NoError(l.AddRoom(1, 101, model.Single, s.price("50.00€")))
}

func (s *ledgerSuite) TestAddRemoveHotel() {
	l := newLedger()

	s.NoError(l.AddHotel(1, "Berlin"))
	s.Error(l.AddHotel(1, "Paris"), "duplicate id must fail")

	s.Error(l.RemoveHotel(2), "unknown id must fail")

	s.NoError(l.RemoveHotel(1))
	s.NoError(l.AddHotel(1, "Paris"), "freed id must be reusable")
}

func (s *ledgerSuite) TestAddRemoveRoom() {
	l := newLedger()
	s.Require().NoError(l.AddHotel(1, "Berlin"))

	s.Error(l.AddRoom(2, 101, model.Single, s.price("50€")), "unknown hotel must fail")

	s.NoError(l.AddRoom(1, 101, model.Single, s.price("50€")))
	s.Error(l.AddRoom(1, 101, model.Double, s.price("70€")), "duplicate room must fail")

	s.Require().NoError(l.AddHotel(2, "Berlin"))
	s.NoError(l.AddRoom(2, 101, model.Single, s.price("50€")),
		"room numbers are only unique within one hotel")

	s.Error(l.RemoveRoom(1, 999))
	s.Error(l.RemoveRoom(3, 101))
	s.NoError(l.RemoveRoom(1, 101))
	s.Len(l.Rooms(), 1)
}

func (s *ledgerSuite) TestRemoveHotelDiscardsBookings() {
	l := newLedger()
	s.addBerlinSingle(l)

	customer := l.Customer(model.Person{Forename: "Ada", Surname: "Lovelace"})
	_, err := l.Book(1, 101, s.date("2024-01-01"), s.date("2024-01-03"), customer)
	s.Require().NoError(err)

	s.Require().NoError(l.RemoveHotel(1))
	s.Empty(l.Bookings())

	// the booking counter keeps running; ids are never handed out twice
	s.addBerlinSingle(l)
	id, err := l.Book(1, 101, s.date("2024-01-01"), s.date("2024-01-03"), customer)
	s.Require().NoError(err)
	s.Equal(model.BookingID(2), id)
}

func (s *ledgerSuite) TestBookNonOverlapping() {
	l := newLedger()
	s.addBerlinSingle(l)
	customer := l.Customer(model.Person{Forename: "Ada", Surname: "Lovelace"})

	first, err := l.Book(1, 101, s.date("2024-01-01"), s.date("2024-01-03"), customer)
	s.Require().NoError(err)
	s.Equal(model.BookingID(1), first)

	second, err := l.Book(1, 101, s.date("2024-01-03"), s.date("2024-01-05"), customer)
	s.Require().NoError(err)
	s.Equal(model.BookingID(2), second)

	s.Len(l.Bookings(), 2)
}

func (s *ledgerSuite) TestBookConflicts() {
	testCases := []struct {
		name     string
		start    string
		end      string
		conflict bool
	}{
		{
			name:     "start inside existing",
			start:    "2024-01-11",
			end:      "2024-01-15",
			conflict: true,
		},
		{
			name:     "end inside existing",
			start:    "2024-01-08",
			end:      "2024-01-11",
			conflict: true,
		},
		{
			name:     "start on existing start",
			start:    "2024-01-10",
			end:      "2024-01-14",
			conflict: true,
		},
		{
			name: "starts at existing end",
			// an existing interval does not contain its end date
			start: "2024-01-12",
			end:   "2024-01-14",
		},
		{
			name:     "ends at existing start",
			start:    "2024-01-08",
			end:      "2024-01-10",
			conflict: true,
		},
		{
			name:  "disjoint before",
			start: "2024-01-05",
			end:   "2024-01-08",
		},
		{
			name:  "disjoint after",
			start: "2024-01-15",
			end:   "2024-01-18",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			l := newLedger()
			s.addBerlinSingle(l)
			customer := l.Customer(model.Person{Forename: "Ada", Surname: "Lovelace"})

			_, err := l.Book(1, 101, s.date("2024-01-10"), s.date("2024-01-12"), customer)
			s.Require().NoError(err)

			_, err = l.Book(1, 101, s.date(tc.start), s.date(tc.end), customer)
			if tc.conflict {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

// The occupancy test only checks whether an endpoint of the candidate stay
// falls inside an existing booking. A stay that strictly encloses a
// booking shares no such endpoint and is accepted; this is the modelled
// behavior, kept on purpose rather than silently widened to full interval
// overlap.
func (s *ledgerSuite) TestBookEnclosingIntervalAccepted() {
	l := newLedger()
	s.addBerlinSingle(l)
	customer := l.Customer(model.Person{Forename: "Ada", Surname: "Lovelace"})

	_, err := l.Book(1, 101, s.date("2024-01-10"), s.date("2024-01-12"), customer)
	s.Require().NoError(err)

	_, err = l.Book(1, 101, s.date("2024-01-09"), s.date("2024-01-13"), customer)
	s.NoError(err)
	s.Len(l.Bookings(), 2)
}

func (s *ledgerSuite) TestBookUnknownTargets() {
	l := newLedger()
	s.addBerlinSingle(l)
	customer := l.Customer(model.Person{Forename: "Ada", Surname: "Lovelace"})

	_, err := l.Book(2, 101, s.date("2024-01-01"), s.date("2024-01-03"), customer)
	s.Error(err)

	_, err = l.Book(1, 999, s.date("2024-01-01"), s.date("2024-01-03"), customer)
	s.Error(err)
}

func (s *ledgerSuite) TestCancel() {
	l := newLedger()
	s.addBerlinSingle(l)
	owner := l.Customer(model.Person{Forename: "Ada", Surname: "Lovelace"})

	id, err := l.Book(1, 101, s.date("2024-01-01"), s.date("2024-01-03"), owner)
	s.Require().NoError(err)

	s.Error(l.Cancel(id, owner+1), "foreign customer must not cancel")
	s.Len(l.Bookings(), 1, "failed cancel must leave the booking intact")

	s.NoError(l.Cancel(id, owner))
	s.Empty(l.Bookings())

	s.Error(l.Cancel(id, owner), "second cancel must report a missing booking")
	s.Error(l.Cancel(999, owner))
}

func (s *ledgerSuite) TestCustomerIdentity() {
	l := newLedger()

	ada := l.Customer(model.Person{Forename: "Ada", Surname: "Lovelace"})
	s.Equal(model.CustomerID(1), ada)

	s.Equal(ada, l.Customer(model.Person{Forename: "Ada", Surname: "Lovelace"}),
		"same name pair must resolve to the same id")

	grace := l.Customer(model.Person{Forename: "Grace", Surname: "Hopper"})
	s.Greater(grace, ada)
}

func (s *ledgerSuite) TestAvailableFilters() {
	l := newLedger()
	s.Require().NoError(l.AddHotel(1, "Berlin"))
	s.Require().NoError(l.AddHotel(2, "Paris"))
	s.Require().NoError(l.AddRoom(1, 101, model.Single, s.price("50€")))
	s.Require().NoError(l.AddRoom(1, 102, model.Double, s.price("70€")))
	s.Require().NoError(l.AddRoom(2, 101, model.Single, s.price("40€")))

	start, end := s.date("2024-01-01"), s.date("2024-01-03")

	offers := l.Available("Berlin", model.Single, start, end)
	s.Require().Len(offers, 1)
	s.Equal(model.HotelID(1), offers[0].Hotel)
	s.Equal(model.RoomID(101), offers[0].Room)

	s.Empty(l.Available("berlin", model.Single, start, end),
		"city matching is exact and case-sensitive")
	s.Empty(l.Available("Berlin", model.Suite, start, end))

	customer := l.Customer(model.Person{Forename: "Ada", Surname: "Lovelace"})
	_, err := l.Book(1, 101, start, end, customer)
	s.Require().NoError(err)

	s.Empty(l.Available("Berlin", model.Single, start, end),
		"a conflicting booking removes the room from the offers")
}
