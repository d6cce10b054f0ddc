package store

import (
	c "github.com/sky-brothers/skyair/internal/interfaces/config"
	"github.com/sky-brothers/skyair/internal/interfaces/log"
	"github.com/sky-brothers/skyair/internal/interfaces/operation"
)

// OpenStores loads the flight catalog and user directory, wires the booking
// ledger and replays it against the catalog so reserved-seat counters
// survive restarts.
func OpenStores(logger log.LoggerInterface, config *c.Config) (*operation.StoreOperations, error) {
	verifier := newVerifier(config.General)

	flightOperation := NewFlightOperation(logger, config.Store.FlightFile)
	flights, err := flightOperation.LoadFlights()
	if err != nil {
		return nil, err
	}
	logger.InfoF("Loaded %d flights from %s", len(flights), config.Store.FlightFile)

	userOperation := NewUserOperation(logger, config.Store.UserFile, verifier)
	users, err := userOperation.LoadUsers()
	if err != nil {
		return nil, err
	}
	logger.InfoF("Loaded %d users from %s", len(users), config.Store.UserFile)

	bookingOperation := NewBookingOperation(logger, config.Store.BookingFile)
	replayReservations(logger, flightOperation, bookingOperation)

	return operation.NewStoreOperations(flightOperation, bookingOperation, userOperation), nil
}

func newVerifier(config *c.GeneralConfig) operation.CredentialVerifier {
	switch config.Scheme {
	case c.SchemeBcrypt:
		return BcryptVerifier{Cost: config.BcryptCost}
	default:
		return PlainVerifier{}
	}
}

// replayReservations recomputes each flight's reserved counter from the
// persisted ledger. Bookings for unknown flights are ignored; seat counts
// beyond a flight's capacity are clamped so the capacity invariant holds
// even against a hand-edited ledger.
func replayReservations(logger log.LoggerInterface, flightOperation *FlightOperation, bookingOperation *BookingOperation) {
	replayed := 0
	for _, booking := range bookingOperation.GetAllBookings() {
		flight, err := flightOperation.GetFlightByNumber(booking.FlightNo)
		if err != nil {
			logger.WarnF("Ignoring ledger record for unknown flight %s (user %s)", booking.FlightNo, booking.Username)
			continue
		}
		seats := booking.SeatCount
		if remaining := flight.Capacity - flight.Reserved; seats > remaining {
			logger.WarnF("Ledger overbooks flight %s by %d seat(s), clamping to capacity", flight.FlightNo, seats-remaining)
			seats = remaining
		}
		flight.Reserved += seats
		replayed++
	}
	if replayed > 0 {
		logger.InfoF("Replayed %d booking(s) into the flight catalog", replayed)
	}
}
