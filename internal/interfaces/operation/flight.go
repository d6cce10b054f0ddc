// Package operation
package operation

import (
	"errors"
	"fmt"
)

var (
	ErrFlightNotFound    = errors.New("flight does not exist")
	ErrCapacityExhausted = errors.New("flight capacity exhausted")
)

const (
	// NoStopover marks a flight record without a stopover leg.
	NoStopover = "-"
	// SeatsPerRow is the cabin column count used for seat code derivation.
	SeatsPerRow = 6

	TypeTagDomestic = "Domestic"
)

type FlightType string

const (
	FlightTypeDomestic      FlightType = "Domestic"
	FlightTypeInternational FlightType = "International"
	FlightTypeConnecting    FlightType = "Connecting"
)

type Flight struct {
	FlightNo      string
	Franchise     string
	Departure     string
	Destination   string
	DepartureTime string
	Capacity      int
	TypeTag       string
	Stopover      string
	StayDuration  string
	Status        string
	DelayedTime   string
	// Reserved counts seats handed out during this process run.
	// Invariant: 0 <= Reserved <= Capacity.
	Reserved int
}

// TypeOf derives the flight type from the stored fields. A flight with a
// stopover is always Connecting, whatever its loader tag says.
func TypeOf(flight *Flight) FlightType {
	if flight.Stopover != "" && flight.Stopover != NoStopover {
		return FlightTypeConnecting
	}
	if flight.TypeTag == TypeTagDomestic {
		return FlightTypeDomestic
	}
	return FlightTypeInternational
}

// SeatCode maps the reservation sequence number s (0-indexed, per flight) to
// a seat code: row letter starting at 'A', column 1 through SeatsPerRow.
func SeatCode(s int) string {
	row := rune('A' + s/SeatsPerRow)
	column := s%SeatsPerRow + 1
	return fmt.Sprintf("%c%d", row, column)
}

// FlightOperationInterface 航班目录操作接口定义
type FlightOperationInterface interface {
	// LoadFlights parses the flight store, skipping records whose capacity
	// field is missing or does not begin with a digit. Returns the loaded
	// flights in store order.
	LoadFlights() (flights []*Flight, err error)
	// GetFlights returns the loaded catalog in store order.
	GetFlights() (flights []*Flight)
	// GetFlightByNumber returns ErrFlightNotFound when no flight matches.
	GetFlightByNumber(flightNo string) (flight *Flight, err error)
	// RemainingSeats reports capacity not yet consumed by reservations.
	RemainingSeats(flight *Flight) (seats int)
	// ReserveSeat emits the seat code for the flight's current reservation
	// sequence number and consumes one unit of capacity. Returns
	// ErrCapacityExhausted, with no state change, when the flight is full.
	// Not idempotent: every successful call issues a different seat.
	ReserveSeat(flight *Flight) (seatCode string, err error)
}
